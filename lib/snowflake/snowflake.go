package snowflake

import (
	"errors"
	"fmt"
	bwsnowflake "github.com/bwmarrin/snowflake"
	"strconv"
	"strings"
	"time"
)

// TwitterEpoch is 2010-11-04T01:42:54.657Z in unix milliseconds
const TwitterEpoch = 1288834974657

const (
	MachineBits  = 10
	SequenceBits = 12
	// TimestampShift drops the machine and sequence fields
	TimestampShift = MachineBits + SequenceBits
)

var ErrInvalidInput = errors.New("invalid input")

// IsNumericInput reports whether str is a non-empty run of ASCII digits.
// Signs, spaces and unicode digits are all rejected.
func IsNumericInput(str string) bool {
	if len(str) == 0 {
		return false
	}
	for _, d := range str {
		if d < '0' || d > '9' {
			return false
		}
	}
	return true
}

func Parse(snowflake string) (uint64, error) {
	snowflake = strings.TrimSpace(snowflake)
	if !IsNumericInput(snowflake) {
		return 0, fmt.Errorf("%w: %q is not a numeric id", ErrInvalidInput, snowflake)
	}
	parsedId, err := strconv.ParseUint(snowflake, 10, 64)
	if err != nil {
		// only reachable on overflow, the digits were checked above
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return parsedId, nil
}

// CreatedAtMillis returns unix milliseconds. The max uint64 id lands around
// year 2150, well inside int64.
func CreatedAtMillis(id uint64) int64 {
	return int64((id >> TimestampShift) + TwitterEpoch)
}

func GetSnowflakeCreatedAt(snowflake string) (time.Time, error) {
	parsedId, err := Parse(snowflake)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(CreatedAtMillis(parsedId)), nil
}

type Components struct {
	ID        uint64
	CreatedAt time.Time
	Elapsed   uint64 // ms since TwitterEpoch
	Machine   int64
	Sequence  int64
}

// Dump splits an id into its fields. Machine and sequence are read through
// bwmarrin/snowflake, which uses the same 10/12 bit layout.
func Dump(snowflake string) (Components, error) {
	parsedId, err := Parse(snowflake)
	if err != nil {
		return Components{}, err
	}
	// the low 22 bits survive the int64 conversion even when the top bit is set
	sf := bwsnowflake.ID(int64(parsedId))
	return Components{
		ID:        parsedId,
		CreatedAt: time.UnixMilli(CreatedAtMillis(parsedId)),
		Elapsed:   parsedId >> TimestampShift,
		Machine:   sf.Node(),
		Sequence:  sf.Step(),
	}, nil
}
