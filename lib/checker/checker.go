package checker

import (
	"github.com/germanoeich/tweet-date/lib/datefmt"
	"github.com/germanoeich/tweet-date/lib/snowflake"
	"strings"
	"time"
)

type Checker struct {
	formatter *datefmt.Formatter
}

type Result struct {
	ID        string
	CreatedAt time.Time
	Formatted string
}

func NewChecker(formatter *datefmt.Formatter) *Checker {
	if formatter == nil {
		formatter = datefmt.NewFormatter(nil)
	}
	return &Checker{formatter: formatter}
}

// Date decodes an already extracted id. The id is validated again since
// callers can skip Extract.
func (c *Checker) Date(id string) (Result, error) {
	id = strings.TrimSpace(id)
	createdAt, err := snowflake.GetSnowflakeCreatedAt(id)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ID:        id,
		CreatedAt: createdAt,
		Formatted: c.formatter.Format(createdAt),
	}, nil
}

// Check runs extraction and decoding on raw user input.
func (c *Checker) Check(input string) (Result, error) {
	id, err := snowflake.Extract(input)
	if err != nil {
		return Result{}, err
	}
	return c.Date(id)
}

var defaultChecker = NewChecker(nil)

// GetTweetDate formats the creation date of a numeric tweet id in the
// machine's local zone. Anything that is not a plain id is snowflake.ErrInvalidInput.
func GetTweetDate(id string) (string, error) {
	res, err := defaultChecker.Date(id)
	if err != nil {
		return "", err
	}
	return res.Formatted, nil
}
