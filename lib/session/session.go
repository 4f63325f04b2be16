package session

import (
	"github.com/germanoeich/tweet-date/lib/checker"
	"github.com/germanoeich/tweet-date/lib/metrics"
	"github.com/germanoeich/tweet-date/lib/snowflake"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
	"strings"
	"time"
)

const (
	EmptyInputMessage   = "Por favor ingresa una URL o ID de tweet"
	InvalidInputMessage = "La URL o ID ingresado no es válido. Asegúrate de usar una URL válida de Twitter/X o un ID numérico."
)

// State is what the prompt shows. At most one of Result and Error is set.
type State struct {
	Input  string
	Result string
	Error  string
}

type Lookup struct {
	ID        string
	CreatedAt time.Time
	Result    string
}

type Session struct {
	state     State
	checker   *checker.Checker
	clipboard Clipboard
	// tweet id : Lookup
	history *lru.Cache
	logger  *logrus.Entry
}

func NewSession(c *checker.Checker, cb Clipboard, historySize int, logger *logrus.Entry) (*Session, error) {
	history, err := lru.New(historySize)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		cb = SystemClipboard{}
	}
	return &Session{
		checker:   c,
		clipboard: cb,
		history:   history,
		logger:    logger,
	}, nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) SetInput(input string) {
	s.state.Input = input
}

// Submit replaces the whole state. Errors never carry detail, bad URLs and
// bad ids get the same message.
func (s *Session) Submit() State {
	input := s.state.Input
	s.state = State{Input: input}

	if strings.TrimSpace(input) == "" {
		s.state.Error = EmptyInputMessage
		metrics.ObserveLookup(metrics.OutcomeEmpty)
		return s.state
	}

	res, err := s.checker.Check(input)
	if err != nil {
		s.logger.WithField("input", input).WithError(err).Debug("Rejected input")
		s.state.Error = InvalidInputMessage
		metrics.ObserveLookup(metrics.OutcomeInvalid)
		return s.state
	}

	s.logger.WithFields(logrus.Fields{"input": input, "id": res.ID}).Debug("Decoded tweet id")
	s.state.Result = res.Formatted
	s.history.Add(res.ID, Lookup{ID: res.ID, CreatedAt: res.CreatedAt, Result: res.Formatted})
	metrics.ObserveLookup(metrics.OutcomeOk)
	metrics.ObserveDecodedAge(uint64(res.CreatedAt.UnixMilli() - snowflake.TwitterEpoch))
	return s.state
}

// Paste overwrites Input with the clipboard contents. Failures are swallowed
// and leave Input untouched, the clipboard is only a shortcut.
func (s *Session) Paste() bool {
	text, err := s.clipboard.ReadAll()
	if err != nil {
		s.logger.WithError(err).Debug("Clipboard read failed")
		metrics.ClipboardFailures.Inc()
		return false
	}
	s.state.Input = text
	return true
}

// History lists successful lookups, newest first
func (s *Session) History() []Lookup {
	keys := s.history.Keys()
	ret := make([]Lookup, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		v, ok := s.history.Peek(keys[i])
		if !ok {
			continue
		}
		ret = append(ret, v.(Lookup))
	}
	return ret
}
