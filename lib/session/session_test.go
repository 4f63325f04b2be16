package session

import (
	"errors"
	"github.com/germanoeich/tweet-date/lib/checker"
	"github.com/germanoeich/tweet-date/lib/datefmt"
	"github.com/germanoeich/tweet-date/lib/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) ReadAll() (string, error) {
	return f.text, f.err
}

func newTestSession(t *testing.T, cb Clipboard, historySize int) *Session {
	logger, _ := test.NewNullLogger()
	c := checker.NewChecker(datefmt.NewFormatter(time.UTC))
	s, err := NewSession(c, cb, historySize, logger.WithField("subsystem", "session"))
	require.NoError(t, err)
	return s
}

func TestSubmitValidUrl(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{}, 10)
	s.SetInput("https://x.com/someuser/status/28798813530")

	state := s.Submit()
	assert.Equal(t, "https://x.com/someuser/status/28798813530", state.Input)
	assert.Equal(t, "jueves, 4 de noviembre de 2010, 1:43:01 UTC", state.Result)
	assert.Empty(t, state.Error)
	assert.Equal(t, state, s.State())
}

func TestSubmitEmptyInput(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{}, 10)
	before := testutil.ToFloat64(metrics.Lookups.WithLabelValues(metrics.OutcomeEmpty))
	s.SetInput("   ")

	state := s.Submit()
	assert.Equal(t, EmptyInputMessage, state.Error)
	assert.Empty(t, state.Result)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.Lookups.WithLabelValues(metrics.OutcomeEmpty)))
}

func TestSubmitInvalidInputUsesGenericMessage(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{}, 10)
	for _, input := range []string{"not a valid input", "https://x.com/someuser", "18446744073709551616"} {
		s.SetInput(input)
		state := s.Submit()
		assert.Equal(t, InvalidInputMessage, state.Error, input)
		assert.Empty(t, state.Result, input)
	}
}

func TestSubmitOverwritesPreviousState(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{}, 10)
	s.SetInput("28798813530")
	require.NotEmpty(t, s.Submit().Result)

	s.SetInput("garbage")
	state := s.Submit()
	assert.Empty(t, state.Result)
	assert.Equal(t, InvalidInputMessage, state.Error)

	s.SetInput("0")
	state = s.Submit()
	assert.Empty(t, state.Error)
	assert.Equal(t, "jueves, 4 de noviembre de 2010, 1:42:54 UTC", state.Result)
}

func TestPasteReplacesInput(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{text: "status/28798813530"}, 10)
	s.SetInput("old")

	assert.True(t, s.Paste())
	assert.Equal(t, "status/28798813530", s.State().Input)
	assert.Equal(t, "jueves, 4 de noviembre de 2010, 1:43:01 UTC", s.Submit().Result)
}

func TestPasteFailureIsSwallowed(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{err: errors.New("no clipboard utilities available")}, 10)
	before := testutil.ToFloat64(metrics.ClipboardFailures)
	s.SetInput("keep me")

	assert.False(t, s.Paste())
	assert.Equal(t, State{Input: "keep me"}, s.State())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ClipboardFailures))
}

func TestHistoryNewestFirstAndBounded(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{}, 2)
	for _, id := range []string{"0", "28798813530", "1587003521181437952"} {
		s.SetInput(id)
		s.Submit()
	}
	s.SetInput("invalid")
	s.Submit()

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, "1587003521181437952", history[0].ID)
	assert.Equal(t, "28798813530", history[1].ID)
	assert.Equal(t, int64(1288834981523), history[1].CreatedAt.UnixMilli())
}

func TestHistoryDedupesRepeatedIds(t *testing.T) {
	s := newTestSession(t, &fakeClipboard{}, 5)
	for _, input := range []string{"28798813530", "0", "https://x.com/someuser/status/28798813530"} {
		s.SetInput(input)
		s.Submit()
	}

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, "28798813530", history[0].ID)
	assert.Equal(t, "0", history[1].ID)
}

func TestNewSessionRejectsBadHistorySize(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := NewSession(checker.NewChecker(nil), nil, 0, logger.WithField("subsystem", "session"))
	assert.Error(t, err)
}
