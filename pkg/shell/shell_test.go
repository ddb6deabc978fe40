package shell

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(notify func(Event)) *Service {
	return NewService(200*time.Millisecond, notify, slog.Default())
}

func TestSyncCompletes(t *testing.T) {
	s := newTestService(nil)
	res, err := s.Start(context.Background(), "echo hello", ModeSync, Options{})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "hello\n", res.Output)
	assert.Zero(t, res.ExitCode)
}

func TestSyncNonZeroExit(t *testing.T) {
	s := newTestService(nil)
	res, err := s.Start(context.Background(), "exit 3", ModeSync, Options{})
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, 3, res.ExitCode)
}

func TestSmartFastCommandStaysForeground(t *testing.T) {
	s := newTestService(nil)
	res, err := s.Start(context.Background(), "echo quick", ModeSmart, Options{})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "quick\n", res.Output)
}

func TestSmartSlowCommandBackgrounds(t *testing.T) {
	var (
		mu     sync.Mutex
		events []Event
	)
	s := newTestService(func(e Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})

	res, err := s.Start(context.Background(), "sleep 1; echo done", ModeSmart, Options{OwnerID: "agent-1"})
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, res.Status)
	require.NotEmpty(t, res.CheckID)

	// Completion notice arrives once the command finishes.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) == 1
	}, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	e := events[0]
	mu.Unlock()
	assert.Equal(t, res.CheckID, e.CheckID)
	assert.Equal(t, "agent-1", e.OwnerID)
	assert.Equal(t, StatusCompleted, e.Status)

	// Check drains the output produced after backgrounding.
	chk, err := s.Check(res.CheckID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, chk.Status)
	assert.Contains(t, chk.Output, "done")

	// Finished and consumed: the check_id is gone.
	_, err = s.Check(res.CheckID)
	assert.ErrorIs(t, err, ErrUnknownCheckID)
}

func TestAsyncCheckIncremental(t *testing.T) {
	s := newTestService(nil)
	res, err := s.Start(context.Background(), "echo first; sleep 1; echo second", ModeAsync, Options{})
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, res.Status)

	require.Eventually(t, func() bool {
		chk, err := s.Check(res.CheckID)
		if err != nil {
			return false
		}
		return chk.Status == StatusCompleted && chk.Output != ""
	}, 5*time.Second, 100*time.Millisecond)
}

func TestTerminate(t *testing.T) {
	s := newTestService(nil)
	res, err := s.Start(context.Background(), "sleep 30", ModeAsync, Options{})
	require.NoError(t, err)

	term, err := s.Terminate(res.CheckID)
	require.NoError(t, err)
	assert.Equal(t, StatusTerminated, term.Status)

	_, err = s.Check(res.CheckID)
	assert.ErrorIs(t, err, ErrUnknownCheckID)
}

func TestTimeout(t *testing.T) {
	s := newTestService(nil)
	res, err := s.Start(context.Background(), "sleep 30", ModeSync, Options{Timeout: 300 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, StatusTimeout, res.Status)
}

func TestUnknownCheckID(t *testing.T) {
	s := newTestService(nil)
	_, err := s.Check("nope")
	assert.ErrorIs(t, err, ErrUnknownCheckID)
	_, err = s.Terminate("nope")
	assert.ErrorIs(t, err, ErrUnknownCheckID)
}

func TestEmptyCommand(t *testing.T) {
	s := newTestService(nil)
	_, err := s.Start(context.Background(), "", ModeSync, Options{})
	assert.ErrorIs(t, err, ErrEmptyCommand)
}
