// Package shell runs shell commands for the shell action and keeps the
// command table: every started command gets a check_id and stays addressable
// for incremental output reads and termination until reaped. The service is
// process-wide so a continuation can land on a different router instance
// than the one that started the command.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// Mode selects how a start call blocks.
type Mode string

const (
	// ModeSmart blocks up to the configured threshold, then backgrounds.
	ModeSmart Mode = "smart"
	// ModeSync blocks until completion or timeout.
	ModeSync Mode = "sync"
	// ModeAsync backgrounds immediately.
	ModeAsync Mode = "async"
)

// Status of one tracked command.
type Status string

const (
	StatusRunning    Status = "running"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusTerminated Status = "terminated"
	StatusTimeout    Status = "timeout"
)

var (
	ErrUnknownCheckID = errors.New("unknown check_id")
	ErrEmptyCommand   = errors.New("empty command")
)

// Event is the completion notice for a backgrounded command.
type Event struct {
	CheckID  string
	OwnerID  string
	Status   Status
	ExitCode int
}

// Options configures one command start.
type Options struct {
	WorkingDir string
	Timeout    time.Duration
	Env        []string
	OwnerID    string // agent that started the command; completion events route here
}

// Result is what a start, check, or terminate returns. Output is the new
// output since the last read of this command.
type Result struct {
	CheckID  string
	Status   Status
	Output   string
	ExitCode int
	Duration time.Duration
}

type command struct {
	id      string
	ownerID string

	mu           sync.Mutex
	buf          bytes.Buffer
	readOffset   int
	status       Status
	backgrounded bool
	exitCode     int
	started      time.Time
	finished     time.Time

	cancel context.CancelFunc
	proc   *exec.Cmd
	done   chan struct{}
}

// Service owns the command table. Safe for concurrent use.
type Service struct {
	mu       sync.Mutex
	commands map[string]*command

	smartWait time.Duration
	notify    func(Event)
	logger    *slog.Logger
}

// NewService builds the shell service. smartWait is the smart-mode
// foreground threshold; notify (optional) receives completion events for
// commands that went to the background.
func NewService(smartWait time.Duration, notify func(Event), logger *slog.Logger) *Service {
	return &Service{
		commands:  make(map[string]*command),
		smartWait: smartWait,
		notify:    notify,
		logger:    logger.With(slog.String("component", "shell")),
	}
}

// Start launches a command under the requested mode. Sync and completed
// smart starts return the final result; async and still-running smart
// starts return a running result whose CheckID addresses the command table.
func (s *Service) Start(ctx context.Context, cmdline string, mode Mode, opts Options) (*Result, error) {
	if cmdline == "" {
		return nil, ErrEmptyCommand
	}
	if mode == "" {
		mode = ModeSmart
	}

	runCtx, cancel := context.WithCancel(context.Background())
	proc := exec.CommandContext(runCtx, "sh", "-c", cmdline)
	proc.Dir = opts.WorkingDir
	if len(opts.Env) > 0 {
		proc.Env = opts.Env
	}
	// Own process group so termination reaches children.
	proc.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	proc.Cancel = func() error {
		return syscall.Kill(-proc.Process.Pid, syscall.SIGKILL)
	}

	c := &command{
		id:      uuid.NewString(),
		ownerID: opts.OwnerID,
		status:  StatusRunning,
		started: time.Now(),
		cancel:  cancel,
		proc:    proc,
		done:    make(chan struct{}),
	}
	proc.Stdout = syncWriter{c}
	proc.Stderr = syncWriter{c}

	if err := proc.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("starting command: %w", err)
	}

	s.mu.Lock()
	s.commands[c.id] = c
	s.mu.Unlock()

	s.logger.Info("command started",
		slog.String("check_id", c.id),
		slog.String("mode", string(mode)),
		slog.String("owner", opts.OwnerID))

	go s.reap(c, opts.Timeout)

	switch mode {
	case ModeAsync:
		return &Result{CheckID: c.id, Status: StatusRunning}, nil
	case ModeSync:
		<-c.done
		return s.consume(c)
	default: // smart
		select {
		case <-c.done:
			return s.consume(c)
		case <-time.After(s.smartWait):
			c.mu.Lock()
			if c.status != StatusRunning {
				// Finished while we were deciding; deliver the final result.
				c.mu.Unlock()
				<-c.done
				return s.consume(c)
			}
			c.backgrounded = true
			c.mu.Unlock()
			return &Result{CheckID: c.id, Status: StatusRunning, Output: c.peek()}, nil
		}
	}
}

// Check returns output accumulated since the previous check, plus status.
func (s *Service) Check(checkID string) (*Result, error) {
	c, ok := s.lookup(checkID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCheckID, checkID)
	}
	res, err := s.consume(c)
	if err != nil {
		return nil, err
	}
	if res.Status != StatusRunning {
		s.remove(checkID)
	}
	return res, nil
}

// Terminate kills a running command and returns its final output.
func (s *Service) Terminate(checkID string) (*Result, error) {
	c, ok := s.lookup(checkID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCheckID, checkID)
	}

	c.mu.Lock()
	running := c.status == StatusRunning
	if running {
		c.status = StatusTerminated
	}
	c.mu.Unlock()

	if running {
		c.cancel()
		<-c.done
	}
	res, err := s.consume(c)
	if err != nil {
		return nil, err
	}
	s.remove(checkID)
	return res, nil
}

// Shutdown terminates every tracked command.
func (s *Service) Shutdown() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.commands))
	for id := range s.commands {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		if _, err := s.Terminate(id); err != nil && !errors.Is(err, ErrUnknownCheckID) {
			s.logger.Warn("terminating command on shutdown",
				slog.String("check_id", id), slog.Any("error", err))
		}
	}
}

// reap waits for process exit, applies the timeout, and emits the
// completion event if the command had gone to the background.
func (s *Service) reap(c *command, timeout time.Duration) {
	var timer *time.Timer
	if timeout > 0 {
		timer = time.AfterFunc(timeout, func() {
			c.mu.Lock()
			if c.status == StatusRunning {
				c.status = StatusTimeout
			}
			c.mu.Unlock()
			c.cancel()
		})
	}

	err := c.proc.Wait()
	if timer != nil {
		timer.Stop()
	}
	c.cancel()

	c.mu.Lock()
	c.finished = time.Now()
	c.exitCode = c.proc.ProcessState.ExitCode()
	if c.status == StatusRunning {
		if err != nil || c.exitCode != 0 {
			c.status = StatusFailed
		} else {
			c.status = StatusCompleted
		}
	}
	status := c.status
	wasBackgrounded := c.backgrounded
	c.mu.Unlock()
	close(c.done)

	s.logger.Info("command finished",
		slog.String("check_id", c.id),
		slog.String("status", string(status)),
		slog.Int("exit_code", c.exitCode))

	if wasBackgrounded && s.notify != nil && status != StatusTerminated {
		s.notify(Event{CheckID: c.id, OwnerID: c.ownerID, Status: status, ExitCode: c.exitCode})
	}
}

func (s *Service) lookup(id string) (*command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.commands[id]
	return c, ok
}

func (s *Service) remove(id string) {
	s.mu.Lock()
	delete(s.commands, id)
	s.mu.Unlock()
}

// consume drains unread output and snapshots status. Finished commands that
// were fully consumed by a sync/smart start are removed by the caller.
func (s *Service) consume(c *command) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.buf.String()[c.readOffset:]
	c.readOffset = c.buf.Len()

	dur := time.Since(c.started)
	if !c.finished.IsZero() {
		dur = c.finished.Sub(c.started)
	}
	res := &Result{
		CheckID:  c.id,
		Status:   c.status,
		Output:   out,
		ExitCode: c.exitCode,
		Duration: dur,
	}
	if c.status != StatusRunning && c.status != StatusTerminated {
		// Finished via sync path: the table entry is dead weight.
		go s.remove(c.id)
	}
	return res, nil
}

func (c *command) peek() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.buf.String()[c.readOffset:]
	c.readOffset = c.buf.Len()
	return out
}

type syncWriter struct{ c *command }

func (w syncWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	return w.c.buf.Write(p)
}
