// Package masking scrubs secret material out of action results before they
// reach an agent's history or the event stream. Scrubbing runs two phases:
// an exact-value side table built from the task's secret store, then a
// built-in regex sweep for credential shapes. Prompts only ever see the
// placeholder form {{secret:NAME}}.
package masking

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// minSecretLength guards against registering values so short that scrubbing
// them would mangle ordinary text.
const minSecretLength = 4

type secretEntry struct {
	name  string
	value string
}

// Scrubber applies secret masking. Created once per task; safe for
// concurrent use by every router executing actions for that task.
type Scrubber struct {
	mu       sync.RWMutex
	exact    []secretEntry // sorted longest value first
	patterns []*CompiledPattern
	logger   *slog.Logger
}

func NewScrubber(logger *slog.Logger) *Scrubber {
	return &Scrubber{
		patterns: compileBuiltinPatterns(logger),
		logger:   logger.With(slog.String("component", "masking")),
	}
}

// Register adds a secret value to the exact-match side table. Values
// shorter than minSecretLength are ignored.
func (s *Scrubber) Register(name, value string) {
	if len(value) < minSecretLength {
		s.logger.Warn("secret too short to scrub safely, skipping",
			slog.String("name", name))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.exact {
		if e.name == name {
			s.exact[i].value = value
			s.sortLocked()
			return
		}
	}
	s.exact = append(s.exact, secretEntry{name: name, value: value})
	s.sortLocked()
}

// Longer values first so overlapping secrets mask outside-in.
func (s *Scrubber) sortLocked() {
	sort.SliceStable(s.exact, func(i, j int) bool {
		return len(s.exact[i].value) > len(s.exact[j].value)
	})
}

// Scrub replaces every registered secret value with its placeholder, then
// runs the built-in credential sweep.
func (s *Scrubber) Scrub(content string) string {
	if content == "" {
		return content
	}

	s.mu.RLock()
	for _, e := range s.exact {
		content = strings.ReplaceAll(content, e.value, fmt.Sprintf("{{secret:%s}}", e.name))
	}
	s.mu.RUnlock()

	for _, p := range s.patterns {
		content = p.Regex.ReplaceAllString(content, p.Replacement)
	}
	return content
}

// ScrubErr masks an error's message. The original error chain is dropped:
// wrapped errors could re-expose the value through Unwrap.
func (s *Scrubber) ScrubErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s", s.Scrub(err.Error()))
}
