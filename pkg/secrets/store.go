// Package secrets holds task-scoped secret material. Values go in at
// generation time and only ever come out through placeholder substitution
// immediately before an outbound call; agents address secrets exclusively
// by name.
package secrets

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLength is the generated secret length when the action omits one.
const DefaultLength = 32

const (
	minLength = 8
	maxLength = 4096
)

// Generated secrets use an unambiguous alphanumeric alphabet so they embed
// safely in shell commands and headers.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

var (
	ErrNotFound      = errors.New("secret not found")
	ErrAlreadyExists = errors.New("secret already exists")
	ErrBadLength     = errors.New("invalid secret length")
)

var placeholderRe = regexp.MustCompile(`\{\{secret:([A-Za-z0-9_\-\.]+)\}\}`)

// Registrar receives generated values so results can be scrubbed. Satisfied
// by *masking.Scrubber.
type Registrar interface {
	Register(name, value string)
}

// Store is one task's secret table. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	values    map[string]string
	registrar Registrar
	logger    *slog.Logger
}

func NewStore(registrar Registrar, logger *slog.Logger) *Store {
	return &Store{
		values:    make(map[string]string),
		registrar: registrar,
		logger:    logger.With(slog.String("component", "secrets")),
	}
}

// Generate creates and stores a random secret. The value is registered with
// the scrubber and never returned.
func (s *Store) Generate(name string, length int) error {
	if length == 0 {
		length = DefaultLength
	}
	if length < minLength || length > maxLength {
		return fmt.Errorf("%w: %d", ErrBadLength, length)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.values[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}

	value, err := randomString(length)
	if err != nil {
		return fmt.Errorf("generating secret %s: %w", name, err)
	}
	s.values[name] = value
	if s.registrar != nil {
		s.registrar.Register(name, value)
	}
	s.logger.Info("secret generated", slog.String("name", name), slog.Int("length", length))
	return nil
}

// Put stores an externally supplied value (config-seeded credentials).
func (s *Store) Put(name, value string) {
	s.mu.Lock()
	s.values[name] = value
	s.mu.Unlock()
	if s.registrar != nil {
		s.registrar.Register(name, value)
	}
}

// Search returns sorted secret names containing the query, case-insensitive.
// An empty query lists everything.
func (s *Store) Search(query string) []string {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for name := range s.values {
		if q == "" || strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Resolve substitutes every {{secret:NAME}} placeholder in the input. An
// unknown name is an error so a typo fails loudly instead of going out on
// the wire as a literal placeholder.
func (s *Store) Resolve(input string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(input, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		value, ok := s.values[name]
		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
	}
	return out, nil
}

// Has reports whether a named secret exists.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[name]
	return ok
}

func randomString(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
