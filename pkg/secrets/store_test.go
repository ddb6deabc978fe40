package secrets

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRegistrar struct {
	names map[string]string
}

func (r *recordingRegistrar) Register(name, value string) {
	if r.names == nil {
		r.names = map[string]string{}
	}
	r.names[name] = value
}

func TestGenerateRegistersWithScrubber(t *testing.T) {
	reg := &recordingRegistrar{}
	s := NewStore(reg, slog.Default())

	require.NoError(t, s.Generate("API_TOKEN", 0))
	assert.True(t, s.Has("API_TOKEN"))
	assert.Len(t, reg.names["API_TOKEN"], DefaultLength)
}

func TestGenerateDuplicateFails(t *testing.T) {
	s := NewStore(nil, slog.Default())
	require.NoError(t, s.Generate("X_KEY", 16))
	assert.ErrorIs(t, s.Generate("X_KEY", 16), ErrAlreadyExists)
}

func TestGenerateLengthBounds(t *testing.T) {
	s := NewStore(nil, slog.Default())
	assert.ErrorIs(t, s.Generate("SHORT", 4), ErrBadLength)
	assert.ErrorIs(t, s.Generate("HUGE", 10000), ErrBadLength)
	assert.NoError(t, s.Generate("OK", 8))
}

func TestSearch(t *testing.T) {
	s := NewStore(nil, slog.Default())
	s.Put("DB_PASSWORD", "p1-secret")
	s.Put("API_KEY", "k1-secret")
	s.Put("db_replica_password", "p2-secret")

	assert.Equal(t, []string{"DB_PASSWORD", "db_replica_password"}, s.Search("db"))
	assert.Len(t, s.Search(""), 3)
	assert.Empty(t, s.Search("missing"))
}

func TestResolve(t *testing.T) {
	s := NewStore(nil, slog.Default())
	s.Put("TOKEN", "tok-value-123")

	out, err := s.Resolve("Authorization: Bearer {{secret:TOKEN}}")
	require.NoError(t, err)
	assert.Equal(t, "Authorization: Bearer tok-value-123", out)

	// Unknown names fail loudly.
	_, err = s.Resolve("x={{secret:NOPE}}")
	assert.ErrorIs(t, err, ErrNotFound)

	// No placeholders passes through.
	out, err = s.Resolve("plain text")
	require.NoError(t, err)
	assert.Equal(t, "plain text", out)
}
