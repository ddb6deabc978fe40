package skills

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	l, err := NewLibrary(t.TempDir(), slog.Default())
	require.NoError(t, err)
	return l
}

func TestCreateAndGetSessionSkill(t *testing.T) {
	l := newTestLibrary(t)

	require.NoError(t, l.Create(Skill{
		Name:        "git-workflow",
		Description: "Branching and commit conventions",
		Content:     "Always branch from main.",
	}))

	got, err := l.Get([]string{"git-workflow"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Always branch from main.", got[0].Content)
	assert.False(t, got[0].Permanent)
}

func TestPermanentSkillRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLibrary(dir, slog.Default())
	require.NoError(t, err)

	require.NoError(t, l.Create(Skill{
		Name:        "deploy-checklist",
		Description: "Steps before any deploy",
		Content:     "1. Run tests\n2. Check dashboards",
		Permanent:   true,
	}))

	// A fresh library over the same directory sees it.
	l2, err := NewLibrary(dir, slog.Default())
	require.NoError(t, err)
	got, err := l2.Get([]string{"deploy-checklist"})
	require.NoError(t, err)
	assert.Equal(t, "Steps before any deploy", got[0].Description)
	assert.Equal(t, "1. Run tests\n2. Check dashboards", got[0].Content)
	assert.True(t, got[0].Permanent)
}

func TestGetUnknownSkillFails(t *testing.T) {
	l := newTestLibrary(t)
	_, err := l.Get([]string{"nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidNames(t *testing.T) {
	l := newTestLibrary(t)
	for _, name := range []string{"", "UPPER", "has space", "../escape", "-leading"} {
		assert.ErrorIs(t, l.Create(Skill{Name: name, Content: "x"}), ErrInvalidName, "name %q", name)
	}
}

func TestListSortedAndShadowed(t *testing.T) {
	l := newTestLibrary(t)
	require.NoError(t, l.Create(Skill{Name: "bravo", Description: "perm", Permanent: true}))
	require.NoError(t, l.Create(Skill{Name: "alpha", Description: "sess"}))
	require.NoError(t, l.Create(Skill{Name: "bravo", Description: "shadowed"}))

	infos := l.List()
	require.Len(t, infos, 2)
	assert.Equal(t, "alpha", infos[0].Name)
	assert.Equal(t, "shadowed", infos[1].Description)
}

func TestUnparseableFileSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.md"), []byte("no frontmatter"), 0o644))

	l, err := NewLibrary(dir, slog.Default())
	require.NoError(t, err)
	assert.Empty(t, l.List())
}
