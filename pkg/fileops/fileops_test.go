package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeTemp(t, "f.txt", "one\ntwo\nthree\nfour")

	res, err := ReadFile(path, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\nfour", res.Content)
	assert.Equal(t, 4, res.TotalLines)
	assert.False(t, res.Truncated)

	res, err = ReadFile(path, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "two\nthree", res.Content)
	assert.Equal(t, 2, res.Offset)
	assert.True(t, res.Truncated)
}

func TestReadFileRejectsRelativeAndBinary(t *testing.T) {
	_, err := ReadFile("relative.txt", 0, 0)
	assert.ErrorIs(t, err, ErrRelativePath)

	path := filepath.Join(t.TempDir(), "bin")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50, 0x00, 0x47}, 0o644))
	_, err = ReadFile(path, 0, 0)
	assert.ErrorIs(t, err, ErrBinaryFile)
}

func TestReadFileRejectsInvalidUTF8(t *testing.T) {
	// Latin-1 content: no NUL byte, but 0xe9 is not valid UTF-8.
	path := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9, '\n'}, 0o644))

	_, err := ReadFile(path, 0, 0)
	assert.ErrorIs(t, err, ErrBinaryFile)
}

func TestReadFileCapsLines(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < DefaultReadLimit+100; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	path := writeTemp(t, "big.txt", sb.String())

	res, err := ReadFile(path, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultReadLimit, res.Lines)
	assert.True(t, res.Truncated)
}

func TestReadFileTruncatesLongLines(t *testing.T) {
	path := writeTemp(t, "wide.txt", strings.Repeat("x", MaxLineLength+50))

	res, err := ReadFile(path, 0, 0)
	require.NoError(t, err)
	assert.Contains(t, res.Content, "[line truncated]")
	assert.True(t, res.Truncated)
}

func TestReadFileOffsetPastEnd(t *testing.T) {
	path := writeTemp(t, "s.txt", "only")
	res, err := ReadFile(path, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Content)
	assert.Zero(t, res.Lines)
}

func TestWriteFileRefusesExisting(t *testing.T) {
	path := writeTemp(t, "exists.txt", "original")
	assert.ErrorIs(t, WriteFile(path, "clobber"), ErrFileExists)

	fresh := filepath.Join(t.TempDir(), "sub", "new.txt")
	require.NoError(t, WriteFile(fresh, "hello"))
	raw, err := os.ReadFile(fresh)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))
}

func TestEditFile(t *testing.T) {
	path := writeTemp(t, "e.txt", "alpha beta gamma")

	n, err := EditFile(path, "beta", "BETA", false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	raw, _ := os.ReadFile(path)
	assert.Equal(t, "alpha BETA gamma", string(raw))
}

func TestEditFileAmbiguous(t *testing.T) {
	path := writeTemp(t, "a.txt", "dup dup dup")

	_, err := EditFile(path, "dup", "one", false)
	assert.ErrorIs(t, err, ErrStringNotUniq)

	n, err := EditFile(path, "dup", "one", true)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestEditFileErrors(t *testing.T) {
	path := writeTemp(t, "x.txt", "content")

	_, err := EditFile(path, "absent", "y", false)
	assert.ErrorIs(t, err, ErrStringAbsent)

	_, err = EditFile(path, "same", "same", false)
	assert.ErrorIs(t, err, ErrSameString)
}
