// Package fileops implements the file access actions: bounded text reads
// and create-or-edit writes with exact-string replacement.
package fileops

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Read caps keep file content prompt-sized.
const (
	DefaultReadLimit = 2000 // lines
	MaxLineLength    = 2000 // characters per line before truncation
)

var (
	ErrRelativePath  = errors.New("path must be absolute")
	ErrBinaryFile    = errors.New("file appears to be binary")
	ErrFileExists    = errors.New("file already exists")
	ErrStringAbsent  = errors.New("old_string not found in file")
	ErrStringNotUniq = errors.New("old_string occurs more than once")
	ErrSameString    = errors.New("new_string equals old_string")
)

// ReadResult is one bounded read.
type ReadResult struct {
	Content    string
	Offset     int // first line returned, 1-based
	Lines      int // lines returned
	TotalLines int
	Truncated  bool
}

// ReadFile returns up to limit lines starting at offset (1-based). Long
// lines are cut at MaxLineLength with a marker.
func ReadFile(path string, offset, limit int) (*ReadResult, error) {
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: %s", ErrRelativePath, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	// Binary means a NUL byte or content that is not valid UTF-8.
	if bytes.IndexByte(raw, 0) >= 0 || !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: %s", ErrBinaryFile, path)
	}

	if offset < 1 {
		offset = 1
	}
	if limit <= 0 || limit > DefaultReadLimit {
		limit = DefaultReadLimit
	}

	lines := strings.Split(string(raw), "\n")
	total := len(lines)
	if offset > total {
		return &ReadResult{Offset: offset, TotalLines: total}, nil
	}

	end := offset - 1 + limit
	truncated := false
	if end > total {
		end = total
	} else if end < total {
		truncated = true
	}

	window := lines[offset-1 : end]
	out := make([]string, len(window))
	for i, line := range window {
		if len(line) > MaxLineLength {
			line = line[:MaxLineLength] + "… [line truncated]"
			truncated = true
		}
		out[i] = line
	}

	return &ReadResult{
		Content:    strings.Join(out, "\n"),
		Offset:     offset,
		Lines:      len(window),
		TotalLines: total,
		Truncated:  truncated,
	}, nil
}

// WriteFile creates a new file. Existing files are refused so a write can
// never silently clobber; edits must go through EditFile.
func WriteFile(path, content string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %s", ErrRelativePath, path)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Overwrite replaces an existing file's content wholesale.
func Overwrite(path, content string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %s", ErrRelativePath, path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// EditFile replaces oldString with newString. Without replaceAll the
// occurrence must be unique, so an ambiguous edit fails instead of guessing.
// Returns the number of replacements made.
func EditFile(path, oldString, newString string, replaceAll bool) (int, error) {
	if !filepath.IsAbs(path) {
		return 0, fmt.Errorf("%w: %s", ErrRelativePath, path)
	}
	if oldString == newString {
		return 0, ErrSameString
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(raw)

	count := strings.Count(content, oldString)
	switch {
	case count == 0:
		return 0, fmt.Errorf("%w: %s", ErrStringAbsent, path)
	case count > 1 && !replaceAll:
		return 0, fmt.Errorf("%w (%d occurrences): %s", ErrStringNotUniq, count, path)
	}

	if !replaceAll {
		content = strings.Replace(content, oldString, newString, 1)
		count = 1
	} else {
		content = strings.ReplaceAll(content, oldString, newString)
	}

	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return count, nil
}
