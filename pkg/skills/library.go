// Package skills manages the skill library: reusable instruction documents
// an agent can load into its prompt. Permanent skills persist as markdown
// files with a YAML frontmatter header; session skills live in memory and
// die with the process.
package skills

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound    = errors.New("skill not found")
	ErrInvalidName = errors.New("invalid skill name")
)

var nameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_\-]{0,63}$`)

// Skill is one loadable instruction document.
type Skill struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Content     string `yaml:"-"`
	Permanent   bool   `yaml:"-"`
}

// Info is the listing form shown in prompts: name and description only,
// content loads on demand.
type Info struct {
	Name        string
	Description string
}

// Library holds permanent and session skills. Safe for concurrent use.
type Library struct {
	dir     string
	mu      sync.RWMutex
	session map[string]Skill
	perm    map[string]Skill
	logger  *slog.Logger
}

// NewLibrary opens the permanent skill directory, creating it if missing,
// and indexes its contents. Unparseable files are logged and skipped.
func NewLibrary(dir string, logger *slog.Logger) (*Library, error) {
	l := &Library{
		dir:     dir,
		session: make(map[string]Skill),
		perm:    make(map[string]Skill),
		logger:  logger.With(slog.String("component", "skills")),
	}
	if dir == "" {
		return l, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating skill directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading skill directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		skill, err := l.loadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			l.logger.Warn("skipping unparseable skill file",
				slog.String("file", e.Name()), slog.Any("error", err))
			continue
		}
		l.perm[skill.Name] = skill
	}
	l.logger.Info("skill library opened",
		slog.String("dir", dir), slog.Int("permanent", len(l.perm)))
	return l, nil
}

// List returns every known skill sorted by name; session skills shadow
// permanent ones with the same name.
func (l *Library) List() []Info {
	l.mu.RLock()
	defer l.mu.RUnlock()

	merged := make(map[string]Skill, len(l.perm)+len(l.session))
	for n, s := range l.perm {
		merged[n] = s
	}
	for n, s := range l.session {
		merged[n] = s
	}

	out := make([]Info, 0, len(merged))
	for _, s := range merged {
		out = append(out, Info{Name: s.Name, Description: s.Description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get resolves named skills for loading into an agent's active set. All
// names must resolve; a single unknown name fails the whole load.
func (l *Library) Get(names []string) ([]Skill, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Skill, 0, len(names))
	var missing []string
	for _, n := range names {
		if s, ok := l.session[n]; ok {
			out = append(out, s)
			continue
		}
		if s, ok := l.perm[n]; ok {
			out = append(out, s)
			continue
		}
		missing = append(missing, n)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
	}
	return out, nil
}

// Create stores a skill. Permanent skills also land on disk; either kind
// overwrites an existing skill of the same name.
func (l *Library) Create(skill Skill) error {
	if !nameRe.MatchString(skill.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, skill.Name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if skill.Permanent {
		if l.dir == "" {
			return errors.New("no permanent skill directory configured")
		}
		if err := l.writeFile(skill); err != nil {
			return err
		}
		l.perm[skill.Name] = skill
		l.logger.Info("permanent skill created", slog.String("name", skill.Name))
		return nil
	}
	l.session[skill.Name] = skill
	l.logger.Info("session skill created", slog.String("name", skill.Name))
	return nil
}

func (l *Library) loadFile(path string) (Skill, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, err
	}
	header, body, ok := splitFrontmatter(string(raw))
	if !ok {
		return Skill{}, fmt.Errorf("missing frontmatter in %s", filepath.Base(path))
	}
	var skill Skill
	if err := yaml.Unmarshal([]byte(header), &skill); err != nil {
		return Skill{}, fmt.Errorf("parsing frontmatter: %w", err)
	}
	if !nameRe.MatchString(skill.Name) {
		return Skill{}, fmt.Errorf("%w: %q", ErrInvalidName, skill.Name)
	}
	skill.Content = strings.TrimSpace(body)
	skill.Permanent = true
	return skill, nil
}

func (l *Library) writeFile(skill Skill) error {
	header, err := yaml.Marshal(Skill{Name: skill.Name, Description: skill.Description})
	if err != nil {
		return fmt.Errorf("encoding frontmatter: %w", err)
	}
	doc := fmt.Sprintf("---\n%s---\n\n%s\n", header, strings.TrimSpace(skill.Content))
	path := filepath.Join(l.dir, skill.Name+".md")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing skill file: %w", err)
	}
	return nil
}

func splitFrontmatter(doc string) (header, body string, ok bool) {
	if !strings.HasPrefix(doc, "---\n") {
		return "", "", false
	}
	rest := doc[len("---\n"):]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return "", "", false
	}
	header = rest[:idx+1]
	body = rest[idx+len("\n---"):]
	if nl := strings.Index(body, "\n"); nl >= 0 {
		body = body[nl+1:]
	}
	return header, body, true
}
