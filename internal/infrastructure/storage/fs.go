package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"svw.info/watersort/internal/domain"
)

// FS reads YAML level files from a file system, grouped in one folder per
// difficulty with a flat root as fallback.
type FS struct{ fsys fs.FS }

func NewFS(fsys fs.FS) *FS { return &FS{fsys: fsys} }

// levelFile is the on-disk layout of a level.
type levelFile struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name,omitempty"`
	Difficulty string         `yaml:"difficulty,omitempty"`
	Depth      int            `yaml:"solve_depth,omitempty"`
	Bottles    []bottleColors `yaml:"bottles"`
}

// bottleColors is one bottle, bottom to top, written as a flow sequence.
type bottleColors []string

func (b bottleColors) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, s := range b {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
	}
	return n, nil
}

func diffDir(d domain.Difficulty) string { return d.String() }

func (s *FS) Load(ctx context.Context, id string) (*domain.Level, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\`) || !fs.ValidPath(id) {
		return nil, fmt.Errorf("%w: %q", domain.ErrLevelNotFound, id)
	}
	type cand struct {
		path string
		diff domain.Difficulty
		flat bool
	}
	var candidates []cand
	for _, d := range domain.Difficulties {
		candidates = append(candidates, cand{path.Join(diffDir(d), id+".yaml"), d, false})
	}
	candidates = append(candidates, cand{id + ".yaml", domain.Medium, true})

	for _, c := range candidates {
		data, err := fs.ReadFile(s.fsys, c.path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		lvl, err := ParseLevel(data)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", c.path, err)
		}
		lvl.ID = id
		// Folder wins over an absent difficulty field.
		if !c.flat && !hasDifficulty(data) {
			lvl.Difficulty = c.diff
		}
		return lvl, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrLevelNotFound, id)
}

func (s *FS) List(ctx context.Context) ([]domain.LevelMeta, error) {
	var out []domain.LevelMeta
	dirs := []string{"."}
	for _, d := range domain.Difficulties {
		dirs = append(dirs, diffDir(d))
	}
	for _, dir := range dirs {
		ents, err := fs.ReadDir(s.fsys, dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
				continue
			}
			lvl, err := s.Load(ctx, strings.TrimSuffix(e.Name(), ".yaml"))
			if err != nil {
				continue
			}
			out = append(out, domain.LevelMeta{
				ID:         lvl.ID,
				Name:       lvl.Name,
				Difficulty: lvl.Difficulty,
				Bottles:    len(lvl.Bottles),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Difficulty != out[j].Difficulty {
			return out[i].Difficulty < out[j].Difficulty
		}
		return out[i].ID < out[j].ID
	})
	return dedupe(out), nil
}

// dedupe drops repeated IDs; Load resolves a shadowed flat file to the folder copy.
func dedupe(in []domain.LevelMeta) []domain.LevelMeta {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, m := range in {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

func hasDifficulty(data []byte) bool {
	var probe struct {
		Difficulty string `yaml:"difficulty"`
	}
	return yaml.Unmarshal(data, &probe) == nil && probe.Difficulty != ""
}

// ParseLevel decodes a YAML level definition.
func ParseLevel(data []byte) (*domain.Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	lvl := &domain.Level{
		ID:         f.ID,
		Name:       f.Name,
		Difficulty: domain.ParseDifficulty(f.Difficulty),
		Depth:      f.Depth,
		Bottles:    make([][]domain.Color, len(f.Bottles)),
	}
	for i, names := range f.Bottles {
		if len(names) > domain.Capacity {
			return nil, fmt.Errorf("bottle %d: %w", i+1, domain.ErrTooManyColors)
		}
		colors := make([]domain.Color, 0, len(names))
		for _, n := range names {
			c, err := domain.ParseColor(n)
			if err != nil {
				return nil, fmt.Errorf("bottle %d: %w", i+1, err)
			}
			colors = append(colors, c)
		}
		lvl.Bottles[i] = colors
	}
	return lvl, nil
}

// MarshalLevel encodes a level in the format ParseLevel reads.
func MarshalLevel(l *domain.Level) ([]byte, error) {
	f := levelFile{
		ID:         l.ID,
		Name:       l.Name,
		Difficulty: l.Difficulty.String(),
		Depth:      l.Depth,
		Bottles:    make([]bottleColors, len(l.Bottles)),
	}
	for i, colors := range l.Bottles {
		names := make([]string, len(colors))
		for j, c := range colors {
			names[j] = c.String()
		}
		f.Bottles[i] = names
	}
	return yaml.Marshal(&f)
}
