// Package storage persists puzzles as JSON files on disk, one per
// difficulty subdirectory, adapted from the teacher's infrastructure/
// storage.FS.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/tranmh/sudoku-solver/internal/puzzle"
)

// ErrNotFound is returned by Load when no puzzle with the given ID exists.
var ErrNotFound = errors.New("storage: puzzle not found")

// FS persists puzzles under a root directory, one JSON file per puzzle,
// grouped into a subdirectory per difficulty.
type FS struct {
	dir string
}

// NewFS wires an FS rooted at dir.
func NewFS(dir string) *FS {
	return &FS{dir: dir}
}

func (s *FS) pathFor(id, difficultyName string) string {
	sub := difficultyName
	if sub == "" {
		sub = "medium"
	}
	return filepath.Join(s.dir, sub, strings.TrimSpace(id)+".json")
}

// Save writes p to disk, creating its difficulty subdirectory as needed.
func (s *FS) Save(ctx context.Context, p *puzzle.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("storage: puzzle missing ID")
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

var difficultyDirs = []string{"easy", "medium", "hard", "expert"}

// Load reads the puzzle with the given ID, searching every difficulty
// subdirectory.
func (s *FS) Load(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	for _, dir := range difficultyDirs {
		path := filepath.Join(s.dir, dir, id+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out puzzle.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, ErrNotFound
}

// List enumerates every saved puzzle's metadata across all difficulty
// subdirectories.
func (s *FS) List(ctx context.Context) ([]puzzle.Meta, error) {
	var out []puzzle.Meta
	for _, dir := range difficultyDirs {
		path := filepath.Join(s.dir, dir)
		ents, err := os.ReadDir(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(path, e.Name()))
			if err != nil {
				continue
			}
			var p puzzle.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, puzzle.Meta{
				ID:         p.ID,
				Name:       p.Name,
				Difficulty: p.Difficulty,
				CreatedAt:  p.CreatedAt,
			})
		}
	}
	return out, nil
}
