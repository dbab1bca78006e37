// Package snapshot persists raw crawl payloads as timestamped JSON files so
// the newest upstream state survives outside the database.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonboulle/clockwork"

	"ubikais/mirror/internal/logging"
)

const timestampLayout = "20060102_150405"

// Writer dumps per-category JSON files into one directory. Each write
// produces a timestamped file plus a "<category>_current.json" overwrite;
// retention keeps only the newest N timestamped files per category.
type Writer struct {
	dir   string
	keep  int
	clock clockwork.Clock
}

// NewWriter creates the output directory if needed.
func NewWriter(dir string, keep int, clock clockwork.Clock) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	if keep < 1 {
		keep = 1
	}
	return &Writer{dir: dir, keep: keep, clock: clock}, nil
}

// Write stores one category payload and prunes old snapshots of that
// category. Pruning failures only log; the fresh write is what matters.
func (w *Writer) Write(category string, data interface{}) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s snapshot: %w", category, err)
	}

	ts := w.clock.Now().Format(timestampLayout)
	stamped := filepath.Join(w.dir, fmt.Sprintf("%s_%s.json", category, ts))
	if err := os.WriteFile(stamped, b, 0o644); err != nil {
		return fmt.Errorf("write %s snapshot: %w", category, err)
	}

	current := filepath.Join(w.dir, category+"_current.json")
	if err := os.WriteFile(current, b, 0o644); err != nil {
		return fmt.Errorf("write %s current snapshot: %w", category, err)
	}

	if err := w.prune(category); err != nil {
		logging.Warn("snapshot prune failed", "category", category, "error", err.Error())
	}
	return nil
}

// prune removes all but the newest keep timestamped files for a category.
// The lexicographic order of the timestamp format is chronological.
func (w *Writer) prune(category string) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return err
	}

	prefix := category + "_"
	var stamped []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		if name == category+"_current.json" {
			continue
		}
		rest := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".json")
		if len(rest) != len(timestampLayout) {
			continue
		}
		stamped = append(stamped, name)
	}

	if len(stamped) <= w.keep {
		return nil
	}

	sort.Strings(stamped)
	for _, name := range stamped[:len(stamped)-w.keep] {
		if err := os.Remove(filepath.Join(w.dir, name)); err != nil {
			return err
		}
	}
	return nil
}
