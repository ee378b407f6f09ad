// Package walker traverses a directory tree, removing (or previewing the
// removal of) every directory whose name is in the active rule set. A matched
// directory is handled as a unit: it is deleted or reported, never descended
// into.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lakshaymaurya-felt/begone/internal/rules"
)

// Action describes what the walker did with a path.
type Action int

const (
	// Deleted means the matched subtree (or symlink) was removed.
	Deleted Action = iota
	// WouldDelete means the path matched but dry-run left it untouched.
	WouldDelete
	// Failed means the path could not be listed or removed; Event.Err holds
	// the reason. A partially removed subtree is also reported as Failed.
	Failed
	// Visited marks a non-matching directory, emitted only in verbose mode.
	Visited
)

// Event is emitted once per matched directory (and, in verbose mode, once per
// visited non-matching directory), in traversal order.
type Event struct {
	Path   string
	Action Action
	Size   int64 // bytes reclaimed (or reclaimable in dry-run); best effort
	Err    error // set when Action == Failed
}

// Config is the immutable per-run configuration.
type Config struct {
	Root         string // defaults to "."
	Ecosystem    rules.Ecosystem
	Rules        rules.RuleSet
	DryRun       bool
	Verbose      bool
	ProjectsOnly bool // require a project manifest next to the match
}

// Seams for fault-injection in tests. Deletion and listing failures are hard
// to provoke when the test runs as root.
var (
	readDir    = os.ReadDir
	removeTree = removeTreeMeasured
	removeLink = os.Remove
)

// Walk traverses the tree rooted at cfg.Root breadth-first with an explicit
// work-list, calling emit once per event as it happens. Per-entry listing and
// deletion errors become Failed events and never abort the run; only an
// unusable root makes Walk itself return an error, before any traversal.
func Walk(cfg Config, emit func(Event)) error {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %s is not a directory", root)
	}

	queue := []string{root}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := readDir(dir)
		if err != nil {
			emit(Event{Path: dir, Action: Failed, Err: fmt.Errorf("list directory: %w", err)})
			continue
		}

		for _, entry := range entries {
			isLink := entry.Type()&fs.ModeSymlink != 0
			if !entry.IsDir() && !isLink {
				continue // plain files are never matched or removed
			}
			path := filepath.Join(dir, entry.Name())

			matched := cfg.Rules.Contains(entry.Name())
			if matched && cfg.ProjectsOnly {
				matched = hasIndicator(entries, cfg.Ecosystem, entry.Name())
			}

			if !matched {
				if isLink {
					continue // never descend through a symlink
				}
				if cfg.Verbose {
					emit(Event{Path: path, Action: Visited})
				}
				queue = append(queue, path)
				continue
			}

			switch {
			case cfg.DryRun:
				var size int64
				if !isLink {
					size = treeSize(path)
				}
				emit(Event{Path: path, Action: WouldDelete, Size: size})

			case isLink:
				// Remove the link itself; never recurse through its target.
				if err := removeLink(path); err != nil {
					emit(Event{Path: path, Action: Failed, Err: fmt.Errorf("remove symlink: %w", err)})
				} else {
					emit(Event{Path: path, Action: Deleted})
				}

			default:
				freed, err := removeTree(path)
				if err != nil {
					emit(Event{Path: path, Action: Failed, Size: freed, Err: err})
				} else {
					emit(Event{Path: path, Action: Deleted, Size: freed})
				}
			}
		}
	}
	return nil
}

// RemoveTree deletes the subtree at path and reports the bytes reclaimed.
// Interactive mode calls this directly once the user has confirmed a
// selection made from a dry-run walk.
func RemoveTree(path string) (int64, error) {
	return removeTree(path)
}

// hasIndicator reports whether the parent listing contains a project manifest
// that claims the matched artifact name (e.g. Cargo.toml next to target/).
func hasIndicator(siblings []os.DirEntry, eco rules.Ecosystem, name string) bool {
	patterns := rules.Indicators(eco, name)
	for _, sib := range siblings {
		if sib.IsDir() {
			continue
		}
		for _, p := range patterns {
			if rules.MatchIndicator(p, sib.Name()) {
				return true
			}
		}
	}
	return false
}

// removeTreeMeasured deletes the subtree at path, summing file sizes as files
// are unlinked so that a partial failure still reports what was actually
// freed. The remaining directory skeleton is swept with os.RemoveAll.
func removeTreeMeasured(path string) (int64, error) {
	var freed int64
	var firstErr error

	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if os.IsPermission(err) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		var size int64
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}
		if rmErr := os.Remove(p); rmErr == nil {
			freed += size
		} else if firstErr == nil {
			firstErr = rmErr
		}
		return nil
	})
	if walkErr != nil && firstErr == nil {
		firstErr = walkErr
	}
	if err := os.RemoveAll(path); err != nil && firstErr == nil {
		firstErr = err
	}
	return freed, firstErr
}

// treeSize sums file sizes under path without modifying anything. Unreadable
// entries are skipped; dry-run sizes are a best-effort preview.
func treeSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
