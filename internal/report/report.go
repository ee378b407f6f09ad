// Package report renders walker events as human-readable lines and keeps the
// per-run tallies for the closing summary.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/lakshaymaurya-felt/begone/internal/ui"
	"github.com/lakshaymaurya-felt/begone/internal/walker"
)

// Reporter consumes the walker's event stream. It is not safe for concurrent
// use; the walk is single-threaded by design.
type Reporter struct {
	w      io.Writer
	styled bool
	dryRun bool

	removed int
	would   int
	failed  int
	freed   int64
}

// New creates a Reporter writing to w. styled enables lipgloss rendering;
// pass false when stdout is not a terminal.
func New(w io.Writer, styled, dryRun bool) *Reporter {
	return &Reporter{w: w, styled: styled, dryRun: dryRun}
}

// Handle renders one event and updates the tallies.
func (r *Reporter) Handle(ev walker.Event) {
	switch ev.Action {
	case walker.Deleted:
		r.removed++
		r.freed += ev.Size
		fmt.Fprintf(r.w, "%s %s %s\n",
			r.render(ui.StyleRemoved, "Removed:"), ev.Path,
			r.render(ui.StyleDim, "("+ui.FormatSize(ev.Size)+")"))

	case walker.WouldDelete:
		r.would++
		r.freed += ev.Size
		fmt.Fprintf(r.w, "%s %s %s\n",
			r.render(ui.StyleWould, "Would remove:"), ev.Path,
			r.render(ui.StyleDim, "("+ui.FormatSize(ev.Size)+")"))

	case walker.Failed:
		r.failed++
		r.freed += ev.Size
		fmt.Fprintf(r.w, "%s %s: %v\n",
			r.render(ui.StyleFailed, "Failed:"), ev.Path, ev.Err)

	case walker.Visited:
		fmt.Fprintf(r.w, "%s\n", r.render(ui.StyleMuted, "Scanned: "+ev.Path))
	}
}

// FailedCount returns how many paths could not be listed or removed.
func (r *Reporter) FailedCount() int { return r.failed }

// Summary prints the run totals and, after a real run, the free space left on
// the volume holding root.
func (r *Reporter) Summary(root string) {
	matched := r.removed + r.would
	if matched == 0 && r.failed == 0 {
		fmt.Fprintln(r.w, r.render(ui.StyleDim, "No matching directories found"))
		return
	}

	action := "Removed"
	if r.dryRun {
		action = "Would remove"
	}
	fmt.Fprintf(r.w, "%s\n", r.render(ui.StyleHeading,
		fmt.Sprintf("%s %d %s (%s)", action, matched,
			pluralize(matched, "directory", "directories"), ui.FormatSize(r.freed))))

	if r.failed > 0 {
		fmt.Fprintf(r.w, "%s\n", r.render(ui.StyleFailed,
			fmt.Sprintf("Failed on %d %s (permission denied or in use)",
				r.failed, pluralize(r.failed, "path", "paths"))))
	}

	if !r.dryRun && r.removed > 0 {
		if abs, err := filepath.Abs(root); err == nil {
			if usage, err := disk.Usage(abs); err == nil {
				fmt.Fprintf(r.w, "%s\n", r.render(ui.StyleDim,
					fmt.Sprintf("Free space on volume: %s", ui.FormatSize(int64(usage.Free)))))
			}
		}
	}
}

func (r *Reporter) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
