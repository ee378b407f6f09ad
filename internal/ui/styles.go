// Package ui holds the shared color palette, icons, and text styles used by
// every command's output.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorWarning = lipgloss.Color("#FFB454")
	ColorError   = lipgloss.Color("#FF4C4C")
	ColorText    = lipgloss.Color("#DDDDDD")
	ColorTextDim = lipgloss.Color("#8A8A8A")
	ColorMuted   = lipgloss.Color("#5C5C5C")
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconCheck   = "✓"
	IconCross   = "✗"
	IconDot     = "•"
	IconChevron = "›"
)

// ─── Event line styles ───────────────────────────────────────────────────────

var (
	StyleRemoved = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	StyleWould   = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	StyleFailed  = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorTextDim)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleHeading = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)

// IsTerminal reports whether styled output should be produced. Piped output
// gets plain text.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FormatSize renders a byte count for humans ("1.2 GiB"). Zero renders as a
// dash since the walker's sizes are best-effort.
func FormatSize(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}
