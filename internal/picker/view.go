package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/begone/internal/ui"
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	switch {
	case m.scanning:
		s.WriteString(fmt.Sprintf("  %s scanning for matches...\n", m.spinner.View()))
	case m.deleting:
		s.WriteString(fmt.Sprintf("  %s removing selected directories...\n", m.spinner.View()))
		s.WriteString(m.renderList())
	case m.finished:
		s.WriteString(m.renderResults())
	default:
		s.WriteString(m.renderList())
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader() string {
	title := ui.StyleHeading.Render("  begone " + ui.IconChevron + " " + m.cfg.Ecosystem.String())
	root := ui.StyleDim.Render("  root: " + m.cfg.Root)
	return lipgloss.JoinVertical(lipgloss.Left, title, root) + "\n"
}

// ─── Candidate list ──────────────────────────────────────────────────────────

func (m Model) renderList() string {
	vh := m.viewportHeight()
	var lines []string

	for i := m.offset; i < len(m.candidates) && i < m.offset+vh; i++ {
		lines = append(lines, m.renderCandidate(i))
	}
	if len(m.candidates) > vh {
		lines = append(lines, ui.StyleMuted.Render(
			fmt.Sprintf("  ── %d/%d ──", min(m.offset+vh, len(m.candidates)), len(m.candidates))))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderCandidate(i int) string {
	c := m.candidates[i]

	box := "[ ]"
	if c.Selected {
		box = "[" + ui.IconCheck + "]"
	}

	cursor := "  "
	if i == m.cursor && !m.deleting {
		cursor = ui.StyleHeading.Render(ui.IconChevron) + " "
	}

	line := fmt.Sprintf("%s%s %s %s", cursor, box, c.Path,
		ui.StyleDim.Render("("+ui.FormatSize(c.Size)+")"))

	switch {
	case c.Done && c.Err != nil:
		return line + " " + ui.StyleFailed.Render(ui.IconCross)
	case c.Done:
		return line + " " + ui.StyleRemoved.Render(ui.IconCheck)
	}
	return line
}

// ─── Results ─────────────────────────────────────────────────────────────────

func (m Model) renderResults() string {
	removed, failed, freed := m.summary()

	var lines []string
	for _, c := range m.candidates {
		if !c.Done {
			continue
		}
		if c.Err != nil {
			lines = append(lines, fmt.Sprintf("  %s %s: %v",
				ui.StyleFailed.Render(ui.IconCross), c.Path, c.Err))
		} else {
			lines = append(lines, fmt.Sprintf("  %s %s %s",
				ui.StyleRemoved.Render(ui.IconCheck), c.Path,
				ui.StyleDim.Render("("+ui.FormatSize(c.Freed)+")")))
		}
	}

	total := fmt.Sprintf("  removed %d, failed %d, reclaimed %s", removed, failed, ui.FormatSize(freed))
	lines = append(lines, "", ui.StyleHeading.Render(total))
	return strings.Join(lines, "\n") + "\n"
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter() string {
	var help string
	switch {
	case m.scanning, m.deleting:
		help = "ctrl+c cancel"
	case m.finished:
		help = "any key to exit"
	default:
		help = "space select " + ui.IconDot + " a all " + ui.IconDot +
			" enter remove " + ui.IconDot + " q quit"
	}
	return ui.StyleMuted.Render("  " + help)
}
