// Package picker implements the interactive selection mode: scan first, let
// the user choose which matches to remove, then delete them one by one.
package picker

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/begone/internal/walker"
)

// Candidate is one matched directory offered for removal.
type Candidate struct {
	Path     string
	Size     int64
	Selected bool

	// Filled in once the deletion has been attempted.
	Done  bool
	Freed int64
	Err   error
}

// ─── Messages ────────────────────────────────────────────────────────────────

type scanDoneMsg struct {
	candidates []Candidate
	err        error
}

type deleteResultMsg struct {
	index int
	freed int64
	err   error
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for interactive cleanup.
type Model struct {
	cfg     walker.Config
	spinner spinner.Model

	scanning   bool
	deleting   bool
	deleteNext int // index of the next selected candidate to remove
	quitting   bool
	finished   bool

	candidates []Candidate
	cursor     int
	offset     int
	width      int
	height     int
	err        error
}

// NewModel creates a Model for the given walk configuration. The walk itself
// runs as a command from Init so the spinner stays live.
func NewModel(cfg walker.Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		cfg:      cfg,
		spinner:  sp,
		scanning: true,
		width:    80,
		height:   24,
	}
}

// Run drives the picker to completion and returns how many removals failed.
func Run(cfg walker.Config) (failed int, err error) {
	final, err := tea.NewProgram(NewModel(cfg)).Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(Model)
	if !ok {
		return 0, nil
	}
	if m.err != nil {
		return 0, m.err
	}
	for _, c := range m.candidates {
		if c.Done && c.Err != nil {
			failed++
		}
	}
	return failed, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, scanCmd(m.cfg))
}

// scanCmd walks the tree in preview mode, collecting every match.
func scanCmd(cfg walker.Config) tea.Cmd {
	return func() tea.Msg {
		preview := cfg
		preview.DryRun = true
		preview.Verbose = false

		var out []Candidate
		err := walker.Walk(preview, func(ev walker.Event) {
			if ev.Action == walker.WouldDelete {
				out = append(out, Candidate{Path: ev.Path, Size: ev.Size, Selected: true})
			}
		})
		return scanDoneMsg{candidates: out, err: err}
	}
}

// deleteCmd removes one candidate and reports the result.
func deleteCmd(index int, path string) tea.Cmd {
	return func() tea.Msg {
		freed, err := walker.RemoveTree(path)
		return deleteResultMsg{index: index, freed: freed, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.scanning && !m.deleting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scanDoneMsg:
		m.scanning = false
		m.candidates = msg.candidates
		m.err = msg.err
		if m.err != nil || len(m.candidates) == 0 {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case deleteResultMsg:
		c := &m.candidates[msg.index]
		c.Done = true
		c.Freed = msg.freed
		c.Err = msg.err
		if next, ok := m.nextSelected(msg.index + 1); ok {
			return m, deleteCmd(next, m.candidates[next].Path)
		}
		m.deleting = false
		m.finished = true
		return m, nil

	case tea.KeyMsg:
		if m.scanning || m.deleting {
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		if m.finished {
			m.quitting = true
			return m, tea.Quit
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.ensureVisible()
			}

		case "down", "j":
			if m.cursor < len(m.candidates)-1 {
				m.cursor++
				m.ensureVisible()
			}

		case " ":
			if m.cursor >= 0 && m.cursor < len(m.candidates) {
				m.candidates[m.cursor].Selected = !m.candidates[m.cursor].Selected
			}

		case "a":
			all := m.allSelected()
			for i := range m.candidates {
				m.candidates[i].Selected = !all
			}

		case "enter":
			if next, ok := m.nextSelected(0); ok {
				m.deleting = true
				return m, tea.Batch(m.spinner.Tick, deleteCmd(next, m.candidates[next].Path))
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	return m.renderView()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// nextSelected returns the index of the first selected, not-yet-processed
// candidate at or after from.
func (m Model) nextSelected(from int) (int, bool) {
	for i := from; i < len(m.candidates); i++ {
		if m.candidates[i].Selected && !m.candidates[i].Done {
			return i, true
		}
	}
	return 0, false
}

func (m Model) allSelected() bool {
	for _, c := range m.candidates {
		if !c.Selected {
			return false
		}
	}
	return len(m.candidates) > 0
}

func (m *Model) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m Model) viewportHeight() int {
	h := m.height - 6 // header + footer
	if h < 1 {
		h = 1
	}
	return h
}

// summary totals the outcome of a finished run.
func (m Model) summary() (removed, failed int, freed int64) {
	for _, c := range m.candidates {
		if !c.Done {
			continue
		}
		if c.Err != nil {
			failed++
		} else {
			removed++
		}
		freed += c.Freed
	}
	return removed, failed, freed
}
