package picker

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/begone/internal/rules"
	"github.com/lakshaymaurya-felt/begone/internal/walker"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := walker.Config{Root: t.TempDir(), Ecosystem: rules.JavaScript, Rules: rules.For(rules.JavaScript)}
	return NewModel(cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

func scanned(t *testing.T, m Model, paths ...string) Model {
	t.Helper()
	var cs []Candidate
	for _, p := range paths {
		cs = append(cs, Candidate{Path: p, Size: 1024, Selected: true})
	}
	m, _ = update(t, m, scanDoneMsg{candidates: cs})
	return m
}

func TestScanDonePopulatesCandidates(t *testing.T) {
	m := scanned(t, testModel(t), "/a/node_modules", "/b/node_modules")
	if m.scanning {
		t.Error("still scanning after scanDoneMsg")
	}
	if len(m.candidates) != 2 {
		t.Fatalf("candidates = %d, want 2", len(m.candidates))
	}
	if !m.allSelected() {
		t.Error("candidates should start selected")
	}
}

func TestScanDoneEmptyQuits(t *testing.T) {
	m := testModel(t)
	m, cmd := update(t, m, scanDoneMsg{})
	if !m.quitting || cmd == nil {
		t.Fatal("empty scan should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd returned %T, want tea.QuitMsg", cmd())
	}
}

func TestSpaceTogglesSelection(t *testing.T) {
	m := scanned(t, testModel(t), "/a", "/b")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.candidates[0].Selected {
		t.Error("space did not deselect the cursor row")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if !m.allSelected() {
		t.Error("'a' should select all when some are unselected")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	for i, c := range m.candidates {
		if c.Selected {
			t.Errorf("candidate %d still selected after second 'a'", i)
		}
	}
}

func TestCursorMovement(t *testing.T) {
	m := scanned(t, testModel(t), "/a", "/b", "/c")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.cursor != 2 {
		t.Error("cursor moved past the last candidate")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
}

func TestEnterStartsDeletion(t *testing.T) {
	m := scanned(t, testModel(t), "/a", "/b")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.deleting {
		t.Error("enter did not start deletion")
	}
	if cmd == nil {
		t.Error("enter returned no command")
	}
}

func TestDeleteResultsChainAndFinish(t *testing.T) {
	m := scanned(t, testModel(t), "/a", "/b")
	m.deleting = true

	m, cmd := update(t, m, deleteResultMsg{index: 0, freed: 100})
	if cmd == nil {
		t.Fatal("no command for the next selected candidate")
	}
	m, _ = update(t, m, deleteResultMsg{index: 1, err: errors.New("busy")})

	if m.deleting || !m.finished {
		t.Error("deletion did not finish after the last result")
	}
	removed, failed, freed := m.summary()
	if removed != 1 || failed != 1 || freed != 100 {
		t.Errorf("summary = (%d, %d, %d), want (1, 1, 100)", removed, failed, freed)
	}
}

func TestViewRendersStates(t *testing.T) {
	m := testModel(t)
	if m.View() == "" {
		t.Error("scanning view is empty")
	}
	m = scanned(t, m, "/a/node_modules")
	if m.View() == "" {
		t.Error("list view is empty")
	}
	m.quitting = true
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}
