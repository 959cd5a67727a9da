package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m MenuModel, keys ...string) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuNavigateAndSelect(t *testing.T) {
	m := press(t, NewMenuModel(), "j", "j", "enter")
	if m.Choice != 2 {
		t.Errorf("Choice = %d, want 2 (dijkstra)", m.Choice)
	}
}

func TestMenuDigitShortcut(t *testing.T) {
	m := press(t, NewMenuModel(), "4")
	if m.Choice != 3 {
		t.Errorf("Choice = %d, want 3 (huffman)", m.Choice)
	}
}

func TestMenuQuitWithoutSelection(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		m := press(t, NewMenuModel(), "j", key)
		if m.Choice != noChoice {
			t.Errorf("quit via %q: Choice = %d, want none", key, m.Choice)
		}
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := press(t, NewMenuModel(), "k", "k")
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first entry: %d", m.Cursor)
	}

	m = press(t, NewMenuModel(), "j", "j", "j", "j", "j", "j")
	if m.Cursor != len(menuEntries)-1 {
		t.Errorf("cursor moved past the last entry: %d", m.Cursor)
	}
}

func TestMenuViewMarksCursor(t *testing.T) {
	view := press(t, NewMenuModel(), "j").View()
	if view == "" {
		t.Fatal("empty view")
	}
	if got := NewMenuModel().View(); got == view {
		t.Error("moving the cursor did not change the view")
	}
}
