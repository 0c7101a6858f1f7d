package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func chosen(t *testing.T, cmd tea.Cmd) int {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ChoiceMadeMsg)
	if !ok {
		t.Fatal("expected ChoiceMadeMsg")
	}
	return msg.Index
}

func TestChoiceList_Navigation(t *testing.T) {
	c := NewChoiceList("P?", []string{"a", "b", "c"}, -1)

	c, _ = c.Update(specialKey(tea.KeyUp))
	if c.Cursor != 0 {
		t.Errorf("cursor moved above first option: %d", c.Cursor)
	}
	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(keyPress('j'))
	c, _ = c.Update(specialKey(tea.KeyDown))
	if c.Cursor != 2 {
		t.Errorf("expected cursor 2, got %d", c.Cursor)
	}

	_, cmd := c.Update(specialKey(tea.KeyEnter))
	if got := chosen(t, cmd); got != 2 {
		t.Errorf("chose %d, want 2", got)
	}
}

func TestChoiceList_NumberShortcut(t *testing.T) {
	c := NewChoiceList("P?", []string{"a", "b", "c"}, -1)
	c, cmd := c.Update(keyPress('2'))
	if got := chosen(t, cmd); got != 1 {
		t.Errorf("chose %d, want 1", got)
	}
	if c.Cursor != 1 {
		t.Errorf("expected cursor to follow shortcut, got %d", c.Cursor)
	}

	_, cmd = c.Update(keyPress('9'))
	if cmd != nil {
		t.Error("expected out-of-range shortcut to be ignored")
	}
}

func TestChoiceList_Answered(t *testing.T) {
	c := NewChoiceList("P?", []string{"a", "b"}, 1)
	if c.Cursor != 1 || c.Answered != 1 {
		t.Errorf("cursor=%d answered=%d, want 1/1", c.Cursor, c.Answered)
	}
	if !strings.Contains(c.View(60), "✓") {
		t.Error("expected answered marker")
	}

	c = NewChoiceList("P?", []string{"a", "b"}, 5)
	if c.Answered != -1 || c.Cursor != 0 {
		t.Errorf("out-of-range answer not reset: cursor=%d answered=%d", c.Cursor, c.Answered)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var ran string
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "one", Action: func() tea.Cmd { ran = "one"; return nil }},
		{Label: "off2", Disabled: true},
		{Label: "two", Action: func() tea.Cmd { ran = "two"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("expected selection 3, got %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyEnter))
	if ran != "two" {
		t.Errorf("ran %q, want two", ran)
	}

	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("expected selection 1, got %d", m.Selected)
	}
}

func TestStepProgress(t *testing.T) {
	p := StepProgress(3, 12, 40)
	if p.Label != "3/12" || p.Percent != 0.25 {
		t.Errorf("got %+v", p)
	}
	if StepProgress(0, 0, 40).Percent != 0 {
		t.Error("expected zero percent for empty total")
	}
	if !strings.Contains(p.View(), "25%") {
		t.Error("expected percentage in view")
	}
}

func TestFilterInput(t *testing.T) {
	f := NewFilterInput("busca", 10)
	if f.View() != "" {
		t.Error("expected blurred empty filter to render nothing")
	}

	f, _ = f.Update(keyPress('x'))
	if f.Value() != "" {
		t.Error("blurred filter must ignore keys")
	}

	f.Focus()
	f, _ = f.Update(keyPress('A'))
	f, _ = f.Update(keyPress('b'))
	if f.Value() != "ab" {
		t.Errorf("value = %q, want ab", f.Value())
	}

	f.Blur()
	if f.Focused() {
		t.Error("expected blurred filter")
	}
	f.Reset()
	if f.Value() != "" {
		t.Error("expected empty value after reset")
	}
}
