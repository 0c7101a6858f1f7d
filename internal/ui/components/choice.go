package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gapcheck/internal/ui/theme"
)

// ChoiceList is a single-choice selector. Unlike a quiz there is no right
// answer: it only tracks the cursor and the option chosen on an earlier
// visit.
type ChoiceList struct {
	Prompt   string
	Options  []string
	Cursor   int
	Answered int // index chosen earlier, or -1
	keys     KeyMap
}

// ChoiceMadeMsg is emitted when the user confirms an option.
type ChoiceMadeMsg struct {
	Index int
}

// NewChoiceList creates a choice list. answered is the index of the
// option chosen earlier, or -1; the cursor starts on it when present.
func NewChoiceList(prompt string, options []string, answered int) ChoiceList {
	cursor := 0
	if answered >= 0 && answered < len(options) {
		cursor = answered
	} else {
		answered = -1
	}
	return ChoiceList{
		Prompt:   prompt,
		Options:  options,
		Cursor:   cursor,
		Answered: answered,
		keys:     DefaultKeyMap(),
	}
}

// Update handles arrow navigation, Enter, and the 1-9 shortcuts.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, c.keys.Up):
		if c.Cursor > 0 {
			c.Cursor--
		}
		return c, nil
	case key.Matches(kmsg, c.keys.Down):
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
		return c, nil
	case key.Matches(kmsg, c.keys.Select):
		return c, c.choose(c.Cursor)
	}

	if s := kmsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx := int(s[0] - '1')
		if idx < len(c.Options) {
			c.Cursor = idx
			return c, c.choose(idx)
		}
	}
	return c, nil
}

func (c ChoiceList) choose(idx int) tea.Cmd {
	if idx < 0 || idx >= len(c.Options) {
		return nil
	}
	return func() tea.Msg { return ChoiceMadeMsg{Index: idx} }
}

// View renders the prompt and the options, each wrapped to width.
func (c ChoiceList) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render(c.Prompt))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		marker := ""
		if i == c.Answered {
			marker = "  ✓"
		}
		line := fmt.Sprintf("%s%d)  %s%s", prefix, i+1, opt, marker)

		style := theme.Unselected
		switch {
		case i == c.Cursor:
			style = theme.Selected
		case i == c.Answered:
			style = theme.Answered
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
