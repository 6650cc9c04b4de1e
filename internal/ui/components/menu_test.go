package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

type pickedMsg string

func item(label string) MenuItem {
	return MenuItem{Label: label, Action: func() tea.Cmd {
		return func() tea.Msg { return pickedMsg(label) }
	}}
}

func TestMenuNavigationSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		item("a"),
		{Label: "off", Disabled: true},
		item("b"),
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected, "disabled first item is not selectable")
}

func TestMenuSelectRunsAction(t *testing.T) {
	m := NewMenu([]MenuItem{item("a"), item("b")})
	m.Selected = 1

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, pickedMsg("b"), cmd())
	}
}

func TestMenuSetItemsClampsSelection(t *testing.T) {
	m := NewMenu([]MenuItem{item("a"), item("b"), item("c")})
	m.Selected = 2
	m.SetItems([]MenuItem{item("a")})
	assert.Equal(t, 0, m.Selected)

	m.SetItems(nil)
	assert.Equal(t, 0, m.Selected)
}

func TestMenuViewShowsDetail(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Survey", Detail: "3 questions"}})
	assert.Contains(t, ansi.Strip(m.View()), "▸ Survey   3 questions")
}

func TestTabsRendersAllLabels(t *testing.T) {
	out := ansi.Strip(Tabs([]string{"One", "Two"}, 1))
	assert.Contains(t, out, "One")
	assert.Contains(t, out, "Two")
}
