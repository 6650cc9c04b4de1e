// Package settings is the editor's Settings tab. Form options such as
// response limits are not editable yet; the tab shows what the form holds.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eform/internal/form"
	"github.com/abhisek/eform/internal/screen"
	"github.com/abhisek/eform/internal/state"
	"github.com/abhisek/eform/internal/ui/theme"
)

// SettingsScreen is a read-only overview of one form.
type SettingsScreen struct {
	st   *state.State
	form *form.Form
}

var _ screen.Screen = (*SettingsScreen)(nil)

func New(st *state.State, f *form.Form) *SettingsScreen {
	return &SettingsScreen{st: st, form: f}
}

func (s *SettingsScreen) Init() tea.Cmd { return nil }

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	rows := [][2]string{
		{"Form ID", s.form.ID},
		{"Questions", fmt.Sprint(len(s.form.Questions))},
		{"Responses", fmt.Sprint(len(s.st.ResponsesFor(s.form.ID)))},
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render("Settings"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%-10s ", r[0])))
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Response and presentation options are under construction."))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(b.String())
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}
