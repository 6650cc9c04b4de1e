// Package fill shows a form the way a respondent sees it and records
// submissions.
package fill

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eform/internal/form"
	"github.com/abhisek/eform/internal/screen"
	"github.com/abhisek/eform/internal/state"
	"github.com/abhisek/eform/internal/ui/components"
	"github.com/abhisek/eform/internal/ui/imm"
	"github.com/abhisek/eform/internal/ui/layout"
	"github.com/abhisek/eform/internal/ui/theme"
)

type keyMap struct {
	Next key.Binding
	Prev key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("Tab", "next")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("Shift+Tab", "prev")),
}

// FillScreen renders every question's preview followed by Submit and
// Clear form buttons.
type FillScreen struct {
	st     *state.State
	form   *form.Form
	text   *components.TextInput
	focus  int
	count  int
	status string
	failed bool
}

var _ screen.Screen = (*FillScreen)(nil)

// New returns a fill screen for f. All answers are reset on entry.
func New(st *state.State, f *form.Form) *FillScreen {
	f.ResetAllPreviewValues()
	s := &FillScreen{st: st, form: f, text: components.NewTextInput()}
	s.draw(imm.Input{})
	return s
}

func (s *FillScreen) Init() tea.Cmd { return nil }

func (s *FillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, keys.Next):
		s.focus = imm.Cycle(s.focus, s.count, 1)
	case key.Matches(kmsg, keys.Prev):
		s.focus = imm.Cycle(s.focus, s.count, -1)
	default:
		s.status = ""
		s.draw(imm.KeyInput(kmsg))
	}
	return s, nil
}

func (s *FillScreen) View(width, height int) string {
	fr := s.draw(imm.Input{})
	if s.status == "" {
		return fr.Window(height)
	}
	style := theme.Notice
	if s.failed {
		style = theme.Problem
	}
	return fr.Window(height-2) + "\n\n" + style.Render(s.status)
}

func (s *FillScreen) Title() string { return s.form.DisplayTitle() }

func (s *FillScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: keys.Next.Help().Key, Description: keys.Next.Help().Desc},
		{Key: "Enter", Description: "Press"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Esc", Description: "Back"},
	}
}

// Status returns the outcome of the last Submit or Clear form.
func (s *FillScreen) Status() string { return s.status }

func (s *FillScreen) draw(in imm.Input) *imm.Frame {
	fr := imm.New(s.focus, in).WithText(s.text)
	fr.Heading(s.form.DisplayTitle())
	if s.form.Description != "" {
		fr.Label(s.form.Description)
	}
	fr.Blank()

	for _, q := range s.form.Questions {
		q.Preview(fr)
		fr.Blank()
	}

	var submit, clear bool
	fr.Horizontal(func() {
		submit = fr.Button("Submit")
		clear = fr.Button("Clear form")
	})

	switch {
	case submit:
		s.submit()
	case clear:
		s.form.ResetAllPreviewValues()
		s.status, s.failed = "Form cleared", false
	}

	s.count = fr.Count()
	if s.focus >= s.count {
		s.focus = max(s.count-1, 0)
	}
	return fr
}

func (s *FillScreen) submit() {
	if _, err := s.st.Submit(s.form); err != nil {
		s.status, s.failed = err.Error(), true
		return
	}
	s.form.ResetAllPreviewValues()
	s.status, s.failed = "Response recorded", false
}
