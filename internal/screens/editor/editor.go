// Package editor is the form builder: a question list, an expanded editor
// for one question, and tabs for preview, responses and settings.
package editor

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eform/internal/form"
	"github.com/abhisek/eform/internal/question"
	"github.com/abhisek/eform/internal/screen"
	"github.com/abhisek/eform/internal/screens/fill"
	"github.com/abhisek/eform/internal/screens/responses"
	"github.com/abhisek/eform/internal/screens/settings"
	"github.com/abhisek/eform/internal/state"
	"github.com/abhisek/eform/internal/ui/components"
	"github.com/abhisek/eform/internal/ui/imm"
	"github.com/abhisek/eform/internal/ui/layout"
)

// Tab identifies an editor tab.
type Tab int

const (
	TabQuestions Tab = iota
	TabPreview
	TabResponses
	TabSettings
)

var tabLabels = []string{"Questions", "Preview", "Responses", "Settings"}

func (t Tab) String() string { return tabLabels[t] }

// noQuestion marks the catalog state: no question is expanded.
const noQuestion = -1

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}

var keys = keyMap{
	Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("Tab", "next")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("Shift+Tab", "prev")),
	NextTab: key.NewBinding(key.WithKeys("ctrl+right", "alt+right"), key.WithHelp("Ctrl+→", "next tab")),
	PrevTab: key.NewBinding(key.WithKeys("ctrl+left", "alt+left"), key.WithHelp("Ctrl+←", "prev tab")),
}

// EditorScreen edits one form in place.
type EditorScreen struct {
	st   *state.State
	form *form.Form
	tab  Tab

	editing int
	focus   int
	count   int
	text    *components.TextInput

	// Active sub-screen for the Preview, Responses and Settings tabs.
	sub screen.Screen
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.BackHandler = (*EditorScreen)(nil)

// New returns an editor for f, starting on the question list.
func New(st *state.State, f *form.Form) *EditorScreen {
	s := &EditorScreen{st: st, form: f, editing: noQuestion, text: components.NewTextInput()}
	s.draw(imm.Input{})
	return s
}

func (s *EditorScreen) Init() tea.Cmd { return nil }

// Tab returns the active tab.
func (s *EditorScreen) Tab() Tab { return s.tab }

// Editing returns the index of the expanded question, or -1.
func (s *EditorScreen) Editing() int { return s.editing }

// SetTab switches tabs. Entering Preview resets every answer.
func (s *EditorScreen) SetTab(t Tab) {
	s.tab = t
	switch t {
	case TabQuestions:
		s.sub = nil
	case TabPreview:
		s.sub = fill.New(s.st, s.form)
	case TabResponses:
		s.sub = responses.New(s.st, s.form.ID, s.form.DisplayTitle())
	case TabSettings:
		s.sub = settings.New(s.st, s.form)
	}
}

// Back collapses an expanded question. It returns false in the catalog
// state so the screen is popped.
func (s *EditorScreen) Back() bool {
	if s.tab == TabQuestions && s.editing != noQuestion {
		s.editing = noQuestion
		s.focus = 0
		return true
	}
	return false
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, keys.NextTab):
		s.SetTab(Tab((int(s.tab) + 1) % len(tabLabels)))
		return s, nil
	case key.Matches(kmsg, keys.PrevTab):
		s.SetTab(Tab((int(s.tab) + len(tabLabels) - 1) % len(tabLabels)))
		return s, nil
	}

	if s.sub != nil {
		_, cmd := s.sub.Update(msg)
		return s, cmd
	}

	switch {
	case key.Matches(kmsg, keys.Next):
		s.focus = imm.Cycle(s.focus, s.count, 1)
	case key.Matches(kmsg, keys.Prev):
		s.focus = imm.Cycle(s.focus, s.count, -1)
	default:
		s.draw(imm.KeyInput(kmsg))
	}
	return s, nil
}

func (s *EditorScreen) View(width, height int) string {
	bar := components.Tabs(tabLabels, int(s.tab))
	height -= 2
	if s.sub != nil {
		return bar + "\n\n" + s.sub.View(width, height)
	}
	return bar + "\n\n" + s.draw(imm.Input{}).Window(height)
}

func (s *EditorScreen) Title() string { return s.form.DisplayTitle() }

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: keys.NextTab.Help().Key, Description: keys.NextTab.Help().Desc},
		{Key: keys.Next.Help().Key, Description: keys.Next.Help().Desc},
		{Key: "Enter", Description: "Press"},
	}
	if s.tab == TabQuestions && s.editing != noQuestion {
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Done"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *EditorScreen) draw(in imm.Input) *imm.Frame {
	fr := imm.New(s.focus, in).WithText(s.text)
	if s.editing == noQuestion {
		s.drawCatalog(fr)
	} else {
		s.drawQuestion(fr)
	}
	s.count = fr.Count()
	if s.focus >= s.count {
		s.focus = max(s.count-1, 0)
	}
	return fr
}

func (s *EditorScreen) drawCatalog(fr *imm.Frame) {
	f := s.form
	fr.TextField(&f.Title, form.DefaultTitle)
	fr.TextArea(&f.Description, "Form description")
	fr.Blank()

	open := noQuestion
	for i, q := range f.Questions {
		if fr.Button(fmt.Sprintf("%d. %s (%s)", i+1, nameOrDefault(q), q.Kind())) {
			open = i
		}
	}
	if len(f.Questions) == 0 {
		fr.Label("No questions yet.")
	}
	fr.Blank()
	add := fr.Button("Add question")

	switch {
	case open != noQuestion:
		s.expand(open)
	case add:
		f.AddQuestion()
		s.expand(len(f.Questions) - 1)
	}
}

func (s *EditorScreen) drawQuestion(fr *imm.Frame) {
	f := s.form
	i := s.editing
	fr.Label(fmt.Sprintf("Question %d of %d", i+1, len(f.Questions)))
	fr.Blank()

	deleted := f.Questions[i].Edit(fr)
	fr.Blank()

	var dup, up, down, done bool
	fr.Horizontal(func() {
		dup = fr.Button("Duplicate")
		up = fr.Button("Move up")
		down = fr.Button("Move down")
		done = fr.Button("Done")
	})

	// Indexes below come from the list just drawn, so the mutators
	// cannot fail.
	switch {
	case deleted:
		_ = f.RemoveQuestion(i)
		s.collapse()
	case dup:
		_ = f.DuplicateQuestion(i)
		s.editing = i + 1
	case up && i > 0:
		_ = f.MoveQuestion(i, i-1)
		s.editing = i - 1
	case down && i < len(f.Questions)-1:
		_ = f.MoveQuestion(i, i+1)
		s.editing = i + 1
	case done:
		s.collapse()
	}
}

func (s *EditorScreen) expand(i int) {
	s.editing = i
	s.focus = 0
}

func (s *EditorScreen) collapse() {
	s.editing = noQuestion
	s.focus = 0
}

func nameOrDefault(q *question.Question) string {
	if q.Name == "" {
		return question.DefaultName
	}
	return q.Name
}
