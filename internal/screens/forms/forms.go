// Package forms is the home screen: the list of forms with actions to
// create, edit, fill, duplicate and remove them.
package forms

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eform/internal/form"
	"github.com/abhisek/eform/internal/router"
	"github.com/abhisek/eform/internal/screen"
	"github.com/abhisek/eform/internal/screens/editor"
	"github.com/abhisek/eform/internal/screens/fill"
	"github.com/abhisek/eform/internal/state"
	"github.com/abhisek/eform/internal/ui/components"
	"github.com/abhisek/eform/internal/ui/layout"
	"github.com/abhisek/eform/internal/ui/theme"
)

type keyMap struct {
	New       key.Binding
	Edit      key.Binding
	Fill      key.Binding
	Duplicate key.Binding
	Remove    key.Binding
}

var keys = keyMap{
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Edit:      key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("Enter", "edit")),
	Fill:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fill")),
	Duplicate: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duplicate")),
	Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
}

// FormsScreen lists every form in the state.
type FormsScreen struct {
	st     *state.State
	menu   components.Menu
	status string
}

var _ screen.Screen = (*FormsScreen)(nil)

// New returns the forms screen for st.
func New(st *state.State) *FormsScreen {
	s := &FormsScreen{st: st, menu: components.NewMenu(nil)}
	s.menu.Keys.Select = keys.Edit
	s.refresh()
	return s
}

// Init refreshes the list; it runs again whenever a pushed screen pops.
func (s *FormsScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

// Selected returns the index of the highlighted form, or -1.
func (s *FormsScreen) Selected() int {
	if len(s.st.Forms) == 0 {
		return -1
	}
	return s.menu.Selected
}

func (s *FormsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	s.status = ""

	i := s.Selected()
	switch {
	case key.Matches(kmsg, keys.New):
		f := s.st.NewForm()
		s.refresh()
		s.menu.Selected = len(s.st.Forms) - 1
		return s, router.Push(editor.New(s.st, f))

	case key.Matches(kmsg, keys.Fill):
		if i < 0 {
			return s, nil
		}
		return s, router.Push(fill.New(s.st, s.st.Forms[i]))

	case key.Matches(kmsg, keys.Duplicate):
		if i < 0 {
			return s, nil
		}
		cp, err := s.st.DuplicateForm(i)
		if err != nil {
			s.status = err.Error()
			return s, nil
		}
		s.refresh()
		s.menu.Selected = len(s.st.Forms) - 1
		s.status = fmt.Sprintf("Duplicated as %q", cp.DisplayTitle())

	case key.Matches(kmsg, keys.Remove):
		if i < 0 {
			return s, nil
		}
		title := s.st.Forms[i].DisplayTitle()
		if err := s.st.RemoveForm(i); err != nil {
			s.status = err.Error()
			return s, nil
		}
		s.refresh()
		s.status = fmt.Sprintf("Removed %q", title)

	default:
		// Edit is the menu's select action.
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *FormsScreen) View(width, height int) string {
	body := theme.Title.Render("Forms") + "\n\n" + s.menu.View()
	if s.status != "" {
		body += "\n" + theme.Notice.Render(s.status)
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(body)
}

func (s *FormsScreen) Title() string { return "Forms" }

func (s *FormsScreen) KeyHints() []layout.KeyHint {
	bs := []key.Binding{keys.Edit, keys.New, keys.Fill, keys.Duplicate, keys.Remove}
	hints := make([]layout.KeyHint, 0, len(bs)+1)
	for _, b := range bs {
		hints = append(hints, layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *FormsScreen) refresh() {
	if len(s.st.Forms) == 0 {
		s.menu.SetItems([]components.MenuItem{
			{Label: "No forms yet. Press n to create one.", Disabled: true},
		})
		return
	}
	items := make([]components.MenuItem, len(s.st.Forms))
	for i, f := range s.st.Forms {
		items[i] = components.MenuItem{
			Label:  f.DisplayTitle(),
			Detail: s.detail(f),
			Action: s.editAction(f),
		}
	}
	s.menu.SetItems(items)
}

func (s *FormsScreen) editAction(f *form.Form) func() tea.Cmd {
	return func() tea.Cmd {
		return router.Push(editor.New(s.st, f))
	}
}

func (s *FormsScreen) detail(f *form.Form) string {
	return fmt.Sprintf("%s · %s",
		plural(len(f.Questions), "question"),
		plural(len(s.st.ResponsesFor(f.ID)), "response"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
