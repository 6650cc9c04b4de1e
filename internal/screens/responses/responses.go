// Package responses lists the submissions recorded for one form.
package responses

import (
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eform/internal/screen"
	"github.com/abhisek/eform/internal/state"
	"github.com/abhisek/eform/internal/ui/imm"
	"github.com/abhisek/eform/internal/ui/layout"
)

// timeLayout formats submission timestamps in local time.
const timeLayout = "2006-01-02 15:04:05"

type keyMap struct {
	Next key.Binding
	Prev key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("Tab", "next")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("Shift+Tab", "prev")),
}

// ResponsesScreen shows each response with its answers and a delete button.
type ResponsesScreen struct {
	st     *state.State
	formID string
	title  string
	focus  int
	count  int
}

var _ screen.Screen = (*ResponsesScreen)(nil)

// New returns a responses screen for the form with the given ID.
func New(st *state.State, formID, title string) *ResponsesScreen {
	return &ResponsesScreen{st: st, formID: formID, title: title}
}

func (s *ResponsesScreen) Init() tea.Cmd { return nil }

func (s *ResponsesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
		s.draw(imm.KeyInput(kmsg))
	}
	return s, nil
}

func (s *ResponsesScreen) View(width, height int) string {
	return s.draw(imm.Input{}).Window(height)
}

func (s *ResponsesScreen) Title() string { return "Responses: " + s.title }

func (s *ResponsesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: keys.Next.Help().Key, Description: keys.Next.Help().Desc},
		{Key: "Enter", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResponsesScreen) draw(in imm.Input) *imm.Frame {
	fr := imm.New(s.focus, in)
	rs := s.st.ResponsesFor(s.formID)
	if len(rs) == 0 {
		fr.Label("No responses yet.")
	}

	deleteID := ""
	for i, r := range rs {
		fr.Heading("#" + itoa(i+1) + "  " + r.SubmittedAt.Local().Format(timeLayout))
		for _, q := range r.Answers {
			answer := q.Summary()
			if answer == "" {
				answer = "(no answer)"
			}
			fr.Label("  " + q.Name + ": " + answer)
		}
		if fr.Button("Delete response") {
			deleteID = r.ID
		}
		fr.Blank()
	}
	if deleteID != "" {
		// The ID comes from the list just drawn.
		_ = s.st.RemoveResponse(deleteID)
	}

	s.count = fr.Count()
	if s.focus >= s.count {
		s.focus = max(s.count-1, 0)
	}
	return fr
}

func itoa(n int) string { return strconv.Itoa(n) }
