package forms

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eform/internal/form"
	"github.com/abhisek/eform/internal/router"
	"github.com/abhisek/eform/internal/screens/editor"
	"github.com/abhisek/eform/internal/screens/fill"
	"github.com/abhisek/eform/internal/state"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	return msg.Screen
}

func TestEmptyState(t *testing.T) {
	s := New(state.New())
	assert.Equal(t, -1, s.Selected())
	assert.Contains(t, ansi.Strip(s.View(80, 20)), "No forms yet")

	for _, r := range []rune{'f', 'd', 'x'} {
		_, cmd := s.Update(keyPress(r))
		assert.Nil(t, cmd, string(r))
	}
}

func TestNewFormOpensEditor(t *testing.T) {
	st := state.New()
	s := New(st)

	_, cmd := s.Update(keyPress('n'))

	require.Len(t, st.Forms, 1)
	assert.IsType(t, &editor.EditorScreen{}, pushed(t, cmd))
	assert.Equal(t, 0, s.Selected())
}

func TestEditAndFill(t *testing.T) {
	st := state.Default()
	s := New(st)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.IsType(t, &editor.EditorScreen{}, pushed(t, cmd))

	_, cmd = s.Update(keyPress('e'))
	assert.IsType(t, &editor.EditorScreen{}, pushed(t, cmd))

	_, cmd = s.Update(keyPress('f'))
	assert.IsType(t, &fill.FillScreen{}, pushed(t, cmd))
}

func TestDuplicateAndRemove(t *testing.T) {
	st := state.New()
	st.Forms = append(st.Forms, form.New("Survey"))
	s := New(st)

	s.Update(keyPress('d'))
	require.Len(t, st.Forms, 2)
	assert.Equal(t, "Survey Copy", st.Forms[1].Title)
	assert.Equal(t, 1, s.Selected())
	assert.Contains(t, ansi.Strip(s.View(80, 20)), `Duplicated as "Survey Copy"`)

	s.Update(keyPress('x'))
	require.Len(t, st.Forms, 1)
	assert.Equal(t, "Survey", st.Forms[0].Title)
	assert.Equal(t, 0, s.Selected())
}

func TestNavigation(t *testing.T) {
	st := state.New()
	st.Forms = append(st.Forms, form.New("A"), form.New("B"))
	s := New(st)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.Selected())

	view := ansi.Strip(s.View(80, 20))
	assert.Contains(t, view, "▸ B")
	assert.Contains(t, view, "0 questions · 0 responses")
}

func TestInitRefreshesAfterChanges(t *testing.T) {
	st := state.New()
	s := New(st)
	f := st.NewForm()
	f.AddQuestion()

	s.Init()
	assert.Contains(t, ansi.Strip(s.View(80, 20)), "1 question · 0 responses")
}
