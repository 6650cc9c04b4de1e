package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestTextInputEditsAtCursor(t *testing.T) {
	s := "wrld"
	ti := NewTextInput()
	ti.Bind(&s, false)
	for range 3 {
		assert.False(t, ti.Update(tea.KeyPressMsg{Code: tea.KeyLeft}))
	}
	line, col := ti.Cursor()
	assert.Equal(t, 0, line)
	assert.Equal(t, 1, col)

	assert.True(t, ti.Update(tea.KeyPressMsg{Code: 'o', Text: "o"}))
	assert.Equal(t, "world", s)

	assert.True(t, ti.Update(tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}))
	assert.Equal(t, "rld", s, "ctrl+w deletes the word before the cursor")
}

func TestTextInputUnbound(t *testing.T) {
	ti := NewTextInput()
	assert.False(t, ti.Update(tea.KeyPressMsg{Code: 'a', Text: "a"}))
	assert.Equal(t, "", ti.Value())
}

func TestTextInputMultiline(t *testing.T) {
	s := "one"
	ti := NewTextInput()
	ti.Bind(&s, true)
	assert.True(t, ti.Update(tea.KeyPressMsg{Code: tea.KeyEnter}))
	assert.True(t, ti.Update(tea.KeyPressMsg{Code: 't', Text: "t"}))
	assert.Equal(t, "one\nt", s)

	line, col := ti.Cursor()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	single := "a\tb"
	ti.Bind(&single, false)
	assert.Equal(t, "a b", ti.Value(), "tabs are sanitized in single-line text")
}
