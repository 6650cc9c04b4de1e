package components

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput edits one bound string at a time through bubbles/textinput, or
// bubbles/textarea for multiline text. Screens keep a single TextInput for
// whichever text control has focus, so the cursor survives redraws.
type TextInput struct {
	line      textinput.Model
	area      textarea.Model
	bound     *string
	multiline bool
}

// NewTextInput creates an unbound text input.
func NewTextInput() *TextInput {
	line := textinput.New()
	line.Prompt = ""
	line.SetVirtualCursor(false)
	line.Focus()

	area := textarea.New()
	area.Prompt = ""
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.MaxHeight = 0
	area.SetWidth(80)
	area.SetVirtualCursor(false)
	area.Focus()

	return &TextInput{line: line, area: area}
}

// Bind points the input at text. The model is reloaded, with the cursor at
// the end, when text is a different string or was changed elsewhere.
func (t *TextInput) Bind(text *string, multiline bool) {
	if t.bound == text && t.multiline == multiline && t.Value() == *text {
		return
	}
	t.bound, t.multiline = text, multiline
	if multiline {
		t.area.SetValue(*text)
		return
	}
	t.line.SetValue(*text)
	t.line.CursorEnd()
}

// Update forwards msg to the model and writes its value back to the bound
// string. It reports whether the string changed.
func (t *TextInput) Update(msg tea.Msg) bool {
	if t.bound == nil {
		return false
	}
	if t.multiline {
		t.area, _ = t.area.Update(msg)
	} else {
		t.line, _ = t.line.Update(msg)
	}
	v := t.Value()
	if v == *t.bound {
		return false
	}
	*t.bound = v
	return true
}

// Value returns the text held by the active model.
func (t *TextInput) Value() string {
	if t.multiline {
		return t.area.Value()
	}
	return t.line.Value()
}

// Cursor returns the cursor's line and rune column within Value.
func (t *TextInput) Cursor() (line, col int) {
	if !t.multiline {
		return 0, t.line.Position()
	}
	li := t.area.LineInfo()
	return t.area.Line(), li.StartColumn + li.ColumnOffset
}
