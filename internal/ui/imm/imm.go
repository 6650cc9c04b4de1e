// Package imm renders question surfaces to the terminal in immediate mode.
//
// A Frame is built fresh on every refresh. Interactive controls are numbered
// in emission order; the control whose number equals the frame's focus
// receives the pending key, if any. Building a frame with an empty Input is
// side-effect free, so screens call it once from Update (with the key) and
// again from View (without).
//
// Text controls edit through a components.TextInput. Screens that want the
// cursor to persist between refreshes attach their own with WithText;
// otherwise each frame edits through a fresh one with the cursor at the end.
package imm

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eform/internal/question"
	"github.com/abhisek/eform/internal/ui/components"
	"github.com/abhisek/eform/internal/ui/theme"
)

// Input is the key delivered to the focused control.
type Input struct {
	Key  string // tea.KeyPressMsg.String(), e.g. "enter", "left", "a"
	Text string // printable text, empty for special keys
	Msg  tea.KeyPressMsg
}

// KeyInput converts a key message into frame input.
func KeyInput(msg tea.KeyMsg) Input {
	in := Input{Key: msg.String(), Text: msg.Key().Text}
	if kp, ok := msg.(tea.KeyPressMsg); ok {
		in.Msg = kp
	}
	return in
}

// Frame is one refresh of an immediate-mode surface.
type Frame struct {
	focus int
	in    Input

	next      int
	focusLine int
	lines     []string
	rows      []*[]string
	grid      *gridBuf
	text      *components.TextInput
}

type gridBuf struct {
	rows [][]string
	cur  []string
}

var _ question.Surface = (*Frame)(nil)

// New returns a frame that routes in to control number focus.
func New(focus int, in Input) *Frame {
	return &Frame{focus: focus, in: in, focusLine: -1}
}

// WithText routes text editing through t, which the caller keeps across
// frames.
func (f *Frame) WithText(t *components.TextInput) *Frame {
	f.text = t
	return f
}

// Count returns the number of interactive controls emitted so far.
func (f *Frame) Count() int { return f.next }

// FocusLine returns the line the focused control was drawn on, or -1.
func (f *Frame) FocusLine() int { return f.focusLine }

// String returns the rendered frame.
func (f *Frame) String() string {
	return strings.Join(f.lines, "\n")
}

// Blank emits an empty line.
func (f *Frame) Blank() { f.emit("") }

// Cycle moves focus by delta, wrapping within [0, count).
func Cycle(focus, count, delta int) int {
	if count <= 0 {
		return 0
	}
	return ((focus+delta)%count + count) % count
}

var (
	headingStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(theme.Text)
	hintStyle    = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	controlStyle = lipgloss.NewStyle().Foreground(theme.Text)
	focusStyle   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
	buttonStyle  = lipgloss.NewStyle().Foreground(theme.Secondary)
	pressStyle   = lipgloss.NewStyle().Background(theme.Primary).Foreground(theme.Text).Bold(true)
)

func (f *Frame) Heading(text string) { f.emit(headingStyle.Render(text)) }

func (f *Frame) Label(text string) { f.emit(labelStyle.Render(text)) }

func (f *Frame) TextField(text *string, hint string) bool {
	return f.textControl(text, hint, false)
}

func (f *Frame) TextArea(text *string, hint string) bool {
	return f.textControl(text, hint, true)
}

func (f *Frame) textControl(text *string, hint string, multiline bool) bool {
	if !f.control() {
		f.emit(renderText(*text, hint, multiline, nil))
		return false
	}
	if f.text == nil {
		f.text = components.NewTextInput()
	}
	f.text.Bind(text, multiline)
	changed := f.in.Key != "" && f.text.Update(f.in.Msg)
	f.emit(renderText(*text, hint, multiline, f.text))
	return changed
}

func (f *Frame) Button(label string) bool {
	focused := f.control()
	style := buttonStyle
	if focused {
		style = pressStyle
	}
	f.emit(style.Render("[ " + label + " ]"))
	return focused && f.pressed()
}

func (f *Frame) Checkbox(checked *bool, label string) bool {
	focused := f.control()
	changed := false
	if focused && (f.pressed() || f.in.Key == "x") {
		*checked = !*checked
		changed = true
	}
	mark := "[ ]"
	if *checked {
		mark = "[x]"
	}
	f.emit(controlRender(focused, join(mark, label)))
	return changed
}

func (f *Frame) Radio(selected bool, label string) bool {
	focused := f.control()
	mark := "( )"
	if selected {
		mark = "(•)"
	}
	f.emit(controlRender(focused, join(mark, label)))
	return focused && f.pressed()
}

func (f *Frame) DragInt(v *int, lo, hi int) bool {
	focused := f.control()
	old := *v
	if focused {
		switch f.in.Key {
		case "left", "-":
			*v--
		case "right", "+", "=":
			*v++
		case "backspace":
			*v /= 10
		default:
			if d, ok := digit(f.in.Text); ok {
				*v = *v*10 + d
				if *v > hi {
					*v = d
				}
			}
		}
		*v = clamp(*v, lo, hi)
	}
	f.emit(controlRender(focused, "◂ "+strconv.Itoa(*v)+" ▸"))
	return *v != old
}

func (f *Frame) Select(label string, items []string) (int, bool) {
	focused := f.control()
	f.emit(controlRender(focused, label+" ▾"))
	if !focused || len(items) == 0 {
		return 0, false
	}
	cur := -1
	for i, it := range items {
		if it == label {
			cur = i
			break
		}
	}
	switch f.in.Key {
	case "right", "enter", "space":
		if cur < 0 {
			return 0, true
		}
		return (cur + 1) % len(items), true
	case "left":
		if cur < 0 {
			return len(items) - 1, true
		}
		return (cur - 1 + len(items)) % len(items), true
	}
	return 0, false
}

func (f *Frame) Horizontal(fn func()) {
	row := &[]string{}
	f.rows = append(f.rows, row)
	fn()
	f.rows = f.rows[:len(f.rows)-1]

	cells := make([]string, 0, 2*len(*row))
	for i, c := range *row {
		if i > 0 {
			cells = append(cells, " ")
		}
		cells = append(cells, c)
	}
	f.emit(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (f *Frame) Grid(fn func()) {
	outer := f.grid
	g := &gridBuf{}
	f.grid = g
	fn()
	f.EndRow()
	f.grid = outer

	var widths []int
	for _, r := range g.rows {
		for i, c := range r {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	lines := make([]string, 0, len(g.rows))
	for _, r := range g.rows {
		var b strings.Builder
		for i, c := range r {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(c)
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	f.emit(strings.Join(lines, "\n"))
}

func (f *Frame) EndRow() {
	if f.grid == nil || len(f.grid.cur) == 0 {
		return
	}
	f.grid.rows = append(f.grid.rows, f.grid.cur)
	f.grid.cur = nil
}

// control claims the next control number and reports whether it has focus.
func (f *Frame) control() bool {
	id := f.next
	f.next++
	if id != f.focus {
		return false
	}
	f.focusLine = len(f.lines)
	return true
}

func (f *Frame) emit(s string) {
	switch {
	case len(f.rows) > 0:
		row := f.rows[len(f.rows)-1]
		*row = append(*row, s)
	case f.grid != nil:
		f.grid.cur = append(f.grid.cur, s)
	default:
		f.lines = append(f.lines, s)
	}
}

func (f *Frame) pressed() bool {
	return f.in.Key == "enter" || f.in.Key == "space"
}

// renderText draws text with a cursor mark where cur, the focused input,
// has it. cur is nil for unfocused controls.
func renderText(text, hint string, multiline bool, cur *components.TextInput) string {
	var body string
	switch {
	case cur != nil:
		body = focusStyle.Render(withCursor(text, cur))
	case text == "":
		body = hintStyle.Render(hint)
	default:
		body = controlStyle.Render(text)
	}
	if !multiline {
		return "[" + body + "]"
	}
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = "│ " + l
	}
	return strings.Join(lines, "\n")
}

func withCursor(text string, cur *components.TextInput) string {
	row, col := cur.Cursor()
	lines := strings.Split(text, "\n")
	if row >= len(lines) {
		return text + "▏"
	}
	r := []rune(lines[row])
	col = clamp(col, 0, len(r))
	lines[row] = string(r[:col]) + "▏" + string(r[col:])
	return strings.Join(lines, "\n")
}

func controlRender(focused bool, s string) string {
	if focused {
		return focusStyle.Render(s)
	}
	return controlStyle.Render(s)
}

func join(mark, label string) string {
	if label == "" {
		return mark
	}
	return mark + " " + label
}

func digit(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Window renders at most height lines, scrolled so the focused control is
// visible.
func (f *Frame) Window(height int) string {
	var (
		out   []string
		focus = -1
	)
	for i, l := range f.lines {
		if i == f.focusLine {
			focus = len(out)
		}
		out = append(out, strings.Split(l, "\n")...)
	}
	if height <= 0 || len(out) <= height {
		return strings.Join(out, "\n")
	}
	top := 0
	if focus >= height {
		top = focus - height + 1
	}
	return strings.Join(out[top:top+height], "\n")
}
