package question

// Surface is the drawing context a host hands to Edit and Preview. Each call
// emits one element and reports, synchronously, whether the user interacted
// with it during this refresh.
type Surface interface {
	Heading(text string)
	Label(text string)

	// TextField and TextArea edit *text in place and report a change.
	TextField(text *string, hint string) bool
	TextArea(text *string, hint string) bool

	// Button reports a click.
	Button(label string) bool

	// Checkbox toggles *checked in place and reports a change.
	Checkbox(checked *bool, label string) bool

	// Radio draws one radio button and reports a click on it.
	Radio(selected bool, label string) bool

	// DragInt adjusts *v within [lo, hi] and reports a change.
	DragInt(v *int, lo, hi int) bool

	// Select draws a menu button labelled label and returns the index of
	// the entry picked from items, if any.
	Select(label string, items []string) (int, bool)

	// Horizontal lays out the elements emitted by fn on one line.
	Horizontal(fn func())

	// Grid lays out the elements emitted by fn in aligned columns. EndRow
	// closes the current row.
	Grid(fn func())
	EndRow()
}
