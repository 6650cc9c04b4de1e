package question

// scriptedSurface plays back canned interactions. Elements are matched by
// label and occurrence so repeated labels ("✕", "") can be targeted.
type scriptedSurface struct {
	clicks  map[string]int    // label -> occurrence to report as clicked
	selects map[string]int    // select label -> picked index
	toggles map[string]int    // checkbox label -> occurrence to toggle
	texts   map[string]string // hint -> replacement text (first field only)
	drags   map[int]int       // drag occurrence -> new value

	seen    map[string]int
	drag    int
	labels  []string
	fields  int
	grids   int
	rows    int
	horizon int
}

func newScripted() *scriptedSurface {
	return &scriptedSurface{
		clicks:  map[string]int{},
		selects: map[string]int{},
		toggles: map[string]int{},
		texts:   map[string]string{},
		drags:   map[int]int{},
		seen:    map[string]int{},
	}
}

func (s *scriptedSurface) occurrence(kind, label string) int {
	key := kind + "|" + label
	n := s.seen[key]
	s.seen[key] = n + 1
	return n
}

func (s *scriptedSurface) Heading(text string) { s.labels = append(s.labels, text) }
func (s *scriptedSurface) Label(text string)   { s.labels = append(s.labels, text) }

func (s *scriptedSurface) TextField(text *string, hint string) bool {
	s.fields++
	if v, ok := s.texts[hint]; ok {
		delete(s.texts, hint)
		*text = v
		return true
	}
	return false
}

func (s *scriptedSurface) TextArea(text *string, hint string) bool {
	return s.TextField(text, hint)
}

func (s *scriptedSurface) Button(label string) bool {
	n := s.occurrence("button", label)
	want, ok := s.clicks[label]
	return ok && want == n
}

func (s *scriptedSurface) Checkbox(checked *bool, label string) bool {
	n := s.occurrence("checkbox", label)
	if want, ok := s.toggles[label]; ok && want == n {
		*checked = !*checked
		return true
	}
	return false
}

func (s *scriptedSurface) Radio(selected bool, label string) bool {
	n := s.occurrence("radio", label)
	want, ok := s.clicks[label]
	return ok && want == n
}

func (s *scriptedSurface) DragInt(v *int, lo, hi int) bool {
	n := s.drag
	s.drag++
	if nv, ok := s.drags[n]; ok {
		if nv < lo {
			nv = lo
		}
		if nv > hi {
			nv = hi
		}
		*v = nv
		return true
	}
	return false
}

func (s *scriptedSurface) Select(label string, items []string) (int, bool) {
	if i, ok := s.selects[label]; ok && i < len(items) {
		return i, true
	}
	return 0, false
}

func (s *scriptedSurface) Horizontal(fn func()) {
	s.horizon++
	fn()
}

func (s *scriptedSurface) Grid(fn func()) {
	s.grids++
	fn()
}

func (s *scriptedSurface) EndRow() { s.rows++ }
