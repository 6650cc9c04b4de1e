package question

import "strings"

// Edit draws the builder surface for q: the name, the kind switcher, the
// kind-specific config editor and a Delete button. It returns true when the
// user asked to delete the question; removing it is up to the caller.
func (q *Question) Edit(s Surface) bool {
	q.ensure()
	s.Horizontal(func() {
		s.TextField(&q.Name, DefaultName)
		if i, ok := s.Select(q.Kind().String(), KindLabels()); ok {
			if k := AllKinds()[i]; k != q.Kind() {
				q.SwitchKind(k)
			}
		}
	})

	switch c := q.config.(type) {
	case *MultipleChoiceConfig, *CheckboxesConfig, *DropdownConfig:
		editLabels(s, c, Options)
	case *LinearScaleConfig:
		editScale(s, c)
	case *MultipleChoiceGridConfig, *CheckboxGridConfig:
		editLabels(s, c, Rows)
		editLabels(s, c, Columns)
	}

	return s.Button("Delete")
}

func editLabels(s Surface, c Config, side Side) {
	p, err := labels(c, side)
	if err != nil {
		return
	}
	s.Label(side.label() + "s")
	deleteAt := -1
	for i := range *p {
		s.Horizontal(func() {
			s.TextField(&(*p)[i], side.label())
			if s.Button("✕") {
				deleteAt = i
			}
		})
	}
	if deleteAt >= 0 {
		_ = RemoveOption(c, side, deleteAt)
	}
	if s.Button("Add " + strings.ToLower(side.label())) {
		_ = AddOption(c, side)
	}
}

func editScale(s Surface, c *LinearScaleConfig) {
	s.Horizontal(func() {
		start, end := c.Start, c.End
		if s.DragInt(&start, ScaleStartMin, ScaleStartMax) {
			SetScaleStart(c, start)
		}
		s.Label("to")
		if s.DragInt(&end, ScaleEndMin, ScaleEndMax) {
			SetScaleEnd(c, end)
		}
	})
	s.Horizontal(func() {
		s.Label(itoa(c.Start))
		s.TextField(&c.StartLabel, "Label (optional)")
	})
	s.Horizontal(func() {
		s.Label(itoa(c.End))
		s.TextField(&c.EndLabel, "Label (optional)")
	})
}
