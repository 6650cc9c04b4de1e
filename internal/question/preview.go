package question

import "strconv"

// Preview draws the fill-in surface for q and writes input straight into its
// value. The value must already fit the config (see ResetValue); a mismatch
// panics with *InvariantError.
func (q *Question) Preview(s Surface) {
	if err := q.Validate(); err != nil {
		panic(&InvariantError{Config: q.config.Kind(), Value: q.value.Kind(), Detail: err.Error()})
	}

	s.Heading(q.Name)
	switch v := q.value.(type) {
	case *ShortAnswerValue:
		s.TextField(&v.Text, "Your answer")
	case *ParagraphValue:
		s.TextArea(&v.Text, "Your answer")
	case *MultipleChoiceValue:
		for _, opt := range q.config.(*MultipleChoiceConfig).Options {
			if s.Radio(v.Choice == opt, opt) {
				v.Choice = opt
			}
		}
	case *CheckboxesValue:
		for i, opt := range q.config.(*CheckboxesConfig).Options {
			s.Checkbox(&v.Choices[i], opt)
		}
	case *DropdownValue:
		label := v.Choice
		if label == "" {
			label = "Choose"
		}
		opts := q.config.(*DropdownConfig).Options
		if i, ok := s.Select(label, opts); ok {
			v.Choice = opts[i]
		}
	case *LinearScaleValue:
		cfg := q.config.(*LinearScaleConfig)
		s.Horizontal(func() {
			if cfg.StartLabel != "" {
				s.Label(cfg.StartLabel)
			}
			for n := cfg.Start; n <= cfg.End; n++ {
				if s.Radio(v.Value == n, itoa(n)) {
					v.Value = n
				}
			}
			if cfg.EndLabel != "" {
				s.Label(cfg.EndLabel)
			}
		})
	case *MultipleChoiceGridValue:
		cfg := q.config.(*MultipleChoiceGridConfig)
		s.Grid(func() {
			gridHeader(s, cfg.Columns)
			for y, row := range cfg.Rows {
				s.Label(row)
				for _, col := range cfg.Columns {
					if s.Radio(v.Choices[y] == col, "") {
						v.Choices[y] = col
					}
				}
				s.EndRow()
			}
		})
	case *CheckboxGridValue:
		cfg := q.config.(*CheckboxGridConfig)
		s.Grid(func() {
			gridHeader(s, cfg.Columns)
			for y, row := range cfg.Rows {
				s.Label(row)
				for x := range cfg.Columns {
					s.Checkbox(&v.Choices[y][x], "")
				}
				s.EndRow()
			}
		})
	case *DateValue:
		s.Label("MM  DD  YYYY")
		s.Horizontal(func() {
			s.DragInt(&v.Month, 1, 12)
			s.Label("/")
			s.DragInt(&v.Day, 1, 31)
			s.Label("/")
			s.DragInt(&v.Year, 0, 9999)
		})
	case *TimeValue:
		s.Label("Time")
		s.Horizontal(func() {
			s.DragInt(&v.Hour, 1, 12)
			s.Label(":")
			s.DragInt(&v.Minute, 0, 59)
			if i, ok := s.Select(v.Period.String(), []string{AM.String(), PM.String()}); ok {
				v.Period = Period(i)
			}
		})
	}
}

func gridHeader(s Surface, columns []string) {
	s.Label("")
	for _, col := range columns {
		s.Label(col)
	}
	s.EndRow()
}

func itoa(n int) string { return strconv.Itoa(n) }
