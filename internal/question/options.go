package question

import "fmt"

// Side selects which label list of a config an edit applies to.
type Side int

const (
	Options Side = iota
	Rows
	Columns
)

func (s Side) String() string {
	switch s {
	case Options:
		return "option"
	case Rows:
		return "row"
	case Columns:
		return "column"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

func (s Side) label() string {
	switch s {
	case Rows:
		return rowLabel
	case Columns:
		return columnLabel
	}
	return optionLabel
}

// Sides returns the label lists c carries, in editor order.
func Sides(c Config) []Side {
	switch c.(type) {
	case *MultipleChoiceConfig, *CheckboxesConfig, *DropdownConfig:
		return []Side{Options}
	case *MultipleChoiceGridConfig, *CheckboxGridConfig:
		return []Side{Rows, Columns}
	}
	return nil
}

// Labels returns the label list on the given side of c.
func Labels(c Config, side Side) ([]string, error) {
	p, err := labels(c, side)
	if err != nil {
		return nil, err
	}
	return *p, nil
}

func labels(c Config, side Side) (*[]string, error) {
	switch c := c.(type) {
	case *MultipleChoiceConfig:
		if side == Options {
			return &c.Options, nil
		}
	case *CheckboxesConfig:
		if side == Options {
			return &c.Options, nil
		}
	case *DropdownConfig:
		if side == Options {
			return &c.Options, nil
		}
	case *MultipleChoiceGridConfig:
		switch side {
		case Rows:
			return &c.Rows, nil
		case Columns:
			return &c.Columns, nil
		}
	case *CheckboxGridConfig:
		switch side {
		case Rows:
			return &c.Rows, nil
		case Columns:
			return &c.Columns, nil
		}
	}
	return nil, fmt.Errorf("%s has no %s list: %w", c.Kind(), side, ErrNoSuchSide)
}

// AddOption appends a synthesized label such as "Option 3" to the given side.
func AddOption(c Config, side Side) error {
	p, err := labels(c, side)
	if err != nil {
		return err
	}
	*p = append(*p, fmt.Sprintf("%s %d", side.label(), len(*p)+1))
	return nil
}

// RemoveOption deletes the label at index. Nothing changes when index is out
// of range.
func RemoveOption(c Config, side Side, index int) error {
	p, err := labels(c, side)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*p) {
		return &IndexError{What: side.String(), Index: index, Len: len(*p)}
	}
	*p = append((*p)[:index], (*p)[index+1:]...)
	return nil
}

// SetOption rewrites the label at index.
func SetOption(c Config, side Side, index int, label string) error {
	p, err := labels(c, side)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*p) {
		return &IndexError{What: side.String(), Index: index, Len: len(*p)}
	}
	(*p)[index] = label
	return nil
}

// SetScaleStart sets the first scale point, clamped to the editor range.
// The current answer is left alone until the next reset.
func SetScaleStart(c *LinearScaleConfig, start int) {
	c.Start = clamp(start, ScaleStartMin, ScaleStartMax)
}

// SetScaleEnd sets the last scale point, clamped to the editor range.
func SetScaleEnd(c *LinearScaleConfig, end int) {
	c.End = clamp(end, ScaleEndMin, ScaleEndMax)
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
