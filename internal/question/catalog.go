package question

// Labels used when synthesizing new entries ("Option 3", "Row 2", ...).
const (
	optionLabel = "Option"
	rowLabel    = "Row"
	columnLabel = "Column"
)

// Scale bounds accepted by the editor.
const (
	ScaleStartMin = 0
	ScaleStartMax = 1
	ScaleEndMin   = 2
	ScaleEndMax   = 10
)

// DefaultsFor returns a freshly initialized config and value for k. The value
// is already in the reset state for the config, so ResetValue right after is
// a no-op.
func DefaultsFor(k Kind) (Config, Value) {
	var c Config
	switch k {
	case MultipleChoice:
		c = &MultipleChoiceConfig{Options: []string{optionLabel + " 1"}}
	case Checkboxes:
		c = &CheckboxesConfig{Options: []string{optionLabel + " 1"}}
	case Dropdown:
		c = &DropdownConfig{Options: []string{optionLabel + " 1"}}
	case LinearScale:
		c = &LinearScaleConfig{Start: 1, End: 5}
	case MultipleChoiceGrid:
		c = &MultipleChoiceGridConfig{Rows: []string{rowLabel + " 1"}, Columns: []string{columnLabel + " 1"}}
	case CheckboxGrid:
		c = &CheckboxGridConfig{Rows: []string{rowLabel + " 1"}, Columns: []string{columnLabel + " 1"}}
	default:
		c = newConfig(k)
	}
	v := newValue(k)
	reset(c, v)
	return c, v
}

// reset puts v into the unanswered state sized to c.
func reset(c Config, v Value) {
	switch v := v.(type) {
	case *ShortAnswerValue:
		mustConfig[*ShortAnswerConfig](c, v)
		v.Text = ""
	case *ParagraphValue:
		mustConfig[*ParagraphConfig](c, v)
		v.Text = ""
	case *MultipleChoiceValue:
		mustConfig[*MultipleChoiceConfig](c, v)
		v.Choice = ""
	case *CheckboxesValue:
		cfg := mustConfig[*CheckboxesConfig](c, v)
		v.Choices = make([]bool, len(cfg.Options))
	case *DropdownValue:
		mustConfig[*DropdownConfig](c, v)
		v.Choice = ""
	case *LinearScaleValue:
		cfg := mustConfig[*LinearScaleConfig](c, v)
		v.Value = cfg.Start
	case *MultipleChoiceGridValue:
		cfg := mustConfig[*MultipleChoiceGridConfig](c, v)
		v.Choices = make([]string, len(cfg.Rows))
	case *CheckboxGridValue:
		cfg := mustConfig[*CheckboxGridConfig](c, v)
		v.Choices = make([][]bool, len(cfg.Rows))
		for i := range v.Choices {
			v.Choices[i] = make([]bool, len(cfg.Columns))
		}
	case *DateValue:
		mustConfig[*DateConfig](c, v)
		v.Year, v.Month, v.Day = 0, 1, 1
	case *TimeValue:
		mustConfig[*TimeConfig](c, v)
		v.Hour, v.Minute, v.Period = 1, 0, AM
	default:
		panic(&InvariantError{Config: c.Kind(), Value: v.Kind(), Detail: "unknown value type"})
	}
}

// mustConfig returns c as T or panics with an InvariantError when the pair
// is mismatched.
func mustConfig[T Config](c Config, v Value) T {
	cfg, ok := c.(T)
	if !ok {
		panic(&InvariantError{Config: c.Kind(), Value: v.Kind()})
	}
	return cfg
}
