package question

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultName is the name given to newly added questions.
const DefaultName = "Question"

// Question binds a display name to a config and value of the same kind.
// The pair can only be replaced as a whole. The zero value is an unnamed
// Short answer question; New and NewOfKind are the usual constructors.
type Question struct {
	Name string

	config Config
	value  Value
}

// New returns a Short answer question.
func New(name string) *Question {
	return NewOfKind(name, ShortAnswer)
}

// NewOfKind returns a question of kind k with default config and value.
func NewOfKind(name string, k Kind) *Question {
	c, v := DefaultsFor(k)
	return &Question{Name: name, config: c, value: v}
}

func (q *Question) Kind() Kind {
	q.ensure()
	return q.config.Kind()
}

// Config returns the current config. Callers may mutate its fields but can
// never change its kind.
func (q *Question) Config() Config {
	q.ensure()
	return q.config
}

// Value returns the current answer.
func (q *Question) Value() Value {
	q.ensure()
	return q.value
}

// ensure fills in the Short answer pair for a zero Question, or a reset
// value for a config that has none.
func (q *Question) ensure() {
	switch {
	case q.config == nil:
		q.config, q.value = DefaultsFor(ShortAnswer)
	case q.value == nil:
		q.value = newValue(q.config.Kind())
		reset(q.config, q.value)
	}
}

// SwitchKind replaces both config and value with the defaults for k.
func (q *Question) SwitchKind(k Kind) {
	c, v := DefaultsFor(k)
	q.config, q.value = c, v
}

// ResetValue puts the answer back into its unanswered state, sized to the
// current config.
func (q *Question) ResetValue() {
	q.ensure()
	reset(q.config, q.value)
}

// Clone returns a deep copy.
func (q *Question) Clone() *Question {
	q.ensure()
	return &Question{
		Name:   q.Name,
		config: cloneConfig(q.config),
		value:  cloneValue(q.value),
	}
}

// Validate checks the value's shape against the config. It returns a
// *ShapeError for the first rule broken.
func (q *Question) Validate() error {
	q.ensure()
	if q.config.Kind() != q.value.Kind() {
		return &InvariantError{Config: q.config.Kind(), Value: q.value.Kind()}
	}
	bad := func(format string, args ...any) error {
		return &ShapeError{Kind: q.Kind(), Reason: fmt.Sprintf(format, args...)}
	}

	switch v := q.value.(type) {
	case *MultipleChoiceValue:
		cfg := q.config.(*MultipleChoiceConfig)
		if v.Choice != "" && !slices.Contains(cfg.Options, v.Choice) {
			return bad("choice %q is not an option", v.Choice)
		}
	case *DropdownValue:
		cfg := q.config.(*DropdownConfig)
		if v.Choice != "" && !slices.Contains(cfg.Options, v.Choice) {
			return bad("choice %q is not an option", v.Choice)
		}
	case *CheckboxesValue:
		cfg := q.config.(*CheckboxesConfig)
		if len(v.Choices) != len(cfg.Options) {
			return bad("%d choices for %d options", len(v.Choices), len(cfg.Options))
		}
	case *LinearScaleValue:
		cfg := q.config.(*LinearScaleConfig)
		if cfg.Start >= cfg.End {
			return bad("scale start %d is not below end %d", cfg.Start, cfg.End)
		}
		if v.Value < cfg.Start || v.Value > cfg.End {
			return bad("%d outside [%d,%d]", v.Value, cfg.Start, cfg.End)
		}
	case *MultipleChoiceGridValue:
		cfg := q.config.(*MultipleChoiceGridConfig)
		if len(v.Choices) != len(cfg.Rows) {
			return bad("%d choices for %d rows", len(v.Choices), len(cfg.Rows))
		}
		for i, c := range v.Choices {
			if c != "" && !slices.Contains(cfg.Columns, c) {
				return bad("row %d choice %q is not a column", i, c)
			}
		}
	case *CheckboxGridValue:
		cfg := q.config.(*CheckboxGridConfig)
		if len(v.Choices) != len(cfg.Rows) {
			return bad("%d choice rows for %d rows", len(v.Choices), len(cfg.Rows))
		}
		for i, row := range v.Choices {
			if len(row) != len(cfg.Columns) {
				return bad("row %d has %d choices for %d columns", i, len(row), len(cfg.Columns))
			}
		}
	case *DateValue:
		if v.Month < 1 || v.Month > 12 {
			return bad("month %d outside [1,12]", v.Month)
		}
		if v.Day < 1 || v.Day > 31 {
			return bad("day %d outside [1,31]", v.Day)
		}
	case *TimeValue:
		if v.Hour < 1 || v.Hour > 12 {
			return bad("hour %d outside [1,12]", v.Hour)
		}
		if v.Minute < 0 || v.Minute > 59 {
			return bad("minute %d outside [0,59]", v.Minute)
		}
	}
	return nil
}

// Answered reports whether the respondent has given an answer. Scale, date
// and time always carry a value and count as answered.
func (q *Question) Answered() bool {
	return q.Summary() != ""
}

// Summary renders the answer on one line, or "" when unanswered.
func (q *Question) Summary() string {
	q.ensure()
	switch v := q.value.(type) {
	case *ShortAnswerValue:
		return v.Text
	case *ParagraphValue:
		return strings.ReplaceAll(v.Text, "\n", " ")
	case *MultipleChoiceValue:
		return v.Choice
	case *DropdownValue:
		return v.Choice
	case *CheckboxesValue:
		cfg := q.config.(*CheckboxesConfig)
		var picked []string
		for i, on := range v.Choices {
			if on && i < len(cfg.Options) {
				picked = append(picked, cfg.Options[i])
			}
		}
		return strings.Join(picked, ", ")
	case *LinearScaleValue:
		return fmt.Sprintf("%d", v.Value)
	case *MultipleChoiceGridValue:
		cfg := q.config.(*MultipleChoiceGridConfig)
		var parts []string
		for i, c := range v.Choices {
			if c != "" && i < len(cfg.Rows) {
				parts = append(parts, cfg.Rows[i]+": "+c)
			}
		}
		return strings.Join(parts, "; ")
	case *CheckboxGridValue:
		cfg := q.config.(*CheckboxGridConfig)
		var parts []string
		for i, row := range v.Choices {
			if i >= len(cfg.Rows) {
				break
			}
			var cols []string
			for j, on := range row {
				if on && j < len(cfg.Columns) {
					cols = append(cols, cfg.Columns[j])
				}
			}
			if len(cols) > 0 {
				parts = append(parts, cfg.Rows[i]+": "+strings.Join(cols, ", "))
			}
		}
		return strings.Join(parts, "; ")
	case *DateValue:
		return fmt.Sprintf("%02d/%02d/%04d", v.Month, v.Day, v.Year)
	case *TimeValue:
		return fmt.Sprintf("%d:%02d %s", v.Hour, v.Minute, v.Period)
	}
	return ""
}
