package question

import "fmt"

// Value is the respondent-time answer for a question. Each kind has its own
// concrete type; the set is closed.
type Value interface {
	Kinded
	isValue()
}

// Period is the half of the day for a Time answer.
type Period int

const (
	AM Period = iota
	PM
)

func (p Period) String() string {
	if p == PM {
		return "PM"
	}
	return "AM"
}

func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Period) UnmarshalText(b []byte) error {
	switch string(b) {
	case "AM":
		*p = AM
	case "PM":
		*p = PM
	default:
		return fmt.Errorf("unknown period %q", string(b))
	}
	return nil
}

type ShortAnswerValue struct {
	Text string `json:"text"`
}

type ParagraphValue struct {
	Text string `json:"text"`
}

// MultipleChoiceValue holds the chosen option label, or "" when unanswered.
type MultipleChoiceValue struct {
	Choice string `json:"choice"`
}

// CheckboxesValue has one flag per option.
type CheckboxesValue struct {
	Choices []bool `json:"choices"`
}

type DropdownValue struct {
	Choice string `json:"choice"`
}

type LinearScaleValue struct {
	Value int `json:"value"`
}

// MultipleChoiceGridValue holds the chosen column label for each row.
type MultipleChoiceGridValue struct {
	Choices []string `json:"choices"`
}

// CheckboxGridValue is indexed [row][column].
type CheckboxGridValue struct {
	Choices [][]bool `json:"choices"`
}

// DateValue is not calendar-validated: February 31 is accepted.
type DateValue struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type TimeValue struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Period Period `json:"period"`
}

func (*ShortAnswerValue) Kind() Kind        { return ShortAnswer }
func (*ParagraphValue) Kind() Kind          { return Paragraph }
func (*MultipleChoiceValue) Kind() Kind     { return MultipleChoice }
func (*CheckboxesValue) Kind() Kind         { return Checkboxes }
func (*DropdownValue) Kind() Kind           { return Dropdown }
func (*LinearScaleValue) Kind() Kind        { return LinearScale }
func (*MultipleChoiceGridValue) Kind() Kind { return MultipleChoiceGrid }
func (*CheckboxGridValue) Kind() Kind       { return CheckboxGrid }
func (*DateValue) Kind() Kind               { return Date }
func (*TimeValue) Kind() Kind               { return Time }

func (*ShortAnswerValue) isValue()        {}
func (*ParagraphValue) isValue()          {}
func (*MultipleChoiceValue) isValue()     {}
func (*CheckboxesValue) isValue()         {}
func (*DropdownValue) isValue()           {}
func (*LinearScaleValue) isValue()        {}
func (*MultipleChoiceGridValue) isValue() {}
func (*CheckboxGridValue) isValue()       {}
func (*DateValue) isValue()               {}
func (*TimeValue) isValue()               {}

// newValue returns a zero value of kind k.
func newValue(k Kind) Value {
	switch k {
	case ShortAnswer:
		return &ShortAnswerValue{}
	case Paragraph:
		return &ParagraphValue{}
	case MultipleChoice:
		return &MultipleChoiceValue{}
	case Checkboxes:
		return &CheckboxesValue{}
	case Dropdown:
		return &DropdownValue{}
	case LinearScale:
		return &LinearScaleValue{}
	case MultipleChoiceGrid:
		return &MultipleChoiceGridValue{}
	case CheckboxGrid:
		return &CheckboxGridValue{}
	case Date:
		return &DateValue{}
	case Time:
		return &TimeValue{}
	}
	panic("question: unknown kind " + k.String())
}

func cloneValue(v Value) Value {
	switch v := v.(type) {
	case *CheckboxesValue:
		return &CheckboxesValue{Choices: cloneBools(v.Choices)}
	case *MultipleChoiceGridValue:
		return &MultipleChoiceGridValue{Choices: cloneStrings(v.Choices)}
	case *CheckboxGridValue:
		var rows [][]bool
		if v.Choices != nil {
			rows = make([][]bool, len(v.Choices))
			for i, r := range v.Choices {
				rows[i] = cloneBools(r)
			}
		}
		return &CheckboxGridValue{Choices: rows}
	case *ShortAnswerValue:
		cp := *v
		return &cp
	case *ParagraphValue:
		cp := *v
		return &cp
	case *MultipleChoiceValue:
		cp := *v
		return &cp
	case *DropdownValue:
		cp := *v
		return &cp
	case *LinearScaleValue:
		cp := *v
		return &cp
	case *DateValue:
		cp := *v
		return &cp
	case *TimeValue:
		cp := *v
		return &cp
	}
	panic("question: unknown value type")
}

func cloneBools(b []bool) []bool {
	if b == nil {
		return nil
	}
	out := make([]bool, len(b))
	copy(out, b)
	return out
}
