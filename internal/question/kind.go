package question

import "fmt"

// Kind identifies one of the fixed question types.
type Kind int

const (
	ShortAnswer Kind = iota
	Paragraph
	MultipleChoice
	Checkboxes
	Dropdown
	LinearScale
	MultipleChoiceGrid
	CheckboxGrid
	Date
	Time
)

var kindLabels = [...]string{
	ShortAnswer:        "Short answer",
	Paragraph:          "Paragraph",
	MultipleChoice:     "Multiple choice",
	Checkboxes:         "Checkboxes",
	Dropdown:           "Dropdown",
	LinearScale:        "Linear scale",
	MultipleChoiceGrid: "Multiple choice grid",
	CheckboxGrid:       "Checkbox grid",
	Date:               "Date",
	Time:               "Time",
}

// kindTags are the persisted identifiers. They never change once released.
var kindTags = [...]string{
	ShortAnswer:        "short_answer",
	Paragraph:          "paragraph",
	MultipleChoice:     "multiple_choice",
	Checkboxes:         "checkboxes",
	Dropdown:           "dropdown",
	LinearScale:        "linear_scale",
	MultipleChoiceGrid: "multiple_choice_grid",
	CheckboxGrid:       "checkbox_grid",
	Date:               "date",
	Time:               "time",
}

// AllKinds returns every kind in display order.
func AllKinds() []Kind {
	kinds := make([]Kind, len(kindLabels))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// KindLabels returns the display labels of AllKinds, index for index.
func KindLabels() []string {
	labels := make([]string, len(kindLabels))
	copy(labels, kindLabels[:])
	return labels
}

// Valid reports whether k is one of the catalog kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindLabels)
}

// String returns the human label shown in menus.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindLabels[k]
}

// Tag returns the stable identifier used in saved data.
func (k Kind) Tag() string {
	if !k.Valid() {
		return ""
	}
	return kindTags[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("marshal kind: unknown kind %d", int(k))
	}
	return []byte(kindTags[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseTag(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseTag maps a persisted identifier back to its Kind.
func ParseTag(tag string) (Kind, error) {
	for i, t := range kindTags {
		if t == tag {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown question kind %q", tag)
}

// Kinded is anything that carries a question kind.
type Kinded interface {
	Kind() Kind
}

// SameKind reports whether a and b are the same question kind, ignoring
// their payloads.
func SameKind(a, b Kinded) bool {
	return a.Kind() == b.Kind()
}
