package question

// Config is the author-time definition of a question. Each kind has its own
// concrete type; the set is closed.
type Config interface {
	Kinded
	isConfig()
}

type ShortAnswerConfig struct{}

type ParagraphConfig struct{}

type MultipleChoiceConfig struct {
	Options []string `json:"options"`
}

type CheckboxesConfig struct {
	Options []string `json:"options"`
}

type DropdownConfig struct {
	Options []string `json:"options"`
}

// LinearScaleConfig is a numbered scale from Start to End inclusive.
type LinearScaleConfig struct {
	Start      int    `json:"start"`
	End        int    `json:"end"`
	StartLabel string `json:"start_label,omitempty"`
	EndLabel   string `json:"end_label,omitempty"`
}

type MultipleChoiceGridConfig struct {
	Rows    []string `json:"rows"`
	Columns []string `json:"columns"`
}

type CheckboxGridConfig struct {
	Rows    []string `json:"rows"`
	Columns []string `json:"columns"`
}

type DateConfig struct{}

type TimeConfig struct{}

func (*ShortAnswerConfig) Kind() Kind        { return ShortAnswer }
func (*ParagraphConfig) Kind() Kind          { return Paragraph }
func (*MultipleChoiceConfig) Kind() Kind     { return MultipleChoice }
func (*CheckboxesConfig) Kind() Kind         { return Checkboxes }
func (*DropdownConfig) Kind() Kind           { return Dropdown }
func (*LinearScaleConfig) Kind() Kind        { return LinearScale }
func (*MultipleChoiceGridConfig) Kind() Kind { return MultipleChoiceGrid }
func (*CheckboxGridConfig) Kind() Kind       { return CheckboxGrid }
func (*DateConfig) Kind() Kind               { return Date }
func (*TimeConfig) Kind() Kind               { return Time }

func (*ShortAnswerConfig) isConfig()        {}
func (*ParagraphConfig) isConfig()          {}
func (*MultipleChoiceConfig) isConfig()     {}
func (*CheckboxesConfig) isConfig()         {}
func (*DropdownConfig) isConfig()           {}
func (*LinearScaleConfig) isConfig()        {}
func (*MultipleChoiceGridConfig) isConfig() {}
func (*CheckboxGridConfig) isConfig()       {}
func (*DateConfig) isConfig()               {}
func (*TimeConfig) isConfig()               {}

// newConfig returns a zero config of kind k.
func newConfig(k Kind) Config {
	switch k {
	case ShortAnswer:
		return &ShortAnswerConfig{}
	case Paragraph:
		return &ParagraphConfig{}
	case MultipleChoice:
		return &MultipleChoiceConfig{}
	case Checkboxes:
		return &CheckboxesConfig{}
	case Dropdown:
		return &DropdownConfig{}
	case LinearScale:
		return &LinearScaleConfig{}
	case MultipleChoiceGrid:
		return &MultipleChoiceGridConfig{}
	case CheckboxGrid:
		return &CheckboxGridConfig{}
	case Date:
		return &DateConfig{}
	case Time:
		return &TimeConfig{}
	}
	panic("question: unknown kind " + k.String())
}

func cloneConfig(c Config) Config {
	switch c := c.(type) {
	case *MultipleChoiceConfig:
		return &MultipleChoiceConfig{Options: cloneStrings(c.Options)}
	case *CheckboxesConfig:
		return &CheckboxesConfig{Options: cloneStrings(c.Options)}
	case *DropdownConfig:
		return &DropdownConfig{Options: cloneStrings(c.Options)}
	case *LinearScaleConfig:
		cp := *c
		return &cp
	case *MultipleChoiceGridConfig:
		return &MultipleChoiceGridConfig{Rows: cloneStrings(c.Rows), Columns: cloneStrings(c.Columns)}
	case *CheckboxGridConfig:
		return &CheckboxGridConfig{Rows: cloneStrings(c.Rows), Columns: cloneStrings(c.Columns)}
	}
	// Payload-free kinds.
	return newConfig(c.Kind())
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
