package form

import (
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/eform/internal/question"
)

// DefaultTitle is the title of a freshly created form.
const DefaultTitle = "Untitled form"

// copySuffix is appended to the title of a duplicated form.
const copySuffix = " Copy"

// Form is an ordered list of questions with a title. A Form exclusively
// owns its questions.
type Form struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Questions   []*question.Question `json:"questions"`
}

// New returns an empty form with a fresh ID.
func New(title string) *Form {
	return &Form{
		ID:        uuid.NewString(),
		Title:     title,
		Questions: []*question.Question{},
	}
}

// Demo returns a form holding one question of every kind, in catalog order.
func Demo() *Form {
	f := New(DefaultTitle)
	for _, k := range question.AllKinds() {
		f.Questions = append(f.Questions, question.NewOfKind(question.DefaultName, k))
	}
	return f
}

// AddQuestion appends a Short answer question named "Question".
func (f *Form) AddQuestion() *question.Question {
	q := question.New(question.DefaultName)
	f.Questions = append(f.Questions, q)
	return q
}

// RemoveQuestion deletes the question at i.
func (f *Form) RemoveQuestion(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.Questions = append(f.Questions[:i], f.Questions[i+1:]...)
	return nil
}

// MoveQuestion moves the question at from so that it ends up at index to.
func (f *Form) MoveQuestion(from, to int) error {
	if err := f.checkIndex(from); err != nil {
		return err
	}
	if err := f.checkIndex(to); err != nil {
		return err
	}
	q := f.Questions[from]
	f.Questions = append(f.Questions[:from], f.Questions[from+1:]...)
	f.Questions = append(f.Questions[:to], append([]*question.Question{q}, f.Questions[to:]...)...)
	return nil
}

// DuplicateQuestion inserts a deep copy of the question at i right after it.
func (f *Form) DuplicateQuestion(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	cp := f.Questions[i].Clone()
	f.Questions = append(f.Questions[:i+1], append([]*question.Question{cp}, f.Questions[i+1:]...)...)
	return nil
}

// Clone returns a deep copy that keeps the ID.
func (f *Form) Clone() *Form {
	cp := &Form{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Questions:   make([]*question.Question, len(f.Questions)),
	}
	for i, q := range f.Questions {
		cp.Questions[i] = q.Clone()
	}
	return cp
}

// Duplicate returns a deep copy under a new ID. A non-empty title gets
// " Copy" appended.
func (f *Form) Duplicate() *Form {
	cp := f.Clone()
	cp.ID = uuid.NewString()
	if cp.Title != "" {
		cp.Title += copySuffix
	}
	return cp
}

// DisplayTitle returns the title, or DefaultTitle when it is blank.
func (f *Form) DisplayTitle() string {
	if strings.TrimSpace(f.Title) == "" {
		return DefaultTitle
	}
	return f.Title
}

// ResetAllPreviewValues clears every answer back to its unanswered state.
func (f *Form) ResetAllPreviewValues() {
	for _, q := range f.Questions {
		q.ResetValue()
	}
}

// Validate returns the first question whose answer does not fit its config.
func (f *Form) Validate() error {
	for i, q := range f.Questions {
		if err := q.Validate(); err != nil {
			return &QuestionError{Index: i, Name: q.Name, Err: err}
		}
	}
	return nil
}

func (f *Form) checkIndex(i int) error {
	if i < 0 || i >= len(f.Questions) {
		return &question.IndexError{What: "question", Index: i, Len: len(f.Questions)}
	}
	return nil
}
