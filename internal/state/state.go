package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/eform/internal/form"
	"github.com/abhisek/eform/internal/question"
)

// ErrResponseNotFound is returned when a response ID is unknown.
var ErrResponseNotFound = errors.New("response not found")

// State is everything the application persists: the forms being authored
// and the responses submitted through the preview.
type State struct {
	Version   string       `json:"version"`
	Forms     []*form.Form `json:"forms"`
	Responses []*Response  `json:"responses"`
}

// Response is one submitted fill-in of a form. Answers are deep copies of
// the form's questions at submit time.
type Response struct {
	ID          string               `json:"id"`
	FormID      string               `json:"form_id"`
	SubmittedAt time.Time            `json:"submitted_at"`
	Answers     []*question.Question `json:"answers"`
}

// New returns a state with no forms.
func New() *State {
	return &State{
		Version:   FormatVersion,
		Forms:     []*form.Form{},
		Responses: []*Response{},
	}
}

// Default returns the state shown on first launch: one demo form holding a
// question of every kind.
func Default() *State {
	s := New()
	s.Forms = append(s.Forms, form.Demo())
	return s
}

// NewForm appends a blank "Untitled form" and returns it.
func (s *State) NewForm() *form.Form {
	f := form.New(form.DefaultTitle)
	s.Forms = append(s.Forms, f)
	return f
}

// FormByID returns the form with the given ID and its index, or nil and -1.
func (s *State) FormByID(id string) (*form.Form, int) {
	for i, f := range s.Forms {
		if f.ID == id {
			return f, i
		}
	}
	return nil, -1
}

// RemoveForm deletes the form at i together with its responses.
func (s *State) RemoveForm(i int) error {
	if i < 0 || i >= len(s.Forms) {
		return &question.IndexError{What: "form", Index: i, Len: len(s.Forms)}
	}
	id := s.Forms[i].ID
	s.Forms = append(s.Forms[:i], s.Forms[i+1:]...)

	kept := s.Responses[:0]
	for _, r := range s.Responses {
		if r.FormID != id {
			kept = append(kept, r)
		}
	}
	s.Responses = kept
	return nil
}

// DuplicateForm appends a deep copy of the form at i and returns it.
func (s *State) DuplicateForm(i int) (*form.Form, error) {
	if i < 0 || i >= len(s.Forms) {
		return nil, &question.IndexError{What: "form", Index: i, Len: len(s.Forms)}
	}
	cp := s.Forms[i].Duplicate()
	s.Forms = append(s.Forms, cp)
	return cp, nil
}

// Submit records the current answers of f as a new response.
func (s *State) Submit(f *form.Form) (*Response, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("submit %q: %w", f.Title, err)
	}
	r := &Response{
		ID:          uuid.NewString(),
		FormID:      f.ID,
		SubmittedAt: time.Now().UTC().Truncate(time.Second),
		Answers:     make([]*question.Question, len(f.Questions)),
	}
	for i, q := range f.Questions {
		r.Answers[i] = q.Clone()
	}
	s.Responses = append(s.Responses, r)
	return r, nil
}

// ResponsesFor returns the responses submitted for a form, oldest first.
func (s *State) ResponsesFor(formID string) []*Response {
	var out []*Response
	for _, r := range s.Responses {
		if r.FormID == formID {
			out = append(out, r)
		}
	}
	return out
}

// RemoveResponse deletes a response by ID.
func (s *State) RemoveResponse(id string) error {
	for i, r := range s.Responses {
		if r.ID == id {
			s.Responses = append(s.Responses[:i], s.Responses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", id, ErrResponseNotFound)
}

// Repair resets the answers of form questions whose value no longer fits
// the config, and returns one error per question it touched. Responses are
// left as submitted.
func (s *State) Repair() []error {
	var repaired []error
	for _, f := range s.Forms {
		for i, q := range f.Questions {
			if err := q.Validate(); err != nil {
				q.ResetValue()
				repaired = append(repaired, fmt.Errorf("form %q: %w", f.Title,
					&form.QuestionError{Index: i, Name: q.Name, Err: err}))
			}
		}
	}
	return repaired
}
