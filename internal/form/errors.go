package form

import "fmt"

// QuestionError ties an error to one question of a form.
type QuestionError struct {
	Index int
	Name  string
	Err   error
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("question %d (%q): %v", e.Index+1, e.Name, e.Err)
}

func (e *QuestionError) Unwrap() error { return e.Err }
