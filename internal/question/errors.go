package question

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoSuchSide is returned when a config has no label list on the
	// requested side, e.g. asking a Dropdown for its rows.
	ErrNoSuchSide = errors.New("config has no such label list")
)

// IndexError reports a removal or edit at an index that does not exist.
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// InvariantError signals that a question's config and value disagree. It is
// raised with panic: reaching it means a bug, not bad input.
type InvariantError struct {
	Config Kind
	Value  Kind
	Detail string
}

func (e *InvariantError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("question invariant violated (%s): %s", e.Config, e.Detail)
	}
	return fmt.Sprintf("question invariant violated: config is %s, value is %s", e.Config, e.Value)
}

// ShapeError describes a value whose shape does not fit its config.
type ShapeError struct {
	Kind   Kind
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s value: %s", e.Kind, e.Reason)
}
