package state

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/eform/internal/form"
	"github.com/abhisek/eform/internal/question"
)

// FormatVersion is the version written into every saved blob. Blobs with the
// same major version load; anything else is rejected.
const FormatVersion = "v1.0.0"

// ErrIncompatibleVersion is returned by Load for blobs written by an
// incompatible release.
var ErrIncompatibleVersion = errors.New("incompatible save format")

// ErrInvalidConfig is returned by Load when a saved question config is
// inconsistent, such as a linear scale whose start is not below its end.
var ErrInvalidConfig = errors.New("invalid question config")

//go:embed state.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded state schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			schemaErr = fmt.Errorf("parse state schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://eform/state.json"
		if err := c.AddResource(url, doc); err != nil {
			schemaErr = fmt.Errorf("add state schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(url)
	})
	return schema, schemaErr
}

// Save serializes s to a JSON blob.
func Save(s *State) ([]byte, error) {
	out := State{
		Version:   FormatVersion,
		Forms:     s.Forms,
		Responses: s.Responses,
	}
	if out.Forms == nil {
		out.Forms = []*form.Form{}
	}
	if out.Responses == nil {
		out.Responses = []*Response{}
	}
	forms := make([]*form.Form, len(out.Forms))
	for i, f := range out.Forms {
		forms[i] = f
		if f.Questions == nil {
			cp := *f
			cp.Questions = []*question.Question{}
			forms[i] = &cp
		}
	}
	out.Forms = forms
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return b, nil
}

// Load restores a state from a blob produced by Save. The blob is checked
// against the state schema and format version before decoding, and form
// answers that no longer fit their config are reset (see Repair). A question
// whose config is itself invalid cannot be repaired and fails the load.
func Load(blob []byte) (*State, error) {
	var doc any
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("state schema validation failed: %w", err)
	}

	var s State
	if err := json.Unmarshal(blob, &s); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if !semver.IsValid(s.Version) || semver.Major(s.Version) != semver.Major(FormatVersion) {
		return nil, fmt.Errorf("version %q (want %s): %w", s.Version, semver.Major(FormatVersion), ErrIncompatibleVersion)
	}
	s.Version = FormatVersion
	if s.Responses == nil {
		s.Responses = []*Response{}
	}
	s.Repair()
	for _, f := range s.Forms {
		for i, q := range f.Questions {
			if err := q.Validate(); err != nil {
				return nil, fmt.Errorf("form %q: %w: %w", f.Title, ErrInvalidConfig,
					&form.QuestionError{Index: i, Name: q.Name, Err: err})
			}
		}
	}
	return &s, nil
}

// LoadOrDefault is Load for application startup: missing data yields the
// default state, and unreadable data yields the default state together with
// the error that caused the fallback.
func LoadOrDefault(blob []byte) (*State, error) {
	if len(blob) == 0 {
		return Default(), nil
	}
	s, err := Load(blob)
	if err != nil {
		return Default(), err
	}
	return s, nil
}
