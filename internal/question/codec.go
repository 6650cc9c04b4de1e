package question

import (
	"encoding/json"
	"fmt"
)

// wireQuestion is the persisted form of a Question. The kind tag decides
// which concrete types config and value decode into.
type wireQuestion struct {
	Name   string          `json:"name"`
	Kind   Kind            `json:"kind"`
	Config json.RawMessage `json:"config"`
	Value  json.RawMessage `json:"value"`
}

func (q *Question) MarshalJSON() ([]byte, error) {
	q.ensure()
	c, err := json.Marshal(q.config)
	if err != nil {
		return nil, fmt.Errorf("marshal %s config: %w", q.Kind(), err)
	}
	v, err := json.Marshal(q.value)
	if err != nil {
		return nil, fmt.Errorf("marshal %s value: %w", q.Kind(), err)
	}
	return json.Marshal(wireQuestion{Name: q.Name, Kind: q.Kind(), Config: c, Value: v})
}

// UnmarshalJSON decodes a tagged question. Missing config or value fields
// keep the kind's defaults. The shape of the value is not checked here; use
// Validate.
func (q *Question) UnmarshalJSON(b []byte) error {
	var w wireQuestion
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	c, v := DefaultsFor(w.Kind)
	if len(w.Config) > 0 && string(w.Config) != "null" {
		if err := json.Unmarshal(w.Config, c); err != nil {
			return fmt.Errorf("decode %s config: %w", w.Kind, err)
		}
	}
	if len(w.Value) > 0 && string(w.Value) != "null" {
		if err := json.Unmarshal(w.Value, v); err != nil {
			return fmt.Errorf("decode %s value: %w", w.Kind, err)
		}
	}
	q.Name, q.config, q.value = w.Name, c, v
	return nil
}
