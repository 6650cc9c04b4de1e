package question

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answered returns a question of kind k with a non-default config and a
// filled-in answer.
func answered(k Kind) *Question {
	q := NewOfKind("Q "+k.String(), k)
	for _, side := range Sides(q.Config()) {
		_ = AddOption(q.Config(), side)
	}
	q.ResetValue()

	switch v := q.Value().(type) {
	case *ShortAnswerValue:
		v.Text = "short"
	case *ParagraphValue:
		v.Text = "line one\nline two"
	case *MultipleChoiceValue:
		v.Choice = "Option 2"
	case *CheckboxesValue:
		v.Choices[1] = true
	case *DropdownValue:
		v.Choice = "Option 1"
	case *LinearScaleValue:
		cfg := q.Config().(*LinearScaleConfig)
		cfg.StartLabel, cfg.EndLabel = "Bad", "Good"
		v.Value = 3
	case *MultipleChoiceGridValue:
		v.Choices[1] = "Column 2"
	case *CheckboxGridValue:
		v.Choices[0][1] = true
	case *DateValue:
		*v = DateValue{Year: 1999, Month: 12, Day: 31}
	case *TimeValue:
		*v = TimeValue{Hour: 12, Minute: 30, Period: PM}
	}
	return q
}

func TestJSONRoundTrip(t *testing.T) {
	for _, k := range AllKinds() {
		t.Run(k.String(), func(t *testing.T) {
			q := answered(k)
			require.NoError(t, q.Validate())

			b, err := json.Marshal(q)
			require.NoError(t, err)

			var got Question
			require.NoError(t, json.Unmarshal(b, &got))
			assert.Equal(t, q.Name, got.Name)
			assert.Equal(t, q.Kind(), got.Kind())
			assert.Equal(t, q.Config(), got.Config())
			assert.Equal(t, q.Value(), got.Value())
		})
	}
}

func TestJSONCarriesKindTag(t *testing.T) {
	b, err := json.Marshal(NewOfKind("Q", MultipleChoiceGrid))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "multiple_choice_grid", raw["kind"])
	assert.Equal(t, "Q", raw["name"])
}

func TestJSONMissingPayloadUsesDefaults(t *testing.T) {
	var q Question
	require.NoError(t, json.Unmarshal([]byte(`{"name":"N","kind":"linear_scale"}`), &q))
	assert.Equal(t, &LinearScaleConfig{Start: 1, End: 5}, q.Config())
	assert.Equal(t, &LinearScaleValue{Value: 1}, q.Value())
}

func TestJSONUnknownKind(t *testing.T) {
	var q Question
	assert.Error(t, json.Unmarshal([]byte(`{"name":"N","kind":"file_upload"}`), &q))
}

func TestJSONBadPeriod(t *testing.T) {
	var q Question
	err := json.Unmarshal([]byte(`{"name":"N","kind":"time","value":{"hour":1,"minute":0,"period":"XM"}}`), &q)
	assert.Error(t, err)
}
