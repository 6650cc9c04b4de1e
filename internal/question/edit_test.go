package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditDeleteRequested(t *testing.T) {
	q := New(DefaultName)

	s := newScripted()
	assert.False(t, q.Edit(s))

	s = newScripted()
	s.clicks["Delete"] = 0
	assert.True(t, q.Edit(s))
}

func TestEditRenamesQuestion(t *testing.T) {
	q := New(DefaultName)
	s := newScripted()
	s.texts[DefaultName] = "What is your name?"
	q.Edit(s)
	assert.Equal(t, "What is your name?", q.Name)
}

func TestEditSwitchesKind(t *testing.T) {
	q := New(DefaultName)
	s := newScripted()
	s.selects[ShortAnswer.String()] = int(CheckboxGrid)
	q.Edit(s)

	assert.Equal(t, CheckboxGrid, q.Kind())
	assert.Equal(t, CheckboxGrid, q.Value().Kind())
	assert.NoError(t, q.Validate())
}

func TestEditAddsAndRemovesOptions(t *testing.T) {
	q := NewOfKind(DefaultName, Checkboxes)
	cfg := q.Config().(*CheckboxesConfig)

	s := newScripted()
	s.clicks["Add option"] = 0
	q.Edit(s)
	assert.Equal(t, []string{"Option 1", "Option 2"}, cfg.Options)

	s = newScripted()
	s.clicks["✕"] = 0
	q.Edit(s)
	assert.Equal(t, []string{"Option 2"}, cfg.Options)
}

func TestEditGridBothSides(t *testing.T) {
	q := NewOfKind(DefaultName, MultipleChoiceGrid)
	cfg := q.Config().(*MultipleChoiceGridConfig)

	s := newScripted()
	s.clicks["Add row"] = 0
	s.clicks["Add column"] = 0
	q.Edit(s)
	assert.Equal(t, []string{"Row 1", "Row 2"}, cfg.Rows)
	assert.Equal(t, []string{"Column 1", "Column 2"}, cfg.Columns)

	s = newScripted()
	s.clicks["✕"] = 2 // first column: rows come first
	q.Edit(s)
	assert.Equal(t, []string{"Row 1", "Row 2"}, cfg.Rows)
	assert.Equal(t, []string{"Column 2"}, cfg.Columns)
}

func TestEditScaleClampsAndKeepsAnswer(t *testing.T) {
	q := NewOfKind(DefaultName, LinearScale)
	cfg := q.Config().(*LinearScaleConfig)
	q.Value().(*LinearScaleValue).Value = 5

	s := newScripted()
	s.drags[0] = 0
	s.drags[1] = 42
	q.Edit(s)

	assert.Equal(t, 0, cfg.Start)
	assert.Equal(t, 10, cfg.End)
	assert.Equal(t, 5, q.Value().(*LinearScaleValue).Value)
}

func TestPreviewWritesValues(t *testing.T) {
	t.Run("checkboxes", func(t *testing.T) {
		q := NewOfKind("Q", Checkboxes)
		_ = AddOption(q.Config(), Options)
		q.ResetValue()

		s := newScripted()
		s.toggles["Option 2"] = 0
		q.Preview(s)
		assert.Equal(t, []bool{false, true}, q.Value().(*CheckboxesValue).Choices)
	})

	t.Run("dropdown", func(t *testing.T) {
		q := NewOfKind("Q", Dropdown)
		s := newScripted()
		s.selects["Choose"] = 0
		q.Preview(s)
		assert.Equal(t, "Option 1", q.Value().(*DropdownValue).Choice)
	})

	t.Run("linear scale", func(t *testing.T) {
		q := NewOfKind("Q", LinearScale)
		s := newScripted()
		s.clicks["4"] = 0
		q.Preview(s)
		assert.Equal(t, 4, q.Value().(*LinearScaleValue).Value)
	})

	t.Run("multiple choice grid", func(t *testing.T) {
		q := NewOfKind("Q", MultipleChoiceGrid)
		_ = AddOption(q.Config(), Columns)
		q.ResetValue()

		s := newScripted()
		s.clicks[""] = 1
		q.Preview(s)
		assert.Equal(t, []string{"Column 2"}, q.Value().(*MultipleChoiceGridValue).Choices)
		assert.Equal(t, 1, s.grids)
		assert.Equal(t, 2, s.rows)
	})

	t.Run("checkbox grid", func(t *testing.T) {
		q := NewOfKind("Q", CheckboxGrid)
		_ = AddOption(q.Config(), Rows)
		q.ResetValue()

		s := newScripted()
		s.toggles[""] = 1
		q.Preview(s)
		assert.Equal(t, [][]bool{{false}, {true}}, q.Value().(*CheckboxGridValue).Choices)
	})

	t.Run("time", func(t *testing.T) {
		q := NewOfKind("Q", Time)
		s := newScripted()
		s.drags[0] = 13
		s.drags[1] = 59
		s.selects["AM"] = 1
		q.Preview(s)
		require.NoError(t, q.Validate())
		assert.Equal(t, TimeValue{Hour: 12, Minute: 59, Period: PM}, *q.Value().(*TimeValue))
	})

	t.Run("date", func(t *testing.T) {
		q := NewOfKind("Q", Date)
		s := newScripted()
		s.drags[0] = 2
		s.drags[1] = 30
		s.drags[2] = 2024
		q.Preview(s)
		assert.Equal(t, DateValue{Year: 2024, Month: 2, Day: 30}, *q.Value().(*DateValue))
	})
}
