package question

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOptionLabels(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		side Side
		want []string
	}{
		{"multiple choice", MultipleChoice, Options, []string{"Option 1", "Option 2"}},
		{"checkboxes", Checkboxes, Options, []string{"Option 1", "Option 2"}},
		{"dropdown", Dropdown, Options, []string{"Option 1", "Option 2"}},
		{"grid rows", MultipleChoiceGrid, Rows, []string{"Row 1", "Row 2"}},
		{"grid columns", CheckboxGrid, Columns, []string{"Column 1", "Column 2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := DefaultsFor(tt.kind)
			require.NoError(t, AddOption(c, tt.side))
			got, err := Labels(c, tt.side)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddOptionCountsCurrentLength(t *testing.T) {
	c := &DropdownConfig{Options: []string{"Red", "Green", "Blue"}}
	require.NoError(t, RemoveOption(c, Options, 0))
	require.NoError(t, AddOption(c, Options))
	assert.Equal(t, []string{"Green", "Blue", "Option 3"}, c.Options)
}

func TestRemoveOptionOutOfRange(t *testing.T) {
	c := &MultipleChoiceConfig{Options: []string{"a", "b"}}

	for _, idx := range []int{-1, 2, 10} {
		err := RemoveOption(c, Options, idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))

		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, idx, ie.Index)
		assert.Equal(t, 2, ie.Len)
	}
	assert.Equal(t, []string{"a", "b"}, c.Options)
}

func TestSetOption(t *testing.T) {
	c := &MultipleChoiceGridConfig{Rows: []string{"Row 1"}, Columns: []string{"Column 1"}}
	require.NoError(t, SetOption(c, Columns, 0, "Yes"))
	assert.Equal(t, []string{"Yes"}, c.Columns)
	assert.Equal(t, []string{"Row 1"}, c.Rows)

	assert.ErrorIs(t, SetOption(c, Rows, 3, "x"), ErrIndexOutOfRange)
}

func TestNoSuchSide(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		side Side
	}{
		{"short answer options", &ShortAnswerConfig{}, Options},
		{"dropdown rows", &DropdownConfig{}, Rows},
		{"grid options", &CheckboxGridConfig{}, Options},
		{"scale columns", &LinearScaleConfig{}, Columns},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, AddOption(tt.cfg, tt.side), ErrNoSuchSide)
			assert.ErrorIs(t, RemoveOption(tt.cfg, tt.side, 0), ErrNoSuchSide)
		})
	}
}

func TestSides(t *testing.T) {
	assert.Equal(t, []Side{Options}, Sides(&CheckboxesConfig{}))
	assert.Equal(t, []Side{Rows, Columns}, Sides(&MultipleChoiceGridConfig{}))
	assert.Nil(t, Sides(&TimeConfig{}))
}
