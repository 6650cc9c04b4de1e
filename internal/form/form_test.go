package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eform/internal/question"
)

func names(f *Form) []string {
	out := make([]string, len(f.Questions))
	for i, q := range f.Questions {
		out[i] = q.Name
	}
	return out
}

func TestNew(t *testing.T) {
	f := New(DefaultTitle)
	assert.Equal(t, "Untitled form", f.Title)
	assert.NotEmpty(t, f.ID)
	assert.Empty(t, f.Questions)
	assert.NotEqual(t, f.ID, New(DefaultTitle).ID)
}

func TestDemoHasEveryKind(t *testing.T) {
	f := Demo()
	require.Len(t, f.Questions, len(question.AllKinds()))
	for i, k := range question.AllKinds() {
		assert.Equal(t, k, f.Questions[i].Kind())
		assert.Equal(t, question.DefaultName, f.Questions[i].Name)
	}
	assert.NoError(t, f.Validate())
}

func TestAddQuestion(t *testing.T) {
	f := New(DefaultTitle)
	q := f.AddQuestion()
	require.Len(t, f.Questions, 1)
	assert.Same(t, q, f.Questions[0])
	assert.Equal(t, question.ShortAnswer, q.Kind())
	assert.Equal(t, "Question", q.Name)
}

func TestRemoveQuestion(t *testing.T) {
	f := New(DefaultTitle)
	for _, n := range []string{"a", "b", "c"} {
		f.AddQuestion().Name = n
	}

	require.NoError(t, f.RemoveQuestion(1))
	assert.Equal(t, []string{"a", "c"}, names(f))

	err := f.RemoveQuestion(2)
	assert.True(t, errors.Is(err, question.ErrIndexOutOfRange))
	assert.Equal(t, []string{"a", "c"}, names(f))

	assert.ErrorIs(t, f.RemoveQuestion(-1), question.ErrIndexOutOfRange)
}

func TestMoveQuestion(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"down", 0, 2, []string{"b", "c", "a", "d"}},
		{"up", 3, 1, []string{"a", "d", "b", "c"}},
		{"to end", 1, 3, []string{"a", "c", "d", "b"}},
		{"same", 2, 2, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(DefaultTitle)
			for _, n := range []string{"a", "b", "c", "d"} {
				f.AddQuestion().Name = n
			}
			require.NoError(t, f.MoveQuestion(tt.from, tt.to))
			assert.Equal(t, tt.want, names(f))
		})
	}

	f := New(DefaultTitle)
	f.AddQuestion()
	assert.ErrorIs(t, f.MoveQuestion(0, 1), question.ErrIndexOutOfRange)
}

func TestDuplicateQuestion(t *testing.T) {
	f := New(DefaultTitle)
	f.AddQuestion().Name = "a"
	f.AddQuestion().Name = "b"

	require.NoError(t, f.DuplicateQuestion(0))
	assert.Equal(t, []string{"a", "a", "b"}, names(f))
	assert.NotSame(t, f.Questions[0], f.Questions[1])
}

func TestDuplicate(t *testing.T) {
	f := Demo()
	f.Description = "Tell us"
	cb := f.Questions[question.Checkboxes].Value().(*question.CheckboxesValue)
	cb.Choices[0] = true

	cp := f.Duplicate()
	assert.NotEqual(t, f.ID, cp.ID)
	assert.Equal(t, "Untitled form Copy", cp.Title)
	assert.Equal(t, "Tell us", cp.Description)
	require.Len(t, cp.Questions, len(f.Questions))

	// Deep copy: editing the copy leaves the original alone.
	cp.Questions[question.Checkboxes].Value().(*question.CheckboxesValue).Choices[0] = false
	assert.True(t, cb.Choices[0])

	empty := New("")
	assert.Equal(t, "", empty.Duplicate().Title)
}

func TestResetAllPreviewValues(t *testing.T) {
	f := Demo()
	f.Questions[question.ShortAnswer].Value().(*question.ShortAnswerValue).Text = "hi"
	mc := f.Questions[question.MultipleChoice]
	require.NoError(t, question.AddOption(mc.Config(), question.Options))
	mc.Value().(*question.MultipleChoiceValue).Choice = "Option 2"
	cb := f.Questions[question.Checkboxes]
	require.NoError(t, question.AddOption(cb.Config(), question.Options))

	assert.Error(t, f.Validate())

	f.ResetAllPreviewValues()
	assert.NoError(t, f.Validate())
	for _, q := range f.Questions {
		switch q.Kind() {
		case question.ShortAnswer, question.Paragraph, question.MultipleChoice,
			question.Checkboxes, question.Dropdown, question.MultipleChoiceGrid, question.CheckboxGrid:
			assert.False(t, q.Answered(), q.Kind().String())
		}
	}
	assert.Len(t, cb.Value().(*question.CheckboxesValue).Choices, 2)
}

func TestValidateNamesQuestion(t *testing.T) {
	f := New(DefaultTitle)
	q := f.AddQuestion()
	q.SwitchKind(question.Checkboxes)
	q.Name = "Pets"
	require.NoError(t, question.AddOption(q.Config(), question.Options))

	var qe *QuestionError
	require.True(t, errors.As(f.Validate(), &qe))
	assert.Equal(t, 0, qe.Index)
	assert.Equal(t, "Pets", qe.Name)
}

func TestDisplayTitle(t *testing.T) {
	f := New("Survey")
	assert.Equal(t, "Survey", f.DisplayTitle())

	f.Title = "  "
	assert.Equal(t, DefaultTitle, f.DisplayTitle())
}
