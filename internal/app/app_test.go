package app

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eform/internal/screens/editor"
	"github.com/abhisek/eform/internal/state"
	"github.com/abhisek/eform/internal/store"
)

func testOptions(t *testing.T) (Options, *bytes.Buffer) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	st, err := store.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	var logs bytes.Buffer
	return Options{
		Repo:   st.SnapshotRepo(),
		Keep:   2,
		Logger: log.New(&logs, "", 0),
	}, &logs
}

func TestLoadWithoutSnapshotUsesDefault(t *testing.T) {
	opts, logs := testOptions(t)

	st := Load(context.Background(), opts)

	require.Len(t, st.Forms, 1)
	assert.Contains(t, logs.String(), "no saved state")
}

func TestSaveThenLoad(t *testing.T) {
	opts, _ := testOptions(t)
	ctx := context.Background()

	st := state.New()
	st.NewForm().Title = "Saved"
	require.NoError(t, Save(ctx, opts, st))

	got := Load(ctx, opts)
	require.Len(t, got.Forms, 1)
	assert.Equal(t, "Saved", got.Forms[0].Title)
}

func TestSavePrunes(t *testing.T) {
	opts, _ := testOptions(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, Save(ctx, opts, state.New()))
	}
	snaps, err := opts.Repo.List(ctx, store.DefaultKey)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
}

func TestLoadCorruptFallsBackAndLogs(t *testing.T) {
	opts, logs := testOptions(t)
	ctx := context.Background()
	require.NoError(t, opts.Repo.Save(ctx, store.DefaultKey, []byte("{not json")))

	st := Load(ctx, opts)

	require.Len(t, st.Forms, 1, "falls back to the demo form")
	assert.Contains(t, logs.String(), "load state")
}

func TestNilRepo(t *testing.T) {
	st := Load(context.Background(), Options{})
	assert.Len(t, st.Forms, 1)
	assert.NoError(t, Save(context.Background(), Options{}, st))
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(state.Default())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEscUnwindsEditorBeforePopping(t *testing.T) {
	st := state.Default()
	m := newAppModel(st)
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	// Open the demo form, then its first question.
	m.router.Push(editor.New(st, st.Forms[0]))
	ed := m.router.Active().(*editor.EditorScreen)
	for i := 0; i < 2; i++ {
		m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 0, ed.Editing())

	_, cmd := m.Update(esc)
	assert.Nil(t, cmd)
	assert.Equal(t, -1, ed.Editing())
	assert.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(esc)
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestWindowSize(t *testing.T) {
	m := newAppModel(state.Default())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	am := updated.(AppModel)
	assert.Equal(t, 100, am.width)
	assert.Equal(t, 30, am.height)
	assert.True(t, am.View().AltScreen)
}

func TestFormCount(t *testing.T) {
	assert.Equal(t, "1 form", formCount(1))
	assert.Equal(t, "3 forms", formCount(3))
}
