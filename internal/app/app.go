package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eform/internal/router"
	"github.com/abhisek/eform/internal/screen"
	"github.com/abhisek/eform/internal/screens/forms"
	"github.com/abhisek/eform/internal/state"
	"github.com/abhisek/eform/internal/store"
	"github.com/abhisek/eform/internal/ui/layout"
)

// Options configures Run.
type Options struct {
	Repo   store.SnapshotRepo
	Key    string // defaults to store.DefaultKey
	Keep   int    // snapshots retained after saving; 0 keeps all
	Logger *log.Logger
}

func (o Options) key() string {
	if o.Key == "" {
		return store.DefaultKey
	}
	return o.Key
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return o.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	st     *state.State
	width  int
	height int
}

// newAppModel creates a new AppModel with the forms screen.
func newAppModel(st *state.State) AppModel {
	return AppModel{
		router: router.New(forms.New(st)),
		st:     st,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if b, ok := m.router.Active().(screen.BackHandler); ok && b.Back() {
				return m, nil
			}
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, formCount(len(m.st.Forms)), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func formCount(n int) string {
	if n == 1 {
		return "1 form"
	}
	return fmt.Sprintf("%d forms", n)
}

// Run loads the state, runs the Bubble Tea program and saves the state when
// the program exits.
func Run(ctx context.Context, opts Options) error {
	st := Load(ctx, opts)

	p := tea.NewProgram(newAppModel(st))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
	}

	if serr := Save(ctx, opts, st); serr != nil {
		opts.logger().Printf("save: %v", serr)
		fmt.Fprintln(os.Stderr, "Could not save forms:", serr)
		if err == nil {
			err = serr
		}
	}
	return err
}
