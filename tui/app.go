// Package tui runs declarative Applications in the terminal
// using Bubble Tea and renders their layout trees with lipgloss.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/domonda/tableview/layout"
)

// Command is an effect returned to the host.
// A nil Command means no effect.
type Command = tea.Cmd

// Application is a declarative program with state
// that reacts to messages of type M.
//
// The host calls Title and View after every Update
// and renders the returned layout tree.
// All calls happen on a single goroutine.
type Application[M any] interface {
	Title() string
	Update(msg M) Command
	View() layout.Element
}

// Option configures Run.
type Option func(*config)

type config struct {
	renderer     Renderer
	width        int
	teaOptions   []tea.ProgramOption
	useAltScreen bool
}

// WithAltScreen runs the program in the alternate screen buffer.
func WithAltScreen() Option {
	return func(c *config) { c.useAltScreen = true }
}

// WithOutput sets the output of the program instead of os.Stdout.
func WithOutput(output io.Writer) Option {
	return func(c *config) { c.teaOptions = append(c.teaOptions, tea.WithOutput(output)) }
}

// WithInput sets the input of the program instead of os.Stdin.
// Pass nil to disable input.
func WithInput(input io.Reader) Option {
	return func(c *config) { c.teaOptions = append(c.teaOptions, tea.WithInput(input)) }
}

// WithWidth sets the render width used until
// the terminal reports its size.
func WithWidth(width int) Option {
	return func(c *config) { c.width = width }
}

// WithRenderer sets the Renderer for layout trees.
func WithRenderer(renderer Renderer) Option {
	return func(c *config) { c.renderer = renderer }
}

// Run creates the Application with newApp, runs it until the user quits
// with ctrl+c, esc, or q, and returns any error of the program.
// The Command returned by newApp is executed first.
// If ctx is canceled, then the program is stopped and ctx.Err() returned.
func Run[M any](ctx context.Context, newApp func() (Application[M], Command), options ...Option) error {
	var c config
	for _, option := range options {
		option(&c)
	}
	app, initCmd := newApp()
	m := NewModel(app, initCmd, c.renderer, c.width)

	teaOptions := append([]tea.ProgramOption{tea.WithContext(ctx)}, c.teaOptions...)
	if c.useAltScreen {
		teaOptions = append(teaOptions, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(m, teaOptions...).Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return ctx.Err()
	}
	return err
}

// Model adapts an Application to the tea.Model interface.
type Model[M any] struct {
	app      Application[M]
	initCmd  Command
	renderer Renderer
	width    int
}

var _ tea.Model = new(Model[struct{}])

// NewModel returns a Model for app that executes initCmd on Init
// and renders for width until a tea.WindowSizeMsg is received.
func NewModel[M any](app Application[M], initCmd Command, renderer Renderer, width int) *Model[M] {
	return &Model[M]{
		app:      app,
		initCmd:  initCmd,
		renderer: renderer,
		width:    width,
	}
}

// Width returns the current render width.
func (m *Model[M]) Width() int { return m.width }

// Init implements tea.Model.
func (m *Model[M]) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(m.app.Title()), m.initCmd)
}

// Update implements tea.Model.
// Messages of type M are passed to the Application,
// all other messages except for quit keys and
// window size changes are ignored.
func (m *Model[M]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case M:
		cmd := m.app.Update(msg)
		return m, tea.Batch(tea.SetWindowTitle(m.app.Title()), cmd)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model[M]) View() string {
	return m.renderer.Render(m.app.View(), m.width) + "\n"
}
