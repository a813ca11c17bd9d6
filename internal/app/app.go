package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/rajannraj/rtomock/internal/bank"
	"github.com/rajannraj/rtomock/internal/certificate"
	"github.com/rajannraj/rtomock/internal/exam"
	"github.com/rajannraj/rtomock/internal/prefs"
	"github.com/rajannraj/rtomock/internal/router"
	"github.com/rajannraj/rtomock/internal/screen"
	"github.com/rajannraj/rtomock/internal/screens/home"
	"github.com/rajannraj/rtomock/internal/screens/mocktest"
	"github.com/rajannraj/rtomock/internal/screens/settings"
	"github.com/rajannraj/rtomock/internal/screens/welcome"
	"github.com/rajannraj/rtomock/internal/ui/layout"
	"github.com/rajannraj/rtomock/internal/ui/uictx"
)

// Options holds the dependencies injected into the app.
type Options struct {
	Context   *uictx.Context
	Bank      exam.Sampler
	Exam      exam.Config
	Branding  certificate.Branding
	OutputDir string
	Logger    *zap.Logger

	// Random is the sampling source. Nil uses the process-wide generator.
	Random bank.RandomSource
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    *uictx.Context
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = uictx.New(prefs.Defaults(), nil, opts.Logger)
	}

	newMockTest := func() screen.Screen {
		machineOpts := []exam.Option{exam.WithLogger(opts.Logger)}
		if opts.Random != nil {
			machineOpts = append(machineOpts, exam.WithRandom(opts.Random))
		}
		m := exam.NewMachine(opts.Bank, opts.Exam, machineOpts...)
		return mocktest.New(ctx, m, mocktest.Options{
			Branding:  opts.Branding,
			OutputDir: opts.OutputDir,
			Now:       time.Now,
			Logger:    opts.Logger,
		})
	}
	newHome := func() screen.Screen {
		return home.New(ctx, opts.Exam, home.Factories{
			MockTest: newMockTest,
			Settings: func() screen.Screen { return settings.New(ctx) },
		})
	}

	return AppModel{
		ctx:    ctx,
		router: router.New(welcome.New(ctx, newHome)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
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
			if c, ok := m.router.Active().(screen.Capturing); ok && c.CapturesKeys() {
				break
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
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	p := m.ctx.Palette()
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(p, m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status, statusStyle := "", lipgloss.NewStyle()
	if sp, ok := active.(screen.StatusProvider); ok {
		status, statusStyle = sp.Status()
	}

	header := layout.RenderHeader(p, m.ctx.T("app.name"), title, status, statusStyle, m.width)
	footer := layout.RenderFooter(p, m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: m.ctx.T("key.back")},
			{Key: "Ctrl+C", Description: m.ctx.T("key.quit")},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: m.ctx.T("key.quit")},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
