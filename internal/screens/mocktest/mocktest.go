// Package mocktest is the screen that runs one mock test at a time: level
// selection, student details, the timed questions, the result with its
// certificate, and the answer review.
package mocktest

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/rajannraj/rtomock/internal/bank"
	"github.com/rajannraj/rtomock/internal/certificate"
	"github.com/rajannraj/rtomock/internal/countdown"
	"github.com/rajannraj/rtomock/internal/exam"
	"github.com/rajannraj/rtomock/internal/router"
	"github.com/rajannraj/rtomock/internal/screen"
	"github.com/rajannraj/rtomock/internal/ui/components"
	"github.com/rajannraj/rtomock/internal/ui/layout"
	"github.com/rajannraj/rtomock/internal/ui/uictx"
)

// lowTime is when the header timer turns red.
const lowTime = time.Minute

// Options configures certificate export.
type Options struct {
	Branding  certificate.Branding
	OutputDir string
	Now       func() time.Time
	Logger    *zap.Logger
}

// MockTestScreen drives an exam.Machine.
type MockTestScreen struct {
	ctx     *uictx.Context
	machine *exam.Machine
	opts    Options
	log     *zap.Logger

	levels   components.Menu
	levelErr error
	input    components.TextInput

	exporting  bool
	exportPath string
	exportErr  error

	reviewOffset int
}

var (
	_ screen.Screen          = (*MockTestScreen)(nil)
	_ screen.KeyHintProvider = (*MockTestScreen)(nil)
	_ screen.StatusProvider  = (*MockTestScreen)(nil)
	_ screen.Capturing       = (*MockTestScreen)(nil)
)

// New creates a MockTestScreen around m, which should be in the difficulty
// selection phase.
func New(ctx *uictx.Context, m *exam.Machine, opts Options) *MockTestScreen {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &MockTestScreen{
		ctx:     ctx,
		machine: m,
		opts:    opts,
		log:     opts.Logger,
	}

	items := make([]components.MenuItem, 0, len(bank.AllDifficulties()))
	for _, d := range bank.AllDifficulties() {
		items = append(items, components.MenuItem{
			Action: func() tea.Cmd { return s.chooseDifficulty(d) },
		})
	}
	s.levels = components.NewMenu(items)
	s.resetInput()
	return s
}

func (s *MockTestScreen) resetInput() {
	s.input = components.NewTextInput(s.ctx.T("details.name"), exam.MaxNameLength)
}

func (s *MockTestScreen) Init() tea.Cmd {
	return nil
}

func (s *MockTestScreen) Title() string {
	switch s.machine.Phase() {
	case exam.PhaseEnteringDetails:
		return s.ctx.T("details.title")
	case exam.PhaseInProgress:
		return s.ctx.T("difficulty." + string(s.machine.Difficulty()))
	case exam.PhaseComplete:
		return s.ctx.T("result.title")
	case exam.PhaseReviewing:
		return s.ctx.T("review.title")
	default:
		return s.ctx.T("difficulty.title")
	}
}

// CapturesKeys is always true: Esc means something different in every phase
// and is never a plain "back" while a test is running.
func (s *MockTestScreen) CapturesKeys() bool {
	return true
}

// Status shows the remaining time while a test is running.
func (s *MockTestScreen) Status() (string, lipgloss.Style) {
	if s.machine.Phase() != exam.PhaseInProgress {
		return "", lipgloss.NewStyle()
	}
	p := s.ctx.Palette()
	remaining := s.machine.Remaining()
	style := lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	if remaining < lowTime {
		style = style.Foreground(p.Error)
	}
	return s.ctx.T("question.time", countdown.Format(int(remaining/time.Second))), style
}

func (s *MockTestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.machine.Tick(msg.token) {
			return s, tickCmd(msg.token)
		}
		return s, nil

	case exportDoneMsg:
		return s.handleExportDone(msg)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.machine.Phase() == exam.PhaseEnteringDetails {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *MockTestScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.machine.Phase() {
	case exam.PhaseSelectingDifficulty:
		return s.handleLevelKey(msg)
	case exam.PhaseEnteringDetails:
		return s.handleDetailsKey(msg)
	case exam.PhaseInProgress:
		return s.handleQuestionKey(msg)
	case exam.PhaseComplete:
		return s.handleResultKey(msg)
	case exam.PhaseReviewing:
		return s.handleReviewKey(msg)
	}
	return s, nil
}

func (s *MockTestScreen) handleLevelKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		return s, router.Pop()
	}
	var cmd tea.Cmd
	s.levels, cmd = s.levels.Update(msg)
	return s, cmd
}

func (s *MockTestScreen) chooseDifficulty(d bank.Difficulty) tea.Cmd {
	if err := s.machine.ChooseDifficulty(d); err != nil {
		s.levelErr = err
		s.log.Error("failed to start test", zap.String("difficulty", string(d)), zap.Error(err))
		return nil
	}
	s.levelErr = nil
	s.resetInput()
	return s.input.Init()
}

func (s *MockTestScreen) handleDetailsKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.restart()
		return s, nil
	case "enter":
		if !s.machine.SubmitName(s.input.Value()) {
			s.input.Reject()
			return s, nil
		}
		s.log.Info("test started",
			zap.String("session_id", s.machine.SessionID()),
			zap.String("difficulty", string(s.machine.Difficulty())),
			zap.Int("questions", s.machine.Len()),
		)
		return s, tickCmd(s.machine.TimerToken())
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *MockTestScreen) handleQuestionKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case "enter", "right":
		s.machine.Advance()
	case "left":
		s.machine.Retreat()
	case "up", "k":
		s.moveSelection(-1)
	case "down", "j":
		s.moveSelection(1)
	default:
		if opt, ok := optionForKey(key); ok {
			s.machine.Select(opt)
		}
	}
	return s, nil
}

// optionForKey maps 1-9 and a-i to an option index.
func optionForKey(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	switch c := key[0]; {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'i':
		return int(c - 'a'), true
	}
	return 0, false
}

// moveSelection selects the option above or below the current answer. With
// no answer yet, the first move selects the first option.
func (s *MockTestScreen) moveSelection(delta int) {
	q, ok := s.machine.Current()
	if !ok || len(q.Options) == 0 {
		return
	}
	cur, answered := s.machine.Answer(s.machine.Position())
	next := 0
	if answered {
		next = min(max(cur+delta, 0), len(q.Options)-1)
	}
	s.machine.Select(next)
}

func (s *MockTestScreen) handleResultKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, router.Pop()
	case "r":
		s.reviewOffset = 0
		s.machine.EnterReview()
	case "n":
		s.restart()
	case "d":
		return s, s.exportCertificate()
	}
	return s, nil
}

func (s *MockTestScreen) handleReviewKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		s.machine.ExitReview()
	case "n":
		s.restart()
	case "up", "k":
		s.reviewOffset = max(s.reviewOffset-1, 0)
	case "down", "j":
		s.reviewOffset++
	case "pgup":
		s.reviewOffset = max(s.reviewOffset-reviewPage, 0)
	case "pgdown", "space":
		s.reviewOffset += reviewPage
	case "home", "g":
		s.reviewOffset = 0
	}
	return s, nil
}

func (s *MockTestScreen) restart() {
	s.machine.Restart()
	s.levelErr = nil
	s.exporting = false
	s.exportPath = ""
	s.exportErr = nil
	s.reviewOffset = 0
	s.resetInput()
}

// exportCertificate renders and writes the certificate off the event loop.
func (s *MockTestScreen) exportCertificate() tea.Cmd {
	out, ok := s.machine.Outcome()
	if !ok || !out.Result.Passed || s.exporting {
		return nil
	}
	s.exporting = true
	s.exportErr = nil

	branding, dir, issuedAt := s.opts.Branding, s.opts.OutputDir, s.opts.Now()
	return func() tea.Msg {
		cert, err := certificate.New(out, branding, issuedAt)
		if err != nil {
			return exportDoneMsg{sessionID: out.SessionID, err: err}
		}
		path, err := cert.Export(dir)
		return exportDoneMsg{sessionID: out.SessionID, path: path, err: err}
	}
}

func (s *MockTestScreen) handleExportDone(msg exportDoneMsg) (screen.Screen, tea.Cmd) {
	// A test restarted while the file was being written.
	if msg.sessionID != s.machine.SessionID() {
		return s, nil
	}
	s.exporting = false
	if msg.err != nil {
		s.exportErr = msg.err
		s.log.Error("certificate export failed", zap.String("session_id", msg.sessionID), zap.Error(msg.err))
		return s, nil
	}
	s.exportPath = msg.path
	s.log.Info("certificate exported", zap.String("session_id", msg.sessionID), zap.String("path", msg.path))
	return s, nil
}

func (s *MockTestScreen) KeyHints() []layout.KeyHint {
	t := s.ctx.T
	switch s.machine.Phase() {
	case exam.PhaseEnteringDetails:
		return []layout.KeyHint{
			{Key: "Enter", Description: t("key.start")},
			{Key: "Esc", Description: t("key.back")},
		}
	case exam.PhaseInProgress:
		return []layout.KeyHint{
			{Key: "1-4", Description: t("key.choose")},
			{Key: "→", Description: t("key.next")},
			{Key: "←", Description: t("key.previous")},
		}
	case exam.PhaseComplete:
		hints := []layout.KeyHint{
			{Key: "R", Description: t("key.review")},
			{Key: "N", Description: t("key.new")},
			{Key: "Esc", Description: t("key.back")},
		}
		if r, ok := s.machine.Result(); ok && r.Passed {
			hints = append([]layout.KeyHint{{Key: "D", Description: t("key.download")}}, hints...)
		}
		return hints
	case exam.PhaseReviewing:
		return []layout.KeyHint{
			{Key: "↑↓", Description: t("key.scroll")},
			{Key: "N", Description: t("key.new")},
			{Key: "Esc", Description: t("key.back")},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: t("key.navigate")},
			{Key: "Enter", Description: t("key.select")},
			{Key: "Esc", Description: t("key.back")},
		}
	}
}
