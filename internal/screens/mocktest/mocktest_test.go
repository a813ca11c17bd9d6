package mocktest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajannraj/rtomock/internal/bank"
	"github.com/rajannraj/rtomock/internal/certificate"
	"github.com/rajannraj/rtomock/internal/exam"
	"github.com/rajannraj/rtomock/internal/prefs"
	"github.com/rajannraj/rtomock/internal/router"
	"github.com/rajannraj/rtomock/internal/screen"
	"github.com/rajannraj/rtomock/internal/ui/uictx"
)

type stubSampler struct {
	pool []bank.Question
}

func (s stubSampler) Sample(_ bank.RandomSource, _ bank.Difficulty, n int) ([]bank.Question, error) {
	n = min(n, len(s.pool))
	out := make([]bank.Question, n)
	copy(out, s.pool[:n])
	return out, nil
}

func (s stubSampler) PoolSize(bank.Difficulty) int { return len(s.pool) }

func pool(n int) []bank.Question {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			Prompt:       "What does sign " + string(rune('A'+i)) + " mean?",
			Options:      []string{"Stop", "Go", "Turn", "Park"},
			CorrectIndex: i % 4,
			Stimulus:     bank.TextOnly{},
		}
	}
	qs[0].Stimulus = bank.RoadSign{Asset: "/symbols/mandatory/1.png", Caption: "Red octagon"}
	return qs
}

func newScreen(t *testing.T, cfg exam.Config, outDir string) *MockTestScreen {
	t.Helper()
	m := exam.NewMachine(stubSampler{pool: pool(5)}, cfg)
	ctx := uictx.New(prefs.Defaults(), nil, nil)
	return New(ctx, m, Options{
		Branding:  certificate.DefaultBranding(),
		OutputDir: outDir,
		Now:       func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) },
	})
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func send(t *testing.T, s *MockTestScreen, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := s.Update(msg)
	require.Same(t, s, next.(*MockTestScreen))
	return cmd
}

func typeText(t *testing.T, s *MockTestScreen, text string) {
	t.Helper()
	for _, r := range text {
		send(t, s, key(r))
	}
}

// start walks from level selection into a running test.
func start(t *testing.T, s *MockTestScreen, name string) tea.Cmd {
	t.Helper()
	send(t, s, key('1'))
	require.Equal(t, exam.PhaseEnteringDetails, s.machine.Phase())
	typeText(t, s, name)
	cmd := send(t, s, special(tea.KeyEnter))
	require.Equal(t, exam.PhaseInProgress, s.machine.Phase())
	return cmd
}

func answerAll(t *testing.T, s *MockTestScreen, correct bool) {
	t.Helper()
	for s.machine.Phase() == exam.PhaseInProgress {
		q, ok := s.machine.Current()
		require.True(t, ok)
		opt := q.CorrectIndex
		if !correct {
			opt = (opt + 1) % len(q.Options)
		}
		send(t, s, key(rune('1'+opt)))
		send(t, s, special(tea.KeyEnter))
	}
}

func cfg(d time.Duration) exam.Config {
	return exam.Config{QuestionCount: 5, Duration: d, Policy: exam.DefaultPolicy()}
}

func TestFullPassFlowWithCertificate(t *testing.T) {
	dir := t.TempDir()
	s := newScreen(t, cfg(time.Minute), dir)

	assert.Contains(t, s.View(100, 40), "Easy")

	tick := start(t, s, "Asha Verma")
	assert.NotNil(t, tick, "starting a test should schedule the first tick")
	assert.Contains(t, s.View(100, 40), "Red octagon")

	answerAll(t, s, true)
	require.Equal(t, exam.PhaseComplete, s.machine.Phase())
	assert.Equal(t, exam.ReasonSubmitted, s.machine.Reason())
	assert.False(t, s.machine.TimerArmed())

	view := s.View(100, 40)
	assert.Contains(t, view, "Test Passed!")
	assert.Contains(t, view, "5 / 5")

	cmd := send(t, s, key('d'))
	require.NotNil(t, cmd)
	assert.Nil(t, send(t, s, key('d')), "a second download while exporting is ignored")
	send(t, s, cmd())

	require.NoError(t, s.exportErr)
	assert.Equal(t, dir, filepath.Dir(s.exportPath))
	_, err := os.Stat(s.exportPath)
	require.NoError(t, err)
	assert.Contains(t, s.View(200, 40), "Certificate saved to")
}

func TestFailedTestHasNoCertificate(t *testing.T) {
	s := newScreen(t, cfg(time.Minute), t.TempDir())
	start(t, s, "Ravi")
	answerAll(t, s, false)

	r, ok := s.machine.Result()
	require.True(t, ok)
	assert.False(t, r.Passed)
	assert.Nil(t, send(t, s, key('d')))
	assert.NotContains(t, s.View(100, 40), "Your Certificate")
}

func TestExportFailureIsShown(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := newScreen(t, cfg(time.Minute), blocker)
	start(t, s, "Asha")
	answerAll(t, s, true)

	cmd := send(t, s, key('d'))
	require.NotNil(t, cmd)
	send(t, s, cmd())

	assert.Error(t, s.exportErr)
	assert.Empty(t, s.exportPath)
	assert.Contains(t, s.View(200, 40), "Could not save certificate")
}

func TestBlankNameIsRejected(t *testing.T) {
	s := newScreen(t, cfg(time.Minute), t.TempDir())
	send(t, s, key('2'))
	require.Equal(t, exam.PhaseEnteringDetails, s.machine.Phase())

	typeText(t, s, "   ")
	assert.Nil(t, send(t, s, special(tea.KeyEnter)))
	assert.Equal(t, exam.PhaseEnteringDetails, s.machine.Phase())
	assert.True(t, s.input.Rejected())
}

func TestTimeoutCompletesTest(t *testing.T) {
	s := newScreen(t, cfg(3*time.Second), t.TempDir())
	start(t, s, "Asha")
	send(t, s, key('1'))

	tok := s.machine.TimerToken()
	text, _ := s.Status()
	assert.Contains(t, text, "0:03")

	// A tick from an older countdown changes nothing.
	assert.Nil(t, send(t, s, timerTickMsg{token: tok - 1}))
	assert.Equal(t, 3*time.Second, s.machine.Remaining())

	assert.NotNil(t, send(t, s, timerTickMsg{token: tok}))
	assert.NotNil(t, send(t, s, timerTickMsg{token: tok}))
	assert.Nil(t, send(t, s, timerTickMsg{token: tok}))

	require.Equal(t, exam.PhaseComplete, s.machine.Phase())
	assert.Equal(t, exam.ReasonTimedOut, s.machine.Reason())
	assert.Contains(t, s.View(100, 40), "Time is up!")

	r, _ := s.machine.Result()
	assert.Equal(t, 5, r.Total, "unanswered questions still count toward the total")
	assert.Equal(t, 1, r.Score)

	text, _ = s.Status()
	assert.Empty(t, text)
}

func TestNavigationKeepsAnswers(t *testing.T) {
	s := newScreen(t, cfg(time.Minute), t.TempDir())
	start(t, s, "Asha")

	send(t, s, key('c'))
	send(t, s, special(tea.KeyRight))
	require.Equal(t, 1, s.machine.Position())

	// Unanswered: Next is a no-op.
	send(t, s, special(tea.KeyRight))
	assert.Equal(t, 1, s.machine.Position())

	send(t, s, special(tea.KeyDown))
	got, ok := s.machine.Answer(1)
	require.True(t, ok)
	assert.Equal(t, 0, got)
	send(t, s, special(tea.KeyDown))
	got, _ = s.machine.Answer(1)
	assert.Equal(t, 1, got)

	send(t, s, special(tea.KeyLeft))
	assert.Equal(t, 0, s.machine.Position())
	got, _ = s.machine.Answer(0)
	assert.Equal(t, 2, got)
}

func TestEscPerPhase(t *testing.T) {
	s := newScreen(t, cfg(time.Minute), t.TempDir())
	var _ screen.Capturing = s
	assert.True(t, s.CapturesKeys())

	cmd := send(t, s, special(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())

	send(t, s, key('1'))
	send(t, s, special(tea.KeyEscape))
	assert.Equal(t, exam.PhaseSelectingDifficulty, s.machine.Phase(), "esc leaves the details form")

	start(t, s, "Asha")
	assert.Nil(t, send(t, s, special(tea.KeyEscape)))
	assert.Equal(t, exam.PhaseInProgress, s.machine.Phase(), "esc is ignored during a test")

	answerAll(t, s, true)
	send(t, s, key('r'))
	require.Equal(t, exam.PhaseReviewing, s.machine.Phase())
	send(t, s, special(tea.KeyEscape))
	assert.Equal(t, exam.PhaseComplete, s.machine.Phase())

	cmd = send(t, s, special(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestReviewAndRestart(t *testing.T) {
	s := newScreen(t, cfg(time.Minute), t.TempDir())
	start(t, s, "Asha")
	answerAll(t, s, true)

	send(t, s, key('r'))
	view := s.View(100, 60)
	assert.Contains(t, view, "Review Answers")
	assert.Contains(t, view, "1. What does sign A mean?")
	assert.Contains(t, view, "✓")

	for range 100 {
		send(t, s, special(tea.KeyDown))
	}
	s.View(100, 30)
	assert.Less(t, s.reviewOffset, 100, "scrolling is clamped to the content")

	send(t, s, key('n'))
	assert.Equal(t, exam.PhaseSelectingDifficulty, s.machine.Phase())
	assert.Empty(t, s.machine.SessionID())
	assert.Zero(t, s.reviewOffset)
}

func TestStaleExportAfterRestartIsIgnored(t *testing.T) {
	s := newScreen(t, cfg(time.Minute), t.TempDir())
	start(t, s, "Asha")
	answerAll(t, s, true)

	cmd := send(t, s, key('d'))
	require.NotNil(t, cmd)
	msg := cmd()
	send(t, s, key('n'))
	send(t, s, msg)

	assert.Empty(t, s.exportPath)
}

func TestHindiLabels(t *testing.T) {
	m := exam.NewMachine(stubSampler{pool: pool(5)}, cfg(time.Minute))
	ctx := uictx.New(prefs.Preferences{Theme: prefs.ThemeDark, Language: prefs.Hindi}, nil, nil)
	s := New(ctx, m, Options{})

	view := s.View(100, 40)
	assert.True(t, strings.Contains(view, "आसान"), "expected Hindi level names")
	assert.Equal(t, "अपना स्तर चुनें", s.Title())
}

func TestKeyHintsFollowPhase(t *testing.T) {
	s := newScreen(t, cfg(time.Minute), t.TempDir())
	assert.Equal(t, "↑↓", s.KeyHints()[0].Key)

	start(t, s, "Asha")
	assert.Equal(t, "1-4", s.KeyHints()[0].Key)

	answerAll(t, s, true)
	assert.Equal(t, "D", s.KeyHints()[0].Key)
}
