// Package exam implements the timed mock-test session: the phase machine,
// scoring and grading, and the post-test review projection.
package exam

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rajannraj/rtomock/internal/bank"
	"github.com/rajannraj/rtomock/internal/countdown"
)

// Session defaults.
const (
	DefaultQuestionCount = 20
	DefaultDuration      = 1200 * time.Second
	MaxNameLength        = 60
)

var (
	// ErrEmptyPool is returned when a difficulty has no questions to draw.
	ErrEmptyPool = errors.New("question pool is empty")

	// ErrWrongPhase is returned when ChooseDifficulty is called outside
	// difficulty selection.
	ErrWrongPhase = errors.New("action not allowed in current phase")
)

// Phase is the lifecycle state of the machine.
type Phase int

const (
	PhaseSelectingDifficulty Phase = iota
	PhaseEnteringDetails
	PhaseInProgress
	PhaseComplete
	PhaseReviewing
)

func (p Phase) String() string {
	switch p {
	case PhaseSelectingDifficulty:
		return "selecting-difficulty"
	case PhaseEnteringDetails:
		return "entering-details"
	case PhaseInProgress:
		return "in-progress"
	case PhaseComplete:
		return "complete"
	case PhaseReviewing:
		return "reviewing"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Reason records how a test reached completion.
type Reason string

const (
	ReasonSubmitted Reason = "submitted"
	ReasonTimedOut  Reason = "timed-out"
)

// Sampler draws questions for a session. *bank.Bank satisfies it.
type Sampler interface {
	Sample(src bank.RandomSource, d bank.Difficulty, n int) ([]bank.Question, error)
	PoolSize(d bank.Difficulty) int
}

// Config tunes a Machine.
type Config struct {
	QuestionCount int
	Duration      time.Duration
	Policy        Policy
}

// DefaultConfig returns 20 questions, 20 minutes and the default policy.
func DefaultConfig() Config {
	return Config{
		QuestionCount: DefaultQuestionCount,
		Duration:      DefaultDuration,
		Policy:        DefaultPolicy(),
	}
}

// Outcome is everything known about a finished test.
type Outcome struct {
	SessionID   string
	StudentName string
	Difficulty  bank.Difficulty
	Result      Result
	Reason      Reason
	StartedAt   time.Time
	CompletedAt time.Time
	TimeTaken   time.Duration
}

// Option configures a Machine.
type Option func(*Machine)

// WithRandom sets the source used for sampling.
func WithRandom(src bank.RandomSource) Option {
	return func(m *Machine) { m.rnd = src }
}

// WithClock overrides the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) { m.log = l }
}

// Machine owns one session at a time and its countdown. It is not safe for
// concurrent use; all calls are expected from the UI event loop.
type Machine struct {
	bank  Sampler
	cfg   Config
	rnd   bank.RandomSource
	now   func() time.Time
	log   *zap.Logger
	timer *countdown.Countdown

	phase       Phase
	difficulty  bank.Difficulty
	questions   []bank.Question
	answers     Answers
	position    int
	name        string
	sessionID   string
	reason      Reason
	startedAt   time.Time
	completedAt time.Time
}

// NewMachine returns a Machine in PhaseSelectingDifficulty. Zero config
// values fall back to the defaults.
func NewMachine(b Sampler, cfg Config, opts ...Option) *Machine {
	def := DefaultConfig()
	if cfg.QuestionCount <= 0 {
		cfg.QuestionCount = def.QuestionCount
	}
	if cfg.Duration <= 0 {
		cfg.Duration = def.Duration
	}
	if cfg.Policy == (Policy{}) {
		cfg.Policy = def.Policy
	}

	m := &Machine{
		bank:    b,
		cfg:     cfg,
		rnd:     bank.DefaultSource(),
		now:     time.Now,
		log:     zap.NewNop(),
		answers: Answers{},
	}
	for _, o := range opts {
		o(m)
	}
	m.timer = countdown.New(func() { m.complete(ReasonTimedOut) })
	return m
}

// ChooseDifficulty draws a fresh question set and moves to details entry.
func (m *Machine) ChooseDifficulty(d bank.Difficulty) error {
	if m.phase != PhaseSelectingDifficulty {
		return fmt.Errorf("%w: choose difficulty in %s", ErrWrongPhase, m.phase)
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %q", bank.ErrUnknownDifficulty, d)
	}

	if size := m.bank.PoolSize(d); size == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyPool, d)
	} else if size < m.cfg.QuestionCount {
		m.log.Warn("question pool smaller than test length, using whole pool",
			zap.String("difficulty", string(d)),
			zap.Int("pool_size", size),
			zap.Int("question_count", m.cfg.QuestionCount),
		)
	}

	qs, err := m.bank.Sample(m.rnd, d, m.cfg.QuestionCount)
	if err != nil {
		return fmt.Errorf("sample questions: %w", err)
	}
	if len(qs) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyPool, d)
	}

	m.difficulty = d
	m.questions = qs
	m.answers = Answers{}
	m.position = 0
	m.setPhase(PhaseEnteringDetails)
	return nil
}

// SubmitName starts the test for a non-blank name. The name is trimmed and
// cut to MaxNameLength runes.
func (m *Machine) SubmitName(name string) bool {
	if m.phase != PhaseEnteringDetails {
		return false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}

	m.name = name
	m.sessionID = uuid.NewString()
	m.answers = Answers{}
	m.position = 0
	m.reason = ""
	m.startedAt = m.now()
	m.completedAt = time.Time{}
	m.setPhase(PhaseInProgress)
	m.timer.Arm(m.cfg.Duration)
	return true
}

// Select records option as the answer at the current position. It does not
// advance.
func (m *Machine) Select(option int) bool {
	if m.phase != PhaseInProgress {
		return false
	}
	if option < 0 || option >= len(m.questions[m.position].Options) {
		return false
	}
	m.answers[m.position] = option
	return true
}

// Advance moves to the next question, or completes the test from the last
// one. The current question must be answered.
func (m *Machine) Advance() bool {
	if m.phase != PhaseInProgress {
		return false
	}
	if _, ok := m.answers[m.position]; !ok {
		return false
	}
	if m.position == len(m.questions)-1 {
		m.complete(ReasonSubmitted)
		return true
	}
	m.position++
	return true
}

// Retreat moves to the previous question. Answers are kept.
func (m *Machine) Retreat() bool {
	if m.phase != PhaseInProgress || m.position == 0 {
		return false
	}
	m.position--
	return true
}

// Tick consumes one second of the countdown identified by tok and reports
// whether another tick should be scheduled. Reaching zero completes the
// test.
func (m *Machine) Tick(tok countdown.Token) bool {
	return m.timer.Tick(tok)
}

// EnterReview switches a completed test to review.
func (m *Machine) EnterReview() bool {
	if m.phase != PhaseComplete {
		return false
	}
	m.setPhase(PhaseReviewing)
	return true
}

// ExitReview returns from review to the result.
func (m *Machine) ExitReview() bool {
	if m.phase != PhaseReviewing {
		return false
	}
	m.setPhase(PhaseComplete)
	return true
}

// Restart discards the session from any phase and returns to difficulty
// selection.
func (m *Machine) Restart() {
	m.timer.Cancel()
	if m.sessionID != "" || m.phase != PhaseSelectingDifficulty {
		m.log.Info("session discarded",
			zap.String("session_id", m.sessionID),
			zap.String("from", m.phase.String()),
		)
	}
	m.difficulty = ""
	m.questions = nil
	m.answers = Answers{}
	m.position = 0
	m.name = ""
	m.sessionID = ""
	m.reason = ""
	m.startedAt = time.Time{}
	m.completedAt = time.Time{}
	m.phase = PhaseSelectingDifficulty
}

// complete is idempotent: only an in-progress test can be completed.
func (m *Machine) complete(reason Reason) {
	if m.phase != PhaseInProgress {
		return
	}
	m.timer.Cancel()
	m.reason = reason
	m.completedAt = m.now()
	m.setPhase(PhaseComplete)

	r := Evaluate(m.questions, m.answers, m.cfg.Policy)
	m.log.Info("test completed",
		zap.String("session_id", m.sessionID),
		zap.String("difficulty", string(m.difficulty)),
		zap.String("reason", string(reason)),
		zap.Int("score", r.Score),
		zap.Int("total", r.Total),
		zap.String("band", string(r.Band)),
	)
}

func (m *Machine) setPhase(p Phase) {
	m.log.Debug("phase transition",
		zap.String("session_id", m.sessionID),
		zap.String("from", m.phase.String()),
		zap.String("to", p.String()),
	)
	m.phase = p
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Difficulty returns the chosen difficulty, empty before selection.
func (m *Machine) Difficulty() bank.Difficulty { return m.difficulty }

// StudentName returns the submitted name.
func (m *Machine) StudentName() string { return m.name }

// SessionID returns the id assigned when the test started.
func (m *Machine) SessionID() string { return m.sessionID }

// Position returns the current question index.
func (m *Machine) Position() int { return m.position }

// Len returns the number of questions in the session.
func (m *Machine) Len() int { return len(m.questions) }

// Config returns the effective configuration.
func (m *Machine) Config() Config { return m.cfg }

// Reason returns how the test completed, empty while it has not.
func (m *Machine) Reason() Reason { return m.reason }

// Questions returns a copy of the session's questions.
func (m *Machine) Questions() []bank.Question {
	out := make([]bank.Question, len(m.questions))
	copy(out, m.questions)
	return out
}

// Current returns the question at the current position.
func (m *Machine) Current() (bank.Question, bool) {
	if m.position < 0 || m.position >= len(m.questions) {
		return bank.Question{}, false
	}
	return m.questions[m.position], true
}

// Answers returns a copy of the recorded answers.
func (m *Machine) Answers() Answers { return m.answers.Clone() }

// Answer returns the option recorded at position p.
func (m *Machine) Answer(p int) (int, bool) {
	v, ok := m.answers[p]
	return v, ok
}

// AnsweredCount returns how many questions have an answer.
func (m *Machine) AnsweredCount() int { return len(m.answers) }

// Remaining returns the time left on the countdown.
func (m *Machine) Remaining() time.Duration { return m.timer.Remaining() }

// TimerToken returns the token the UI must attach to tick messages.
func (m *Machine) TimerToken() countdown.Token { return m.timer.Token() }

// TimerArmed reports whether the countdown is running.
func (m *Machine) TimerArmed() bool { return m.timer.Armed() }

func (m *Machine) finished() bool {
	return m.phase == PhaseComplete || m.phase == PhaseReviewing
}

// Result grades the current answers. It is only available once the test is
// complete and is recomputed on every call.
func (m *Machine) Result() (Result, bool) {
	if !m.finished() {
		return Result{}, false
	}
	return Evaluate(m.questions, m.answers, m.cfg.Policy), true
}

// Review returns the per-question review once the test is complete.
func (m *Machine) Review() ([]ReviewItem, bool) {
	if !m.finished() {
		return nil, false
	}
	return BuildReview(m.questions, m.answers), true
}

// Outcome summarizes a finished test.
func (m *Machine) Outcome() (Outcome, bool) {
	r, ok := m.Result()
	if !ok {
		return Outcome{}, false
	}
	return Outcome{
		SessionID:   m.sessionID,
		StudentName: m.name,
		Difficulty:  m.difficulty,
		Result:      r,
		Reason:      m.reason,
		StartedAt:   m.startedAt,
		CompletedAt: m.completedAt,
		TimeTaken:   m.cfg.Duration - m.timer.Remaining(),
	}, true
}
