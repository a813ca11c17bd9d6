package exam

import (
	"fmt"

	"github.com/rajannraj/rtomock/internal/bank"
)

// Default grading thresholds, as whole percentages of the question count.
const (
	DefaultPassPercent      = 70
	DefaultExcellentPercent = 90
)

// Band is the named grade bucket a score falls into.
type Band string

const (
	BandFail      Band = "fail"
	BandPass      Band = "pass"
	BandExcellent Band = "excellent"
)

// Answers maps a question position to the selected option index.
// Positions without an entry are unanswered.
type Answers map[int]int

// Clone returns an independent copy of a.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Policy holds the grading thresholds.
type Policy struct {
	PassPercent      int
	ExcellentPercent int
}

// DefaultPolicy returns the 70% / 90% policy.
func DefaultPolicy() Policy {
	return Policy{
		PassPercent:      DefaultPassPercent,
		ExcellentPercent: DefaultExcellentPercent,
	}
}

// Validate checks 0 < pass <= excellent <= 100.
func (p Policy) Validate() error {
	if p.PassPercent <= 0 || p.PassPercent > 100 {
		return fmt.Errorf("pass percent must be in (0, 100], got %d", p.PassPercent)
	}
	if p.ExcellentPercent < p.PassPercent || p.ExcellentPercent > 100 {
		return fmt.Errorf("excellent percent must be in [%d, 100], got %d", p.PassPercent, p.ExcellentPercent)
	}
	return nil
}

// Result is the graded outcome of a set of answers. It is always derived
// from questions and answers and never stored.
type Result struct {
	Score    int
	Total    int
	Passed   bool
	Band     Band
	PassMark int // smallest passing score for Total
}

// Percent returns the score as a whole percentage, rounded down.
func (r Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return r.Score * 100 / r.Total
}

// MessageKey returns the i18n key of the verdict line shown with the result.
func (r Result) MessageKey() string {
	switch r.Band {
	case BandExcellent:
		return "result.excellent"
	case BandPass:
		return "result.pass"
	default:
		return "result.fail"
	}
}

// Score counts positions whose answer matches the question's correct index.
// Unanswered positions count as incorrect. Answers for positions outside
// questions are ignored.
func Score(questions []bank.Question, answers Answers) int {
	score := 0
	for p, q := range questions {
		if sel, ok := answers[p]; ok && q.IsCorrect(sel) {
			score++
		}
	}
	return score
}

// Grade maps a score to a Result. An empty test is a fail.
func Grade(score, total int, p Policy) Result {
	r := Result{
		Score:    score,
		Total:    total,
		Band:     BandFail,
		PassMark: PassMark(total, p.PassPercent),
	}
	if total <= 0 {
		return r
	}
	if score*100 >= p.PassPercent*total {
		r.Passed = true
		r.Band = BandPass
	}
	if r.Passed && score*100 >= p.ExcellentPercent*total {
		r.Band = BandExcellent
	}
	return r
}

// Evaluate scores and grades in one step.
func Evaluate(questions []bank.Question, answers Answers, p Policy) Result {
	return Grade(Score(questions, answers), len(questions), p)
}

// PassMark returns the smallest score that reaches percent of total.
func PassMark(total, percent int) int {
	if total <= 0 {
		return 0
	}
	return (percent*total + 99) / 100
}
