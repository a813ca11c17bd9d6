package exam

import "github.com/rajannraj/rtomock/internal/bank"

// Status classifies one reviewed question.
type Status string

const (
	StatusCorrect Status = "correct"
	StatusWrong   Status = "wrong"
	StatusSkipped Status = "skipped"
)

// ReviewItem is the read-only view of one question after completion.
type ReviewItem struct {
	Position int
	Prompt   string
	Stimulus bank.Stimulus
	Options  []string
	Selected int // valid only when Answered
	Answered bool
	Correct  int
	Status   Status
}

// IsCorrect reports whether the stored answer was right.
func (it ReviewItem) IsCorrect() bool {
	return it.Status == StatusCorrect
}

// BuildReview projects questions and answers into review items in session
// order. Neither input is modified; options are copied.
func BuildReview(questions []bank.Question, answers Answers) []ReviewItem {
	items := make([]ReviewItem, len(questions))
	for p, q := range questions {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)

		it := ReviewItem{
			Position: p,
			Prompt:   q.Prompt,
			Stimulus: q.Stimulus,
			Options:  opts,
			Selected: -1,
			Correct:  q.CorrectIndex,
			Status:   StatusSkipped,
		}
		if sel, ok := answers[p]; ok {
			it.Selected = sel
			it.Answered = true
			if q.IsCorrect(sel) {
				it.Status = StatusCorrect
			} else {
				it.Status = StatusWrong
			}
		}
		items[p] = it
	}
	return items
}
