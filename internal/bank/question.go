package bank

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned for a difficulty outside easy/medium/hard.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty names a question pool.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns all difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a user-supplied string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// DisplayName returns the label shown on difficulty cards and certificates.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Difficult"
	default:
		return string(d)
	}
}

// Stimulus is what accompanies a prompt. The set of variants is closed:
// TextOnly and RoadSign.
type Stimulus interface {
	isStimulus()
}

// TextOnly marks a question that has nothing but its prompt.
type TextOnly struct{}

// RoadSign is a question that shows a traffic sign image.
type RoadSign struct {
	Asset   string // asset path, e.g. /symbols/mandatory/1.png
	Caption string // textual description used where images cannot be shown
}

func (TextOnly) isStimulus() {}
func (RoadSign) isStimulus() {}

// Question is one immutable assessment item.
type Question struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Stimulus     Stimulus
}

// IsCorrect reports whether option is the right answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectIndex
}

// Sign returns the road sign for image-bearing questions.
func (q Question) Sign() (RoadSign, bool) {
	rs, ok := q.Stimulus.(RoadSign)
	return rs, ok
}

// OptionLabel returns the letter shown before an option (A, B, C, ...).
func OptionLabel(i int) string {
	if i < 0 || i >= 26 {
		return "?"
	}
	return string(rune('A' + i))
}
