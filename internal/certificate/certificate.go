// Package certificate builds the completion certificate for a passed mock
// test and exports it as a PNG file.
package certificate

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rajannraj/rtomock/internal/bank"
	"github.com/rajannraj/rtomock/internal/exam"
)

// ErrNotPassed is returned when a certificate is requested for a failed test.
var ErrNotPassed = errors.New("certificate is only issued for a passed test")

// Branding defaults.
const (
	DefaultPrefix     = "RajAnnRaj"
	DefaultSchoolName = "Raj Ann Raj Driving School"
	DefaultSchoolLine = "Raj Ann Raj Driving Training School, Mandi (H.P.)"
)

// Branding identifies the issuing school.
type Branding struct {
	Prefix     string // file name prefix
	SchoolName string
	SchoolLine string // footer line
	LogoPath   string // optional PNG or JPEG
}

// DefaultBranding returns the built-in school branding.
func DefaultBranding() Branding {
	return Branding{
		Prefix:     DefaultPrefix,
		SchoolName: DefaultSchoolName,
		SchoolLine: DefaultSchoolLine,
	}
}

func (b Branding) withDefaults() Branding {
	def := DefaultBranding()
	if b.Prefix == "" {
		b.Prefix = def.Prefix
	}
	if b.SchoolName == "" {
		b.SchoolName = def.SchoolName
	}
	if b.SchoolLine == "" {
		b.SchoolLine = def.SchoolLine
	}
	return b
}

// Certificate is the content printed on the artifact.
type Certificate struct {
	StudentName string
	Difficulty  bank.Difficulty
	Score       int
	Total       int
	IssuedAt    time.Time
	Branding    Branding
}

// New returns the certificate for a passed outcome.
func New(out exam.Outcome, branding Branding, issuedAt time.Time) (*Certificate, error) {
	if !out.Result.Passed {
		return nil, fmt.Errorf("%w: scored %d of %d", ErrNotPassed, out.Result.Score, out.Result.Total)
	}
	return &Certificate{
		StudentName: out.StudentName,
		Difficulty:  out.Difficulty,
		Score:       out.Result.Score,
		Total:       out.Result.Total,
		IssuedAt:    issuedAt,
		Branding:    branding.withDefaults(),
	}, nil
}

// Headline returns the line naming the test and the school.
func (c *Certificate) Headline() string {
	return fmt.Sprintf("has successfully passed the RTO Mock Test (%s Level) prescribed by %s.",
		c.Difficulty.DisplayName(), c.Branding.SchoolName)
}

// ScoreText returns "n / total".
func (c *Certificate) ScoreText() string {
	return fmt.Sprintf("%d / %d", c.Score, c.Total)
}

// DateText returns the issue date as printed.
func (c *Certificate) DateText() string {
	return c.IssuedAt.Format("02/01/2006")
}

// FileName returns <prefix>_Certificate_<name>.png for the student.
func (c *Certificate) FileName() string {
	return FileName(c.Branding.Prefix, c.StudentName)
}

// FileName builds the export file name. Whitespace runs in name become a
// single underscore and anything outside [A-Za-z0-9_-] is dropped.
func FileName(prefix, name string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return sanitize(prefix, "") + "_Certificate_" + sanitize(name, "student") + ".png"
}

func sanitize(s, fallback string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			if !inSpace {
				sb.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			sb.WriteRune(r)
		}
	}
	out := strings.Trim(sb.String(), "_")
	if out == "" {
		return fallback
	}
	return out
}
