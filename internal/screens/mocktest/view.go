package mocktest

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rajannraj/rtomock/internal/bank"
	"github.com/rajannraj/rtomock/internal/exam"
	"github.com/rajannraj/rtomock/internal/ui/components"
	"github.com/rajannraj/rtomock/internal/ui/theme"
)

// reviewPage is how many lines PgUp/PgDown scroll the review.
const reviewPage = 10

func (s *MockTestScreen) View(width, height int) string {
	var content string
	switch s.machine.Phase() {
	case exam.PhaseEnteringDetails:
		content = s.renderDetails(width)
	case exam.PhaseInProgress:
		content = s.renderQuestion(width)
	case exam.PhaseComplete:
		content = s.renderResult(width)
	case exam.PhaseReviewing:
		return s.renderReview(width, height)
	default:
		content = s.renderLevels(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func cardWidth(width int) int {
	return min(width-4, 68)
}

func (s *MockTestScreen) renderLevels(width int) string {
	p := s.ctx.Palette()
	cfg := s.machine.Config()
	for i, d := range bank.AllDifficulties() {
		s.levels.Items[i].Label = s.ctx.T("difficulty." + string(d))
		s.levels.Items[i].Detail = s.ctx.T("difficulty.meta", cfg.QuestionCount, int(cfg.Duration.Minutes()))
	}

	sections := []string{
		p.Title().Render(s.ctx.T("difficulty.title")),
		"",
		p.Card().Width(min(width-4, 44)).Render(s.levels.View(p)),
	}
	if s.levelErr != nil {
		sections = append(sections, "", p.Incorrect().Render(s.ctx.T("difficulty.failed", s.levelErr)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (s *MockTestScreen) renderDetails(width int) string {
	p := s.ctx.Palette()
	level := s.ctx.T("difficulty." + string(s.machine.Difficulty()))

	form := lipgloss.JoinVertical(lipgloss.Left,
		p.Body().Bold(true).Render(s.ctx.T("details.name")),
		s.input.View(p),
		"",
		p.Hint().Render(s.ctx.T("details.hint")),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		p.Title().Render(s.ctx.T("details.title")),
		p.Subtitle().Render(s.ctx.T("details.level", level)),
		"",
		p.Card().Width(cardWidth(width)).Render(form),
		"",
		p.Hint().Render("Esc  "+s.ctx.T("details.back")),
	)
}

func (s *MockTestScreen) renderQuestion(width int) string {
	p := s.ctx.Palette()
	q, ok := s.machine.Current()
	if !ok {
		return ""
	}
	pos, total := s.machine.Position(), s.machine.Len()
	w := cardWidth(width)

	counter := p.Body().Bold(true).Render(s.ctx.T("question.counter", pos+1, total))
	answered := lipgloss.NewStyle().Foreground(p.TextDim).Render(s.ctx.T("question.answered", s.machine.AnsweredCount()))
	gap := max(w-lipgloss.Width(counter)-lipgloss.Width(answered), 1)
	info := counter + strings.Repeat(" ", gap) + answered

	bar := components.NewProgressBar("", float64(pos+1)/float64(total), false, w).View(p)

	chosen, isAnswered := s.machine.Answer(pos)
	if !isAnswered {
		chosen = -1
	}

	body := []string{p.Body().Bold(true).Width(w - 6).Render(q.Prompt)}
	if sign, ok := q.Sign(); ok {
		body = append(body, "", renderSign(p, s.ctx.T("question.sign", sign.Caption)))
	}
	body = append(body, "", components.NewMultiChoice(q.Options, chosen).View(p))

	nextLabel := s.ctx.T("question.next")
	if pos == total-1 {
		nextLabel = s.ctx.T("question.finish")
	}
	buttons := components.ButtonRow(p,
		components.NewButton(s.ctx.T("question.previous"), "←", pos > 0),
		components.NewButton(nextLabel, "→", isAnswered),
	)

	sections := []string{
		info,
		bar,
		"",
		p.Card().Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, body...)),
		"",
		buttons,
	}
	if !isAnswered {
		sections = append(sections, "", p.Hint().Render(s.ctx.T("question.pick")))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func renderSign(p theme.Palette, caption string) string {
	return lipgloss.NewStyle().
		Foreground(p.Accent).
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1).
		Render("⚠ " + caption)
}

func (s *MockTestScreen) renderResult(width int) string {
	p := s.ctx.Palette()
	r, ok := s.machine.Result()
	if !ok {
		return ""
	}
	w := cardWidth(width)

	heading := s.ctx.T("result.failed")
	if r.Passed {
		heading = s.ctx.T("result.passed")
	}
	sections := []string{}
	if s.machine.Reason() == exam.ReasonTimedOut {
		sections = append(sections, lipgloss.NewStyle().Foreground(p.Warning).Bold(true).Render(s.ctx.T("result.timed_out")), "")
	}
	sections = append(sections, p.Title().Render(heading), "")

	tiles := lipgloss.JoinHorizontal(lipgloss.Top,
		s.tile(p, s.ctx.T("result.score"), fmt.Sprintf("%d / %d", r.Score, r.Total)),
		"  ",
		s.tile(p, s.ctx.T("result.grade"), p.Badge(r.Passed).Render(s.ctx.T("result.band."+string(r.Band)))),
		"  ",
		s.tile(p, s.ctx.T("result.pass_mark"), fmt.Sprintf("%d / %d", r.PassMark, r.Total)),
	)
	sections = append(sections, tiles, "", p.Body().Render(s.ctx.T(r.MessageKey())))

	if r.Passed {
		sections = append(sections, "", s.renderCertificateSection(p, w))
	}

	buttons := []components.Button{}
	if r.Passed {
		buttons = append(buttons, components.NewButton(s.ctx.T("result.download"), "D", !s.exporting))
	}
	buttons = append(buttons,
		components.NewButton(s.ctx.T("result.review"), "R", true),
		components.NewButton(s.ctx.T("result.new_test"), "N", true),
	)
	sections = append(sections, "", components.ButtonRow(p, buttons...))

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (s *MockTestScreen) tile(p theme.Palette, label, value string) string {
	return p.Card().Padding(0, 2).Align(lipgloss.Center).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(p.TextDim).Render(strings.ToUpper(label)),
			p.Body().Bold(true).Render(value),
		),
	)
}

func (s *MockTestScreen) renderCertificateSection(p theme.Palette, w int) string {
	lines := []string{
		p.Body().Bold(true).Render(s.ctx.T("result.certificate")),
		lipgloss.NewStyle().Foreground(p.TextDim).Render(s.machine.StudentName() + " · " + s.opts.Branding.SchoolName),
	}
	switch {
	case s.exportErr != nil:
		lines = append(lines, p.Incorrect().Render(s.ctx.T("result.export_failed", s.exportErr)))
	case s.exportPath != "":
		lines = append(lines, p.Correct().Render(s.ctx.T("result.saved", s.exportPath)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Primary).
		Padding(0, 2).
		Width(w).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (s *MockTestScreen) renderReview(width, height int) string {
	p := s.ctx.Palette()
	items, ok := s.machine.Review()
	if !ok {
		return ""
	}
	w := cardWidth(width)

	var blocks []string
	for _, it := range items {
		blocks = append(blocks, s.renderReviewItem(p, it, w))
	}
	lines := strings.Split(lipgloss.JoinVertical(lipgloss.Left, blocks...), "\n")

	header := lipgloss.JoinVertical(lipgloss.Center,
		p.Title().Render(s.ctx.T("review.title")),
		p.Hint().Render("Esc  "+s.ctx.T("review.back")),
		"",
	)
	visible := max(height-lipgloss.Height(header), 1)

	maxOffset := max(len(lines)-visible, 0)
	s.reviewOffset = min(s.reviewOffset, maxOffset)
	end := min(s.reviewOffset+visible, len(lines))

	body := strings.Join(lines[s.reviewOffset:end], "\n")
	content := lipgloss.JoinVertical(lipgloss.Center, header, body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (s *MockTestScreen) renderReviewItem(p theme.Palette, it exam.ReviewItem, w int) string {
	titleStyle := p.Correct()
	if !it.IsCorrect() {
		titleStyle = p.Incorrect()
	}

	parts := []string{titleStyle.Width(w - 4).Render(s.ctx.T("review.item", it.Position+1, it.Prompt))}
	if sign, ok := it.Stimulus.(bank.RoadSign); ok {
		parts = append(parts, renderSign(p, s.ctx.T("question.sign", sign.Caption)))
	}
	parts = append(parts, components.NewRevealedMultiChoice(it.Options, it.Selected, it.Correct).View(p))
	if it.Status == exam.StatusSkipped {
		parts = append(parts, p.Hint().Render(s.ctx.T("review.skipped")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, false, false, true).
		BorderForeground(titleStyle.GetForeground()).
		PaddingLeft(1).
		MarginBottom(1).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
