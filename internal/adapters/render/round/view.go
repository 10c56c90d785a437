package round

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/geoquiz-cli/internal/application"
	"github.com/bnema/geoquiz-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	heartFull = "♥"
	heartLost = "♡"
)

type RoundView struct {
	Round        domain.Round
	Mode         domain.Mode
	Difficulty   domain.Difficulty
	TotalRounds  int
	Stats        domain.Stats
	AttemptsLeft int
	MaxAttempts  int
}

type SummaryView struct {
	Stats       domain.Stats
	Played      int
	TotalRounds int
}

func RenderRound(v RoundView) (string, error) {
	return render(func(s styles) string { return roundView(v, s) })
}

// RenderFeedback describes the outcome of one submission. maxAttempts sizes
// the hearts row shown after a non-final miss.
func RenderFeedback(result application.Result, maxAttempts int) (string, error) {
	return render(func(s styles) string { return feedbackView(result, maxAttempts, s) })
}

func RenderSummary(v SummaryView) (string, error) {
	return render(func(s styles) string { return summaryView(v, s) })
}

func RenderCountries(countries []domain.Country) (string, error) {
	return render(func(s styles) string { return countriesView(countries, s) })
}

func roundView(v RoundView, s styles) string {
	lines := []string{
		s.title.Render(modeTitle(v.Mode)),
		s.header.Render(fmt.Sprintf("round %d/%d  score %d  streak %d", v.Round.Index, v.TotalRounds, v.Stats.Score, v.Stats.Streak)),
	}

	question := []string{}
	switch v.Mode {
	case domain.ModeCapitals:
		question = append(question,
			s.prompt.Render("What is the capital of ")+s.subject.Render(v.Round.Target.Name)+s.prompt.Render("?"),
		)
	default:
		question = append(question, s.prompt.Render("Which country does this flag belong to?"))
	}
	if v.Round.Target.FlagURL != "" {
		question = append(question, s.flag.Render(v.Round.Target.FlagURL))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, question...)))

	if v.Difficulty == domain.DifficultyEasy {
		options := make([]string, 0, len(v.Round.Options))
		for i, option := range v.Round.Options {
			options = append(options, s.optionKey.Render(strconv.Itoa(i+1)+")")+" "+s.option.Render(v.Mode.Answer(option)))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, options...)))
		lines = append(lines, s.hint.Render(fmt.Sprintf("enter 1-%d, or quit", len(v.Round.Options))))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(hearts(v.AttemptsLeft, v.MaxAttempts, s)))
	lines = append(lines, s.hint.Render("type your answer, or quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func feedbackView(result application.Result, maxAttempts int, s styles) string {
	if result.Final && result.Correct {
		return s.correct.Render("✓ Correct!") + " " + s.header.Render(fmt.Sprintf("+%d points", result.Points))
	}

	if result.Final {
		return s.wrong.Render("✗ Wrong.") + " " + s.prompt.Render("The answer was ") + s.answer.Render(result.CorrectAnswer)
	}

	attempts := "attempts"
	if result.AttemptsLeft == 1 {
		attempts = "attempt"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.retry.Render(fmt.Sprintf("✗ Not quite, %d %s left", result.AttemptsLeft, attempts)),
		hearts(result.AttemptsLeft, maxAttempts, s),
	)
}

func summaryView(v SummaryView, s styles) string {
	lines := []string{
		s.title.Render("Game over"),
		s.header.Render(fmt.Sprintf("rounds played: %d/%d", v.Played, v.TotalRounds)),
		s.section.Render(s.prompt.Render("final score: ") + s.answer.Render(strconv.Itoa(v.Stats.Score))),
		s.prompt.Render("final streak: ") + s.answer.Render(strconv.Itoa(v.Stats.Streak)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func countriesView(countries []domain.Country, s styles) string {
	lines := []string{
		s.title.Render("Countries"),
		s.header.Render(fmt.Sprintf("countries: %d", len(countries))),
	}

	if len(countries) == 0 {
		lines = append(lines, s.empty.Render("No countries available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	nameWidth, capitalWidth := len("NAME"), len("CAPITAL")
	for _, country := range countries {
		nameWidth = max(nameWidth, lipgloss.Width(country.Name))
		capitalWidth = max(capitalWidth, lipgloss.Width(country.Capital))
	}

	row := func(name, capital, region string) string {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.column.Width(nameWidth+2).Render(name),
			s.column.Width(capitalWidth+2).Render(capital),
			region,
		)
	}

	table := []string{s.header.Render(row("NAME", "CAPITAL", "REGION"))}
	for _, country := range countries {
		table = append(table, row(country.Name, country.Capital, country.Region))
	}
	lines = append(lines, s.section.Render(strings.Join(table, "\n")))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// hearts draws left filled hearts followed by spent ones.
func hearts(left, total int, s styles) string {
	if total <= 0 {
		return ""
	}
	left = min(max(left, 0), total)

	return s.heartFull.Render(strings.Repeat(heartFull, left)) + s.heartLost.Render(strings.Repeat(heartLost, total-left))
}

func modeTitle(mode domain.Mode) string {
	if mode == domain.ModeCapitals {
		return "Capitals"
	}
	return "Flags"
}
