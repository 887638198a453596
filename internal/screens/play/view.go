package play

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabquiz/internal/quiz"
	"github.com/abhisek/vocabquiz/internal/ui/components"
	"github.com/abhisek/vocabquiz/internal/ui/theme"
)

const (
	// PromptImage is the instruction under an image question's caption.
	PromptImage = "Fill in each blank on the picture."

	defaultBlankWidth = 12
	pxPerCell         = 8
)

func blankPlaceholder(i int) string {
	return fmt.Sprintf("#%d", i+1)
}

// blankWidth turns a catalog width hint ("96px" or a bare number of
// pixels) into terminal cells.
func blankWidth(hint string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(hint), "px"))
	if err != nil || n <= 0 {
		return defaultBlankWidth
	}
	cells := n / pxPerCell
	if cells < 4 {
		cells = 4
	}
	return cells
}

// promptLabel is the heading shown above the current question.
func promptLabel(a *quiz.Attempt) string {
	if a.Question.Kind == quiz.KindMultiBlank {
		return a.Question.Prompt
	}
	return fmt.Sprintf("Definition (%s)", a.Question.Category)
}

func (s *PlayScreen) View(width, height int) string {
	if s.loadErr != nil {
		fb := quiz.LoadFailure()
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Feedback(string(fb.Tone)).Render(fb.Message)+"\n\n"+
				theme.Hint.Render(s.loadErr.Error()))
	}
	if s.session == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading words..."))
	}

	var b strings.Builder
	st := s.session.Stats()

	b.WriteString(theme.Label.Render(st.Summary()))
	b.WriteString("\n\n")

	if s.served != nil {
		b.WriteString(s.renderQuestion(width))
		b.WriteString("\n\n")
	}

	if fb := s.session.Feedback(); !fb.IsZero() {
		b.WriteString(theme.Feedback(string(fb.Tone)).Render(fb.Message))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d / %d", st.Correct, st.Asked)))
	if st.Asked > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  (%d%%)", int(st.Accuracy()*100))))
	}
	b.WriteString("\n")

	done := st.FilteredTotal - st.Remaining
	if s.served != nil && s.served.Answered {
		done++
	}
	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	b.WriteString(components.NewProgressBar("Progress", done, st.FilteredTotal, barWidth).View())

	card := theme.Card.Width(min(width-4, 80)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *PlayScreen) renderQuestion(width int) string {
	a := s.served
	var b strings.Builder

	b.WriteString(theme.Title.Render(promptLabel(a)))
	b.WriteString("\n")

	if a.Question.Kind != quiz.KindMultiBlank {
		b.WriteString(theme.Body.Width(min(width-10, 72)).Render(a.Question.Prompt))
		b.WriteString("\n\n")
		b.WriteString(s.answer.View())
		return b.String()
	}

	b.WriteString(theme.Hint.Render(PromptImage))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(a.Question.MultiBlank.Image))
	b.WriteString("\n\n")
	for i, in := range s.blanks {
		blank := a.Question.MultiBlank.Blanks[i]
		marker := "  "
		if i == s.focus {
			marker = theme.Selected.Render("▸ ")
		}
		pos := theme.Hint.Render(fmt.Sprintf("(%.0f%%, %.0f%%)", blank.X, blank.Y))
		b.WriteString(marker + theme.Label.Render(blankPlaceholder(i)) + " " + in.View() + " " + pos + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
