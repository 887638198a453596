// Package summary implements the score summary screen.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabquiz/internal/quiz"
	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screen"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
	"github.com/abhisek/vocabquiz/internal/ui/theme"
)

// SummaryScreen shows the score for the current category run.
type SummaryScreen struct {
	stats   quiz.Stats
	elapsed time.Duration
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for a snapshot of the session stats.
func New(stats quiz.Stats, elapsed time.Duration) *SummaryScreen {
	return &SummaryScreen{stats: stats, elapsed: elapsed}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Score"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to quiz"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// Lines returns the summary rows without styling.
func (s *SummaryScreen) Lines() []string {
	st := s.stats
	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60
	return []string{
		st.Summary(),
		fmt.Sprintf("Time: %d:%02d", mins, secs),
		fmt.Sprintf("Asked: %d    Correct: %d    Accuracy: %.0f%%", st.Asked, st.Correct, st.Accuracy()*100),
		fmt.Sprintf("Left in this pass: %d", st.Remaining),
	}
}

func (s *SummaryScreen) View(width, height int) string {
	lines := s.Lines()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(lines[0]))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(lines[1]))
	b.WriteString("\n\n")

	score := center.Foreground(theme.Text)
	if s.stats.Asked > 0 && s.stats.Correct == s.stats.Asked {
		score = score.Foreground(theme.Success)
	}
	b.WriteString(score.Render(lines[2]))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(lines[3]))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
