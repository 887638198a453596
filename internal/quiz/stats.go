package quiz

import "fmt"

// AllCategoriesLabel is the display label of the AllCategories scope.
const AllCategoriesLabel = "All"

// Stats is a derived view of the session score.
type Stats struct {
	Asked         int // graded attempts, reveals excluded
	Correct       int
	Remaining     int // queued attempts plus the one being served
	CategoryLabel string
	FilteredTotal int
}

// Summary renders "<label> · <n> questions".
func (st Stats) Summary() string {
	return fmt.Sprintf("%s · %d questions", st.CategoryLabel, st.FilteredTotal)
}

// Accuracy returns Correct / Asked, or 0 before anything is graded.
func (st Stats) Accuracy() float64 {
	if st.Asked == 0 {
		return 0
	}
	return float64(st.Correct) / float64(st.Asked)
}

// Stats recomputes the score view from the session state.
func (s *Session) Stats() Stats {
	remaining := len(s.queue)
	if s.current != nil {
		remaining++
	}
	return Stats{
		Asked:         s.asked,
		Correct:       s.correct,
		Remaining:     remaining,
		CategoryLabel: CategoryLabel(s.category),
		FilteredTotal: len(s.filtered),
	}
}

// CategoryLabel returns the display label for a category key.
func CategoryLabel(key string) string {
	if key == AllCategories {
		return AllCategoriesLabel
	}
	return key
}
