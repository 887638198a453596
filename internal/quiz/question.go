package quiz

// Kind tags which variant a Question is.
type Kind string

const (
	// KindText is a definition with a single typed answer.
	KindText Kind = "text"

	// KindMultiBlank is an image with several positioned blanks.
	KindMultiBlank Kind = "image"
)

// Question is one entry of the loaded pool. It is never mutated once the
// pool is built; per-attempt state lives in Attempt.
type Question struct {
	// ID is unique within a load, e.g. "0-3" or "image-1".
	ID string

	// Kind selects which of Text or MultiBlank is set.
	Kind Kind

	// Category groups questions for filtering and counting.
	Category string

	// Prompt is the definition text, or the caption of an image question.
	Prompt string

	// Text is set only when Kind is KindText.
	Text *TextBody

	// MultiBlank is set only when Kind is KindMultiBlank.
	MultiBlank *MultiBlankBody
}

// TextBody carries the expected answer of a text question.
type TextBody struct {
	Answer string
}

// MultiBlankBody carries the image reference and its ordered blanks.
type MultiBlankBody struct {
	Image  string
	Blanks []Blank
}

// Blank is one fill-in target on an image question.
type Blank struct {
	X      float64 // percent from the left edge
	Y      float64 // percent from the top edge
	Answer string
	Width  string // optional display hint, e.g. "120px" or "8"
}

// Answers returns the expected answers in display order: one for a text
// question, one per blank for a multi-blank question.
func (q *Question) Answers() []string {
	switch q.Kind {
	case KindText:
		return []string{q.Text.Answer}
	case KindMultiBlank:
		out := make([]string, len(q.MultiBlank.Blanks))
		for i, b := range q.MultiBlank.Blanks {
			out[i] = b.Answer
		}
		return out
	}
	return nil
}
