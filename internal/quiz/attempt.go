package quiz

import "strings"

// State is the grading state of an Attempt.
type State int

const (
	StateUnanswered   State = iota // Waiting for the first graded answer
	StateRetryOffered              // First answer was wrong; one retry left
	StateAnswered                  // Terminal: graded, or conceded via Reveal
)

func (s State) String() string {
	switch s {
	case StateUnanswered:
		return "unanswered"
	case StateRetryOffered:
		return "retry-offered"
	case StateAnswered:
		return "answered"
	}
	return "unknown"
}

// Outcome is the result of one successful grading step.
type Outcome int

const (
	OutcomeCorrect Outcome = iota // Answered(true)
	OutcomeRetry                  // RetryOffered; counters untouched
	OutcomeWrong                  // Answered(false) after the retry
)

// Attempt is a fresh copy of a Question as served from a queue. It owns the
// mutable per-attempt fields and the learner's typed input.
type Attempt struct {
	Question *Question

	Answered   bool
	RetryUsed  bool
	WasCorrect bool

	// Revealed is set when the learner conceded; Answered is also true.
	Revealed bool

	// Input is the typed answer of a text question.
	Input string

	// BlankInputs holds one typed answer per blank of an image question.
	BlankInputs []string
}

// newAttempt returns a fresh attempt with all mutable fields reset.
func newAttempt(q *Question) *Attempt {
	a := &Attempt{Question: q}
	if q.Kind == KindMultiBlank {
		a.BlankInputs = make([]string, len(q.MultiBlank.Blanks))
	}
	return a
}

// State derives the grading state from the attempt flags.
func (a *Attempt) State() State {
	switch {
	case a.Answered:
		return StateAnswered
	case a.RetryUsed:
		return StateRetryOffered
	default:
		return StateUnanswered
	}
}

// grade runs one step of the state machine against the current input.
// Errors leave the attempt untouched.
func (a *Attempt) grade() (Outcome, Feedback, error) {
	switch a.Question.Kind {
	case KindMultiBlank:
		return a.gradeBlanks()
	default:
		return a.gradeText()
	}
}

func (a *Attempt) gradeText() (Outcome, Feedback, error) {
	if a.Answered {
		return 0, neutral(MsgAlreadyGraded), ErrAlreadyGraded
	}
	if strings.TrimSpace(a.Input) == "" {
		return 0, failure(MsgEnterWord), ErrEmptyInput
	}

	answer := a.Question.Text.Answer
	if Matches(a.Input, answer) {
		a.finish(true)
		return OutcomeCorrect, success(MsgCorrect), nil
	}

	if !a.RetryUsed {
		a.RetryUsed = true
		a.Input = ""
		return OutcomeRetry, failure(MsgTryAgain), nil
	}

	a.finish(false)
	return OutcomeWrong, wrongAnswer(answer), nil
}

func (a *Attempt) gradeBlanks() (Outcome, Feedback, error) {
	blanks := a.Question.MultiBlank.Blanks
	if len(blanks) == 0 {
		return 0, failure(MsgNoBlanks), ErrNoBlanks
	}
	if a.Answered {
		return 0, neutral(MsgAlreadyGraded), ErrAlreadyGraded
	}

	var missed []int
	for i, b := range blanks {
		var guess string
		if i < len(a.BlankInputs) {
			guess = a.BlankInputs[i]
		}
		if !Matches(guess, b.Answer) {
			missed = append(missed, i)
		}
	}

	if len(missed) == 0 {
		a.finish(true)
		return OutcomeCorrect, success(MsgAllBlanks), nil
	}

	// Inputs are kept as typed so the learner can correct them.
	if !a.RetryUsed {
		a.RetryUsed = true
		return OutcomeRetry, missedRetry(missed), nil
	}

	a.finish(false)
	return OutcomeWrong, missedFinal(missed, blanks), nil
}

// reveal fills in every expected answer and concedes the question.
func (a *Attempt) reveal() (Feedback, error) {
	if a.Answered {
		return neutral(MsgAlreadyGraded), ErrAlreadyGraded
	}
	switch a.Question.Kind {
	case KindMultiBlank:
		a.BlankInputs = a.Question.Answers()
	default:
		a.Input = a.Question.Text.Answer
	}
	a.Answered = true
	a.WasCorrect = false
	a.Revealed = true
	return neutral(MsgRevealed), nil
}

func (a *Attempt) finish(correct bool) {
	a.Answered = true
	a.WasCorrect = correct
}
