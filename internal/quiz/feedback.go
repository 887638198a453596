package quiz

import (
	"fmt"
	"strings"
)

// Tone tells the presentation layer how to style a feedback message.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

// Feedback is the user-facing message produced by the last engine action.
type Feedback struct {
	Message string
	Tone    Tone
}

// IsZero reports whether there is nothing to show.
func (f Feedback) IsZero() bool {
	return f.Message == ""
}

// Fixed feedback messages.
const (
	MsgEnterWord      = "Type a word first."
	MsgAlreadyGraded  = "Already graded. Move on to the next question."
	MsgCorrect        = "Correct!"
	MsgTryAgain       = "Wrong! Try once more."
	MsgAllBlanks      = "Correct! Every blank matches."
	MsgRevealed       = "Answer shown. Move on to the next question."
	MsgNoBlanks       = "This image question has no blanks."
	MsgEmptyScope     = "No questions in this category."
	MsgReshuffled     = "Every question answered. Reshuffling and continuing."
	MsgLoadFailed     = "Could not load the quiz data."
	MsgNothingServing = "No question is being served yet."
)

func neutral(msg string) Feedback { return Feedback{Message: msg, Tone: ToneNeutral} }
func success(msg string) Feedback { return Feedback{Message: msg, Tone: ToneSuccess} }
func failure(msg string) Feedback { return Feedback{Message: msg, Tone: ToneError} }

// LoadFailure builds the feedback shown when the word bank cannot be loaded.
func LoadFailure() Feedback {
	return failure(MsgLoadFailed)
}

func wrongAnswer(answer string) Feedback {
	return failure("Wrong! Answer: " + answer)
}

// missedRetry lists missed blanks by 1-based number, without answers.
func missedRetry(missed []int) Feedback {
	labels := make([]string, len(missed))
	for i, idx := range missed {
		labels[i] = fmt.Sprintf("#%d", idx+1)
	}
	return failure("Wrong! Try again. Missed: " + strings.Join(labels, ", "))
}

// missedFinal lists missed blanks together with their answers.
func missedFinal(missed []int, blanks []Blank) Feedback {
	labels := make([]string, len(missed))
	for i, idx := range missed {
		labels[i] = fmt.Sprintf("#%d: %s", idx+1, blanks[idx].Answer)
	}
	return failure("Wrong! Answers: " + strings.Join(labels, ", "))
}
