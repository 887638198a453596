package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a text answer is graded with no input.
	ErrEmptyInput = errors.New("empty input")

	// ErrEmptyScope is returned when the selected category has no questions.
	ErrEmptyScope = errors.New("no questions in scope")

	// ErrAlreadyGraded is returned when grading or revealing a finished question.
	ErrAlreadyGraded = errors.New("question already graded")

	// ErrNoQuestion is returned when no question is being served, e.g. while
	// the word bank is still loading.
	ErrNoQuestion = errors.New("no current question")

	// ErrNoBlanks is returned when an image question has nothing to fill in.
	ErrNoBlanks = errors.New("image question has no blanks")
)

// DataLoadError indicates the word bank could not be fetched or parsed.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load word bank %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }
