package play

import "github.com/abhisek/vocabquiz/internal/quiz"

// poolLoadedMsg is sent when the word bank load finishes.
type poolLoadedMsg struct {
	Pool *quiz.Pool
	Err  error
}
