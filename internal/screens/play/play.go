// Package play implements the quiz screen: it serves questions from a
// quiz.Session, collects typed answers and shows feedback and stats.
package play

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/vocabquiz/internal/quiz"
	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screen"
	"github.com/abhisek/vocabquiz/internal/screens/categories"
	"github.com/abhisek/vocabquiz/internal/screens/summary"
	"github.com/abhisek/vocabquiz/internal/ui/components"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
)

// Loader fetches and builds the question pool.
type Loader func(ctx context.Context) (*quiz.Pool, error)

// PlayScreen implements screen.Screen for the quiz.
type PlayScreen struct {
	load        Loader
	loadStarted bool
	loadErr     error

	session   *quiz.Session
	opts      []quiz.Option
	log       *zap.Logger
	sessionID string
	started   time.Time
	now       func() time.Time

	served *quiz.Attempt
	answer components.TextInput
	blanks []components.TextInput
	focus  int
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.ScoreProvider = (*PlayScreen)(nil)

// New creates the quiz screen. opts are passed to quiz.NewSession once the
// pool arrives. A nil logger disables logging.
func New(load Loader, log *zap.Logger, opts ...quiz.Option) *PlayScreen {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &PlayScreen{
		load:      load,
		opts:      opts,
		log:       log.With(zap.String("session_id", id)),
		sessionID: id,
		now:       time.Now,
		answer:    components.NewTextInput("Type the word...", 24),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(s.startLoad(), s.answer.Init())
}

func (s *PlayScreen) Title() string {
	return "Vocabulary Quiz"
}

// SessionID identifies this run in the logs.
func (s *PlayScreen) SessionID() string {
	return s.sessionID
}

// Session returns the underlying quiz session, nil until the pool is loaded.
func (s *PlayScreen) Session() *quiz.Session {
	return s.session
}

func (s *PlayScreen) Score() *layout.Score {
	if s.session == nil {
		return nil
	}
	st := s.session.Stats()
	return &layout.Score{Correct: st.Correct, Asked: st.Asked}
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.session == nil {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+N", Description: "Next"},
		{Key: "Ctrl+R", Description: "Reveal"},
	}
	if len(s.blanks) > 1 {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Next blank"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+K", Description: "Category"},
		layout.KeyHint{Key: "Ctrl+S", Description: "Score"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// startLoad runs the loader at most once per screen.
func (s *PlayScreen) startLoad() tea.Cmd {
	if s.loadStarted || s.load == nil {
		return nil
	}
	s.loadStarted = true
	load := s.load
	return func() tea.Msg {
		pool, err := load(context.Background())
		return poolLoadedMsg{Pool: pool, Err: err}
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case poolLoadedMsg:
		return s.handleLoaded(msg)

	case categories.SelectedMsg:
		return s.handleCategory(msg.Key)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *PlayScreen) handleLoaded(msg poolLoadedMsg) (screen.Screen, tea.Cmd) {
	if s.session != nil {
		return s, nil
	}
	if msg.Err != nil {
		s.loadErr = msg.Err
		s.log.Error("word bank load failed", zap.Error(msg.Err))
		return s, nil
	}

	s.session = quiz.NewSession(msg.Pool, s.opts...)
	s.log.Info("word bank loaded",
		zap.Int("questions", msg.Pool.Len()),
		zap.Strings("categories", msg.Pool.Categories()))

	return s.handleCategory(quiz.AllCategories)
}

func (s *PlayScreen) handleCategory(key string) (screen.Screen, tea.Cmd) {
	if s.session == nil {
		return s, nil
	}
	err := s.session.SelectCategory(key)
	s.started = s.now()
	s.log.Info("category selected",
		zap.String("category", key),
		zap.Int("questions", s.session.Stats().FilteredTotal),
		zap.Error(err))
	return s, s.syncServed()
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+k":
		if s.session == nil {
			return s, nil
		}
		chooser := categories.New(s.session.Pool(), s.session.Category())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: chooser} }

	case "ctrl+s":
		if s.session == nil {
			return s, nil
		}
		sum := summary.New(s.session.Stats(), s.now().Sub(s.started))
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: sum} }

	case "ctrl+n":
		if s.session == nil {
			return s, nil
		}
		if err := s.session.Next(); err != nil {
			s.log.Warn("next question", zap.Error(err))
		}
		return s, s.syncServed()

	case "ctrl+r":
		if s.session == nil {
			return s, nil
		}
		if err := s.session.Reveal(); err == nil {
			s.log.Info("answer revealed", zap.String("question", s.served.Question.ID))
		}
		s.pullInputs()
		return s, nil

	case "tab":
		return s, s.moveFocus(1)

	case "shift+tab":
		return s, s.moveFocus(-1)

	case "enter":
		return s.grade()
	}

	return s.forwardToInput(msg)
}

func (s *PlayScreen) grade() (screen.Screen, tea.Cmd) {
	if s.session == nil {
		return s, nil
	}
	if s.served != nil {
		s.pushInputs()
	}

	outcome, err := s.session.Grade()
	switch {
	case errors.Is(err, quiz.ErrEmptyInput), errors.Is(err, quiz.ErrAlreadyGraded):
		return s, nil
	case err != nil:
		s.log.Warn("grade failed", zap.Error(err))
		return s, nil
	}

	st := s.session.Stats()
	s.log.Info("answer graded",
		zap.String("question", s.served.Question.ID),
		zap.String("outcome", outcomeName(outcome)),
		zap.Int("asked", st.Asked),
		zap.Int("correct", st.Correct))

	s.pullInputs()
	s.markBlanks()
	return s, nil
}

func outcomeName(o quiz.Outcome) string {
	switch o {
	case quiz.OutcomeCorrect:
		return "correct"
	case quiz.OutcomeRetry:
		return "retry"
	default:
		return "wrong"
	}
}

// syncServed rebuilds the inputs when a different attempt is being served.
func (s *PlayScreen) syncServed() tea.Cmd {
	cur := s.session.Current()
	if cur == s.served {
		return nil
	}
	s.served = cur
	s.focus = 0
	s.answer.SetValue("")
	s.answer.ClearMark()
	s.blanks = nil

	if cur == nil {
		return nil
	}
	if cur.Question.Kind == quiz.KindMultiBlank {
		for i, b := range cur.Question.MultiBlank.Blanks {
			in := components.NewTextInput(blankPlaceholder(i), blankWidth(b.Width))
			if i > 0 {
				in.Blur()
			}
			s.blanks = append(s.blanks, in)
		}
		if len(s.blanks) > 0 {
			return s.blanks[0].Focus()
		}
		return nil
	}
	return s.answer.Focus()
}

// pushInputs copies the typed values into the session.
func (s *PlayScreen) pushInputs() {
	if s.served.Question.Kind == quiz.KindMultiBlank {
		for i, in := range s.blanks {
			s.session.SetBlankInput(i, in.Value())
		}
		return
	}
	s.session.SetInput(s.answer.Value())
}

// pullInputs copies the attempt's inputs back, which clears a wrong text
// answer before its retry and shows revealed answers.
func (s *PlayScreen) pullInputs() {
	cur := s.session.Current()
	if cur == nil {
		return
	}
	if cur.Question.Kind == quiz.KindMultiBlank {
		for i := range s.blanks {
			if i < len(cur.BlankInputs) {
				s.blanks[i].SetValue(cur.BlankInputs[i])
			}
		}
		return
	}
	s.answer.SetValue(cur.Input)
}

// markBlanks shows a check or cross next to every blank.
func (s *PlayScreen) markBlanks() {
	cur := s.session.Current()
	if cur == nil || cur.Question.Kind != quiz.KindMultiBlank {
		return
	}
	for i, b := range cur.Question.MultiBlank.Blanks {
		if i < len(s.blanks) {
			s.blanks[i].Mark(quiz.Matches(cur.BlankInputs[i], b.Answer))
		}
	}
}

func (s *PlayScreen) moveFocus(delta int) tea.Cmd {
	if len(s.blanks) < 2 {
		return nil
	}
	s.blanks[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.blanks)) % len(s.blanks)
	return s.blanks[s.focus].Focus()
}

func (s *PlayScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.served == nil || s.served.Answered {
		return s, nil
	}
	var cmd tea.Cmd
	if s.served.Question.Kind == quiz.KindMultiBlank {
		if len(s.blanks) == 0 {
			return s, nil
		}
		s.blanks[s.focus], cmd = s.blanks[s.focus].Update(msg)
		return s, cmd
	}
	s.answer, cmd = s.answer.Update(msg)
	return s, cmd
}
