package quiz

import "math/rand/v2"

// Session is the quiz controller. It owns the filtered subset, the shuffled
// queue, the served attempt and the score counters. All methods are
// synchronous; a Session must not be shared across goroutines.
type Session struct {
	pool     *Pool
	filtered []*Question
	queue    []*Attempt
	current  *Attempt

	category string
	asked    int
	correct  int

	feedback Feedback
	rng      *rand.Rand
}

// Option configures a Session.
type Option func(*Session)

// WithSeed makes shuffles reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand uses r for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// NewSession creates a session over pool. No question is served until
// SelectCategory is called.
func NewSession(pool *Pool, opts ...Option) *Session {
	s := &Session{
		pool:     pool,
		category: AllCategories,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Pool returns the full question pool.
func (s *Session) Pool() *Pool {
	return s.pool
}

// Category returns the selected category key.
func (s *Session) Category() string {
	return s.category
}

// Current returns the attempt being served, or nil.
func (s *Session) Current() *Attempt {
	return s.current
}

// Feedback returns the message produced by the last action.
func (s *Session) Feedback() Feedback {
	return s.feedback
}

// QueueLen returns the number of attempts still waiting behind the current one.
func (s *Session) QueueLen() int {
	return len(s.queue)
}

// SelectCategory scopes the session to key (AllCategories or an exact
// label), resets the counters, builds a fresh shuffled queue and serves its
// first question without a reshuffle notice.
func (s *Session) SelectCategory(key string) error {
	s.category = key
	s.filtered = s.pool.Filter(key)
	s.asked = 0
	s.correct = 0
	s.queue = s.freshQueue()
	s.current = nil
	return s.next(true)
}

// Next serves the front of the queue. When the queue is exhausted the whole
// filtered subset is reshuffled into a new queue of fresh attempts.
func (s *Session) Next() error {
	return s.next(false)
}

func (s *Session) next(silent bool) error {
	s.feedback = Feedback{}
	if len(s.queue) == 0 {
		if len(s.filtered) == 0 {
			s.current = nil
			s.feedback = failure(MsgEmptyScope)
			return ErrEmptyScope
		}
		s.queue = s.freshQueue()
		if !silent {
			s.feedback = neutral(MsgReshuffled)
		}
	}
	s.current = s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return nil
}

// freshQueue returns fresh attempts for the filtered subset in a uniformly
// random order. The filtered slice itself is left untouched.
func (s *Session) freshQueue() []*Attempt {
	queue := make([]*Attempt, len(s.filtered))
	for i, q := range s.filtered {
		queue[i] = newAttempt(q)
	}
	for i := len(queue) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		queue[i], queue[j] = queue[j], queue[i]
	}
	return queue
}

// SetInput records the typed answer of the current text question.
func (s *Session) SetInput(text string) {
	if s.current == nil || s.current.Answered {
		return
	}
	s.current.Input = text
}

// SetBlankInput records the typed answer for blank i (0-based) of the
// current image question. Out-of-range indices are ignored.
func (s *Session) SetBlankInput(i int, text string) {
	if s.current == nil || s.current.Answered {
		return
	}
	if i < 0 || i >= len(s.current.BlankInputs) {
		return
	}
	s.current.BlankInputs[i] = text
}

// Grade grades the current attempt against its recorded input. asked is
// incremented on every terminal grading and correct on every correct one.
func (s *Session) Grade() (Outcome, error) {
	if s.current == nil {
		s.feedback = neutral(MsgNothingServing)
		return 0, ErrNoQuestion
	}

	outcome, fb, err := s.current.grade()
	s.feedback = fb
	if err != nil {
		return 0, err
	}

	switch outcome {
	case OutcomeCorrect:
		s.asked++
		s.correct++
	case OutcomeWrong:
		s.asked++
	}
	return outcome, nil
}

// Reveal concedes the current question: the answers are filled in and the
// attempt becomes Answered(false). Counters are not touched.
func (s *Session) Reveal() error {
	if s.current == nil {
		s.feedback = neutral(MsgNothingServing)
		return ErrNoQuestion
	}
	fb, err := s.current.reveal()
	s.feedback = fb
	return err
}
