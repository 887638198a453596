package quiz

import (
	"errors"
	"strings"
	"testing"
)

func catPool() *Pool {
	return BuildPool(RawData{
		{Name: "Animals", Entries: []Entry{{Definition: "A furry pet that meows", Answer: "cat"}}},
	}, nil)
}

func blankPool() *Pool {
	return BuildPool(nil, []MultiBlankRecord{{
		Category: "Scenery",
		Prompt:   "Label the picture",
		Image:    "scene.png",
		Blanks:   []Blank{{X: 10, Y: 10, Answer: "sun"}, {X: 60, Y: 20, Answer: "sky"}},
	}})
}

func mixedPool() *Pool {
	return BuildPool(RawData{
		{Name: "Animals", Entries: []Entry{
			{Definition: "A furry pet that meows", Answer: "cat"},
			{Definition: "A loyal pet that barks", Answer: "dog"},
		}},
		{Name: "Weather", Entries: []Entry{
			{Definition: "Falls from clouds", Answer: "rain"},
			{Definition: "Frozen flakes", Answer: "snow"},
			{Definition: "Moving air", Answer: "wind"},
		}},
	}, nil)
}

func TestScenario_FirstTryCorrect(t *testing.T) {
	s := NewSession(catPool(), WithSeed(1))
	if err := s.SelectCategory("Animals"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}

	cur := s.Current()
	if cur == nil || cur.Question.Prompt != "A furry pet that meows" {
		t.Fatalf("unexpected current question: %+v", cur)
	}

	s.SetInput("Cat!")
	outcome, err := s.Grade()
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if outcome != OutcomeCorrect {
		t.Errorf("outcome = %v, want OutcomeCorrect", outcome)
	}
	if cur.State() != StateAnswered || !cur.WasCorrect {
		t.Errorf("state = %v wasCorrect = %v, want answered/true", cur.State(), cur.WasCorrect)
	}
	st := s.Stats()
	if st.Asked != 1 || st.Correct != 1 {
		t.Errorf("asked/correct = %d/%d, want 1/1", st.Asked, st.Correct)
	}
	if s.Feedback().Tone != ToneSuccess {
		t.Errorf("tone = %q, want success", s.Feedback().Tone)
	}
}

func TestScenario_RetryThenWrong(t *testing.T) {
	s := NewSession(catPool(), WithSeed(1))
	_ = s.SelectCategory("Animals")
	cur := s.Current()

	s.SetInput("dog")
	outcome, err := s.Grade()
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if outcome != OutcomeRetry {
		t.Errorf("outcome = %v, want OutcomeRetry", outcome)
	}
	if cur.State() != StateRetryOffered {
		t.Errorf("state = %v, want retry-offered", cur.State())
	}
	if cur.Input != "" {
		t.Errorf("input = %q, want cleared", cur.Input)
	}
	if st := s.Stats(); st.Asked != 0 || st.Correct != 0 {
		t.Errorf("counters changed on retry: %+v", st)
	}

	s.SetInput("dog")
	outcome, _ = s.Grade()
	if outcome != OutcomeWrong {
		t.Errorf("outcome = %v, want OutcomeWrong", outcome)
	}
	if cur.State() != StateAnswered || cur.WasCorrect {
		t.Errorf("want Answered(false), got %v/%v", cur.State(), cur.WasCorrect)
	}
	st := s.Stats()
	if st.Asked != 1 || st.Correct != 0 {
		t.Errorf("asked/correct = %d/%d, want 1/0", st.Asked, st.Correct)
	}
	if !strings.Contains(s.Feedback().Message, "cat") {
		t.Errorf("feedback %q does not reveal the answer", s.Feedback().Message)
	}
}

func TestScenario_RetryThenCorrect(t *testing.T) {
	s := NewSession(catPool(), WithSeed(1))
	_ = s.SelectCategory(AllCategories)

	s.SetInput("dog")
	_, _ = s.Grade()
	s.SetInput("CAT")
	outcome, _ := s.Grade()

	if outcome != OutcomeCorrect {
		t.Errorf("outcome = %v, want OutcomeCorrect", outcome)
	}
	if st := s.Stats(); st.Asked != 1 || st.Correct != 1 {
		t.Errorf("asked/correct = %d/%d, want 1/1", st.Asked, st.Correct)
	}
}

func TestGrade_EmptyInput(t *testing.T) {
	s := NewSession(catPool(), WithSeed(1))
	_ = s.SelectCategory(AllCategories)

	for _, in := range []string{"", "   ", "\t"} {
		s.SetInput(in)
		_, err := s.Grade()
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Grade(%q) err = %v, want ErrEmptyInput", in, err)
		}
		if s.Current().State() != StateUnanswered {
			t.Errorf("state changed on empty input %q", in)
		}
		if s.Feedback().Message != MsgEnterWord {
			t.Errorf("feedback = %q, want %q", s.Feedback().Message, MsgEnterWord)
		}
	}
	if st := s.Stats(); st.Asked != 0 {
		t.Errorf("asked = %d, want 0", st.Asked)
	}
}

func TestGrade_AlreadyGradedIsNoop(t *testing.T) {
	s := NewSession(catPool(), WithSeed(1))
	_ = s.SelectCategory(AllCategories)

	s.SetInput("cat")
	_, _ = s.Grade()

	for i := 0; i < 3; i++ {
		s.SetInput("dog")
		_, err := s.Grade()
		if !errors.Is(err, ErrAlreadyGraded) {
			t.Fatalf("err = %v, want ErrAlreadyGraded", err)
		}
	}
	st := s.Stats()
	if st.Asked != 1 || st.Correct != 1 {
		t.Errorf("asked/correct = %d/%d, want 1/1", st.Asked, st.Correct)
	}
	if s.Feedback().Message != MsgAlreadyGraded || s.Feedback().Tone != ToneNeutral {
		t.Errorf("feedback = %+v", s.Feedback())
	}
}

func TestGrade_ExactAnswerWithNoise(t *testing.T) {
	s := NewSession(mixedPool(), WithSeed(7))
	_ = s.SelectCategory(AllCategories)

	for i := 0; i < s.Pool().Len(); i++ {
		cur := s.Current()
		s.SetInput("  " + strings.ToUpper(cur.Question.Text.Answer) + "!? ")
		outcome, err := s.Grade()
		if err != nil || outcome != OutcomeCorrect {
			t.Errorf("question %s: outcome=%v err=%v", cur.Question.ID, outcome, err)
		}
		_ = s.Next()
	}
}

func TestScenario_MultiBlank(t *testing.T) {
	s := NewSession(blankPool(), WithSeed(1))
	_ = s.SelectCategory(AllCategories)

	s.SetBlankInput(0, "sun")
	s.SetBlankInput(1, "sky")
	outcome, err := s.Grade()
	if err != nil || outcome != OutcomeCorrect {
		t.Fatalf("outcome=%v err=%v, want correct", outcome, err)
	}
	if s.Feedback().Message != MsgAllBlanks {
		t.Errorf("feedback = %q", s.Feedback().Message)
	}
}

func TestScenario_MultiBlankRetryReportsIndexOnly(t *testing.T) {
	s := NewSession(blankPool(), WithSeed(1))
	_ = s.SelectCategory(AllCategories)
	cur := s.Current()

	s.SetBlankInput(0, "sun")
	s.SetBlankInput(1, "cloud")
	outcome, _ := s.Grade()
	if outcome != OutcomeRetry {
		t.Fatalf("outcome = %v, want OutcomeRetry", outcome)
	}

	msg := s.Feedback().Message
	if !strings.Contains(msg, "#2") {
		t.Errorf("feedback %q does not name blank #2", msg)
	}
	if strings.Contains(msg, "#1") || strings.Contains(msg, "sky") {
		t.Errorf("feedback %q leaks other blanks or the answer", msg)
	}
	if cur.BlankInputs[1] != "cloud" {
		t.Errorf("inputs were cleared: %v", cur.BlankInputs)
	}
	if st := s.Stats(); st.Asked != 0 {
		t.Errorf("asked = %d, want 0", st.Asked)
	}

	outcome, _ = s.Grade()
	if outcome != OutcomeWrong {
		t.Fatalf("outcome = %v, want OutcomeWrong", outcome)
	}
	msg = s.Feedback().Message
	if !strings.Contains(msg, "#2: sky") {
		t.Errorf("final feedback %q does not reveal #2", msg)
	}
	if st := s.Stats(); st.Asked != 1 || st.Correct != 0 {
		t.Errorf("asked/correct = %d/%d, want 1/0", st.Asked, st.Correct)
	}
}

func TestGrade_MultiBlankWithoutBlanks(t *testing.T) {
	p := BuildPool(nil, []MultiBlankRecord{{Prompt: "empty"}})
	s := NewSession(p, WithSeed(1))
	_ = s.SelectCategory(AllCategories)

	_, err := s.Grade()
	if !errors.Is(err, ErrNoBlanks) {
		t.Errorf("err = %v, want ErrNoBlanks", err)
	}
}

func TestReveal_Text(t *testing.T) {
	s := NewSession(catPool(), WithSeed(1))
	_ = s.SelectCategory(AllCategories)
	cur := s.Current()
	s.SetInput("dog")

	if err := s.Reveal(); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if cur.Input != "cat" {
		t.Errorf("input = %q, want answer filled in", cur.Input)
	}
	if cur.State() != StateAnswered || cur.WasCorrect || !cur.Revealed {
		t.Errorf("unexpected attempt after reveal: %+v", cur)
	}
	if st := s.Stats(); st.Asked != 0 || st.Correct != 0 {
		t.Errorf("reveal touched counters: %+v", st)
	}

	if _, err := s.Grade(); !errors.Is(err, ErrAlreadyGraded) {
		t.Errorf("Grade after reveal err = %v, want ErrAlreadyGraded", err)
	}
	if err := s.Reveal(); !errors.Is(err, ErrAlreadyGraded) {
		t.Errorf("second Reveal err = %v, want ErrAlreadyGraded", err)
	}
}

func TestReveal_AfterRetry(t *testing.T) {
	s := NewSession(blankPool(), WithSeed(1))
	_ = s.SelectCategory(AllCategories)
	cur := s.Current()

	s.SetBlankInput(0, "moon")
	_, _ = s.Grade()
	if err := s.Reveal(); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if cur.BlankInputs[0] != "sun" || cur.BlankInputs[1] != "sky" {
		t.Errorf("blanks = %v, want answers filled in", cur.BlankInputs)
	}
	if s.Stats().Asked != 0 {
		t.Error("reveal counted as an attempt")
	}
}

func TestNoCurrentQuestionIsSafe(t *testing.T) {
	s := NewSession(BuildPool(nil, nil))

	s.SetInput("cat")
	s.SetBlankInput(0, "x")
	if _, err := s.Grade(); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("Grade err = %v, want ErrNoQuestion", err)
	}
	if err := s.Reveal(); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("Reveal err = %v, want ErrNoQuestion", err)
	}
	if st := s.Stats(); st.Remaining != 0 || st.Asked != 0 {
		t.Errorf("unexpected stats: %+v", st)
	}
}

func TestSelectCategory_EmptyScope(t *testing.T) {
	s := NewSession(mixedPool(), WithSeed(1))

	err := s.SelectCategory("Nope")
	if !errors.Is(err, ErrEmptyScope) {
		t.Fatalf("err = %v, want ErrEmptyScope", err)
	}
	if s.Current() != nil {
		t.Error("expected no current question")
	}
	if s.Feedback().Message != MsgEmptyScope {
		t.Errorf("feedback = %q", s.Feedback().Message)
	}
	if err := s.Next(); !errors.Is(err, ErrEmptyScope) {
		t.Errorf("Next err = %v, want ErrEmptyScope", err)
	}
}

func TestSelectCategory_ResetsCountersAndPool(t *testing.T) {
	s := NewSession(mixedPool(), WithSeed(3))
	_ = s.SelectCategory(AllCategories)

	s.SetInput(s.Current().Question.Text.Answer)
	_, _ = s.Grade()
	if s.Stats().Asked != 1 {
		t.Fatal("expected one graded attempt")
	}

	if err := s.SelectCategory("Weather"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	st := s.Stats()
	if st.Asked != 0 || st.Correct != 0 {
		t.Errorf("counters not reset: %+v", st)
	}
	if st.Remaining != 3 {
		t.Errorf("Remaining = %d, want 3", st.Remaining)
	}
	if st.FilteredTotal != 3 || st.CategoryLabel != "Weather" {
		t.Errorf("unexpected scope: %+v", st)
	}
	if s.Current().Question.Category != "Weather" {
		t.Errorf("served %q outside the scope", s.Current().Question.Category)
	}
	if !s.Feedback().IsZero() {
		t.Errorf("category change produced feedback %q", s.Feedback().Message)
	}
}

func TestNext_RemainingDecreases(t *testing.T) {
	s := NewSession(mixedPool(), WithSeed(11))
	_ = s.SelectCategory(AllCategories)

	want := 5
	if got := s.Stats().Remaining; got != want {
		t.Fatalf("Remaining = %d, want %d", got, want)
	}
	for i := 0; i < 4; i++ {
		_ = s.Next()
		want--
		if got := s.Stats().Remaining; got != want {
			t.Errorf("after Next %d: Remaining = %d, want %d", i+1, got, want)
		}
	}

	// Exhausted: the next call reshuffles the whole scope.
	_ = s.Next()
	if got := s.Stats().Remaining; got != 5 {
		t.Errorf("after reshuffle Remaining = %d, want 5", got)
	}
}

func TestScenario_ReshuffleAfterExhaustion(t *testing.T) {
	s := NewSession(mixedPool(), WithSeed(5))
	_ = s.SelectCategory("Animals") // serves question 1

	first := s.Current()
	s.SetInput(first.Question.Text.Answer)
	_, _ = s.Grade()

	if err := s.Next(); err != nil { // question 2
		t.Fatalf("Next: %v", err)
	}
	if !s.Feedback().IsZero() {
		t.Errorf("unexpected notice before exhaustion: %q", s.Feedback().Message)
	}
	second := s.Current()
	s.SetInput("wrong")
	_, _ = s.Grade()

	if err := s.Next(); err != nil { // third call: reshuffle
		t.Fatalf("Next: %v", err)
	}
	if s.Feedback().Message != MsgReshuffled {
		t.Errorf("feedback = %q, want reshuffle notice", s.Feedback().Message)
	}

	seen := map[string]bool{s.Current().Question.ID: true}
	attempts := []*Attempt{s.Current()}
	_ = s.Next()
	seen[s.Current().Question.ID] = true
	attempts = append(attempts, s.Current())

	if !seen[first.Question.ID] || !seen[second.Question.ID] || len(seen) != 2 {
		t.Errorf("reshuffled queue = %v, want the same two questions", seen)
	}
	for _, a := range attempts {
		if a.Answered || a.RetryUsed || a.WasCorrect || a.Input != "" {
			t.Errorf("attempt %s not fresh: %+v", a.Question.ID, a)
		}
		if a == first || a == second {
			t.Error("reshuffle reused an old attempt")
		}
	}
	if st := s.Stats(); st.Asked != 1 || st.Correct != 1 {
		t.Errorf("counters did not persist across reshuffle: %+v", st)
	}
}

func TestShuffle_DoesNotMutateFiltered(t *testing.T) {
	s := NewSession(mixedPool(), WithSeed(9))
	_ = s.SelectCategory(AllCategories)

	before := make([]string, len(s.filtered))
	for i, q := range s.filtered {
		before[i] = q.ID
	}
	for i := 0; i < 20; i++ {
		_ = s.Next()
	}
	for i, q := range s.filtered {
		if q.ID != before[i] {
			t.Fatalf("filtered subset reordered at %d: %s != %s", i, q.ID, before[i])
		}
	}
}

func TestShuffle_Uniform(t *testing.T) {
	pool := BuildPool(RawData{{Name: "c", Entries: []Entry{
		{Definition: "a", Answer: "a"},
		{Definition: "b", Answer: "b"},
		{Definition: "c", Answer: "c"},
	}}}, nil)
	s := NewSession(pool, WithSeed(42))

	const rounds = 6000
	firsts := map[string]int{}
	for i := 0; i < rounds; i++ {
		_ = s.SelectCategory(AllCategories)
		firsts[s.Current().Question.ID]++
	}
	for id, n := range firsts {
		// Expect ~2000 each; allow a generous margin.
		if n < 1700 || n > 2300 {
			t.Errorf("question %s served first %d/%d times", id, n, rounds)
		}
	}
	if len(firsts) != 3 {
		t.Errorf("only %d distinct first questions", len(firsts))
	}
}

func TestStats_Summary(t *testing.T) {
	s := NewSession(mixedPool(), WithSeed(1))
	_ = s.SelectCategory(AllCategories)
	if got := s.Stats().Summary(); got != "All · 5 questions" {
		t.Errorf("Summary = %q", got)
	}
	_ = s.SelectCategory("Animals")
	if got := s.Stats().Summary(); got != "Animals · 2 questions" {
		t.Errorf("Summary = %q", got)
	}
}

func TestStats_Accuracy(t *testing.T) {
	if got := (Stats{}).Accuracy(); got != 0 {
		t.Errorf("Accuracy = %v, want 0", got)
	}
	if got := (Stats{Asked: 4, Correct: 3}).Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}

func TestGrade_AnswerWithoutLatinCharacters(t *testing.T) {
	pool := BuildPool(RawData{
		{Name: "Korean", Entries: []Entry{{Definition: "A furry pet that meows", Answer: "고양이"}}},
	}, nil)
	s := NewSession(pool, WithSeed(1))
	_ = s.SelectCategory(AllCategories)

	s.SetInput("고양이")
	outcome, err := s.Grade()
	if err != nil || outcome != OutcomeCorrect {
		t.Fatalf("outcome=%v err=%v, want correct on first attempt", outcome, err)
	}
	if !s.Current().WasCorrect {
		t.Error("expected Answered(true)")
	}
}

func TestGrade_EmptyInputRejectedForNonLatinAnswer(t *testing.T) {
	pool := BuildPool(RawData{
		{Name: "Korean", Entries: []Entry{{Definition: "A furry pet that meows", Answer: "고양이"}}},
	}, nil)
	s := NewSession(pool, WithSeed(1))
	_ = s.SelectCategory(AllCategories)

	s.SetInput("   ")
	if _, err := s.Grade(); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if s.Current().RetryUsed {
		t.Error("empty input must not consume the retry")
	}
}

func TestGrade_BlankWithEmptyAnswer(t *testing.T) {
	pool := BuildPool(nil, []MultiBlankRecord{{
		Prompt: "Label the picture",
		Image:  "scene.png",
		Blanks: []Blank{{X: 10, Y: 10, Answer: "sun"}, {X: 60, Y: 20, Answer: ""}},
	}})
	s := NewSession(pool, WithSeed(1))
	_ = s.SelectCategory(AllCategories)

	s.SetBlankInput(0, "sun")
	outcome, err := s.Grade()
	if err != nil || outcome != OutcomeCorrect {
		t.Fatalf("outcome=%v err=%v, want correct", outcome, err)
	}
	if s.Feedback().Message != MsgAllBlanks {
		t.Errorf("feedback = %q", s.Feedback().Message)
	}
}
