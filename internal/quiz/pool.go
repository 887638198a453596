package quiz

import "fmt"

// AllCategories is the category key that disables filtering.
const AllCategories = "ALL"

// DefaultImageCategory labels multi-blank records that carry no category.
const DefaultImageCategory = "Images"

// RawData is the word bank as loaded from a source: categories in source
// order, each with its definition/answer entries in source order.
type RawData []CategoryData

// CategoryData is one category of the word bank.
type CategoryData struct {
	Name    string
	Entries []Entry
}

// Entry is a single definition and its expected answer.
type Entry struct {
	Definition string
	Answer     string
}

// MultiBlankRecord describes a pre-built image question.
type MultiBlankRecord struct {
	Category string
	Prompt   string
	Image    string
	Blanks   []Blank
}

// Pool is the full, immutable question set of a load.
type Pool struct {
	questions  []*Question
	counts     map[string]int
	categories []string
}

// BuildPool flattens raw category data and multi-blank records into a
// single ordered pool. Entries with an empty definition or answer are
// skipped but still consume their index, so ids stay tied to source
// position.
func BuildPool(raw RawData, extras []MultiBlankRecord) *Pool {
	var questions []*Question
	for catIdx, cat := range raw {
		for idx, e := range cat.Entries {
			if e.Definition == "" || e.Answer == "" {
				continue
			}
			questions = append(questions, &Question{
				ID:       fmt.Sprintf("%d-%d", catIdx, idx),
				Kind:     KindText,
				Category: cat.Name,
				Prompt:   e.Definition,
				Text:     &TextBody{Answer: e.Answer},
			})
		}
	}

	for idx, rec := range extras {
		category := rec.Category
		if category == "" {
			category = DefaultImageCategory
		}
		blanks := make([]Blank, len(rec.Blanks))
		copy(blanks, rec.Blanks)
		questions = append(questions, &Question{
			ID:       fmt.Sprintf("image-%d", idx),
			Kind:     KindMultiBlank,
			Category: category,
			Prompt:   rec.Prompt,
			MultiBlank: &MultiBlankBody{
				Image:  rec.Image,
				Blanks: blanks,
			},
		})
	}

	p := &Pool{
		questions: questions,
		counts:    make(map[string]int),
	}
	for _, q := range questions {
		if _, seen := p.counts[q.Category]; !seen {
			p.categories = append(p.categories, q.Category)
		}
		p.counts[q.Category]++
	}
	return p
}

// Len returns the number of questions in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.questions)
}

// Questions returns the pool in build order. The slice is a copy.
func (p *Pool) Questions() []*Question {
	if p == nil {
		return nil
	}
	out := make([]*Question, len(p.questions))
	copy(out, p.questions)
	return out
}

// Categories returns the distinct category labels in first-seen order.
func (p *Pool) Categories() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.categories))
	copy(out, p.categories)
	return out
}

// Counts returns the number of questions per category label.
func (p *Pool) Counts() map[string]int {
	out := make(map[string]int)
	if p == nil {
		return out
	}
	for k, v := range p.counts {
		out[k] = v
	}
	return out
}

// Count returns the size of a category scope; AllCategories yields the
// full pool size.
func (p *Pool) Count(key string) int {
	if key == AllCategories {
		return p.Len()
	}
	if p == nil {
		return 0
	}
	return p.counts[key]
}

// Filter returns the questions in scope for key as a new slice.
func (p *Pool) Filter(key string) []*Question {
	if p == nil {
		return nil
	}
	if key == AllCategories {
		return p.Questions()
	}
	var out []*Question
	for _, q := range p.questions {
		if q.Category == key {
			out = append(out, q)
		}
	}
	return out
}
