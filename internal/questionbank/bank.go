package questionbank

import (
	"fmt"
	"slices"
	"sort"
)

// Bank is an ordered, immutable set of questions with precomputed indices.
// A Bank is safe for concurrent reads.
type Bank struct {
	name      string
	questions []Question
	byID      map[string]int
	gapTypes  []GapType
}

// defaultBank is the built-in bank, built by init() from seedQuestions.
var defaultBank *Bank

func init() {
	b, err := New("default", seedQuestions)
	if err != nil {
		panic(fmt.Sprintf("questionbank: invalid seed data: %v", err))
	}
	defaultBank = b
}

// Default returns the built-in marketing-operations maturity questionnaire.
func Default() *Bank {
	return defaultBank
}

// New validates the questions and builds a bank from them.
// The slice is cloned; later changes by the caller do not affect the bank.
func New(name string, questions []Question) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	return buildBank(name, questions), nil
}

// buildBank constructs the indices. Questions must already be valid.
func buildBank(name string, questions []Question) *Bank {
	b := &Bank{
		name:      name,
		questions: make([]Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
	}

	tags := make(map[GapType]bool)
	for i, q := range questions {
		opts := make([]Option, len(q.Options))
		for j, o := range q.Options {
			o.GapTypes = slices.Clone(o.GapTypes)
			opts[j] = o
			for _, t := range o.GapTypes {
				tags[t] = true
			}
		}
		q.Options = opts
		b.questions[i] = q
		b.byID[q.ID] = i
	}

	b.gapTypes = make([]GapType, 0, len(tags))
	for t := range tags {
		b.gapTypes = append(b.gapTypes, t)
	}
	sort.Slice(b.gapTypes, func(i, j int) bool { return b.gapTypes[i] < b.gapTypes[j] })

	return b
}

// Name returns the bank's display name.
func (b *Bank) Name() string {
	return b.name
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// At returns the question at position i.
func (b *Bank) At(i int) Question {
	return b.questions[i]
}

// Questions returns all questions in order.
func (b *Bank) Questions() []Question {
	return slices.Clone(b.questions)
}

// Index returns the position of the question with the given ID, or -1.
func (b *Bank) Index(id string) int {
	i, ok := b.byID[id]
	if !ok {
		return -1
	}
	return i
}

// Question returns a question by ID, or error if not found.
func (b *Bank) Question(id string) (Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return b.questions[i], nil
}

// Option resolves an option of a question. The bool is false when either
// the question or the option does not exist.
func (b *Bank) Option(questionID, optionID string) (Option, bool) {
	i, ok := b.byID[questionID]
	if !ok {
		return Option{}, false
	}
	return b.questions[i].Option(optionID)
}

// GapTypes returns the sorted set of gap types referenced by any option.
func (b *Bank) GapTypes() []GapType {
	return slices.Clone(b.gapTypes)
}
