package diagnosis

// Answer is one question/option pair.
type Answer struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

// AnswerMap maps question IDs to chosen option IDs. Iteration follows the
// order in which questions were first answered; answering a question again
// replaces its option in place. The zero value is ready to use.
type AnswerMap struct {
	order      []string
	byQuestion map[string]string
}

// NewAnswerMap builds an answer map from pairs, in order. Later pairs for
// the same question overwrite earlier ones.
func NewAnswerMap(pairs ...Answer) *AnswerMap {
	m := &AnswerMap{}
	for _, p := range pairs {
		m.Set(p.QuestionID, p.OptionID)
	}
	return m
}

// Set records the option chosen for a question.
func (m *AnswerMap) Set(questionID, optionID string) {
	if m.byQuestion == nil {
		m.byQuestion = make(map[string]string)
	}
	if _, exists := m.byQuestion[questionID]; !exists {
		m.order = append(m.order, questionID)
	}
	m.byQuestion[questionID] = optionID
}

// Get returns the option chosen for a question.
func (m *AnswerMap) Get(questionID string) (string, bool) {
	if m == nil {
		return "", false
	}
	id, ok := m.byQuestion[questionID]
	return id, ok
}

// Len returns the number of answered questions.
func (m *AnswerMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Each calls fn for every answer in insertion order.
func (m *AnswerMap) Each(fn func(questionID, optionID string)) {
	if m == nil {
		return
	}
	for _, q := range m.order {
		fn(q, m.byQuestion[q])
	}
}

// Pairs returns the answers in insertion order.
func (m *AnswerMap) Pairs() []Answer {
	out := make([]Answer, 0, m.Len())
	m.Each(func(q, o string) {
		out = append(out, Answer{QuestionID: q, OptionID: o})
	})
	return out
}

// Clone returns an independent copy.
func (m *AnswerMap) Clone() *AnswerMap {
	return NewAnswerMap(m.Pairs()...)
}
