package question

// NewSet validates the provided questions and returns a Set that
// owns its own copy of them.
func NewSet(featured Question, questions []Question) (*Set, error) {
	if err := Validate(featured, questions); err != nil {
		return nil, err
	}

	s := &Set{
		featured:  featured.clone(),
		questions: make([]Question, len(questions)),
	}
	for i, q := range questions {
		s.questions[i] = q.clone()
	}
	return s, nil
}

// Featured returns the single question served as the quiz item.
func (s *Set) Featured() Question {
	return s.featured.clone()
}

// Questions returns every question in order.
func (s *Set) Questions() []Question {
	out := make([]Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.clone()
	}
	return out
}

// Len is the number of questions in the list.
func (s *Set) Len() int {
	return len(s.questions)
}

// File converts the set back into its serializable form.
func (s *Set) File() File {
	return File{
		Featured:  s.Featured(),
		Questions: s.Questions(),
	}
}

func (q Question) clone() Question {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}

// HasAnswer reports if the question carries its correct choice.
func (q Question) HasAnswer() bool {
	return q.Answer != ""
}
