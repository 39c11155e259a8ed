package question

// Builtin returns the question set compiled into the binary.  This is
// what gets served when no question file is configured.
func Builtin() *Set {
	s, err := NewSet(builtinFeatured, builtinQuestions)
	if err != nil {
		// The literals below are fixed, so this is a programming
		// error rather than something an operator can fix.
		panic(err)
	}
	return s
}

var (
	builtinFeatured = Question{
		Text:    "What is the capital of Japan?",
		Options: []string{"Tokyo", "Beijing", "Seoul", "Bangkok"},
	}

	builtinQuestions = []Question{
		{
			Text:    "What is the capital of France?",
			Options: []string{"Paris", "Berlin", "Madrid", "Rome"},
			Answer:  "Paris",
		},
		{
			Text:    "What is 2 + 2?",
			Options: []string{"3", "4", "5"},
			Answer:  "4",
		},
		{
			Text:    "Who wrote '1984'?",
			Options: []string{"George Orwell", "Mark Twain", "J.K. Rowling", "Ernest Hemingway"},
			Answer:  "George Orwell",
		},
	}
)
