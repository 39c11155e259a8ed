// Package question contains the trivia data model that the service
// hands out, along with the validation that keeps it well formed.
package question

// Question is a single trivia prompt.  Options are presented in the
// order given.  Answer is optional, but when it is set it must be
// one of the Options.
type Question struct {
	Text    string   `json:"question" yaml:"question"`
	Options []string `json:"options" yaml:"options"`
	Answer  string   `json:"answer,omitempty" yaml:"answer,omitempty"`
}

// Set is the fixed collection of questions served by the process.
// It is built once at startup and never changes afterwards.
type Set struct {
	featured  Question
	questions []Question
}

// File is the on-disk representation of a Set.
type File struct {
	Featured  Question   `json:"featured" yaml:"featured"`
	Questions []Question `json:"questions" yaml:"questions"`
}
