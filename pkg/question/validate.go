package question

import (
	"fmt"
	"strings"
)

// Issue is one problem found while validating questions.
type Issue struct {
	Field   string
	Message string
}

// ValidationError collects every Issue found in a set of questions.
type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks the featured question and the question list,
// returning a *ValidationError listing everything wrong with them.
func Validate(featured Question, questions []Question) error {
	c := &issueCollector{}
	validateQuestion(c, "featured", featured)

	if len(questions) == 0 {
		c.add("questions", "must include at least one entry")
	}
	for i, q := range questions {
		validateQuestion(c, fmt.Sprintf("questions[%d]", i), q)
	}
	return c.result()
}

func validateQuestion(c *issueCollector, prefix string, q Question) {
	if strings.TrimSpace(q.Text) == "" {
		c.add(prefix+".question", "is required")
	}
	if len(q.Options) < 2 {
		c.add(prefix+".options", "must include at least two entries")
	}

	seen := make(map[string]struct{}, len(q.Options))
	for i, opt := range q.Options {
		field := fmt.Sprintf("%s.options[%d]", prefix, i)
		if strings.TrimSpace(opt) == "" {
			c.add(field, "must not be empty")
			continue
		}
		if _, dup := seen[opt]; dup {
			c.add(field, fmt.Sprintf("duplicate option %q", opt))
		}
		seen[opt] = struct{}{}
	}

	if q.HasAnswer() {
		if _, ok := seen[q.Answer]; !ok {
			c.add(prefix+".answer", fmt.Sprintf("%q is not one of the options", q.Answer))
		}
	}
}
