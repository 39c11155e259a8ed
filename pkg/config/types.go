// Package config contains a convenient structure to pass around
// configuration data.
package config

// Config carries the process level settings for the trivia service.
type Config struct {
	// Bind is the address the service listens on, in host:port
	// form.  An empty host listens on all interfaces.
	Bind string

	// QuestionsFile optionally replaces the builtin question set
	// with one read from disk at startup.
	QuestionsFile string

	// LogLevel is passed to hclog as is.
	LogLevel string
}

const (
	// DefaultBind is used when nothing else is configured.
	DefaultBind = ":8080"

	// DefaultLogLevel is used when LOG_LEVEL is not set.
	DefaultLogLevel = "INFO"
)
