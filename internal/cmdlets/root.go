// Package cmdlets contains the main entrypoints of the various
// functions that the trivia tool can perform.
package cmdlets

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "trivia",
		Short: "Entrypoint for all trivia commands",
		Long:  rootCmdLongDocs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmdLongDocs = `trivia serves a fixed set of trivia questions over HTTP, and provides tools to check question files and probe a running service.`

	appLogger = hclog.NewNullLogger()
)

// Entrypoint is the entrypoint into all cmdlets, it will dispatch to
// the right one.
func Entrypoint() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func initLogger(name, level string) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "INFO"
	}
	appLogger = hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.LevelFromString(level),
	})
	appLogger.Debug("Log level", "level", appLogger.GetLevel())
}
