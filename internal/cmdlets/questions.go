package cmdlets

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gizmo-platform/trivia/pkg/question"
)

var (
	questionsCmd = &cobra.Command{
		Use:   "questions",
		Short: "Inspect and validate question sets",
	}

	questionsCheckCmd = &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a question file",
		Long:  questionsCheckCmdLongDocs,
		Args:  cobra.ExactArgs(1),
		RunE:  questionsCheckCmdRun,
	}

	questionsCheckCmdLongDocs = `Validate a YAML or JSON question file without starting the server.  Every problem found is listed, not just the first one.`

	questionsDumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the question set that would be served",
		RunE:  questionsDumpCmdRun,
	}

	questionsDumpFile string
)

func init() {
	questionsDumpCmd.Flags().StringVar(&questionsDumpFile, "questions", "", "Question file to dump instead of the builtin set")
	questionsCmd.AddCommand(questionsCheckCmd)
	questionsCmd.AddCommand(questionsDumpCmd)
	rootCmd.AddCommand(questionsCmd)
}

func questionsCheckCmdRun(c *cobra.Command, args []string) error {
	qs, err := question.Load(args[0])
	var verr *question.ValidationError
	if errors.As(err, &verr) {
		for _, issue := range verr.Issues {
			fmt.Fprintf(c.OutOrStdout(), "%s: %s\n", issue.Field, issue.Message)
		}
		return fmt.Errorf("%d problem(s) found in %s", len(verr.Issues), args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.OutOrStdout(), "%s: ok, %d questions\n", args[0], qs.Len())
	return nil
}

func questionsDumpCmdRun(c *cobra.Command, args []string) error {
	qs, err := loadQuestions(questionsDumpFile)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(c.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(qs.File())
}
