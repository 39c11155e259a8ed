package cmdlets

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gizmo-platform/trivia/pkg/buildinfo"
)

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run:   versionCmdRun,
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

func versionCmdRun(c *cobra.Command, args []string) {
	fmt.Fprintln(c.OutOrStdout(), "Trivia Question Service")
	fmt.Fprintf(c.OutOrStdout(), "Version: %s\n", buildinfo.Version)
	fmt.Fprintf(c.OutOrStdout(), "Commit: %s\n", buildinfo.Commit)
	fmt.Fprintf(c.OutOrStdout(), "Built: %s\n", buildinfo.BuildDate)
}
