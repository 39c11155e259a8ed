package cmdlets

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gizmo-platform/trivia/pkg/probe"
)

var (
	probeCmd = &cobra.Command{
		Use:   "probe",
		Short: "Wait for a trivia service to become ready",
		Long:  probeCmdLongDocs,
		RunE:  probeCmdRun,
	}

	probeCmdLongDocs = `Poll the health endpoint of a running trivia service, backing off between attempts, until it answers or the timeout passes.  Exits non-zero if the service never became ready, which makes it suitable as a container health check.`

	probeURL     string
	probeTimeout time.Duration
)

func init() {
	probeCmd.Flags().StringVar(&probeURL, "url", "http://localhost:8080", "Base URL of the service")
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", 30*time.Second, "How long to wait in total")
	rootCmd.AddCommand(probeCmd)
}

func probeCmdRun(c *cobra.Command, args []string) error {
	initLogger("probe", "")

	parent := c.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, probeTimeout)
	defer cancel()

	p := probe.New(
		probe.WithLogger(appLogger),
		probe.WithMaxElapsed(probeTimeout),
	)
	if err := p.Wait(ctx, probeURL); err != nil {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), "ready")
	return nil
}
