package cmdlets

import (
	"context"
	"errors"
	"fmt"
	nhttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"github.com/gizmo-platform/trivia/pkg/buildinfo"
	"github.com/gizmo-platform/trivia/pkg/config"
	"github.com/gizmo-platform/trivia/pkg/http"
	"github.com/gizmo-platform/trivia/pkg/mdns"
	"github.com/gizmo-platform/trivia/pkg/metrics"
	"github.com/gizmo-platform/trivia/pkg/question"
	"github.com/gizmo-platform/trivia/pkg/ui"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve trivia questions over HTTP",
		Long:  serveCmdLongDocs,
		Run:   serveCmdRun,
	}

	serveCmdLongDocs = `Serve the question set over HTTP.  The builtin questions are served unless a question file is given with --questions or TRIVIA_QUESTIONS.  The listen address comes from --bind, TRIVIA_BIND, or :8080, and --port or PORT replaces just the port.  If the address is already in use the command exits rather than trying another port.`

	serveBind      string
	servePort      string
	serveQuestions string
	serveQR        bool
	serveMDNS      string
)

func init() {
	serveCmd.Flags().StringVar(&serveBind, "bind", "", "Address to listen on (host:port)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on, keeps the host from --bind")
	serveCmd.Flags().StringVar(&serveQuestions, "questions", "", "YAML or JSON file to load questions from")
	serveCmd.Flags().BoolVar(&serveQR, "qr", false, "Print a QR code for the play page on startup")
	serveCmd.Flags().StringVar(&serveMDNS, "mdns", "", "Advertise the service on the local network under this instance name")
	rootCmd.AddCommand(serveCmd)
}

func serveCmdRun(c *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %s\n", err)
		os.Exit(1)
	}
	initLogger("trivia", cfg.LogLevel)
	appLogger.Info("Starting", "version", buildinfo.String())

	if err := applyServeFlags(cfg); err != nil {
		appLogger.Error("Bad flags", "error", err)
		os.Exit(1)
	}

	qs, err := loadQuestions(cfg.QuestionsFile)
	if err != nil {
		appLogger.Error("Could not load questions", "file", cfg.QuestionsFile, "error", err)
		os.Exit(1)
	}
	appLogger.Info("Questions loaded", "count", qs.Len(), "file", cfg.QuestionsFile)

	m := metrics.New(metrics.WithLogger(appLogger))
	w, err := http.NewServer(
		http.WithLogger(appLogger),
		http.WithQuestionSet(qs),
		http.WithMetrics(m),
		http.WithRenderer(ui.New(ui.WithLogger(appLogger))),
	)
	if err != nil {
		appLogger.Error("Error during webserver initialization", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	failed := make(chan error, 1)
	go func() {
		if err := w.Serve(cfg.Bind); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			failed <- err
		}
	}()

	if serveQR {
		url := fmt.Sprintf("http://%s/play", displayHost(cfg))
		fmt.Fprintln(c.OutOrStdout(), url)
		qrterminal.Generate(url, qrterminal.L, c.OutOrStdout())
	}

	if serveMDNS != "" {
		port, _ := strconv.Atoi(cfg.Port())
		md, err := mdns.NewServer(serveMDNS, port)
		if err != nil {
			appLogger.Warn("Could not advertise service", "error", err)
		} else {
			appLogger.Info("Advertising service", "instance", serveMDNS, "type", mdns.ServiceType)
			defer md.Shutdown()
		}
	}

	select {
	case err := <-failed:
		appLogger.Error("Error initializing", "bind", cfg.Bind, "error", err)
		os.Exit(1)
	case <-quit:
	}

	appLogger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := w.Shutdown(ctx); err != nil {
		appLogger.Error("Error during shutdown", "error", err)
		os.Exit(2)
	}
	appLogger.Info("Goodbye!")
}

func applyServeFlags(cfg *config.Config) error {
	if serveBind != "" {
		cfg.Bind = serveBind
	}
	if servePort != "" {
		if err := cfg.SetPort(servePort); err != nil {
			return err
		}
	}
	if serveQuestions != "" {
		cfg.QuestionsFile = serveQuestions
	}
	return cfg.Validate()
}

func loadQuestions(path string) (*question.Set, error) {
	if path == "" {
		return question.Builtin(), nil
	}
	return question.Load(path)
}

func displayHost(cfg *config.Config) string {
	host, _ := os.Hostname()
	if host == "" {
		host = "localhost"
	}
	return host + ":" + cfg.Port()
}
