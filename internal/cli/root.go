// Package cli is the terminal front end of MindDock. Every command talks to
// the REST API through pkg/client.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"minddock/pkg/autosave"
	"minddock/pkg/client"

	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:3000"

type app struct {
	apiURL        string
	natsURL       string
	autosaveDelay time.Duration
	httpClient    *http.Client
	now           func() time.Time
	client        *client.Client
}

type Option func(*app)

func WithHTTPClient(hc *http.Client) Option {
	return func(a *app) { a.httpClient = hc }
}

func WithClock(now func() time.Time) Option {
	return func(a *app) { a.now = now }
}

// NewRootCommand builds the minddock command tree. Defaults come from
// MINDDOCK_API_URL, MINDDOCK_AUTOSAVE_DELAY and NATS_URL.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{
		apiURL:        getEnv("MINDDOCK_API_URL", defaultAPIURL),
		natsURL:       getEnv("NATS_URL", ""),
		autosaveDelay: autosave.DefaultDelay,
		now:           time.Now,
	}
	if raw := os.Getenv("MINDDOCK_AUTOSAVE_DELAY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			a.autosaveDelay = d
		}
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "minddock",
		Short:         "MindDock terminal client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var copts []client.Option
			if a.httpClient != nil {
				copts = append(copts, client.WithHTTPClient(a.httpClient))
			}
			a.client = client.New(a.apiURL, copts...)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api", a.apiURL, "MindDock API base URL")
	root.PersistentFlags().DurationVar(&a.autosaveDelay, "autosave-delay", a.autosaveDelay, "Quiet period before a whiteboard is saved")

	root.AddCommand(
		pingCommand(a),
		captureCommand(a),
		tasksCommand(a),
		notesCommand(a),
		logsCommand(a),
		foldersCommand(a),
		whiteboardsCommand(a),
		dashboardCommand(a),
		activityCommand(a),
	)
	return root
}

func (a *app) today() string {
	return a.now().Format("2006-01-02")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func pingCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("backend unreachable at %s: %w", a.client.BaseURL(), err)
			}
			ok.Fprintf(cmd.OutOrStdout(), "backend reachable at %s\n", a.client.BaseURL())
			return nil
		},
	}
}

// Execute runs the command tree and reports a failure on stderr.
func Execute(ctx context.Context, opts ...Option) int {
	root := NewRootCommand(opts...)
	if err := root.ExecuteContext(ctx); err != nil {
		fail.Fprintf(root.ErrOrStderr(), "error: %s\n", describeErr(err))
		return 1
	}
	return 0
}
