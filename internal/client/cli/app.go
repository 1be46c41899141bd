package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/ngoreports/internal/client/client"
	"github.com/dmitrijs2005/ngoreports/internal/client/config"
	"github.com/dmitrijs2005/ngoreports/internal/client/models"
	"github.com/dmitrijs2005/ngoreports/internal/client/services"
	"github.com/dmitrijs2005/ngoreports/internal/logging"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config    *config.Config
	log       logging.Logger
	uploads   services.UploadService
	reports   services.ReportService
	dashboard services.DashboardService
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp wires the API client and services from c. Logs go to stderr, user
// output to stdout. Job progress is echoed as it arrives only when stdout is
// a terminal.
func NewApp(c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	opts := []services.UploadOption{services.WithPollInterval(c.PollInterval)}
	if isTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, services.WithJobObserver(a.printJob))
	}

	a.uploads = services.NewUploadService(apiClient, log, opts...)
	a.reports = services.NewReportService(apiClient, log)
	a.dashboard = services.NewDashboardService(apiClient, nil, log)
	return a, nil
}

// Run blocks in the REPL until the user leaves or ctx is cancelled. Any
// active polling session is stopped before Run returns.
func (a *App) Run(ctx context.Context) {
	defer a.uploads.Close()

	fmt.Fprintln(a.out, "NGO reports CLI (type 'help' for commands)")
	fmt.Fprintf(a.out, "API: %s\n", a.config.APIBaseURL)
	a.log.Debug(ctx, "starting", "api_url", a.config.APIBaseURL, "poll_interval", a.config.PollInterval)

	runREPL(ctx, a, a.reader)
}

func (a *App) printJob(job models.UploadJob) {
	fmt.Fprintln(a.out, FormatJob(job))
}

// printError writes the user-facing text of err picked by msg.
func (a *App) printError(err error, msg func(error) string) {
	if err == nil {
		return
	}
	fmt.Fprintf(a.out, "error: %s\n", msg(err))
}
