package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pranayk/reflections/internal/client/api"
	"github.com/pranayk/reflections/internal/client/config"
	"github.com/pranayk/reflections/internal/client/services"
	"github.com/pranayk/reflections/internal/client/session"
	"github.com/pranayk/reflections/internal/client/store"
	"github.com/pranayk/reflections/internal/logging"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	guard       *session.Guard
	client      api.Client
	auth        services.AuthService
	reflections services.ReflectionService
	contact     services.ContactService
	dashboard   services.DashboardService
	userName    string
	Mode        Mode
	reader      *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	client, err := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	guard := session.NewGuard()
	public := store.New()
	admin := store.New()

	return &App{
		config:      c,
		log:         log,
		guard:       guard,
		client:      client,
		auth:        services.NewAuthService(client, guard, admin, log),
		reflections: services.NewReflectionService(client, guard, public, admin, log),
		contact:     services.NewContactService(client, guard, log),
		dashboard:   services.NewDashboardService(client, guard, log),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.guard.LoggedIn()
}

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = "admin "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run verifies any session carried over from a previous run, starts the
// connectivity watcher and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)

	printlnFn("Reflections CLI (type 'help' for commands)")

	if a.auth.VerifyStartup(ctx) {
		printlnFn("Restored admin session")
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// StartOnlineStatusWatcher periodically probes the server and flips the
// connectivity mode shown in the prompt. Only transport failures count as
// offline; a reachable server that rejects the session is still online.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			_, err := a.client.Verify(pctx)
			cancel()

			if errors.Is(err, api.ErrUnavailable) {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
