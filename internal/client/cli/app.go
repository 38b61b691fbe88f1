// internal/client/cli/app.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"evently-service/internal/client/api"
	"evently-service/internal/client/config"
	"evently-service/internal/client/session"
	"evently-service/internal/client/storage"
)

// App is the interactive CLI. It owns the session store; protected commands
// pass through the guard before touching the server.
type App struct {
	cfg    *config.Config
	api    *api.Client
	store  *session.Store
	guard  *session.Guard
	repo   *storage.SQLiteRepository
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	repo, err := storage.NewSQLiteRepository(context.Background(), cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing client storage: %w", err)
	}

	store := session.NewStore(repo)

	return &App{
		cfg:    cfg,
		api:    api.NewClient(cfg.ServerAddr),
		store:  store,
		guard:  session.NewGuard(store),
		repo:   repo,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run hydrates the session in the background and serves commands until exit.
func (a *App) Run(ctx context.Context) error {
	defer a.repo.Close()

	go func() {
		if err := a.store.Hydrate(ctx); err != nil {
			fmt.Fprintf(a.out, "warning: could not restore session: %v\n", err)
		}
	}()

	fmt.Fprintln(a.out, "evently client, type 'help' for commands")

	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}

		cmd := strings.TrimSpace(line)
		switch cmd {
		case "":
			continue
		case "help":
			a.printHelp()
		case "login":
			a.cmdLogin(ctx)
		case "logout":
			a.cmdLogout(ctx)
		case "whoami":
			a.cmdWhoami(ctx)
		case "events":
			a.cmdEvents(ctx)
		case "registrations":
			a.cmdRegistrations(ctx)
		case "exit", "quit":
			return nil
		default:
			fmt.Fprintf(a.out, "unknown command %q, type 'help'\n", cmd)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `commands:
  login          log in with email or username
  logout         clear the stored session
  whoami         show the logged-in account
  events         list events
  registrations  list your event registrations
  exit           quit`)
}
