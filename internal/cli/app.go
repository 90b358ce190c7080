// Package cli is the interactive shell of the BeerVault client. It only
// dispatches intents to the coordinator and prints snapshots; all state lives
// behind the coordinator.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"beervault/internal/config"
	"beervault/internal/logging"
	"beervault/internal/seed"
	"beervault/internal/service"
	"beervault/internal/store"
	"beervault/internal/store/localstore"
)

// App wires the configuration, the selected backend and the coordinator
// behind the REPL commands.
type App struct {
	config *config.Config
	coord  *service.Coordinator
	log    logging.Logger
	reader *bufio.Reader
	db     *sql.DB
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	docs, db, err := localstore.Open(ctx, c.DataDir)
	if err != nil {
		return nil, err
	}

	demo := store.Seed{Entries: seed.Entries(), Accounts: seed.Accounts()}
	backend, err := store.Open(ctx, c, docs, demo, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	coord := service.NewCoordinator(backend, docs, log)
	if err := coord.Start(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config: c,
		coord:  coord,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		db:     db,
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("Welcome to BeerVault (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the local document database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.coord.State().Session() != nil
}

func (a *App) status() string {
	if sess := a.coord.State().Session(); sess != nil {
		return fmt.Sprintf("(%s %s)", sess.AvatarToken, sess.Username)
	}
	return ""
}
