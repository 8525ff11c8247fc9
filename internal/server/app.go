// Package server wires the HR backend together: Postgres connection and
// migrations, services, and the HTTP API, with signal-driven shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/hrmsync/internal/logging"
	"github.com/dmitrijs2005/hrmsync/internal/server/api"
	"github.com/dmitrijs2005/hrmsync/internal/server/config"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hrmsync/internal/server/services"
)

// seams for tests
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepoManager = func() repomanager.RepositoryManager {
		return repomanager.NewPostgresRepositoryManager()
	}
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *api.Server
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	es := services.NewEmployeeService(db, rm)
	as := services.NewAttendanceService(db, rm)
	ds := services.NewDashboardService(db, rm)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		server: api.NewServer(c.ListenAddr, logger, es, as, ds),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
