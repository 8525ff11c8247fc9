package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/client/backup"
	"github.com/dmitrijs2005/hrmsync/internal/client/client"
	"github.com/dmitrijs2005/hrmsync/internal/client/config"
	"github.com/dmitrijs2005/hrmsync/internal/client/services"
	"github.com/dmitrijs2005/hrmsync/internal/client/store"
	"github.com/dmitrijs2005/hrmsync/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive HR client. The coordinator exists only while a
// session is open.
type App struct {
	config  *config.Config
	logger  logging.Logger
	session services.SessionService
	remote  client.Client
	sink    backup.Sink

	// openCoordinator loads the local store and builds a coordinator for a
	// new session.
	openCoordinator func(ctx context.Context) (*services.Coordinator, error)

	coord    *services.Coordinator
	userName string

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp wires the gateway, the backup sink and the session service. The
// local store is opened on login.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	a := &App{
		config: c,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		now:    time.Now,
	}

	a.remote = client.NewHTTPClient(c.APIURL,
		client.WithSettingsURL(a.settingsURL),
		client.WithHealthTimeout(c.HealthTimeout),
		client.WithRequestTimeout(c.RequestTimeout),
	)
	a.session = services.NewSessionService(a.remote)
	a.openCoordinator = a.openLocal

	sink, err := newSink(ctx, c)
	if err != nil {
		return nil, err
	}
	a.sink = sink

	return a, nil
}

func newSink(ctx context.Context, c *config.Config) (backup.Sink, error) {
	if !c.UseS3() {
		return backup.NewFileSink(c.BackupDir), nil
	}
	s, err := backup.NewS3Sink(ctx, backup.S3Config{
		Bucket:    c.S3Bucket,
		Region:    c.S3Region,
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 backups: %w", err)
	}
	return s, nil
}

func (a *App) openLocal(ctx context.Context) (*services.Coordinator, error) {
	st, err := store.Open(ctx, a.config.DBPath, a.logger)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	snap, err := st.Load(ctx)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load local store: %w", err)
	}
	return services.NewCoordinator(snap, a.remote, st, a.logger,
		services.WithNotifications(services.DefaultNotifications()),
	), nil
}

// settingsURL feeds the gateway with the endpoint saved in settings.
func (a *App) settingsURL() string {
	if a.coord == nil {
		return ""
	}
	return a.coord.Settings().APIURL
}

func (a *App) isLoggedIn() bool {
	return a.coord != nil
}

// Run blocks in the REPL until the user exits and then closes the session.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.coord != nil {
			_ = a.coord.Close()
		}
	}()
	a.Root(ctx)
}
