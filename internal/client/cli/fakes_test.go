package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/client/backup"
	"github.com/dmitrijs2005/hrmsync/internal/client/config"
	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/services"
	"github.com/dmitrijs2005/hrmsync/internal/client/store"
	"github.com/dmitrijs2005/hrmsync/internal/logging"
)

var fixedNow = time.Date(2026, 2, 27, 14, 5, 0, 0, time.UTC)

type memPersister struct {
	saves  int
	resets int
	closed bool
}

func (p *memPersister) SaveEmployees(context.Context, []models.Employee) error    { p.saves++; return nil }
func (p *memPersister) SaveAttendance(context.Context, []models.Attendance) error { p.saves++; return nil }
func (p *memPersister) SaveLeaves(context.Context, []models.LeaveRequest) error   { p.saves++; return nil }
func (p *memPersister) SaveSettings(context.Context, models.Settings) error       { p.saves++; return nil }
func (p *memPersister) Restore(context.Context, store.Backup) error               { p.saves++; return nil }
func (p *memPersister) Reset(context.Context) error                               { p.resets++; return nil }
func (p *memPersister) Close() error                                              { p.closed = true; return nil }

func newTestCoordinator(p *memPersister) *services.Coordinator {
	n := 0
	return services.NewCoordinator(store.DefaultSnapshot(), nil, p, logging.Nop(),
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		services.WithNotifications(services.DefaultNotifications()),
	)
}

// newTestApp returns a logged-in App reading input and writing to the buffer.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *memPersister) {
	t.Helper()
	var out bytes.Buffer
	p := &memPersister{}
	a := &App{
		config:   &config.Config{},
		logger:   logging.Nop(),
		session:  services.NewSessionService(nil),
		sink:     backup.NewFileSink(t.TempDir()),
		reader:   rdr(input),
		out:      &out,
		now:      func() time.Time { return fixedNow },
		coord:    newTestCoordinator(p),
		userName: "alice",
	}
	return a, &out, p
}

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}
