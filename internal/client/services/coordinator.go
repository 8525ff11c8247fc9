// Package services contains the client-side application services. The
// Coordinator owns the in-memory collections, persists every change through
// the local store and mirrors employee and attendance changes to the backend
// when it is reachable.
package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/client/client"
	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/store"
	"github.com/dmitrijs2005/hrmsync/internal/logging"
	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateAttendance = errors.New("attendance for this employee and date already exists")
)

// Persister is the write side of the local store.
type Persister interface {
	SaveEmployees(ctx context.Context, v []models.Employee) error
	SaveAttendance(ctx context.Context, v []models.Attendance) error
	SaveLeaves(ctx context.Context, v []models.LeaveRequest) error
	SaveSettings(ctx context.Context, v models.Settings) error
	Restore(ctx context.Context, b store.Backup) error
	Reset(ctx context.Context) error
	Close() error
}

var _ Persister = (*store.Store)(nil)

type Coordinator struct {
	mu sync.Mutex

	remote    client.Client
	persister Persister
	logger    logging.Logger

	now   func() time.Time
	intn  func(n int) int
	newID func() string

	employees     []models.Employee
	attendance    []models.Attendance
	leaves        []models.LeaveRequest
	settings      models.Settings
	notifications []models.Notification
	lastNoticeID  int64

	status  models.ConnectivityStatus
	stats   *models.DashboardStats
	loading models.Loading
}

type Option func(*Coordinator)

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithRand replaces the source used to generate employee codes.
func WithRand(intn func(n int) int) Option {
	return func(c *Coordinator) { c.intn = intn }
}

// WithIDGenerator replaces the generator of attendance and leave ids.
func WithIDGenerator(fn func() string) Option {
	return func(c *Coordinator) { c.newID = fn }
}

// WithNotifications seeds the session notification list.
func WithNotifications(n []models.Notification) Option {
	return func(c *Coordinator) {
		c.notifications = clone(n)
		for _, x := range n {
			c.lastNoticeID = max(c.lastNoticeID, x.ID)
		}
	}
}

func NewCoordinator(snapshot store.Snapshot, remote client.Client, persister Persister, logger logging.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = logging.Nop()
	}
	c := &Coordinator{
		remote:     remote,
		persister:  persister,
		logger:     logger,
		now:        time.Now,
		intn:       rand.IntN,
		newID:      newTimeOrderedID,
		employees:  clone(snapshot.Employees),
		attendance: clone(snapshot.Attendance),
		leaves:     clone(snapshot.LeaveRequests),
		settings:   snapshot.Settings,
		status:     models.StatusIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newTimeOrderedID returns a UUIDv7, falling back to a random UUID.
func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Start probes the backend when an endpoint is configured. Without one the
// coordinator stays idle and works against the local store only.
func (c *Coordinator) Start(ctx context.Context) models.ConnectivityStatus {
	if c.remote == nil || !c.remote.Configured() {
		return c.Status()
	}
	return c.Resync(ctx)
}

// Resync runs a health check and, when it succeeds, hydrates employees,
// attendance and dashboard stats concurrently.
func (c *Coordinator) Resync(ctx context.Context) models.ConnectivityStatus {
	c.setStatus(models.StatusChecking)

	if c.remote == nil || !c.remote.HealthCheck(ctx) {
		c.setStatus(models.StatusOffline)
		c.logger.Info(ctx, "backend unreachable, working offline")
		return models.StatusOffline
	}

	c.setStatus(models.StatusConnected)
	c.logger.Info(ctx, "backend connected, hydrating")
	c.refetch(ctx, refetchEmployees|refetchAttendance|refetchStats)

	return models.StatusConnected
}

func (c *Coordinator) setStatus(s models.ConnectivityStatus) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

// Close releases the local store.
func (c *Coordinator) Close() error {
	return c.persister.Close()
}

func (c *Coordinator) connected() bool {
	return c.status == models.StatusConnected
}

func (c *Coordinator) today() string {
	return c.now().Format(time.DateOnly)
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
