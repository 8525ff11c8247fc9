// Package store persists the coordinator's collections in a local SQLite
// database, one JSON blob per collection.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hrmsync/internal/client/migrations"
	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/repositories/slots"
	"github.com/dmitrijs2005/hrmsync/internal/dbx"
	"github.com/dmitrijs2005/hrmsync/internal/logging"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	SlotEmployees   = "hrms_employees"
	SlotAttendance  = "hrms_attendance"
	SlotLeaves      = "hrms_leaves"
	SlotSettings    = "hrms_settings"
	SlotDataVersion = "hrms_data_version"

	// DataVersion is bumped whenever the seed data changes; stored entity
	// slots written under another version are discarded on load.
	DataVersion = "4"
)

// Snapshot is the full persisted state.
type Snapshot struct {
	Employees     []models.Employee
	Attendance    []models.Attendance
	LeaveRequests []models.LeaveRequest
	Settings      models.Settings
}

// DefaultSnapshot returns the seed state.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Employees:     DefaultEmployees(),
		Attendance:    DefaultAttendance(),
		LeaveRequests: DefaultLeaveRequests(),
		Settings:      DefaultSettings(),
	}
}

type Store struct {
	db     *sql.DB
	slots  slots.Repository
	logger logging.Logger
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, ".")
}

// Open opens (creating if needed) the database at dsn and migrates it.
func Open(ctx context.Context, dsn string, logger logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}

	return New(db, logger), nil
}

// New wraps an already migrated database.
func New(db *sql.DB, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{db: db, slots: slots.NewSQLiteRepository(db), logger: logger}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads every slot, falling back to the seed data for slots that are
// missing or unreadable.
func (s *Store) Load(ctx context.Context) (Snapshot, error) {
	if err := s.checkVersion(ctx); err != nil {
		return Snapshot{}, err
	}

	snap := DefaultSnapshot()

	if err := loadSlot(ctx, s, SlotEmployees, &snap.Employees, DefaultEmployees); err != nil {
		return Snapshot{}, err
	}
	if err := loadSlot(ctx, s, SlotAttendance, &snap.Attendance, DefaultAttendance); err != nil {
		return Snapshot{}, err
	}
	if err := loadSlot(ctx, s, SlotSettings, &snap.Settings, DefaultSettings); err != nil {
		return Snapshot{}, err
	}

	raw, err := s.slots.Get(ctx, SlotLeaves)
	if err != nil {
		return Snapshot{}, err
	}
	if raw != nil {
		leaves, err := decodeLeaves(raw)
		if err != nil {
			s.logger.Warn(ctx, "stored slot is unreadable, using defaults", "slot", SlotLeaves, "error", err)
		} else {
			snap.LeaveRequests = leaves
		}
	}

	return snap, nil
}

func (s *Store) checkVersion(ctx context.Context) error {
	v, err := s.slots.Get(ctx, SlotDataVersion)
	if err != nil {
		return err
	}
	if string(v) == DataVersion {
		return nil
	}

	s.logger.Info(ctx, "data version changed, discarding stored collections", "stored", string(v), "current", DataVersion)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := slots.NewSQLiteRepository(tx)
		for _, key := range []string{SlotEmployees, SlotAttendance, SlotLeaves} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return repo.Set(ctx, SlotDataVersion, []byte(DataVersion))
	})
}

func loadSlot[T any](ctx context.Context, s *Store, key string, dst *T, def func() T) error {
	raw, err := s.slots.Get(ctx, key)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.Warn(ctx, "stored slot is unreadable, using defaults", "slot", key, "error", err)
		*dst = def()
		return nil
	}
	*dst = v
	return nil
}

func (s *Store) SaveEmployees(ctx context.Context, v []models.Employee) error {
	return s.save(ctx, SlotEmployees, v)
}

func (s *Store) SaveAttendance(ctx context.Context, v []models.Attendance) error {
	return s.save(ctx, SlotAttendance, v)
}

func (s *Store) SaveLeaves(ctx context.Context, v []models.LeaveRequest) error {
	return s.save(ctx, SlotLeaves, v)
}

func (s *Store) SaveSettings(ctx context.Context, v models.Settings) error {
	return s.save(ctx, SlotSettings, v)
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	return saveSlot(ctx, s.slots, key, v)
}

func saveSlot(ctx context.Context, repo slots.Repository, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return repo.Set(ctx, key, data)
}

// Restore writes every collection present in b in one transaction; on error
// no slot changes.
func (s *Store) Restore(ctx context.Context, b Backup) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := slots.NewSQLiteRepository(tx)
		if b.Employees != nil {
			if err := saveSlot(ctx, repo, SlotEmployees, *b.Employees); err != nil {
				return err
			}
		}
		if b.Attendance != nil {
			if err := saveSlot(ctx, repo, SlotAttendance, *b.Attendance); err != nil {
				return err
			}
		}
		if b.LeaveRequests != nil {
			if err := saveSlot(ctx, repo, SlotLeaves, *b.LeaveRequests); err != nil {
				return err
			}
		}
		if b.Settings != nil {
			if err := saveSlot(ctx, repo, SlotSettings, *b.Settings); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset empties the slot table and rewrites the version marker; the next
// Load returns the seed data.
func (s *Store) Reset(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := slots.NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		return repo.Set(ctx, SlotDataVersion, []byte(DataVersion))
	})
}

var errNotArray = errors.New("not a JSON array")
