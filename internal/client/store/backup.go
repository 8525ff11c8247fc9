package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

var ErrInvalidBackup = errors.New("invalid backup file")

// Backup is the export document. Absent collections are left untouched on
// import.
type Backup struct {
	Employees     *[]models.Employee     `json:"employees,omitempty"`
	Attendance    *[]models.Attendance   `json:"attendance,omitempty"`
	LeaveRequests *[]models.LeaveRequest `json:"leaveRequests,omitempty"`
	Settings      *models.Settings       `json:"settings,omitempty"`
	ExportedAt    string                 `json:"exportedAt,omitempty"`
}

func NewBackup(snap Snapshot, at time.Time) Backup {
	emps := nonNil(snap.Employees)
	atts := nonNil(snap.Attendance)
	leaves := nonNil(snap.LeaveRequests)
	settings := snap.Settings

	return Backup{
		Employees:     &emps,
		Attendance:    &atts,
		LeaveRequests: &leaves,
		Settings:      &settings,
		ExportedAt:    at.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}

func (b Backup) Marshal() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// ParseBackup decodes a backup document. Anything that is not a JSON object
// of the expected shape yields ErrInvalidBackup.
func ParseBackup(data []byte) (Backup, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return Backup{}, ErrInvalidBackup
	}

	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return b, nil
}

// BackupName is the file name used for a backup taken at t.
func BackupName(t time.Time) string {
	return "hrms-backup-" + t.Format("2006-01-02") + ".json"
}

func nonNil[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
