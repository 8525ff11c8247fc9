package normalize

import (
	"strings"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

var statusTable = []struct {
	local  models.AttendanceStatus
	remote string
}{
	{models.Present, "Present"},
	{models.Absent, "Absent"},
	{models.Late, "Late"},
	{models.HalfDay, "Half Day"},
}

// StatusToRemote maps a local status to the backend's spelling. Values not in
// the table are sent unchanged.
func StatusToRemote(s models.AttendanceStatus) string {
	for _, row := range statusTable {
		if row.local == s {
			return row.remote
		}
	}
	return string(s)
}

// StatusFromRemote maps a backend status to the local token. Values not in
// the table are lowercased.
func StatusFromRemote(s string) models.AttendanceStatus {
	for _, row := range statusTable {
		if row.remote == s {
			return row.local
		}
	}
	return models.AttendanceStatus(strings.ToLower(s))
}
