package store

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

// storedLeave accepts both the current shape and the older one that used
// type / fromDate / toDate.
type storedLeave struct {
	models.LeaveRequest

	Type     *string `json:"type"`
	FromDate *string `json:"fromDate"`
	ToDate   *string `json:"toDate"`
}

func (l storedLeave) legacy() bool {
	return l.Type != nil || l.FromDate != nil || l.ToDate != nil
}

func (l storedLeave) upgrade() models.LeaveRequest {
	out := l.LeaveRequest
	if out.LeaveType == "" {
		out.LeaveType = firstNonEmpty(l.Type, models.DefaultLeaveType)
	}
	if out.StartDate == "" {
		out.StartDate = firstNonEmpty(l.FromDate, "")
	}
	if out.EndDate == "" {
		out.EndDate = firstNonEmpty(l.ToDate, "")
	}
	return out
}

func decodeLeaves(raw []byte) ([]models.LeaveRequest, error) {
	var stored []storedLeave
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("leaves: %w", errNotArray)
	}

	out := make([]models.LeaveRequest, 0, len(stored))
	for _, l := range stored {
		if l.legacy() {
			out = append(out, l.upgrade())
			continue
		}
		out = append(out, l.LeaveRequest)
	}
	return out, nil
}

func firstNonEmpty(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}
