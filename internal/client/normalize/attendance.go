package normalize

import "github.com/dmitrijs2005/hrmsync/internal/client/models"

func AttendanceFromRemote(r RemoteAttendance) models.Attendance {
	return models.Attendance{
		ID:           r.ID.String(),
		RemoteID:     r.ID.String(),
		EmployeeID:   value(r.EmployeeCode),
		EmployeeName: value(r.EmployeeName),
		Date:         r.Date,
		Status:       StatusFromRemote(r.Status),
		Note:         value(r.Note),
	}
}

// AttendanceToCreate builds the create payload. remoteEmployeeID is the
// backend key of the employee the record belongs to.
func AttendanceToCreate(a models.Attendance, remoteEmployeeID string) AttendanceCreate {
	return AttendanceCreate{
		EmployeeID: RemoteID(remoteEmployeeID),
		Date:       a.Date,
		Status:     StatusToRemote(a.Status),
		Note:       optional(a.Note),
	}
}

func AttendanceToUpdate(a models.Attendance) AttendanceUpdate {
	return AttendanceUpdate{
		Status: StatusToRemote(a.Status),
		Note:   optional(a.Note),
	}
}
