package models

// ConnectivityStatus is the state of the backend connection as seen by the
// coordinator.
type ConnectivityStatus string

const (
	StatusIdle      ConnectivityStatus = "idle"
	StatusChecking  ConnectivityStatus = "checking"
	StatusConnected ConnectivityStatus = "connected"
	StatusOffline   ConnectivityStatus = "offline"
)

// DashboardStats is the aggregate returned by the backend for today.
type DashboardStats struct {
	TotalEmployees      int     `json:"total_employees"`
	TotalDepartments    int     `json:"total_departments"`
	PresentToday        int     `json:"present_today"`
	AbsentToday         int     `json:"absent_today"`
	LateToday           int     `json:"late_today"`
	AttendanceRateToday float64 `json:"attendance_rate_today"`
}

// Loading reports which collections are currently being fetched.
type Loading struct {
	Employees  bool
	Attendance bool
}
