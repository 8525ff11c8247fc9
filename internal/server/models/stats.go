package models

type DashboardStats struct {
	TotalEmployees      int     `json:"total_employees"`
	TotalDepartments    int     `json:"total_departments"`
	PresentToday        int     `json:"present_today"`
	AbsentToday         int     `json:"absent_today"`
	LateToday           int     `json:"late_today"`
	AttendanceRateToday float64 `json:"attendance_rate_today"`
}
