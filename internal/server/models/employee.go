// Package models defines the records served by the HR backend. JSON tags
// follow the API wire format.
package models

import "time"

type Employee struct {
	ID               int64     `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Department       string    `json:"department"`
	Position         *string   `json:"position"`
	Phone            *string   `json:"phone"`
	CreatedAt        time.Time `json:"created_at"`
	TotalPresentDays int       `json:"total_present_days"`
}

// EmployeeInput is the body of POST and PUT /api/employees. EmployeeID is
// ignored on update.
type EmployeeInput struct {
	EmployeeID string  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
}

type EmployeeFilter struct {
	Search     string
	Department string
}
