// Package report renders attendance as an Excel workbook.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/xuri/excelize/v2"
)

const (
	AttendanceSheet = "Attendance"
	SummarySheet    = "Summary"
)

var (
	attendanceHeaders = []string{"Date", "Employee ID", "Name", "Department", "Status", "Check In", "Check Out", "Note"}
	summaryHeaders    = []string{"Employee ID", "Name", "Department", "Present", "Absent", "Late", "Half Day"}
)

// WriteAttendance writes a workbook with every attendance record, newest
// first, and a per-employee status summary.
func WriteAttendance(w io.Writer, employees []models.Employee, attendance []models.Attendance) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), AttendanceSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	byID := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	recs := slices.Clone(attendance)
	slices.SortStableFunc(recs, func(a, b models.Attendance) int { return cmp.Compare(b.Date, a.Date) })

	rows := make([][]any, 0, len(recs))
	for _, a := range recs {
		e := byID[a.EmployeeID]
		name := e.FullName()
		if name == "" {
			name = a.EmployeeName
		}
		rows = append(rows, []any{a.Date, a.EmployeeID, name, e.Department, string(a.Status), a.CheckIn, a.CheckOut, a.Note})
	}
	if err := writeTable(f, AttendanceSheet, attendanceHeaders, rows); err != nil {
		return err
	}

	if err := writeTable(f, SummarySheet, summaryHeaders, summarize(employees, attendance)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func summarize(employees []models.Employee, attendance []models.Attendance) [][]any {
	counts := map[string]map[models.AttendanceStatus]int{}
	for _, a := range attendance {
		if counts[a.EmployeeID] == nil {
			counts[a.EmployeeID] = map[models.AttendanceStatus]int{}
		}
		counts[a.EmployeeID][a.Status]++
	}

	rows := make([][]any, 0, len(employees))
	for _, e := range employees {
		c := counts[e.ID]
		rows = append(rows, []any{e.ID, e.FullName(), e.Department, c[models.Present], c[models.Absent], c[models.Late], c[models.HalfDay]})
	}
	return rows
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to set header: %w", err)
		}
	}

	for r, row := range rows {
		for c, val := range row {
			if s, ok := val.(string); ok && s == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}
	return nil
}
