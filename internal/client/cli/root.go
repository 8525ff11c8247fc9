package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.userName, a.coord.Status())
}

// Root greets the user, asks for credentials and runs the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "HR management CLI (type 'help' for commands)")

	if err := a.Login(ctx); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) command(name string) (commandFunc, bool) {
	fn, ok := a.commands()[name]
	return fn, ok
}

func (a *App) commands() map[string]commandFunc {
	return map[string]commandFunc{
		"status":        a.showStatus,
		"sync":          a.sync,
		"departments":   a.departments,
		"employees":     a.listEmployees,
		"show":          a.showEmployee,
		"addemp":        a.addEmployee,
		"editemp":       a.editEmployee,
		"delemp":        a.deleteEmployee,
		"attendance":    a.listAttendance,
		"mark":          a.markAttendance,
		"editatt":       a.editAttendance,
		"delatt":        a.deleteAttendance,
		"leaves":        a.listLeaves,
		"addleave":      a.addLeave,
		"approve":       a.approveLeave,
		"reject":        a.rejectLeave,
		"delleave":      a.deleteLeave,
		"stats":         a.stats,
		"settings":      a.showSettings,
		"set":           a.setSetting,
		"notifications": a.listNotifications,
		"read":          a.readNotification,
		"export":        a.exportData,
		"import":        a.importData,
		"reset":         a.resetData,
		"report":        a.writeReport,
	}
}
