package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/hrmsync/internal/client/report"
	"github.com/dmitrijs2005/hrmsync/internal/client/store"
)

func (a *App) exportData(ctx context.Context, _ []string) error {
	data, err := a.coord.Export()
	if err != nil {
		return err
	}
	loc, err := a.sink.Put(ctx, store.BackupName(a.now()), data)
	if err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	fmt.Fprintln(a.out, "Backup written to", loc)
	return nil
}

func (a *App) importData(ctx context.Context, args []string) error {
	name, err := requireArg(args, "import <backup name>")
	if err != nil {
		return err
	}
	data, err := a.sink.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	if err := a.coord.Import(ctx, data); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Backup imported")
	return nil
}

func (a *App) resetData(ctx context.Context, _ []string) error {
	answer, err := GetSimpleText(a.reader, "This replaces all local data with the demo set. Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.coord.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Local data reset")
	return nil
}

func (a *App) writeReport(_ context.Context, args []string) error {
	path, err := requireArg(args, "report <file.xlsx>")
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteAttendance(f, a.coord.Employees(), a.coord.Attendance()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Report written to", path)
	return nil
}
