package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

// settingKeys maps `set` keys to the patch field they fill.
var settingKeys = map[string]func(p *models.SettingsPatch, v string){
	"company":    func(p *models.SettingsPatch, v string) { p.CompanyName = &v },
	"email":      func(p *models.SettingsPatch, v string) { p.CompanyEmail = &v },
	"phone":      func(p *models.SettingsPatch, v string) { p.CompanyPhone = &v },
	"address":    func(p *models.SettingsPatch, v string) { p.CompanyAddress = &v },
	"timezone":   func(p *models.SettingsPatch, v string) { p.Timezone = &v },
	"dateformat": func(p *models.SettingsPatch, v string) { p.DateFormat = &v },
	"weekstart":  func(p *models.SettingsPatch, v string) { p.WeekStart = &v },
	"apiurl":     func(p *models.SettingsPatch, v string) { p.APIURL = &v },
}

func (a *App) showSettings(_ context.Context, _ []string) error {
	s := a.coord.Settings()
	tw := newTable(a.out)
	fmt.Fprintf(tw, "company\t%s\n", s.CompanyName)
	fmt.Fprintf(tw, "email\t%s\n", s.CompanyEmail)
	fmt.Fprintf(tw, "phone\t%s\n", s.CompanyPhone)
	fmt.Fprintf(tw, "address\t%s\n", s.CompanyAddress)
	fmt.Fprintf(tw, "timezone\t%s\n", s.Timezone)
	fmt.Fprintf(tw, "dateformat\t%s\n", s.DateFormat)
	fmt.Fprintf(tw, "weekstart\t%s\n", s.WeekStart)
	fmt.Fprintf(tw, "apiurl\t%s\n", s.APIURL)
	return tw.Flush()
}

func (a *App) setSetting(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("set <key> <value>")
	}
	key := strings.ToLower(args[0])
	apply, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting %q", args[0])
	}

	var p models.SettingsPatch
	apply(&p, strings.Join(args[1:], " "))
	if _, err := a.coord.UpdateSettings(ctx, p); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s updated\n", key)
	if key == "apiurl" && a.config.APIURL == "" {
		fmt.Fprintln(a.out, "Run 'sync' to connect to the new endpoint")
	}
	return nil
}

func (a *App) listNotifications(_ context.Context, _ []string) error {
	tw := newTable(a.out)
	for _, n := range a.coord.Notifications() {
		mark := "*"
		if n.Read {
			mark = " "
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", mark, n.ID, n.Time, n.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d unread\n", a.coord.UnreadNotifications())
	return nil
}

func (a *App) readNotification(_ context.Context, args []string) error {
	v, err := requireArg(args, "read <id|all>")
	if err != nil {
		return err
	}
	if v == "all" {
		a.coord.MarkAllNotificationsRead()
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("bad notification id %q", v)
	}
	if !a.coord.MarkNotificationRead(id) {
		return fmt.Errorf("notification %d not found", id)
	}
	return nil
}
