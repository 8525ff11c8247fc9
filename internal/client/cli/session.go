package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hrmsync/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username and password and opens a session. Any
// non-empty pair is accepted. The local store is loaded and the backend is
// probed; without a backend the session works offline.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in as", a.userName)
		return nil
	}

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, userName, password); err != nil {
		return err
	}

	coord, err := a.openCoordinator(ctx)
	if err != nil {
		return err
	}
	a.coord = coord
	a.userName = userName

	status := coord.Start(ctx)
	a.logger.Info(ctx, "session opened", "user", userName, "status", string(status))
	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", userName, status)
	return nil
}

// Logout closes the coordinator and its local store.
func (a *App) Logout(ctx context.Context) error {
	if a.coord == nil {
		return nil
	}
	err := a.coord.Close()
	a.coord = nil
	a.userName = ""
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	a.logger.Info(ctx, "session closed")
	return nil
}
