package client

import (
	"context"
	"errors"

	"github.com/rafaelssenna/sol-client/internal/logger"
	"github.com/rafaelssenna/sol-client/internal/session"
	"github.com/rafaelssenna/sol-client/internal/tui"
)

type App struct {
	sess *session.Manager
	ui   *tui.TUI
	log  *logger.Logger
}

func NewApp(sess *session.Manager, ui *tui.TUI, log *logger.Logger) *App {
	return &App{sess: sess, ui: ui, log: log}
}

// Run drives the whole client: restore the persisted session, then alternate
// between the login flow and the dashboard loop until the user quits. A
// logout or a backend-invalidated session drops back to the login flow
// rather than exiting.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.sess.CheckAuth(ctx); err != nil {
		// A failed restore is not fatal; the user can log in again.
		a.log.Warn().Err(err).Msg("session restore failed")
	}

	for {
		if !a.sess.Snapshot().IsAuthenticated() {
			if err := a.ui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		logout, expired, err := a.ui.MainLoop(ctx)
		if err != nil {
			return err
		}

		switch {
		case logout:
			if err := a.sess.Logout(); err != nil {
				a.log.Warn().Err(err).Msg("logout cleanup failed")
			}
		case expired:
			a.log.Info().Msg("session expired, returning to login")
		default:
			return nil
		}
	}
}
