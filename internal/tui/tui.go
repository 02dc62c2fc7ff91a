// Package tui renders the procurement dashboard in the terminal. It is a
// thin presentation layer: every screen maps user actions to adapter calls
// and displays whatever the backend returns, without local business rules.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/internal/adapter"
	"github.com/rafaelssenna/sol-client/internal/config"
	"github.com/rafaelssenna/sol-client/internal/logger"
	"github.com/rafaelssenna/sol-client/internal/session"
)

// ErrUserQuit distinguishes a deliberate quit from a program failure.
var ErrUserQuit = errors.New("user quit")

// TUI owns the two bubbletea programs of one client run: the login flow and
// the main dashboard loop.
type TUI struct {
	api  adapter.Gateway
	sess *session.Manager
	cfg  config.ClientConfig
	log  *logger.Logger
}

func New(api adapter.Gateway, sess *session.Manager, cfg config.ClientConfig, log *logger.Logger) *TUI {
	return &TUI{api: api, sess: sess, cfg: cfg, log: log}
}

// LoginFlow runs the welcome/login/register screens until a session is
// established or the user quits.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginAppModel(ctx, t.api, t.sess, t.cfg)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil {
		return result.err
	}
	return nil
}

// MainLoop runs the dashboard until the user quits or logs out, or the
// backend invalidates the session. The expiry callback is registered for the
// lifetime of the loop so a 401 on any screen interrupts it.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, expired bool, err error) {
	model := newMainAppModel(ctx, t.api, t.sess, t.cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())

	t.api.OnSessionExpired(func() {
		t.sess.HandleSessionExpired()
		program.Send(sessionExpiredMsg{})
	})
	defer t.api.OnSessionExpired(nil)

	finalModel, runErr := program.Run()
	if runErr != nil {
		return false, false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, false, tea.ErrProgramKilled
	}
	return result.logout, result.expired, nil
}
