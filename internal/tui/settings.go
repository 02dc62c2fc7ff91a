package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/internal/config"
	"github.com/rafaelssenna/sol-client/internal/credentials"
	"github.com/rafaelssenna/sol-client/internal/session"
)

// settingsModel shows the signed-in profile, the credential's expiry, and
// where the client is pointed. Everything here is read-only; config changes
// happen through flags, env, or the JSON file.
type settingsModel struct {
	snap   session.Snapshot
	claims credentials.Claims
	cfg    config.ClientConfig
	status string
}

func newSettingsModel(snap session.Snapshot, cfg config.ClientConfig) settingsModel {
	m := settingsModel{snap: snap, cfg: cfg}
	if snap.Token != "" {
		// Best effort only; an undecodable token just leaves the expiry
		// line blank.
		m.claims, _ = credentials.TokenClaims(snap.Token)
	}
	return m
}

func (m settingsModel) View() string {
	out := viewTitle("Settings")

	u := m.snap.User
	out += "\nAccount\n"
	out += "  Name:       " + valueOrDash(u.Name) + "\n"
	out += "  Email:      " + valueOrDash(u.Email) + "\n"
	out += "  Role:       " + valueOrDash(string(u.Role)) + "\n"
	out += "  Department: " + valueOrDash(u.Department) + "\n"

	out += "\nSession\n"
	out += "  State:      " + m.snap.State.String() + "\n"
	if m.claims.ExpiresAt != nil {
		out += "  Expires:    " + formatDateTime(*m.claims.ExpiresAt) + "\n"
	}
	if m.claims.IssuedAt != nil {
		out += "  Issued:     " + formatDateTime(*m.claims.IssuedAt) + "\n"
	}

	out += "\nBackend\n"
	out += "  URL:        " + m.cfg.API.BaseURL + "\n"
	out += "  Timeout:    " + m.cfg.API.RequestTimeout.String() + "\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	out += "\n" + helpStyle.Render("c copy email  L log out  esc back")
	return out
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.copy):
		if m.settings.snap.User.Email != "" {
			return m, cmdCopyToClipboard(m.settings.snap.User.Email)
		}
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}
	return m, nil
}
