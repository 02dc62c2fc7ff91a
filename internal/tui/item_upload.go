package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelssenna/sol-client/models"
)

// itemUploadModel is the create-from-photo / create-from-file form. The file
// never leaves the machine if it exceeds the configured size limit.
type itemUploadModel struct {
	photo      bool
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newItemUploadModel(photo bool) itemUploadModel {
	placeholders := []string{
		"path to the file",
		"quantity (default 1)",
		"unit (default un)",
		"anything the AI should know (optional)",
	}

	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 500
		in.Width = 50
		inputs[i] = in
	}
	inputs[0].Focus()

	return itemUploadModel{photo: photo, inputs: inputs}
}

func (m itemUploadModel) View() string {
	title := "Upload a file"
	if m.photo {
		title = "Upload a photo"
	}
	out := viewTitle(title)
	labels := []string{"Path:    ", "Quantity:", "Unit:    ", "Context: "}
	out += "\n"
	for i, in := range m.inputs {
		out += labels[i] + " [" + in.View() + "]\n"
	}

	if m.submitting {
		out += "\n[Uploading...]\n"
	} else {
		out += "\n[Upload]\n"
	}

	out += "\n" + helpStyle.Render("esc back  tab next field  enter submit")
	return out
}

func (m appModel) updateItemUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenItemSource
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.itemUpload.focus = cycleFocus(m.itemUpload.inputs, m.itemUpload.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.itemUpload.focus = cycleFocus(m.itemUpload.inputs, m.itemUpload.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.itemUpload.submitting {
				return m, nil
			}
			path := strings.TrimSpace(m.itemUpload.inputs[0].Value())
			if path == "" {
				m.showErrorf("A file path is required")
				return m, nil
			}
			form := models.ItemUploadContext{
				Quantity:          parseCount(m.itemUpload.inputs[1].Value()),
				Unit:              strings.TrimSpace(m.itemUpload.inputs[2].Value()),
				AdditionalContext: strings.TrimSpace(m.itemUpload.inputs[3].Value()),
			}
			m.itemUpload.submitting = true
			return m, m.cmdUploadItem(path, m.itemUpload.photo, form)
		}
	}

	var cmd tea.Cmd
	m.itemUpload.inputs[m.itemUpload.focus], cmd = m.itemUpload.inputs[m.itemUpload.focus].Update(msg)
	return m, cmd
}
