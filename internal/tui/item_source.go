package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// itemSourceModel picks how a new item enters the system: typed description,
// a product photo, or a document upload.
type itemSourceModel struct {
	idx int
}

var itemSources = []string{
	"Describe it",
	"Upload a photo",
	"Upload a file",
}

func (m itemSourceModel) View() string {
	out := viewTitle("New item")
	out += "\nHow do you want to add it?\n\n"
	for i, s := range itemSources {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + s + "\n"
	}
	out += "\n" + helpStyle.Render("enter select  esc back")
	return out
}

func (m appModel) updateItemSource(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenItems
	case key.Matches(keyMsg, keys.up):
		if m.itemSource.idx > 0 {
			m.itemSource.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.itemSource.idx < len(itemSources)-1 {
			m.itemSource.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.itemSource.idx {
		case 0:
			m.itemForm = newItemFormModel()
			m.currentScreen = screenItemForm
		case 1:
			m.itemUpload = newItemUploadModel(true)
			m.currentScreen = screenItemUpload
		case 2:
			m.itemUpload = newItemUploadModel(false)
			m.currentScreen = screenItemUpload
		}
	}
	return m, nil
}
