package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\ny yes    n no"
	return overlayBoxStyle.Render(content)
}
