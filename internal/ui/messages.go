package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const copyToastDuration = 2 * time.Second

type copyToastTickMsg struct{}

func scheduleCopyToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return copyToastTickMsg{}
	})
}
