package event

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// nav -> root, preview
type SchemaChangedMsg struct{}

func SchemaChanged() tea.Msg {
	return SchemaChangedMsg{}
}

// kbar -> nav
type JumpToFieldMsg struct {
	ID string
}

// -> root

type Status uint

const (
	Info Status = iota
	Warn
	Error
)

type SetStatusMsg struct {
	Message string
	Status  Status
}

func SetStatus(message string, status Status) tea.Cmd {
	return func() tea.Msg {
		return SetStatusMsg{Message: message, Status: status}
	}
}

const statusDuration = time.Millisecond * 1060

func ShowStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return HideStatusMsg{}
	})
}

type HideStatusMsg struct{}
