package kbar

import tea "github.com/charmbracelet/bubbletea"

// ShowMsg opens the finder over the current tree.
type ShowMsg struct{}

// HideMsg closes the finder and clears the query.
type HideMsg struct{}

func Show() tea.Msg { return ShowMsg{} }

func Hide() tea.Msg { return HideMsg{} }
