package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/jsonsketch/internal/editor"
	"github.com/flavono123/jsonsketch/internal/logging"
	"github.com/flavono123/jsonsketch/internal/ui/event"
	"github.com/flavono123/jsonsketch/internal/ui/kbar"
	"github.com/flavono123/jsonsketch/internal/ui/nav"
	"github.com/flavono123/jsonsketch/internal/ui/preview"
	"github.com/flavono123/jsonsketch/internal/ui/theme"
)

const (
	//longing for https://github.com/charmbracelet/bubbles/pull/240
	UPPER_20 = 0.8

	MSG_COPIED  = "JSON copied to clipboard!"
	MSG_CLEARED = "Schema cleared."
)

type sessionState uint

const (
	navView sessionState = iota
	previewView
)

type Options struct {
	// PreviewWidth is the preview pane width in percent of the window.
	PreviewWidth int
	PreviewWrap  bool
	Logger       logging.Logger
}

type mainModel struct {
	state   sessionState
	keys    keyMap
	help    help.Model
	editor  *editor.Editor
	nav     *nav.Model
	preview *preview.Model
	kbar    *kbar.Model
	status  *event.SetStatusMsg
	width   int
	height  int
	logger  logging.Logger
}

func InitModel(e *editor.Editor, opts Options) *mainModel {
	if opts.PreviewWidth <= 0 || opts.PreviewWidth >= 100 {
		opts.PreviewWidth = 50
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	previewRatio := float64(opts.PreviewWidth) / 100

	m := &mainModel{
		state:  navView,
		keys:   newKeyMap(),
		help:   help.New(),
		editor: e,
		nav:    nav.NewModel(e, 1-previewRatio),
		preview: preview.NewModel(e, preview.Options{
			WidthRatio: previewRatio,
			Wrap:       opts.PreviewWrap,
		}),
		kbar:   kbar.NewModel(e.Tree()),
		logger: opts.Logger,
	}
	m.preview.Blur()

	return m
}

func (m *mainModel) Init() tea.Cmd {
	return tea.Batch(m.nav.Init(), m.preview.Init())
}

func (m *mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case event.SetStatusMsg:
		return m, m.setStatus(msg.Message, msg.Status)
	case event.HideStatusMsg:
		m.status = nil
		return m, nil
	case event.JumpToFieldMsg:
		m.focusNav()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.broadcast(msg)
}

func (m *mainModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.forceQuit) {
		return tea.Quit
	}

	// modal children take every other key
	if m.kbar.Visible() {
		_, cmd := m.kbar.Update(msg)
		return cmd
	}
	if m.nav.Editing() {
		_, cmd := m.nav.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit
	case key.Matches(msg, m.keys.showKbar):
		return kbar.Show
	case key.Matches(msg, m.keys.tabView):
		if m.state == navView {
			m.focusPreview()
		} else {
			m.focusNav()
		}
		return nil
	case key.Matches(msg, m.keys.copyJSON):
		if _, err := m.editor.CopyOut(); err != nil {
			m.logger.Warnw("copy failed", "error", err)
			return m.setStatus("Copy failed: "+err.Error(), event.Error)
		}
		return m.setStatus(MSG_COPIED, event.Info)
	case key.Matches(msg, m.keys.clearAll):
		m.editor.ClearAll()
		return tea.Batch(
			m.broadcast(event.SchemaChangedMsg{}),
			m.setStatus(MSG_CLEARED, event.Info),
		)
	}

	if m.state == previewView {
		_, cmd := m.preview.Update(msg)
		return cmd
	}
	_, cmd := m.nav.Update(msg)
	return cmd
}

func (m *mainModel) View() string {
	if m.kbar.Visible() {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			UPPER_20,
			m.kbar.View(),
			lipgloss.WithWhitespaceBackground(theme.Mantle()),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.nav.View(), m.preview.View()),
		m.renderStatus(),
		m.renderHelp(),
	)
}

// broadcast hands msg to every child.
func (m *mainModel) broadcast(msg tea.Msg) tea.Cmd {
	_, nCmd := m.nav.Update(msg)
	_, pCmd := m.preview.Update(msg)
	_, kCmd := m.kbar.Update(msg)

	return tea.Batch(nCmd, pCmd, kCmd)
}

func (m *mainModel) focusNav() {
	m.state = navView
	m.preview.Blur()
	m.nav.Focus()
}

func (m *mainModel) focusPreview() {
	m.state = previewView
	m.nav.Blur()
	m.preview.Focus()
}

func (m *mainModel) setStatus(message string, status event.Status) tea.Cmd {
	m.status = &event.SetStatusMsg{Message: message, Status: status}
	return event.ShowStatus()
}

func (m *mainModel) renderStatus() string {
	if m.status == nil {
		return ""
	}

	style := lipgloss.NewStyle().Margin(0, 1)
	switch m.status.Status {
	case event.Info:
		style = style.Foreground(theme.Green())
	case event.Warn:
		style = style.Foreground(theme.Yellow())
	case event.Error:
		style = style.Foreground(theme.Red())
	}
	return style.Render(m.status.Message)
}

func (m *mainModel) renderHelp() string {
	focused := m.nav.HelpView()
	if m.state == previewView {
		focused = m.preview.HelpView()
	}

	return lipgloss.NewStyle().Margin(0, 1).Render(
		lipgloss.JoinHorizontal(lipgloss.Left,
			focused,
			m.help.Styles.ShortSeparator.Render(m.help.ShortSeparator),
			m.help.View(m.keys),
		),
	)
}
