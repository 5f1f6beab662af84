package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/flavono123/jsonsketch/internal/editor"
	"github.com/flavono123/jsonsketch/internal/sample"
	"github.com/flavono123/jsonsketch/internal/ui/event"
	"github.com/flavono123/jsonsketch/internal/ui/theme"
)

const (
	PREVIEW_HEIGHT_BOTTOM_MARGIN = 4 // topbar 1 + border top, down 2 + help, status 1
	PREVIEW_BORDER_WIDTH         = 2
)

type Options struct {
	// WidthRatio is the share of the window the pane takes.
	WidthRatio float64
	Wrap       bool
}

type Model struct {
	focus  bool
	editor *editor.Editor
	opts   Options

	vp      viewport.Model
	style   lipgloss.Style
	content string
	err     error

	keys keyMap
	help help.Model
}

func NewModel(e *editor.Editor, opts Options) *Model {
	m := &Model{
		editor: e,
		opts:   opts,
		vp:     viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Overlay0()),
		keys: newKeyMap(),
		help: help.New(),
	}
	m.refresh()

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case event.SchemaChangedMsg:
		m.refresh()
	case tea.WindowSizeMsg:
		m.setViewSize(msg)
		m.refresh()
	case tea.KeyMsg:
		if !m.focus {
			break
		}
		switch {
		case key.Matches(msg, m.keys.top):
			m.vp.GotoTop()
		case key.Matches(msg, m.keys.bottom):
			m.vp.GotoBottom()
		default:
			m.vp, cmd = m.vp.Update(msg)
		}
	}

	return m, cmd
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		m.style.Render(m.vp.View()),
	)
}

func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}

// Content is the text the viewport currently shows.
func (m *Model) Content() string {
	return m.content
}

func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = m.style.Border(lipgloss.ThickBorder()).BorderForeground(theme.Blue())
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.style = m.style.Border(lipgloss.NormalBorder()).BorderForeground(theme.Overlay0())
}

func (m *Model) setViewSize(msg tea.WindowSizeMsg) {
	m.vp.Width = int(float64(msg.Width)*m.opts.WidthRatio) - PREVIEW_BORDER_WIDTH
	m.vp.Height = msg.Height - PREVIEW_HEIGHT_BOTTOM_MARGIN
}

func (m *Model) refresh() {
	text, err := m.editor.JSON(sample.DefaultIndent)
	m.err = err
	if err != nil {
		text = err.Error()
	}
	if m.opts.Wrap && m.vp.Width > 0 {
		text = wordwrap.String(text, m.vp.Width)
	}

	m.content = text
	m.vp.SetContent(text)
}

func (m *Model) renderTopBar() string {
	title := lipgloss.NewStyle().Margin(0, 1).Bold(true).Render("Sample JSON")
	if m.err != nil {
		return lipgloss.JoinHorizontal(lipgloss.Left,
			title,
			lipgloss.NewStyle().Foreground(theme.Red()).Render("render failed"),
		)
	}

	scroll := lipgloss.NewStyle().Foreground(theme.Overlay0()).
		Render(fmt.Sprintf("%3.f%%", m.vp.ScrollPercent()*100))
	return lipgloss.JoinHorizontal(lipgloss.Left, title, scroll)
}
