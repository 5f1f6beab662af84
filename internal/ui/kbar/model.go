package kbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flavono123/jsonsketch/internal/schema"
	"github.com/flavono123/jsonsketch/internal/tree"
	"github.com/flavono123/jsonsketch/internal/ui/event"
	"github.com/flavono123/jsonsketch/internal/ui/theme"
)

const (
	KBAR_WIDTH_DIV                 = 3
	KBAR_SEARCH_RESULTS_MAX_HEIGHT = 10
)

// Model is a fuzzy finder over every field of the tree.
type Model struct {
	keys       keyMap
	visible    bool
	style      lipgloss.Style
	tree       *tree.Store
	items      kbarItems
	filtered   kbarItems
	input      textinput.Model
	srViewport viewport.Model
	cursor     int
}

func NewModel(t *tree.Store) *Model {
	ti := textinput.New()
	ti.Placeholder = "Jump to field..."
	ti.SetCursor(0)
	ti.Prompt = "🔍 "
	ti.Width = 30

	return &Model{
		keys:    newKeyMap(),
		visible: false,
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Mauve()),
		tree:       t,
		input:      ti,
		srViewport: viewport.New(0, KBAR_SEARCH_RESULTS_MAX_HEIGHT),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case ShowMsg:
		m.setVisible(true)
		m.items = collectItems(m.tree.Snapshot())
		m.reset()
		cmds = append(cmds, m.input.Focus())
	case HideMsg:
		m.setVisible(false)
		m.reset()
		m.input.Blur()
	case tea.WindowSizeMsg:
		m.setViewSize(msg)
	case tea.KeyMsg:
		if !m.Visible() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.pick):
			if item, ok := m.current(); ok {
				cmds = append(cmds, func() tea.Msg {
					return event.JumpToFieldMsg{ID: item.id}
				}, Hide)
			}
		case key.Matches(msg, m.keys.hide):
			cmds = append(cmds, Hide)
		default:
			prevInputValue := m.input.Value()
			im, iCmd := m.input.Update(msg)
			m.input = im
			cmds = append(cmds, iCmd)
			if prevInputValue != m.input.Value() {
				m.filtered = m.items.filter(m.input.Value())
				m.cursor = 0
			}
		}
		m.scrollToCursor()
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	inputStyle := lipgloss.NewStyle().Margin(0, 0, 1, 0)
	m.srViewport.SetContent(m.renderResults(m.srViewport.Width))
	return m.style.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			inputStyle.Render(m.input.View()),
			m.srViewport.View(),
		),
	)
}

func (m *Model) setVisible(visible bool) {
	m.visible = visible
}

func (m *Model) Visible() bool {
	return m.visible
}

func (m *Model) setViewSize(msg tea.WindowSizeMsg) {
	m.srViewport.Width = msg.Width / KBAR_WIDTH_DIV
	m.srViewport.Height = KBAR_SEARCH_RESULTS_MAX_HEIGHT
	m.input.Width = m.srViewport.Width - 4
}

func (m *Model) reset() {
	m.input.Reset()
	m.cursor = 0
	m.filtered = m.items
	m.srViewport.SetYOffset(0)
}

func (m *Model) current() (kbarItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return kbarItem{}, false
	}
	return m.filtered[m.cursor], true
}

func (m *Model) scrollToCursor() {
	m.srViewport.SetContent(m.renderResults(m.srViewport.Width))
	if m.cursor < m.srViewport.YOffset {
		m.srViewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.srViewport.YOffset+m.srViewport.Height {
		m.srViewport.SetYOffset(m.cursor - m.srViewport.Height + 1)
	}
}

func (m *Model) renderResults(width int) string {
	noResultsStyle := lipgloss.NewStyle().Foreground(theme.Overlay0())
	if len(m.filtered) == 0 {
		return noResultsStyle.Render("No results found.")
	}

	var result []string
	for index, item := range m.filtered {
		style := lipgloss.NewStyle()
		if index == m.cursor {
			style = style.Background(theme.Surface0())
		}
		result = append(result, style.Render(item.render(width)))
	}

	return strings.Join(result, "\n")
}

// subcomponents(not model)
type kbarItem struct {
	id      string
	pointer string
	typ     schema.Type
}

type kbarItems []kbarItem

func collectItems(fields []*schema.Node) kbarItems {
	var items kbarItems
	schema.Walk(fields, func(path schema.Path, n *schema.Node) bool {
		items = append(items, kbarItem{
			id:      n.ID,
			pointer: schema.Pointer(fields, path),
			typ:     n.Type,
		})
		return true
	})
	return items
}

func (i kbarItem) render(width int) string {
	l := lipgloss.NewStyle().
		MaxWidth(width).
		Padding(0, 0, 0, 1)
	t := lipgloss.NewStyle().Foreground(theme.TypeColor(string(i.typ)))
	s := lipgloss.JoinHorizontal(
		lipgloss.Left,
		i.pointer,
		" ",
		t.Render(string(i.typ)),
	)

	return l.Render(s)
}

func (m kbarItems) filter(inputValue string) kbarItems {
	if inputValue == "" {
		return m
	}

	itemStrings := make([]string, 0, len(m))
	for _, item := range m {
		itemStrings = append(itemStrings, item.pointer)
	}

	var items kbarItems
	for _, match := range fuzzy.Find(inputValue, itemStrings) {
		items = append(items, m[match.Index])
	}
	return items
}
