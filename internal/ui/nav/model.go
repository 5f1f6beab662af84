package nav

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/jsonsketch/internal/editor"
	"github.com/flavono123/jsonsketch/internal/schema"
	"github.com/flavono123/jsonsketch/internal/tree"
	"github.com/flavono123/jsonsketch/internal/ui/event"
	"github.com/flavono123/jsonsketch/internal/ui/theme"
)

const (
	NAV_HEIGHT_BOTTOM_MARGIN = 5 // topbar 1 + border top, down 2 + help, status 1 + input 1
	NAV_BORDER_WIDTH         = 2

	EMPTY_HINT = "No fields yet. Press a to add one."
)

type Model struct {
	focus  bool
	editor *editor.Editor
	folded map[string]bool // by node id

	vp         viewport.Model
	widthRatio float64

	style  lipgloss.Style
	cursor int
	lines  []*Line

	input   textinput.Model
	editing bool
	editID  string

	keys keyMap
	help help.Model
}

// NewModel renders the tree of e. widthRatio is the share of the window
// the pane takes.
func NewModel(e *editor.Editor, widthRatio float64) *Model {
	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Blue())

	input := textinput.New()
	input.Placeholder = "field key"
	input.Prompt = "key: "
	input.PromptStyle = lipgloss.NewStyle().Foreground(theme.Blue())
	input.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Blue())

	m := &Model{
		focus:      true,
		editor:     e,
		folded:     map[string]bool{},
		vp:         viewport.New(0, 0),
		widthRatio: widthRatio,
		style:      style,
		input:      input,
		keys:       newKeyMap(),
		help:       help.New(),
	}
	m.rebuild()

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var retCmd tea.Cmd

	switch msg := msg.(type) {
	case event.SchemaChangedMsg:
		m.rebuild()
	case event.JumpToFieldMsg:
		m.jumpTo(msg.ID)
	case tea.WindowSizeMsg:
		m.vp.Width = int(float64(msg.Width)*m.widthRatio) - NAV_BORDER_WIDTH
		m.vp.Height = msg.Height - NAV_HEIGHT_BOTTOM_MARGIN
		m.input.Width = m.vp.Width - len(m.input.Prompt) - 1
	case tea.KeyMsg:
		if !m.focus {
			break
		}
		if m.editing {
			retCmd = m.updateEditing(msg)
			break
		}
		retCmd = m.updateBrowsing(msg)
	}

	m.syncViewport()
	return m, retCmd
}

func (m *Model) updateBrowsing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.cursor < len(m.lines)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.fold):
		if line := m.curLine(); line != nil && line.node.Foldable() {
			m.folded[line.node.ID] = !m.folded[line.node.ID]
			m.rebuild()
		}
	case key.Matches(msg, m.keys.add):
		parent := schema.Root
		if line := m.curLine(); line != nil {
			parent, _, _ = line.path.Parent()
		}
		return m.addField(parent)
	case key.Matches(msg, m.keys.addChild):
		line := m.curLine()
		if line == nil {
			return m.addField(schema.Root)
		}
		if !line.node.HasChildren() {
			return event.SetStatus("Only Nested fields and arrays of Nested hold child fields.", event.Warn)
		}
		delete(m.folded, line.node.ID)
		return m.addField(line.path)
	case key.Matches(msg, m.keys.remove):
		line := m.curLine()
		if line == nil {
			break
		}
		parent, index, _ := line.path.Parent()
		if m.editor.Tree().RemoveField(parent, index) {
			delete(m.folded, line.node.ID)
			return m.changed("")
		}
	case key.Matches(msg, m.keys.rename):
		if line := m.curLine(); line != nil {
			return m.startEditing(line.node)
		}
	case key.Matches(msg, m.keys.cycleType):
		line := m.curLine()
		if line == nil {
			break
		}
		next := line.node.Type.Next()
		patch := tree.Patch{Type: &next}
		if next == schema.Array && !line.node.ArrayType.ValidArrayType() {
			arrayType := schema.String
			patch.ArrayType = &arrayType
		}
		return m.update(line, patch)
	case key.Matches(msg, m.keys.cycleArrayType):
		line := m.curLine()
		if line == nil || line.node.Type != schema.Array {
			break
		}
		next := line.node.ArrayType.NextArrayType()
		return m.update(line, tree.Patch{ArrayType: &next})
	case key.Matches(msg, m.keys.moveUp):
		return m.move(-1)
	case key.Matches(msg, m.keys.moveDown):
		return m.move(1)
	}

	return nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.confirm):
		value := m.input.Value()
		id := m.editID
		m.stopEditing()

		line := m.lineByID(id)
		if line == nil {
			return nil
		}
		return m.update(line, tree.Patch{Key: &value})
	case key.Matches(msg, m.keys.cancel):
		m.stopEditing()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) View() string {
	body := m.vp.View()
	if len(m.lines) == 0 {
		hint := lipgloss.NewStyle().Foreground(theme.Overlay0()).Italic(true)
		body = lipgloss.Place(m.vp.Width, m.vp.Height, lipgloss.Left, lipgloss.Top, hint.Render(EMPTY_HINT))
	}

	views := []string{m.renderTopBar(), m.style.Render(body)}
	if m.editing {
		views = append(views, m.input.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (m *Model) HelpView() string {
	if m.editing {
		return m.help.View(editKeyMap{m.keys})
	}
	return m.help.View(m.keys)
}

// Editing reports whether keys go to the key input.
func (m *Model) Editing() bool {
	return m.editing
}

func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = m.style.Border(lipgloss.ThickBorder()).BorderForeground(theme.Blue())
	// nothing to send
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.stopEditing()
	m.style = m.style.Border(lipgloss.NormalBorder()).BorderForeground(theme.Overlay0())
}

// operations

func (m *Model) addField(parent schema.Path) tea.Cmd {
	id, err := m.editor.Tree().AddField(parent)
	if err != nil {
		return event.SetStatus(err.Error(), event.Error)
	}

	changed := m.changed(id)
	line := m.lineByID(id)
	if line == nil {
		return changed
	}
	return tea.Batch(changed, m.startEditing(line.node))
}

func (m *Model) update(line *Line, patch tree.Patch) tea.Cmd {
	if err := m.editor.Tree().UpdateField(line.path, patch); err != nil {
		return event.SetStatus(err.Error(), event.Error)
	}
	return m.changed(line.node.ID)
}

func (m *Model) move(offset int) tea.Cmd {
	line := m.curLine()
	if line == nil {
		return nil
	}

	container, index, _ := line.path.Parent()
	dst := container
	if !m.editor.Tree().Move(container, index, &dst, index+offset) {
		return nil
	}
	return m.changed(line.node.ID)
}

// changed rebuilds the lines and keeps the cursor on id when it is given.
func (m *Model) changed(id string) tea.Cmd {
	m.rebuild()
	if id != "" {
		m.setCursor(id)
	}
	return event.SchemaChanged
}

func (m *Model) startEditing(node *schema.Node) tea.Cmd {
	m.editing = true
	m.editID = node.ID
	m.input.SetValue(node.Key)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.editing = false
	m.editID = ""
	m.input.Blur()
	m.input.Reset()
}

// utils

func (m *Model) rebuild() {
	m.lines = m.buildLines(m.editor.Tree().Snapshot(), schema.Root, 0)
	if m.cursor > len(m.lines)-1 {
		m.cursor = max(len(m.lines)-1, 0)
	}
}

func (m *Model) buildLines(fields []*schema.Node, prefix schema.Path, lineNo int) []*Line {
	lines := []*Line{}
	for i, node := range fields {
		if node == nil {
			continue
		}

		path := prefix.Child(i)
		folded := m.folded[node.ID]
		lines = append(lines, newLine(node, path, folded, lineNo+len(lines)))
		if node.Foldable() && !folded {
			lines = append(lines, m.buildLines(node.Fields, path, lineNo+len(lines))...)
		}
	}

	return lines
}

func (m *Model) curLine() *Line {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return nil
	}
	return m.lines[m.cursor]
}

func (m *Model) lineByID(id string) *Line {
	for _, line := range m.lines {
		if line.node.ID == id {
			return line
		}
	}
	return nil
}

func (m *Model) setCursor(id string) {
	if line := m.lineByID(id); line != nil {
		m.cursor = line.index
	}
}

// jumpTo unfolds the ancestors of id and puts the cursor on it.
func (m *Model) jumpTo(id string) {
	fields := m.editor.Tree().Snapshot()
	schema.Walk(fields, func(path schema.Path, n *schema.Node) bool {
		if n.ID != id {
			return true
		}
		for p, _, ok := path.Parent(); ok && !p.IsRoot(); p, _, ok = p.Parent() {
			if ancestor, found := schema.Resolve(fields, p); found {
				delete(m.folded, ancestor.ID)
			}
		}
		return false
	})

	m.rebuild()
	m.setCursor(id)
}

func (m *Model) syncViewport() {
	m.vp.SetContent(m.render())
	if m.vp.Height <= 0 {
		return
	}

	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *Model) render() string {
	var result strings.Builder
	leftPadding := len(strconv.Itoa(len(m.lines)))

	for _, line := range m.lines {
		result.WriteString(line.render(leftPadding, m.cursor == line.index, m.vp.Width, !m.focus) + "\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

func (m *Model) renderTopBar() string {
	title := lipgloss.NewStyle().Margin(0, 1).Bold(true).Render("Schema")
	pointer := ""
	if line := m.curLine(); line != nil {
		pointer = schema.Pointer(m.editor.Tree().Snapshot(), line.path)
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		title,
		lipgloss.NewStyle().Foreground(theme.Blue()).Render(pointer),
	)
}
