package nav

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/jsonsketch/internal/schema"
	"github.com/flavono123/jsonsketch/internal/ui/theme"
)

type Line struct {
	node   *schema.Node
	path   schema.Path
	folded bool

	index int
}

func newLine(node *schema.Node, path schema.Path, folded bool, index int) *Line {
	return &Line{node: node, path: path, folded: folded, index: index}
}

func (l *Line) render(leftPadding int, cursored bool, maxWidth int, blurred bool) string {
	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		l.number(leftPadding),
		l.indent(),
		l.cursor(cursored, blurred),
		l.action(),
		l.renderNode(),
	)

	return lipgloss.NewStyle().MaxWidth(maxWidth).Render(line)
}

func (l *Line) renderNode() string {
	key := lipgloss.NewStyle().Foreground(theme.Text())
	if l.node.Key == "" {
		key = key.Foreground(theme.Overlay0()).Italic(true)
	}
	displayType := lipgloss.NewStyle().Foreground(theme.TypeColor(string(l.node.Type)))

	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		key.Render(l.displayKey()),
		" ",
		displayType.Render(fmt.Sprintf("<%s>", typeLabel(l.node))),
	)
}

func (l *Line) displayKey() string {
	if l.node.Key == "" {
		return "(no key)"
	}
	return l.node.Key
}

func typeLabel(n *schema.Node) string {
	if n.Type == schema.Array {
		arrayType := n.ArrayType
		if arrayType == "" {
			arrayType = schema.String
		}
		return fmt.Sprintf("%s[%s]", n.Type, arrayType)
	}
	return string(n.Type)
}

func (l *Line) number(leftPadding int) string {
	number := lipgloss.NewStyle().Foreground(theme.Overlay0())
	fmtStr := fmt.Sprintf("%%%dd ", leftPadding)
	return number.Render(fmt.Sprintf(fmtStr, l.index+1))
}

func (l *Line) indent() string {
	return strings.Repeat(" ", (len(l.path)-1)*2)
}

func (l *Line) cursor(cursored bool, blurred bool) string {
	if cursored {
		return l.cursorStyle(blurred).Render(">")
	}
	return l.cursorStyle(blurred).Render(" ")
}

func (l *Line) cursorStyle(blurred bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(theme.Blue()).Bold(true)
	if blurred {
		style = style.Foreground(theme.Overlay0()).Bold(false)
	}

	return style
}

func (l *Line) action() string {
	action := lipgloss.NewStyle().Foreground(theme.Subtext1())
	switch {
	case l.node.Foldable() && l.folded:
		return action.Render("+")
	case l.node.Foldable():
		return action.Render("-")
	case l.node.HasChildren():
		// container without children yet
		return action.Render("○")
	}
	return action.Render(" ")
}
