package preview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/jsonsketch/internal/editor"
	"github.com/flavono123/jsonsketch/internal/sample"
	"github.com/flavono123/jsonsketch/internal/schema"
	"github.com/flavono123/jsonsketch/internal/store"
	"github.com/flavono123/jsonsketch/internal/tree"
	"github.com/flavono123/jsonsketch/internal/ui/event"
)

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }

var _ = Describe("Preview", func() {
	var e *editor.Editor

	BeforeEach(func() {
		kv, err := store.NewMemoryStore()
		Expect(err).NotTo(HaveOccurred())
		e = editor.Open(kv, editor.Options{Clipboard: nopClipboard{}})
		DeferCleanup(e.Close)
	})

	It("should show the pretty printed sample", func() {
		m := NewModel(e, Options{WidthRatio: 0.5})
		expected, err := sample.Pretty(schema.Default())
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Content()).To(Equal(expected))
	})

	It("should follow schema changes", func() {
		m := NewModel(e, Options{WidthRatio: 0.5})
		_, err := e.Tree().AddField(schema.Root)
		Expect(err).NotTo(HaveOccurred())
		key := "active"
		t := schema.Boolean
		Expect(e.Tree().UpdateField(schema.Path{1}, tree.Patch{Key: &key, Type: &t})).To(Succeed())

		m.Update(event.SchemaChangedMsg{})
		Expect(m.Content()).To(ContainSubstring(`"active": true`))
	})

	It("should show an empty object for an empty tree", func() {
		m := NewModel(e, Options{WidthRatio: 0.5})
		e.ClearAll()
		m.Update(event.SchemaChangedMsg{})
		Expect(m.Content()).To(Equal("{}"))
	})

	It("should wrap long lines to the pane width when enabled", func() {
		narrow := tea.WindowSizeMsg{Width: 12, Height: 20}

		plain := NewModel(e, Options{WidthRatio: 1})
		plain.Update(narrow)
		wrapped := NewModel(e, Options{WidthRatio: 1, Wrap: true})
		wrapped.Update(narrow)

		Expect(strings.Count(wrapped.Content(), "\n")).To(BeNumerically(">", strings.Count(plain.Content(), "\n")))
	})

	It("should scroll only while focused", func() {
		m := NewModel(e, Options{WidthRatio: 1})
		m.Update(tea.WindowSizeMsg{Width: 40, Height: 6})

		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
		Expect(m.vp.YOffset).To(Equal(0))

		m.Focus()
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
		Expect(m.vp.YOffset).To(BeNumerically(">", 0))
	})
})
