package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/jsonsketch/internal/editor"
	"github.com/flavono123/jsonsketch/internal/sample"
	"github.com/flavono123/jsonsketch/internal/schema"
	"github.com/flavono123/jsonsketch/internal/store"
	"github.com/flavono123/jsonsketch/internal/ui/event"
	"github.com/flavono123/jsonsketch/internal/ui/kbar"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var _ = Describe("Main", func() {
	var (
		clip *fakeClipboard
		e    *editor.Editor
		m    *mainModel
	)

	BeforeEach(func() {
		clip = &fakeClipboard{}
		kv, err := store.NewMemoryStore()
		Expect(err).NotTo(HaveOccurred())
		e = editor.Open(kv, editor.Options{Clipboard: clip})
		DeferCleanup(e.Close)

		m = InitModel(e, Options{PreviewWidth: 50, PreviewWrap: true})
		m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	})

	Describe("Copy", func() {
		It("should copy the pretty sample and report it", func() {
			_, cmd := m.Update(runes("y"))
			Expect(cmd).NotTo(BeNil())

			expected, err := sample.Pretty(schema.Default())
			Expect(err).NotTo(HaveOccurred())
			Expect(clip.text).To(Equal(expected))
			Expect(m.status.Message).To(Equal(MSG_COPIED))
			Expect(m.View()).To(ContainSubstring(MSG_COPIED))
		})

		It("should report clipboard failures", func() {
			clip.err = errors.New("no display")
			m.Update(runes("y"))
			Expect(m.status.Status).To(Equal(event.Error))
			Expect(e.Tree().Snapshot()).To(HaveLen(1))
		})

		It("should hide the status after it expires", func() {
			m.Update(runes("y"))
			m.Update(event.HideStatusMsg{})
			Expect(m.status).To(BeNil())
		})
	})

	Describe("Clear", func() {
		It("should empty the schema and the preview", func() {
			m.Update(runes("X"))
			Expect(e.Tree().Snapshot()).To(BeEmpty())
			Expect(m.status.Message).To(Equal(MSG_CLEARED))
			Expect(m.preview.Content()).To(Equal("{}"))
		})
	})

	Describe("Focus", func() {
		It("should route keys to the focused pane", func() {
			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			Expect(m.state).To(Equal(previewView))

			m.Update(runes("a"))
			Expect(e.Tree().Snapshot()).To(HaveLen(1))

			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			Expect(m.state).To(Equal(navView))

			m.Update(runes("a"))
			Expect(e.Tree().Snapshot()).To(HaveLen(2))
		})

		It("should send every key to the key input while editing", func() {
			m.Update(runes("a"))
			_, cmd := m.Update(runes("q"))
			if cmd != nil {
				Expect(cmd()).NotTo(Equal(tea.QuitMsg{}))
			}
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})

			Expect(e.Tree().Snapshot()[1].Key).To(Equal("q"))
		})

		It("should quit on q while browsing", func() {
			_, cmd := m.Update(runes("q"))
			Expect(cmd()).To(Equal(tea.QuitMsg{}))
		})
	})

	Describe("Kbar", func() {
		It("should open the finder and jump to the picked field", func() {
			m.Update(tea.KeyMsg{Type: tea.KeyTab})
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
			Expect(cmd()).To(Equal(kbar.ShowMsg{}))
			m.Update(kbar.ShowMsg{})
			Expect(m.kbar.Visible()).To(BeTrue())
			Expect(m.View()).To(ContainSubstring("#/user/age"))

			// keys go to the finder, not the tree
			m.Update(runes("age"))
			Expect(e.Tree().Snapshot()).To(HaveLen(1))

			age := e.Tree().Snapshot()[0].Fields[1]
			m.Update(event.JumpToFieldMsg{ID: age.ID})
			m.Update(kbar.HideMsg{})

			Expect(m.kbar.Visible()).To(BeFalse())
			Expect(m.state).To(Equal(navView))
			Expect(m.nav.View()).To(ContainSubstring("#/user/age"))
		})
	})

	Describe("Edits", func() {
		It("should refresh the preview after a tree change", func() {
			m.Update(runes("a"))
			m.Update(runes("id"))
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			Expect(cmd).NotTo(BeNil())
			Expect(cmd()).To(Equal(event.SchemaChangedMsg{}))
			m.Update(event.SchemaChangedMsg{})

			Expect(m.preview.Content()).To(ContainSubstring(`"id": "Sample String"`))
		})
	})
})
