package nav

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/jsonsketch/internal/editor"
	"github.com/flavono123/jsonsketch/internal/schema"
	"github.com/flavono123/jsonsketch/internal/store"
	"github.com/flavono123/jsonsketch/internal/ui/event"
)

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyShiftDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func lineKeys(m *Model) []string {
	keys := []string{}
	for _, line := range m.lines {
		keys = append(keys, line.node.Key)
	}
	return keys
}

var _ = Describe("Nav", func() {
	var (
		e *editor.Editor
		m *Model
	)

	send := func(keys ...string) tea.Cmd {
		var cmd tea.Cmd
		for _, k := range keys {
			_, cmd = m.Update(press(k))
		}
		return cmd
	}

	userFields := func() []string {
		keys := []string{}
		for _, n := range e.Tree().Snapshot()[0].Fields {
			keys = append(keys, n.Key)
		}
		return keys
	}

	BeforeEach(func() {
		kv, err := store.NewMemoryStore()
		Expect(err).NotTo(HaveOccurred())
		e = editor.Open(kv, editor.Options{Clipboard: nopClipboard{}})
		DeferCleanup(e.Close)
		m = NewModel(e, 0.5)
	})

	Describe("Lines", func() {
		It("should list fields depth first in order", func() {
			Expect(lineKeys(m)).To(Equal([]string{"user", "name", "age"}))
			Expect(m.lines[1].path).To(Equal(schema.Path{0, 0}))
		})

		It("should hide children of a folded field", func() {
			send("space")
			Expect(lineKeys(m)).To(Equal([]string{"user"}))

			send("space")
			Expect(lineKeys(m)).To(Equal([]string{"user", "name", "age"}))
		})

		It("should not move the cursor past the last line", func() {
			send("down", "down", "down", "down")
			Expect(m.cursor).To(Equal(2))
			send("up", "up", "up")
			Expect(m.cursor).To(Equal(0))
		})

		It("should show a hint when the tree is empty", func() {
			e.ClearAll()
			m.Update(event.SchemaChangedMsg{})
			Expect(m.lines).To(BeEmpty())
			Expect(m.View()).To(ContainSubstring(EMPTY_HINT))
		})
	})

	Describe("Add", func() {
		It("should add a sibling and start editing its key", func() {
			cmd := send("a")
			Expect(cmd).NotTo(BeNil())
			Expect(e.Tree().Snapshot()).To(HaveLen(2))
			Expect(m.Editing()).To(BeTrue())
			Expect(m.curLine().path).To(Equal(schema.Path{1}))

			send("id", "enter")
			Expect(m.Editing()).To(BeFalse())
			Expect(e.Tree().Snapshot()[1].Key).To(Equal("id"))
		})

		It("should add a child to a container", func() {
			send("A", "email", "enter")
			Expect(userFields()).To(Equal([]string{"name", "age", "email"}))
			Expect(m.curLine().node.Key).To(Equal("email"))
		})

		It("should refuse children on a primitive field", func() {
			cmd := send("down", "A")
			Expect(cmd).NotTo(BeNil())
			msg, ok := cmd().(event.SetStatusMsg)
			Expect(ok).To(BeTrue())
			Expect(msg.Status).To(Equal(event.Warn))
			Expect(userFields()).To(Equal([]string{"name", "age"}))
		})

		It("should add to the root of an empty tree", func() {
			e.ClearAll()
			m.Update(event.SchemaChangedMsg{})

			send("a", "first", "enter")
			Expect(e.Tree().Snapshot()).To(HaveLen(1))
			Expect(e.Tree().Snapshot()[0].Key).To(Equal("first"))
		})
	})

	Describe("Edit", func() {
		It("should rename the field under the cursor", func() {
			send("down", "enter")
			Expect(m.input.Value()).To(Equal("name"))

			send("_full", "enter")
			Expect(userFields()).To(Equal([]string{"name_full", "age"}))
		})

		It("should keep the key when editing is canceled", func() {
			send("down", "enter", "x", "esc")
			Expect(m.Editing()).To(BeFalse())
			Expect(userFields()).To(Equal([]string{"name", "age"}))
		})

		It("should cycle the type and default the item type of arrays", func() {
			send("down")
			for _, expected := range []schema.Type{schema.Number, schema.Boolean, schema.Nested, schema.Array} {
				send("t")
				Expect(e.Tree().Snapshot()[0].Fields[0].Type).To(Equal(expected))
			}
			Expect(e.Tree().Snapshot()[0].Fields[0].ArrayType).To(Equal(schema.String))

			send("T")
			Expect(e.Tree().Snapshot()[0].Fields[0].ArrayType).To(Equal(schema.Number))
		})

		It("should ignore item type changes on non-arrays", func() {
			Expect(send("down", "T")).To(BeNil())
			Expect(e.Tree().Snapshot()[0].Fields[0].ArrayType).To(BeEmpty())
		})
	})

	Describe("Remove", func() {
		It("should remove the field under the cursor", func() {
			send("down", "d")
			Expect(userFields()).To(Equal([]string{"age"}))
			Expect(m.curLine().node.Key).To(Equal("age"))
		})

		It("should remove a whole subtree", func() {
			send("d")
			Expect(e.Tree().Snapshot()).To(BeEmpty())
			Expect(m.curLine()).To(BeNil())
		})
	})

	Describe("Move", func() {
		It("should move a field within its container and follow it", func() {
			send("down", "shift+down")
			Expect(userFields()).To(Equal([]string{"age", "name"}))
			Expect(m.curLine().node.Key).To(Equal("name"))

			send("K")
			Expect(userFields()).To(Equal([]string{"name", "age"}))
		})

		It("should not move past the container bounds", func() {
			Expect(send("down", "K")).To(BeNil())
			Expect(send("down", "J")).To(BeNil())
			Expect(userFields()).To(Equal([]string{"name", "age"}))
		})
	})

	Describe("Jump", func() {
		It("should unfold ancestors and put the cursor on the field", func() {
			send("space")
			age := e.Tree().Snapshot()[0].Fields[1]

			m.Update(event.JumpToFieldMsg{ID: age.ID})
			Expect(lineKeys(m)).To(Equal([]string{"user", "name", "age"}))
			Expect(m.curLine().node.ID).To(Equal(age.ID))
		})
	})

	Describe("Focus", func() {
		It("should ignore keys while blurred", func() {
			m.Blur()
			send("d")
			Expect(userFields()).To(HaveLen(2))
			Expect(e.Tree().Snapshot()).To(HaveLen(1))
		})
	})
})
