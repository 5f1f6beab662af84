package kbar

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/jsonsketch/internal/schema"
	"github.com/flavono123/jsonsketch/internal/tree"
	"github.com/flavono123/jsonsketch/internal/ui/event"
)

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func pointers(items kbarItems) []string {
	ps := []string{}
	for _, item := range items {
		ps = append(ps, item.pointer)
	}
	return ps
}

var _ = Describe("Kbar", func() {
	var (
		t *tree.Store
		m *Model
	)

	BeforeEach(func() {
		t = tree.NewStore(schema.Default())
		m = NewModel(t)
	})

	It("should start hidden and ignore keys", func() {
		Expect(m.Visible()).To(BeFalse())
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("age")})
		Expect(m.input.Value()).To(BeEmpty())
	})

	It("should list every field when shown", func() {
		m.Update(ShowMsg{})
		Expect(m.Visible()).To(BeTrue())
		Expect(pointers(m.filtered)).To(Equal([]string{"#/user", "#/user/name", "#/user/age"}))
	})

	It("should pick up fields added since it was built", func() {
		_, err := t.AddField(schema.Root)
		Expect(err).NotTo(HaveOccurred())
		m.Update(ShowMsg{})
		Expect(m.filtered).To(HaveLen(4))
	})

	It("should narrow results by fuzzy match", func() {
		m.Update(ShowMsg{})
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("age")})
		Expect(pointers(m.filtered)).To(Equal([]string{"#/user/age"}))
	})

	It("should emit a jump to the picked field and hide", func() {
		age := t.Snapshot()[0].Fields[1]

		m.Update(ShowMsg{})
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		Expect(collect(cmd)).To(ConsistOf(event.JumpToFieldMsg{ID: age.ID}, HideMsg{}))
	})

	It("should not emit a jump without results", func() {
		m.Update(ShowMsg{})
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		Expect(collect(cmd)).NotTo(ContainElement(BeAssignableToTypeOf(event.JumpToFieldMsg{})))
	})

	It("should reset when hidden", func() {
		m.Update(ShowMsg{})
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("age")})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		Expect(collect(cmd)).To(ContainElement(HideMsg{}))

		m.Update(HideMsg{})
		Expect(m.Visible()).To(BeFalse())
		Expect(m.input.Value()).To(BeEmpty())
		Expect(m.cursor).To(Equal(0))
	})
})
