// Package tree holds the editable schema tree and its structural operations.
package tree

import (
	"errors"
	"sync"

	"github.com/flavono123/jsonsketch/internal/logging"
	"github.com/flavono123/jsonsketch/internal/schema"
)

var (
	ErrPathNotFound = errors.New("path does not resolve to a field")
	ErrNotContainer = errors.New("field type does not hold child fields")
	ErrInvalidType  = errors.New("unknown field type")
)

// Patch carries the attributes UpdateField merges. Nil members are left
// untouched.
type Patch struct {
	Key       *string
	Type      *schema.Type
	ArrayType *schema.Type
}

// Listener receives a snapshot of the tree after each successful mutation.
type Listener func(fields []*schema.Node)

type subscription struct {
	id int
	fn Listener
}

// Store is the single source of truth for a schema tree. Every successful
// mutation notifies listeners synchronously before it returns; operations
// that change nothing do not notify.
type Store struct {
	mu     sync.RWMutex
	fields []*schema.Node

	subMu  sync.Mutex
	subs   []subscription
	nextID int

	logger logging.Logger
}

// StoreOptions configures the store.
type StoreOptions struct {
	Logger logging.Logger
}

// NewStore creates a store holding a copy of fields.
func NewStore(fields []*schema.Node, opts ...StoreOptions) *Store {
	var opt StoreOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Logger == nil {
		opt.Logger = logging.Nop()
	}

	return &Store{
		fields: schema.CloneAll(fields),
		logger: opt.Logger,
	}
}

// Subscribe registers fn for change notifications. Listeners run in
// subscription order.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a deep copy of the tree.
func (s *Store) Snapshot() []*schema.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return schema.CloneAll(s.fields)
}

// Get returns a copy of the node at path.
func (s *Store) Get(path schema.Path) (*schema.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node, ok := schema.Resolve(s.fields, path)
	if !ok {
		return nil, false
	}
	return node.Clone(), true
}

// Len returns the length of the sequence at container, or -1 if it does not
// resolve.
func (s *Store) Len(container schema.Path) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, ok := s.sequence(container)
	if !ok {
		return -1
	}
	return len(*seq)
}

// AddField appends a blank String field to the sequence at parent and
// returns its id. parent must be the root or a field that holds children.
func (s *Store) AddField(parent schema.Path) (string, error) {
	s.mu.Lock()

	seq, ok := s.sequence(parent)
	if !ok {
		s.mu.Unlock()
		return "", ErrPathNotFound
	}
	if !parent.IsRoot() {
		node, _ := schema.Resolve(s.fields, parent)
		if !node.HasChildren() {
			s.mu.Unlock()
			return "", ErrNotContainer
		}
	}

	node := schema.NewNode()
	*seq = append(*seq, node)
	s.logger.Debugw("field added", "parent", parent.String(), "id", node.ID)

	s.commit()
	return node.ID, nil
}

// RemoveField deletes the node at index in the sequence at parent, along
// with its subtree. Unresolvable locations are ignored.
func (s *Store) RemoveField(parent schema.Path, index int) bool {
	s.mu.Lock()

	seq, ok := s.sequence(parent)
	if !ok || index < 0 || index >= len(*seq) {
		s.mu.Unlock()
		s.logger.Debugw("remove ignored", "parent", parent.String(), "index", index)
		return false
	}

	removed := (*seq)[index]
	*seq = append((*seq)[:index:index], (*seq)[index+1:]...)
	s.logger.Debugw("field removed", "parent", parent.String(), "id", removed.ID)

	s.commit()
	return true
}

// UpdateField merges patch into the node at path. Switching Type does not
// clear ArrayType or Fields.
func (s *Store) UpdateField(path schema.Path, patch Patch) error {
	if patch.Type != nil && !patch.Type.Valid() {
		return ErrInvalidType
	}
	if patch.ArrayType != nil && !patch.ArrayType.ValidArrayType() {
		return ErrInvalidType
	}

	s.mu.Lock()

	node, ok := schema.Resolve(s.fields, path)
	if !ok {
		s.mu.Unlock()
		return ErrPathNotFound
	}

	changed := false
	if patch.Key != nil && node.Key != *patch.Key {
		node.Key = *patch.Key
		changed = true
	}
	if patch.Type != nil && node.Type != *patch.Type {
		node.Type = *patch.Type
		changed = true
	}
	if patch.ArrayType != nil && node.ArrayType != *patch.ArrayType {
		node.ArrayType = *patch.ArrayType
		changed = true
	}
	if !changed {
		s.mu.Unlock()
		return nil
	}
	if node.Fields == nil && node.HasChildren() {
		node.Fields = []*schema.Node{}
	}
	s.logger.Debugw("field updated", "path", path.String(), "id", node.ID)

	s.commit()
	return nil
}

// Reorder moves the node at from to position to within the same sequence.
func (s *Store) Reorder(container schema.Path, from, to int) bool {
	s.mu.Lock()

	seq, ok := s.sequence(container)
	if !ok || from == to || from < 0 || from >= len(*seq) || to < 0 || to >= len(*seq) {
		s.mu.Unlock()
		return false
	}

	items := *seq
	moved := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = moved
	s.logger.Debugw("field reordered", "container", container.String(), "from", from, "to", to)

	s.commit()
	return true
}

// Move applies a drag-and-drop report. Drops without a destination or into a
// different container are ignored.
func (s *Store) Move(src schema.Path, srcIndex int, dst *schema.Path, dstIndex int) bool {
	if dst == nil || !src.Equal(*dst) {
		s.logger.Debugw("move ignored", "src", src.String())
		return false
	}
	return s.Reorder(src, srcIndex, dstIndex)
}

// ClearAll empties the tree.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.fields = []*schema.Node{}
	s.logger.Debug("tree cleared")
	s.commit()
}

// Replace installs a copy of fields as the whole tree.
func (s *Store) Replace(fields []*schema.Node) {
	s.mu.Lock()
	s.fields = schema.CloneAll(fields)
	s.commit()
}

// sequence resolves container to the slice it addresses. Callers hold mu.
func (s *Store) sequence(container schema.Path) (*[]*schema.Node, bool) {
	if container.IsRoot() {
		return &s.fields, true
	}
	node, ok := schema.Resolve(s.fields, container)
	if !ok {
		return nil, false
	}
	return &node.Fields, true
}

// commit releases mu and notifies listeners with the post-mutation state.
func (s *Store) commit() {
	snapshot := schema.CloneAll(s.fields)
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	// each listener owns its copy
	for _, sub := range subs {
		sub.fn(schema.CloneAll(snapshot))
	}
}
