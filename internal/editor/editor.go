// Package editor wires the schema tree to its live sample and persistence.
package editor

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/flavono123/jsonsketch/internal/logging"
	"github.com/flavono123/jsonsketch/internal/sample"
	"github.com/flavono123/jsonsketch/internal/schema"
	"github.com/flavono123/jsonsketch/internal/store"
	"github.com/flavono123/jsonsketch/internal/tree"
)

// Clipboard receives copied JSON text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

type Options struct {
	Clipboard Clipboard
	Logger    logging.Logger
}

// Editor is one editing session: a tree store whose every change regenerates
// the sample and is saved to the KV.
type Editor struct {
	tree      *tree.Store
	persister *store.Persister
	clipboard Clipboard
	logger    logging.Logger

	mu      sync.RWMutex
	fields  []*schema.Node
	preview *sample.Object

	unsubscribe []func()
}

// Open loads the stored tree from kv and starts a session over it.
func Open(kv store.KV, opts Options) *Editor {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}

	persister := store.NewPersister(kv, opts.Logger)
	t := tree.NewStore(persister.Load(), tree.StoreOptions{Logger: opts.Logger})

	e := &Editor{
		tree:      t,
		persister: persister,
		clipboard: opts.Clipboard,
		logger:    opts.Logger,
	}
	e.refresh(t.Snapshot())

	// the preview is refreshed before the snapshot is saved
	e.unsubscribe = append(e.unsubscribe,
		t.Subscribe(e.refresh),
		persister.Attach(t),
	)
	return e
}

// Tree exposes the structural operations.
func (e *Editor) Tree() *tree.Store {
	return e.tree
}

// Fields returns the tree the current preview was generated from.
func (e *Editor) Fields() []*schema.Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return schema.CloneAll(e.fields)
}

// Sample returns the latest generated document.
func (e *Editor) Sample() *sample.Object {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.preview
}

// JSON renders the latest sample with the given indent.
func (e *Editor) JSON(indent int) (string, error) {
	return sample.Render(e.Sample(), indent)
}

// CopyOut hands the pretty-printed sample to the clipboard and returns it.
func (e *Editor) CopyOut() (string, error) {
	text, err := e.JSON(sample.DefaultIndent)
	if err != nil {
		return "", err
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		e.logger.Warnw("clipboard write failed", "error", err)
		return text, fmt.Errorf("copy to clipboard: %w", err)
	}
	return text, nil
}

// ClearAll empties the schema.
func (e *Editor) ClearAll() {
	e.tree.ClearAll()
}

// Close stops regenerating and saving.
func (e *Editor) Close() {
	for _, fn := range e.unsubscribe {
		fn()
	}
	e.unsubscribe = nil
}

func (e *Editor) refresh(fields []*schema.Node) {
	generated := sample.Generate(fields)

	e.mu.Lock()
	e.fields = fields
	e.preview = generated
	e.mu.Unlock()
}
