package store

import (
	"github.com/flavono123/jsonsketch/internal/logging"
	"github.com/flavono123/jsonsketch/internal/schema"
	"github.com/flavono123/jsonsketch/internal/tree"
)

// StorageKey is the well-known key of the persisted schema document.
const StorageKey = "json_schema_data"

// Persister moves schema trees in and out of a KV.
type Persister struct {
	kv     KV
	logger logging.Logger
}

func NewPersister(kv KV, logger logging.Logger) *Persister {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Persister{kv: kv, logger: logger}
}

// Load returns the stored tree, or schema.Default() when nothing usable is
// stored. It never fails.
func (p *Persister) Load() []*schema.Node {
	blob, ok, err := p.kv.Get(StorageKey)
	if err != nil {
		p.logger.Warnw("failed to read stored schema, using default", "error", err)
		return schema.Default()
	}
	if !ok {
		return schema.Default()
	}

	fields, err := schema.DecodeOrDefault(blob)
	if err != nil {
		p.logger.Warnw("stored schema unusable, using default", "error", err)
	}
	return fields
}

// Save writes fields. Failures are logged and reported but leave the caller's
// state alone.
func (p *Persister) Save(fields []*schema.Node) error {
	blob, err := schema.Encode(fields)
	if err != nil {
		p.logger.Errorw("failed to encode schema", "error", err)
		return err
	}
	if err := p.kv.Set(StorageKey, blob); err != nil {
		p.logger.Errorw("failed to persist schema", "error", err)
		return err
	}
	return nil
}

// Attach saves after every change of t.
func (p *Persister) Attach(t *tree.Store) (detach func()) {
	return t.Subscribe(func(fields []*schema.Node) {
		_ = p.Save(fields)
	})
}
