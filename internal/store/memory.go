package store

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const tblBlobs = "blobs"

var memSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tblBlobs: {
			Name: tblBlobs,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Key"},
				},
			},
		},
	},
}

type blobRecord struct {
	Key  string
	Blob []byte
}

// MemoryStore is a KV that lives for the process only.
type MemoryStore struct {
	db *memdb.MemDB
}

func NewMemoryStore() (*MemoryStore, error) {
	db, err := memdb.NewMemDB(memSchema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}
	return &MemoryStore{db: db}, nil
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblBlobs, "id", key)
	if err != nil {
		return nil, false, fmt.Errorf("find blob %s: %w", key, err)
	}
	if raw == nil {
		return nil, false, nil
	}

	record := raw.(*blobRecord)
	blob := make([]byte, len(record.Blob))
	copy(blob, record.Blob)
	return blob, true, nil
}

func (s *MemoryStore) Set(key string, blob []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	record := &blobRecord{Key: key, Blob: make([]byte, len(blob))}
	copy(record.Blob, blob)
	if err := txn.Insert(tblBlobs, record); err != nil {
		return fmt.Errorf("insert blob %s: %w", key, err)
	}
	txn.Commit()
	return nil
}
