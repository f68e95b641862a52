package attendance

import (
	"context"

	"github.com/comite-bacias/presenca/internal/constant"
)

// Collection is the storage key of one persisted collection.
type Collection string

const (
	CollectionRecords    Collection = constant.COLLECTION_RECORDS
	CollectionSignatures Collection = constant.COLLECTION_SIGNATURES
)

// Port is the durable key/value storage the store writes whole collections to.
type Port interface {
	// Get returns (nil, nil) when key was never written.
	Get(ctx context.Context, key Collection) ([]byte, error)
	Put(ctx context.Context, key Collection, data []byte) error
}

type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
)

// Change describes what a command modified. The caller decides when to persist it.
type Change struct {
	Collection Collection
	Kind       ChangeKind
	ID         string
}

func (c Change) IsZero() bool {
	return c.Collection == ""
}
