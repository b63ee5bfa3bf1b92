package abstraction

import (
	"context"

	"memorymap/internal/domain/entity"
)

// BlobStore is durable storage for raw media bytes plus their metadata
// records. Get returns nil when the id is unknown.
type BlobStore interface {
	Save(ctx context.Context, file entity.File) (entity.SaveResult, error)
	Get(ctx context.Context, id string) (*entity.BlobContent, error)
	Delete(ctx context.Context, id string) error
}
