package database

import (
	"context"

	"memorymap/internal/domain/model"
)

// Retriever looks up blob records by id. A missing record yields nil without
// error.
type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.MediaBlob, error)
}
