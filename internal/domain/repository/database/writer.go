package database

import (
	"context"

	"memorymap/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, blob *model.MediaBlob) error
}
