package abstraction

import (
	"context"

	"memorymap/internal/domain/entity"
	"memorymap/internal/domain/model"
)

// PinStore owns the pin list. Raw input and patches are loosely typed maps
// so legacy field shapes survive the trip through normalization.
type PinStore interface {
	Load(ctx context.Context)
	List() []model.Pin
	Add(ctx context.Context, raw map[string]any) model.Pin
	GetByID(id string) (model.Pin, bool)
	RemoveByID(ctx context.Context, id string)
	Update(ctx context.Context, id string, patch map[string]any) bool
	DeleteWithMedia(ctx context.Context, id string) (bool, int)
	AddMedia(ctx context.Context, pinID string, files []entity.File) ([]model.MediaRef, error)
	RemoveMedia(ctx context.Context, pinID, mediaID string) bool
}
