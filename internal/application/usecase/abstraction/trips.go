package abstraction

import (
	"context"

	"memorymap/internal/domain/model"
)

type TripStore interface {
	Load(ctx context.Context)
	List() []model.Trip
	Add(ctx context.Context, name string) (model.Trip, error)
	GetByID(id string) (model.Trip, bool)
	NameByID(id string) string
	RemoveByID(ctx context.Context, id string) bool
	Rename(ctx context.Context, id, newName string) error
}
