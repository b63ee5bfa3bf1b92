package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"memorymap/internal/domain/model"
	"memorymap/internal/domain/normalizer"
	"memorymap/internal/domain/repository/keyvalue"
	"memorymap/pkg/logger"
)

// TripsKey is the fixed storage key for the whole trip list.
const TripsKey = "memorymap:trips:v1"

// TripService owns the flat trip list, newest first. Trip names are unique
// case-insensitively. Deleting a trip does not touch pins that reference it.
type TripService struct {
	mu    sync.Mutex
	store keyvalue.Store
	trips []model.Trip
}

func NewTripService(store keyvalue.Store) *TripService {
	return &TripService{
		store: store,
		trips: []model.Trip{},
	}
}

// Load reads the persisted list, drops entries without an id and name and
// sorts by creation time descending. Failures reset to an empty list.
func (s *TripService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trips = []model.Trip{}

	raw, err := s.store.LoadRaw(ctx, TripsKey)
	if err != nil {
		logger.Warn("loading trips failed, starting empty", "err", err)

		return
	}
	if raw == nil {
		return
	}

	var data []map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Warn("stored trips are not a valid list, starting empty", "err", err)

		return
	}

	cleaned := make([]model.Trip, 0, len(data))
	for _, entry := range data {
		if t, ok := normalizer.NormalizeTrip(entry); ok {
			cleaned = append(cleaned, t)
		}
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].CreatedAt > cleaned[j].CreatedAt
	})

	s.trips = cleaned
}

func (s *TripService) persist(ctx context.Context) {
	payload, err := json.Marshal(s.trips)
	if err != nil {
		logger.Error("serializing trips failed", "err", err)

		return
	}

	if err := s.store.SaveRaw(ctx, TripsKey, payload); err != nil {
		logger.Warn("persisting trips failed", "err", err)
	}
}

func (s *TripService) List() []model.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Trip, len(s.trips))
	copy(out, s.trips)

	return out
}

// Add creates a trip at the front of the list. Empty names and
// case-insensitive duplicates are rejected without persisting.
func (s *TripService) Add(ctx context.Context, name string) (model.Trip, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return model.Trip{}, ErrEmptyTripName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTaken(n, "") {
		return model.Trip{}, ErrDuplicateTripName
	}

	trip := model.Trip{
		ID:        uuid.NewString(),
		Name:      n,
		CreatedAt: time.Now().UnixMilli(),
	}

	s.trips = append([]model.Trip{trip}, s.trips...)
	s.persist(ctx)

	return trip, nil
}

func (s *TripService) RemoveByID(ctx context.Context, id string) bool {
	key := strings.TrimSpace(id)
	if key == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trips {
		if s.trips[i].ID == key {
			s.trips = append(s.trips[:i], s.trips[i+1:]...)
			s.persist(ctx)

			return true
		}
	}

	return false
}

// Rename rejects empty names and collisions with a different trip.
func (s *TripService) Rename(ctx context.Context, id, newName string) error {
	key := strings.TrimSpace(id)
	n := strings.TrimSpace(newName)
	if n == "" {
		return ErrEmptyTripName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.trips {
		if s.trips[i].ID == key {
			idx = i

			break
		}
	}
	if idx < 0 {
		return ErrTripNotFound
	}

	if s.nameTaken(n, key) {
		return ErrDuplicateTripName
	}

	s.trips[idx].Name = n
	s.persist(ctx)

	return nil
}

func (s *TripService) GetByID(id string) (model.Trip, bool) {
	key := strings.TrimSpace(id)
	if key == "" {
		return model.Trip{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trips {
		if t.ID == key {
			return t, true
		}
	}

	return model.Trip{}, false
}

// NameByID returns "" for unknown trips so views can render orphaned
// references without special cases.
func (s *TripService) NameByID(id string) string {
	t, ok := s.GetByID(id)
	if !ok {
		return ""
	}

	return t.Name
}

// nameTaken reports a case-insensitive name collision with any trip other
// than excludeID. Callers hold the lock.
func (s *TripService) nameTaken(name, excludeID string) bool {
	lower := strings.ToLower(name)
	for _, t := range s.trips {
		if t.ID == excludeID {
			continue
		}
		if strings.ToLower(t.Name) == lower {
			return true
		}
	}

	return false
}
