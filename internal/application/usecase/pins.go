package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"memorymap/internal/application/usecase/abstraction"
	"memorymap/internal/domain/entity"
	"memorymap/internal/domain/model"
	"memorymap/internal/domain/normalizer"
	"memorymap/internal/domain/repository/keyvalue"
	"memorymap/pkg/logger"
)

// PinsKey is the fixed storage key holding the whole pin list as one JSON
// array. Writes are last-writer-wins; concurrent processes can clobber each
// other, which is acceptable for a single-user tool.
const PinsKey = "memorymap:pins:v1"

// MaxFileSize caps a single media upload.
const MaxFileSize = 50 * 1024 * 1024

// PinService owns the in-memory pin list exclusively. All mutations persist
// the full normalized list; persistence failures are logged and swallowed so
// a full or locked store never crashes the app.
type PinService struct {
	mu    sync.Mutex
	store keyvalue.Store
	blobs abstraction.BlobStore
	pins  []model.Pin
}

func NewPinService(store keyvalue.Store, blobs abstraction.BlobStore) *PinService {
	return &PinService{
		store: store,
		blobs: blobs,
		pins:  []model.Pin{},
	}
}

// Load reads the persisted list, normalizes every entry and writes the
// normalized form straight back so legacy shapes heal on startup. Any parse
// or storage failure resets to an empty list and never propagates.
func (s *PinService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pins = []model.Pin{}

	raw, err := s.store.LoadRaw(ctx, PinsKey)
	if err != nil {
		logger.Warn("loading pins failed, starting empty", "err", err)

		return
	}
	if raw == nil {
		return
	}

	var data []map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Warn("stored pins are not a valid list, starting empty", "err", err)

		return
	}

	pins := make([]model.Pin, 0, len(data))
	for _, entry := range data {
		pins = append(pins, normalizer.NormalizePin(entry))
	}
	s.pins = pins

	s.persist(ctx)
}

// persist serializes the current list under PinsKey. Callers hold the lock.
func (s *PinService) persist(ctx context.Context) {
	payload, err := json.Marshal(s.pins)
	if err != nil {
		logger.Error("serializing pins failed", "err", err)

		return
	}

	if err := s.store.SaveRaw(ctx, PinsKey, payload); err != nil {
		logger.Warn("persisting pins failed", "err", err)
	}
}

func (s *PinService) List() []model.Pin {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Pin, len(s.pins))
	copy(out, s.pins)

	return out
}

func (s *PinService) Add(ctx context.Context, raw map[string]any) model.Pin {
	p := normalizer.NormalizePin(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pins = append(s.pins, p)
	s.persist(ctx)

	return p
}

func (s *PinService) GetByID(id string) (model.Pin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(strings.TrimSpace(id))
	if i < 0 {
		return model.Pin{}, false
	}

	return s.pins[i], true
}

// RemoveByID drops the first pin with a matching id, a no-op when absent.
func (s *PinService) RemoveByID(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(strings.TrimSpace(id))
	if i < 0 {
		return
	}

	s.pins = append(s.pins[:i], s.pins[i+1:]...)
	s.persist(ctx)
}

// Update applies the recognized patch fields through the normalization
// rules; unknown keys are ignored, media is owned by AddMedia/RemoveMedia.
// A present key with a null value clears the field.
func (s *PinService) Update(ctx context.Context, id string, patch map[string]any) bool {
	target := strings.TrimSpace(id)
	if target == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(target)
	if i < 0 {
		return false
	}
	p := &s.pins[i]

	if v, ok := patch["title"]; ok {
		p.Title = normalizer.TrimmedString(v)
	}
	if v, ok := patch["description"]; ok {
		p.Description = normalizer.TrimmedString(v)
	}
	if v, ok := patch["coverMediaId"]; ok {
		p.CoverMedia = normalizer.OptionalString(v)
	}

	// The date ends patch as a pair: the untouched end keeps its current
	// value and the range is re-normalized as a whole.
	_, hasFrom := patch["dateFrom"]
	_, hasTo := patch["dateTo"]
	if hasFrom || hasTo {
		p.DateFrom, p.DateTo = normalizer.NormalizeDateRange(
			patchValue(patch, "dateFrom", p.DateFrom),
			patchValue(patch, "dateTo", p.DateTo),
		)
	}

	if v, ok := patch["tripId"]; ok {
		p.TripID = normalizer.NormalizeTripID(v)
	}
	if v, ok := patch["visibility"]; ok {
		p.Visibility = normalizer.NormalizeVisibility(v)
	}
	if v, ok := patch["tags"]; ok {
		p.Tags = normalizer.NormalizeTags(v)
	}

	p.UpdatedAt = time.Now().UnixMilli()
	s.persist(ctx)

	return true
}

// DeleteWithMedia removes every blob the pin references, then the pin
// itself. Blob failures never stop the cascade; their count is returned so
// callers can surface partial success. Not transactional: a crash in the
// middle leaves a pin referencing already-deleted blobs.
func (s *PinService) DeleteWithMedia(ctx context.Context, id string) (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(strings.TrimSpace(id))
	if i < 0 {
		return false, 0
	}

	failed := 0
	for _, m := range s.pins[i].Media {
		if err := s.blobs.Delete(ctx, m.ID); err != nil {
			failed++
			logger.Warn("cascade blob delete failed", "pin", s.pins[i].ID, "media", m.ID, "err", err)
		}
	}

	s.pins = append(s.pins[:i], s.pins[i+1:]...)
	s.persist(ctx)

	return true, failed
}

// AddMedia stores each file and appends the resulting refs to the pin.
// Every size is checked before any byte is stored so an oversized file
// rejects the whole batch; a storage failure mid-batch rolls the already
// stored blobs back best-effort.
func (s *PinService) AddMedia(ctx context.Context, pinID string, files []entity.File) ([]model.MediaRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(strings.TrimSpace(pinID))
	if i < 0 {
		return nil, ErrPinNotFound
	}

	if len(files) == 0 {
		return []model.MediaRef{}, nil
	}

	for _, f := range files {
		if f.Size > MaxFileSize {
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, f.Name)
		}
	}

	added := make([]model.MediaRef, 0, len(files))
	for _, f := range files {
		res, err := s.blobs.Save(ctx, f)
		if err != nil {
			for _, ref := range added {
				if delErr := s.blobs.Delete(ctx, ref.ID); delErr != nil {
					logger.Warn("rollback of stored blob failed", "media", ref.ID, "err", delErr)
				}
			}

			return nil, fmt.Errorf("store media: %w", err)
		}

		added = append(added, model.MediaRef{
			ID:   res.ID,
			Type: normalizer.MediaTypeFor(res.Mime),
			Mime: res.Mime,
			Name: res.Name,
		})
	}

	p := &s.pins[i]
	p.Media = normalizer.SanitizeMedia(append(p.Media, added...))
	p.UpdatedAt = time.Now().UnixMilli()
	s.persist(ctx)

	return added, nil
}

// RemoveMedia deletes the blob best-effort, then drops the ref. It persists
// only when a ref was actually removed.
func (s *PinService) RemoveMedia(ctx context.Context, pinID, mediaID string) bool {
	id := strings.TrimSpace(mediaID)
	if id == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(strings.TrimSpace(pinID))
	if i < 0 {
		return false
	}

	if err := s.blobs.Delete(ctx, id); err != nil {
		logger.Warn("blob delete failed, removing ref anyway", "media", id, "err", err)
	}

	p := &s.pins[i]
	idx := -1
	for j, m := range p.Media {
		if m.ID == id {
			idx = j

			break
		}
	}
	if idx < 0 {
		return false
	}

	p.Media = normalizer.SanitizeMedia(append(p.Media[:idx], p.Media[idx+1:]...))
	p.UpdatedAt = time.Now().UnixMilli()
	s.persist(ctx)

	return true
}

// indexOf finds a pin by exact id. Callers hold the lock.
func (s *PinService) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.pins {
		if s.pins[i].ID == id {
			return i
		}
	}

	return -1
}

func patchValue(patch map[string]any, key string, current *string) any {
	if v, ok := patch[key]; ok {
		return v
	}
	if current == nil {
		return nil
	}

	return *current
}
