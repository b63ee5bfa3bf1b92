// Package normalizer coerces arbitrary or legacy pin and trip data into the
// canonical shapes. Everything here is pure and idempotent: normalizing an
// already normalized value yields the same value, which lets the stores run
// every loaded entry through it on every startup.
package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"memorymap/internal/domain/model"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// TrimmedString stringifies scalar values the way loosely typed stored data
// demands: numbers become their decimal form, nil becomes "".
func TrimmedString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case json.Number:
		return strings.TrimSpace(s.String())
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func finiteOrZero(v any) float64 {
	f := number(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// NormalizeVisibility coerces anything outside {private, public} to private.
func NormalizeVisibility(v any) string {
	s := TrimmedString(v)
	if s != model.VisibilityPrivate && s != model.VisibilityPublic {
		return model.VisibilityPrivate
	}
	return s
}

// NormalizeTags trims entries, drops empties and de-duplicates
// case-insensitively, keeping first-seen casing and order. Non-list input
// yields an empty set.
func NormalizeTags(v any) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, raw := range anySlice(v) {
		t := TrimmedString(raw)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// NormalizeTripID maps empty or whitespace-only references to nil.
func NormalizeTripID(v any) *string {
	s := TrimmedString(v)
	if s == "" {
		return nil
	}
	return &s
}

// OptionalString trims and maps empty to nil.
func OptionalString(v any) *string {
	s := TrimmedString(v)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeDateRange trims both ends and swaps them when the range is
// reversed, so from <= to holds whenever both are set. ISO dates order
// lexicographically.
func NormalizeDateRange(fromValue, toValue any) (*string, *string) {
	from := OptionalString(fromValue)
	to := OptionalString(toValue)

	if from != nil && to != nil && *from > *to {
		from, to = to, from
	}

	return from, to
}

// MediaTypeFor derives the media kind from a MIME prefix.
func MediaTypeFor(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return model.MediaTypeImage
	case strings.HasPrefix(mime, "video/"):
		return model.MediaTypeVideo
	default:
		return model.MediaTypeFile
	}
}

// SanitizeMedia drops refs without an id and falls back to the file type for
// unknown kinds.
func SanitizeMedia(refs []model.MediaRef) []model.MediaRef {
	out := []model.MediaRef{}
	for _, m := range refs {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			continue
		}

		kind := strings.TrimSpace(m.Type)
		if kind != model.MediaTypeImage && kind != model.MediaTypeVideo && kind != model.MediaTypeFile {
			kind = model.MediaTypeFile
		}

		out = append(out, model.MediaRef{
			ID:   id,
			Type: kind,
			Mime: strings.TrimSpace(m.Mime),
			Name: strings.TrimSpace(m.Name),
		})
	}
	return out
}

// NormalizeMedia accepts a loosely typed media list and sanitizes it.
func NormalizeMedia(v any) []model.MediaRef {
	if typed, ok := v.([]model.MediaRef); ok {
		return SanitizeMedia(typed)
	}

	refs := []model.MediaRef{}
	for _, raw := range anySlice(v) {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		refs = append(refs, model.MediaRef{
			ID:   TrimmedString(m["id"]),
			Type: TrimmedString(m["type"]),
			Mime: TrimmedString(m["mime"]),
			Name: TrimmedString(m["name"]),
		})
	}
	return SanitizeMedia(refs)
}

// NormalizePin coerces an arbitrary raw object into a canonical pin. Missing
// or malformed fields never fail: ids are generated, timestamps default to
// now, reversed date ranges are swapped and legacy single-date records are
// mapped onto DateFrom.
func NormalizePin(raw map[string]any) model.Pin {
	if raw == nil {
		raw = map[string]any{}
	}

	created := int64(0)
	if f := number(raw["createdAt"]); !math.IsNaN(f) && !math.IsInf(f, 0) {
		created = int64(f)
	}
	if created <= 0 {
		created = nowMillis()
	}

	updated := int64(0)
	if f := number(raw["updatedAt"]); !math.IsNaN(f) && !math.IsInf(f, 0) {
		updated = int64(f)
	}
	if updated < created {
		updated = created
	}

	// Legacy records carried a single "date" field.
	fromValue, ok := raw["dateFrom"]
	if !ok || fromValue == nil {
		fromValue = raw["date"]
	}
	from, to := NormalizeDateRange(fromValue, raw["dateTo"])

	id := TrimmedString(raw["id"])
	if id == "" {
		id = uuid.NewString()
	}

	return model.Pin{
		ID:          id,
		Lat:         finiteOrZero(raw["lat"]),
		Lng:         finiteOrZero(raw["lng"]),
		Title:       TrimmedString(raw["title"]),
		Description: TrimmedString(raw["description"]),
		DateFrom:    from,
		DateTo:      to,
		TripID:      NormalizeTripID(raw["tripId"]),
		Visibility:  NormalizeVisibility(raw["visibility"]),
		Tags:        NormalizeTags(raw["tags"]),
		CreatedAt:   created,
		UpdatedAt:   updated,
		Media:       NormalizeMedia(raw["media"]),
		CoverMedia:  OptionalString(raw["coverMediaId"]),
	}
}

// NormalizeTrip validates a raw trip entry. Entries without a non-empty id
// and name are dropped (ok is false).
func NormalizeTrip(raw map[string]any) (model.Trip, bool) {
	if raw == nil {
		return model.Trip{}, false
	}

	id := TrimmedString(raw["id"])
	name := TrimmedString(raw["name"])
	if id == "" || name == "" {
		return model.Trip{}, false
	}

	created := int64(0)
	if f := number(raw["createdAt"]); !math.IsNaN(f) && !math.IsInf(f, 0) {
		created = int64(f)
	}
	if created <= 0 {
		created = nowMillis()
	}

	return model.Trip{ID: id, Name: name, CreatedAt: created}, true
}

func anySlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	default:
		return nil
	}
}
