package model

const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeFile  = "file"
)

// Pin is a user-created point of interest on the map. Timestamps are Unix
// milliseconds; DateFrom/DateTo are ISO date strings, nil when unset.
type Pin struct {
	ID          string     `json:"id"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DateFrom    *string    `json:"dateFrom"`
	DateTo      *string    `json:"dateTo"`
	TripID      *string    `json:"tripId"`
	Visibility  string     `json:"visibility"`
	Tags        []string   `json:"tags"`
	CreatedAt   int64      `json:"createdAt"`
	UpdatedAt   int64      `json:"updatedAt"`
	Media       []MediaRef `json:"media"`
	CoverMedia  *string    `json:"coverMediaId"`
}

// MediaRef points at a blob owned by exactly one pin.
type MediaRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Mime string `json:"mime"`
	Name string `json:"name"`
}
