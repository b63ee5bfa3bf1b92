package model

// Trip is a named grouping pins can belong to. Pins hold a weak reference
// (TripID); deleting a trip leaves those references dangling on purpose.
type Trip struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}
