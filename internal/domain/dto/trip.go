package dto

type TripRequest struct {
	Name string `json:"name"`
}
