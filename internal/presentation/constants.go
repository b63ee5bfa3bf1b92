package presentation

const (
	IDParam      = "id"
	MediaIDParam = "mediaId"
)
