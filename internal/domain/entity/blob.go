package entity

import (
	"io"

	"memorymap/internal/domain/model"
)

// SaveResult describes a freshly stored blob.
type SaveResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}

// BlobContent couples a blob record with its byte stream. Callers own Body
// and must close it.
type BlobContent struct {
	Meta model.MediaBlob
	Body io.ReadCloser
}
