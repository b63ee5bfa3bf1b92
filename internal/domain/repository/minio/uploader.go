package minio

import (
	"context"
	"io"
)

// UploadResult reports what actually landed in the bucket.
type UploadResult struct {
	Size int64
	Mime string
}

type Uploader interface {
	Upload(ctx context.Context, objectName string, body io.Reader, size int64, contentType string) (UploadResult, error)
}
