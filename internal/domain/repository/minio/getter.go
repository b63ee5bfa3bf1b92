package minio

import (
	"context"
	"io"
)

type Getter interface {
	Get(ctx context.Context, objectName string) (io.ReadCloser, error)
}
