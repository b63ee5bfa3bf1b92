package minio

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

type Getter struct {
	minioClient *minio.Client
	cfg         *GetterConfig
}

func NewGetter(minioClient *minio.Client, cfg *GetterConfig) *Getter {
	return &Getter{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Get opens the object for reading. The stream stays bound to the caller's
// context because reads happen after this returns; no extra timeout is
// layered on. GetObject reports missing objects only on first use, so the
// handle is stat-checked here and closed again on the failure path.
func (g *Getter) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	obj, err := g.minioClient.GetObject(ctx, g.cfg.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()

		return nil, err
	}

	return obj, nil
}
