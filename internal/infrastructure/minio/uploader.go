package minio

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"

	repo "memorymap/internal/domain/repository/minio"
)

// sniffLen is how many leading bytes MIME detection may consume.
const sniffLen = 3072

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Upload streams the body into the bucket under objectName. When the caller
// supplied no content type it is detected from the leading bytes, so stored
// records never carry an empty MIME.
func (u *Uploader) Upload(ctx context.Context, objectName string, body io.Reader, size int64,
	contentType string,
) (repo.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if contentType == "" {
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(body, head)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return repo.UploadResult{}, err
		}
		head = head[:n]

		contentType = mimetype.Detect(head).String()
		body = io.MultiReader(bytes.NewReader(head), body)
	}

	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, objectName, body, size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return repo.UploadResult{}, err
	}

	return repo.UploadResult{
		Size: info.Size,
		Mime: contentType,
	}, nil
}
