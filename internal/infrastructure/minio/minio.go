package minio

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"memorymap/pkg/logger"
)

type Client struct {
	MinioClient *minio.Client
}

func New(cfg *ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          false,
		TrailingHeaders: true,
	})
	if err != nil {
		return nil, err
	}

	if err := ensureBucket(client, cfg.Bucket); err != nil {
		return nil, err
	}

	return &Client{MinioClient: client}, nil
}

func ensureBucket(client *minio.Client, bucket string) error {
	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}
