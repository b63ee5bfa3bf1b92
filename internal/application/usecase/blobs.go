package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"memorymap/internal/domain/entity"
	"memorymap/internal/domain/model"
	"memorymap/internal/domain/repository/database"
	"memorymap/internal/domain/repository/minio"
	"memorymap/pkg/logger"
)

// BlobService coordinates object bytes with their metadata records. Either
// side can fail independently; Save compensates by removing the object when
// the record write fails.
type BlobService struct {
	writer     database.Writer
	retriever  database.Retriever
	recRemover database.Remover
	uploader   minio.Uploader
	getter     minio.Getter
	objRemover minio.Remover
	bucket     string
}

func NewBlobService(writer database.Writer, retriever database.Retriever, recRemover database.Remover,
	uploader minio.Uploader, getter minio.Getter, objRemover minio.Remover, bucket string,
) *BlobService {
	return &BlobService{
		writer:     writer,
		retriever:  retriever,
		recRemover: recRemover,
		uploader:   uploader,
		getter:     getter,
		objRemover: objRemover,
		bucket:     bucket,
	}
}

func (s *BlobService) Save(ctx context.Context, file entity.File) (entity.SaveResult, error) {
	id := uuid.NewString()

	result, err := s.uploader.Upload(ctx, id, file.Body, file.Size, file.Mime)
	if err != nil {
		return entity.SaveResult{}, fmt.Errorf("store object: %w", err)
	}

	record := &model.MediaBlob{
		ID:        id,
		Name:      file.Name,
		Mime:      result.Mime,
		Size:      result.Size,
		Bucket:    s.bucket,
		CreatedAt: time.Now(),
	}
	if err := s.writer.Write(ctx, record); err != nil {
		if removeErr := s.objRemover.Remove(ctx, id); removeErr != nil {
			logger.Error("failed to remove object after record write failed", "id", id, "err", removeErr)
		}

		return entity.SaveResult{}, fmt.Errorf("store record: %w", err)
	}

	return entity.SaveResult{ID: id, Name: record.Name, Mime: record.Mime, Size: record.Size}, nil
}

func (s *BlobService) Get(ctx context.Context, id string) (*entity.BlobContent, error) {
	record, err := s.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	body, err := s.getter.Get(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("open object: %w", err)
	}

	return &entity.BlobContent{Meta: *record, Body: body}, nil
}

// Delete removes the object and the record. The record removal runs even
// when the object removal failed so a half-deleted blob cannot be served
// again.
func (s *BlobService) Delete(ctx context.Context, id string) error {
	objErr := s.objRemover.Remove(ctx, id)
	recErr := s.recRemover.RemoveByID(ctx, id)

	return errors.Join(objErr, recErr)
}
