package database

import (
	"context"

	"memorymap/internal/domain/model"
)

type MediaWriter struct {
	db *Database
}

func NewMediaWriter(db *Database) *MediaWriter {
	return &MediaWriter{db: db}
}

func (w *MediaWriter) Write(ctx context.Context, blob *model.MediaBlob) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(MediaCollection)

	_, err := coll.InsertOne(ctx, blob)

	return err
}
