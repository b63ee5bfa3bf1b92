package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"memorymap/internal/domain/model"
)

type MediaRetriever struct {
	db *Database
}

func NewMediaRetriever(db *Database) *MediaRetriever {
	return &MediaRetriever{db: db}
}

// GetByID returns nil without error for unknown ids; callers treat that as
// "blob gone", not as a failure.
func (r *MediaRetriever) GetByID(ctx context.Context, id string) (*model.MediaBlob, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(MediaCollection)

	var blob model.MediaBlob
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&blob)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &blob, nil
}
