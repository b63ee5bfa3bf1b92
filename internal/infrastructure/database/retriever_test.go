package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorymap/internal/domain/model"
)

func TestGetByID(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)

	writer := NewMediaWriter(db)
	retriever := NewMediaRetriever(db)

	stored := &model.MediaBlob{
		ID:        "aaaabbbb-cccc-dddd-eeee-ffff00001111",
		Name:      "beach.png",
		Mime:      "image/png",
		Size:      1024,
		Bucket:    "memorymap-media",
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}
	require.NoError(t, writer.Write(context.Background(), stored))

	got, err := retriever.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, stored.Name, got.Name)
	assert.Equal(t, stored.Mime, got.Mime)
	assert.Equal(t, stored.Size, got.Size)
	assert.Equal(t, stored.Bucket, got.Bucket)
	assert.WithinDuration(t, stored.CreatedAt, got.CreatedAt, time.Millisecond)

	// unknown ids are reported as absence, not as an error
	missing, err := retriever.GetByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRemoveByID(t *testing.T) {
	t.Parallel()
	uri := setupMongo(t)

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)

	writer := NewMediaWriter(db)
	retriever := NewMediaRetriever(db)
	remover := NewMediaRemover(db)

	blob := &model.MediaBlob{
		ID:        "99998888-7777-6666-5555-444433332222",
		Name:      "notes.pdf",
		Mime:      "application/pdf",
		Size:      512,
		Bucket:    "memorymap-media",
		CreatedAt: time.Now(),
	}
	require.NoError(t, writer.Write(context.Background(), blob))

	require.NoError(t, remover.RemoveByID(context.Background(), blob.ID))

	got, err := retriever.GetByID(context.Background(), blob.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// removing an id that is already gone is not an error
	require.NoError(t, remover.RemoveByID(context.Background(), blob.ID))
}
