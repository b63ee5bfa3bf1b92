package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"memorymap/internal/domain/entity"
	"memorymap/internal/domain/model"
)

// fakeKV is an in-memory keyvalue.Store with switchable failures.
type fakeKV struct {
	data    map[string][]byte
	loadErr error
	saveErr error
	saves   int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string][]byte{}}
}

func (f *fakeKV) LoadRaw(_ context.Context, key string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}

	return f.data[key], nil
}

func (f *fakeKV) SaveRaw(_ context.Context, key string, payload []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[key] = payload
	f.saves++

	return nil
}

// fakeBlobStore is an in-memory abstraction.BlobStore. Deletes flagged in
// failDelete report an error but still remove the blob, mimicking a
// transient storage error after the fact.
type fakeBlobStore struct {
	objects    map[string][]byte
	metas      map[string]model.MediaBlob
	seq        int
	failSaveOn string
	failDelete map[string]bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		objects:    map[string][]byte{},
		metas:      map[string]model.MediaBlob{},
		failDelete: map[string]bool{},
	}
}

func (f *fakeBlobStore) Save(_ context.Context, file entity.File) (entity.SaveResult, error) {
	if f.failSaveOn != "" && file.Name == f.failSaveOn {
		return entity.SaveResult{}, errors.New("simulated storage failure")
	}

	data, err := io.ReadAll(file.Body)
	if err != nil {
		return entity.SaveResult{}, err
	}

	mime := file.Mime
	if mime == "" {
		mime = "application/octet-stream"
	}

	f.seq++
	id := fmt.Sprintf("blob-%d", f.seq)
	f.objects[id] = data
	f.metas[id] = model.MediaBlob{
		ID:        id,
		Name:      file.Name,
		Mime:      mime,
		Size:      int64(len(data)),
		CreatedAt: time.Now(),
	}

	return entity.SaveResult{ID: id, Name: file.Name, Mime: mime, Size: int64(len(data))}, nil
}

func (f *fakeBlobStore) Get(_ context.Context, id string) (*entity.BlobContent, error) {
	meta, ok := f.metas[id]
	if !ok {
		return nil, nil
	}

	return &entity.BlobContent{
		Meta: meta,
		Body: io.NopCloser(bytes.NewReader(f.objects[id])),
	}, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, id string) error {
	delete(f.objects, id)
	delete(f.metas, id)

	if f.failDelete[id] {
		return errors.New("simulated delete failure")
	}

	return nil
}
