package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"memorymap/internal/application/usecase"
	"memorymap/internal/domain/entity"
	"memorymap/internal/domain/model"
	"memorymap/internal/presentation"
)

// memKV is an in-memory keyvalue.Store for handler tests.
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (m *memKV) LoadRaw(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memKV) SaveRaw(_ context.Context, key string, payload []byte) error {
	m.data[key] = payload

	return nil
}

// memBlobs is an in-memory abstraction.BlobStore for handler tests.
type memBlobs struct {
	objects map[string][]byte
	metas   map[string]model.MediaBlob
	seq     int
	getErr  error
}

func newMemBlobs() *memBlobs {
	return &memBlobs{
		objects: map[string][]byte{},
		metas:   map[string]model.MediaBlob{},
	}
}

func (m *memBlobs) Save(_ context.Context, file entity.File) (entity.SaveResult, error) {
	data, err := io.ReadAll(file.Body)
	if err != nil {
		return entity.SaveResult{}, err
	}

	mime := file.Mime
	if mime == "" {
		mime = "application/octet-stream"
	}

	m.seq++
	id := fmt.Sprintf("blob-%d", m.seq)
	m.objects[id] = data
	m.metas[id] = model.MediaBlob{
		ID:        id,
		Name:      file.Name,
		Mime:      mime,
		Size:      int64(len(data)),
		CreatedAt: time.Now(),
	}

	return entity.SaveResult{ID: id, Name: file.Name, Mime: mime, Size: int64(len(data))}, nil
}

func (m *memBlobs) Get(_ context.Context, id string) (*entity.BlobContent, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	meta, ok := m.metas[id]
	if !ok {
		return nil, nil
	}

	return &entity.BlobContent{
		Meta: meta,
		Body: io.NopCloser(bytes.NewReader(m.objects[id])),
	}, nil
}

func (m *memBlobs) Delete(_ context.Context, id string) error {
	if _, ok := m.metas[id]; !ok {
		return errors.New("blob not found")
	}
	delete(m.objects, id)
	delete(m.metas, id)

	return nil
}

type testAPI struct {
	echo  *echo.Echo
	pins  *usecase.PinService
	trips *usecase.TripService
	blobs *memBlobs
	kv    *memKV
}

// newTestAPI wires the full route table over real services with in-memory
// storage, mirroring the server wiring.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	kv := newMemKV()
	blobs := newMemBlobs()

	pins := usecase.NewPinService(kv, blobs)
	trips := usecase.NewTripService(kv)
	pins.Load(context.Background())
	trips.Load(context.Background())

	pinHandler := NewPinHandler(pins)
	tripHandler := NewTripHandler(trips)
	mediaHandler := NewMediaHandler(pins, blobs)

	e := echo.New()
	e.Use(echoMiddleware.Recover())

	e.GET("/pins", pinHandler.HandleList)
	e.POST("/pins", pinHandler.HandleCreate)
	e.GET(fmt.Sprintf("/pins/:%s", presentation.IDParam), pinHandler.HandleGet)
	e.PATCH(fmt.Sprintf("/pins/:%s", presentation.IDParam), pinHandler.HandleUpdate)
	e.DELETE(fmt.Sprintf("/pins/:%s", presentation.IDParam), pinHandler.HandleDelete)

	e.POST(fmt.Sprintf("/pins/:%s/media", presentation.IDParam), mediaHandler.HandleUpload)
	e.DELETE(fmt.Sprintf("/pins/:%s/media/:%s", presentation.IDParam, presentation.MediaIDParam),
		mediaHandler.HandleRemove)
	e.GET(fmt.Sprintf("/media/:%s", presentation.IDParam), mediaHandler.HandleGetBlob)

	e.GET("/trips", tripHandler.HandleList)
	e.POST("/trips", tripHandler.HandleCreate)
	e.GET(fmt.Sprintf("/trips/:%s", presentation.IDParam), tripHandler.HandleGet)
	e.PUT(fmt.Sprintf("/trips/:%s", presentation.IDParam), tripHandler.HandleRename)
	e.DELETE(fmt.Sprintf("/trips/:%s", presentation.IDParam), tripHandler.HandleDelete)

	return &testAPI{echo: e, pins: pins, trips: trips, blobs: blobs, kv: kv}
}

func jsonBody(payload string) (io.Reader, string) {
	return bytes.NewReader([]byte(payload)), echo.MIMEApplicationJSON
}
