package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorymap/internal/domain/model"
)

func multipartBody(t *testing.T, files map[string]string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, content := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		header.Set("Content-Type", "image/jpeg")

		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestMediaUploadAndFetch(t *testing.T) {
	api := newTestAPI(t)

	pin := api.pins.Add(context.Background(), map[string]any{
		"lat": 1.0, "lng": 2.0, "title": "holiday",
	})

	body, contentType := multipartBody(t, map[string]string{"photo.jpg": "jpeg bytes"})
	req := httptest.NewRequest(http.MethodPost, "/pins/"+pin.ID+"/media", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var refs []model.MediaRef
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refs))
	require.Len(t, refs, 1)
	assert.Equal(t, model.MediaTypeImage, refs[0].Type)
	assert.Equal(t, "photo.jpg", refs[0].Name)

	req = httptest.NewRequest(http.MethodGet, "/media/"+refs[0].ID, http.NoBody)
	rec = httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg bytes", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "image/jpeg")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "photo.jpg")
}

func TestMediaUploadMissingPin(t *testing.T) {
	api := newTestAPI(t)

	body, contentType := multipartBody(t, map[string]string{"photo.jpg": "x"})
	req := httptest.NewRequest(http.MethodPost, "/pins/nope/media", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMediaUploadNoFiles(t *testing.T) {
	api := newTestAPI(t)

	pin := api.pins.Add(context.Background(), map[string]any{
		"lat": 1.0, "lng": 2.0, "title": "empty upload",
	})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "no files here"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/pins/"+pin.ID+"/media", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMediaRemove(t *testing.T) {
	api := newTestAPI(t)

	pin := api.pins.Add(context.Background(), map[string]any{
		"lat": 1.0, "lng": 2.0, "title": "cleanup",
	})

	body, contentType := multipartBody(t, map[string]string{"clip.jpg": "data"})
	req := httptest.NewRequest(http.MethodPost, "/pins/"+pin.ID+"/media", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var refs []model.MediaRef
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &refs))
	require.Len(t, refs, 1)

	req = httptest.NewRequest(http.MethodDelete, "/pins/"+pin.ID+"/media/"+refs[0].ID, http.NoBody)
	rec = httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// the blob is gone too
	req = httptest.NewRequest(http.MethodGet, "/media/"+refs[0].ID, http.NoBody)
	rec = httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/pins/"+pin.ID+"/media/"+refs[0].ID, http.NoBody)
	rec = httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMediaGetMissing(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/media/nope", http.NoBody)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMediaGetStorageError(t *testing.T) {
	api := newTestAPI(t)
	api.blobs.getErr = assert.AnError

	req := httptest.NewRequest(http.MethodGet, "/media/any", http.NoBody)
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// internal error details stay out of the response body
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.NotContains(t, rec.Body.String(), "assert.AnError")
}
