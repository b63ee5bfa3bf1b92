package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"memorymap/internal/application/usecase"
	"memorymap/internal/application/usecase/abstraction"
	"memorymap/internal/domain/dto"
	"memorymap/internal/domain/entity"
	"memorymap/internal/presentation"
	"memorymap/pkg/logger"
	"memorymap/pkg/utils"
)

type MediaHandler struct {
	pins  abstraction.PinStore
	blobs abstraction.BlobStore
}

func NewMediaHandler(pins abstraction.PinStore, blobs abstraction.BlobStore) *MediaHandler {
	return &MediaHandler{
		pins:  pins,
		blobs: blobs,
	}
}

// HandleUpload handles POST /pins/:id/media requests with one or more files
// under the "files" multipart field.
func (h *MediaHandler) HandleUpload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "expected multipart form data"})
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no files in request"})
	}

	files := make([]entity.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable file in request"})
		}
		defer f.Close()

		files = append(files, entity.File{
			Name: fh.Filename,
			Mime: fh.Header.Get("Content-Type"),
			Size: fh.Size,
			Body: f,
		})
	}

	refs, err := h.pins.AddMedia(c.Request().Context(), c.Param(presentation.IDParam), files)
	switch {
	case errors.Is(err, usecase.ErrPinNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "pin not found"})
	case errors.Is(err, usecase.ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: err.Error()})
	case err != nil:
		logger.Error("media upload failed", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to store media. Please try again later.",
		})
	}

	return c.JSON(http.StatusCreated, refs)
}

// HandleRemove handles DELETE /pins/:id/media/:mediaId requests.
func (h *MediaHandler) HandleRemove(c echo.Context) error {
	removed := h.pins.RemoveMedia(c.Request().Context(),
		c.Param(presentation.IDParam), c.Param(presentation.MediaIDParam))
	if !removed {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "media not found on pin"})
	}

	return c.NoContent(http.StatusOK)
}

// HandleGetBlob handles GET /media/:id requests and streams the stored
// bytes back with the recorded content type.
func (h *MediaHandler) HandleGetBlob(c echo.Context) error {
	content, err := h.blobs.Get(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		logger.Error("blob retrieval failed", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to read media"})
	}
	if content == nil {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "media not found"})
	}
	defer content.Body.Close()

	mime := content.Meta.Mime
	if mime == "" {
		mime = "application/octet-stream"
	}

	name := content.Meta.Name
	if name == "" {
		name = content.Meta.ID + utils.ExtensionForMime(mime)
	}
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", name))
	c.Response().Header().Set("Content-Length", fmt.Sprintf("%d", content.Meta.Size))

	return c.Stream(http.StatusOK, mime, content.Body)
}
