package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memorymap/internal/application/usecase/abstraction"
	"memorymap/internal/domain/dto"
	"memorymap/internal/presentation"
)

type PinHandler struct {
	pins abstraction.PinStore
}

func NewPinHandler(pins abstraction.PinStore) *PinHandler {
	return &PinHandler{pins: pins}
}

// HandleList handles GET /pins requests.
func (h *PinHandler) HandleList(c echo.Context) error {
	return c.JSON(http.StatusOK, h.pins.List())
}

// HandleCreate handles POST /pins requests. The payload is taken as-is and
// normalized by the store, so clients on older schemas keep working.
func (h *PinHandler) HandleCreate(c echo.Context) error {
	var raw map[string]any
	if err := c.Bind(&raw); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pin payload"})
	}

	pin := h.pins.Add(c.Request().Context(), raw)

	return c.JSON(http.StatusCreated, pin)
}

// HandleGet handles GET /pins/:id requests.
func (h *PinHandler) HandleGet(c echo.Context) error {
	pin, ok := h.pins.GetByID(c.Param(presentation.IDParam))
	if !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "pin not found"})
	}

	return c.JSON(http.StatusOK, pin)
}

// HandleUpdate handles PATCH /pins/:id requests and returns the updated pin.
func (h *PinHandler) HandleUpdate(c echo.Context) error {
	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid patch payload"})
	}

	id := c.Param(presentation.IDParam)
	if !h.pins.Update(c.Request().Context(), id, patch) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "pin not found"})
	}

	pin, _ := h.pins.GetByID(id)

	return c.JSON(http.StatusOK, pin)
}

// HandleDelete handles DELETE /pins/:id requests, cascading over the pin's
// media. The response reports how many blob deletions failed.
func (h *PinHandler) HandleDelete(c echo.Context) error {
	deleted, failures := h.pins.DeleteWithMedia(c.Request().Context(), c.Param(presentation.IDParam))
	if !deleted {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "pin not found"})
	}

	return c.JSON(http.StatusOK, dto.DeletePinResult{Deleted: true, BlobFailures: failures})
}
