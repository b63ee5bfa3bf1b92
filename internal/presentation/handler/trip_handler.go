package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"memorymap/internal/application/usecase"
	"memorymap/internal/application/usecase/abstraction"
	"memorymap/internal/domain/dto"
	"memorymap/internal/presentation"
)

type TripHandler struct {
	trips abstraction.TripStore
}

func NewTripHandler(trips abstraction.TripStore) *TripHandler {
	return &TripHandler{trips: trips}
}

// HandleList handles GET /trips requests, newest trip first.
func (h *TripHandler) HandleList(c echo.Context) error {
	return c.JSON(http.StatusOK, h.trips.List())
}

// HandleCreate handles POST /trips requests.
func (h *TripHandler) HandleCreate(c echo.Context) error {
	var req dto.TripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid trip payload"})
	}

	trip, err := h.trips.Add(c.Request().Context(), req.Name)
	if err != nil {
		return c.JSON(tripErrorStatus(err), dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, trip)
}

// HandleGet handles GET /trips/:id requests.
func (h *TripHandler) HandleGet(c echo.Context) error {
	trip, ok := h.trips.GetByID(c.Param(presentation.IDParam))
	if !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "trip not found"})
	}

	return c.JSON(http.StatusOK, trip)
}

// HandleRename handles PUT /trips/:id requests.
func (h *TripHandler) HandleRename(c echo.Context) error {
	var req dto.TripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid trip payload"})
	}

	id := c.Param(presentation.IDParam)
	if err := h.trips.Rename(c.Request().Context(), id, req.Name); err != nil {
		return c.JSON(tripErrorStatus(err), dto.ErrorResponse{Error: err.Error()})
	}

	trip, _ := h.trips.GetByID(id)

	return c.JSON(http.StatusOK, trip)
}

// HandleDelete handles DELETE /trips/:id requests. Pins referencing the trip
// keep their now-dangling tripId.
func (h *TripHandler) HandleDelete(c echo.Context) error {
	if !h.trips.RemoveByID(c.Request().Context(), c.Param(presentation.IDParam)) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "trip not found"})
	}

	return c.NoContent(http.StatusOK)
}

func tripErrorStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrTripNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDuplicateTripName):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
