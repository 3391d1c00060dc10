package handlers

import (
	"errors"
	"log"
	"net/http"

	request "burgerbude/internal/adapter/http/dto/request"
	response "burgerbude/internal/adapter/http/dto/response"
	"burgerbude/internal/metrics"
	"burgerbude/internal/usecase"
	"burgerbude/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPingPayload = pkg.NewDomainErrorSimple("bad_request", "Invalid ping payload", http.StatusBadRequest)

// TrackingHandler handles driver location sessions: pings from the driver
// device and reads from the customer-facing tracker.

type TrackingHandler struct {
	usecase usecase.ITrackingUseCase
}

func NewTrackingHandler(uc usecase.ITrackingUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc}
}

// RecordPing godoc
// @Summary  Record a driver location ping
// @Tags     tracking
// @Accept   json
// @Produce  json
// @Param    session  path  string  true  "session id"
// @Param    ping     body  request.TrackPingRequest  true  "location report"
// @Success  200  {object}  response.OkResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /track/{session} [post]
func (h *TrackingHandler) RecordPing(c *gin.Context) {
	var payload request.TrackPingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPingPayload.HTTPStatus, errInvalidPingPayload.ToHTTPError())
		return
	}

	sessionID := c.Param("session")
	if _, err := h.usecase.RecordPing(c.Request.Context(), sessionID, payload.ToCommand()); err != nil {
		log.Printf("[track][handler] ping failed session=%s err=%v", sessionID, err)
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.TrackPingsTotal.Inc()
	c.JSON(http.StatusOK, response.Ok())
}

// GetSession godoc
// @Summary  Read a tracking session
// @Tags     tracking
// @Produce  json
// @Param    session  path  string  true  "session id"
// @Success  200  {object}  response.SessionResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /track/{session} [get]
func (h *TrackingHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.GetSession(c.Request.Context(), c.Param("session"))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// GetSessionByOrder godoc
// @Summary  Resolve the tracking session for an order
// @Tags     tracking
// @Produce  json
// @Param    orderId  path  string  true  "order id"
// @Success  200  {object}  response.SessionByOrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /track/by-order/{orderId} [get]
func (h *TrackingHandler) GetSessionByOrder(c *gin.Context) {
	sessionID, view, err := h.usecase.GetSessionByOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionByOrder(sessionID, view))
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidCoordinates):
		return pkg.NewDomainErrorSimple("bad_request", "Invalid request", http.StatusBadRequest)
	// no_session (order never linked) and not_found (dangling link) are
	// distinct conditions for the tracker UI.
	case errors.Is(err, usecase.ErrNoSessionForOrder):
		return pkg.NewDomainErrorSimple("no_session", "No session linked to order", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("not_found", "Tracking session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("server_error", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
