package handlers

import (
	"errors"
	"net/http"

	request "burgerbude/internal/adapter/http/dto/request"
	response "burgerbude/internal/adapter/http/dto/response"
	"burgerbude/internal/metrics"
	"burgerbude/internal/usecase"
	"burgerbude/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("bad_request", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for the order lifecycle: checkout, the
// dashboard/TV today listing, and manual status/ETA updates.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary  Create an order from the checkout cart
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order  body  request.CreateOrderRequest  true  "checkout payload"
// @Success  201  {object}  response.CreateOrderResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	cmd := payload.ToCommand()
	created, pricing, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(created.Mode)).Inc()
	c.JSON(http.StatusCreated, response.FromCreatedOrder(created, pricing))
}

// ListToday godoc
// @Summary  Today's orders with derived statuses
// @Tags     orders
// @Produce  json
// @Success  200  {object}  response.TodayBoardResponse
// @Router   /orders [get]
func (h *OrderHandler) ListToday(c *gin.Context) {
	board, err := h.usecase.ListToday(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTodayBoard(board))
}

// GetOrder godoc
// @Summary  Single order with derived status
// @Tags     orders
// @Produce  json
// @Param    id  path  string  true  "order id"
// @Success  200  {object}  response.OrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderView(view))
}

// SetStatus godoc
// @Summary  Manual status update from dashboard or kitchen TV
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id      path  string  true  "order id"
// @Param    status  body  request.OrderStatusRequest  true  "new status"
// @Success  200  {object}  response.OkResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /orders/{id}/status [patch]
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.Status); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.Ok())
}

// SetEta godoc
// @Summary  Adjust an order's ETA
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path  string  true  "order id"
// @Param    eta  body  request.OrderEtaRequest  true  "eta change"
// @Success  200  {object}  response.OkResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /orders/{id}/eta [patch]
func (h *OrderHandler) SetEta(c *gin.Context) {
	var payload request.OrderEtaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.AdjustEta(c.Request.Context(), c.Param("id"), payload.EtaMin, payload.AdjustMin); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.Ok())
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrInvalidMode),
		errors.Is(err, usecase.ErrMissingCustomer),
		errors.Is(err, usecase.ErrMissingAddress):
		return pkg.NewDomainErrorSimple("bad_request", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBelowMinimum):
		return pkg.NewDomainErrorSimple("below_minimum", "Order does not meet the delivery minimum", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("invalid_status", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("not_found", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("server_error", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
