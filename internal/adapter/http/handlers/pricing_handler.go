package handlers

import (
	"net/http"

	request "burgerbude/internal/adapter/http/dto/request"
	response "burgerbude/internal/adapter/http/dto/response"
	"burgerbude/internal/usecase"
	"burgerbude/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("bad_request", "Invalid quote payload", http.StatusBadRequest)

// PricingHandler serves cart pricing previews.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// Quote godoc
// @Summary  Price a cart without creating an order
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    cart  body  request.QuoteRequest  true  "cart"
// @Success  200  {object}  response.QuoteResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	mode, ok := payload.ResolveMode()
	if !ok {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	breakdown := h.usecase.Quote(payload.ToItems(), mode, payload.PostalCode)
	c.JSON(http.StatusOK, response.FromPricing(breakdown))
}
