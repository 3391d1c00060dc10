package routes

import (
	"burgerbude/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing = "/pricing"
)

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/quote", pricingHandler.Quote)
	}
}
