package routes

import (
	"burgerbude/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTrack = "/track"
)

func addTrackingRoutes(rg *gin.RouterGroup, trackingHandler *handlers.TrackingHandler) {
	track := rg.Group(PathTrack)
	{
		track.GET("/by-order/:orderId", trackingHandler.GetSessionByOrder)
		track.POST("/:session", trackingHandler.RecordPing)
		track.GET("/:session", trackingHandler.GetSession)
	}
}
