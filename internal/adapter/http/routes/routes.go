package routes

import (
	"log"
	"os"
	"strconv"

	_ "burgerbude/docs" // This will be auto-generated
	"burgerbude/internal/adapter/http/handlers"
	repository2 "burgerbude/internal/adapter/persistence/repository"
	"burgerbude/internal/infrastructure/database"
	"burgerbude/internal/infrastructure/notify"
	"burgerbude/internal/infrastructure/settings"
	"burgerbude/internal/metrics"
	"burgerbude/internal/usecase"
	"burgerbude/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	metrics.Register()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	orderRepo, trackingRepo := buildRepositories()

	settingsProvider := settings.NewFileProvider(dataDir())
	notifier := notify.NewTelegramNotifier(settingsProvider)

	pricingUseCase := usecase.NewPricingUseCase(settingsProvider)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, pricingUseCase, settingsProvider, notifier)
	trackingUseCase := usecase.NewTrackingUseCase(trackingRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addPricingRoutes(v1, pricingHandler)
	addTrackingRoutes(v1, trackingHandler)
}

// buildRepositories selects the persistence backend. STORAGE_BACKEND=dynamodb
// switches to DynamoDB; anything else uses the JSON file store under DATA_DIR.
func buildRepositories() (interfaces.IOrderRepository, interfaces.ITrackingRepository) {
	if os.Getenv("STORAGE_BACKEND") == "dynamodb" {
		ddb := database.ConnectDynamoDB()
		log.Printf("[routes][storage] using dynamodb backend")
		return repository2.NewOrderDynamoRepository(ddb), repository2.NewTrackingDynamoRepository(ddb)
	}
	dir := dataDir()
	log.Printf("[routes][storage] using file backend at %s", dir)
	return repository2.NewOrderFileRepository(dir), repository2.NewTrackingFileRepository(dir)
}

func dataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "./data"
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestID())
	router.Use(requestMetrics())
}

// requestID tags every request with an id for log correlation, keeping a
// caller-supplied one when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			handler,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
