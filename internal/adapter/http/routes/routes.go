package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "surface_rejuvenators/docs" // swag-generated registration
	"surface_rejuvenators/internal/adapter/http/handlers"
	"surface_rejuvenators/internal/adapter/persistence/repository"
	"surface_rejuvenators/internal/domain/catalog"
	"surface_rejuvenators/internal/infrastructure/ai"
	"surface_rejuvenators/internal/infrastructure/config"
	"surface_rejuvenators/internal/infrastructure/logger"
	"surface_rejuvenators/internal/usecase"
	"surface_rejuvenators/internal/usecase/interfaces"
)

var router = gin.Default()

// Run will start the server
func Run() {
	config.LoadConfig()
	logger.InitializeLogger()
	log := logger.GetLogger()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	if err := router.Run(":" + config.AppConfig.AppPort); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(log *zap.Logger) {
	jobRepo := repository.NewMemoryJobRepository(catalog.SeedJobs())
	inventoryRepo := repository.NewMemoryInventoryRepository(catalog.SeedInventory())

	// The planner is optional: without an API key the rest of the service
	// works and plan generation returns 503.
	var planner interfaces.IPlanGenerator
	if config.AppConfig.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, job plan generation disabled")
	} else {
		geminiPlanner, err := ai.NewGeminiPlanner(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			log.Warn("Gemini planner not configured", zap.Error(err))
		} else {
			planner = geminiPlanner
		}
	}

	jobUseCase := usecase.NewJobUseCase(jobRepo, config.AppConfig.PublicQuoteBaseURL)
	approvalUseCase := usecase.NewApprovalUseCase(jobRepo)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo)
	jobSheetUseCase := usecase.NewJobSheetUseCase(jobRepo, inventoryUseCase, planner)

	catalogHandler := handlers.NewCatalogHandler()
	jobHandler := handlers.NewJobHandler(jobUseCase)
	publicQuoteHandler := handlers.NewPublicQuoteHandler(approvalUseCase)
	jobSheetHandler := handlers.NewJobSheetHandler(jobSheetUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFieldServiceRoutes(v1, catalogHandler, jobHandler, publicQuoteHandler, jobSheetHandler, inventoryHandler)
}

func setMiddlewares(log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
