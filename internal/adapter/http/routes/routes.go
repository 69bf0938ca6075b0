package routes

import (
	"log"
	"strconv"

	_ "nurseryhub/docs" // This will be auto-generated
	"nurseryhub/internal/adapter/http/handlers"
	repository2 "nurseryhub/internal/adapter/persistence/repository"
	"nurseryhub/internal/infrastructure/accounting"
	"nurseryhub/internal/infrastructure/database"
	"nurseryhub/internal/usecase"

	"github.com/gin-gonic/gin"
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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	packageRepo := repository2.NewPackageDynamoRepository(ddb)
	itemRepo := repository2.NewItemDynamoRepository(ddb)
	counterRepo := repository2.NewCounterDynamoRepository(ddb)
	reconcileTx := repository2.NewReconcileTxRepository(ddb)

	quickbooks := accounting.NewQuickBooksClient()

	recompute := usecase.NewRecomputeEngine(estimateRepo, packageRepo)
	packageUseCase := usecase.NewPackageUseCase(estimateRepo, packageRepo, itemRepo, counterRepo, reconcileTx, recompute)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, packageRepo, itemRepo)
	syncUseCase := usecase.NewSyncUseCase(estimateRepo, quickbooks)
	invoiceUseCase := usecase.NewInvoiceUseCase(estimateRepo, packageRepo, quickbooks)

	packageHandler := handlers.NewPackageHandler(packageUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	syncHandler := handlers.NewSyncHandler(syncUseCase, invoiceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFulfillmentRoutes(v1, packageHandler, estimateHandler, syncHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
