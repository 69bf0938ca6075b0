package routes

import (
	"nurseryhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPackages  = "/packages"
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
	PathAdmin     = "/admin"
)

func addFulfillmentRoutes(rg *gin.RouterGroup, packageHandler *handlers.PackageHandler, estimateHandler *handlers.EstimateHandler, syncHandler *handlers.SyncHandler) {
	packages := rg.Group(PathPackages)
	{
		packages.POST("/create", packageHandler.CreatePackage)
		packages.GET("/packagelist", packageHandler.ListPackages)
		packages.GET("/:id", packageHandler.GetPackage)
		packages.PUT("/:id", packageHandler.UpdatePackage)
		packages.DELETE("/:id", packageHandler.DeletePackage)
		packages.POST("/:id/invoice", syncHandler.CreateInvoice)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/:estimateId", estimateHandler.GetEstimate)
		estimates.GET("/:estimateId/packages", estimateHandler.ListEstimatePackages)
		estimates.DELETE("/:estimateId", estimateHandler.DeleteEstimate)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoiceId", syncHandler.GetInvoice)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.POST("/sync/estimates", syncHandler.SyncEstimates)
		admin.POST("/sync/estimates/:estimateId", syncHandler.SyncEstimate)
	}
}
