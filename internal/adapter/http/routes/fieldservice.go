package routes

import (
	"github.com/gin-gonic/gin"

	"surface_rejuvenators/internal/adapter/http/handlers"
)

const (
	PathCatalog      = "/catalog"
	PathJobs         = "/jobs"
	PathPublicQuotes = "/public/quotes"
	PathInventory    = "/inventory"
)

func addFieldServiceRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	jobHandler *handlers.JobHandler,
	publicQuoteHandler *handlers.PublicQuoteHandler,
	jobSheetHandler *handlers.JobSheetHandler,
	inventoryHandler *handlers.InventoryHandler,
) {
	cat := rg.Group(PathCatalog)
	{
		// The wizard's drill-down lists plus a stateless price preview.
		cat.GET("/categories", catalogHandler.ListCategories)
		cat.GET("/sub-categories", catalogHandler.ListSubCategories)
		cat.GET("/services", catalogHandler.ListServices)
		cat.POST("/price-preview", catalogHandler.PricePreview)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateQuote)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PATCH("/:job_id/status", jobHandler.UpdateStatus)
		jobs.POST("/:job_id/send", jobHandler.SendQuote)
		jobs.POST("/:job_id/items", jobHandler.AddItem)
		jobs.PUT("/:job_id/items/:item_id", jobHandler.ReplaceItem)
		jobs.DELETE("/:job_id/items/:item_id", jobHandler.RemoveItem)

		// Technician job sheet.
		jobs.POST("/:job_id/plan", jobSheetHandler.GeneratePlan)
		jobs.PATCH("/:job_id/plan/steps/:step_index", jobSheetHandler.UpdateStep)
		jobs.PATCH("/:job_id/sheet", jobSheetHandler.UpdateSheet)
		jobs.POST("/:job_id/complete", jobSheetHandler.CompleteJob)
		jobs.POST("/:job_id/delay", jobSheetHandler.MarkDelayed)
	}

	publicQuotes := rg.Group(PathPublicQuotes)
	{
		// Customer-facing, reached through the shared quote link.
		publicQuotes.GET("/:job_id", publicQuoteHandler.GetQuote)
		publicQuotes.POST("/:job_id/preview", publicQuoteHandler.PreviewQuote)
		publicQuotes.POST("/:job_id/approve", publicQuoteHandler.ApproveQuote)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.GET("", inventoryHandler.ListItems)
		inventory.GET("/low-stock", inventoryHandler.ListLowStock)
		inventory.PATCH("/:item_id/stock", inventoryHandler.AdjustStock)
	}
}
