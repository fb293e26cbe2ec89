package routes

import (
	"tradequote/internal/adapter/http/handlers"
	"tradequote/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathSegments       = "/segments"
	PathProjects       = "/projects"
	PathQuotes         = "/quotes"
	PathVendorServices = "/vendor-services"
	PathVendor         = "/vendor"
)

func addSegmentRoutes(rg *gin.RouterGroup, h *handlers.SegmentHandler) {
	segments := rg.Group(PathSegments)
	{
		segments.GET("", h.ListSegments)
		segments.GET("/:segment_id", h.GetSegment)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	projects := rg.Group(PathProjects, middleware.RequireActor())
	{
		projects.POST("/:project_id/quotes", h.CreateQuote)
		projects.GET("/:project_id/quotes", h.ListProjectQuotes)
	}

	quotes := rg.Group(PathQuotes, middleware.RequireActor())
	{
		quotes.GET("/:quote_id", h.GetQuote)
	}
}

func addVendorRoutes(rg *gin.RouterGroup, services *handlers.VendorServiceHandler, billing *handlers.VendorBillingHandler) {
	vs := rg.Group(PathVendorServices, middleware.RequireVendorEmail())
	{
		vs.GET("", services.ListServices)
		vs.POST("", services.CreateService)
		vs.PUT("/:service_id", services.UpdateService)
		vs.DELETE("/:service_id", services.DeleteService)
	}

	vendor := rg.Group(PathVendor, middleware.RequireVendorEmail())
	{
		vendor.GET("/impressions", billing.ListImpressions)
		vendor.GET("/billing", billing.GetBillingSummary)
		vendor.GET("/billing/invoice", billing.DownloadInvoice)
		vendor.GET("/billing/export", billing.ExportImpressions)
		vendor.POST("/billing/settle", billing.SettleBalance)
		vendor.GET("/billing/payments", billing.ListPayments)
		vendor.GET("/billing/payments/:payment_id", billing.GetPayment)
	}
}
