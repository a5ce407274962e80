package routes

import (
	"mecanica_xpto_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.StartQuote)
		quotes.GET("/orders/:order_id", quoteHandler.GetCurrentByOrder)
		quotes.GET("/orders/:order_id/history", quoteHandler.GetHistoryByOrder)

		quotes.GET("/:session_id", quoteHandler.GetQuote)
		quotes.POST("/:session_id/refresh", quoteHandler.RefreshQuote)
		quotes.GET("/:session_id/suppliers/:supplier_id/offers", quoteHandler.ListSupplierOffers)
		quotes.POST("/:session_id/approve", quoteHandler.ApproveQuote)
		quotes.POST("/:session_id/cancel", quoteHandler.CancelQuote)

		// Inbound webhook of the messaging integration.
		quotes.POST("/:session_id/replies", quoteHandler.RecordSupplierReply)
	}
}
