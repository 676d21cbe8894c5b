package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-marketplace-indexer/internal/api/middleware"
	"github.com/feral-file/ff-marketplace-indexer/internal/metrics"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	// Health check and metrics (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Read models (public read access)
		v1.GET("/nfts", handler.ListNFTs)
		v1.GET("/nfts/:collection/:token_id", handler.GetNFT)
		v1.GET("/collections", handler.ListCollections)
		v1.GET("/collections/:address", handler.GetCollection)
		v1.GET("/listings", handler.ListListings)
		v1.GET("/offers", handler.ListOffers)
		v1.GET("/auctions/:collection/:token_id", handler.GetAuction)
		v1.GET("/notifications", handler.ListNotifications)
		v1.GET("/events", handler.ListEvents)
		v1.GET("/verifications/:address", handler.GetVerification)
		v1.GET("/suggestions", handler.ListSuggestions)
		v1.GET("/suggestions/:id", handler.GetSuggestion)

		// Sync progress (public read access)
		v1.GET("/sync/status", handler.GetSyncStatus)

		// Admin endpoints (requires JWT or API key authentication)
		v1.POST("/notifications/:id/hide", middleware.Auth(auth), handler.HideNotification)
		v1.POST("/sync/resync", middleware.Auth(auth), handler.Resync)
	}
}
