package api

import (
	"net/http"

	journalDelivery "mirror-backend/internal/journal/delivery"
	"mirror-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, journalHandler *journalDelivery.JournalHandler) {
	r.Use(metrics.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Journal routes
	r.POST("/log", journalHandler.CreateLog)
	r.GET("/summary/:user_id", journalHandler.GetSummary)
	r.GET("/reflect/:user_id", journalHandler.GetReflection)
	r.POST("/mirror-chat", journalHandler.MirrorChat)

	// Diagnostics
	debug := r.Group("/debug")
	{
		debug.GET("/ai", journalHandler.ProbeAI)
	}
}
