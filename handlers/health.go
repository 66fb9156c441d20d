package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bodeppav/New-Expense-Tracker-Backend/logger"
)

func (h *Handler) HandleHealthz(c *gin.Context) {
	if err := h.health.Ping(c.Request.Context()); err != nil {
		logger.Get().Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
