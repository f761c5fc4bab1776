package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trackstat/internal/domain/analytics"
)

type Handler struct {
	AnalyticsSvc analytics.Service
	Log          *zap.Logger
}

func New(analyticsSvc analytics.Service, log *zap.Logger) *Handler {
	return &Handler{
		AnalyticsSvc: analyticsSvc,
		Log:          log,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
