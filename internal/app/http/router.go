package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trackstat/internal/app/http/handler"
	"trackstat/internal/app/http/middleware"
)

func NewRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)

	r.GET("/health", h.Health)

	r.GET("/analytics/progress", h.Progress)
	r.GET("/analytics/burndown", h.Burndown)
	r.GET("/analytics/trend", h.Trend)
	r.GET("/analytics/workload", h.Workload)
	r.GET("/analytics/overdue", h.Overdue)
	r.GET("/analytics/unplanned", h.Unplanned)
	r.GET("/analytics/leadtime", h.LeadTime)

	return r
}
