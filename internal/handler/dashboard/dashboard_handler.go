// Package dashboard 提供总览统计的 HTTP Handler
package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/rakib-007/hotel-reservation-system/internal/common/handler"
	dashboardService "github.com/rakib-007/hotel-reservation-system/internal/service/dashboard"
)

// Handler 总览处理器
type Handler struct {
	dashboardService *dashboardService.Service
}

// NewHandler 创建总览处理器
func NewHandler(dashboardSvc *dashboardService.Service) *Handler {
	return &Handler{dashboardService: dashboardSvc}
}

// Summary 获取总览统计
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	handler.MustSucceed(c, err, summary)
}
