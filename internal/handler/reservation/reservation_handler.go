// Package reservation 提供预订生命周期的 HTTP Handler
package reservation

import (
	"github.com/gin-gonic/gin"

	"github.com/rakib-007/hotel-reservation-system/internal/common/handler"
	"github.com/rakib-007/hotel-reservation-system/internal/models"
	dashboardService "github.com/rakib-007/hotel-reservation-system/internal/service/dashboard"
	reservationService "github.com/rakib-007/hotel-reservation-system/internal/service/reservation"
)

// Handler 预订处理器
type Handler struct {
	reservationService *reservationService.Service
	dashboardService   *dashboardService.Service
}

// NewHandler 创建预订处理器
func NewHandler(reservationSvc *reservationService.Service, dashboardSvc *dashboardService.Service) *Handler {
	return &Handler{
		reservationService: reservationSvc,
		dashboardService:   dashboardSvc,
	}
}

// Book 创建预订
func (h *Handler) Book(c *gin.Context) {
	var req reservationService.BookRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	reservation, err := h.reservationService.Book(c.Request.Context(), &req)
	if err == nil {
		h.dashboardService.InvalidateCache(c.Request.Context())
	}
	handler.MustSucceed(c, err, reservation)
}

// Get 获取预订详情
func (h *Handler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	reservation, err := h.reservationService.Get(c.Request.Context(), id)
	handler.MustSucceed(c, err, reservation)
}

// List 获取预订列表，status 参数可按状态筛选
func (h *Handler) List(c *gin.Context) {
	var (
		reservations []*models.Reservation
		err          error
	)
	if status := c.Query("status"); status != "" {
		reservations, err = h.reservationService.ListByStatus(c.Request.Context(), status)
	} else {
		reservations, err = h.reservationService.List(c.Request.Context())
	}
	handler.MustSucceed(c, err, reservations)
}

// GetByNo 根据预订号获取预订详情
func (h *Handler) GetByNo(c *gin.Context) {
	reservationNo := c.Param("no")
	reservation, err := h.reservationService.GetByNo(c.Request.Context(), reservationNo)
	handler.MustSucceed(c, err, reservation)
}

// Cancel 取消预订
func (h *Handler) Cancel(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	err := h.reservationService.Cancel(c.Request.Context(), id)
	if err == nil {
		h.dashboardService.InvalidateCache(c.Request.Context())
	}
	handler.MustSucceed(c, err, nil)
}

// CheckIn 办理入住
func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	err := h.reservationService.CheckIn(c.Request.Context(), id)
	if err == nil {
		h.dashboardService.InvalidateCache(c.Request.Context())
	}
	handler.MustSucceed(c, err, nil)
}

// CheckOut 办理退房
func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	err := h.reservationService.CheckOut(c.Request.Context(), id)
	if err == nil {
		h.dashboardService.InvalidateCache(c.Request.Context())
	}
	handler.MustSucceed(c, err, nil)
}

// UpdateDates 修改预订日期
func (h *Handler) UpdateDates(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var req reservationService.UpdateDatesRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	reservation, err := h.reservationService.UpdateDates(c.Request.Context(), id, &req)
	if err == nil {
		h.dashboardService.InvalidateCache(c.Request.Context())
	}
	handler.MustSucceed(c, err, reservation)
}

// SweepPastCheckouts 手动触发逾期退房清扫
func (h *Handler) SweepPastCheckouts(c *gin.Context) {
	completed, err := h.reservationService.AutoCompletePastCheckouts(c.Request.Context())
	if err == nil && completed > 0 {
		h.dashboardService.InvalidateCache(c.Request.Context())
	}
	handler.MustSucceed(c, err, gin.H{"completed": completed})
}

// TodayCheckIns 获取今天应入住的预订
func (h *Handler) TodayCheckIns(c *gin.Context) {
	reservations, err := h.reservationService.TodayCheckIns(c.Request.Context())
	handler.MustSucceed(c, err, reservations)
}

// TodayCheckOuts 获取今天应退房的预订
func (h *Handler) TodayCheckOuts(c *gin.Context) {
	reservations, err := h.reservationService.TodayCheckOuts(c.Request.Context())
	handler.MustSucceed(c, err, reservations)
}
