// Package room 提供房间管理的 HTTP Handler
package room

import (
	"github.com/gin-gonic/gin"

	"github.com/rakib-007/hotel-reservation-system/internal/common/handler"
	"github.com/rakib-007/hotel-reservation-system/internal/models"
	dashboardService "github.com/rakib-007/hotel-reservation-system/internal/service/dashboard"
	roomService "github.com/rakib-007/hotel-reservation-system/internal/service/room"
)

// Handler 房间处理器
type Handler struct {
	roomService      *roomService.Service
	dashboardService *dashboardService.Service
}

// NewHandler 创建房间处理器
func NewHandler(roomSvc *roomService.Service, dashboardSvc *dashboardService.Service) *Handler {
	return &Handler{
		roomService:      roomSvc,
		dashboardService: dashboardSvc,
	}
}

// Create 创建房间
func (h *Handler) Create(c *gin.Context) {
	var req roomService.CreateRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), &req)
	if err == nil {
		h.dashboardService.InvalidateCache(c.Request.Context())
	}
	handler.MustSucceed(c, err, room)
}

// Get 获取房间详情
func (h *Handler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	room, err := h.roomService.Get(c.Request.Context(), id)
	handler.MustSucceed(c, err, room)
}

// List 获取房间列表，free=true 时只返回空闲房间
func (h *Handler) List(c *gin.Context) {
	var (
		rooms []*models.Room
		err   error
	)
	if c.Query("free") == "true" {
		rooms, err = h.roomService.ListFree(c.Request.Context())
	} else {
		rooms, err = h.roomService.List(c.Request.Context())
	}
	handler.MustSucceed(c, err, rooms)
}

// Update 更新房间类型和价格
func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var req roomService.UpdateRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, room)
}

// SetStatusRequest 调整房间状态请求
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus 人工调整房间状态
func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var req SetStatusRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	room, err := h.roomService.SetStatus(c.Request.Context(), id, models.RoomStatus(req.Status))
	if err == nil {
		h.dashboardService.InvalidateCache(c.Request.Context())
	}
	handler.MustSucceed(c, err, room)
}

// Delete 删除房间
func (h *Handler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	err := h.roomService.Delete(c.Request.Context(), id)
	if err == nil {
		h.dashboardService.InvalidateCache(c.Request.Context())
	}
	handler.MustSucceed(c, err, nil)
}
