// Package customer 提供客户管理的 HTTP Handler
package customer

import (
	"github.com/gin-gonic/gin"

	"github.com/rakib-007/hotel-reservation-system/internal/common/handler"
	customerService "github.com/rakib-007/hotel-reservation-system/internal/service/customer"
	reservationService "github.com/rakib-007/hotel-reservation-system/internal/service/reservation"
)

// Handler 客户处理器
type Handler struct {
	customerService    *customerService.Service
	reservationService *reservationService.Service
}

// NewHandler 创建客户处理器
func NewHandler(customerSvc *customerService.Service, reservationSvc *reservationService.Service) *Handler {
	return &Handler{
		customerService:    customerSvc,
		reservationService: reservationSvc,
	}
}

// Get 获取客户详情
func (h *Handler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.Get(c.Request.Context(), id)
	handler.MustSucceed(c, err, customer)
}

// List 获取客户列表，支持 keyword 模糊搜索
func (h *Handler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context(), c.Query("keyword"))
	handler.MustSucceed(c, err, customers)
}

// Update 更新客户资料
func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	var req customerService.UpdateRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, customer)
}

// Delete 删除客户档案
func (h *Handler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	err := h.customerService.Delete(c.Request.Context(), id)
	handler.MustSucceed(c, err, nil)
}

// ListReservations 获取客户的预订历史
func (h *Handler) ListReservations(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByCustomer(c.Request.Context(), id)
	handler.MustSucceed(c, err, reservations)
}
