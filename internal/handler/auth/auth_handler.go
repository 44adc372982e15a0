// Package auth 提供认证相关的 HTTP Handler
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/rakib-007/hotel-reservation-system/internal/common/handler"
	authService "github.com/rakib-007/hotel-reservation-system/internal/service/auth"
)

// Handler 认证处理器
type Handler struct {
	authService *authService.Service
}

// NewHandler 创建认证处理器
func NewHandler(authSvc *authService.Service) *Handler {
	return &Handler{authService: authSvc}
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req authService.LoginRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}

// ChangePassword 修改当前用户密码
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := handler.RequireUserID(c)
	if !ok {
		return
	}

	var req authService.ChangePasswordRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), userID, &req)
	handler.MustSucceed(c, err, nil)
}
