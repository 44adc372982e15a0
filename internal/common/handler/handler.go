// Package handler 提供 HTTP 处理器的公共辅助函数
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rakib-007/hotel-reservation-system/internal/common/errors"
	"github.com/rakib-007/hotel-reservation-system/internal/common/logger"
	"github.com/rakib-007/hotel-reservation-system/internal/common/response"
	"github.com/rakib-007/hotel-reservation-system/internal/models"
)

// HandleError 统一处理业务错误并写入响应
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if errors.IsAppError(err) {
		appErr := errors.GetAppError(err)
		logger.Warn("业务错误",
			logger.Module("handler"),
			logger.Action(c.FullPath()),
			logger.Err(appErr),
		)
		response.Error(c, appErr.Code, appErr.Message)
		return
	}

	logger.Error("未知错误",
		logger.Module("handler"),
		logger.Action(c.FullPath()),
		logger.Err(err),
	)
	response.InternalError(c, "")
}

// BindJSON 绑定 JSON 请求体，失败时写入参数错误响应
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Error(c, errors.ErrInvalidParams.Code, "请求参数错误: "+err.Error())
		return false
	}
	return true
}

// ParseID 解析路径中的数字 ID 参数，失败时写入参数错误响应
func ParseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, errors.ErrInvalidParams.Code, "无效的 ID: "+raw)
		return 0, false
	}
	return id, true
}

// MustSucceed 出错时写入错误响应，否则返回成功数据
func MustSucceed(c *gin.Context, err error, data interface{}) {
	if err != nil {
		HandleError(c, err)
		return
	}
	response.Success(c, data)
}

// RequireUserID 从上下文取出认证中间件写入的用户 ID
func RequireUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "")
		return 0, false
	}
	userID, ok := v.(int64)
	if !ok || userID <= 0 {
		response.Unauthorized(c, "")
		return 0, false
	}
	return userID, true
}

// ParseDateQuery 解析查询参数中的日期，缺省时返回 fallback
func ParseDateQuery(c *gin.Context, name string, fallback models.Date) (models.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		response.Error(c, errors.ErrInvalidParams.Code, "无效的日期格式: "+raw)
		return models.Date{}, false
	}
	return d, true
}
