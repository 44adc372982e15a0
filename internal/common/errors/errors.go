// Package errors 定义业务错误码和错误处理
package errors

import (
	"fmt"
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的应用错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithMessage 修改错误消息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Err:     e.Err,
	}
}

// WithError 添加原始错误
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// Is 支持 errors.Is 按错误码匹配
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Code == appErr.Code
	}
	return false
}

// 通用错误码 (1000-1999)
var (
	ErrUnknown       = New(1000, "未知错误")
	ErrInvalidParams = New(1001, "参数错误")
	ErrNotFound      = New(1002, "资源不存在")
	ErrDatabaseError = New(1003, "数据库错误")
	ErrInternalError = New(1004, "内部错误")
)

// 认证错误码 (2000-2999)
var (
	ErrUnauthorized  = New(2000, "未登录")
	ErrTokenExpired  = New(2001, "登录已过期")
	ErrTokenInvalid  = New(2002, "无效的令牌")
	ErrPasswordError = New(2003, "用户名或密码错误")
	ErrUserNotFound  = New(2004, "用户不存在")
	ErrUserExists    = New(2005, "用户名已存在")
)

// 客人错误码 (3000-3999)
var (
	ErrCustomerNotFound = New(3000, "客人不存在")
	ErrCustomerInvalid  = New(3001, "客人姓名和电话不能为空")
)

// 房间错误码 (4000-4999)
var (
	ErrRoomNotFound     = New(4000, "房间不存在")
	ErrRoomNumberExists = New(4001, "房间号已存在")
	ErrRoomStatusError  = New(4002, "无效的房间状态")
)

// 预订错误码 (5000-5999)
var (
	ErrReservationNotFound = New(5000, "预订不存在")
	ErrRoomConflict        = New(5001, "房间在所选日期内已被预订")
	ErrInvalidTransition   = New(5002, "预订状态不允许该操作")
	ErrDateRangeInvalid    = New(5003, "退房日期必须晚于入住日期")
)

// Is 判断错误是否属于指定的应用错误（按错误码比较）
func Is(err error, target *AppError) bool {
	appErr, ok := err.(*AppError)
	if !ok || target == nil {
		return false
	}
	return appErr.Code == target.Code
}

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 获取应用错误
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrUnknown.WithError(err)
}
