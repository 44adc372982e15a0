// Package auth 提供前台操作员认证服务
package auth

import (
	"context"

	"gorm.io/gorm"

	"github.com/rakib-007/hotel-reservation-system/internal/common/crypto"
	"github.com/rakib-007/hotel-reservation-system/internal/common/errors"
	"github.com/rakib-007/hotel-reservation-system/internal/common/jwt"
	"github.com/rakib-007/hotel-reservation-system/internal/common/logger"
	"github.com/rakib-007/hotel-reservation-system/internal/repository"
)

// Service 认证服务
type Service struct {
	userRepo   *repository.UserRepository
	jwtManager *jwt.Manager
	bcryptCost int
}

// NewService 创建认证服务
func NewService(userRepo *repository.UserRepository, jwtManager *jwt.Manager, bcryptCost int) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		bcryptCost: bcryptCost,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// Login 用户名密码登录，成功后签发访问令牌。
// 用户不存在与密码错误返回同一错误，不泄露账号是否存在。
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPasswordError
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		logger.Warn("登录失败", logger.Module("auth"), logger.Action("login"))
		return nil, errors.ErrPasswordError
	}

	token, expiresAt, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	logger.Info("登录成功", logger.Module("auth"), logger.Action("login"))
	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}, nil
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ChangePassword 修改当前用户密码
func (s *Service) ChangePassword(ctx context.Context, userID int64, req *ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}

	if !crypto.CheckPassword(req.OldPassword, user.PasswordHash) {
		return errors.ErrPasswordError
	}

	hash, err := crypto.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return errors.ErrInternalError.WithError(err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	return nil
}
