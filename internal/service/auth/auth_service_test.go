// Package auth 认证服务单元测试
package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakib-007/hotel-reservation-system/internal/common/crypto"
	appErrors "github.com/rakib-007/hotel-reservation-system/internal/common/errors"
	"github.com/rakib-007/hotel-reservation-system/internal/common/jwt"
	"github.com/rakib-007/hotel-reservation-system/internal/models"
	"github.com/rakib-007/hotel-reservation-system/internal/repository"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:           "test-secret",
		AccessExpireTime: time.Hour,
		Issuer:           "hotel-test",
	})
	svc := NewService(repository.NewUserRepository(db), jwtManager, bcrypt.MinCost)
	return svc, db
}

func createTestUser(t *testing.T, db *gorm.DB, username, password, role string) *models.User {
	hash, err := crypto.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Username: username, PasswordHash: hash, Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin_Success(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	createTestUser(t, db, "admin", "admin123", models.UserRoleAdmin)

	got, err := svc.Login(ctx, &LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Token)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, models.UserRoleAdmin, got.Role)
	assert.Greater(t, got.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	createTestUser(t, db, "admin", "admin123", models.UserRoleAdmin)

	_, err := svc.Login(ctx, &LoginRequest{Username: "admin", Password: "wrong"})
	assert.True(t, appErrors.Is(err, appErrors.ErrPasswordError))
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &LoginRequest{Username: "nobody", Password: "whatever"})
	assert.True(t, appErrors.Is(err, appErrors.ErrPasswordError))
}

func TestChangePassword(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	user := createTestUser(t, db, "staff1", "oldpass", models.UserRoleStaff)

	err := svc.ChangePassword(ctx, user.ID, &ChangePasswordRequest{
		OldPassword: "oldpass",
		NewPassword: "newpass123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Username: "staff1", Password: "oldpass"})
	assert.True(t, appErrors.Is(err, appErrors.ErrPasswordError))

	got, err := svc.Login(ctx, &LoginRequest{Username: "staff1", Password: "newpass123"})
	require.NoError(t, err)
	assert.Equal(t, "staff1", got.Username)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	user := createTestUser(t, db, "staff1", "oldpass", models.UserRoleStaff)

	err := svc.ChangePassword(ctx, user.ID, &ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newpass123",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrPasswordError))
}
