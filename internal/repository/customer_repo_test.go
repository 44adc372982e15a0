// Package repository 客户仓储单元测试
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rakib-007/hotel-reservation-system/internal/models"
)

func setupCustomerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Customer{})
	require.NoError(t, err)

	return db
}

func TestCustomerRepository_FindOrCreate_CreatesNew(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := &models.Customer{Name: "张伟", Phone: "13800000001", Address: "深圳市南山区"}
	got, err := repo.FindOrCreate(ctx, customer)
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, "深圳市南山区", got.Address)
}

func TestCustomerRepository_FindOrCreate_ReturnsExisting(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	first := &models.Customer{Name: "张伟", Phone: "13800000001", Address: "旧地址"}
	require.NoError(t, repo.Create(ctx, first))

	// 同名同号再次提交，返回已有记录且资料不被覆盖
	got, err := repo.FindOrCreate(ctx, &models.Customer{Name: "张伟", Phone: "13800000001", Address: "新地址"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "旧地址", got.Address)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCustomerRepository_FindOrCreate_DifferentPhoneCreatesNew(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Customer{Name: "张伟", Phone: "13800000001"}))

	got, err := repo.FindOrCreate(ctx, &models.Customer{Name: "张伟", Phone: "13900000009"})
	require.NoError(t, err)
	assert.NotZero(t, got.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCustomerRepository_Search(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Customer{Name: "张伟", Phone: "13800000001"}))
	require.NoError(t, repo.Create(ctx, &models.Customer{Name: "张强", Phone: "13800000002"}))
	require.NoError(t, repo.Create(ctx, &models.Customer{Name: "李娜", Phone: "13900000003"}))

	byName, err := repo.Search(ctx, "张")
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	byPhone, err := repo.Search(ctx, "139")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "李娜", byPhone[0].Name)
}

func TestCustomerRepository_Update(t *testing.T) {
	db := setupCustomerTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := &models.Customer{Name: "张伟", Phone: "13800000001"}
	require.NoError(t, repo.Create(ctx, customer))

	customer.Address = "北京市朝阳区"
	require.NoError(t, repo.Update(ctx, customer))

	got, err := repo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "北京市朝阳区", got.Address)
}
