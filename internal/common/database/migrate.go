package database

import (
	"gorm.io/gorm"

	"github.com/rakib-007/hotel-reservation-system/internal/common/config"
	"github.com/rakib-007/hotel-reservation-system/internal/common/crypto"
	"github.com/rakib-007/hotel-reservation-system/internal/models"
)

// Migrate 建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Customer{},
		&models.Reservation{},
		&models.User{},
	)
}

// Seed 初始化管理员账号和示例房间。重复执行安全：仅在表为空时写入。
func Seed(db *gorm.DB, cfg *config.SeedConfig, bcryptCost int) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := crypto.HashPassword(cfg.AdminPassword, bcryptCost)
		if err != nil {
			return err
		}
		admin := &models.User{
			Username:     cfg.AdminUsername,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
	}

	var roomCount int64
	if err := db.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return err
	}
	if roomCount == 0 {
		rooms := []*models.Room{
			{RoomNumber: "101", Type: "Single", Price: 1500, Status: models.RoomStatusFree},
			{RoomNumber: "102", Type: "Single", Price: 1500, Status: models.RoomStatusFree},
			{RoomNumber: "201", Type: "Double", Price: 2500, Status: models.RoomStatusFree},
			{RoomNumber: "202", Type: "Double", Price: 2500, Status: models.RoomStatusFree},
			{RoomNumber: "301", Type: "Suite", Price: 5000, Status: models.RoomStatusFree},
		}
		if err := db.Create(&rooms).Error; err != nil {
			return err
		}
	}

	return nil
}
