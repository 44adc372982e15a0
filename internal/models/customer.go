package models

import (
	"time"
)

// Customer 客人模型。自然身份键为 (Name, Phone)，预订时按此做 find-or-create；
// ID 是历史查询用的持久键。预订历史永久保留，取消不会删除客人记录。
type Customer struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;index:idx_customers_identity" json:"name"`
	Phone       string    `gorm:"type:varchar(20);not null;index:idx_customers_identity" json:"phone"`
	Email       *string   `gorm:"type:varchar(100)" json:"email,omitempty"`
	Address     string    `gorm:"type:varchar(255)" json:"address"`
	NIDPassport string    `gorm:"type:varchar(50)" json:"nid_passport"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Reservations []Reservation `gorm:"foreignKey:CustomerID" json:"reservations,omitempty"`
}

// TableName 表名
func (Customer) TableName() string {
	return "customers"
}
