package models

import (
	"strings"
	"time"
)

// RoomStatus 房间可用状态（闭合枚举，房态是可用性的唯一权威来源）
type RoomStatus string

// 房间状态
const (
	RoomStatusFree        RoomStatus = "FREE"        // 空闲
	RoomStatusBooked      RoomStatus = "BOOKED"      // 已预订
	RoomStatusOccupied    RoomStatus = "OCCUPIED"    // 入住中
	RoomStatusMaintenance RoomStatus = "MAINTENANCE" // 维护中
)

// ParseRoomStatus 解析房间状态，边界处统一大小写
func ParseRoomStatus(s string) (RoomStatus, bool) {
	status := RoomStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case RoomStatusFree, RoomStatusBooked, RoomStatusOccupied, RoomStatusMaintenance:
		return status, true
	}
	return "", false
}

// Room 房间模型
type Room struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomNumber string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"room_number"`
	Type       string     `gorm:"type:varchar(50);not null" json:"type"`
	Price      float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Status     RoomStatus `gorm:"type:varchar(20);not null;default:FREE" json:"status"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 表名
func (Room) TableName() string {
	return "rooms"
}

// ReservationStatus 预订生命周期状态
type ReservationStatus string

// 预订状态。COMPLETED 与 CANCELLED 为终态，没有定义任何离开终态的迁移。
const (
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"  // 已确认
	ReservationStatusCheckedIn ReservationStatus = "CHECKED_IN" // 已入住
	ReservationStatusCompleted ReservationStatus = "COMPLETED"  // 已完成
	ReservationStatusCancelled ReservationStatus = "CANCELLED"  // 已取消
)

// ParseReservationStatus 解析预订状态，边界处统一大小写
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCompleted, ReservationStatusCancelled:
		return status, true
	}
	return "", false
}

// IsTerminal 是否为终态
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}

// Reservation 预订模型。Checkin/Checkout 为半开区间 [checkin, checkout)，
// Total 在预订或改期时按 夜数 × 房价 计算后落库，读取时不再推导。
type Reservation struct {
	ID            int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ReservationNo string            `gorm:"type:varchar(64);uniqueIndex;not null" json:"reservation_no"`
	CustomerID    int64             `gorm:"index;not null" json:"customer_id"`
	RoomID        int64             `gorm:"index;not null" json:"room_id"`
	Checkin       Date              `gorm:"type:date;not null;index" json:"checkin"`
	Checkout      Date              `gorm:"type:date;not null;index" json:"checkout"`
	Status        ReservationStatus `gorm:"type:varchar(20);not null;default:CONFIRMED" json:"status"`
	Total         float64           `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName 表名
func (Reservation) TableName() string {
	return "reservations"
}

// Nights 入住夜数
func (r *Reservation) Nights() int {
	return r.Checkin.DaysUntil(r.Checkout)
}
