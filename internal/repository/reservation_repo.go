package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rakib-007/hotel-reservation-system/internal/models"
)

// ReservationRepository 预订仓储
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository 创建预订仓储
func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create 创建预订
func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

// GetByID 根据 ID 获取预订
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetByIDWithDetails 根据 ID 获取预订（包含客户和房间信息）
func (r *ReservationRepository) GetByIDWithDetails(ctx context.Context, id int64) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetByReservationNo 根据预订号获取预订，带客户和房间信息
func (r *ReservationRepository) GetByReservationNo(ctx context.Context, reservationNo string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Where("reservation_no = ?", reservationNo).
		First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ListAll 获取全部预订，最新的在前
func (r *ReservationRepository) ListAll(ctx context.Context) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Order("id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListByStatus 按状态获取预订列表，最新的在前
func (r *ReservationRepository) ListByStatus(ctx context.Context, status models.ReservationStatus) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Where("status = ?", status).
		Order("id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListByCustomer 获取某客户的预订历史，按入住日期倒序
func (r *ReservationRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("customer_id = ?", customerID).
		Order("checkin DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// FindOverlapping 查找与给定日期区间重叠的已确认预订。
// 区间为左闭右开，退房日与下一个入住日相同不算冲突。
func (r *ReservationRepository) FindOverlapping(ctx context.Context, roomID int64, checkin, checkout models.Date) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND status = ?", roomID, models.ReservationStatusConfirmed).
		Where("NOT (checkout <= ? OR checkin >= ?)", checkin, checkout).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListByCheckInDate 获取指定日期应入住的已确认预订
func (r *ReservationRepository) ListByCheckInDate(ctx context.Context, date models.Date) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Where("checkin = ? AND status = ?", date, models.ReservationStatusConfirmed).
		Order("id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListByCheckOutDate 获取指定日期应退房的预订（已入住或仍为已确认）
func (r *ReservationRepository) ListByCheckOutDate(ctx context.Context, date models.Date) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Room").
		Where("checkout = ? AND status IN ?", date, []models.ReservationStatus{
			models.ReservationStatusCheckedIn,
			models.ReservationStatusConfirmed,
		}).
		Order("id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListOverdue 获取退房日期早于指定日期且仍未完结的预订
func (r *ReservationRepository) ListOverdue(ctx context.Context, date models.Date) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Where("checkout < ? AND status IN ?", date, []models.ReservationStatus{
			models.ReservationStatusConfirmed,
			models.ReservationStatusCheckedIn,
		}).
		Order("id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// UpdateStatus 更新预订状态
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// UpdateDates 更新预订的入住和退房日期，同时重算总价
func (r *ReservationRepository) UpdateDates(ctx context.Context, id int64, checkin, checkout models.Date, total float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"checkin":  checkin,
			"checkout": checkout,
			"total":    total,
		}).Error
}

// Count 统计预订总数
func (r *ReservationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Count(&count).Error
	return count, err
}

// CountByStatus 按状态统计预订数量
func (r *ReservationRepository) CountByStatus(ctx context.Context, status models.ReservationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
