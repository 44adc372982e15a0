// Package room 提供房间管理服务
package room

import (
	"context"

	"gorm.io/gorm"

	"github.com/rakib-007/hotel-reservation-system/internal/common/errors"
	"github.com/rakib-007/hotel-reservation-system/internal/common/logger"
	"github.com/rakib-007/hotel-reservation-system/internal/common/metrics"
	"github.com/rakib-007/hotel-reservation-system/internal/models"
	"github.com/rakib-007/hotel-reservation-system/internal/repository"
)

// Service 房间服务
type Service struct {
	roomRepo *repository.RoomRepository
}

// NewService 创建房间服务
func NewService(roomRepo *repository.RoomRepository) *Service {
	return &Service{roomRepo: roomRepo}
}

// CreateRequest 创建房间请求
type CreateRequest struct {
	RoomNumber string  `json:"room_number" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
}

// Create 创建房间，房间号必须唯一
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*models.Room, error) {
	_, err := s.roomRepo.GetByNumber(ctx, req.RoomNumber)
	if err == nil {
		return nil, errors.ErrRoomNumberExists
	}
	if err != gorm.ErrRecordNotFound {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	room := &models.Room{
		RoomNumber: req.RoomNumber,
		Type:       req.Type,
		Price:      req.Price,
		Status:     models.RoomStatusFree,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("创建房间", logger.Module("room"), logger.RoomID(room.ID))
	s.refreshFreeGauge(ctx)
	return room, nil
}

// Get 获取房间详情
func (s *Service) Get(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRoomNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return room, nil
}

// List 获取全部房间，按房间号排序
func (s *Service) List(ctx context.Context) ([]*models.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return rooms, nil
}

// ListFree 获取空闲房间，按房间号排序
func (s *Service) ListFree(ctx context.Context) ([]*models.Room, error) {
	rooms, err := s.roomRepo.ListFree(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return rooms, nil
}

// UpdateRequest 更新房间请求
type UpdateRequest struct {
	Type  string  `json:"type" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

// Update 更新房间类型和价格
func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequest) (*models.Room, error) {
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Type = req.Type
	room.Price = req.Price
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return room, nil
}

// SetStatus 人工调整房间状态，主要用于维护标记
func (s *Service) SetStatus(ctx context.Context, id int64, status models.RoomStatus) (*models.Room, error) {
	parsed, ok := models.ParseRoomStatus(string(status))
	if !ok {
		return nil, errors.ErrRoomStatusError
	}

	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.UpdateStatus(ctx, room.ID, parsed); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	room.Status = parsed

	logger.Info("调整房间状态", logger.Module("room"), logger.RoomID(room.ID))
	s.refreshFreeGauge(ctx)
	return room, nil
}

// Delete 删除房间
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}
	s.refreshFreeGauge(ctx)
	return nil
}

func (s *Service) refreshFreeGauge(ctx context.Context) {
	free, err := s.roomRepo.CountByStatus(ctx, models.RoomStatusFree)
	if err != nil {
		return
	}
	metrics.Get().SetFreeRooms(free)
}
