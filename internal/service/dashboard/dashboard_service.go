// Package dashboard 提供前台总览统计服务
package dashboard

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rakib-007/hotel-reservation-system/internal/common/cache"
	"github.com/rakib-007/hotel-reservation-system/internal/common/errors"
	"github.com/rakib-007/hotel-reservation-system/internal/common/logger"
	"github.com/rakib-007/hotel-reservation-system/internal/common/metrics"
	"github.com/rakib-007/hotel-reservation-system/internal/models"
	"github.com/rakib-007/hotel-reservation-system/internal/repository"
)

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 30 * time.Second
)

// Service 总览服务。rdb 为 nil 时关闭缓存，每次直接查库。
type Service struct {
	roomRepo        *repository.RoomRepository
	customerRepo    *repository.CustomerRepository
	reservationRepo *repository.ReservationRepository
	rdb             *redis.Client
}

// NewService 创建总览服务
func NewService(
	roomRepo *repository.RoomRepository,
	customerRepo *repository.CustomerRepository,
	reservationRepo *repository.ReservationRepository,
	rdb *redis.Client,
) *Service {
	return &Service{
		roomRepo:        roomRepo,
		customerRepo:    customerRepo,
		reservationRepo: reservationRepo,
		rdb:             rdb,
	}
}

// Summary 总览统计
type Summary struct {
	TotalRooms        int64 `json:"total_rooms"`
	FreeRooms         int64 `json:"free_rooms"`
	OccupiedRooms     int64 `json:"occupied_rooms"`
	TotalCustomers    int64 `json:"total_customers"`
	TotalReservations int64 `json:"total_reservations"`
	ActiveConfirmed   int64 `json:"active_confirmed"`
	ActiveCheckedIn   int64 `json:"active_checked_in"`
	TodayCheckIns     int64 `json:"today_check_ins"`
	TodayCheckOuts    int64 `json:"today_check_outs"`
}

// GetSummary 获取总览统计，命中缓存时直接返回
func (s *Service) GetSummary(ctx context.Context) (*Summary, error) {
	if s.rdb != nil {
		var cached Summary
		err := cache.GetJSON(ctx, s.rdb, summaryCacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !cache.IsMiss(err) {
			logger.Warn("读取总览缓存失败", logger.Module("dashboard"), logger.Err(err))
		}
	}

	summary, err := s.buildSummary(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := cache.SetJSON(ctx, s.rdb, summaryCacheKey, summary, summaryCacheTTL); err != nil {
			logger.Warn("写入总览缓存失败", logger.Module("dashboard"), logger.Err(err))
		}
	}
	return summary, nil
}

func (s *Service) buildSummary(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	var err error
	if summary.TotalRooms, err = s.roomRepo.Count(ctx); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if summary.FreeRooms, err = s.roomRepo.CountByStatus(ctx, models.RoomStatusFree); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if summary.OccupiedRooms, err = s.roomRepo.CountByStatus(ctx, models.RoomStatusOccupied); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if summary.TotalCustomers, err = s.customerRepo.Count(ctx); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if summary.TotalReservations, err = s.reservationRepo.Count(ctx); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if summary.ActiveConfirmed, err = s.reservationRepo.CountByStatus(ctx, models.ReservationStatusConfirmed); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if summary.ActiveCheckedIn, err = s.reservationRepo.CountByStatus(ctx, models.ReservationStatusCheckedIn); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	today := models.Today()
	checkIns, err := s.reservationRepo.ListByCheckInDate(ctx, today)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	summary.TodayCheckIns = int64(len(checkIns))

	checkOuts, err := s.reservationRepo.ListByCheckOutDate(ctx, today)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	summary.TodayCheckOuts = int64(len(checkOuts))

	metrics.Get().SetFreeRooms(summary.FreeRooms)
	return summary, nil
}

// InvalidateCache 清除总览缓存
func (s *Service) InvalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := cache.Delete(ctx, s.rdb, summaryCacheKey); err != nil {
		logger.Warn("清除总览缓存失败", logger.Module("dashboard"), logger.Err(err))
	}
}
