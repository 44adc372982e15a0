// Package reservation 提供预订生命周期服务。
// 预订状态机为 CONFIRMED -> CHECKED_IN -> COMPLETED，
// CONFIRMED 和 CHECKED_IN 均可转入 CANCELLED，终态不可再变更。
package reservation

import (
	"context"

	"gorm.io/gorm"

	"github.com/rakib-007/hotel-reservation-system/internal/common/database"
	"github.com/rakib-007/hotel-reservation-system/internal/common/errors"
	"github.com/rakib-007/hotel-reservation-system/internal/common/logger"
	"github.com/rakib-007/hotel-reservation-system/internal/common/metrics"
	"github.com/rakib-007/hotel-reservation-system/internal/common/utils"
	"github.com/rakib-007/hotel-reservation-system/internal/models"
	"github.com/rakib-007/hotel-reservation-system/internal/repository"
)

// Service 预订服务
type Service struct {
	db              *gorm.DB
	reservationRepo *repository.ReservationRepository
	roomRepo        *repository.RoomRepository
	customerRepo    *repository.CustomerRepository
}

// NewService 创建预订服务
func NewService(
	db *gorm.DB,
	reservationRepo *repository.ReservationRepository,
	roomRepo *repository.RoomRepository,
	customerRepo *repository.CustomerRepository,
) *Service {
	return &Service{
		db:              db,
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		customerRepo:    customerRepo,
	}
}

// BookRequest 创建预订请求
type BookRequest struct {
	GuestName    string      `json:"guest_name" binding:"required"`
	GuestPhone   string      `json:"guest_phone" binding:"required"`
	GuestEmail   string      `json:"guest_email"`
	GuestAddress string      `json:"guest_address"`
	NIDPassport  string      `json:"nid_passport"`
	RoomID       int64       `json:"room_id" binding:"required"`
	Checkin      models.Date `json:"checkin" binding:"required"`
	Checkout     models.Date `json:"checkout" binding:"required"`
}

// Book 创建预订。
// 在单个事务内完成客户查找或创建、冲突检测、预订落库和房间状态更新，
// 日期冲突时整个事务回滚，不留下任何部分写入。
func (s *Service) Book(ctx context.Context, req *BookRequest) (*models.Reservation, error) {
	if req.GuestName == "" || req.GuestPhone == "" {
		return nil, errors.ErrCustomerInvalid
	}
	if err := validateDateRange(req.Checkin, req.Checkout); err != nil {
		return nil, err
	}
	if req.GuestEmail != "" && !utils.ValidateEmail(req.GuestEmail) {
		return nil, errors.ErrCustomerInvalid.WithMessage("邮箱格式不正确")
	}

	var created *models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roomRepo := repository.NewRoomRepository(tx)
		customerRepo := repository.NewCustomerRepository(tx)
		reservationRepo := repository.NewReservationRepository(tx)

		room, err := roomRepo.GetByID(ctx, req.RoomID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}

		customer := &models.Customer{
			Name:        req.GuestName,
			Phone:       req.GuestPhone,
			Address:     req.GuestAddress,
			NIDPassport: req.NIDPassport,
		}
		if req.GuestEmail != "" {
			customer.Email = utils.StringPtr(req.GuestEmail)
		}
		customer, err = customerRepo.FindOrCreate(ctx, customer)
		if err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}

		overlapping, err := reservationRepo.FindOverlapping(ctx, room.ID, req.Checkin, req.Checkout)
		if err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		if len(overlapping) > 0 {
			return errors.ErrRoomConflict
		}

		created = &models.Reservation{
			ReservationNo: utils.GenerateReservationNo("R"),
			CustomerID:    customer.ID,
			RoomID:        room.ID,
			Checkin:       req.Checkin,
			Checkout:      req.Checkout,
			Status:        models.ReservationStatusConfirmed,
			Total:         float64(req.Checkin.DaysUntil(req.Checkout)) * room.Price,
		}
		if err := reservationRepo.Create(ctx, created); err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}

		if err := roomRepo.UpdateStatus(ctx, room.ID, models.RoomStatusBooked); err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errors.ErrRoomConflict) {
			metrics.Get().RecordReservationOp(metrics.OpBook, metrics.ResultConflict)
		} else {
			metrics.Get().RecordReservationOp(metrics.OpBook, metrics.ResultError)
		}
		return nil, err
	}

	metrics.Get().RecordReservationOp(metrics.OpBook, metrics.ResultOK)
	logger.Info("创建预订成功",
		logger.Module("reservation"),
		logger.ReservationID(created.ID),
		logger.RoomID(created.RoomID),
		logger.CustomerID(created.CustomerID),
	)
	return s.Get(ctx, created.ID)
}

// Get 获取预订详情（包含客户和房间信息）
func (s *Service) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReservationNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservation, nil
}

// GetByNo 根据预订号获取预订详情
func (s *Service) GetByNo(ctx context.Context, reservationNo string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByReservationNo(ctx, reservationNo)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReservationNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservation, nil
}

// List 获取全部预订，最新的在前
func (s *Service) List(ctx context.Context) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservations, nil
}

// ListByStatus 按状态筛选预订，最新的在前
func (s *Service) ListByStatus(ctx context.Context, status string) ([]*models.Reservation, error) {
	parsed, ok := models.ParseReservationStatus(status)
	if !ok {
		return nil, errors.ErrInvalidParams.WithMessage("无效的预订状态: " + status)
	}
	reservations, err := s.reservationRepo.ListByStatus(ctx, parsed)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservations, nil
}

// ListByCustomer 获取某客户的预订历史
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Reservation, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCustomerNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	reservations, err := s.reservationRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservations, nil
}

// Cancel 取消预订，释放房间。
// 仅允许取消 CONFIRMED 或 CHECKED_IN 状态的预订。
func (s *Service) Cancel(ctx context.Context, id int64) error {
	err := s.transition(ctx, id, metrics.OpCancel, func(r *models.Reservation) (models.ReservationStatus, models.RoomStatus, error) {
		if r.Status.IsTerminal() {
			return "", "", errors.ErrInvalidTransition.WithMessage("预订已完结，无法取消")
		}
		return models.ReservationStatusCancelled, models.RoomStatusFree, nil
	})
	if err == nil {
		logger.Info("取消预订", logger.Module("reservation"), logger.ReservationID(id))
	}
	return err
}

// CheckIn 办理入住，仅允许 CONFIRMED 状态
func (s *Service) CheckIn(ctx context.Context, id int64) error {
	err := s.transition(ctx, id, metrics.OpCheckIn, func(r *models.Reservation) (models.ReservationStatus, models.RoomStatus, error) {
		if r.Status != models.ReservationStatusConfirmed {
			return "", "", errors.ErrInvalidTransition.WithMessage("仅已确认的预订可以办理入住")
		}
		return models.ReservationStatusCheckedIn, models.RoomStatusOccupied, nil
	})
	if err == nil {
		logger.Info("办理入住", logger.Module("reservation"), logger.ReservationID(id))
	}
	return err
}

// CheckOut 办理退房，仅允许 CHECKED_IN 状态
func (s *Service) CheckOut(ctx context.Context, id int64) error {
	err := s.transition(ctx, id, metrics.OpCheckOut, func(r *models.Reservation) (models.ReservationStatus, models.RoomStatus, error) {
		if r.Status != models.ReservationStatusCheckedIn {
			return "", "", errors.ErrInvalidTransition.WithMessage("仅已入住的预订可以办理退房")
		}
		return models.ReservationStatusCompleted, models.RoomStatusFree, nil
	})
	if err == nil {
		logger.Info("办理退房", logger.Module("reservation"), logger.ReservationID(id))
	}
	return err
}

// transition 在事务内执行一次状态迁移并同步房间状态
func (s *Service) transition(ctx context.Context, id int64, operation string, decide func(*models.Reservation) (models.ReservationStatus, models.RoomStatus, error)) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reservationRepo := repository.NewReservationRepository(tx)
		roomRepo := repository.NewRoomRepository(tx)

		reservation, err := reservationRepo.GetByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrReservationNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}

		nextStatus, roomStatus, err := decide(reservation)
		if err != nil {
			return err
		}

		if err := reservationRepo.UpdateStatus(ctx, id, nextStatus); err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		if err := roomRepo.UpdateStatus(ctx, reservation.RoomID, roomStatus); err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		metrics.Get().RecordReservationOp(operation, metrics.ResultError)
		return err
	}
	metrics.Get().RecordReservationOp(operation, metrics.ResultOK)
	return nil
}

// UpdateDatesRequest 修改预订日期请求
type UpdateDatesRequest struct {
	Checkin  models.Date `json:"checkin" binding:"required"`
	Checkout models.Date `json:"checkout" binding:"required"`
}

// UpdateDates 修改预订的入住和退房日期并按房价重算总价。
// 已入住的预订也可以改期（延住场景）。改期不重新做冲突检测，
// 与创建时不同，结果以最后一次写入为准。
func (s *Service) UpdateDates(ctx context.Context, id int64, req *UpdateDatesRequest) (*models.Reservation, error) {
	if err := validateDateRange(req.Checkin, req.Checkout); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reservationRepo := repository.NewReservationRepository(tx)
		roomRepo := repository.NewRoomRepository(tx)

		reservation, err := reservationRepo.GetByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrReservationNotFound
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		room, err := roomRepo.GetByID(ctx, reservation.RoomID)
		if err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}

		total := float64(req.Checkin.DaysUntil(req.Checkout)) * room.Price
		if err := reservationRepo.UpdateDates(ctx, id, req.Checkin, req.Checkout, total); err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// TodayCheckIns 获取今天应入住的预订
func (s *Service) TodayCheckIns(ctx context.Context) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.ListByCheckInDate(ctx, models.Today())
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservations, nil
}

// TodayCheckOuts 获取今天应退房的预订
func (s *Service) TodayCheckOuts(ctx context.Context) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.ListByCheckOutDate(ctx, models.Today())
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return reservations, nil
}

// AutoCompletePastCheckouts 将退房日期早于今天且仍未完结的预订置为 COMPLETED 并释放房间。
// 由定时任务周期调用。数据库忙时本轮静默跳过，等待下一轮重试。
func (s *Service) AutoCompletePastCheckouts(ctx context.Context) (int64, error) {
	var completed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reservationRepo := repository.NewReservationRepository(tx)
		roomRepo := repository.NewRoomRepository(tx)

		overdue, err := reservationRepo.ListOverdue(ctx, models.Today())
		if err != nil {
			return err
		}
		for _, r := range overdue {
			if err := reservationRepo.UpdateStatus(ctx, r.ID, models.ReservationStatusCompleted); err != nil {
				return err
			}
			if err := roomRepo.UpdateStatus(ctx, r.RoomID, models.RoomStatusFree); err != nil {
				return err
			}
			completed++
		}
		return nil
	})
	if err != nil {
		if database.IsBusy(err) {
			logger.Debug("数据库忙，跳过本轮自动完结", logger.Module("reservation"))
			return 0, nil
		}
		return 0, errors.ErrDatabaseError.WithError(err)
	}

	if completed > 0 {
		metrics.Get().AddSweepCompleted(completed)
		logger.Info("自动完结过期预订",
			logger.Module("reservation"),
			logger.Action("auto_complete"),
		)
	}
	return completed, nil
}

func validateDateRange(checkin, checkout models.Date) error {
	if checkin.IsZero() || checkout.IsZero() {
		return errors.ErrDateRangeInvalid.WithMessage("入住和退房日期不能为空")
	}
	if !checkout.After(checkin) {
		return errors.ErrDateRangeInvalid
	}
	return nil
}
