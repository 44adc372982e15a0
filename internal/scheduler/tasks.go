package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rakib-007/hotel-reservation-system/internal/common/logger"
	reservationService "github.com/rakib-007/hotel-reservation-system/internal/service/reservation"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	reservationService *reservationService.Service
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(reservationSvc *reservationService.Service) *TaskHandler {
	return &TaskHandler{reservationService: reservationSvc}
}

// AutoCompletePastCheckouts 自动完结退房日期已过的预订
func (h *TaskHandler) AutoCompletePastCheckouts(ctx context.Context) error {
	completed, err := h.reservationService.AutoCompletePastCheckouts(ctx)
	if err != nil {
		return err
	}
	if completed > 0 {
		logger.Info("本轮自动完结预订",
			logger.Module("scheduler"),
			logger.Action("AutoCompletePastCheckouts"),
			zap.Int64("completed", completed),
		)
	}
	return nil
}

// SetupTasks 设置所有任务
func SetupTasks(scheduler *Scheduler, handler *TaskHandler, sweepInterval time.Duration) {
	// 周期扫描过期预订
	scheduler.AddTask("AutoCompletePastCheckouts", sweepInterval, handler.AutoCompletePastCheckouts)
}
