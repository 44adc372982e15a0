// Package main 是应用程序入口
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rakib-007/hotel-reservation-system/internal/common/config"
	"github.com/rakib-007/hotel-reservation-system/internal/common/jwt"
	"github.com/rakib-007/hotel-reservation-system/internal/common/metrics"
	authHandler "github.com/rakib-007/hotel-reservation-system/internal/handler/auth"
	customerHandler "github.com/rakib-007/hotel-reservation-system/internal/handler/customer"
	dashboardHandler "github.com/rakib-007/hotel-reservation-system/internal/handler/dashboard"
	reservationHandler "github.com/rakib-007/hotel-reservation-system/internal/handler/reservation"
	roomHandler "github.com/rakib-007/hotel-reservation-system/internal/handler/room"
	"github.com/rakib-007/hotel-reservation-system/internal/middleware"
	"github.com/rakib-007/hotel-reservation-system/internal/repository"
	"github.com/rakib-007/hotel-reservation-system/internal/scheduler"
	authService "github.com/rakib-007/hotel-reservation-system/internal/service/auth"
	customerService "github.com/rakib-007/hotel-reservation-system/internal/service/customer"
	dashboardService "github.com/rakib-007/hotel-reservation-system/internal/service/dashboard"
	reservationService "github.com/rakib-007/hotel-reservation-system/internal/service/reservation"
	roomService "github.com/rakib-007/hotel-reservation-system/internal/service/room"
)

// setupRouter 设置路由，返回已装配任务的调度器（未启用时返回 nil）
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *scheduler.Scheduler {
	// 创建 JWT 管理器
	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:           cfg.JWT.Secret,
		AccessExpireTime: cfg.JWT.AccessTokenDuration(),
		Issuer:           cfg.JWT.Issuer,
	})

	// 初始化仓储
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// 初始化服务
	authSvc := authService.NewService(userRepo, jwtManager, cfg.Crypto.BcryptCost)
	roomSvc := roomService.NewService(roomRepo)
	customerSvc := customerService.NewService(customerRepo)
	reservationSvc := reservationService.NewService(db, reservationRepo, roomRepo, customerRepo)
	dashboardSvc := dashboardService.NewService(roomRepo, customerRepo, reservationRepo, redisClient)

	// 初始化处理器
	authH := authHandler.NewHandler(authSvc)
	roomH := roomHandler.NewHandler(roomSvc, dashboardSvc)
	customerH := customerHandler.NewHandler(customerSvc, reservationSvc)
	reservationH := reservationHandler.NewHandler(reservationSvc, dashboardSvc)
	dashboardH := dashboardHandler.NewHandler(dashboardSvc)

	// 全局中间件
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	r.Use(middleware.CORS(corsConfig))
	r.Use(middleware.AccessLog(logger))
	if cfg.Metrics.Enabled {
		r.Use(metrics.Get().GinMiddleware())
	}

	// 健康检查（不需要认证）
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db, redisClient))

	// Prometheus 抓取端点
	if cfg.Metrics.Enabled {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, metrics.Handler())
	}

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 公开接口（无需认证）
		v1.POST("/auth/login", authH.Login)

		// 需要登录的接口
		authed := v1.Group("")
		authed.Use(middleware.Auth(jwtManager))
		{
			authed.PUT("/auth/password", authH.ChangePassword)

			// 总览
			authed.GET("/dashboard/summary", dashboardH.Summary)

			// 房间
			authed.GET("/rooms", roomH.List)
			authed.GET("/rooms/:id", roomH.Get)

			// 客户
			authed.GET("/customers", customerH.List)
			authed.GET("/customers/:id", customerH.Get)
			authed.PUT("/customers/:id", customerH.Update)
			authed.GET("/customers/:id/reservations", customerH.ListReservations)

			// 预订生命周期
			authed.POST("/reservations", reservationH.Book)
			authed.GET("/reservations", reservationH.List)
			authed.GET("/reservations/today/check-ins", reservationH.TodayCheckIns)
			authed.GET("/reservations/today/check-outs", reservationH.TodayCheckOuts)
			authed.GET("/reservations/no/:no", reservationH.GetByNo)
			authed.GET("/reservations/:id", reservationH.Get)
			authed.PUT("/reservations/:id/dates", reservationH.UpdateDates)
			authed.POST("/reservations/:id/cancel", reservationH.Cancel)
			authed.POST("/reservations/:id/check-in", reservationH.CheckIn)
			authed.POST("/reservations/:id/check-out", reservationH.CheckOut)

			// 房间管理（仅管理员）
			admin := authed.Group("")
			admin.Use(middleware.AdminOnly())
			{
				admin.POST("/reservations/sweep", reservationH.SweepPastCheckouts)
				admin.DELETE("/customers/:id", customerH.Delete)
				admin.POST("/rooms", roomH.Create)
				admin.PUT("/rooms/:id", roomH.Update)
				admin.PUT("/rooms/:id/status", roomH.SetStatus)
				admin.DELETE("/rooms/:id", roomH.Delete)
			}
		}
	}

	// 404 处理
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"code":    404,
			"message": "接口不存在",
		})
	})

	// 定时任务
	if !cfg.Scheduler.Enabled {
		return nil
	}
	sched := scheduler.NewScheduler()
	scheduler.SetupTasks(sched, scheduler.NewTaskHandler(reservationSvc), cfg.Scheduler.SweepInterval())
	return sched
}
