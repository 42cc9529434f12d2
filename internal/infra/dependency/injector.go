// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/atelier-crm/backend/config"
	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/application/usecase/auth"
	"github.com/atelier-crm/backend/internal/application/usecase/calendar"
	"github.com/atelier-crm/backend/internal/application/usecase/client"
	"github.com/atelier-crm/backend/internal/application/usecase/dashboard"
	"github.com/atelier-crm/backend/internal/application/usecase/inventory"
	"github.com/atelier-crm/backend/internal/application/usecase/order"
	"github.com/atelier-crm/backend/internal/application/usecase/reminder"
	"github.com/atelier-crm/backend/internal/application/usecase/task"
	"github.com/atelier-crm/backend/internal/infra/server/router"
	"github.com/atelier-crm/backend/internal/integration/adapters"
	"github.com/atelier-crm/backend/internal/integration/cache"
	"github.com/atelier-crm/backend/internal/integration/email"
	"github.com/atelier-crm/backend/internal/integration/email/templates"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/controller"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/middleware"
	"github.com/atelier-crm/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	DB              *gorm.DB
	Router          *router.Router
	EmailWorker     *email.Worker
	ReminderUseCase *reminder.QueueDueRemindersUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil, in which case the calendar month cache is
// disabled and every month fetch goes to the database.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	orderRepo := persistence.NewOrderRepository(db)
	inventoryRepo := persistence.NewInventoryRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	calendarRepo := persistence.NewCalendarRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	clock := adapters.NewSystemClock()

	var calendarCache adapter.CalendarCache
	if redisClient != nil {
		calendarCache = cache.NewRedisCalendarCache(redisClient, cfg.Redis.MonthTTL)
	}

	// Create email pipeline
	emailService := email.NewService(emailQueueRepo)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create email template renderer: %w", err)
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("No email API key configured, outgoing email is logged only")
		sender = email.NewMockEmailSender()
	}

	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create client use cases
	createClientUseCase := client.NewCreateClientUseCase(clientRepo)
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

	// Create order use cases
	createOrderUseCase := order.NewCreateOrderUseCase(orderRepo, clientRepo, calendarCache)
	listOrdersUseCase := order.NewListOrdersUseCase(orderRepo)
	updateOrderUseCase := order.NewUpdateOrderUseCase(orderRepo, calendarCache)
	deleteOrderUseCase := order.NewDeleteOrderUseCase(orderRepo, calendarCache)

	// Create inventory use cases
	createInventoryUseCase := inventory.NewCreateInventoryItemUseCase(inventoryRepo)
	listInventoryUseCase := inventory.NewListInventoryItemsUseCase(inventoryRepo)
	updateInventoryUseCase := inventory.NewUpdateInventoryItemUseCase(inventoryRepo)
	deleteInventoryUseCase := inventory.NewDeleteInventoryItemUseCase(inventoryRepo)

	// Create task use cases
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo, calendarCache)
	listTasksUseCase := task.NewListTasksUseCase(taskRepo)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo, calendarCache, clock)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo, calendarCache)

	// Create calendar use cases
	getMonthItemsUseCase := calendar.NewGetMonthItemsUseCase(calendarRepo, calendarCache, clock)
	getDateItemsUseCase := calendar.NewGetDateItemsUseCase(calendarRepo)

	// Create dashboard use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(orderRepo, taskRepo, clock)
	getOrderTrendsUseCase := dashboard.NewGetOrderTrendsUseCase(orderRepo, clock)
	getInventoryBreakdownUseCase := dashboard.NewGetInventoryBreakdownUseCase(inventoryRepo)

	// Create reminder use case
	reminderUseCase := reminder.NewQueueDueRemindersUseCase(
		calendarRepo,
		userRepo,
		emailService,
		clock,
		cfg.Email.AppBaseURL+"/calendar",
		slog.Default(),
	)

	// Create controllers
	var cacheChecker func() bool
	if redisClient != nil {
		cacheChecker = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheChecker)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	clientController := controller.NewClientController(
		createClientUseCase,
		listClientsUseCase,
		updateClientUseCase,
		deleteClientUseCase,
	)

	orderController := controller.NewOrderController(
		createOrderUseCase,
		listOrdersUseCase,
		updateOrderUseCase,
		deleteOrderUseCase,
	)

	inventoryController := controller.NewInventoryController(
		createInventoryUseCase,
		listInventoryUseCase,
		updateInventoryUseCase,
		deleteInventoryUseCase,
	)

	taskController := controller.NewTaskController(
		createTaskUseCase,
		listTasksUseCase,
		updateTaskUseCase,
		deleteTaskUseCase,
	)

	calendarController := controller.NewCalendarController(
		getMonthItemsUseCase,
		getDateItemsUseCase,
		clock,
	)

	dashboardController := controller.NewDashboardController(
		getOverviewUseCase,
		getOrderTrendsUseCase,
		getInventoryBreakdownUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		clientController,
		orderController,
		inventoryController,
		taskController,
		calendarController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Router:          r,
		EmailWorker:     emailWorker,
		ReminderUseCase: reminderUseCase,
	}, nil
}
