// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/business-manager/backend/config"
	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/application/usecase/auth"
	"github.com/business-manager/backend/internal/application/usecase/billing"
	"github.com/business-manager/backend/internal/application/usecase/calendar"
	"github.com/business-manager/backend/internal/application/usecase/client"
	"github.com/business-manager/backend/internal/application/usecase/expense"
	"github.com/business-manager/backend/internal/application/usecase/product"
	"github.com/business-manager/backend/internal/application/usecase/task"
	"github.com/business-manager/backend/internal/infra/server/router"
	"github.com/business-manager/backend/internal/integration/adapters"
	"github.com/business-manager/backend/internal/integration/cache"
	"github.com/business-manager/backend/internal/integration/email"
	"github.com/business-manager/backend/internal/integration/email/templates"
	"github.com/business-manager/backend/internal/integration/entrypoint/controller"
	"github.com/business-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/business-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Redis client for the overview cache
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)
	overviewCache := cache.NewOverviewCache(redisClient)

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	productRepo := persistence.NewProductRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	calendarRepo := persistence.NewCalendarRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Email delivery worker
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
		emailSender = email.NewMockEmailSender()
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create product use cases
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	createProductUseCase := product.NewCreateProductUseCase(productRepo, overviewCache)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo, overviewCache)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo, clientRepo, overviewCache)

	// Create client use cases
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	createClientUseCase := client.NewCreateClientUseCase(clientRepo, productRepo, overviewCache)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo, productRepo, overviewCache)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo, overviewCache)
	updateChargeStatusUseCase := client.NewUpdateChargeStatusUseCase(clientRepo, overviewCache)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, overviewCache)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, overviewCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, overviewCache)

	// Create billing use cases
	getOverviewUseCase := billing.NewGetOverviewUseCase(clientRepo, productRepo, expenseRepo, overviewCache)
	listMonthlyChargesUseCase := billing.NewListMonthlyChargesUseCase(clientRepo, productRepo)
	queueChargeReminderUseCase := billing.NewQueueChargeReminderUseCase(clientRepo, productRepo, emailService)

	// Create task use cases
	listTasksUseCase := task.NewListTasksUseCase(taskRepo)
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
	moveTaskUseCase := task.NewMoveTaskUseCase(taskRepo)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)

	// Create calendar use cases
	listEntriesUseCase := calendar.NewListEntriesUseCase(calendarRepo)
	addEntryUseCase := calendar.NewAddEntryUseCase(calendarRepo, taskRepo)
	deleteEntryUseCase := calendar.NewDeleteEntryUseCase(calendarRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		deleteAccountUseCase,
	)

	productController := controller.NewProductController(
		listProductsUseCase,
		createProductUseCase,
		updateProductUseCase,
		deleteProductUseCase,
	)

	clientController := controller.NewClientController(
		listClientsUseCase,
		createClientUseCase,
		updateClientUseCase,
		deleteClientUseCase,
		updateChargeStatusUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	billingController := controller.NewBillingController(
		getOverviewUseCase,
		listMonthlyChargesUseCase,
		queueChargeReminderUseCase,
	)

	taskController := controller.NewTaskController(
		listTasksUseCase,
		createTaskUseCase,
		updateTaskUseCase,
		moveTaskUseCase,
		deleteTaskUseCase,
	)

	calendarController := controller.NewCalendarController(
		listEntriesUseCase,
		addEntryUseCase,
		deleteEntryUseCase,
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
		userController,
		productController,
		clientController,
		expenseController,
		billingController,
		taskController,
		calendarController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
