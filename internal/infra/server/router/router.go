// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/business-manager/backend/internal/integration/entrypoint/controller"
	"github.com/business-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	userController     *controller.UserController
	productController  *controller.ProductController
	clientController   *controller.ClientController
	expenseController  *controller.ExpenseController
	billingController  *controller.BillingController
	taskController     *controller.TaskController
	calendarController *controller.CalendarController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	productController *controller.ProductController,
	clientController *controller.ClientController,
	expenseController *controller.ExpenseController,
	billingController *controller.BillingController,
	taskController *controller.TaskController,
	calendarController *controller.CalendarController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		userController:     userController,
		productController:  productController,
		clientController:   clientController,
		expenseController:  expenseController,
		billingController:  billingController,
		taskController:     taskController,
		calendarController: calendarController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Product catalog routes (require authentication)
		if r.productController != nil && r.authMiddleware != nil {
			products := v1.Group("/products")
			products.Use(r.authMiddleware.Authenticate())
			{
				products.GET("", r.productController.List)
				products.POST("", r.productController.Create)
				products.PUT("/:id", r.productController.Update)
				products.DELETE("/:id", r.productController.Delete)
			}
		}

		// Client routes (require authentication)
		if r.clientController != nil && r.authMiddleware != nil {
			clients := v1.Group("/clients")
			clients.Use(r.authMiddleware.Authenticate())
			{
				clients.GET("", r.clientController.List)
				clients.POST("", r.clientController.Create)
				clients.PUT("/:id", r.clientController.Update)
				clients.DELETE("/:id", r.clientController.Delete)
				clients.PATCH("/:id/charge-status", r.clientController.UpdateChargeStatus)
			}
		}

		// Expense ledger routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Billing routes (require authentication)
		if r.billingController != nil && r.authMiddleware != nil {
			billing := v1.Group("/billing")
			billing.Use(r.authMiddleware.Authenticate())
			{
				billing.GET("/overview", r.billingController.Overview)
				billing.GET("/charges", r.billingController.MonthlyCharges)
				billing.POST("/reminders", r.billingController.QueueReminder)
			}
		}

		// Task board routes (require authentication)
		if r.taskController != nil && r.authMiddleware != nil {
			tasks := v1.Group("/tasks")
			tasks.Use(r.authMiddleware.Authenticate())
			{
				tasks.GET("", r.taskController.List)
				tasks.POST("", r.taskController.Create)
				tasks.PUT("/:id", r.taskController.Update)
				tasks.PATCH("/:id/move", r.taskController.Move)
				tasks.DELETE("/:id", r.taskController.Delete)
			}
		}

		// Calendar routes (require authentication)
		if r.calendarController != nil && r.authMiddleware != nil {
			calendar := v1.Group("/calendar")
			calendar.Use(r.authMiddleware.Authenticate())
			{
				calendar.GET("", r.calendarController.List)
				calendar.POST("", r.calendarController.Add)
				calendar.DELETE("/:id", r.calendarController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
