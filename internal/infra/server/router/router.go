// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/atelier-crm/backend/internal/integration/entrypoint/controller"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	clientController    *controller.ClientController
	orderController     *controller.OrderController
	inventoryController *controller.InventoryController
	taskController      *controller.TaskController
	calendarController  *controller.CalendarController
	dashboardController *controller.DashboardController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	clientController *controller.ClientController,
	orderController *controller.OrderController,
	inventoryController *controller.InventoryController,
	taskController *controller.TaskController,
	calendarController *controller.CalendarController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		clientController:    clientController,
		orderController:     orderController,
		inventoryController: inventoryController,
		taskController:      taskController,
		calendarController:  calendarController,
		dashboardController: dashboardController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
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
			}
		}

		// Client routes (require authentication)
		if r.clientController != nil && r.authMiddleware != nil {
			clients := v1.Group("/clients")
			clients.Use(r.authMiddleware.Authenticate())
			{
				clients.GET("", r.clientController.List)
				clients.POST("", r.clientController.Create)
				clients.PATCH("/:id", r.clientController.Update)
				clients.DELETE("/:id", r.clientController.Delete)
			}
		}

		// Order routes (require authentication)
		if r.orderController != nil && r.authMiddleware != nil {
			orders := v1.Group("/orders")
			orders.Use(r.authMiddleware.Authenticate())
			{
				orders.GET("", r.orderController.List)
				orders.POST("", r.orderController.Create)
				orders.PATCH("/:id", r.orderController.Update)
				orders.DELETE("/:id", r.orderController.Delete)
			}
		}

		// Inventory routes (require authentication)
		if r.inventoryController != nil && r.authMiddleware != nil {
			inventory := v1.Group("/inventory")
			inventory.Use(r.authMiddleware.Authenticate())
			{
				inventory.GET("", r.inventoryController.List)
				inventory.POST("", r.inventoryController.Create)
				inventory.PATCH("/:id", r.inventoryController.Update)
				inventory.DELETE("/:id", r.inventoryController.Delete)
			}
		}

		// Task routes (require authentication)
		if r.taskController != nil && r.authMiddleware != nil {
			tasks := v1.Group("/tasks")
			tasks.Use(r.authMiddleware.Authenticate())
			{
				tasks.GET("", r.taskController.List)
				tasks.POST("", r.taskController.Create)
				tasks.PATCH("/:id", r.taskController.Update)
				tasks.DELETE("/:id", r.taskController.Delete)
			}
		}

		// Calendar routes (require authentication)
		if r.calendarController != nil && r.authMiddleware != nil {
			calendar := v1.Group("/calendar")
			calendar.Use(r.authMiddleware.Authenticate())
			{
				calendar.GET("/month", r.calendarController.GetMonth)
				calendar.GET("/date/:dateKey", r.calendarController.GetDate)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/overview", r.dashboardController.GetOverview)
				dashboard.GET("/order-trends", r.dashboardController.GetOrderTrends)
				dashboard.GET("/inventory-breakdown", r.dashboardController.GetInventoryBreakdown)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
