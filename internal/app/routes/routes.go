package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/controllers"
	"github.com/yigit/alumnihub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	jobController *controllers.JobController,
	eventController *controllers.EventController,
	messageController *controllers.MessageController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/home", userController.Home)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		authenticated.GET("/dashboard", userController.Dashboard)

		// Profile routes
		authenticated.GET("/profile", userController.GetProfile)
		authenticated.PUT("/profile", userController.UpdateProfile)

		// Directory routes
		users := authenticated.Group("/users")
		{
			users.GET("/search", userController.Search)
			users.GET("/:id", userController.GetUserByID)
		}

		// Job board routes
		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobController.List)
			jobs.POST("", jobController.Create)
			jobs.GET("/:id", jobController.GetByID)
		}

		// Event board routes
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.List)
			events.POST("", eventController.Create)
			events.GET("/:id", eventController.GetByID)
		}

		// Messaging routes
		messages := authenticated.Group("/messages")
		{
			messages.GET("", messageController.Inbox)
			messages.POST("", messageController.Send)
			messages.GET("/:id", messageController.GetByID)
		}

		// Moderation panel, admin role required
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/stats", adminController.Dashboard)
			admin.GET("/users", adminController.ListUsers)
			admin.PATCH("/users/:id/status", adminController.UpdateUserStatus)
			admin.GET("/jobs", adminController.ListJobs)
			admin.PATCH("/jobs/:id/status", adminController.UpdateJobStatus)
			admin.GET("/events", adminController.ListEvents)
			admin.PATCH("/events/:id/status", adminController.UpdateEventStatus)
			admin.GET("/messages", adminController.ListMessages)
		}
	}
}
