package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/teamhub-dev/teamhub/internal/handlers"
	"github.com/teamhub-dev/teamhub/internal/middleware"
	"github.com/teamhub-dev/teamhub/internal/types"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middleware.AuthMiddleware(h.Store, h.Mode)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/:project_id", authRequired, h.WebSocket)

		api.POST("/signup", h.Signup)
		api.POST("/login", h.Login)

		auth := api.Group("/auth")
		{
			auth.GET("/me", authRequired, h.Me)
			auth.POST("/logout", authRequired, h.Logout)
		}

		api.PATCH("/users/me", authRequired, h.UpdateProfile)
		api.GET("/settings", authRequired, h.GetSettings)
		api.PATCH("/settings", authRequired, h.UpdateSettings)

		api.GET("/notifications", authRequired, h.ListNotifications)
		api.POST("/notifications/:notification_id/read", authRequired, h.MarkNotificationRead)

		projects := api.Group("/projects", authRequired)
		{
			projects.POST("", h.CreateProject)
			projects.GET("", h.ListProjects)
			projects.POST("/:project_id/members", h.AddMember)

			projects.GET("/:project_id/tasks", h.ListTasks)
			projects.POST("/:project_id/tasks", h.CreateTask)

			projects.GET("/:project_id/messages", h.ListThreads)
			projects.POST("/:project_id/messages", h.PostMessage)

			projects.GET("/:project_id/progress", h.GetProgress)
		}

		tasks := api.Group("/tasks", authRequired)
		{
			tasks.PATCH("/:task_id", h.UpdateTask)
			tasks.PATCH("/:task_id/status", h.SetTaskStatus)
			tasks.DELETE("/:task_id", h.DeleteTask)
		}
	}

	return r
}
