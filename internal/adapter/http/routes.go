package http

import (
	"zephyrtask/internal/adapter/http/handlers"
	"zephyrtask/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler, notificationHandler *handlers.NotificationHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.AddTask)
		api.PUT("/tasks", taskHandler.UpdateTask)
		api.DELETE("/tasks", taskHandler.RemoveTask)
		api.POST("/tasks/complete", taskHandler.CompleteTask)
		api.POST("/notifications/reminder", notificationHandler.SendReminder)
		api.POST("/notifications/reward", notificationHandler.SendReward)
	}
}
