package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

func GetProjectID(ctx *gin.Context) (string, error) {
	projectID := ctx.Param("project_id")

	if projectID == "" {
		return "", errors.New("Project ID not found")
	}

	return projectID, nil
}

func GetTaskID(ctx *gin.Context) (string, error) {
	taskID := ctx.Param("task_id")

	if taskID == "" {
		return "", errors.New("Task ID not found")
	}

	return taskID, nil
}

func GetNotificationID(ctx *gin.Context) (string, error) {
	notificationID := ctx.Param("notification_id")

	if notificationID == "" {
		return "", errors.New("Notification ID not found")
	}

	return notificationID, nil
}
