package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamhub-dev/teamhub/internal/utils"
)

func (h *Handler) ListNotifications(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	notifications, err := h.Store.NotificationsForUser(userID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (h *Handler) MarkNotificationRead(ctx *gin.Context) {
	notificationID, err := utils.GetNotificationID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification, err := h.Store.MarkNotificationRead(notificationID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notification)
}
