package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamhub-dev/teamhub/internal/utils"
)

type PostMessageRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID string `json:"parent_id"`
}

// ListThreads returns a project's chat grouped into threads: roots with
// their direct replies.
func (h *Handler) ListThreads(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	threads, err := h.Store.ThreadsForProject(projectID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, threads)
}

func (h *Handler) PostMessage(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req PostMessageRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	message, err := h.Store.PostMessage(projectID, userID, req.Content, req.ParentID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	h.Hub.BroadcastRefresh(projectID)
	ctx.JSON(http.StatusCreated, message)
}
