package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamhub-dev/teamhub/internal/progress"
	"github.com/teamhub-dev/teamhub/internal/utils"
)

// GetProgress returns the project's task-status counts and completion
// percentage, recomputed from the live task collection on every call.
func (h *Handler) GetProgress(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := h.Store.TasksForProject(projectID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, progress.Aggregate(tasks))
}
