package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/teamhub-dev/teamhub/internal/models"
	"github.com/teamhub-dev/teamhub/internal/notify"
	"github.com/teamhub-dev/teamhub/internal/utils"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *string    `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

type SetTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TaskResponse augments a task with the derived due-soon flag, which is
// recomputed on every read and never stored.
type TaskResponse struct {
	models.Task
	DueSoon bool `json:"due_soon"`
}

func newTaskResponse(t models.Task, now time.Time) TaskResponse {
	return TaskResponse{Task: t, DueSoon: notify.DueSoon(t, now)}
}

func (h *Handler) ListTasks(ctx *gin.Context) {
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

	now := time.Now()
	response := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		response = append(response, newTaskResponse(t, now))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreateTask(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req CreateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.Store.CreateTask(projectID, req.Title, req.Description, req.AssigneeID, req.DueDate)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	h.Hub.BroadcastRefresh(projectID)
	ctx.JSON(http.StatusCreated, newTaskResponse(task, time.Now()))
}

// UpdateTask merges the provided fields over the existing task. Omitted
// fields keep their current values.
func (h *Handler) UpdateTask(ctx *gin.Context) {
	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	existing, err := h.Store.GetTask(taskID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	title := existing.Title
	if req.Title != nil {
		title = *req.Title
	}
	description := existing.Description
	if req.Description != nil {
		description = *req.Description
	}
	assigneeID := existing.AssigneeID
	if req.AssigneeID != nil {
		assigneeID = *req.AssigneeID
	}
	dueDate := existing.DueDate
	if req.DueDate != nil {
		dueDate = req.DueDate
	}

	task, err := h.Store.UpdateTask(taskID, title, description, assigneeID, dueDate)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	h.Hub.BroadcastRefresh(task.ProjectID)
	ctx.JSON(http.StatusOK, newTaskResponse(task, time.Now()))
}

func (h *Handler) SetTaskStatus(ctx *gin.Context) {
	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req SetTaskStatusRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.Store.SetTaskStatus(taskID, models.TaskStatus(req.Status))
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	h.Hub.BroadcastRefresh(task.ProjectID)
	ctx.JSON(http.StatusOK, newTaskResponse(task, time.Now()))
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.Store.GetTask(taskID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	if err := h.Store.DeleteTask(taskID); err != nil {
		respondStoreError(ctx, err)
		return
	}

	h.Hub.BroadcastRefresh(task.ProjectID)
	ctx.Status(http.StatusNoContent)
}
