package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamhub-dev/teamhub/internal/store"
)

func (h *Handler) GetSettings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.Store.Settings())
}

func (h *Handler) UpdateSettings(ctx *gin.Context) {
	var patch store.SettingsPatch

	if err := ctx.BindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	settings, err := h.Store.UpdateSettings(patch)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, settings)
}
