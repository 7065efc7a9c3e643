package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/teamhub-dev/teamhub/internal/auth"
	"github.com/teamhub-dev/teamhub/internal/store"
)

// Handler carries the store and session strategy into the HTTP surface.
// The store is the only writer of entity state; handlers translate
// requests into its operations and map its errors to statuses.
type Handler struct {
	Store *store.Store
	Mode  auth.Mode
	Hub   *Hub
}

func New(s *store.Store, mode auth.Mode) *Handler {
	return &Handler{
		Store: s,
		Mode:  mode,
		Hub:   NewHub(),
	}
}

func respondStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation),
		errors.Is(err, store.ErrDuplicateEmail),
		errors.Is(err, store.ErrBadCredential):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("store operation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
