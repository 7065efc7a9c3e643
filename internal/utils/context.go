package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/teamhub-dev/teamhub/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (types.UserResponse, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return types.UserResponse{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(types.UserResponse)

	if !ok {
		return types.UserResponse{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (string, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return "", err
	}

	return user.ID, nil
}
