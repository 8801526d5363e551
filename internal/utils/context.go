package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/wasteless-dev/wasteless/internal/types"
)

func CurrentUserID(ctx *gin.Context) (uint, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return 0, fmt.Errorf("user not authenticated")
	}

	userID, ok := value.(uint)

	if !ok {
		return 0, fmt.Errorf("invalid user id type in context")
	}

	return userID, nil
}
