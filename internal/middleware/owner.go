package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wasteless-dev/wasteless/internal/utils"
)

// RequireOwner rejects any request whose authenticated caller differs
// from the user_id path segment. It runs before the handlers, so a
// cross-user request never reaches the store.
func RequireOwner() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		callerID, err := utils.CurrentUserID(ctx)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		pathUserID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		if callerID != uint(pathUserID) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		ctx.Next()
	}
}
