package api

import (
	"net/http"
	"strconv"

	"github.com/leburgeon/ecom-backapi/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func bindInt32Query(c *gin.Context, name string, out *int32) error {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return err
	}
	*out = int32(v)
	return nil
}

// authedUserID fetches the user id set by RequireAuth, aborting when absent.
func authedUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		c.Abort()
		return uuid.Nil, false
	}
	return userID, true
}
