package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arnav-0606/Nsut-cater/store"
)

// Identity resolves the acting user for /user routes. There is no real
// authentication in this system; the session user is the seeded record,
// and an X-User-ID header may name another actor for testing. The
// resolved id and display name are set in the request context.
func Identity(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := s.User()
		userID := user.ID
		userName := user.Name

		if headerID := c.GetHeader("X-User-ID"); headerID != "" && headerID != user.ID {
			userID = headerID
			userName = headerID
		}
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No session user configured"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_name", userName)
		c.Next()
	}
}
