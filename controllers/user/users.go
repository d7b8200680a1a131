package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arnav-0606/Nsut-cater/store"
)

// GET /me
// Returns the session's user record.
func GetMe(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := s.User()
		if user.ID == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "No session user configured"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
