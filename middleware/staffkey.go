package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateStaffKey guards the kitchen routes. When STAFF_API_KEY is set,
// requests must carry it in X-Staff-Key; when unset the gate is open,
// matching the single-terminal deployments this runs on.
func ValidateStaffKey(c *gin.Context) {
	expected := os.Getenv("STAFF_API_KEY")
	if expected != "" && c.GetHeader("X-Staff-Key") != expected {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing staff key"})
		c.Abort()
		return
	}
	c.Next()
}
