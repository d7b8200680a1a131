package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Arnav-0606/Nsut-cater/store"
)

// SetupRoutes is the single entry-point that wires up the menu, user,
// order and kitchen route groups.
func SetupRoutes(r *gin.Engine, s *store.Store, rechargeDelay time.Duration) {
	// Public menu routes (no middleware)
	SetupMenuRoutes(r, s)

	// User routes (identity middleware: cart + wallet)
	SetupUserRoutes(r, s, rechargeDelay)

	// Order routes
	SetupOrderRoutes(r, s)

	// Kitchen routes (staff-key protected)
	SetupKitchenRoutes(r, s)
}
