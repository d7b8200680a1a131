package routes

import (
	"github.com/gin-gonic/gin"

	kitchenControllers "github.com/Arnav-0606/Nsut-cater/controllers/kitchen"
	"github.com/Arnav-0606/Nsut-cater/middleware"
	"github.com/Arnav-0606/Nsut-cater/store"
)

// SetupKitchenRoutes registers the staff-facing kitchen display
// endpoints, gated by the staff key.
func SetupKitchenRoutes(r *gin.Engine, s *store.Store) {
	kitchen := r.Group("/kitchen")
	kitchen.Use(middleware.ValidateStaffKey)
	{
		// Live queues: pending / preparing / ready
		kitchen.GET("/queues", kitchenControllers.GetQueuesHandler(s))

		// Advance an order one step through the pipeline
		kitchen.PUT("/orders/:orderID/status", kitchenControllers.UpdateOrderStatusHandler(s))

		// Day summary
		kitchen.GET("/stats", kitchenControllers.GetStatsHandler(s))

		// All orders as a spreadsheet
		kitchen.GET("/orders/export", kitchenControllers.ExportOrdersHandler(s))
	}
}
