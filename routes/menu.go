package routes

import (
	"github.com/gin-gonic/gin"

	menuControllers "github.com/Arnav-0606/Nsut-cater/controllers/menu"
	"github.com/Arnav-0606/Nsut-cater/store"
)

func SetupMenuRoutes(r *gin.Engine, s *store.Store) {
	menu := r.Group("/menu")
	{
		// Full catalog, with optional ?category= / ?veg= / ?available= filters
		menu.GET("/", menuControllers.GetMenu(s))

		// Weekly rotation grouped by day and meal
		menu.GET("/weekly", menuControllers.GetWeeklyMenu(s))

		// Single item
		menu.GET("/:itemID", menuControllers.GetMenuItemByID(s))
	}
}
