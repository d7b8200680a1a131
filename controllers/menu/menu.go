package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arnav-0606/Nsut-cater/models"
	"github.com/Arnav-0606/Nsut-cater/store"
)

// GetMenu returns the catalog.
// Optional query filters: ?category=lunch, ?veg=true, ?available=true.
func GetMenu(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := s.MenuItems()

		if category := c.Query("category"); category != "" {
			items = filterItems(items, func(item models.MenuItem) bool {
				return item.Category == models.MealCategory(category)
			})
		}
		if c.Query("veg") == "true" {
			items = filterItems(items, func(item models.MenuItem) bool {
				return item.IsVeg
			})
		}
		if c.Query("available") == "true" {
			items = filterItems(items, func(item models.MenuItem) bool {
				return item.IsAvailable
			})
		}

		c.JSON(http.StatusOK, items)
	}
}

func filterItems(items []models.MenuItem, keep func(models.MenuItem) bool) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// GetMenuItemByID returns a single catalog entry.
// URL param: /menu/:itemID
func GetMenuItemByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("itemID")
		if itemID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID is required"})
			return
		}
		item, ok := s.MenuItem(itemID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

var weekDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// GetWeeklyMenu returns the weekly plan: for every day, the items served
// at breakfast, lunch and dinner. The canteen runs the same rotation all
// week, so each day is the category split of the catalog.
func GetWeeklyMenu(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := s.MenuItems()
		dayPlan := gin.H{
			"breakfast": filterItems(items, byCategory(models.CategoryBreakfast)),
			"lunch":     filterItems(items, byCategory(models.CategoryLunch)),
			"dinner":    filterItems(items, byCategory(models.CategoryDinner)),
		}
		week := gin.H{}
		for _, day := range weekDays {
			week[day] = dayPlan
		}
		c.JSON(http.StatusOK, week)
	}
}

func byCategory(category models.MealCategory) func(models.MenuItem) bool {
	return func(item models.MenuItem) bool {
		return item.Category == category
	}
}
