package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Arnav-0606/Nsut-cater/store"
)

type AddCartItemInput struct {
	ItemID string `json:"item_id" binding:"required"`
}

type CartNoteInput struct {
	Note string `json:"note"`
}

// GET /user/cart
func GetUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		cart := s.Cart(userID)
		c.JSON(http.StatusOK, gin.H{
			"items": cart.Items,
			"total": cart.Total(),
		})
	}
}

// POST /user/cart
// Adds one unit of the item: increments an existing line, otherwise
// inserts it with quantity 1.
func AddCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, err := s.AddToCart(userID, input.ItemID, time.Now())
		if err != nil {
			if errors.Is(err, store.ErrUnknownItem) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item does not exist"})
				return
			}
			if errors.Is(err, store.ErrItemUnavailable) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item is not available today"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": line.Name + " added to your order",
			"item":    line,
		})
	}
}

// DELETE /user/cart/:itemID
// Removes one unit; the line disappears when its last unit goes.
func DeleteCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("itemID")

		if err := s.RemoveFromCart(userID, itemID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// PUT /user/cart/:itemID/note
func SetCartItemNote(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("itemID")

		var input CartNoteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := s.SetCustomization(userID, itemID, input.Note); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customization saved"})
	}
}

// DELETE /user/cart
func ClearUserCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		s.ClearCart(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
