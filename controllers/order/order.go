package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Arnav-0606/Nsut-cater/store"
	"github.com/Arnav-0606/Nsut-cater/telem"
)

type RateOrderInput struct {
	Rating int `json:"rating" binding:"required"`
}

// POST /orders/place
// Converts the acting user's cart into an order. The cart must be
// non-empty and its total must fit in the wallet balance; on success the
// cart is cleared and the order enters the kitchen queue as "placed".
func PlaceOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		userName := c.GetString("user_name")

		order, err := s.PlaceOrder(userID, userName, time.Now())
		if err != nil {
			switch {
			case errors.Is(err, store.ErrEmptyCart):
				telem.OrdersRejected.WithLabelValues("empty_cart").Inc()
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please add items to your cart before placing an order"})
			case errors.Is(err, store.ErrInsufficientBalance):
				telem.OrdersRejected.WithLabelValues("insufficient_balance").Inc()
				c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient wallet balance. Please recharge and try again"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		telem.OrdersPlaced.Inc()
		Broadcast(OrderEvent{Type: EventOrderPlaced, Order: order})

		c.JSON(http.StatusCreated, gin.H{
			"message":      fmt.Sprintf("Order Placed Successfully! Order ID: #%s | Token: %d", order.ID, order.TokenNumber),
			"order_id":     order.ID,
			"token_number": order.TokenNumber,
			"total_amount": order.TotalAmount,
			"order":        order,
		})
	}
}

// GET /orders/user/:userID
func GetUserOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
			return
		}
		c.JSON(http.StatusOK, s.OrdersByUser(userID))
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		order, ok := s.Order(orderID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /orders/:orderID/rating
// One rating per order, 1 to 5 stars.
func RateOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var input RateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := s.RateOrder(orderID, input.Rating)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, store.ErrInvalidRating):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			case errors.Is(err, store.ErrAlreadyRated):
				c.JSON(http.StatusConflict, gin.H{"error": "Order already rated"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Thank you for your feedback! You rated order %s with %d stars", order.ID, order.Rating),
			"order":   order,
		})
	}
}
