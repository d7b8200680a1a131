package kitchenControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	orderControllers "github.com/Arnav-0606/Nsut-cater/controllers/order"
	"github.com/Arnav-0606/Nsut-cater/models"
	"github.com/Arnav-0606/Nsut-cater/store"
	"github.com/Arnav-0606/Nsut-cater/telem"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPlaced):
		return models.OrderStatusPlaced, nil
	case string(models.OrderStatusPreparing):
		return models.OrderStatusPreparing, nil
	case string(models.OrderStatusReady):
		return models.OrderStatusReady, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// QueueEntry is an order as the kitchen display sees it, with the
// derived timing fields recomputed at read time.
type QueueEntry struct {
	models.Order
	OrderAgeMins int  `json:"order_age_mins"`
	Urgent       bool `json:"urgent"`
	WaitingMins  int  `json:"waiting_mins,omitempty"`
}

func toQueue(orders []models.Order, now time.Time) []QueueEntry {
	entries := make([]QueueEntry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, QueueEntry{
			Order:        o,
			OrderAgeMins: o.AgeMinutes(now),
			Urgent:       o.IsUrgent(now),
			WaitingMins:  o.WaitingMinutes(now),
		})
	}
	return entries
}

// GET /kitchen/queues
// The three live queues of the display: new orders, in progress, and
// waiting at the counter. Pure filters over the shared order list.
func GetQueuesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		c.JSON(http.StatusOK, gin.H{
			"pending":   toQueue(s.OrdersByStatus(models.OrderStatusPlaced), now),
			"preparing": toQueue(s.OrdersByStatus(models.OrderStatusPreparing), now),
			"ready":     toQueue(s.OrdersByStatus(models.OrderStatusReady), now),
		})
	}
}

// PUT /kitchen/orders/:orderID/status
// Advances an order along placed -> preparing -> ready -> delivered.
// Only the immediate next status is accepted; skipping ahead or moving
// backwards is rejected.
func UpdateOrderStatusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := s.AdvanceOrder(orderID, newStatus, time.Now())
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, store.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "Order cannot move to that status from its current one"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			}
			return
		}

		telem.StatusTransitions.WithLabelValues(string(newStatus)).Inc()
		orderControllers.Broadcast(orderControllers.OrderEvent{
			Type:  orderControllers.EventStatusChange,
			Order: order,
		})

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Order %s marked as %s", order.ID, order.Status),
			"order":   order,
		})
	}
}

// GET /kitchen/stats
func GetStatsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Stats())
	}
}

// GET /kitchen/orders/export
// All orders as a spreadsheet for the day's report.
func ExportOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := s.Orders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Token", "Customer", "MealType", "Status",
			"TotalAmount", "Items", "OrderTime", "PickupTime", "Rating",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.TokenNumber)
			row.AddCell().SetValue(o.UserName)
			row.AddCell().SetValue(string(o.MealType))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TotalAmount)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, ", "))

			row.AddCell().SetValue(o.OrderTime.Format("2006-01-02 15:04:05"))
			if o.PickupTime != nil {
				row.AddCell().SetValue(o.PickupTime.Format("2006-01-02 15:04:05"))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(o.Rating)
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
