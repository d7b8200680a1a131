package orderControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Arnav-0606/Nsut-cater/store"
)

// GET /orders/:orderID/receipt
// Downloads the order receipt as a spreadsheet: one header block, one
// row per line item, and the frozen total.
func DownloadReceiptHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		order, ok := s.Order(orderID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Receipt")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create receipt sheet"})
			return
		}

		addKV := func(key string, value interface{}) {
			row := sheet.AddRow()
			row.AddCell().SetValue(key)
			row.AddCell().SetValue(value)
		}
		addKV("Order ID", order.ID)
		addKV("Token", order.TokenNumber)
		addKV("Customer", order.UserName)
		addKV("Meal", string(order.MealType))
		addKV("Status", string(order.Status))
		addKV("Ordered At", order.OrderTime.Format("2006-01-02 15:04:05"))

		sheet.AddRow() // spacer
		headerRow := sheet.AddRow()
		for _, h := range []string{"Item", "Qty", "Price", "Amount", "Customizations"} {
			headerRow.AddCell().SetValue(h)
		}
		for _, item := range order.Items {
			row := sheet.AddRow()
			row.AddCell().SetValue(item.Name)
			row.AddCell().SetValue(item.Quantity)
			row.AddCell().SetValue(item.PriceAtTime)
			row.AddCell().SetValue(item.PriceAtTime * float64(item.Quantity))
			row.AddCell().SetValue(item.Customizations)
		}
		totalRow := sheet.AddRow()
		totalRow.AddCell().SetValue("Total")
		totalRow.AddCell().SetValue("")
		totalRow.AddCell().SetValue("")
		totalRow.AddCell().SetValue(order.TotalAmount)

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.xlsx", order.ID))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write receipt"})
			return
		}
	}
}

// GET /orders/:orderID/qr
// Renders the pickup placeholder: a synthetic QR-style SVG carrying the
// order id and token for counter matching. Display-only, nothing is
// cryptographically verified.
func OrderQRHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		order, ok := s.Order(orderID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		svg := fmt.Sprintf(`<svg width="200" height="200" xmlns="http://www.w3.org/2000/svg">
  <rect width="200" height="200" fill="white"/>
  <rect x="20" y="20" width="160" height="160" fill="black"/>
  <rect x="30" y="30" width="140" height="140" fill="white"/>
  <text x="100" y="95" text-anchor="middle" font-family="Arial" font-size="10" fill="black">%s</text>
  <text x="100" y="115" text-anchor="middle" font-family="Arial" font-size="10" fill="black">Token: %d</text>
</svg>`, order.ID, order.TokenNumber)

		c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
	}
}
