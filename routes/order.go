package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Arnav-0606/Nsut-cater/controllers/order"
	"github.com/Arnav-0606/Nsut-cater/middleware"
	"github.com/Arnav-0606/Nsut-cater/store"
)

func SetupOrderRoutes(r *gin.Engine, s *store.Store) {
	orders := r.Group("/orders")
	{
		// Create a new order from the acting user's cart
		orders.POST("/place", middleware.Identity(s), orderControllers.PlaceOrderHandler(s))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch orders for a specific user (order history view)
		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(s))

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(s))

		// Pickup QR placeholder image
		orders.GET("/:orderID/qr", orderControllers.OrderQRHandler(s))

		// Receipt download
		orders.GET("/:orderID/receipt", orderControllers.DownloadReceiptHandler(s))

		// Rate a past order
		orders.POST("/:orderID/rating", orderControllers.RateOrderHandler(s))
	}
}
