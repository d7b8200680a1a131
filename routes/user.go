package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	cartControllers "github.com/Arnav-0606/Nsut-cater/controllers/cart"
	userControllers "github.com/Arnav-0606/Nsut-cater/controllers/user"
	walletControllers "github.com/Arnav-0606/Nsut-cater/controllers/wallet"
	"github.com/Arnav-0606/Nsut-cater/middleware"
	"github.com/Arnav-0606/Nsut-cater/store"
)

// SetupUserRoutes registers all "/user/*" endpoints plus /me. Requires
// the identity middleware.
func SetupUserRoutes(r *gin.Engine, s *store.Store, rechargeDelay time.Duration) {
	r.GET("/me", userControllers.GetMe(s))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.Identity(s))
	{
		// ──────────────── Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(s))                 // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(s))                // POST /user/cart
			cartGroup.DELETE("/:itemID", cartControllers.DeleteCartItem(s))    // DELETE /user/cart/:itemID
			cartGroup.PUT("/:itemID/note", cartControllers.SetCartItemNote(s)) // PUT /user/cart/:itemID/note
			cartGroup.DELETE("/", cartControllers.ClearUserCart(s))            // DELETE /user/cart
		}

		// ──────────────── Wallet ────────────────
		walletGroup := userGroup.Group("/wallet")
		{
			walletGroup.GET("/", walletControllers.GetWallet(s))                             // GET /user/wallet
			walletGroup.POST("/recharge", walletControllers.Recharge(s, rechargeDelay))      // POST /user/wallet/recharge
			walletGroup.GET("/transactions", walletControllers.ListTransactions(s))          // GET /user/wallet/transactions
			walletGroup.GET("/transactions/export", walletControllers.ExportTransactions(s)) // GET /user/wallet/transactions/export
		}
	}
}
