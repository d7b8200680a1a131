package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Arnav-0606/Nsut-cater/routes"
	"github.com/Arnav-0606/Nsut-cater/store"
	"github.com/Arnav-0606/Nsut-cater/telem"
)

func main() {
	log.Println("✅ Starting canteen API...")

	// Load environment variables
	_ = godotenv.Load()

	// Build the in-memory store and load the demo dataset
	s := store.New()
	store.Seed(s, time.Now())

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-ID", "X-Staff-Key"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness + metrics
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(telem.Handler()))

	// Setup routes
	routes.SetupRoutes(r, s, rechargeDelay())

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// rechargeDelay reads the simulated payment-gateway processing time.
// Defaults to the dashboard's 2 seconds.
func rechargeDelay() time.Duration {
	raw := os.Getenv("RECHARGE_DELAY_MS")
	if raw == "" {
		return 2 * time.Second
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("⚠️ Invalid RECHARGE_DELAY_MS %q, using default", raw)
		return 2 * time.Second
	}
	return time.Duration(ms) * time.Millisecond
}
