package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NovaCutsHQ/barber-dashboard/internal/blob"
	"github.com/NovaCutsHQ/barber-dashboard/internal/cache"
	"github.com/NovaCutsHQ/barber-dashboard/internal/config"
	dbpkg "github.com/NovaCutsHQ/barber-dashboard/internal/db"
	"github.com/NovaCutsHQ/barber-dashboard/internal/routes"
)

const bookingCacheTTL = 5 * time.Minute

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := cache.NewRedisClient(cfg)
	bookingCache := cache.NewBookingCache(redisClient, bookingCacheTTL)

	uploader := blob.NewUploader(cfg)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, bookingCache, uploader)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
