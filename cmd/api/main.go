package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/trimandtone/booking-api/internal/config"
	"github.com/trimandtone/booking-api/internal/routes"
	"github.com/trimandtone/booking-api/internal/store"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := config.Load()

	st := store.New(store.AdminCredential{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
