package main

import (
	"log"

	"github.com/apptrackhq/apptrack-go/internal/api/middleware"
	"github.com/apptrackhq/apptrack-go/internal/api/routes"
	"github.com/apptrackhq/apptrack-go/internal/config"
	"github.com/apptrackhq/apptrack-go/internal/config/db"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Connect and migrate the database
	gdb, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, gdb)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
