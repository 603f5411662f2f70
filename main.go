package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bowya123/swiggybackend/auth"
	"github.com/Bowya123/swiggybackend/config"
	"github.com/Bowya123/swiggybackend/db"
	"github.com/Bowya123/swiggybackend/handlers"
	"github.com/Bowya123/swiggybackend/routes"
	"github.com/Bowya123/swiggybackend/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect and build indexes under a startup deadline; request-path
	// storage calls use the request context with no extra timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Println("MongoDB connected")

	tokens := auth.NewTokenService(cfg.JWTSecret)
	authHandler := handlers.NewAuthHandler(store.NewUserStore(database), tokens)
	restaurantHandler := handlers.NewRestaurantHandler(store.NewCatalogStore(database))
	orderHandler := handlers.NewOrderHandler(store.NewOrderStore(database))

	r := gin.New()
	r.Use(gin.Logger())

	// Final error boundary: anything a handler panics with comes back as a
	// JSON 500 instead of killing the process.
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Something went wrong!",
			"error":   fmt.Sprint(recovered),
		})
	}))

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	routes.SetupRoutes(r, tokens, authHandler, restaurantHandler, orderHandler)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server running on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := database.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("Mongo disconnect: %v", err)
	}
	log.Println("Server exiting")
}
