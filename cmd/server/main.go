package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DamianMlM/yummy-bakery-web/internal/config"
	"github.com/DamianMlM/yummy-bakery-web/internal/database"
	"github.com/DamianMlM/yummy-bakery-web/internal/events"
	"github.com/DamianMlM/yummy-bakery-web/internal/handlers"
	"github.com/DamianMlM/yummy-bakery-web/internal/middlewares"
	"github.com/DamianMlM/yummy-bakery-web/internal/notifier"
	"github.com/DamianMlM/yummy-bakery-web/internal/redis"
	"github.com/DamianMlM/yummy-bakery-web/internal/repository"
	"github.com/DamianMlM/yummy-bakery-web/internal/services"
	"github.com/DamianMlM/yummy-bakery-web/internal/store"
	"github.com/DamianMlM/yummy-bakery-web/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the relational side (customer directory)
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize the document store
	orderStore, err := store.Initialize(ctx, cfg.FirestoreProjectID)
	if err != nil {
		log.Fatal("Failed to connect to Firestore:", err)
	}
	defer orderStore.Close()

	// Initialize the event bus
	bus, err := events.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer bus.Close()

	if err := bus.Setup(); err != nil {
		log.Fatal("Failed to setup event bus:", err)
	}

	// Initialize the mail client
	mailClient := mailer.NewClient(cfg.MailAPIURL, cfg.MailUsername, cfg.MailPassword, cfg.MailFrom)

	// Initialize repositories and services
	customerRepo := repository.NewCustomerRepository(db)
	lifecycleService := services.NewLifecycleService(orderStore, bus, customerRepo, cfg.DeliveryFee)
	feed := services.NewFeed(orderStore, redisClient, 5*time.Minute)

	notifierService := notifier.NewService(orderStore, mailClient, notifier.Brand{
		Name:          cfg.BrandName,
		PickupAddress: cfg.PickupAddress,
		PickupHours:   cfg.PickupHours,
		BankName:      cfg.BankName,
		BankCLABE:     cfg.BankCLABE,
		BankHolder:    cfg.BankHolder,
		ContactPhone:  cfg.ContactPhone,
	})

	// Start the notification consumer and the snapshot feed
	if err := bus.Consume(notifierService.HandleEvent); err != nil {
		log.Fatal("Failed to start notification consumer:", err)
	}
	go feed.Run(ctx)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, redisClient)
	orderHandler := handlers.NewOrderHandler(feed, lifecycleService)
	dashboardHandler := handlers.NewDashboardHandler(feed, orderStore)
	catalogHandler := handlers.NewCatalogHandler(orderStore)
	customerHandler := handlers.NewCustomerHandler(customerRepo)

	// Setup routes
	router := gin.Default()
	router.Use(middlewares.PrometheusMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(middlewares.AuthMiddleware(cfg.JWTSecret, redisClient))
	{
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)
		api.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		api.POST("/orders/:id/cancel", orderHandler.CancelOrder)

		api.GET("/dashboard", dashboardHandler.Dashboard)
		api.GET("/production", dashboardHandler.Production)

		api.GET("/customers", customerHandler.ListCustomers)

		api.GET("/products", catalogHandler.ListProducts)
		api.POST("/products", catalogHandler.SaveProduct)
		api.PUT("/products/:id", catalogHandler.SaveProduct)
		api.DELETE("/products/:id", catalogHandler.DeleteProduct)

		api.GET("/categories", catalogHandler.ListCategories)
		api.POST("/categories", catalogHandler.SaveCategory)
		api.DELETE("/categories/:id", catalogHandler.DeleteCategory)

		api.GET("/toppings", catalogHandler.ListToppings)
		api.POST("/toppings", catalogHandler.SaveTopping)
		api.DELETE("/toppings/:id", catalogHandler.DeleteTopping)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
