package main

import (
	"context"
	"log"
	"os"
	"time"

	"zaika/internal/ai"
	"zaika/internal/auth"
	"zaika/internal/catalog"
	"zaika/internal/db"
	"zaika/internal/events"
	"zaika/internal/middleware"
	"zaika/internal/order"
	"zaika/internal/payment"
	"zaika/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"STRIPE_SECRET_KEY",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── AI + PAYMENT ─────────────────────────
	geminiClient := ai.NewGeminiClient()
	stripeClient := payment.NewStripeClient()

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	catalogService := catalog.NewService(catalogRepo, r2Client)

	if err := catalogService.EnsureSeed(context.Background()); err != nil {
		log.Fatal("catalog seed failed:", err)
	}

	catalogHandler := catalog.NewHandler(catalogService)
	adminCatalogHandler := catalog.NewAdminHandler(catalogService, geminiClient)

	r.GET("/products", catalogHandler.List)
	r.GET("/products/:id", catalogHandler.Get)

	// ───────────────────────── ORDERS ─────────────────────────
	orderRepo := order.NewPostgresRepository(pgDB)
	orderService := order.NewService(
		orderRepo,
		catalogRepo,
		geminiClient,
		stripeClient,
	)

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		orderService.SetRedisClient(redis.NewClient(&redis.Options{Addr: addr}))
		log.Println("catalog cache enabled via redis")
	}

	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		publisher, err := events.NewPublisher(amqpURL, "orders")
		if err != nil {
			log.Println("event publisher disabled:", err)
		} else {
			defer publisher.Close()
			orderService.SetPublisher(publisher)
			log.Println("order event publishing enabled")
		}
	}

	orderHandler := order.NewHandler(orderService)

	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("/interpret", orderHandler.Interpret)
		orders.POST("/checkout", orderHandler.Checkout)
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("/:id/confirm", orderHandler.Confirm)
		orders.POST("/:id/cancel", orderHandler.Cancel)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/products", adminCatalogHandler.Create)
		admin.PUT("/products/:id", adminCatalogHandler.Update)
		admin.DELETE("/products/:id", adminCatalogHandler.Delete)
		admin.POST("/products/:id/image", adminCatalogHandler.UploadImage)
		admin.POST("/products/import", adminCatalogHandler.Import)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("API running at http://localhost:" + port)
	r.Run(":" + port)
}
