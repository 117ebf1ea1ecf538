package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/interntrack/interntrack-backend/internal/config"
	"github.com/interntrack/interntrack-backend/internal/database"
	"github.com/interntrack/interntrack-backend/internal/handlers"
	"github.com/interntrack/interntrack-backend/internal/identity"
	"github.com/interntrack/interntrack-backend/internal/middleware"
	"github.com/interntrack/interntrack-backend/internal/routes"
	"github.com/interntrack/interntrack-backend/internal/services"
	"github.com/interntrack/interntrack-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Build the identity provider and profile store, then ensure indexes
	idp := identity.NewMongoProvider(database.DB)
	profiles := store.NewMongoStore(database.DB)
	if err := idp.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to ensure identity indexes:", err)
	}
	if err := profiles.EnsureIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure profile indexes: %v", err)
	} else {
		log.Println("✅ MongoDB indexes ensured")
	}

	// Wire services and handlers
	provisioner := services.NewProvisioner(idp, profiles, cfg.DefaultCompany)
	roster := services.NewRoster(profiles, cfg.StatsBatchSize)
	stats := services.NewStats(profiles, roster)
	h := handlers.NewHandler(provisioner, stats, roster, cfg.RequireInternPhone)

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Production: SecurityHeaders → HostCheck → GlobalRateLimit → ProvisionRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost) {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + provisioning rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	routes.SetupRoutes(r, h)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/teachers")
	log.Println("  GET  /api/teachers")
	log.Println("  GET  /api/teachers/stats")
	log.Println("  POST /api/interns")
	log.Println("  GET  /api/interns")
	log.Println("  GET  /api/interns/stats")

	log.Printf("🚀 InternTrack backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
