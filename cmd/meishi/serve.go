package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yukikurage/digital-meishi-api/internal/cache"
	"github.com/yukikurage/digital-meishi-api/internal/config"
	"github.com/yukikurage/digital-meishi-api/internal/constants"
	"github.com/yukikurage/digital-meishi-api/internal/database"
	"github.com/yukikurage/digital-meishi-api/internal/handlers"
	"github.com/yukikurage/digital-meishi-api/internal/middleware"
	"github.com/yukikurage/digital-meishi-api/internal/repository"
	"github.com/yukikurage/digital-meishi-api/internal/services"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the business card API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Set Gin mode
	gin.SetMode(cfg.App.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations and seed the skill options
	if err := database.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}
	if err := database.SeedSkills(database.GetDB()); err != nil {
		return fmt.Errorf("failed to seed skills: %w", err)
	}

	r := newRouter(cfg)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("Server starting on %s", addr)
	return r.Run(addr)
}

func newRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.Origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Session middleware backs the recently-viewed feature
	store := cookie.NewStore([]byte(cfg.App.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.App.GinMode == "release",
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Shared query cache, constructed once and injected
	cacheStore := cache.New(time.Duration(cfg.App.CacheTTLSec) * time.Second)

	userRepo := repository.NewUserRepository(database.GetDB())
	skillRepo := repository.NewSkillRepository(database.GetDB())

	userService := services.NewUserService(userRepo, cacheStore, config.SkillMode(cfg.App.SkillMode))
	skillService := services.NewSkillService(skillRepo, cacheStore)
	recentService := services.NewRecentService(userService)

	userHandler := handlers.NewUserHandler(userService, recentService)
	skillHandler := handlers.NewSkillHandler(skillService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Digital business card API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.Register)
			users.POST("/lookup", userHandler.Lookup)
			users.GET("/suggestions", userHandler.Suggestions)
			users.GET("/recent", userHandler.Recent)
			users.GET("/:id", userHandler.GetUser)
		}

		api.GET("/skills", skillHandler.ListSkills)
	}

	return r
}
