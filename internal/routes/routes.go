package routes

import (
	"log"
	"net/http"
	"os"
	"time"

	"swarloop/internal/database"
	"swarloop/internal/handlers"
	"swarloop/internal/middleware"
	"swarloop/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	authHandler *handlers.AuthHandler,
	trackHandler *handlers.TrackHandler,
	moodHandler *handlers.MoodHandler,
	recommendationHandler *handlers.RecommendationHandler,
	classifier services.MoodClassifierService,
) *gin.Engine {

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// =========================
	// CORS CONFIG (DEV / PROD)
	// =========================
	env := os.Getenv("ENV")
	frontendURL := os.Getenv("CORS_ORIGIN")

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if env == "production" {
		if frontendURL == "" {
			log.Fatal("❌ CORS_ORIGIN environment variable is NOT set in production!")
		}
		corsConfig.AllowOrigins = []string{frontendURL}
	} else {
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}
		if frontendURL != "" {
			allowedOrigins = append(allowedOrigins, frontendURL)
		}
		corsConfig.AllowOrigins = allowedOrigins
	}
	router.Use(cors.New(corsConfig))

	// =========================
	// SECURITY HEADERS
	// =========================
	router.Use(func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// =========================
	// API ROUTES
	// =========================
	api := router.Group("/api")
	{
		// ---------- AUTH ----------
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)

			authProtected := auth.Group("/")
			authProtected.Use(middleware.JWTMiddleware())
			{
				authProtected.POST("/logout", authHandler.Logout)
				authProtected.GET("/me", authHandler.Me)
			}
		}

		// ---------- PUBLIC CATALOG ----------
		tracks := api.Group("/tracks")
		tracks.Use(middleware.OptionalJWTMiddleware())
		{
			tracks.GET("", trackHandler.GetAllTracks)
			tracks.POST("/seed", trackHandler.SeedTracks)
			tracks.GET("/:id", trackHandler.GetTrackByID)
		}

		// ---------- PROTECTED ----------
		protected := api.Group("/")
		protected.Use(middleware.JWTMiddleware())
		{
			moods := protected.Group("/moods")
			{
				moods.POST("", moodHandler.SubmitMood)
				moods.POST("/voice", moodHandler.SubmitVoiceMood)
				moods.GET("", moodHandler.GetMoodHistory)
			}

			recommendations := protected.Group("/recommendations")
			{
				recommendations.POST("/mood", recommendationHandler.GenerateMoodRecommendations)
				recommendations.GET("/history", recommendationHandler.GetRecommendationHistory)
				recommendations.GET("/:id", recommendationHandler.GetRecommendationByID)
			}
		}
	}

	// =========================
	// HEALTH & ROOT
	// =========================
	router.GET("/health", func(c *gin.Context) {
		dbOK := false
		if database.DB != nil {
			if sqlDB, err := database.DB.DB(); err == nil {
				dbOK = sqlDB.Ping() == nil
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"checks": gin.H{
				"database":   dbOK,
				"ml_service": classifier.Healthy(c.Request.Context()),
			},
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "SwarLoop API",
			"version": "1.0.0",
		})
	})

	return router
}
