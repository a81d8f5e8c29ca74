// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swarloop/internal/config"
	"swarloop/internal/database"
	"swarloop/internal/handlers"
	"swarloop/internal/repository"
	"swarloop/internal/routes"
	"swarloop/internal/services"
)

func main() {

	// =========================
	// LOAD CONFIG
	// =========================
	if err := config.LoadConfig(); err != nil {
		log.Println("⚠️ Config load warning:", err)
		log.Println("⚠️ Using environment variables only")
	}

	// =========================
	// CONNECT DATABASE
	// =========================
	if err := database.ConnectDB(); err != nil {
		log.Fatalln("❌ Database connection failed:", err)
	}
	database.RunMigrations()

	// =========================
	// INIT REPOSITORIES
	// =========================
	userRepo := repository.NewUserRepository()
	tokenRepo := repository.NewRefreshTokenRepository()
	trackRepo := repository.NewTrackRepository()
	moodRepo := repository.NewMoodEventRepository()
	recRepo := repository.NewRecommendationRepository()

	// =========================
	// INIT SERVICES
	// =========================
	classifier := services.NewMoodClassifierService()
	ranker := services.NewMoodRankerService()
	recommendationService := services.NewMoodRecommendationService(
		moodRepo,
		trackRepo,
		recRepo,
		classifier,
		ranker,
	)

	// =========================
	// INIT HANDLERS
	// =========================
	authHandler := handlers.NewAuthHandler(userRepo, tokenRepo)
	trackHandler := handlers.NewTrackHandler(trackRepo)
	moodHandler := handlers.NewMoodHandler(moodRepo, classifier)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, recRepo)

	// =========================
	// ROUTES
	// =========================
	router := routes.SetupRoutes(
		authHandler,
		trackHandler,
		moodHandler,
		recommendationHandler,
		classifier,
	)

	// =========================
	// PORT
	// =========================
	port := os.Getenv("PORT")
	if port == "" {
		port = config.GlobalConfig.ServerPort
	}
	if port == "" {
		port = "8080"
	}
	bindAddr := "0.0.0.0:" + port

	server := &http.Server{
		Addr:         bindAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// =========================
	// START SERVER
	// =========================
	go func() {
		log.Println("🎵 =======================================")
		log.Println("🎵   SWARLOOP API SERVER")
		log.Println("🎵 =======================================")
		log.Printf("🎵   Running on: %s", bindAddr)
		log.Println("🚀 Server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println("❌ Server error:", err)
		}
	}()

	// =========================
	// GRACEFUL SHUTDOWN
	// =========================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	log.Println("✅ Server exited properly")
}
