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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/marinazub/meeting-insights/pkg/validator"

	"github.com/marinazub/meeting-insights/internal/adapter/handler"
	"github.com/marinazub/meeting-insights/internal/adapter/repository"
	"github.com/marinazub/meeting-insights/internal/infrastructure/cache"
	"github.com/marinazub/meeting-insights/internal/infrastructure/external/calendar"
	"github.com/marinazub/meeting-insights/internal/infrastructure/notify"
	"github.com/marinazub/meeting-insights/internal/usecase/feedback"
	"github.com/marinazub/meeting-insights/internal/usecase/insights"
	"github.com/marinazub/meeting-insights/internal/usecase/scoring"
	"github.com/marinazub/meeting-insights/pkg/config"
	"github.com/marinazub/meeting-insights/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize in-memory store for OAuth state and fetch caching
	log.Println("📦 Initializing memory store...")
	store := cache.NewMemoryStore()
	defer store.Close()

	// Score weights come from config so deployments can tune them
	weights := scoring.Weights{
		DecisionMade:       cfg.Scoring.DecisionMade,
		AgendaProvided:     cfg.Scoring.AgendaProvided,
		FollowUpSent:       cfg.Scoring.FollowUpSent,
		CouldBeAsync:       cfg.Scoring.CouldBeAsync,
		ParticipationRatio: cfg.Scoring.ParticipationRatio,
		LongMeetingPenalty: cfg.Scoring.LongMeetingPenalty,
		LongMeetingMinutes: cfg.Scoring.LongMeetingMinutes,
		HighBand:           cfg.Scoring.HighBand,
		MediumBand:         cfg.Scoring.MediumBand,
	}

	// Initialize calendar providers
	log.Println("🔐 Initializing calendar providers...")
	providerFactory := calendar.NewFactory(
		calendar.Config{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.RedirectURL,
		},
		calendar.Config{
			ClientID:     cfg.OAuth.Outlook.ClientID,
			ClientSecret: cfg.OAuth.Outlook.ClientSecret,
			RedirectURL:  cfg.OAuth.Outlook.RedirectURL,
		},
	)

	// Initialize state manager for CSRF protection
	log.Println("🔒 Initializing state manager...")
	stateManager := calendar.NewStateManager(store)

	// Initialize calendar service
	calendarService := insights.NewCalendarService(providerFactory, stateManager, store, weights, logger)

	// Initialize feedback repository and service
	log.Println("⚙️  Initializing feedback service...")
	feedbackRepo := repository.NewFeedbackMemoryRepository()
	feedbackService := feedback.NewService(feedbackRepo, logger)

	// Initialize notification channels
	log.Println("📣 Initializing notification dispatcher...")
	var channels []notify.Notifier
	if cfg.Notify.SMTPHost != "" {
		channels = append(channels, notify.NewEmailNotifier(notify.EmailConfig{
			Host:       cfg.Notify.SMTPHost,
			Port:       cfg.Notify.SMTPPort,
			Username:   cfg.Notify.SMTPUsername,
			Password:   cfg.Notify.SMTPPassword,
			From:       cfg.Notify.EmailFrom,
			Recipients: cfg.Notify.EmailRecipients,
		}))
	}
	if cfg.Notify.WebhookURL != "" {
		channels = append(channels, notify.NewWebhookNotifier(cfg.Notify.WebhookURL))
	}
	dispatcher := notify.NewDispatcher(logger, channels...)
	if len(channels) == 0 {
		log.Println("⚠️  No notification channels configured; invitation dispatch is a no-op")
	}

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	scoringHandler := handler.NewScoring(weights, logger)
	feedbackHandler := handler.NewFeedback(feedbackService, dispatcher, cfg.Notify.SurveyBaseURL, logger)
	calendarHandler := handler.NewCalendar(calendarService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, scoringHandler, feedbackHandler, calendarHandler, jwtManager)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
