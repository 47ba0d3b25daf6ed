package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/marinazub/meeting-insights/internal/infrastructure/http/middleware"
	"github.com/marinazub/meeting-insights/pkg/config"
	"github.com/marinazub/meeting-insights/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	scoringHandler  *Scoring
	feedbackHandler *Feedback
	calendarHandler *Calendar
	jwtManager      *jwt.Manager
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	scoringHandler *Scoring,
	feedbackHandler *Feedback,
	calendarHandler *Calendar,
	jwtManager *jwt.Manager,
) *Router {
	return &Router{
		cfg:             cfg,
		scoringHandler:  scoringHandler,
		feedbackHandler: feedbackHandler,
		calendarHandler: calendarHandler,
		jwtManager:      jwtManager,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupScoringRoutes(v1)
	rt.setupCalendarRoutes(v1)
	rt.setupFeedbackRoutes(v1)
}

// setupScoringRoutes configures evaluation routes
func (rt *Router) setupScoringRoutes(g *echo.Group) {
	g.POST("/meetings/evaluate", rt.scoringHandler.EvaluateMeeting)
	g.POST("/calendar/evaluate", rt.scoringHandler.EvaluateCalendar)
}

// setupCalendarRoutes configures calendar provider routes
func (rt *Router) setupCalendarRoutes(g *echo.Group) {
	calGroup := g.Group("/calendar")

	calGroup.GET("/:provider/connect", rt.calendarHandler.Connect)
	calGroup.GET("/:provider/callback", rt.calendarHandler.Callback)
	calGroup.GET("/:provider/meetings", rt.calendarHandler.Meetings)
}

// setupFeedbackRoutes configures survey and series routes. Mutating
// administrative routes require a bearer token; survey submission
// stays open so participants can respond without accounts.
func (rt *Router) setupFeedbackRoutes(g *echo.Group) {
	auth := authmw.JWTAuth(rt.jwtManager, nil)

	surveys := g.Group("/feedback/surveys")
	surveys.POST("", rt.feedbackHandler.ScheduleSurvey, auth)
	surveys.POST("/:id/responses", rt.feedbackHandler.SubmitResponse)

	series := g.Group("/series")
	series.GET("/:id/feedback", rt.feedbackHandler.SeriesFeedback)
	series.GET("/:id/suggestions", rt.feedbackHandler.SeriesSuggestions)
	series.POST("/:id/process", rt.feedbackHandler.ProcessSeries, auth)
	series.POST("/:id/notify", rt.feedbackHandler.NotifySeries, auth)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
