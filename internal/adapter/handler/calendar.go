package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/marinazub/meeting-insights/errors"
	"github.com/marinazub/meeting-insights/internal/adapter/presenter"
	usecaseErrors "github.com/marinazub/meeting-insights/internal/usecase/errors"
	"github.com/marinazub/meeting-insights/internal/usecase/insights"
)

// Calendar handles calendar provider HTTP requests
type Calendar struct {
	service *insights.CalendarService
	logger  *zap.Logger
}

// NewCalendar creates a new calendar handler
func NewCalendar(service *insights.CalendarService, logger *zap.Logger) *Calendar {
	return &Calendar{
		service: service,
		logger:  logger,
	}
}

// Connect starts the OAuth flow for a provider
// GET /v1/calendar/:provider/connect
func (h *Calendar) Connect(c echo.Context) error {
	provider := c.Param("provider")

	conn, err := h.service.Connect(provider)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(provider, err))
	}

	return HandleSuccess(h.logger, c, conn)
}

// Callback completes the OAuth flow for a provider
// GET /v1/calendar/:provider/callback
func (h *Calendar) Callback(c echo.Context) error {
	provider := c.Param("provider")
	code := c.QueryParam("code")
	state := c.QueryParam("state")

	if code == "" || state == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("missing code or state parameter"))
	}

	if err := h.service.HandleCallback(c.Request().Context(), provider, state, code); err != nil {
		return HandleError(h.logger, c, h.mapError(provider, err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"provider":  provider,
		"connected": true,
	})
}

// Meetings fetches the connected provider's upcoming meetings and
// returns them evaluated
// GET /v1/calendar/:provider/meetings
func (h *Calendar) Meetings(c echo.Context) error {
	provider := c.Param("provider")

	result, err := h.service.EvaluateUpcoming(c.Request().Context(), provider)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(provider, err))
	}

	return HandleSuccess(h.logger, c, presenter.ToCalendarSummaryResponse(result.Summary))
}

// mapError converts usecase sentinels to transport errors; anything
// else passes through for the central handler.
func (h *Calendar) mapError(provider string, err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrUnknownProvider):
		return errors.ErrUnknownProvider(provider)
	case stdErrors.Is(err, usecaseErrors.ErrProviderNotConnected):
		return errors.ErrProviderNotConnected(provider)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidOAuthState):
		return errors.ErrOAuthStateInvalid()
	default:
		return err
	}
}
