package handler

import (
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"

	"github.com/marinazub/meeting-insights/errors"
	scoringdto "github.com/marinazub/meeting-insights/internal/adapter/dto/scoring"
	"github.com/marinazub/meeting-insights/internal/adapter/presenter"
	"github.com/marinazub/meeting-insights/internal/usecase/scoring"
)

// Scoring handles meeting evaluation HTTP requests
type Scoring struct {
	weights scoring.Weights
	logger  *zap.Logger
}

// NewScoring creates a new scoring handler with the configured default
// weights
func NewScoring(weights scoring.Weights, logger *zap.Logger) *Scoring {
	return &Scoring{
		weights: weights,
		logger:  logger,
	}
}

// EvaluateMeeting scores a single meeting
// POST /v1/meetings/evaluate
func (h *Scoring) EvaluateMeeting(c echo.Context) error {
	var req scoringdto.EvaluateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	weights := applyWeightOverride(h.weights, req.Weights)
	eval, err := scoring.Score(toMeeting(req.Meeting), weights)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToEvaluationResponse(eval))
}

// EvaluateCalendar scores an ordered batch of meetings and aggregates
// the results
// POST /v1/calendar/evaluate
func (h *Scoring) EvaluateCalendar(c echo.Context) error {
	var req scoringdto.EvaluateCalendarRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	weights := applyWeightOverride(h.weights, req.Weights)
	summary, err := scoring.EvaluateAll(toMeetings(req.Meetings), weights)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToCalendarSummaryResponse(summary))
}
