package handler

import (
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/marinazub/meeting-insights/errors"
	feedbackdto "github.com/marinazub/meeting-insights/internal/adapter/dto/feedback"
	"github.com/marinazub/meeting-insights/internal/adapter/presenter"
	"github.com/marinazub/meeting-insights/internal/domain/entities"
	"github.com/marinazub/meeting-insights/internal/infrastructure/notify"
	usecaseErrors "github.com/marinazub/meeting-insights/internal/usecase/errors"
	"github.com/marinazub/meeting-insights/internal/usecase/feedback"
)

// Feedback handles survey lifecycle HTTP requests
type Feedback struct {
	service       *feedback.Service
	dispatcher    *notify.Dispatcher
	surveyBaseURL string
	logger        *zap.Logger
}

// NewFeedback creates a new feedback handler
func NewFeedback(service *feedback.Service, dispatcher *notify.Dispatcher, surveyBaseURL string, logger *zap.Logger) *Feedback {
	return &Feedback{
		service:       service,
		dispatcher:    dispatcher,
		surveyBaseURL: surveyBaseURL,
		logger:        logger,
	}
}

// ScheduleSurvey creates a survey record in the scheduled state
// POST /v1/feedback/surveys
func (h *Feedback) ScheduleSurvey(c echo.Context) error {
	var req feedbackdto.ScheduleSurveyRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	record, err := h.service.ScheduleSurvey(c.Request().Context(), feedback.ScheduleSurveyInput{
		RecurringMeetingID: req.RecurringMeetingID,
		MeetingTitle:       req.MeetingTitle,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSurveyResponse(record))
}

// SubmitResponse appends one submission to a survey record
// POST /v1/feedback/surveys/:id/responses
func (h *Feedback) SubmitResponse(c echo.Context) error {
	surveyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid survey id"))
	}

	var req feedbackdto.SubmitResponseRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	record, err := h.service.SubmitResponse(c.Request().Context(), surveyID, entities.SurveyResponse{
		DecisionMade:  req.DecisionMade,
		ActionItems:   req.ActionItems,
		CouldBeAsync:  req.CouldBeAsync,
		Participation: req.Participation,
		MeetingLength: req.MeetingLength,
		SubmittedAt:   time.Now(),
	})
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrSurveyNotFound) {
			return HandleError(h.logger, c, errors.ErrSurveyNotFound(surveyID.String()))
		}
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSurveyResponse(record))
}

// SeriesFeedback returns the aggregated feedback for a recurring
// meeting series. A series with no completed feedback yet aggregates
// to null.
// GET /v1/series/:id/feedback
func (h *Feedback) SeriesFeedback(c echo.Context) error {
	seriesID := c.Param("id")

	agg, err := h.service.AggregateSeries(c.Request().Context(), seriesID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSeriesFeedbackResponse(seriesID, agg))
}

// SeriesSuggestions returns the ordered improvement suggestions for a
// series
// GET /v1/series/:id/suggestions
func (h *Feedback) SeriesSuggestions(c echo.Context) error {
	seriesID := c.Param("id")

	suggestions, err := h.service.SuggestionsForSeries(c.Request().Context(), seriesID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSuggestionListResponse(seriesID, suggestions))
}

// ProcessSeries marks every completed record of a series processed
// POST /v1/series/:id/process
func (h *Feedback) ProcessSeries(c echo.Context) error {
	seriesID := c.Param("id")

	count, err := h.service.MarkSeriesProcessed(c.Request().Context(), seriesID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &feedbackdto.ProcessSeriesResponse{
		RecurringMeetingID: seriesID,
		RecordsProcessed:   count,
	})
}

// NotifySeries dispatches survey invitations for every scheduled
// record of a series over all configured channels
// POST /v1/series/:id/notify
func (h *Feedback) NotifySeries(c echo.Context) error {
	ctx := c.Request().Context()
	seriesID := c.Param("id")

	scheduled, err := h.service.ScheduledSurveys(ctx, seriesID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	dispatched := 0
	for _, record := range scheduled {
		inv := notify.Invitation{
			SurveyID:     record.ID.String(),
			MeetingTitle: record.MeetingTitle,
			SurveyURL:    fmt.Sprintf("%s/%s", h.surveyBaseURL, record.ID),
		}
		if err := h.dispatcher.Dispatch(ctx, inv); err != nil {
			return HandleError(h.logger, c, err)
		}
		dispatched++
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"recurring_meeting_id": seriesID,
		"invitations_sent":     dispatched,
	})
}
