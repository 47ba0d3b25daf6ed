package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/marinazub/meeting-insights/errors"
	scoringdto "github.com/marinazub/meeting-insights/internal/adapter/dto/scoring"
	"github.com/marinazub/meeting-insights/internal/domain/entities"
	"github.com/marinazub/meeting-insights/internal/usecase/scoring"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	// Non-AppError => internal server error
	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// toMeeting converts a MeetingRequest DTO to the scoring entity
func toMeeting(req scoringdto.MeetingRequest) entities.Meeting {
	return entities.Meeting{
		Title:                req.Title,
		DurationMinutes:      req.DurationMinutes,
		ParticipantCount:     req.ParticipantCount,
		ExpectedSpeakerCount: req.ExpectedSpeakerCount,
		HasAgenda:            req.HasAgenda,
		DecisionMade:         req.DecisionMade,
		FollowUpSent:         req.FollowUpSent,
		CouldBeAsync:         req.CouldBeAsync,
	}
}

func toMeetings(reqs []scoringdto.MeetingRequest) []entities.Meeting {
	meetings := make([]entities.Meeting, len(reqs))
	for i, r := range reqs {
		meetings[i] = toMeeting(r)
	}
	return meetings
}

// applyWeightOverride overlays per-request weight overrides onto the
// configured defaults. Absent fields keep their defaults.
func applyWeightOverride(base scoring.Weights, o *scoringdto.WeightsOverride) scoring.Weights {
	if o == nil {
		return base
	}
	if o.DecisionMade != nil {
		base.DecisionMade = *o.DecisionMade
	}
	if o.AgendaProvided != nil {
		base.AgendaProvided = *o.AgendaProvided
	}
	if o.FollowUpSent != nil {
		base.FollowUpSent = *o.FollowUpSent
	}
	if o.CouldBeAsync != nil {
		base.CouldBeAsync = *o.CouldBeAsync
	}
	if o.ParticipationRatio != nil {
		base.ParticipationRatio = *o.ParticipationRatio
	}
	if o.LongMeetingPenalty != nil {
		base.LongMeetingPenalty = *o.LongMeetingPenalty
	}
	if o.LongMeetingMinutes != nil {
		base.LongMeetingMinutes = *o.LongMeetingMinutes
	}
	if o.HighBand != nil {
		base.HighBand = *o.HighBand
	}
	if o.MediumBand != nil {
		base.MediumBand = *o.MediumBand
	}
	return base
}
