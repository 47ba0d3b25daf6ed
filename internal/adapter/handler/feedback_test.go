package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	feedbackdto "github.com/marinazub/meeting-insights/internal/adapter/dto/feedback"
	"github.com/marinazub/meeting-insights/internal/adapter/repository"
	"github.com/marinazub/meeting-insights/internal/infrastructure/notify"
	"github.com/marinazub/meeting-insights/internal/usecase/feedback"
)

func newFeedbackHandler() *Feedback {
	repo := repository.NewFeedbackMemoryRepository()
	service := feedback.NewService(repo, zap.NewNop())
	dispatcher := notify.NewDispatcher(zap.NewNop())
	return NewFeedback(service, dispatcher, "http://localhost:8080/v1/feedback/surveys", zap.NewNop())
}

func doJSONWithParams(t *testing.T, e *echo.Echo, h echo.HandlerFunc, method, path, body string, paramName, paramValue string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	require.NoError(t, h(c))
	return rec
}

func scheduleSurvey(t *testing.T, e *echo.Echo, h *Feedback, seriesID string) feedbackdto.SurveyResponse {
	t.Helper()
	body := fmt.Sprintf(`{"recurring_meeting_id": %q, "meeting_title": "Weekly Sync"}`, seriesID)
	rec := doJSONWithParams(t, e, h.ScheduleSurvey, http.MethodPost, "/v1/feedback/surveys", body, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var survey feedbackdto.SurveyResponse
	require.NoError(t, json.Unmarshal(env.Data, &survey))
	return survey
}

func TestSurveyLifecycleOverHTTP(t *testing.T) {
	e := newEcho()
	h := newFeedbackHandler()

	survey := scheduleSurvey(t, e, h, "weekly-sync")
	assert.Equal(t, "scheduled", survey.Status)
	assert.Equal(t, 0, survey.ResponseCount)

	respBody := `{
		"decision_made": true,
		"action_items": true,
		"could_be_async": false,
		"participation": 80,
		"meeting_length": "Just right"
	}`
	rec := doJSONWithParams(t, e, h.SubmitResponse, http.MethodPost,
		"/v1/feedback/surveys/"+survey.ID+"/responses", respBody, "id", survey.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var updated feedbackdto.SurveyResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, 1, updated.ResponseCount)
}

func TestSubmitResponseUnknownSurvey(t *testing.T) {
	e := newEcho()
	h := newFeedbackHandler()

	rec := doJSONWithParams(t, e, h.SubmitResponse, http.MethodPost,
		"/v1/feedback/surveys/1f7a3c7e-9a5e-4a71-b5da-1f2d3c4b5a69/responses",
		`{"decision_made": true}`, "id", "1f7a3c7e-9a5e-4a71-b5da-1f2d3c4b5a69")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitResponseInvalidID(t *testing.T) {
	e := newEcho()
	h := newFeedbackHandler()

	rec := doJSONWithParams(t, e, h.SubmitResponse, http.MethodPost,
		"/v1/feedback/surveys/not-a-uuid/responses",
		`{"decision_made": true}`, "id", "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitResponseRejectsBadLengthOption(t *testing.T) {
	e := newEcho()
	h := newFeedbackHandler()
	survey := scheduleSurvey(t, e, h, "weekly-sync")

	rec := doJSONWithParams(t, e, h.SubmitResponse, http.MethodPost,
		"/v1/feedback/surveys/"+survey.ID+"/responses",
		`{"meeting_length": "Way too long"}`, "id", survey.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeriesFeedbackAndSuggestions(t *testing.T) {
	e := newEcho()
	h := newFeedbackHandler()
	survey := scheduleSurvey(t, e, h, "retro")

	// No completed feedback yet: aggregation is null, not an error.
	rec := doJSONWithParams(t, e, h.SeriesFeedback, http.MethodGet,
		"/v1/series/retro/feedback", "", "id", "retro")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var series feedbackdto.SeriesFeedbackResponse
	require.NoError(t, json.Unmarshal(env.Data, &series))
	assert.Nil(t, series.Aggregated)

	// Submit responses that trip the async rule.
	for i := 0; i < 3; i++ {
		rec := doJSONWithParams(t, e, h.SubmitResponse, http.MethodPost,
			"/v1/feedback/surveys/"+survey.ID+"/responses",
			`{"decision_made": true, "action_items": true, "could_be_async": true, "participation": 80}`,
			"id", survey.ID)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSONWithParams(t, e, h.SeriesFeedback, http.MethodGet,
		"/v1/series/retro/feedback", "", "id", "retro")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &series))
	require.NotNil(t, series.Aggregated)
	assert.Equal(t, 3, series.Aggregated.TotalResponses)
	assert.InDelta(t, 1.0, series.Aggregated.CouldBeAsyncRate, 0.001)

	rec = doJSONWithParams(t, e, h.SeriesSuggestions, http.MethodGet,
		"/v1/series/retro/suggestions", "", "id", "retro")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	var suggestions feedbackdto.SuggestionListResponse
	require.NoError(t, json.Unmarshal(env.Data, &suggestions))
	require.Len(t, suggestions.Suggestions, 1)
	assert.Equal(t, "Meeting Format", suggestions.Suggestions[0].Area)
	assert.Equal(t, "high", suggestions.Suggestions[0].Priority)
}

func TestProcessSeriesOverHTTP(t *testing.T) {
	e := newEcho()
	h := newFeedbackHandler()
	survey := scheduleSurvey(t, e, h, "standup")

	rec := doJSONWithParams(t, e, h.SubmitResponse, http.MethodPost,
		"/v1/feedback/surveys/"+survey.ID+"/responses",
		`{"decision_made": true}`, "id", survey.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSONWithParams(t, e, h.ProcessSeries, http.MethodPost,
		"/v1/series/standup/process", "", "id", "standup")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var processed feedbackdto.ProcessSeriesResponse
	require.NoError(t, json.Unmarshal(env.Data, &processed))
	assert.Equal(t, 1, processed.RecordsProcessed)

	// Idempotent: nothing left to move.
	rec = doJSONWithParams(t, e, h.ProcessSeries, http.MethodPost,
		"/v1/series/standup/process", "", "id", "standup")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &processed))
	assert.Equal(t, 0, processed.RecordsProcessed)
}

func TestNotifySeriesOverHTTP(t *testing.T) {
	e := newEcho()

	repo := repository.NewFeedbackMemoryRepository()
	service := feedback.NewService(repo, zap.NewNop())

	var received atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	dispatcher := notify.NewDispatcher(zap.NewNop(), notify.NewWebhookNotifier(srv.URL))
	h := NewFeedback(service, dispatcher, "http://localhost:8080/v1/feedback/surveys", zap.NewNop())

	scheduleSurvey(t, e, h, "design-review")
	scheduleSurvey(t, e, h, "design-review")

	rec := doJSONWithParams(t, e, h.NotifySeries, http.MethodPost,
		"/v1/series/design-review/notify", "", "id", "design-review")
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data struct {
			InvitationsSent int `json:"invitations_sent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, 2, env.Data.InvitationsSent)
	assert.Equal(t, int32(2), received.Load())
}
