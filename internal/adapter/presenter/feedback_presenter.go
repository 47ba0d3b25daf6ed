package presenter

import (
	feedbackdto "github.com/marinazub/meeting-insights/internal/adapter/dto/feedback"
	"github.com/marinazub/meeting-insights/internal/domain/entities"
)

// ToSurveyResponse converts a FeedbackRecord entity to its DTO
func ToSurveyResponse(record *entities.FeedbackRecord) *feedbackdto.SurveyResponse {
	if record == nil {
		return nil
	}
	return &feedbackdto.SurveyResponse{
		ID:                 record.ID.String(),
		RecurringMeetingID: record.RecurringMeetingID,
		MeetingTitle:       record.MeetingTitle,
		Status:             string(record.Status),
		ResponseCount:      len(record.Responses),
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}

// ToSeriesFeedbackResponse wraps an aggregation for one series. A nil
// aggregation stays null in the response so clients can tell "no
// feedback yet" apart from all-zero rates.
func ToSeriesFeedbackResponse(seriesID string, agg *entities.AggregatedFeedback) *feedbackdto.SeriesFeedbackResponse {
	response := &feedbackdto.SeriesFeedbackResponse{RecurringMeetingID: seriesID}
	if agg != nil {
		response.Aggregated = &feedbackdto.AggregatedFeedbackResponse{
			RecurringMeetingID:   agg.RecurringMeetingID,
			TotalResponses:       agg.TotalResponses,
			DecisionsRate:        agg.DecisionsRate,
			ActionItemsRate:      agg.ActionItemsRate,
			CouldBeAsyncRate:     agg.CouldBeAsyncRate,
			AverageParticipation: agg.AverageParticipation,
			LengthRatings:        agg.LengthRatings,
		}
	}
	return response
}

// ToSuggestionListResponse converts generated suggestions to the list
// DTO, preserving rule order
func ToSuggestionListResponse(seriesID string, suggestions []entities.Suggestion) *feedbackdto.SuggestionListResponse {
	out := make([]feedbackdto.SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = feedbackdto.SuggestionResponse{
			Area:     string(s.Area),
			Text:     s.Text,
			Priority: string(s.Priority),
		}
	}
	return &feedbackdto.SuggestionListResponse{
		RecurringMeetingID: seriesID,
		Suggestions:        out,
	}
}
