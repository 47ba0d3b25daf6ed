package feedback

import "time"

// SurveyResponse represents a survey record returned to clients
type SurveyResponse struct {
	ID                 string    `json:"id"`
	RecurringMeetingID *string   `json:"recurring_meeting_id,omitempty"`
	MeetingTitle       string    `json:"meeting_title,omitempty"`
	Status             string    `json:"status"`
	ResponseCount      int       `json:"response_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AggregatedFeedbackResponse is the per-series reduction of completed
// survey responses. Aggregated is null when the series has no feedback
// yet; that is an expected state, not an error.
type AggregatedFeedbackResponse struct {
	RecurringMeetingID   string         `json:"recurring_meeting_id"`
	TotalResponses       int            `json:"total_responses"`
	DecisionsRate        float64        `json:"decisions_rate"`
	ActionItemsRate      float64        `json:"action_items_rate"`
	CouldBeAsyncRate     float64        `json:"could_be_async_rate"`
	AverageParticipation float64        `json:"average_participation"`
	LengthRatings        map[string]int `json:"length_ratings"`
}

// SeriesFeedbackResponse wraps an aggregation for one series
type SeriesFeedbackResponse struct {
	RecurringMeetingID string                      `json:"recurring_meeting_id"`
	Aggregated         *AggregatedFeedbackResponse `json:"aggregated"`
}

// SuggestionResponse is one improvement recommendation
type SuggestionResponse struct {
	Area     string `json:"area"`
	Text     string `json:"text"`
	Priority string `json:"priority"`
}

// SuggestionListResponse is the ordered suggestion list for a series.
// The order is produced by the rule engine and must be displayed as-is.
type SuggestionListResponse struct {
	RecurringMeetingID string               `json:"recurring_meeting_id"`
	Suggestions        []SuggestionResponse `json:"suggestions"`
}

// ProcessSeriesResponse reports a processed transition
type ProcessSeriesResponse struct {
	RecurringMeetingID string `json:"recurring_meeting_id"`
	RecordsProcessed   int    `json:"records_processed"`
}
