package feedback

// ScheduleSurveyRequest represents the request to schedule a feedback
// survey for a meeting
type ScheduleSurveyRequest struct {
	RecurringMeetingID *string `json:"recurring_meeting_id,omitempty"`
	MeetingTitle       string  `json:"meeting_title" validate:"omitempty,max=255"`
}

// SubmitResponseRequest represents one survey submission
type SubmitResponseRequest struct {
	DecisionMade  bool     `json:"decision_made"`
	ActionItems   bool     `json:"action_items"`
	CouldBeAsync  bool     `json:"could_be_async"`
	Participation *float64 `json:"participation,omitempty" validate:"omitempty,min=0,max=100"`
	MeetingLength *string  `json:"meeting_length,omitempty" validate:"omitempty,oneof='Too short' 'Just right' 'Too long'"`
}
