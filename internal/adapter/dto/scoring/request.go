package scoring

// MeetingRequest carries one meeting's attributes for evaluation.
// Range rules (positive duration, at least one participant, speakers
// bounded by participants) are enforced by the scoring core so the
// rejection names the offending field; the DTO stays permissive.
type MeetingRequest struct {
	Title                string `json:"title"`
	DurationMinutes      int    `json:"duration_minutes"`
	ParticipantCount     int    `json:"participant_count"`
	ExpectedSpeakerCount int    `json:"expected_speaker_count"`
	HasAgenda            bool   `json:"has_agenda"`
	DecisionMade         *bool  `json:"decision_made,omitempty"`
	FollowUpSent         *bool  `json:"follow_up_sent,omitempty"`
	CouldBeAsync         bool   `json:"could_be_async"`
}

// WeightsOverride optionally replaces individual weights for a single
// evaluation call. Absent fields keep their configured defaults.
type WeightsOverride struct {
	DecisionMade       *float64 `json:"decision_made,omitempty"`
	AgendaProvided     *float64 `json:"agenda_provided,omitempty"`
	FollowUpSent       *float64 `json:"follow_up_sent,omitempty"`
	CouldBeAsync       *float64 `json:"could_be_async,omitempty"`
	ParticipationRatio *float64 `json:"participation_ratio,omitempty"`
	LongMeetingPenalty *float64 `json:"long_meeting_penalty,omitempty"`
	LongMeetingMinutes *int     `json:"long_meeting_minutes,omitempty"`
	HighBand           *float64 `json:"high_band,omitempty"`
	MediumBand         *float64 `json:"medium_band,omitempty"`
}

// EvaluateMeetingRequest represents the request to score one meeting
type EvaluateMeetingRequest struct {
	Meeting MeetingRequest   `json:"meeting" validate:"required"`
	Weights *WeightsOverride `json:"weights,omitempty"`
}

// EvaluateCalendarRequest represents the request to score an ordered
// batch of meetings
type EvaluateCalendarRequest struct {
	Meetings []MeetingRequest `json:"meetings" validate:"required"`
	Weights  *WeightsOverride `json:"weights,omitempty"`
}
