package entities

import (
	"time"

	"github.com/google/uuid"
)

// SurveyStatus tracks the lifecycle of a feedback survey record
type SurveyStatus string

const (
	// SurveyStatusScheduled means the survey was sent but no response
	// has arrived yet
	SurveyStatusScheduled SurveyStatus = "scheduled"
	// SurveyStatusCompleted means at least one response was submitted
	SurveyStatusCompleted SurveyStatus = "completed"
	// SurveyStatusProcessed means suggestions were consumed for this
	// record; the state is terminal and idempotent to re-set
	SurveyStatusProcessed SurveyStatus = "processed"
)

// Meeting length rating options. The spellings are part of the
// aggregation contract.
const (
	LengthTooShort  = "Too short"
	LengthJustRight = "Just right"
	LengthTooLong   = "Too long"
)

// SurveyResponse is one submitted answer set. Participation is nil when
// the respondent skipped the question, MeetingLength is nil when the
// length question was not answered.
type SurveyResponse struct {
	DecisionMade  bool      `json:"decision_made"`
	ActionItems   bool      `json:"action_items"`
	CouldBeAsync  bool      `json:"could_be_async"`
	Participation *float64  `json:"participation,omitempty"`
	MeetingLength *string   `json:"meeting_length,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// FeedbackRecord ties submitted survey responses to a recurring meeting
// series. Records without a RecurringMeetingID are never aggregated. A
// record may hold more than one response if feedback was resubmitted;
// all submissions count.
type FeedbackRecord struct {
	ID                 uuid.UUID        `json:"id"`
	RecurringMeetingID *string          `json:"recurring_meeting_id,omitempty"`
	MeetingTitle       string           `json:"meeting_title,omitempty"`
	Status             SurveyStatus     `json:"status"`
	Responses          []SurveyResponse `json:"responses"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// NewFeedbackRecord creates a scheduled survey record for a series
func NewFeedbackRecord(recurringMeetingID *string, meetingTitle string) *FeedbackRecord {
	now := time.Now()
	return &FeedbackRecord{
		ID:                 uuid.New(),
		RecurringMeetingID: recurringMeetingID,
		MeetingTitle:       meetingTitle,
		Status:             SurveyStatusScheduled,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// AddResponse appends a submission and moves a scheduled record to
// completed. Processed records stay processed.
func (r *FeedbackRecord) AddResponse(resp SurveyResponse) {
	r.Responses = append(r.Responses, resp)
	if r.Status == SurveyStatusScheduled {
		r.Status = SurveyStatusCompleted
	}
	r.UpdatedAt = time.Now()
}

// MarkProcessed sets the terminal processed status. Re-marking is a
// no-op.
func (r *FeedbackRecord) MarkProcessed() {
	if r.Status == SurveyStatusProcessed {
		return
	}
	r.Status = SurveyStatusProcessed
	r.UpdatedAt = time.Now()
}

// AggregatedFeedback is the per-series reduction of all completed
// survey responses into rates. Every rate is in [0,1] and independent
// of record ordering.
type AggregatedFeedback struct {
	RecurringMeetingID   string         `json:"recurring_meeting_id"`
	TotalResponses       int            `json:"total_responses"`
	DecisionsRate        float64        `json:"decisions_rate"`
	ActionItemsRate      float64        `json:"action_items_rate"`
	CouldBeAsyncRate     float64        `json:"could_be_async_rate"`
	AverageParticipation float64        `json:"average_participation"`
	LengthRatings        map[string]int `json:"length_ratings"`
}
