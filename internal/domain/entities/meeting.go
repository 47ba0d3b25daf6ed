package entities

// Meeting holds the attributes of a single meeting as supplied by the
// calendar collaborator. The scoring core treats it as immutable input.
type Meeting struct {
	Title                string `json:"title"`
	DurationMinutes      int    `json:"duration_minutes"`
	ParticipantCount     int    `json:"participant_count"`
	ExpectedSpeakerCount int    `json:"expected_speaker_count"`
	HasAgenda            bool   `json:"has_agenda"`
	// DecisionMade and FollowUpSent are unknown for future meetings;
	// nil means "not yet known" and contributes nothing to the score.
	DecisionMade *bool `json:"decision_made,omitempty"`
	FollowUpSent *bool `json:"follow_up_sent,omitempty"`
	CouldBeAsync bool  `json:"could_be_async"`
}

// Band is the qualitative classification of a usefulness score
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// Recommendation is the advised action for a meeting, derived from its
// band and async suitability
type Recommendation string

const (
	RecommendationKeep            Recommendation = "keep"
	RecommendationConsiderAsync   Recommendation = "consider-async"
	RecommendationConsiderDecline Recommendation = "consider-decline"
)

// ContributingFactor records one signed contribution to a score. The
// factor names and their order are part of the serialized contract.
type ContributingFactor struct {
	Factor       string  `json:"factor"`
	Contribution float64 `json:"contribution"`
}

// MeetingEvaluation is the scored result for a single meeting. Created
// fresh per scoring call and never mutated after return.
type MeetingEvaluation struct {
	Title               string               `json:"title"`
	Score               float64              `json:"score"`
	Band                Band                 `json:"band"`
	ContributingFactors []ContributingFactor `json:"contributing_factors"`
	Recommendation      Recommendation       `json:"recommendation"`
}

// CalendarSummary aggregates the evaluations of an ordered batch of
// meetings. Evaluations keep the input order; AverageScore is nil when
// the batch is empty.
type CalendarSummary struct {
	Evaluations        []MeetingEvaluation `json:"evaluations"`
	MeetingCount       int                 `json:"meeting_count"`
	TotalMinutes       int                 `json:"total_minutes"`
	AverageScore       *float64            `json:"average_score"`
	LowValueMinutes    int                 `json:"low_value_minutes"`
	ReclaimableMinutes int                 `json:"reclaimable_minutes"`
}
