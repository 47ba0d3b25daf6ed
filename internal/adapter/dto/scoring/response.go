package scoring

// ContributingFactorResponse is one signed contribution in a score
// explanation
type ContributingFactorResponse struct {
	Factor       string  `json:"factor"`
	Contribution float64 `json:"contribution"`
}

// EvaluationResponse is the scored result for one meeting. Field names
// and the band/recommendation spellings are matched by downstream UI
// code.
type EvaluationResponse struct {
	Title               string                       `json:"title"`
	Score               float64                      `json:"score"`
	Band                string                       `json:"band"`
	ContributingFactors []ContributingFactorResponse `json:"contributing_factors"`
	Recommendation      string                       `json:"recommendation"`
}

// CalendarSummaryResponse aggregates a batch evaluation
type CalendarSummaryResponse struct {
	Evaluations        []EvaluationResponse `json:"evaluations"`
	MeetingCount       int                  `json:"meeting_count"`
	TotalMinutes       int                  `json:"total_minutes"`
	AverageScore       *float64             `json:"average_score"`
	LowValueMinutes    int                  `json:"low_value_minutes"`
	ReclaimableMinutes int                  `json:"reclaimable_minutes"`
}
