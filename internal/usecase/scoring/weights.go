package scoring

// Factor names recorded in contributing factor lists. Downstream
// clients match on these strings, so they are a contract.
const (
	FactorDecisionMade       = "decision_made"
	FactorAgendaProvided     = "agenda_provided"
	FactorFollowUpSent       = "follow_up_sent"
	FactorCouldBeAsync       = "could_be_async"
	FactorParticipationRatio = "participation_ratio"
	FactorLongMeetingPenalty = "long_meeting_penalty"
)

// baseScore is the midpoint of the 0-100 scale, so unknown boolean
// attributes contribute nothing in either direction.
const baseScore = 50.0

// Weights holds the signed factor weights and thresholds that drive
// the scoring function. Callers may pass an override per call; the
// scorer is pure with respect to the weights argument.
type Weights struct {
	DecisionMade       float64 `json:"decision_made"`
	AgendaProvided     float64 `json:"agenda_provided"`
	FollowUpSent       float64 `json:"follow_up_sent"`
	CouldBeAsync       float64 `json:"could_be_async"`
	ParticipationRatio float64 `json:"participation_ratio"`
	LongMeetingPenalty float64 `json:"long_meeting_penalty"`

	// LongMeetingMinutes is the duration above which the length
	// penalty applies.
	LongMeetingMinutes int `json:"long_meeting_minutes"`

	// Band cut points. Scores >= HighBand classify "high", scores
	// >= MediumBand classify "medium", everything below is "low".
	// A score exactly at a threshold belongs to the higher band.
	HighBand   float64 `json:"high_band"`
	MediumBand float64 `json:"medium_band"`
}

// DefaultWeights returns the process-wide default weight set
func DefaultWeights() Weights {
	return Weights{
		DecisionMade:       30,
		AgendaProvided:     15,
		FollowUpSent:       20,
		CouldBeAsync:       -25,
		ParticipationRatio: 20,
		LongMeetingPenalty: -10,
		LongMeetingMinutes: 60,
		HighBand:           75,
		MediumBand:         50,
	}
}
