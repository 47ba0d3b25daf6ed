package entities

// SuggestionArea names the aspect of a meeting series a suggestion
// targets. Spellings match what downstream UI code displays.
type SuggestionArea string

const (
	AreaDecisionMaking SuggestionArea = "Decision Making"
	AreaActionItems    SuggestionArea = "Action Items"
	AreaParticipation  SuggestionArea = "Participation"
	AreaMeetingFormat  SuggestionArea = "Meeting Format"
	AreaMeetingLength  SuggestionArea = "Meeting Length"
)

// SuggestionPriority ranks a suggestion
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
)

// Suggestion is one threshold-triggered improvement recommendation.
// Suggestions are recomputed on demand and never persisted.
type Suggestion struct {
	Area     SuggestionArea     `json:"area"`
	Text     string             `json:"text"`
	Priority SuggestionPriority `json:"priority"`
}
