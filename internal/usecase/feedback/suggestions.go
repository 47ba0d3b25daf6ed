package feedback

import (
	"github.com/marinazub/meeting-insights/internal/domain/entities"
)

// Threshold constants for the suggestion rules. The rules are fixed
// and human-tunable; there is no learned component.
const (
	decisionsRateFloor      = 0.5
	decisionsRateCritical   = 0.2
	actionItemsRateFloor    = 0.6
	actionItemsRateCritical = 0.3
	participationFloor      = 50.0
	participationCritical   = 30.0
	asyncRateCeiling        = 0.6
	asyncRateCritical       = 0.8
	lengthMajority          = 0.5
)

// Suggestion texts. Each rule emits a fixed template so downstream
// rendering stays stable.
const (
	textFewDecisions = "Meetings in this series rarely produce decisions. Tighten the agenda around concrete decision points, or replace the session with an async update."
	textFewActions   = "Most sessions end without clear action items. Reserve the last five minutes to assign owners and next steps."
	textLowEngaged   = "Average participation is low. Trim the invite list or rotate a facilitator to pull more attendees into the discussion."
	textGoAsync      = "Attendees report this meeting could usually be handled asynchronously. Consider moving it to a written update or shared document."
	textTooLong      = "Most respondents find this meeting too long. Shorten the scheduled duration or split the agenda."
	textTooShort     = "Most respondents find this meeting too short. Extend the scheduled duration or reduce the agenda scope."
)

// GenerateSuggestions evaluates the fixed rule set against an
// aggregation and returns the suggestions that fire, in rule order.
// Rule order is a contract: callers display the list as returned.
// Passing nil or an empty aggregation yields an empty list.
func GenerateSuggestions(agg *entities.AggregatedFeedback) []entities.Suggestion {
	suggestions := make([]entities.Suggestion, 0, 5)
	if agg == nil || agg.TotalResponses == 0 {
		return suggestions
	}

	if agg.DecisionsRate < decisionsRateFloor {
		priority := entities.PriorityMedium
		if agg.DecisionsRate < decisionsRateCritical {
			priority = entities.PriorityHigh
		}
		suggestions = append(suggestions, entities.Suggestion{
			Area:     entities.AreaDecisionMaking,
			Text:     textFewDecisions,
			Priority: priority,
		})
	}

	if agg.ActionItemsRate < actionItemsRateFloor {
		priority := entities.PriorityMedium
		if agg.ActionItemsRate < actionItemsRateCritical {
			priority = entities.PriorityHigh
		}
		suggestions = append(suggestions, entities.Suggestion{
			Area:     entities.AreaActionItems,
			Text:     textFewActions,
			Priority: priority,
		})
	}

	if agg.AverageParticipation < participationFloor {
		priority := entities.PriorityMedium
		if agg.AverageParticipation < participationCritical {
			priority = entities.PriorityHigh
		}
		suggestions = append(suggestions, entities.Suggestion{
			Area:     entities.AreaParticipation,
			Text:     textLowEngaged,
			Priority: priority,
		})
	}

	if agg.CouldBeAsyncRate > asyncRateCeiling {
		priority := entities.PriorityMedium
		if agg.CouldBeAsyncRate > asyncRateCritical {
			priority = entities.PriorityHigh
		}
		suggestions = append(suggestions, entities.Suggestion{
			Area:     entities.AreaMeetingFormat,
			Text:     textGoAsync,
			Priority: priority,
		})
	}

	// At most one length suggestion: "too long" wins over "too short".
	majority := float64(agg.TotalResponses) * lengthMajority
	if float64(agg.LengthRatings[entities.LengthTooLong]) > majority {
		suggestions = append(suggestions, entities.Suggestion{
			Area:     entities.AreaMeetingLength,
			Text:     textTooLong,
			Priority: entities.PriorityHigh,
		})
	} else if float64(agg.LengthRatings[entities.LengthTooShort]) > majority {
		suggestions = append(suggestions, entities.Suggestion{
			Area:     entities.AreaMeetingLength,
			Text:     textTooShort,
			Priority: entities.PriorityMedium,
		})
	}

	return suggestions
}
