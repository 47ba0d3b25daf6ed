package feedback

import (
	"github.com/marinazub/meeting-insights/internal/domain/entities"
)

// Aggregate reduces the completed survey responses for one recurring
// meeting series into rate statistics. It is a pure function over the
// caller-supplied snapshot and never writes to it.
//
// Records that lack a series id, have not been completed, or carry no
// responses are skipped. A nil result means no data exists for the
// series yet; an unscored series is a normal state, not a failure.
func Aggregate(records []entities.FeedbackRecord, recurringMeetingID string) *entities.AggregatedFeedback {
	var (
		total         int
		decisions     int
		actionItems   int
		couldBeAsync  int
		participation float64
		lengthRatings = map[string]int{
			entities.LengthTooShort:  0,
			entities.LengthJustRight: 0,
			entities.LengthTooLong:   0,
		}
	)

	for _, record := range records {
		if record.RecurringMeetingID == nil || *record.RecurringMeetingID != recurringMeetingID {
			continue
		}
		if record.Status != entities.SurveyStatusCompleted || len(record.Responses) == 0 {
			continue
		}

		// Every submission counts, including resubmitted feedback.
		for _, resp := range record.Responses {
			total++
			if resp.DecisionMade {
				decisions++
			}
			if resp.ActionItems {
				actionItems++
			}
			if resp.CouldBeAsync {
				couldBeAsync++
			}
			if resp.Participation != nil {
				participation += *resp.Participation
			}
			if resp.MeetingLength != nil {
				if _, ok := lengthRatings[*resp.MeetingLength]; ok {
					lengthRatings[*resp.MeetingLength]++
				}
			}
		}
	}

	if total == 0 {
		return nil
	}

	n := float64(total)
	return &entities.AggregatedFeedback{
		RecurringMeetingID:   recurringMeetingID,
		TotalResponses:       total,
		DecisionsRate:        float64(decisions) / n,
		ActionItemsRate:      float64(actionItems) / n,
		CouldBeAsyncRate:     float64(couldBeAsync) / n,
		AverageParticipation: participation / n,
		LengthRatings:        lengthRatings,
	}
}
