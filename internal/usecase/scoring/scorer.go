package scoring

import (
	"github.com/marinazub/meeting-insights/errors"
	"github.com/marinazub/meeting-insights/internal/domain/entities"
)

// Score computes the usefulness evaluation for a single meeting. It is
// a pure function: the meeting is never mutated and the same inputs
// always produce the same evaluation.
//
// Every factor records its signed contribution, in a fixed order, even
// when the contribution is zero. This keeps the explanation of a score
// auditable and order-stable.
func Score(m entities.Meeting, w Weights) (*entities.MeetingEvaluation, error) {
	if err := validateMeeting(m); err != nil {
		return nil, err
	}

	factors := make([]entities.ContributingFactor, 0, 6)
	total := baseScore
	apply := func(name string, contribution float64) {
		factors = append(factors, entities.ContributingFactor{
			Factor:       name,
			Contribution: contribution,
		})
		total += contribution
	}

	var decision float64
	if m.DecisionMade != nil && *m.DecisionMade {
		decision = w.DecisionMade
	}
	apply(FactorDecisionMade, decision)

	var agenda float64
	if m.HasAgenda {
		agenda = w.AgendaProvided
	}
	apply(FactorAgendaProvided, agenda)

	var followUp float64
	if m.FollowUpSent != nil && *m.FollowUpSent {
		followUp = w.FollowUpSent
	}
	apply(FactorFollowUpSent, followUp)

	var async float64
	if m.CouldBeAsync {
		async = w.CouldBeAsync
	}
	apply(FactorCouldBeAsync, async)

	// ParticipantCount >= 1 is guaranteed by validation above.
	ratio := float64(m.ExpectedSpeakerCount) / float64(m.ParticipantCount)
	apply(FactorParticipationRatio, w.ParticipationRatio*ratio)

	var longPenalty float64
	if m.DurationMinutes > w.LongMeetingMinutes {
		longPenalty = w.LongMeetingPenalty
	}
	apply(FactorLongMeetingPenalty, longPenalty)

	score := clamp(total, 0, 100)
	band := classify(score, w)

	return &entities.MeetingEvaluation{
		Title:               m.Title,
		Score:               score,
		Band:                band,
		ContributingFactors: factors,
		Recommendation:      recommend(band, m.CouldBeAsync),
	}, nil
}

// validateMeeting rejects malformed attributes outright. Out-of-range
// values are an error, never silently coerced.
func validateMeeting(m entities.Meeting) error {
	if m.DurationMinutes <= 0 {
		return errors.ErrMeetingValidation("duration_minutes", "duration must be greater than zero")
	}
	if m.ParticipantCount < 1 {
		return errors.ErrMeetingValidation("participant_count", "participant count must be at least one")
	}
	if m.ExpectedSpeakerCount > m.ParticipantCount {
		return errors.ErrMeetingValidation("expected_speaker_count", "expected speaker count cannot exceed participant count")
	}
	if m.ExpectedSpeakerCount < 0 {
		return errors.ErrMeetingValidation("expected_speaker_count", "expected speaker count cannot be negative")
	}
	return nil
}

// classify resolves ties to the higher band: a score exactly equal to
// a threshold belongs to that band.
func classify(score float64, w Weights) entities.Band {
	switch {
	case score >= w.HighBand:
		return entities.BandHigh
	case score >= w.MediumBand:
		return entities.BandMedium
	default:
		return entities.BandLow
	}
}

// recommend derives the advised action. An async-suitable meeting is
// steered to async before a decline is ever suggested.
func recommend(band entities.Band, couldBeAsync bool) entities.Recommendation {
	switch {
	case band == entities.BandLow && !couldBeAsync:
		return entities.RecommendationConsiderDecline
	case couldBeAsync && band != entities.BandHigh:
		return entities.RecommendationConsiderAsync
	default:
		return entities.RecommendationKeep
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
