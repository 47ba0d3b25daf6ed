package scoring

import (
	stdErrors "errors"

	"github.com/marinazub/meeting-insights/errors"
	"github.com/marinazub/meeting-insights/internal/domain/entities"
)

// EvaluateAll scores an ordered batch of meetings and folds the
// calendar-level aggregates. The batch is fail-fast: the first invalid
// meeting aborts the whole evaluation with its position attached, so a
// reported failure is never accompanied by partial results.
func EvaluateAll(meetings []entities.Meeting, w Weights) (*entities.CalendarSummary, error) {
	summary := &entities.CalendarSummary{
		Evaluations:  make([]entities.MeetingEvaluation, 0, len(meetings)),
		MeetingCount: len(meetings),
	}

	var scoreSum float64
	for i, m := range meetings {
		eval, err := Score(m, w)
		if err != nil {
			var appErr errors.AppError
			if stdErrors.As(err, &appErr) {
				return nil, errors.ErrBatchValidation(i, appErr)
			}
			return nil, err
		}

		summary.Evaluations = append(summary.Evaluations, *eval)
		summary.TotalMinutes += m.DurationMinutes
		scoreSum += eval.Score

		if eval.Band == entities.BandLow {
			summary.LowValueMinutes += m.DurationMinutes
		}
		if eval.Recommendation == entities.RecommendationConsiderDecline ||
			eval.Recommendation == entities.RecommendationConsiderAsync {
			summary.ReclaimableMinutes += m.DurationMinutes
		}
	}

	// Average is undefined for an empty calendar, not NaN.
	if summary.MeetingCount > 0 {
		avg := scoreSum / float64(summary.MeetingCount)
		summary.AverageScore = &avg
	}

	return summary, nil
}
