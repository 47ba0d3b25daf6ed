package presenter

import (
	scoringdto "github.com/marinazub/meeting-insights/internal/adapter/dto/scoring"
	"github.com/marinazub/meeting-insights/internal/domain/entities"
)

// ToEvaluationResponse converts a MeetingEvaluation entity to its DTO
func ToEvaluationResponse(eval *entities.MeetingEvaluation) *scoringdto.EvaluationResponse {
	if eval == nil {
		return nil
	}

	factors := make([]scoringdto.ContributingFactorResponse, len(eval.ContributingFactors))
	for i, f := range eval.ContributingFactors {
		factors[i] = scoringdto.ContributingFactorResponse{
			Factor:       f.Factor,
			Contribution: f.Contribution,
		}
	}

	return &scoringdto.EvaluationResponse{
		Title:               eval.Title,
		Score:               eval.Score,
		Band:                string(eval.Band),
		ContributingFactors: factors,
		Recommendation:      string(eval.Recommendation),
	}
}

// ToCalendarSummaryResponse converts a CalendarSummary entity to its DTO
func ToCalendarSummaryResponse(summary *entities.CalendarSummary) *scoringdto.CalendarSummaryResponse {
	if summary == nil {
		return nil
	}

	evaluations := make([]scoringdto.EvaluationResponse, len(summary.Evaluations))
	for i := range summary.Evaluations {
		evaluations[i] = *ToEvaluationResponse(&summary.Evaluations[i])
	}

	return &scoringdto.CalendarSummaryResponse{
		Evaluations:        evaluations,
		MeetingCount:       summary.MeetingCount,
		TotalMinutes:       summary.TotalMinutes,
		AverageScore:       summary.AverageScore,
		LowValueMinutes:    summary.LowValueMinutes,
		ReclaimableMinutes: summary.ReclaimableMinutes,
	}
}
