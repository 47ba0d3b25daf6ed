package scoring

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinazub/meeting-insights/errors"
	"github.com/marinazub/meeting-insights/internal/domain/entities"
)

func sampleCalendar() []entities.Meeting {
	return []entities.Meeting{
		{
			Title:                "Sprint planning",
			DurationMinutes:      90,
			ParticipantCount:     10,
			ExpectedSpeakerCount: 4,
			HasAgenda:            true,
			DecisionMade:         boolPtr(true),
		},
		{
			Title:                "Weekly status",
			DurationMinutes:      60,
			ParticipantCount:     12,
			ExpectedSpeakerCount: 2,
			CouldBeAsync:         true,
		},
		{
			Title:                "All-hands",
			DurationMinutes:      120,
			ParticipantCount:     40,
			ExpectedSpeakerCount: 3,
		},
	}
}

func TestEvaluateAll_Summary(t *testing.T) {
	meetings := sampleCalendar()

	summary, err := EvaluateAll(meetings, DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.MeetingCount)
	assert.Equal(t, 270, summary.TotalMinutes)
	require.Len(t, summary.Evaluations, 3)

	// Order preserved: evaluations line up with the input meetings.
	for i, m := range meetings {
		assert.Equal(t, m.Title, summary.Evaluations[i].Title)
	}

	require.NotNil(t, summary.AverageScore)
	var sum float64
	for _, eval := range summary.Evaluations {
		sum += eval.Score
	}
	assert.InDelta(t, sum/3, *summary.AverageScore, 1e-9)

	// Low-value minutes cover meetings banded low; reclaimable minutes
	// cover consider-decline and consider-async recommendations.
	var wantLow, wantReclaimable int
	for i, eval := range summary.Evaluations {
		if eval.Band == entities.BandLow {
			wantLow += meetings[i].DurationMinutes
		}
		switch eval.Recommendation {
		case entities.RecommendationConsiderDecline, entities.RecommendationConsiderAsync:
			wantReclaimable += meetings[i].DurationMinutes
		}
	}
	assert.Equal(t, wantLow, summary.LowValueMinutes)
	assert.Equal(t, wantReclaimable, summary.ReclaimableMinutes)
	assert.Greater(t, summary.ReclaimableMinutes, 0)
}

func TestEvaluateAll_OrderInvariantAggregates(t *testing.T) {
	meetings := sampleCalendar()
	reversed := []entities.Meeting{meetings[2], meetings[1], meetings[0]}

	a, err := EvaluateAll(meetings, DefaultWeights())
	require.NoError(t, err)
	b, err := EvaluateAll(reversed, DefaultWeights())
	require.NoError(t, err)

	// Evaluations permute with the input...
	assert.Equal(t, a.Evaluations[0], b.Evaluations[2])
	assert.Equal(t, a.Evaluations[2], b.Evaluations[0])

	// ...while the aggregates do not move.
	assert.InDelta(t, *a.AverageScore, *b.AverageScore, 1e-9)
	assert.Equal(t, a.TotalMinutes, b.TotalMinutes)
	assert.Equal(t, a.LowValueMinutes, b.LowValueMinutes)
	assert.Equal(t, a.ReclaimableMinutes, b.ReclaimableMinutes)
}

func TestEvaluateAll_EmptyCalendar(t *testing.T) {
	summary, err := EvaluateAll(nil, DefaultWeights())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.MeetingCount)
	assert.Nil(t, summary.AverageScore)
	assert.Empty(t, summary.Evaluations)
}

func TestEvaluateAll_FailFastWithIndex(t *testing.T) {
	meetings := sampleCalendar()
	meetings[1].DurationMinutes = 0

	summary, err := EvaluateAll(meetings, DefaultWeights())
	require.Error(t, err)
	// No partial results alongside a reported failure.
	assert.Nil(t, summary)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_VALIDATION, appErr.Code)
	assert.Equal(t, "1", appErr.Details["meeting_index"])
	assert.Equal(t, "duration_minutes", appErr.Details["field"])
}
