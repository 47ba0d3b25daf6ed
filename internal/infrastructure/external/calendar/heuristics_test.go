package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinazub/meeting-insights/internal/usecase/scoring"
)

func TestToMeetings(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	events := []Event{
		{
			Title:         "Q2 Planning",
			Description:   "1. Review roadmap\n2. Assign owners",
			Start:         start,
			End:           start.Add(45 * time.Minute),
			AttendeeCount: 5,
		},
		{
			Title:         "Weekly Status Update",
			Description:   "",
			Start:         start,
			End:           start.Add(60 * time.Minute),
			AttendeeCount: 10,
		},
	}

	meetings := ToMeetings(events)
	require.Len(t, meetings, 2)

	planning := meetings[0]
	assert.Equal(t, "Q2 Planning", planning.Title)
	assert.Equal(t, 45, planning.DurationMinutes)
	assert.Equal(t, 5, planning.ParticipantCount)
	assert.Equal(t, 2, planning.ExpectedSpeakerCount)
	assert.True(t, planning.HasAgenda)
	assert.False(t, planning.CouldBeAsync)
	assert.Nil(t, planning.DecisionMade)
	assert.Nil(t, planning.FollowUpSent)

	status := meetings[1]
	assert.Equal(t, 4, status.ExpectedSpeakerCount)
	assert.False(t, status.HasAgenda)
	assert.True(t, status.CouldBeAsync)
}

func TestToMeetingsSkipsAllDayEvents(t *testing.T) {
	// All-day entries come back with date-only start/end values, which
	// decode to zero times. They must not reach the scorer, where a
	// zero duration would abort the whole batch.
	payload := `{
		"items": [
			{
				"summary": "Roadmap review",
				"description": "Agenda attached",
				"start": {"dateTime": "2026-03-02T10:00:00Z"},
				"end": {"dateTime": "2026-03-02T10:45:00Z"},
				"attendees": [{"email": "a@example.com"}, {"email": "b@example.com"}]
			},
			{
				"summary": "Public holiday",
				"start": {"date": "2026-03-03"},
				"end": {"date": "2026-03-04"}
			}
		]
	}`

	var list googleEventList
	require.NoError(t, json.Unmarshal([]byte(payload), &list))
	require.Len(t, list.Items, 2)

	events := make([]Event, 0, len(list.Items))
	for _, item := range list.Items {
		events = append(events, Event{
			Title:         item.Summary,
			Description:   item.Description,
			Start:         item.Start.DateTime,
			End:           item.End.DateTime,
			AttendeeCount: len(item.Attendees),
		})
	}

	meetings := ToMeetings(events)
	require.Len(t, meetings, 1)
	assert.Equal(t, "Roadmap review", meetings[0].Title)
	assert.Equal(t, 45, meetings[0].DurationMinutes)

	// The surviving batch evaluates cleanly.
	summary, err := scoring.EvaluateAll(meetings, scoring.DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MeetingCount)
}

func TestToMeetingsNoAttendees(t *testing.T) {
	start := time.Now()
	meetings := ToMeetings([]Event{
		{Title: "Focus block", Start: start, End: start.Add(30 * time.Minute)},
	})

	require.Len(t, meetings, 1)
	assert.Equal(t, 1, meetings[0].ParticipantCount)
	assert.Equal(t, 1, meetings[0].ExpectedSpeakerCount)
}

func TestEstimateSpeakers(t *testing.T) {
	cases := []struct {
		attendees int
		want      int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{5, 2},
		{10, 4},
		{25, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, estimateSpeakers(tc.attendees), "attendees=%d", tc.attendees)
	}
}

func TestLooksAsync(t *testing.T) {
	assert.True(t, looksAsync("Team Standup"))
	assert.True(t, looksAsync("FYI: release readout"))
	assert.True(t, looksAsync("Eng/Design Sync"))
	assert.False(t, looksAsync("Incident retrospective"))
	assert.False(t, looksAsync("Hiring decision"))
}

func TestStateManagerRoundTrip(t *testing.T) {
	store := newFakeStore()
	sm := NewStateManager(store)

	state, err := sm.GenerateState(ProviderGoogle)
	require.NoError(t, err)
	require.NotEmpty(t, state)

	// Wrong provider does not consume the state.
	assert.False(t, sm.ValidateState(ProviderOutlook, state))
	assert.True(t, sm.ValidateState(ProviderGoogle, state))

	// One-time use.
	assert.False(t, sm.ValidateState(ProviderGoogle, state))
}

type fakeStore struct {
	items map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string]string)}
}

func (f *fakeStore) Set(key, value string, _ time.Duration) { f.items[key] = value }

func (f *fakeStore) Get(key string) (string, bool) {
	v, ok := f.items[key]
	return v, ok
}

func (f *fakeStore) Delete(key string) { delete(f.items, key) }
