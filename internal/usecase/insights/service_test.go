package insights_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/marinazub/meeting-insights/internal/infrastructure/cache"
	"github.com/marinazub/meeting-insights/internal/infrastructure/external/calendar"
	usecaseErrors "github.com/marinazub/meeting-insights/internal/usecase/errors"
	"github.com/marinazub/meeting-insights/internal/usecase/insights"
	"github.com/marinazub/meeting-insights/internal/usecase/scoring"
)

type fakeProvider struct {
	name     calendar.ProviderName
	events   []calendar.Event
	fetchErr error
	// failures counts down transient errors before a fetch succeeds.
	failures int
}

func (f *fakeProvider) Name() calendar.ProviderName { return f.name }

func (f *fakeProvider) GetAuthURL(state string) string {
	return "https://auth.example.com/authorize?state=" + state
}

func (f *fakeProvider) ExchangeCode(_ context.Context, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, errors.New("empty code")
	}
	return &oauth2.Token{AccessToken: "token-" + code}, nil
}

func (f *fakeProvider) FetchEvents(context.Context, *oauth2.Token, time.Duration) ([]calendar.Event, error) {
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("transient upstream error")
	}
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.events, nil
}

type fakeResolver struct {
	provider *fakeProvider
}

func (f *fakeResolver) Provider(name string) (calendar.Provider, error) {
	if f.provider != nil && string(f.provider.name) == name {
		return f.provider, nil
	}
	return nil, usecaseErrors.ErrUnknownProvider
}

func newService(t *testing.T, p *fakeProvider) (*insights.CalendarService, *cache.MemoryStore) {
	t.Helper()
	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)

	svc := insights.NewCalendarService(
		&fakeResolver{provider: p},
		calendar.NewStateManager(store),
		store,
		scoring.DefaultWeights(),
		zap.NewNop(),
	)
	return svc, store
}

func sampleEvents() []calendar.Event {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return []calendar.Event{
		{
			Title:         "Roadmap decision",
			Description:   "Agenda: pick Q3 bets",
			Start:         start,
			End:           start.Add(30 * time.Minute),
			AttendeeCount: 4,
		},
		{
			Title:         "Weekly status update",
			Start:         start.Add(time.Hour),
			End:           start.Add(2 * time.Hour),
			AttendeeCount: 12,
		},
	}
}

func TestConnectAndCallback(t *testing.T) {
	p := &fakeProvider{name: calendar.ProviderGoogle}
	svc, _ := newService(t, p)

	conn, err := svc.Connect("google")
	require.NoError(t, err)
	assert.Contains(t, conn.URL, conn.State)
	assert.False(t, svc.Connected("google"))

	err = svc.HandleCallback(context.Background(), "google", conn.State, "auth-code")
	require.NoError(t, err)
	assert.True(t, svc.Connected("google"))
}

func TestHandleCallbackRejectsBadState(t *testing.T) {
	p := &fakeProvider{name: calendar.ProviderGoogle}
	svc, _ := newService(t, p)

	_, err := svc.Connect("google")
	require.NoError(t, err)

	err = svc.HandleCallback(context.Background(), "google", "forged-state", "auth-code")
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidOAuthState)
	assert.False(t, svc.Connected("google"))
}

func TestConnectUnknownProvider(t *testing.T) {
	svc, _ := newService(t, &fakeProvider{name: calendar.ProviderGoogle})

	_, err := svc.Connect("caldav")
	assert.ErrorIs(t, err, usecaseErrors.ErrUnknownProvider)
}

func TestEvaluateUpcoming(t *testing.T) {
	p := &fakeProvider{name: calendar.ProviderGoogle, events: sampleEvents()}
	svc, _ := newService(t, p)

	conn, err := svc.Connect("google")
	require.NoError(t, err)
	require.NoError(t, svc.HandleCallback(context.Background(), "google", conn.State, "code"))

	result, err := svc.EvaluateUpcoming(context.Background(), "google")
	require.NoError(t, err)
	require.NotNil(t, result.Summary)

	assert.Len(t, result.Meetings, 2)
	assert.Equal(t, 2, result.Summary.MeetingCount)
	assert.Equal(t, 90, result.Summary.TotalMinutes)
	require.NotNil(t, result.Summary.AverageScore)
}

func TestEvaluateUpcomingRequiresConnection(t *testing.T) {
	p := &fakeProvider{name: calendar.ProviderGoogle, events: sampleEvents()}
	svc, _ := newService(t, p)

	_, err := svc.EvaluateUpcoming(context.Background(), "google")
	assert.ErrorIs(t, err, usecaseErrors.ErrProviderNotConnected)
}

func TestEvaluateUpcomingServesFromCache(t *testing.T) {
	p := &fakeProvider{name: calendar.ProviderGoogle, events: sampleEvents()}
	svc, _ := newService(t, p)

	conn, err := svc.Connect("google")
	require.NoError(t, err)
	require.NoError(t, svc.HandleCallback(context.Background(), "google", conn.State, "code"))

	first, err := svc.EvaluateUpcoming(context.Background(), "google")
	require.NoError(t, err)

	// The provider now fails hard; the cached events keep serving.
	p.fetchErr = errors.New("provider down")
	second, err := svc.EvaluateUpcoming(context.Background(), "google")
	require.NoError(t, err)
	assert.Equal(t, first.Summary.MeetingCount, second.Summary.MeetingCount)
}

func TestEvaluateUpcomingRetriesTransientFailures(t *testing.T) {
	p := &fakeProvider{
		name:     calendar.ProviderGoogle,
		events:   sampleEvents(),
		failures: 2,
	}
	svc, _ := newService(t, p)

	conn, err := svc.Connect("google")
	require.NoError(t, err)
	require.NoError(t, svc.HandleCallback(context.Background(), "google", conn.State, "code"))

	result, err := svc.EvaluateUpcoming(context.Background(), "google")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Summary.MeetingCount)
}
