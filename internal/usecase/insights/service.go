package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/marinazub/meeting-insights/errors"
	"github.com/marinazub/meeting-insights/internal/domain/entities"
	"github.com/marinazub/meeting-insights/internal/infrastructure/external/calendar"
	usecaseErrors "github.com/marinazub/meeting-insights/internal/usecase/errors"
	"github.com/marinazub/meeting-insights/internal/usecase/scoring"
)

const (
	fetchMaxElapsed = 20 * time.Second
	// Upcoming window for provider fetches.
	defaultWindow = 7 * 24 * time.Hour
	// Fetched events stay cached briefly so repeated evaluations do
	// not hammer the provider API.
	fetchCacheTTL = 5 * time.Minute
)

// ProviderResolver looks up a calendar provider by name. Satisfied by
// calendar.Factory.
type ProviderResolver interface {
	Provider(name string) (calendar.Provider, error)
}

// CalendarService connects calendar providers over OAuth and evaluates
// the upcoming meetings they report.
type CalendarService struct {
	factory      ProviderResolver
	stateManager *calendar.StateManager
	cache        calendar.Store
	weights      scoring.Weights
	logger       *zap.Logger

	mu     sync.RWMutex
	tokens map[calendar.ProviderName]*oauth2.Token
}

// NewCalendarService creates a new calendar service
func NewCalendarService(
	factory ProviderResolver,
	stateManager *calendar.StateManager,
	cache calendar.Store,
	weights scoring.Weights,
	logger *zap.Logger,
) *CalendarService {
	return &CalendarService{
		factory:      factory,
		stateManager: stateManager,
		cache:        cache,
		weights:      weights,
		logger:       logger,
		tokens:       make(map[calendar.ProviderName]*oauth2.Token),
	}
}

// ConnectResponse carries the URL the caller must visit to authorize
// calendar access.
type ConnectResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// Connect starts the OAuth flow for the named provider.
func (s *CalendarService) Connect(provider string) (*ConnectResponse, error) {
	p, err := s.factory.Provider(provider)
	if err != nil {
		return nil, err
	}

	state, err := s.stateManager.GenerateState(p.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	return &ConnectResponse{
		URL:   p.GetAuthURL(state),
		State: state,
	}, nil
}

// HandleCallback completes the OAuth flow: it validates the CSRF state,
// exchanges the code and stores the resulting token for later fetches.
func (s *CalendarService) HandleCallback(ctx context.Context, provider, state, code string) error {
	p, err := s.factory.Provider(provider)
	if err != nil {
		return err
	}

	if !s.stateManager.ValidateState(p.Name(), state) {
		return usecaseErrors.ErrInvalidOAuthState
	}

	token, err := p.ExchangeCode(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange code: %w", err)
	}

	s.mu.Lock()
	s.tokens[p.Name()] = token
	s.mu.Unlock()

	s.logger.Info("calendar provider connected", zap.String("provider", provider))
	return nil
}

// Connected reports whether the named provider has completed OAuth.
func (s *CalendarService) Connected(provider string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[calendar.ProviderName(provider)]
	return ok
}

// UpcomingResult pairs fetched meetings with their scored summary.
type UpcomingResult struct {
	Meetings []entities.Meeting
	Summary  *entities.CalendarSummary
}

// EvaluateUpcoming fetches the connected provider's upcoming events,
// converts them to meetings and scores the batch. Transient fetch
// failures are retried with exponential backoff.
func (s *CalendarService) EvaluateUpcoming(ctx context.Context, provider string) (*UpcomingResult, error) {
	p, err := s.factory.Provider(provider)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	token, ok := s.tokens[p.Name()]
	s.mu.RUnlock()
	if !ok {
		return nil, usecaseErrors.ErrProviderNotConnected
	}

	events, err := s.fetchEvents(ctx, p, token)
	if err != nil {
		return nil, err
	}

	meetings := calendar.ToMeetings(events)
	summary, err := scoring.EvaluateAll(meetings, s.weights)
	if err != nil {
		return nil, err
	}

	s.logger.Info("upcoming meetings evaluated",
		zap.String("provider", provider),
		zap.Int("meeting_count", summary.MeetingCount))

	return &UpcomingResult{
		Meetings: meetings,
		Summary:  summary,
	}, nil
}

// fetchEvents serves events from the TTL cache when fresh, otherwise
// fetches from the provider with exponential backoff and caches the
// result.
func (s *CalendarService) fetchEvents(ctx context.Context, p calendar.Provider, token *oauth2.Token) ([]calendar.Event, error) {
	cacheKey := fmt.Sprintf("calendar:fetch:%s", p.Name())
	if raw, ok := s.cache.Get(cacheKey); ok {
		var cached []calendar.Event
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		// A corrupt entry falls through to a fresh fetch.
		s.cache.Delete(cacheKey)
	}

	var events []calendar.Event
	fetch := func() error {
		var fetchErr error
		events, fetchErr = p.FetchEvents(ctx, token, defaultWindow)
		return fetchErr
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = fetchMaxElapsed
	if err := backoff.Retry(fetch, backoff.WithContext(policy, ctx)); err != nil {
		s.logger.Warn("calendar fetch failed",
			zap.String("provider", string(p.Name())),
			zap.Error(err))
		return nil, errors.ErrProviderFetchFailed(string(p.Name()), err)
	}

	if raw, err := json.Marshal(events); err == nil {
		s.cache.Set(cacheKey, string(raw), fetchCacheTTL)
	}
	return events, nil
}
