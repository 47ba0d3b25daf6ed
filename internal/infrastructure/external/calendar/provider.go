package calendar

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/marinazub/meeting-insights/errors"
)

// ProviderName identifies a supported calendar backend.
type ProviderName string

const (
	ProviderGoogle  ProviderName = "google"
	ProviderOutlook ProviderName = "outlook"
)

// Event is a raw calendar event as reported by a provider, before any
// scoring heuristics are applied.
type Event struct {
	Title         string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeCount int
	Recurring     bool
	SeriesID      string
}

// Provider abstracts a calendar backend. Implementations authenticate
// via OAuth2 and list upcoming events for the connected account.
type Provider interface {
	Name() ProviderName

	// GetAuthURL returns the OAuth authorization URL for the given
	// CSRF state token.
	GetAuthURL(state string) string

	// ExchangeCode exchanges the authorization code for tokens.
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)

	// FetchEvents lists events starting between now and now+window.
	FetchEvents(ctx context.Context, token *oauth2.Token, window time.Duration) ([]Event, error)
}

// Config carries the OAuth client settings for one provider.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Factory builds providers by name.
type Factory struct {
	google  Config
	outlook Config
}

// NewFactory creates a provider factory from per-provider OAuth settings.
func NewFactory(google, outlook Config) *Factory {
	return &Factory{
		google:  google,
		outlook: outlook,
	}
}

// Provider returns the provider registered under name.
func (f *Factory) Provider(name string) (Provider, error) {
	switch ProviderName(name) {
	case ProviderGoogle:
		return NewGoogleProvider(f.google), nil
	case ProviderOutlook:
		return NewOutlookProvider(f.outlook), nil
	default:
		return nil, errors.ErrUnknownProvider(name)
	}
}
