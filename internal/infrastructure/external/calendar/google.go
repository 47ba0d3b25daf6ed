package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleEventsURL = "https://www.googleapis.com/calendar/v3/calendars/primary/events"

// GoogleProvider lists events from Google Calendar via OAuth2
type GoogleProvider struct {
	config *oauth2.Config
}

type googleEventList struct {
	Items []googleEvent `json:"items"`
}

type googleEvent struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       struct {
		DateTime time.Time `json:"dateTime"`
	} `json:"start"`
	End struct {
		DateTime time.Time `json:"dateTime"`
	} `json:"end"`
	Attendees []struct {
		Email string `json:"email"`
	} `json:"attendees"`
	RecurringEventID string `json:"recurringEventId"`
}

// NewGoogleProvider creates a new Google calendar provider
func NewGoogleProvider(cfg Config) *GoogleProvider {
	config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/calendar.events.readonly",
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleProvider{
		config: config,
	}
}

func (g *GoogleProvider) Name() ProviderName {
	return ProviderGoogle
}

// GetAuthURL returns the OAuth authorization URL
func (g *GoogleProvider) GetAuthURL(state string) string {
	return g.config.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// ExchangeCode exchanges the authorization code for tokens
func (g *GoogleProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return token, nil
}

// FetchEvents lists single events starting within the given window
func (g *GoogleProvider) FetchEvents(ctx context.Context, token *oauth2.Token, window time.Duration) ([]Event, error) {
	client := g.config.Client(ctx, token)

	now := time.Now().UTC()
	query := url.Values{}
	query.Set("timeMin", now.Format(time.RFC3339))
	query.Set("timeMax", now.Add(window).Format(time.RFC3339))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")

	resp, err := client.Get(googleEventsURL + "?" + query.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to list events: status=%d, body=%s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var list googleEventList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}

	events := make([]Event, 0, len(list.Items))
	for _, item := range list.Items {
		events = append(events, Event{
			Title:         item.Summary,
			Description:   item.Description,
			Start:         item.Start.DateTime,
			End:           item.End.DateTime,
			AttendeeCount: len(item.Attendees),
			Recurring:     item.RecurringEventID != "",
			SeriesID:      item.RecurringEventID,
		})
	}
	return events, nil
}
