package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

const outlookCalendarViewURL = "https://graph.microsoft.com/v1.0/me/calendarview"

// OutlookProvider lists events from Outlook via the Microsoft Graph API
type OutlookProvider struct {
	config *oauth2.Config
}

type outlookEventList struct {
	Value []outlookEvent `json:"value"`
}

type outlookEvent struct {
	Subject string `json:"subject"`
	Body    struct {
		Content string `json:"content"`
	} `json:"body"`
	Start struct {
		DateTime string `json:"dateTime"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
	} `json:"end"`
	Attendees []struct {
		EmailAddress struct {
			Address string `json:"address"`
		} `json:"emailAddress"`
	} `json:"attendees"`
	SeriesMasterID string `json:"seriesMasterId"`
}

// NewOutlookProvider creates a new Outlook calendar provider
func NewOutlookProvider(cfg Config) *OutlookProvider {
	config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"offline_access",
			"Calendars.Read",
		},
		Endpoint: microsoft.AzureADEndpoint("common"),
	}

	return &OutlookProvider{
		config: config,
	}
}

func (o *OutlookProvider) Name() ProviderName {
	return ProviderOutlook
}

// GetAuthURL returns the OAuth authorization URL
func (o *OutlookProvider) GetAuthURL(state string) string {
	return o.config.AuthCodeURL(state)
}

// ExchangeCode exchanges the authorization code for tokens
func (o *OutlookProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := o.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return token, nil
}

// FetchEvents lists events starting within the given window. Graph
// reports calendarview times without a zone suffix; they are requested
// and parsed as UTC.
func (o *OutlookProvider) FetchEvents(ctx context.Context, token *oauth2.Token, window time.Duration) ([]Event, error) {
	client := o.config.Client(ctx, token)

	now := time.Now().UTC()
	query := url.Values{}
	query.Set("startDateTime", now.Format(time.RFC3339))
	query.Set("endDateTime", now.Add(window).Format(time.RFC3339))
	query.Set("$orderby", "start/dateTime")

	req, err := http.NewRequestWithContext(ctx, "GET", outlookCalendarViewURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Prefer", `outlook.timezone="UTC"`)

	resp, err := client.Do(req)
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

	var list outlookEventList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}

	events := make([]Event, 0, len(list.Value))
	for _, item := range list.Value {
		start, _ := time.Parse("2006-01-02T15:04:05.0000000", item.Start.DateTime)
		end, _ := time.Parse("2006-01-02T15:04:05.0000000", item.End.DateTime)
		events = append(events, Event{
			Title:         item.Subject,
			Description:   item.Body.Content,
			Start:         start,
			End:           end,
			AttendeeCount: len(item.Attendees),
			Recurring:     item.SeriesMasterID != "",
			SeriesID:      item.SeriesMasterID,
		})
	}
	return events, nil
}
