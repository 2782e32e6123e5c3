package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service for read-only week queries.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, calendarID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, calendarID)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, calendarID string) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return newClient(svc, calendarID), nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: run scripts/gcal-auth first")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return newClient(svc, calendarID), nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, calendarID), nil
}

func newClient(svc *calendar.Service, calendarID string) *Client {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{service: svc, calendarID: calendarID}
}

// GetWeek lists the events of the seven days starting at weekStart.
// Recurring events are expanded and ordered by start time.
func (c *Client) GetWeek(ctx context.Context, weekStart time.Time) ([]Event, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)

	resp, err := c.service.Events.List(c.calendarID).
		TimeMin(weekStart.Format(time.RFC3339)).
		TimeMax(weekEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		ev, convErr := toEvent(item, weekStart.Location())
		if convErr != nil {
			// Skip events with unparseable timestamps rather than failing the week.
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// toEvent converts a Google Calendar API event into the simplified Event.
// An event boundary with a bare date and no dateTime is all-day.
func toEvent(item *calendar.Event, loc *time.Location) (Event, error) {
	start, err := toEventTime(item.Start, loc)
	if err != nil {
		return Event{}, err
	}
	end, err := toEventTime(item.End, loc)
	if err != nil {
		return Event{}, err
	}

	link := item.HangoutLink
	if link == "" && item.ConferenceData != nil {
		for _, ep := range item.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				link = ep.Uri
				break
			}
		}
	}

	return Event{
		ID:             item.Id,
		Summary:        item.Summary,
		Start:          start,
		End:            end,
		ConferenceLink: link,
	}, nil
}

func toEventTime(edt *calendar.EventDateTime, loc *time.Location) (EventTime, error) {
	if edt == nil {
		return EventTime{}, fmt.Errorf("event boundary is missing")
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return EventTime{}, fmt.Errorf("invalid event dateTime %q: %w", edt.DateTime, err)
		}
		return EventTime{At: t.In(loc)}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", edt.Date, loc)
	if err != nil {
		return EventTime{}, fmt.Errorf("invalid event date %q: %w", edt.Date, err)
	}
	return EventTime{At: t, AllDay: true}, nil
}
