package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type Message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

type Embed struct {
	Title  string       `json:"title"`
	Fields []EmbedField `json:"fields,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// BookingInfo is the staff-facing summary of a confirmed booking.
type BookingInfo struct {
	EventID      string
	EventTitle   string
	BookingType  string
	PlayerName   string
	GuardianName string
	PlayerCount  int
	AmountPaid   int64 // cents
	Start        time.Time
}

type Notifier interface {
	BookingConfirmed(ctx context.Context, info BookingInfo) error
	OpsAlert(ctx context.Context, title, detail string) error
}

// Client posts embed messages to a staff channel webhook. Every call is
// best-effort: an unset URL disables dispatch entirely.
type Client struct {
	webhookURL string
	client     *http.Client
	logger     *slog.Logger
}

func NewClient(webhookURL string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		webhookURL: webhookURL,
		client:     client,
		logger:     slog.Default().With("component", "notify"),
	}
}

func (c *Client) BookingConfirmed(ctx context.Context, info BookingInfo) error {
	title := info.EventTitle

	if len(title) == 0 {
		title = info.EventID
	}

	fields := []EmbedField{
		{Name: "Event", Value: title, Inline: true},
		{Name: "Type", Value: info.BookingType, Inline: true},
		{Name: "Player", Value: info.PlayerName, Inline: true},
	}

	if len(info.GuardianName) != 0 {
		fields = append(fields, EmbedField{Name: "Guardian", Value: info.GuardianName, Inline: true})
	}

	if info.PlayerCount > 1 {
		fields = append(fields, EmbedField{Name: "Players", Value: strconv.Itoa(info.PlayerCount), Inline: true})
	}

	fields = append(fields, EmbedField{
		Name:   "Amount",
		Value:  fmt.Sprintf("$%.2f", float64(info.AmountPaid)/100),
		Inline: true,
	})

	if !info.Start.IsZero() {
		fields = append(fields, EmbedField{
			Name:   "Date and Time",
			Value:  info.Start.Format(time.DateTime),
			Inline: true,
		})
	}

	return c.send(ctx, Message{
		Embeds: []Embed{{
			Title:  "New Booking :calendar:",
			Fields: fields,
		}},
	})
}

func (c *Client) OpsAlert(ctx context.Context, title, detail string) error {
	return c.send(ctx, Message{
		Embeds: []Embed{{
			Title: title,
			Fields: []EmbedField{
				{Name: "Detail", Value: detail},
			},
		}},
	})
}

func (c *Client) send(ctx context.Context, message Message) error {
	if len(c.webhookURL) == 0 {
		return nil
	}

	body, err := json.Marshal(message)

	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	return nil
}
