package payment

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/courtside/training-booking-backend/classify"
)

const eventTypeCheckoutCompleted = "checkout.session.completed"

// Notification is the gateway's signed event envelope.
type Notification struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Created  int64            `json:"created"`
	Livemode bool             `json:"livemode"`
	Data     notificationData `json:"data"`
}

type notificationData struct {
	Object json.RawMessage `json:"object"`
}

// CheckoutSession is the completed checkout carried inside the envelope. The
// metadata bag is where all booking correlation data rides; the gateway does
// not understand any of it.
type CheckoutSession struct {
	ID          string            `json:"id"`
	AmountTotal int64             `json:"amount_total"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata"`
}

func decodeNotification(payload []byte) (Notification, error) {
	var notification Notification

	if err := json.Unmarshal(payload, &notification); err != nil {
		return Notification{}, ErrMalformedPayload
	}

	if len(strings.TrimSpace(notification.ID)) == 0 {
		return Notification{}, ErrMalformedPayload
	}

	return notification, nil
}

func decodeCheckoutSession(notification Notification) (CheckoutSession, error) {
	var session CheckoutSession

	if err := json.Unmarshal(notification.Data.Object, &session); err != nil {
		return CheckoutSession{}, ErrMalformedPayload
	}

	if len(strings.TrimSpace(session.ID)) == 0 {
		return CheckoutSession{}, ErrMalformedPayload
	}

	return session, nil
}

// BookingMetadata is the correlation data the checkout flow stashes in the
// session's metadata bag.
type BookingMetadata struct {
	EventID      string
	BookingType  classify.BookingType
	PlayerName   string
	GuardianName string
	Email        string
	Phone        string
	PlayerCount  int
}

// extractMetadata pulls booking correlation fields out of the metadata bag.
// Missing required fields return ErrMissingMetadata: not every payment event
// maps to a bookable slot, and there is nothing to retry productively.
func extractMetadata(metadata map[string]string) (BookingMetadata, error) {
	eventID := strings.TrimSpace(metadata["event_id"])
	rawType := strings.TrimSpace(metadata["booking_type"])

	if len(eventID) == 0 || len(rawType) == 0 {
		return BookingMetadata{}, ErrMissingMetadata
	}

	playerCount := 1

	if raw, ok := metadata["player_count"]; ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && parsed > 0 {
			playerCount = parsed
		}
	}

	return BookingMetadata{
		EventID:      eventID,
		BookingType:  classify.BookingType(rawType),
		PlayerName:   strings.TrimSpace(metadata["player_name"]),
		GuardianName: strings.TrimSpace(metadata["guardian_name"]),
		Email:        strings.TrimSpace(metadata["email"]),
		Phone:        strings.TrimSpace(metadata["phone"]),
		PlayerCount:  playerCount,
	}, nil
}
