package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/courtside/training-booking-backend/calendar"
	"github.com/courtside/training-booking-backend/capacity"
	"github.com/courtside/training-booking-backend/classify"
	"github.com/courtside/training-booking-backend/notify"
)

type RegistrationStore interface {
	AddRegistration(ctx context.Context, eventID string, bookingType classify.BookingType, customCapacity int, registration capacity.RegistrationRecord) (capacity.CapacityDocument, bool, error)
}

type CalendarMutator interface {
	MarkBooked(ctx context.Context, eventID string, details calendar.BookingDetails) (calendar.MarkBookedResult, error)
}

type CacheMirror interface {
	Mirror(ctx context.Context, eventID string, doc capacity.CapacityDocument)
	RecordSale(ctx context.Context, amountPaid int64, playerCount int, when time.Time)
}

type AckStatus string

const (
	StatusProcessed        AckStatus = "processed"
	StatusAlreadyProcessed AckStatus = "already_processed"
	StatusSkipped          AckStatus = "skipped"
)

type AckResult struct {
	Status         AckStatus `json:"status"`
	Reason         string    `json:"reason,omitempty"`
	EventID        string    `json:"eventId,omitempty"`
	RegistrationID string    `json:"registrationId,omitempty"`
}

func skipped(reason string) AckResult {
	return AckResult{Status: StatusSkipped, Reason: reason}
}

// Service reacts to payment-completed notifications. The registration write is
// the only step allowed to fail the handler: money has changed hands, and the
// registration must never be lost because a cosmetic downstream update failed.
// Everything after it runs inside its own error boundary.
type Service struct {
	store         RegistrationStore
	events        calendar.Client
	mutator       CalendarMutator
	cache         CacheMirror
	notifier      notify.Notifier
	webhookSecret string
	environment   string
	logger        *slog.Logger
}

func NewService(store RegistrationStore, events calendar.Client, mutator CalendarMutator, cache CacheMirror, notifier notify.Notifier, webhookSecret, environment string) *Service {
	return &Service{
		store:         store,
		events:        events,
		mutator:       mutator,
		cache:         cache,
		notifier:      notifier,
		webhookSecret: webhookSecret,
		environment:   environment,
		logger:        slog.Default().With("component", "payment"),
	}
}

// HandleCheckoutCompleted verifies, decodes, and applies one inbound
// notification. The error return is non-nil only when the gateway should
// retry (or the request itself was invalid); every acknowledged outcome is
// described by the AckResult.
func (s *Service) HandleCheckoutCompleted(ctx context.Context, payload []byte, signatureHeader string) (AckResult, error) {
	if err := VerifySignature(payload, signatureHeader, s.webhookSecret, time.Now()); err != nil {
		return AckResult{}, err
	}

	notification, err := decodeNotification(payload)

	if err != nil {
		return AckResult{}, err
	}

	if notification.Type != eventTypeCheckoutCompleted {
		return skipped("ignored event type"), nil
	}

	if !notification.Livemode && s.environment != "development" {
		s.logger.Info("skipping test-mode notification", "notificationId", notification.ID)
		return skipped("test-mode notification"), nil
	}

	session, err := decodeCheckoutSession(notification)

	if err != nil {
		return AckResult{}, err
	}

	metadata, err := extractMetadata(session.Metadata)

	if errors.Is(err, ErrMissingMetadata) {
		// Not the gateway's fault and nothing to retry productively.
		s.logger.Warn("notification has no booking correlation data", "sessionId", session.ID)
		return skipped("missing booking metadata"), nil
	}

	classification, event, haveEvent := s.classifyEvent(ctx, metadata)

	registration := capacity.RegistrationRecord{
		// The session ID is the idempotency key: replays of the same
		// notification resolve to the same registration.
		ID:           session.ID,
		Timestamp:    notificationTime(notification),
		PlayerName:   metadata.PlayerName,
		GuardianName: metadata.GuardianName,
		Email:        metadata.Email,
		Phone:        metadata.Phone,
		PlayerCount:  metadata.PlayerCount,
		AmountPaid:   session.AmountTotal,
		Status:       capacity.StatusConfirmed,
	}

	customCapacity := 0

	if classification.CapacityFromText {
		customCapacity = classification.Capacity
	}

	doc, applied, err := s.store.AddRegistration(ctx, metadata.EventID, classification.Type, customCapacity, registration)

	if errors.Is(err, capacity.ErrSoldOut) {
		// A paid registration hit a full event: retrying cannot help, so
		// acknowledge and escalate to a human instead.
		s.logger.Error("paid registration rejected as sold out", "eventId", metadata.EventID, "sessionId", session.ID)
		s.alertOps(ctx, "Oversold booking needs attention",
			fmt.Sprintf("event %v, session %v: payment completed but event is sold out", metadata.EventID, session.ID))
		return skipped("event sold out"), nil
	}

	if err != nil {
		return AckResult{}, fmt.Errorf("failed to record registration: %w", err)
	}

	result := AckResult{
		Status:         StatusProcessed,
		EventID:        metadata.EventID,
		RegistrationID: registration.ID,
	}

	if !applied {
		result.Status = StatusAlreadyProcessed
		return result, nil
	}

	// Past this point every step is advisory. The calendar and dashboard may
	// transiently disagree with the store; they self-correct on retry.
	s.markCalendar(ctx, metadata.EventID, classification, registration)

	if s.cache != nil {
		s.cache.Mirror(ctx, metadata.EventID, doc)
		s.cache.RecordSale(ctx, registration.AmountPaid, registration.PlayerCount, registration.Timestamp)
	}

	s.notifyBooking(ctx, metadata, classification, registration, event, haveEvent)

	return result, nil
}

// classifyEvent resolves the booking classification, preferring the live
// calendar event. When the calendar is unreachable the metadata booking type
// alone still carries enough signal to record the registration, which is the
// step that must not be blocked.
func (s *Service) classifyEvent(ctx context.Context, metadata BookingMetadata) (classify.Classification, calendar.Event, bool) {
	event, err := s.events.GetEvent(ctx, metadata.EventID)

	if err != nil {
		s.logger.Warn("failed to fetch event for classification, using metadata only",
			"eventId", metadata.EventID, "err", err)

		return classify.Classification{
			Type:     metadata.BookingType,
			Capacity: classify.DefaultCapacity(metadata.BookingType),
		}, calendar.Event{}, false
	}

	classification := classify.Classify(event)

	// The checkout metadata named a type when the session was created; when
	// the event has since been recolored, the metadata wins for this
	// registration because it is what the customer paid for.
	if metadata.BookingType != classification.Type {
		s.logger.Warn("metadata booking type disagrees with classification",
			"eventId", metadata.EventID,
			"metadataType", metadata.BookingType,
			"classifiedType", classification.Type,
		)
		classification.Type = metadata.BookingType
	}

	return classification, event, true
}

func (s *Service) markCalendar(ctx context.Context, eventID string, classification classify.Classification, registration capacity.RegistrationRecord) {
	details := calendar.BookingDetails{
		PlayerName:        registration.PlayerName,
		GuardianName:      registration.GuardianName,
		PlayerCount:       registration.PlayerCount,
		AmountPaid:        registration.AmountPaid,
		BookedColorTag:    classify.BookedColorTag,
		AvailableColorTag: classify.AvailableColorTag(classification.Type),
		RemovePairedSlot:  classification.Type == classify.TypeAtHomeTraining,
	}

	result, err := s.mutator.MarkBooked(ctx, eventID, details)

	if err != nil {
		s.logger.Warn("calendar mutation failed after committed registration",
			"eventId", eventID, "registrationId", registration.ID, "err", err)
		return
	}

	s.logger.Info("calendar updated",
		"eventId", eventID,
		"pairedEventDeleted", result.PairedEventDeleted,
	)
}

func (s *Service) notifyBooking(ctx context.Context, metadata BookingMetadata, classification classify.Classification, registration capacity.RegistrationRecord, event calendar.Event, haveEvent bool) {
	if s.notifier == nil {
		return
	}

	info := notify.BookingInfo{
		EventID:      metadata.EventID,
		BookingType:  string(classification.Type),
		PlayerName:   registration.PlayerName,
		GuardianName: registration.GuardianName,
		PlayerCount:  registration.PlayerCount,
		AmountPaid:   registration.AmountPaid,
	}

	if haveEvent {
		info.EventTitle = event.Title
		info.Start = event.Start
	}

	if err := s.notifier.BookingConfirmed(ctx, info); err != nil {
		s.logger.Warn("failed to send booking notification", "eventId", metadata.EventID, "err", err)
	}
}

func (s *Service) alertOps(ctx context.Context, title, detail string) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.OpsAlert(ctx, title, detail); err != nil {
		s.logger.Warn("failed to send ops alert", "err", err)
	}
}

func notificationTime(notification Notification) time.Time {
	if notification.Created > 0 {
		return time.Unix(notification.Created, 0).UTC()
	}

	return time.Now().UTC()
}
