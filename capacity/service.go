package capacity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/courtside/training-booking-backend/classify"
)

const keyPrefix = "capacity/"

// casAttempts bounds the optimistic-write retry loop. Write concurrency per
// event is low (one booking per slot is the common case), so conflicts are
// rare and a small bound is plenty.
const casAttempts = 3

type Service struct {
	store  DocumentStore
	logger *slog.Logger
}

func NewService(store DocumentStore) *Service {
	return &Service{
		store:  store,
		logger: slog.Default().With("component", "capacity"),
	}
}

func documentKey(eventID string) string {
	return keyPrefix + eventID
}

// Get returns the capacity document for an event, or a zero-value document if
// none exists. Backend failures degrade to "assume empty" with a warning: the
// read path renders the public booking page and must stay available.
func (s *Service) Get(ctx context.Context, eventID string) CapacityDocument {
	doc, _, err := s.store.Get(ctx, documentKey(eventID))

	if errors.Is(err, ErrDocumentNotFound) {
		return CapacityDocument{EventID: eventID}
	}

	if err != nil {
		s.logger.Warn("capacity read degraded to empty", "eventId", eventID, "err", err)
		return CapacityDocument{EventID: eventID}
	}

	return doc
}

// Initialize creates the capacity document if needed, resolving max capacity
// with priority: admin override > description-embedded value > type default.
// An existing capacity is never moved here; only UpdateCapacity changes it.
// Idempotent for repeated calls with the same effective inputs.
func (s *Service) Initialize(ctx context.Context, eventID string, bookingType classify.BookingType, customCapacity int) (CapacityDocument, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		doc, version, err := s.store.Get(ctx, documentKey(eventID))

		if err != nil && !errors.Is(err, ErrDocumentNotFound) {
			return CapacityDocument{}, err
		}

		if errors.Is(err, ErrDocumentNotFound) {
			doc = newDocument(eventID, bookingType, customCapacity)
			version = 0
		} else if doc.MaxCapacity != 0 || doc.CapacityOverridden || classify.Unlimited(classify.BookingType(doc.EventType)) {
			return doc, nil
		} else {
			doc.EventType = string(bookingType)
			doc.MaxCapacity = resolveCapacity(bookingType, customCapacity)
			doc.UpdatedAt = time.Now().UTC()
		}

		err = s.store.Put(ctx, documentKey(eventID), doc, version)

		if errors.Is(err, ErrVersionConflict) {
			continue
		}

		if err != nil {
			return CapacityDocument{}, err
		}

		return doc, nil
	}

	return CapacityDocument{}, fmt.Errorf("failed to initialize capacity for '%v': %w", eventID, ErrVersionConflict)
}

// AddRegistration appends a registration, enforcing the sold-out invariant at
// write time. The returned bool reports whether the record was actually
// applied; a replayed registration ID is a no-op and returns false.
//
// The read-check-append cycle runs under a conditional write on the document
// version, so two registrations racing for the last slot cannot both land.
func (s *Service) AddRegistration(ctx context.Context, eventID string, bookingType classify.BookingType, customCapacity int, registration RegistrationRecord) (CapacityDocument, bool, error) {
	if registration.PlayerCount <= 0 {
		registration.PlayerCount = 1
	}

	if len(registration.Status) == 0 {
		registration.Status = StatusConfirmed
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		doc, version, err := s.store.Get(ctx, documentKey(eventID))

		if err != nil && !errors.Is(err, ErrDocumentNotFound) {
			return CapacityDocument{}, false, err
		}

		if errors.Is(err, ErrDocumentNotFound) {
			doc = newDocument(eventID, bookingType, customCapacity)
			version = 0
		}

		if doc.hasRegistration(registration.ID) {
			return doc, false, nil
		}

		if !classify.Unlimited(classify.BookingType(doc.EventType)) && doc.MaxCapacity > 0 && doc.CurrentRegistrations >= doc.MaxCapacity {
			return doc, false, ErrSoldOut
		}

		doc.Registrations = append(doc.Registrations, registration)
		doc.CurrentRegistrations = doc.recompute()
		doc.UpdatedAt = time.Now().UTC()

		err = s.store.Put(ctx, documentKey(eventID), doc, version)

		if errors.Is(err, ErrVersionConflict) {
			continue
		}

		if err != nil {
			return CapacityDocument{}, false, err
		}

		return doc, true, nil
	}

	return CapacityDocument{}, false, fmt.Errorf("failed to add registration for '%v': %w", eventID, ErrVersionConflict)
}

// UpdateCapacity applies an admin override, which outranks any value derived
// from the event description or type default from then on.
func (s *Service) UpdateCapacity(ctx context.Context, eventID string, newMax int) (CapacityDocument, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		doc, version, err := s.store.Get(ctx, documentKey(eventID))

		if errors.Is(err, ErrDocumentNotFound) {
			return CapacityDocument{}, ErrCapacityNotFound
		}

		if err != nil {
			return CapacityDocument{}, err
		}

		doc.MaxCapacity = newMax
		doc.CapacityOverridden = true
		doc.UpdatedAt = time.Now().UTC()

		err = s.store.Put(ctx, documentKey(eventID), doc, version)

		if errors.Is(err, ErrVersionConflict) {
			continue
		}

		if err != nil {
			return CapacityDocument{}, err
		}

		return doc, nil
	}

	return CapacityDocument{}, fmt.Errorf("failed to update capacity for '%v': %w", eventID, ErrVersionConflict)
}

// IsSoldOut is a convenience read. No capacity set is defined as not sold out.
func (s *Service) IsSoldOut(ctx context.Context, eventID string) bool {
	doc := s.Get(ctx, eventID)

	if classify.Unlimited(classify.BookingType(doc.EventType)) {
		return false
	}

	if doc.MaxCapacity == 0 {
		return false
	}

	return doc.CurrentRegistrations >= doc.MaxCapacity
}

// Export returns every capacity document, for reporting.
func (s *Service) Export(ctx context.Context) ([]CapacityDocument, error) {
	docs, err := s.store.List(ctx, keyPrefix)

	if err != nil {
		return nil, fmt.Errorf("failed to export capacity documents: %w", err)
	}

	return docs, nil
}

func newDocument(eventID string, bookingType classify.BookingType, customCapacity int) CapacityDocument {
	now := time.Now().UTC()

	return CapacityDocument{
		EventID:       eventID,
		EventType:     string(bookingType),
		MaxCapacity:   resolveCapacity(bookingType, customCapacity),
		Registrations: []RegistrationRecord{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func resolveCapacity(bookingType classify.BookingType, customCapacity int) int {
	if classify.Unlimited(bookingType) {
		return 0
	}

	if customCapacity > 0 {
		return customCapacity
	}

	return classify.DefaultCapacity(bookingType)
}
