package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// BookingDetails describes a confirmed booking to render into the event
// description, plus the local color configuration resolved by the caller.
type BookingDetails struct {
	PlayerName        string
	GuardianName      string
	PlayerCount       int
	AmountPaid        int64 // cents
	BookedColorTag    int
	AvailableColorTag int
	// RemovePairedSlot enables the sibling-slot cleanup used by at-home
	// inventory, where two same-day time slots share one travel visit.
	RemovePairedSlot bool
}

type MarkBookedResult struct {
	EventUpdated       bool
	PairedEventDeleted bool
}

// Mutator projects booking state onto the calendar provider. The calendar is a
// display projection only; the capacity store stays the source of truth.
type Mutator struct {
	client Client
	logger *slog.Logger
}

func NewMutator(client Client) *Mutator {
	return &Mutator{
		client: client,
		logger: slog.Default().With("component", "calendar-mutator"),
	}
}

// The two at-home time-of-day buckets, in minutes from midnight. A booked
// early slot makes the late slot moot and vice versa.
const (
	earlyBucketMinutes = 15*60 + 30 // 3:30 PM
	lateBucketMinutes  = 17 * 60    // 5:00 PM
)

func timeBucket(t time.Time) int {
	minutes := t.Hour()*60 + t.Minute()

	if minutes < (earlyBucketMinutes+lateBucketMinutes)/2 {
		return earlyBucketMinutes
	}

	return lateBucketMinutes
}

// MarkBooked patches the event's color and description to reflect the booking
// and, for paired inventory, removes the now-redundant sibling slot. The patch
// and the sibling removal are independent: a failed removal never unwinds the
// patch.
func (m *Mutator) MarkBooked(ctx context.Context, eventID string, details BookingDetails) (MarkBookedResult, error) {
	result := MarkBookedResult{}

	event, err := m.client.GetEvent(ctx, eventID)

	if err != nil {
		return result, fmt.Errorf("failed to fetch event '%v': %w", eventID, err)
	}

	description := event.Description

	if len(description) != 0 {
		description += "\n\n"
	}

	description += renderBookingNote(details)

	colorTag := details.BookedColorTag
	patch := EventPatch{
		ColorTag:    &colorTag,
		Description: &description,
	}

	if _, err := m.client.PatchEvent(ctx, eventID, patch); err != nil {
		return result, fmt.Errorf("failed to patch event '%v': %w", eventID, err)
	}

	result.EventUpdated = true

	if !details.RemovePairedSlot {
		return result, nil
	}

	deleted, err := m.removePairedSlot(ctx, event, details.AvailableColorTag)

	if err != nil {
		// The booking itself is recorded and the event is marked; a stale
		// sibling slot is a visible but self-correcting inconsistency.
		m.logger.Warn("failed to remove paired slot", "eventId", eventID, "err", err)
		return result, nil
	}

	result.PairedEventDeleted = deleted

	return result, nil
}

// removePairedSlot deletes the complementary same-day slot when exactly one
// candidate matches. Zero or multiple candidates is a deliberate no-op:
// leaving a stale slot visible beats deleting the wrong one.
func (m *Mutator) removePairedSlot(ctx context.Context, booked Event, availableColorTag int) (bool, error) {
	targetBucket := earlyBucketMinutes

	if timeBucket(booked.Start) == earlyBucketMinutes {
		targetBucket = lateBucketMinutes
	}

	dayStart := time.Date(booked.Start.Year(), booked.Start.Month(), booked.Start.Day(), 0, 0, 0, 0, booked.Start.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	events, err := m.client.ListEvents(ctx, dayStart, dayEnd)

	if err != nil {
		return false, fmt.Errorf("failed to list same-day events: %w", err)
	}

	var candidates []Event

	for _, event := range events {
		if event.ID == booked.ID {
			continue
		}

		if event.ColorTag != availableColorTag {
			continue
		}

		if timeBucket(event.Start) != targetBucket {
			continue
		}

		candidates = append(candidates, event)
	}

	if len(candidates) != 1 {
		m.logger.Info("no unambiguous paired slot to remove",
			"eventId", booked.ID,
			"candidates", len(candidates),
		)
		return false, nil
	}

	if err := m.client.DeleteEvent(ctx, candidates[0].ID); err != nil {
		return false, fmt.Errorf("failed to delete paired slot '%v': %w", candidates[0].ID, err)
	}

	m.logger.Info("removed paired slot", "eventId", booked.ID, "pairedEventId", candidates[0].ID)

	return true, nil
}

func renderBookingNote(details BookingDetails) string {
	note := fmt.Sprintf("BOOKED: %v", details.PlayerName)

	if len(details.GuardianName) != 0 {
		note += fmt.Sprintf(" (guardian: %v)", details.GuardianName)
	}

	if details.PlayerCount > 1 {
		note += fmt.Sprintf(" - %v players", details.PlayerCount)
	}

	note += fmt.Sprintf(" - $%.2f", float64(details.AmountPaid)/100)

	return note
}
