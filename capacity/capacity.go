package capacity

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusRefunded  = "refunded"
)

// RegistrationRecord is immutable once written, except for explicit admin
// correction. Its ID doubles as the idempotency key for webhook replays.
type RegistrationRecord struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	PlayerName   string    `json:"playerName"`
	GuardianName string    `json:"guardianName,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	PlayerCount  int       `json:"playerCount"`
	AmountPaid   int64     `json:"amountPaid"` // cents
	Status       string    `json:"status"`
}

// CapacityDocument is the durable registration record for one calendar event.
// It is the sole source of truth for registration counts; the calendar's
// color/description is only a projection of it.
type CapacityDocument struct {
	EventID   string `json:"eventId"`
	EventType string `json:"eventType"`
	// MaxCapacity is 0 until first set; for unlimited types it stays 0.
	MaxCapacity int `json:"maxCapacity"`
	// CapacityOverridden marks an explicit admin override, which outranks
	// both description-embedded values and type defaults.
	CapacityOverridden bool `json:"capacityOverridden,omitempty"`
	// CurrentRegistrations is always recomputed from the registration list,
	// never incremented blindly, so replays can't skew it.
	CurrentRegistrations int                  `json:"currentRegistrations"`
	Registrations        []RegistrationRecord `json:"registrations"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}

func (d CapacityDocument) recompute() int {
	total := 0

	for _, registration := range d.Registrations {
		if registration.Status == StatusRefunded {
			continue
		}

		total += registration.PlayerCount
	}

	return total
}

func (d CapacityDocument) hasRegistration(id string) bool {
	for _, registration := range d.Registrations {
		if registration.ID == id {
			return true
		}
	}

	return false
}
