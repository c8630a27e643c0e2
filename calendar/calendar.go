package calendar

import (
	"context"
	"time"
)

// Event is a calendar-provider event as seen by this system. The provider owns
// the event lifecycle; we only ever patch color/description or delete slots.
type Event struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	ColorTag         int               `json:"colorTag"`
	Description      string            `json:"description"`
	Start            time.Time         `json:"start"`
	End              time.Time         `json:"end"`
	ExtendedMetadata map[string]string `json:"extendedMetadata,omitempty"`
}

// EventPatch carries the only mutations this system performs. Nil fields are
// left untouched by the provider.
type EventPatch struct {
	ColorTag    *int    `json:"colorTag,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Client interface {
	GetEvent(ctx context.Context, id string) (Event, error)
	ListEvents(ctx context.Context, from, to time.Time) ([]Event, error)
	PatchEvent(ctx context.Context, id string, patch EventPatch) (Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
