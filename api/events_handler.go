package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtside/training-booking-backend/calendar"
	"github.com/courtside/training-booking-backend/capacity"
	"github.com/courtside/training-booking-backend/classify"
)

type CapacityReader interface {
	Get(ctx context.Context, eventID string) capacity.CapacityDocument
}

// EventView is the public read-path DTO: a calendar event joined with its
// classification and live capacity state.
type EventView struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Start               time.Time `json:"start"`
	End                 time.Time `json:"end"`
	Type                string    `json:"type"`
	Price               int       `json:"price,omitempty"`
	RegistrationEnabled bool      `json:"registrationEnabled"`
	SoldOut             bool      `json:"soldOut"`
	SpotsLeft           *int      `json:"spotsLeft,omitempty"`
	Dates               string    `json:"dates,omitempty"`
}

type EventsHandler struct {
	client   calendar.Client
	capacity CapacityReader
}

func NewEventsHandler(client calendar.Client, capacityReader CapacityReader) *EventsHandler {
	return &EventsHandler{client: client, capacity: capacityReader}
}

func (h *EventsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

func (h *EventsHandler) List(c *gin.Context) {
	from := time.Now()
	to := from.AddDate(0, 0, 30)

	if raw := c.Query("from"); len(raw) != 0 {
		parsed, err := time.Parse(time.DateOnly, raw)

		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse from"})
			return
		}

		from = parsed
	}

	if raw := c.Query("to"); len(raw) != 0 {
		parsed, err := time.Parse(time.DateOnly, raw)

		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse to"})
			return
		}

		to = parsed
	}

	events, err := h.client.ListEvents(c.Request.Context(), from, to)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve events"})
		return
	}

	views := []EventView{}

	for _, event := range events {
		views = append(views, h.buildView(c.Request.Context(), event))
	}

	c.IndentedJSON(http.StatusOK, views)
}

func (h *EventsHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	event, err := h.client.GetEvent(c.Request.Context(), id)

	if err != nil {
		c.Error(err)

		if errors.Is(err, calendar.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}

	c.IndentedJSON(http.StatusOK, h.buildView(c.Request.Context(), event))
}

func (h *EventsHandler) buildView(ctx context.Context, event calendar.Event) EventView {
	classification := classify.Classify(event)
	doc := h.capacity.Get(ctx, event.ID)

	view := EventView{
		ID:                  event.ID,
		Title:               event.Title,
		Start:               event.Start,
		End:                 event.End,
		Type:                string(classification.Type),
		Price:               classification.Price,
		RegistrationEnabled: classification.RegistrationEnabled,
		Dates:               classification.DatesText,
	}

	if classify.Unlimited(classification.Type) {
		return view
	}

	maxCapacity := doc.MaxCapacity

	if maxCapacity == 0 {
		maxCapacity = classification.Capacity
	}

	if maxCapacity > 0 {
		spotsLeft := maxCapacity - doc.CurrentRegistrations

		if spotsLeft < 0 {
			spotsLeft = 0
		}

		view.SpotsLeft = &spotsLeft
		view.SoldOut = spotsLeft == 0
	}

	return view
}
