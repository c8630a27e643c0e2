package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/training-booking-backend/calendar"
	"github.com/courtside/training-booking-backend/capacity"
	"github.com/courtside/training-booking-backend/classify"
)

type CapacityService interface {
	Get(ctx context.Context, eventID string) capacity.CapacityDocument
	AddRegistration(ctx context.Context, eventID string, bookingType classify.BookingType, customCapacity int, registration capacity.RegistrationRecord) (capacity.CapacityDocument, bool, error)
	UpdateCapacity(ctx context.Context, eventID string, newMax int) (capacity.CapacityDocument, error)
	Export(ctx context.Context) ([]capacity.CapacityDocument, error)
}

type BookedMarker interface {
	MarkBooked(ctx context.Context, eventID string, details calendar.BookingDetails) (calendar.MarkBookedResult, error)
}

type AdminHandler struct {
	capacity CapacityService
	client   calendar.Client
	mutator  BookedMarker
}

func NewAdminHandler(capacityService CapacityService, client calendar.Client, mutator BookedMarker) *AdminHandler {
	return &AdminHandler{
		capacity: capacityService,
		client:   client,
		mutator:  mutator,
	}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/capacity", h.Export)
	rg.GET("/capacity/:eventId", h.GetCapacity)
	rg.PUT("/capacity/:eventId", h.UpdateCapacity)
	rg.POST("/capacity/:eventId/registrations", h.AddManualRegistration)
	rg.POST("/events/:eventId/mark-booked", h.MarkBooked)
}

func (h *AdminHandler) GetCapacity(c *gin.Context) {
	eventID := c.Param("eventId")

	doc := h.capacity.Get(c.Request.Context(), eventID)

	c.IndentedJSON(http.StatusOK, doc)
}

type updateCapacityRequest struct {
	MaxCapacity int `json:"maxCapacity" binding:"required,min=1,max=100"`
}

func (h *AdminHandler) UpdateCapacity(c *gin.Context) {
	eventID := c.Param("eventId")

	var req updateCapacityRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	doc, err := h.capacity.UpdateCapacity(c.Request.Context(), eventID, req.MaxCapacity)

	if err != nil {
		c.Error(err)

		if errors.Is(err, capacity.ErrCapacityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no capacity document for event"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update capacity"})
		return
	}

	c.IndentedJSON(http.StatusOK, doc)
}

type manualRegistrationRequest struct {
	BookingType  string `json:"bookingType" binding:"required"`
	PlayerName   string `json:"playerName" binding:"required"`
	GuardianName string `json:"guardianName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PlayerCount  int    `json:"playerCount"`
	AmountPaid   int64  `json:"amountPaid"`
}

// AddManualRegistration records a booking taken outside the checkout flow
// (phone, cash, comp). There is no payment session to derive an idempotency
// key from, so the record gets a generated one.
func (h *AdminHandler) AddManualRegistration(c *gin.Context) {
	eventID := c.Param("eventId")

	var req manualRegistrationRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	registration := capacity.RegistrationRecord{
		ID:           "manual_" + uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		PlayerName:   req.PlayerName,
		GuardianName: req.GuardianName,
		Email:        req.Email,
		Phone:        req.Phone,
		PlayerCount:  req.PlayerCount,
		AmountPaid:   req.AmountPaid,
		Status:       capacity.StatusConfirmed,
	}

	doc, _, err := h.capacity.AddRegistration(c.Request.Context(), eventID, classify.BookingType(req.BookingType), 0, registration)

	if err != nil {
		c.Error(err)

		if errors.Is(err, capacity.ErrSoldOut) {
			c.JSON(http.StatusConflict, gin.H{"error": "event is sold out"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add registration"})
		return
	}

	c.IndentedJSON(http.StatusCreated, doc)
}

// MarkBooked re-runs the calendar mutation for an event whose registration is
// already recorded. This is the recovery path for a provider outage during
// webhook handling: the store and the calendar come back into agreement.
func (h *AdminHandler) MarkBooked(c *gin.Context) {
	eventID := c.Param("eventId")

	event, err := h.client.GetEvent(c.Request.Context(), eventID)

	if err != nil {
		c.Error(err)

		if errors.Is(err, calendar.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}

	doc := h.capacity.Get(c.Request.Context(), eventID)

	if len(doc.Registrations) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event has no registrations"})
		return
	}

	classification := classify.Classify(event)
	latest := doc.Registrations[len(doc.Registrations)-1]

	details := calendar.BookingDetails{
		PlayerName:        latest.PlayerName,
		GuardianName:      latest.GuardianName,
		PlayerCount:       latest.PlayerCount,
		AmountPaid:        latest.AmountPaid,
		BookedColorTag:    classify.BookedColorTag,
		AvailableColorTag: classify.AvailableColorTag(classification.Type),
		RemovePairedSlot:  classification.Type == classify.TypeAtHomeTraining,
	}

	result, err := h.mutator.MarkBooked(c.Request.Context(), eventID, details)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark event booked"})
		return
	}

	c.IndentedJSON(http.StatusOK, result)
}

func (h *AdminHandler) Export(c *gin.Context) {
	docs, err := h.capacity.Export(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export capacity documents"})
		return
	}

	c.IndentedJSON(http.StatusOK, docs)
}
