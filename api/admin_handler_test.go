package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/courtside/training-booking-backend/api"
	api_mocks "github.com/courtside/training-booking-backend/api/mocks"
	"github.com/courtside/training-booking-backend/calendar"
	cal_mocks "github.com/courtside/training-booking-backend/calendar/mocks"
	"github.com/courtside/training-booking-backend/capacity"
	"github.com/courtside/training-booking-backend/classify"
)

type adminRouterDeps struct {
	capacity *api_mocks.MockCapacityService
	client   *cal_mocks.MockClient
	mutator  *api_mocks.MockBookedMarker
	router   *gin.Engine
}

func newAdminRouter(t *testing.T) (*gomock.Controller, adminRouterDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	capacityService := api_mocks.NewMockCapacityService(ctrl)
	client := cal_mocks.NewMockClient(ctrl)
	mutator := api_mocks.NewMockBookedMarker(ctrl)
	handler := api.NewAdminHandler(capacityService, client, mutator)

	router := gin.New()
	handler.Register(router.Group("/admin"))

	return ctrl, adminRouterDeps{capacity: capacityService, client: client, mutator: mutator, router: router}
}

func TestGetCapacity(t *testing.T) {
	ctrl, deps := newAdminRouter(t)
	defer ctrl.Finish()

	deps.capacity.EXPECT().Get(gomock.Any(), "evt1").Return(capacity.CapacityDocument{
		EventID:     "evt1",
		MaxCapacity: 6,
	}).Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/admin/capacity/evt1", nil)
	recorder := httptest.NewRecorder()
	deps.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var doc capacity.CapacityDocument
	require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &doc))
	require.Equal(t, "evt1", doc.EventID)
	require.Equal(t, 6, doc.MaxCapacity)
}

func TestUpdateCapacity(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newAdminRouter(t)
		defer ctrl.Finish()

		deps.capacity.EXPECT().UpdateCapacity(gomock.Any(), "evt1", 8).Return(capacity.CapacityDocument{
			EventID:            "evt1",
			MaxCapacity:        8,
			CapacityOverridden: true,
		}, nil).Times(1)

		req, _ := http.NewRequest(http.MethodPut, "/admin/capacity/evt1", strings.NewReader(`{"maxCapacity": 8}`))
		recorder := httptest.NewRecorder()
		deps.router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing document returns 404", func(t *testing.T) {
		ctrl, deps := newAdminRouter(t)
		defer ctrl.Finish()

		deps.capacity.EXPECT().UpdateCapacity(gomock.Any(), "evt1", 8).Return(capacity.CapacityDocument{}, capacity.ErrCapacityNotFound).Times(1)

		req, _ := http.NewRequest(http.MethodPut, "/admin/capacity/evt1", strings.NewReader(`{"maxCapacity": 8}`))
		recorder := httptest.NewRecorder()
		deps.router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("capacity outside bounds returns 400", func(t *testing.T) {
		ctrl, deps := newAdminRouter(t)
		defer ctrl.Finish()

		req, _ := http.NewRequest(http.MethodPut, "/admin/capacity/evt1", strings.NewReader(`{"maxCapacity": 1000}`))
		recorder := httptest.NewRecorder()
		deps.router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAddManualRegistration(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newAdminRouter(t)
		defer ctrl.Finish()

		deps.capacity.EXPECT().AddRegistration(gomock.Any(), "evt1", classify.TypeSmallGroup, 0, gomock.Any()).DoAndReturn(
			func(ctx context.Context, eventID string, bookingType classify.BookingType, customCapacity int, registration capacity.RegistrationRecord) (capacity.CapacityDocument, bool, error) {
				require.True(t, strings.HasPrefix(registration.ID, "manual_"))
				require.Equal(t, "Jordan Smith", registration.PlayerName)
				require.Equal(t, capacity.StatusConfirmed, registration.Status)
				return capacity.CapacityDocument{EventID: eventID, CurrentRegistrations: 1}, true, nil
			}).Times(1)

		body := `{"bookingType": "small_group_training", "playerName": "Jordan Smith", "playerCount": 1}`
		req, _ := http.NewRequest(http.MethodPost, "/admin/capacity/evt1/registrations", strings.NewReader(body))
		recorder := httptest.NewRecorder()
		deps.router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("sold out returns 409", func(t *testing.T) {
		ctrl, deps := newAdminRouter(t)
		defer ctrl.Finish()

		deps.capacity.EXPECT().AddRegistration(gomock.Any(), "evt1", gomock.Any(), 0, gomock.Any()).
			Return(capacity.CapacityDocument{}, false, capacity.ErrSoldOut).Times(1)

		body := `{"bookingType": "at_home_training", "playerName": "Jordan Smith"}`
		req, _ := http.NewRequest(http.MethodPost, "/admin/capacity/evt1/registrations", strings.NewReader(body))
		recorder := httptest.NewRecorder()
		deps.router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("missing required fields returns 400", func(t *testing.T) {
		ctrl, deps := newAdminRouter(t)
		defer ctrl.Finish()

		req, _ := http.NewRequest(http.MethodPost, "/admin/capacity/evt1/registrations", strings.NewReader(`{}`))
		recorder := httptest.NewRecorder()
		deps.router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAdminMarkBooked(t *testing.T) {

	t.Run("replays the calendar mutation from the latest registration", func(t *testing.T) {
		ctrl, deps := newAdminRouter(t)
		defer ctrl.Finish()

		event := calendar.Event{
			ID:          "evt1",
			Title:       "At Home Training",
			ColorTag:    2,
			Description: "Price: $95",
		}

		doc := capacity.CapacityDocument{
			EventID: "evt1",
			Registrations: []capacity.RegistrationRecord{
				{ID: "cs_1", PlayerName: "Jordan Smith", PlayerCount: 1, AmountPaid: 9500},
			},
		}

		deps.client.EXPECT().GetEvent(gomock.Any(), "evt1").Return(event, nil).Times(1)
		deps.capacity.EXPECT().Get(gomock.Any(), "evt1").Return(doc).Times(1)
		deps.mutator.EXPECT().MarkBooked(gomock.Any(), "evt1", gomock.Any()).DoAndReturn(
			func(ctx context.Context, eventID string, details calendar.BookingDetails) (calendar.MarkBookedResult, error) {
				require.Equal(t, "Jordan Smith", details.PlayerName)
				require.True(t, details.RemovePairedSlot)
				return calendar.MarkBookedResult{EventUpdated: true, PairedEventDeleted: true}, nil
			}).Times(1)

		req, _ := http.NewRequest(http.MethodPost, "/admin/events/evt1/mark-booked", bytes.NewReader(nil))
		recorder := httptest.NewRecorder()
		deps.router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("no registrations returns 400", func(t *testing.T) {
		ctrl, deps := newAdminRouter(t)
		defer ctrl.Finish()

		deps.client.EXPECT().GetEvent(gomock.Any(), "evt1").Return(calendar.Event{ID: "evt1", ColorTag: 2}, nil).Times(1)
		deps.capacity.EXPECT().Get(gomock.Any(), "evt1").Return(capacity.CapacityDocument{EventID: "evt1"}).Times(1)

		req, _ := http.NewRequest(http.MethodPost, "/admin/events/evt1/mark-booked", bytes.NewReader(nil))
		recorder := httptest.NewRecorder()
		deps.router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing event returns 404", func(t *testing.T) {
		ctrl, deps := newAdminRouter(t)
		defer ctrl.Finish()

		deps.client.EXPECT().GetEvent(gomock.Any(), "evt404").Return(calendar.Event{}, calendar.ErrEventNotFound).Times(1)

		req, _ := http.NewRequest(http.MethodPost, "/admin/events/evt404/mark-booked", bytes.NewReader(nil))
		recorder := httptest.NewRecorder()
		deps.router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestExportCapacity(t *testing.T) {
	ctrl, deps := newAdminRouter(t)
	defer ctrl.Finish()

	deps.capacity.EXPECT().Export(gomock.Any()).Return([]capacity.CapacityDocument{
		{EventID: "evt1"},
		{EventID: "evt2"},
	}, nil).Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/admin/capacity", nil)
	recorder := httptest.NewRecorder()
	deps.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var docs []capacity.CapacityDocument
	require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &docs))
	require.Len(t, docs, 2)
}
