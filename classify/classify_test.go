package classify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/courtside/training-booking-backend/calendar"
	"github.com/courtside/training-booking-backend/classify"
)

func testEvent() calendar.Event {
	return calendar.Event{
		ID:    "evt1",
		Title: "Training Session",
		Start: time.Date(2026, 9, 14, 15, 30, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 14, 16, 30, 0, 0, time.UTC),
	}
}

func TestTypeResolutionOrder(t *testing.T) {

	t.Run("structured metadata wins over every other signal", func(t *testing.T) {
		event := testEvent()
		event.Title = "Summer Camp Week 1"
		event.ColorTag = 9 // clinic color
		event.ExtendedMetadata = map[string]string{"bookingType": "small_group_training"}

		got := classify.Classify(event)

		require.Equal(t, classify.TypeSmallGroup, got.Type)
	})

	t.Run("unknown metadata value falls through", func(t *testing.T) {
		event := testEvent()
		event.ColorTag = 9
		event.ExtendedMetadata = map[string]string{"bookingType": "mystery"}

		got := classify.Classify(event)

		require.Equal(t, classify.TypeClinic, got.Type)
	})

	t.Run("location keyword overrides color", func(t *testing.T) {
		event := testEvent()
		event.Title = "At Home Session - Smith"
		event.ColorTag = 5 // small group color

		got := classify.Classify(event)

		require.Equal(t, classify.TypeAtHomeTraining, got.Type)
	})

	t.Run("color tag table", func(t *testing.T) {
		cases := map[int]classify.BookingType{
			2: classify.TypeAtHomeTraining,
			5: classify.TypeSmallGroup,
			9: classify.TypeClinic,
			6: classify.TypeCamp,
		}

		for colorTag, want := range cases {
			event := testEvent()
			event.ColorTag = colorTag

			require.Equal(t, want, classify.Classify(event).Type)
		}
	})

	t.Run("generic title keyword fallback", func(t *testing.T) {
		event := testEvent()
		event.Title = "Shooting Clinic"
		event.ColorTag = 3 // unmapped color

		got := classify.Classify(event)

		require.Equal(t, classify.TypeClinic, got.Type)
	})

	t.Run("default other", func(t *testing.T) {
		event := testEvent()
		event.Title = "Staff Meeting"
		event.ColorTag = 3

		got := classify.Classify(event)

		require.Equal(t, classify.TypeOther, got.Type)
	})
}

func TestPriceRegistrationCoupling(t *testing.T) {

	t.Run("labeled price wins over bare token", func(t *testing.T) {
		event := testEvent()
		event.Description = "Bring $20 for gear.\nPrice: $95"

		got := classify.Classify(event)

		require.Equal(t, 95, got.Price)
		require.True(t, got.RegistrationEnabled)
	})

	t.Run("bare dollar token enables registration", func(t *testing.T) {
		event := testEvent()
		event.Description = "Session fee is $45 per player"

		got := classify.Classify(event)

		require.Equal(t, 45, got.Price)
		require.True(t, got.RegistrationEnabled)
	})

	t.Run("no price means registration not offered", func(t *testing.T) {
		event := testEvent()
		event.Description = "Open gym, all welcome"

		got := classify.Classify(event)

		require.Equal(t, 0, got.Price)
		require.False(t, got.RegistrationEnabled)
	})

	t.Run("metadata-typed event falls back to the base price", func(t *testing.T) {
		event := testEvent()
		event.Description = "Shooting fundamentals"
		event.ExtendedMetadata = map[string]string{"bookingType": "clinic"}

		got := classify.Classify(event)

		require.Equal(t, 25, got.Price)
		require.True(t, got.RegistrationEnabled)
	})

	t.Run("untyped event gets no base price", func(t *testing.T) {
		event := testEvent()
		event.ColorTag = 9

		got := classify.Classify(event)

		require.Equal(t, 0, got.Price)
		require.False(t, got.RegistrationEnabled)
	})
}

func TestCapacityExtraction(t *testing.T) {

	t.Run("explicit capacity label", func(t *testing.T) {
		event := testEvent()
		event.ColorTag = 9
		event.Description = "Price: $40\nCapacity: 15"

		got := classify.Classify(event)

		require.Equal(t, 15, got.Capacity)
		require.True(t, got.CapacityFromText)
	})

	t.Run("spots label", func(t *testing.T) {
		event := testEvent()
		event.ColorTag = 5
		event.Description = "Spots: 4"

		got := classify.Classify(event)

		require.Equal(t, 4, got.Capacity)
	})

	t.Run("out of range capacity falls back to type default", func(t *testing.T) {
		event := testEvent()
		event.ColorTag = 9
		event.Description = "Capacity: 1500"

		got := classify.Classify(event)

		require.Equal(t, classify.DefaultCapacity(classify.TypeClinic), got.Capacity)
		require.False(t, got.CapacityFromText)
	})

	t.Run("type defaults", func(t *testing.T) {
		require.Equal(t, 1, classify.DefaultCapacity(classify.TypeAtHomeTraining))
		require.Equal(t, 6, classify.DefaultCapacity(classify.TypeSmallGroup))
		require.Equal(t, 12, classify.DefaultCapacity(classify.TypeClinic))
		require.Equal(t, 0, classify.DefaultCapacity(classify.TypeCamp))
	})
}

func TestDatesDirective(t *testing.T) {
	event := testEvent()
	event.Description = "Price: $250\nDates: July 7-11, 9am-12pm daily"

	got := classify.Classify(event)

	require.Equal(t, "July 7-11, 9am-12pm daily", got.DatesText)
}

func TestUnlimitedTypes(t *testing.T) {
	require.True(t, classify.Unlimited(classify.TypeCamp))
	require.False(t, classify.Unlimited(classify.TypeAtHomeTraining))
	require.False(t, classify.Unlimited(classify.TypeClinic))
}

func TestClassifyIsDeterministic(t *testing.T) {
	event := testEvent()
	event.Title = "At Home Training"
	event.ColorTag = 2
	event.Description = "Price: $95\nCapacity: 2"
	event.ExtendedMetadata = map[string]string{"bookingType": "at_home_training"}

	first := classify.Classify(event)

	for i := 0; i < 10; i++ {
		require.Equal(t, first, classify.Classify(event))
	}
}
