package classify

import (
	"strings"

	"github.com/courtside/training-booking-backend/calendar"
)

type BookingType string

const (
	TypeAtHomeTraining BookingType = "at_home_training"
	TypeSmallGroup     BookingType = "small_group_training"
	TypeClinic         BookingType = "clinic"
	TypeCamp           BookingType = "camp"
	TypeOther          BookingType = "other"
)

// metadataTypeKey is the structured classification channel. When present with
// a known value it wins over every other signal.
const metadataTypeKey = "bookingType"

// Color tags are the operators' lowest-friction configuration primitive:
// changing an event's color in the calendar UI changes its booking type here.
var colorToType = map[int]BookingType{
	2: TypeAtHomeTraining,
	5: TypeSmallGroup,
	9: TypeClinic,
	6: TypeCamp,
}

var typeToAvailableColor = map[BookingType]int{
	TypeAtHomeTraining: 2,
	TypeSmallGroup:     5,
	TypeClinic:         9,
	TypeCamp:           6,
}

// BookedColorTag marks an event as booked regardless of type. The color state
// machine per type is just available -> booked.
const BookedColorTag = 8

var typeDefaultCapacity = map[BookingType]int{
	TypeAtHomeTraining: 1,
	TypeSmallGroup:     6,
	TypeClinic:         12,
	TypeOther:          8,
}

// typeBasePrice backs events enrolled through the structured metadata channel
// but missing a price directive in the description. Whole dollars.
var typeBasePrice = map[BookingType]int{
	TypeAtHomeTraining: 95,
	TypeSmallGroup:     40,
	TypeClinic:         25,
}

// Location keywords checked before color, because an at-home visit is
// sometimes colored like a facility session by mistake.
var locationKeywords = []string{"at home", "at-home", "in-home", "home visit", "private session"}

var genericTitleTypes = []struct {
	keyword     string
	bookingType BookingType
}{
	{"camp", TypeCamp},
	{"clinic", TypeClinic},
	{"small group", TypeSmallGroup},
	{"group training", TypeSmallGroup},
}

type Classification struct {
	Type                BookingType `json:"type"`
	Price               int         `json:"price"` // whole dollars, 0 = unset
	RegistrationEnabled bool        `json:"registrationEnabled"`
	Capacity            int         `json:"capacity"` // 0 = unlimited or unset
	CapacityFromText    bool        `json:"-"`
	DatesText           string      `json:"datesText,omitempty"`
}

// Classify turns an externally-owned calendar event into a booking
// classification. Total function: any event yields a usable result.
//
// Resolution order, first match wins:
//  1. structured metadata type
//  2. location keywords in the title
//  3. color tag table
//  4. generic title keywords
//  5. TypeOther
func Classify(event calendar.Event) Classification {
	bookingType := resolveType(event)

	price, priceFound := parsePrice(event.Description)

	// A structured metadata type means someone deliberately marked the event
	// bookable, so a missing price directive falls back to the type base price
	// rather than disabling registration.
	if !priceFound && hasMetadataType(event) {
		if base, ok := typeBasePrice[bookingType]; ok {
			price = base
			priceFound = true
		}
	}

	capacity, capacityFound := parseCapacity(event.Description)

	if !capacityFound {
		capacity = DefaultCapacity(bookingType)
	}

	return Classification{
		Type: bookingType,
		// An explicit price is the switch that turns registration on; there
		// is no separate opt-in flag.
		Price:               price,
		RegistrationEnabled: priceFound,
		Capacity:            capacity,
		CapacityFromText:    capacityFound,
		DatesText:           parseDates(event.Description),
	}
}

func hasMetadataType(event calendar.Event) bool {
	value, ok := event.ExtendedMetadata[metadataTypeKey]

	if !ok {
		return false
	}

	_, known := parseBookingType(value)

	return known
}

func resolveType(event calendar.Event) BookingType {
	if value, ok := event.ExtendedMetadata[metadataTypeKey]; ok {
		if known, ok := parseBookingType(value); ok {
			return known
		}
	}

	title := strings.ToLower(event.Title)

	for _, keyword := range locationKeywords {
		if strings.Contains(title, keyword) {
			return TypeAtHomeTraining
		}
	}

	if bookingType, ok := colorToType[event.ColorTag]; ok {
		return bookingType
	}

	for _, entry := range genericTitleTypes {
		if strings.Contains(title, entry.keyword) {
			return entry.bookingType
		}
	}

	return TypeOther
}

func parseBookingType(value string) (BookingType, bool) {
	switch BookingType(strings.TrimSpace(strings.ToLower(value))) {
	case TypeAtHomeTraining:
		return TypeAtHomeTraining, true
	case TypeSmallGroup:
		return TypeSmallGroup, true
	case TypeClinic:
		return TypeClinic, true
	case TypeCamp:
		return TypeCamp, true
	case TypeOther:
		return TypeOther, true
	}

	return TypeOther, false
}

// DefaultCapacity returns the per-type capacity used when the description
// carries no explicit value. Zero means unlimited.
func DefaultCapacity(bookingType BookingType) int {
	return typeDefaultCapacity[bookingType]
}

// Unlimited reports whether the type bypasses the sold-out check entirely.
func Unlimited(bookingType BookingType) bool {
	return bookingType == TypeCamp
}

// AvailableColorTag returns the color an open slot of the given type carries.
func AvailableColorTag(bookingType BookingType) int {
	if tag, ok := typeToAvailableColor[bookingType]; ok {
		return tag
	}

	return typeToAvailableColor[TypeSmallGroup]
}
