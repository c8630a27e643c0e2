package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// Operators configure price and capacity by editing the event description in
// the calendar UI. The patterns below are that configuration channel.
var (
	labeledPricePattern = regexp.MustCompile(`(?i)price:\s*\$?\s*(\d+)`)
	barePricePattern    = regexp.MustCompile(`\$\s*(\d+)`)
	capacityPattern     = regexp.MustCompile(`(?i)(?:capacity|spots):\s*(\d+)`)
	datesPattern        = regexp.MustCompile(`(?i)dates?:\s*([^\n]+)`)
)

const (
	minCapacity = 1
	maxCapacity = 100
)

// parsePrice scans the description with two ordered patterns: an explicit
// "Price: $N" label first, then a bare "$N" token. First match wins.
func parsePrice(description string) (int, bool) {
	for _, pattern := range []*regexp.Regexp{labeledPricePattern, barePricePattern} {
		match := pattern.FindStringSubmatch(description)

		if match == nil {
			continue
		}

		price, err := strconv.Atoi(match[1])

		if err != nil || price <= 0 {
			continue
		}

		return price, true
	}

	return 0, false
}

// parseCapacity reads an explicit "Capacity: N" or "Spots: N" label. Values
// outside [1,100] are treated as probable typos and ignored.
func parseCapacity(description string) (int, bool) {
	match := capacityPattern.FindStringSubmatch(description)

	if match == nil {
		return 0, false
	}

	capacity, err := strconv.Atoi(match[1])

	if err != nil || capacity < minCapacity || capacity > maxCapacity {
		return 0, false
	}

	return capacity, true
}

// parseDates extracts a free-text "Dates: ..." directive used only for
// display on the booking page.
func parseDates(description string) string {
	match := datesPattern.FindStringSubmatch(description)

	if match == nil {
		return ""
	}

	return strings.TrimSpace(match[1])
}
