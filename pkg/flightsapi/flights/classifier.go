package flights

import (
	"strings"
	"time"
)

// LocationFilter is the query strategy chosen from optional origin and
// destination parameters.
type LocationFilter int

const (
	OriginOnly LocationFilter = iota
	DestinationOnly
	BothLocations
	NoLocation
)

// SeasonFilter is the query strategy chosen from optional year and month
// parameters.
type SeasonFilter int

const (
	YearAndMonth SeasonFilter = iota
	YearOnly
	MonthOnly
	NoSeason
)

// MinSeasonYear is the first year the registry holds data for
const MinSeasonYear = 2019

// ClassifyLocation maps origin/destination parameters to a query strategy.
// Blank means absent. It never fails: with neither filter present the
// NoLocation case yields no results downstream, never the full listing.
func ClassifyLocation(origin, destination string) LocationFilter {
	hasOrigin := strings.TrimSpace(origin) != ""
	hasDestination := strings.TrimSpace(destination) != ""

	switch {
	case hasOrigin && !hasDestination:
		return OriginOnly
	case hasDestination && !hasOrigin:
		return DestinationOnly
	case hasOrigin && hasDestination:
		return BothLocations
	default:
		return NoLocation
	}
}

// ClassifySeason maps year/month parameters to a query strategy. Zero means
// absent. A year outside MinSeasonYear..current is treated as absent, and a
// month-only query requires the year to be exactly absent, so an invalid
// year never silently widens to a month search.
func ClassifySeason(year, month int) SeasonFilter {
	currentYear := time.Now().Year()
	yearInRange := year >= MinSeasonYear && year <= currentYear
	monthInRange := month >= 1 && month <= 12

	switch {
	case yearInRange && monthInRange:
		return YearAndMonth
	case yearInRange && month == 0:
		return YearOnly
	case year == 0 && monthInRange:
		return MonthOnly
	default:
		return NoSeason
	}
}
