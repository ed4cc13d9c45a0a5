package flights

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/flightsapi/flightsapi/pkg/flightsapi/models"
	"github.com/flightsapi/flightsapi/pkg/flightsapi/response"
)

// Link path templates, one per paged endpoint
const (
	flightsPath = "flights"
	routesPath  = "flights/routes"
	seasonPath  = "flights/year"
)

// Service answers flight registry queries. Pages are 1-based at the API and
// translated to 0-based offsets at the store, on every paged path alike.
type Service struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewService creates a flight query service on the given store handle
func NewService(db *gorm.DB, log zerolog.Logger) *Service {
	return &Service{db: db, log: log}
}

// FindAll returns the unfiltered listing. It is the only path with page
// boundary checks: a page below 1 or beyond the last one is a bad request,
// not an empty success.
func (s *Service) FindAll(req response.RequestInfo, page, pageSize int) response.Model {
	if page < 1 {
		return response.NewError(
			fmt.Sprintf("Page number %d not available", page),
			http.StatusBadRequest,
			"Pages start from number 1!",
			req,
		)
	}

	items, total, err := s.fetchPage(nil, page, pageSize)
	if err != nil {
		return s.storeError(req, err)
	}

	totalPages := response.TotalPages(total, pageSize)
	if page > totalPages {
		return response.NewError(
			fmt.Sprintf("Page number %d not reachable", page),
			http.StatusBadRequest,
			"The page you are trying to reach has no elements in it!",
			req,
		)
	}

	return s.envelope(flightsPath, items, total, page, pageSize)
}

// FindByID fetches a single registry record
func (s *Service) FindByID(req response.RequestInfo, id string) response.Model {
	var flight models.FlightRegistry
	err := s.db.First(&flight, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewError(
			fmt.Sprintf("Element with id: (%s) not found.", id),
			http.StatusNotFound,
			"Using an invalid or wrong id for flight Registry!",
			req,
		)
	}
	if err != nil {
		return s.storeError(req, err)
	}
	return response.Entity{Value: flight}
}

// FindByRoute returns flights filtered by origin, destination or both. With
// neither filter present the result is deliberately empty, never the full
// listing, so the caller gets a not-found instead of a surprise dump.
func (s *Service) FindByRoute(req response.RequestInfo, origin, destination string, page, pageSize int) response.Model {
	var cond map[string]any

	switch ClassifyLocation(origin, destination) {
	case OriginOnly:
		s.log.Debug().Str("origin", origin).Msg("searching flights by origin")
		cond = map[string]any{"origin": origin}
	case DestinationOnly:
		s.log.Debug().Str("destination", destination).Msg("searching flights by destination")
		cond = map[string]any{"destination": destination}
	case BothLocations:
		s.log.Debug().Str("origin", origin).Str("destination", destination).Msg("searching flights by route")
		cond = map[string]any{"origin": origin, "destination": destination}
	case NoLocation:
		s.log.Debug().Msg("no valid route filters")
		return response.NewError(
			fmt.Sprintf("No flights found with origin: %s and destination: %s", origin, destination),
			http.StatusNotFound,
			"No flights found with the origin and destination you provided!",
			req,
		)
	}

	items, total, err := s.fetchPage(cond, page, pageSize)
	if err != nil {
		return s.storeError(req, err)
	}
	s.log.Debug().Int("results", len(items)).Msg("route search finished")

	if len(items) == 0 {
		return response.NewError(
			fmt.Sprintf("No flights found with origin: %s and destination: %s", origin, destination),
			http.StatusNotFound,
			"No flights found with the origin and destination you provided!",
			req,
		)
	}

	return s.envelope(routesPath, items, total, page, pageSize)
}

// FindBySeason returns flights filtered by year, month or both. Each
// classifier outcome carries its own not-found message when empty.
func (s *Service) FindBySeason(req response.RequestInfo, year, month, page, pageSize int) response.Model {
	var cond map[string]any
	season := ClassifySeason(year, month)

	switch season {
	case YearAndMonth:
		s.log.Debug().Int("year", year).Int("month", month).Msg("searching flights by year and month")
		cond = map[string]any{"year": year, "month": month}
	case YearOnly:
		s.log.Debug().Int("year", year).Msg("searching flights by year")
		cond = map[string]any{"year": year}
	case MonthOnly:
		s.log.Debug().Int("month", month).Msg("searching flights by month")
		cond = map[string]any{"month": month}
	case NoSeason:
		s.log.Debug().Msg("no valid season filters")
	}

	var items []models.FlightRegistry
	var total int64
	if season != NoSeason {
		var err error
		items, total, err = s.fetchPage(cond, page, pageSize)
		if err != nil {
			return s.storeError(req, err)
		}
		s.log.Debug().Int("results", len(items)).Msg("season search finished")
	}

	if len(items) == 0 {
		return response.NewError(
			seasonNotFoundMessage(season, year, month),
			http.StatusNotFound,
			seasonNotFoundDetail(season),
			req,
		)
	}

	return s.envelope(seasonPath, items, total, page, pageSize)
}

// FindMaxPax returns the record with the highest passenger count. Ties are
// broken by store-default order, so this is an arbitrary one of the
// maximum-passenger records. An empty registry is a store invariant
// violation, surfaced as a server error rather than a not-found.
func (s *Service) FindMaxPax(req response.RequestInfo) response.Model {
	var flight models.FlightRegistry
	err := s.db.Order("passengers DESC").First(&flight).Error
	if err != nil {
		return response.NewError(
			"Something went wrong",
			http.StatusInternalServerError,
			"Something went wrong trying to retrieve the max pax flight",
			req,
		)
	}

	return response.SingleItem(flight)
}

// AddRegistry creates a new record unconditionally and returns it wrapped
// in a one-element envelope.
func (s *Service) AddRegistry(req response.RequestInfo, flight models.FlightRegistry) response.Model {
	flight.ID = ""
	if err := s.db.Create(&flight).Error; err != nil {
		return s.storeError(req, err)
	}
	s.log.Info().Str("id", flight.ID).Str("origin", flight.Origin).Str("destination", flight.Destination).Msg("flight registry created")
	return response.SingleItem(flight)
}

// fetchPage runs a filtered paged query: one count, one offset/limit fetch.
// A nil cond means unfiltered.
func (s *Service) fetchPage(cond map[string]any, page, pageSize int) ([]models.FlightRegistry, int64, error) {
	var total int64
	q := s.db.Model(&models.FlightRegistry{})
	if cond != nil {
		q = q.Where(cond)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	var items []models.FlightRegistry
	q = s.db.Offset(offset).Limit(pageSize)
	if cond != nil {
		q = q.Where(cond)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) envelope(base string, items []models.FlightRegistry, total int64, page, pageSize int) response.Paged {
	totalPages := response.TotalPages(total, pageSize)
	prev, next := response.PageLinks(base, page, totalPages, pageSize)
	return response.Paged{
		Total:      int(total),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Data:       items,
		PrevPage:   prev,
		NextPage:   next,
	}
}

func (s *Service) storeError(req response.RequestInfo, err error) *response.Error {
	s.log.Error().Err(err).Msg("flight store query failed")
	return response.NewError(
		"Unexpected persistence failure",
		http.StatusInternalServerError,
		"The flight store could not complete the request",
		req,
	)
}

func seasonNotFoundMessage(season SeasonFilter, year, month int) string {
	switch season {
	case YearAndMonth:
		return fmt.Sprintf("No flights found for year: %d and month: %d", year, month)
	case YearOnly:
		return fmt.Sprintf("No flights found for year: %d", year)
	case MonthOnly:
		return fmt.Sprintf("No flights found for the month: %d", month)
	default:
		return "No flights found for the filters provided"
	}
}

func seasonNotFoundDetail(season SeasonFilter) string {
	switch season {
	case YearAndMonth:
		return "No flights found for the year and month you provided!"
	case YearOnly:
		return "No flights found for the year you provided!"
	case MonthOnly:
		return "No flights found for the month you provided!"
	default:
		return "No flights found for the filters you provided!"
	}
}
