package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// PublicHandler serves the unauthenticated browse endpoints:
// restaurant detail, search and available reservation times.
type PublicHandler struct {
	Store *store.Store
	// AvailabilityDays bounds the default availability window when
	// the caller does not pass an explicit date range.
	AvailabilityDays int
}

func NewPublicHandler(s *store.Store, availabilityDays int) *PublicHandler {
	return &PublicHandler{Store: s, AvailabilityDays: availabilityDays}
}

// GetRestaurant returns a single restaurant by its exact name.
func (h *PublicHandler) GetRestaurant(c echo.Context) error {
	r, err := h.Store.FindRestaurantByName(c.Param("name"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurant": r})
}

// SearchRestaurants looks restaurants up by exact name or by type.
// Exactly one of the two query params must be present.  A name
// search for a missing restaurant is a 404; a type search with no
// matches is an empty list.
func (h *PublicHandler) SearchRestaurants(c echo.Context) error {
	name := c.QueryParam("name")
	rtype := c.QueryParam("type")

	switch {
	case name != "":
		r, err := h.Store.FindRestaurantByName(name)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no restaurant found"})
		}
		return c.JSON(http.StatusOK, echo.Map{"restaurants": []model.Restaurant{r}})
	case rtype != "":
		return c.JSON(http.StatusOK, echo.Map{"restaurants": h.Store.FindRestaurantsByType(rtype)})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "name or type query param is required"})
}

// availableTimePart is one bookable slot in the flattened
// availability listing.
type availableTimePart struct {
	Date string `json:"date"` // "2006-01-02"
	Time string `json:"time"` // "15:04"
}

// AvailableTimes lists the free hourly slots of a restaurant over a
// date range.  Both bounds are inclusive; when absent the range
// defaults to today through today plus the configured window.
func (h *PublicHandler) AvailableTimes(c echo.Context) error {
	from := time.Now().UTC().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, h.AvailabilityDays)

	if v := c.QueryParam("from"); v != "" {
		d, err := time.Parse(model.DateLayout, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from date"})
		}
		from = d
		to = d.AddDate(0, 0, h.AvailabilityDays)
	}
	if v := c.QueryParam("to"); v != "" {
		d, err := time.Parse(model.DateLayout, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to date"})
		}
		to = d
	}
	if to.Before(from) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must not precede from"})
	}

	days, err := h.Store.AvailableSlots(c.Param("name"), from, to)
	if err != nil {
		if errors.Is(err, store.ErrRestaurantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability lookup failed"})
	}

	parts := make([]availableTimePart, 0)
	for _, d := range days {
		for _, t := range d.Times {
			parts = append(parts, availableTimePart{
				Date: d.Date.Format(model.DateLayout),
				Time: t.String(),
			})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"availableTimes": parts})
}
