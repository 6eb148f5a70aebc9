package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// ManagerHandler exposes the endpoints a restaurant manager uses
// to set up their venue.  The manager identity always comes from
// the access token, never from the request body, so a manager can
// only ever act as themselves.
type ManagerHandler struct {
	Store   *store.Store
	Archive *repository.Archive
}

func NewManagerHandler(s *store.Store, a *repository.Archive) *ManagerHandler {
	return &ManagerHandler{Store: s, Archive: a}
}

type createRestaurantReq struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	StartTime   string      `json:"startTime"` // "HH:MM"
	EndTime     string      `json:"endTime"`   // "HH:MM"
	Address     addressPart `json:"address"`
}

type createTableReq struct {
	TableNumber int `json:"tableNumber"`
	SeatsCount  int `json:"seatsCount"`
}

// CreateRestaurant registers a new restaurant owned by the calling
// manager.
func (h *ManagerHandler) CreateRestaurant(c echo.Context) error {
	var req createRestaurantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	// Restaurant addresses must carry a street, unlike user addresses.
	if req.Address.Country == "" || req.Address.City == "" || req.Address.Street == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "address is not complete"})
	}
	start, err := model.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start time format"})
	}
	end, err := model.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end time format"})
	}

	username, _ := c.Get("username").(string)
	addr := model.Address{Country: req.Address.Country, City: req.Address.City, Street: req.Address.Street}

	r, err := h.Store.AddRestaurant(req.Name, username, req.Type, model.WorkingHours{Start: start, End: end}, req.Description, addr)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateName):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrManagerNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrInvalidWorkingHours):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create restaurant failed"})
	}
	if h.Archive != nil {
		_ = h.Archive.SaveRestaurant(c.Request().Context(), r)
	}
	return c.JSON(http.StatusCreated, echo.Map{"restaurant": r})
}

// CreateTable adds a table to one of the calling manager's
// restaurants.
func (h *ManagerHandler) CreateTable(c echo.Context) error {
	restaurantName := c.Param("name")
	var req createTableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	username, _ := c.Get("username").(string)

	t, err := h.Store.AddTable(req.TableNumber, restaurantName, username, req.SeatsCount)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRestaurantNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrManagerMismatch):
			return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrDuplicateTableNumber):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrInvalidSeatCount):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create table failed"})
	}
	if h.Archive != nil {
		_ = h.Archive.SaveTable(c.Request().Context(), restaurantName, t)
	}
	return c.JSON(http.StatusCreated, echo.Map{"restaurantName": restaurantName, "table": t})
}
