package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/queue"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	queue_publisher "github.com/iliyamo/restaurant-table-reservation/internal/service"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// ClientHandler exposes the reservation endpoints used by clients.
// The reserving user always comes from the access token.  The
// archive and the event queue are both best-effort: the in-memory
// store commits first and neither collaborator can fail a request.
type ClientHandler struct {
	Store   *store.Store
	Archive *repository.Archive
}

func NewClientHandler(s *store.Store, a *repository.Archive) *ClientHandler {
	return &ClientHandler{Store: s, Archive: a}
}

type reserveReq struct {
	RestaurantName string `json:"restaurantName"`
	TableNumber    int    `json:"tableNumber"`
	Datetime       string `json:"datetime"` // "2006-01-02 15:04"
}

type reservationPart struct {
	ReservationNumber int    `json:"reservationNumber"`
	RestaurantName    string `json:"restaurantName"`
	TableNumber       int    `json:"tableNumber"`
	Datetime          string `json:"datetime"`
}

func reservationToPart(r model.Reservation) reservationPart {
	return reservationPart{
		ReservationNumber: r.Number,
		RestaurantName:    r.RestaurantName,
		TableNumber:       r.TableNumber,
		Datetime:          r.Datetime.Format(model.DateTimeLayout),
	}
}

// Reserve books a table at an hourly slot for the calling user.
func (h *ClientHandler) Reserve(c echo.Context) error {
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	at, err := time.Parse(model.DateTimeLayout, req.Datetime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid datetime format"})
	}
	username, _ := c.Get("username").(string)

	res, err := h.Store.ReserveTable(username, req.RestaurantName, req.TableNumber, at)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound),
			errors.Is(err, store.ErrRestaurantNotFound),
			errors.Is(err, store.ErrTableNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrManagerReservationNotAllowed):
			return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrInvalidDateTime),
			errors.Is(err, store.ErrReservationNotInOpenTimes):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrTableAlreadyReserved):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reserve failed"})
	}

	if h.Archive != nil {
		_ = h.Archive.SaveReservation(c.Request().Context(), res)
	}
	publishEvent(queue.KindConfirmed, res)

	return c.JSON(http.StatusCreated, echo.Map{"reservation": reservationToPart(res)})
}

// Cancel cancels one of the calling user's reservations by its
// per-user number.
func (h *ClientHandler) Cancel(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation number"})
	}
	username, _ := c.Get("username").(string)

	cancelled, err := h.Store.CancelReservation(username, number)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound),
			errors.Is(err, store.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case errors.Is(err, store.ErrAlreadyCancelled):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}

	if h.Archive != nil {
		_ = h.Archive.MarkCancelled(c.Request().Context(), username, number)
	}
	publishEvent(queue.KindCancelled, cancelled)

	return c.JSON(http.StatusOK, echo.Map{"message": "reservation cancelled successfully"})
}

// List returns the calling user's active reservations; cancelled
// ones are filtered out.
func (h *ClientHandler) List(c echo.Context) error {
	username, _ := c.Get("username").(string)

	reservations, err := h.Store.ActiveReservations(username)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	parts := make([]reservationPart, 0, len(reservations))
	for _, r := range reservations {
		parts = append(parts, reservationToPart(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": parts})
}

// publishEvent emits a reservation lifecycle event in the
// background.  The broker round trip stays off the request path
// and a publish failure is already logged by the publisher.
func publishEvent(kind string, r model.Reservation) {
	ev := queue.ReservationEvent{
		Kind:              kind,
		Username:          r.Username,
		ReservationNumber: r.Number,
		RestaurantName:    r.RestaurantName,
		TableNumber:       r.TableNumber,
		OccurredAt:        time.Now().UTC().Format(time.RFC3339),
	}
	if !r.Datetime.IsZero() {
		ev.Datetime = r.Datetime.Format(model.DateTimeLayout)
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishReservationEvent(ctx, ev)
	}()
}
