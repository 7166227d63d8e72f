package get_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	"github.com/m04kA/tourism-booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleTour GET /api/v1/tour-bookings/{bookingId}
func (h *Handler) HandleTour(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.parseRequest(w, r, "GET /tour-bookings/{id}")
	if !ok {
		return
	}
	actor, _ := middleware.GetActor(r.Context())

	booking, err := h.service.GetTourBooking(r.Context(), bookingID, actor)
	if err != nil {
		h.respondError(w, "GET /tour-bookings/{id}", bookingID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}

// HandleAccommodation GET /api/v1/accommodation-bookings/{bookingId}
func (h *Handler) HandleAccommodation(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := h.parseRequest(w, r, "GET /accommodation-bookings/{id}")
	if !ok {
		return
	}
	actor, _ := middleware.GetActor(r.Context())

	booking, err := h.service.GetAccommodationBooking(r.Context(), bookingID, actor)
	if err != nil {
		h.respondError(w, "GET /accommodation-bookings/{id}", bookingID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}

func (h *Handler) parseRequest(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("%s - Invalid booking ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return 0, false
	}

	if _, ok := middleware.GetActor(r.Context()); !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, false
	}

	return bookingID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, bookingID int64, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: booking_id=%d", route, bookingID)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed to get booking: booking_id=%d, error=%v", route, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
