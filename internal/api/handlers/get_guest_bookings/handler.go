package get_guest_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	"github.com/m04kA/tourism-booking-service/internal/service/bookings"
)

const (
	msgInvalidGuestID = "некорректный ID гостя"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
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

// Handle GET /api/v1/guests/{guestId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID, err := handlers.PathInt64(r, "guestId")
	if err != nil {
		h.logger.Warn("GET /guests/{id}/bookings - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	resp, err := h.service.ListGuestBookings(r.Context(), guestID, actor)
	if err != nil {
		if errors.Is(err, bookings.ErrAccessDenied) {
			h.logger.Warn("GET /guests/{id}/bookings - Access denied: guest_id=%d, user_id=%d", guestID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /guests/{id}/bookings - Failed to list bookings: guest_id=%d, error=%v", guestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /guests/{id}/bookings - Returned %d tour and %d accommodation bookings: guest_id=%d",
		len(resp.TourBookings), len(resp.AccommodationBookings), guestID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
