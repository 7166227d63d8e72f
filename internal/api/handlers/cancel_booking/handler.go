package cancel_booking

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	cancelBooking "github.com/m04kA/tourism-booking-service/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса, укажите причину отмены"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgCannotCancel       = "бронирование не может быть отменено"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

type executeFunc func(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error)

// HandleTour PATCH /api/v1/tour-bookings/{bookingId}/cancel
func (h *Handler) HandleTour(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PATCH /tour-bookings/{id}/cancel", h.useCase.ExecuteTour)
}

// HandleAccommodation PATCH /api/v1/accommodation-bookings/{bookingId}/cancel
func (h *Handler) HandleAccommodation(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "PATCH /accommodation-bookings/{id}/cancel", h.useCase.ExecuteAccommodation)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route string, execute executeFunc) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("%s - Invalid booking ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := execute(r.Context(), req.ToUseCaseRequest(bookingID, actor))
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrPermissionDenied):
			h.logger.Warn("%s - Access denied: booking_id=%d, user_id=%d", route, bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrInvalidTransition):
			h.logger.Warn("%s - Cannot cancel: booking_id=%d", route, bookingID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("%s - Failed to cancel booking: booking_id=%d, error=%v", route, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking cancelled: booking_id=%d, user_id=%d, released=%d",
		route, bookingID, actor.UserID, resp.ReleasedSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
