package decide_accommodation_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	decideAccommodationBooking "github.com/m04kA/tourism-booking-service/internal/usecase/decide_accommodation_booking"
)

const (
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "решение по заявке принимает только сотрудник"
	msgNotFound             = "бронирование не найдено"
	msgRoomNotFound         = "номер не найден"
	msgRoomNotBookable      = "номер недоступен для бронирования"
	msgInvalidTransition    = "заявка уже рассмотрена"
	msgInsufficientCapacity = "в номере недостаточно мест"
)

type Handler struct {
	useCase DecideUseCase
	logger  Logger
}

func NewHandler(useCase DecideUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/accommodation-bookings/{bookingId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /accommodation-bookings/{id}/decision - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req DecisionRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /accommodation-bookings/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &decideAccommodationBooking.Request{
		BookingID: bookingID,
		Actor:     actor,
		Decision:  decideAccommodationBooking.Decision(req.Decision),
	})
	if err != nil {
		switch {
		case errors.Is(err, decideAccommodationBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, decideAccommodationBooking.ErrPermissionDenied):
			h.logger.Warn("PATCH /accommodation-bookings/{id}/decision - Not staff: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, decideAccommodationBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, decideAccommodationBooking.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, decideAccommodationBooking.ErrRoomNotBookable):
			handlers.RespondBadRequest(w, msgRoomNotBookable)

		case errors.Is(err, decideAccommodationBooking.ErrInvalidTransition):
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, decideAccommodationBooking.ErrInsufficientCapacity):
			h.logger.Warn("PATCH /accommodation-bookings/{id}/decision - Room is full: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgInsufficientCapacity)

		default:
			h.logger.Error("PATCH /accommodation-bookings/{id}/decision - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /accommodation-bookings/{id}/decision - Booking %s: booking_id=%d", resp.Status, bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
