package create_accommodation_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	createAccommodationBooking "github.com/m04kA/tourism-booking-service/internal/usecase/create_accommodation_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "нельзя бронировать от имени другого гостя"
	msgInvalidInput         = "некорректные параметры бронирования"
	msgInvalidDates         = "некорректные даты проживания"
	msgGuestNotFound        = "гость не найден"
	msgRoomNotFound         = "номер не найден"
	msgRoomNotBookable      = "номер недоступен для бронирования"
	msgInsufficientCapacity = "в номере недостаточно мест"
)

type Handler struct {
	useCase CreateAccommodationBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateAccommodationBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/accommodation-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /accommodation-bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAccommodationBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /accommodation-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	guestID, ok := handlers.ResolveGuestID(actor, req.GuestID)
	if !ok {
		h.logger.Warn("POST /accommodation-bookings - Booking for another guest: user_id=%d", actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	ucReq, err := req.ToUseCaseRequest(guestID)
	if err != nil {
		h.logger.Warn("POST /accommodation-bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createAccommodationBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAccommodationBooking.ErrInvalidDates):
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createAccommodationBooking.ErrGuestNotFound):
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createAccommodationBooking.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createAccommodationBooking.ErrRoomNotBookable):
			handlers.RespondBadRequest(w, msgRoomNotBookable)

		case errors.Is(err, createAccommodationBooking.ErrInsufficientCapacity):
			h.logger.Warn("POST /accommodation-bookings - Room is full: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgInsufficientCapacity)

		default:
			h.logger.Error("POST /accommodation-bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /accommodation-bookings - Booking requested: booking_id=%d, room_id=%d", resp.ID, resp.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
