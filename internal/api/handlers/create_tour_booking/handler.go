package create_tour_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	createTourBooking "github.com/m04kA/tourism-booking-service/internal/usecase/create_tour_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "нельзя бронировать от имени другого гостя"
	msgInvalidInput         = "некорректные параметры бронирования"
	msgGuestNotFound        = "гость не найден"
	msgScheduleNotFound     = "расписание тура не найдено"
	msgScheduleNotBookable  = "расписание закрыто для бронирования"
	msgCompanionNotOwned    = "компаньон не принадлежит гостю"
	msgInsufficientCapacity = "недостаточно свободных мест"
)

type Handler struct {
	useCase CreateTourBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateTourBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tour-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /tour-bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTourBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /tour-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	guestID, ok := handlers.ResolveGuestID(actor, req.GuestID)
	if !ok {
		h.logger.Warn("POST /tour-bookings - Booking for another guest: user_id=%d", actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(guestID))
	if err != nil {
		switch {
		case errors.Is(err, createTourBooking.ErrInvalidInput):
			h.logger.Warn("POST /tour-bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createTourBooking.ErrGuestNotFound):
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createTourBooking.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, createTourBooking.ErrScheduleNotBookable):
			handlers.RespondBadRequest(w, msgScheduleNotBookable)

		case errors.Is(err, createTourBooking.ErrCompanionNotOwned):
			handlers.RespondForbidden(w, msgCompanionNotOwned)

		case errors.Is(err, createTourBooking.ErrInsufficientCapacity):
			h.logger.Warn("POST /tour-bookings - Not enough slots: schedule_id=%d", req.ScheduleID)
			handlers.RespondConflict(w, msgInsufficientCapacity)

		default:
			h.logger.Error("POST /tour-bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tour-bookings - Booking created: booking_id=%d, guest_id=%d", resp.ID, resp.GuestID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
