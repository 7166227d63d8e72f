package companion_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	"github.com/m04kA/tourism-booking-service/internal/service/companions"
)

const (
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные параметры заявки"
	msgSelfRequest        = "нельзя отправить заявку самому себе"
	msgDuplicatePending   = "между гостями уже есть ожидающая заявка"
	msgAlreadyConnected   = "гости уже связаны"
	msgGuestNotFound      = "гость не найден"
	msgRequestNotFound    = "заявка не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidTransition  = "заявка уже рассмотрена"
)

type Handler struct {
	service CompanionService
	logger  Logger
}

func NewHandler(service CompanionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Send POST /api/v1/companion-requests
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SendRequestRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /companion-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.SendRequest(r.Context(), req.ToServiceRequest(actor.UserID))
	if err != nil {
		h.respondError(w, "POST /companion-requests", err)
		return
	}

	h.logger.Info("POST /companion-requests - Request sent: request_id=%d, sender=%d, recipient=%d",
		resp.ID, resp.SenderID, resp.RecipientID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// List GET /api/v1/companion-requests
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	resp, err := h.service.ListRequests(r.Context(), actor.UserID)
	if err != nil {
		h.respondError(w, "GET /companion-requests", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Count GET /api/v1/companion-requests/count
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	count, err := h.service.PendingCount(r.Context(), actor.UserID)
	if err != nil {
		h.respondError(w, "GET /companion-requests/count", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CountResponse{Pending: count})
}

// Accept POST /api/v1/companion-requests/{requestId}/accept
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	requestID, actorID, ok := h.parseDecision(w, r, "POST /companion-requests/{id}/accept")
	if !ok {
		return
	}

	resp, err := h.service.Accept(r.Context(), requestID, actorID)
	if err != nil {
		h.respondError(w, "POST /companion-requests/{id}/accept", err)
		return
	}

	h.logger.Info("POST /companion-requests/{id}/accept - Request accepted: request_id=%d", requestID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Decline POST /api/v1/companion-requests/{requestId}/decline
func (h *Handler) Decline(w http.ResponseWriter, r *http.Request) {
	requestID, actorID, ok := h.parseDecision(w, r, "POST /companion-requests/{id}/decline")
	if !ok {
		return
	}

	resp, err := h.service.Decline(r.Context(), requestID, actorID)
	if err != nil {
		h.respondError(w, "POST /companion-requests/{id}/decline", err)
		return
	}

	h.logger.Info("POST /companion-requests/{id}/decline - Request declined: request_id=%d", requestID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) parseDecision(w http.ResponseWriter, r *http.Request, route string) (int64, int64, bool) {
	requestID, err := handlers.PathInt64(r, "requestId")
	if err != nil {
		h.logger.Warn("%s - Invalid request ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return 0, 0, false
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, false
	}

	return requestID, actor.UserID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, companions.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, companions.ErrSelfRequest):
		handlers.RespondBadRequest(w, msgSelfRequest)

	case errors.Is(err, companions.ErrDuplicatePending):
		handlers.RespondConflict(w, msgDuplicatePending)

	case errors.Is(err, companions.ErrAlreadyConnected):
		handlers.RespondConflict(w, msgAlreadyConnected)

	case errors.Is(err, companions.ErrGuestNotFound):
		handlers.RespondNotFound(w, msgGuestNotFound)

	case errors.Is(err, companions.ErrRequestNotFound):
		handlers.RespondNotFound(w, msgRequestNotFound)

	case errors.Is(err, companions.ErrPermissionDenied):
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, companions.ErrInvalidTransition):
		handlers.RespondBadRequest(w, msgInvalidTransition)

	default:
		h.logger.Error("%s - Companion request failed: %v", route, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Warn("%s - Rejected: %v", route, err)
}
