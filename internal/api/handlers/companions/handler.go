package companions

import (
	"errors"
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	"github.com/m04kA/tourism-booking-service/internal/service/companions"
)

const (
	msgInvalidCompanionID = "некорректный ID компаньона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные компаньона"
	msgNestedCompanion    = "компаньон не может добавлять своих компаньонов"
	msgGuestNotFound      = "гость не найден"
	msgCompanionNotFound  = "компаньон не найден"
	msgForbidden          = "доступ запрещен"
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

// List GET /api/v1/companions
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListCompanions(r.Context(), actor.UserID)
	if err != nil {
		h.respondError(w, "GET /companions", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CompanionListResponse{Companions: list, Total: len(list)})
}

// Add POST /api/v1/companions
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddCompanionRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /companions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.AddCompanion(r.Context(), req.ToServiceRequest(actor.UserID))
	if err != nil {
		h.respondError(w, "POST /companions", err)
		return
	}

	h.logger.Info("POST /companions - Companion added: companion_id=%d, owner_id=%d", resp.ID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// Update PATCH /api/v1/companions/{companionId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	companionID, ownerID, ok := h.parsePath(w, r, "PATCH /companions/{id}")
	if !ok {
		return
	}

	var req UpdateCompanionRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /companions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.UpdateCompanionGroup(r.Context(), ownerID, companionID, req.GroupName)
	if err != nil {
		h.respondError(w, "PATCH /companions/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Delete DELETE /api/v1/companions/{companionId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	companionID, ownerID, ok := h.parsePath(w, r, "DELETE /companions/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteCompanion(r.Context(), ownerID, companionID); err != nil {
		h.respondError(w, "DELETE /companions/{id}", err)
		return
	}

	h.logger.Info("DELETE /companions/{id} - Companion deleted: companion_id=%d, owner_id=%d", companionID, ownerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) parsePath(w http.ResponseWriter, r *http.Request, route string) (int64, int64, bool) {
	companionID, err := handlers.PathInt64(r, "companionId")
	if err != nil {
		h.logger.Warn("%s - Invalid companion ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidCompanionID)
		return 0, 0, false
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, false
	}

	return companionID, actor.UserID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, companions.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, companions.ErrNestedCompanion):
		handlers.RespondBadRequest(w, msgNestedCompanion)

	case errors.Is(err, companions.ErrGuestNotFound):
		handlers.RespondNotFound(w, msgGuestNotFound)

	case errors.Is(err, companions.ErrCompanionNotFound):
		handlers.RespondNotFound(w, msgCompanionNotFound)

	case errors.Is(err, companions.ErrPermissionDenied):
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Companion operation failed: %v", route, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Warn("%s - Rejected: %v", route, err)
}
