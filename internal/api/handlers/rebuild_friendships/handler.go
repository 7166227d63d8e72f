package rebuild_friendships

import (
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "операция доступна только администратору"
)

// RebuildResponse HTTP response model
type RebuildResponse struct {
	Processed        int `json:"processed"`
	Created          int `json:"created"`
	Failed           int `json:"failed"`
	CompanionRecords int `json:"companionRecords"`
	AcceptedRequests int `json:"acceptedRequests"`
	GroupPairs       int `json:"groupPairs"`
}

type Handler struct {
	useCase PopulateUseCase
	logger  Logger
}

func NewHandler(useCase PopulateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/friendships/rebuild
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if !actor.IsStaff() {
		h.logger.Warn("POST /admin/friendships/rebuild - Not staff: user_id=%d", actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	resp, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/friendships/rebuild - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RebuildResponse{
		Processed:        resp.Processed,
		Created:          resp.Created,
		Failed:           resp.Failed,
		CompanionRecords: resp.CompanionRecords,
		AcceptedRequests: resp.AcceptedRequests,
		GroupPairs:       resp.GroupPairs,
	})
}
