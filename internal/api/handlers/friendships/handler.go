package friendships

import (
	"errors"
	"net/http"

	"github.com/m04kA/tourism-booking-service/internal/api/handlers"
	"github.com/m04kA/tourism-booking-service/internal/api/middleware"
	"github.com/m04kA/tourism-booking-service/internal/service/friendships"
)

const (
	msgInvalidFriendID    = "некорректный ID друга"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSelfFriendship     = "нельзя добавить в друзья самого себя"
)

type Handler struct {
	service FriendshipService
	logger  Logger
}

func NewHandler(service FriendshipService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Make POST /api/v1/friendships
func (h *Handler) Make(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req MakeFriendshipRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /friendships - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Make(r.Context(), actor.UserID, req.FriendID, req.GroupName)
	if err != nil {
		switch {
		case errors.Is(err, friendships.ErrSelfFriendship):
			handlers.RespondBadRequest(w, msgSelfFriendship)
			return
		case errors.Is(err, friendships.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /friendships - Failed to connect %d and %d: %v", actor.UserID, req.FriendID, err)
		handlers.RespondInternalError(w)
		return
	}

	status := http.StatusOK
	if created > 0 {
		status = http.StatusCreated
	}
	handlers.RespondJSON(w, status, MakeFriendshipResponse{FriendID: req.FriendID, EdgesCreated: created})
}

// End DELETE /api/v1/friendships/{friendId}
func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	friendID, err := handlers.PathInt64(r, "friendId")
	if err != nil {
		h.logger.Warn("DELETE /friendships/{id} - Invalid friend ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFriendID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	removed, err := h.service.End(r.Context(), actor.UserID, friendID)
	if err != nil {
		if errors.Is(err, friendships.ErrSelfFriendship) {
			handlers.RespondBadRequest(w, msgInvalidFriendID)
			return
		}
		h.logger.Error("DELETE /friendships/{id} - Failed to end friendship %d-%d: %v", actor.UserID, friendID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, EndFriendshipResponse{FriendID: friendID, EdgesRemoved: removed})
}

// List GET /api/v1/friendships
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	resp, err := h.service.ListFriends(r.Context(), actor.UserID)
	if err != nil {
		h.logger.Error("GET /friendships - Failed to list friends for user=%d: %v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
