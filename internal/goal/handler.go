package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grouptivate/grouptivate-api/internal/auth"
	"github.com/grouptivate/grouptivate-api/internal/config"
)

type Handler struct {
	service GoalService
}

func NewHandler(service GoalService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	groupID := r.URL.Query().Get("groupId")
	if groupID == "" {
		config.Error(w, http.StatusNotFound, "groupId required")
		return
	}
	ownerID := r.URL.Query().Get("userId")

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Title == "" {
		log.Warn("Invalid goal creation body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Create(r.Context(), groupID, claims.UserID, ownerID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			config.Error(w, http.StatusNotFound, "group not found")
		case errors.Is(err, ErrNotMember):
			config.Error(w, http.StatusForbidden, "user is not a member of the group")
		case errors.Is(err, ErrOwnerRequired), errors.Is(err, ErrInvalidType):
			config.Error(w, http.StatusBadRequest, err.Error())
		default:
			log.WithError(err).Error("Failed to create goal")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto DeleteGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.GoalID == "" {
		log.Warn("Invalid goal deletion body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Delete(r.Context(), dto.GoalID, claims.UserID); err != nil {
		switch {
		case errors.Is(err, ErrGoalNotFound):
			config.Error(w, http.StatusNotFound, "goal not found")
		case errors.Is(err, ErrNotMember):
			config.Error(w, http.StatusForbidden, "user is not a member of the group")
		default:
			log.WithError(err).Error("Failed to delete goal")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var updates []ProgressPatch
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		log.Warn("Invalid progress patch body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Patch(r.Context(), claims.UserID, updates); err != nil {
		switch {
		case errors.Is(err, ErrGoalNotFound):
			config.Error(w, http.StatusNotFound, "goal not found")
		case errors.Is(err, ErrNotMember), errors.Is(err, ErrNotGoalOwner):
			config.Error(w, http.StatusForbidden, "user may not update this goal")
		default:
			log.WithError(err).Error("Failed to patch progress")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
