package group

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grouptivate/grouptivate-api/internal/auth"
	"github.com/grouptivate/grouptivate-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateGroupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.GroupName == "" {
		log.Warn("Invalid group creation body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Create(r.Context(), claims.UserID, dto)
	if err != nil {
		if errors.Is(err, ErrInvalidInterval) {
			config.Error(w, http.StatusBadRequest, "invalid interval")
			return
		}
		log.WithError(err).Error("Failed to create group")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	groupID := r.URL.Query().Get("groupId")
	if groupID == "" {
		config.Error(w, http.StatusBadRequest, "groupId required")
		return
	}

	resp, err := h.service.Get(r.Context(), groupID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			config.Error(w, http.StatusNotFound, "group not found")
		case errors.Is(err, ErrNotMember):
			config.Error(w, http.StatusForbidden, "user is not a member of the group")
		default:
			log.WithError(err).Error("Failed to load group")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.service.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list groups")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto RemoveMemberDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.GroupID == "" || dto.UserID == "" {
		log.Warn("Invalid member removal body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.RemoveMember(r.Context(), dto.GroupID, dto.UserID, claims.UserID); err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			config.Error(w, http.StatusNotFound, "group not found")
		case errors.Is(err, ErrNotMember):
			config.Error(w, http.StatusForbidden, "user is not a member of the group")
		default:
			log.WithError(err).Error("Failed to remove member")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
