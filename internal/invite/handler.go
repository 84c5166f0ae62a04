package invite

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

	var dto CreateInviteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.GroupID == "" || dto.InviteeName == "" {
		log.Warn("Invalid invite creation body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Create(r.Context(), claims.UserID, dto); err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			config.Error(w, http.StatusNotFound, "group not found")
		case errors.Is(err, ErrNotMember):
			config.Error(w, http.StatusForbidden, "user is not a member of the group")
		case errors.Is(err, ErrInviteeNotFound):
			config.Error(w, http.StatusBadRequest, "this user does not exist")
		case errors.Is(err, ErrAlreadyInvited):
			config.Error(w, http.StatusConflict, "this user is already invited to this group")
		default:
			log.WithError(err).Error("Failed to create invite")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
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
		log.WithError(err).Error("Failed to list invites")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	inviteID := r.URL.Query().Get("inviteId")
	if inviteID == "" {
		config.Error(w, http.StatusNotFound, "inviteId required")
		return
	}

	if err := h.service.Delete(r.Context(), inviteID, claims.UserID); err != nil {
		switch {
		case errors.Is(err, ErrInviteNotFound), errors.Is(err, ErrGroupNotFound):
			config.Error(w, http.StatusNotFound, "invite not found")
		case errors.Is(err, ErrNotMember):
			config.Error(w, http.StatusForbidden, "user is not a member of the group")
		default:
			log.WithError(err).Error("Failed to delete invite")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	inviteID := r.URL.Query().Get("inviteId")
	if inviteID == "" {
		config.Error(w, http.StatusBadRequest, "inviteId required")
		return
	}

	var dto RespondDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.Warn("Invalid invite response body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Respond(r.Context(), inviteID, claims.UserID, dto.Accepted); err != nil {
		switch {
		case errors.Is(err, ErrInviteNotFound), errors.Is(err, ErrGroupNotFound):
			config.Error(w, http.StatusNotFound, "invite not found")
		case errors.Is(err, ErrNotInvitee):
			config.Error(w, http.StatusForbidden, "invite is not for this user")
		default:
			log.WithError(err).Error("Failed to respond to invite")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
