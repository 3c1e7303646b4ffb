package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"microblog/internal/i18n"
	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
	catalog       *i18n.Catalog
	log           *logrus.Logger
}

func NewFollowHandler(followService *service.FollowService, catalog *i18n.Catalog, log *logrus.Logger) *FollowHandler {
	return &FollowHandler{
		followService: followService,
		catalog:       catalog,
		log:           log,
	}
}

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	locale := middleware.GetLocale(r.Context())
	actor := middleware.GetUser(r.Context())

	target, err := h.followService.Follow(r.Context(), actor.ID, username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "USER_NOT_FOUND", h.catalog.T(locale, "user_not_found", username))
		case errors.Is(err, service.ErrSelfFollow):
			writeError(w, http.StatusBadRequest, "SELF_FOLLOW", h.catalog.T(locale, "cannot_follow_self"))
		default:
			h.log.WithError(err).Error("follow failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.catalog.T(locale, "now_following", target.Username),
	})
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	locale := middleware.GetLocale(r.Context())
	actor := middleware.GetUser(r.Context())

	target, err := h.followService.Unfollow(r.Context(), actor.ID, username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "USER_NOT_FOUND", h.catalog.T(locale, "user_not_found", username))
		case errors.Is(err, service.ErrSelfFollow):
			writeError(w, http.StatusBadRequest, "SELF_FOLLOW", h.catalog.T(locale, "cannot_unfollow_self"))
		default:
			h.log.WithError(err).Error("unfollow failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.catalog.T(locale, "stopped_following", target.Username),
	})
}
