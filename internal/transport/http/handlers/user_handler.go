package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"microblog/internal/i18n"
	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
	"microblog/pkg/validator"
)

type UserHandler struct {
	userService   *service.UserService
	postService   *service.PostService
	followService *service.FollowService
	catalog       *i18n.Catalog
	log           *logrus.Logger
}

func NewUserHandler(userService *service.UserService, postService *service.PostService, followService *service.FollowService, catalog *i18n.Catalog, log *logrus.Logger) *UserHandler {
	return &UserHandler{
		userService:   userService,
		postService:   postService,
		followService: followService,
		catalog:       catalog,
		log:           log,
	}
}

// Profile serves a user page: the profile with follow stats, the avatar, the
// viewer's follow state, and the user's posts, paged.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	locale := middleware.GetLocale(r.Context())

	user, err := h.userService.GetProfile(r.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "USER_NOT_FOUND", h.catalog.T(locale, "user_not_found", username))
		} else {
			h.log.WithError(err).Error("loading profile failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	viewer := middleware.GetUser(r.Context())
	isFollowing, err := h.followService.IsFollowing(r.Context(), viewer.ID, user.ID)
	if err != nil {
		h.log.WithError(err).Error("checking follow state failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	posts, err := h.postService.UserPosts(r.Context(), user.ID, pageParam(r))
	if err != nil {
		h.log.WithError(err).Error("loading user posts failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":         user,
		"avatar_url":   user.AvatarURL(128),
		"is_following": isFollowing,
		"posts":        posts,
	})
}

// EditProfileView returns the viewer's own profile for the edit form.
func (h *UserHandler) EditProfileView(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"username": user.Username,
		"about_me": user.AboutMe,
	})
}

type editProfileRequest struct {
	Username string `json:"username"`
	AboutMe  string `json:"about_me"`
}

func (h *UserHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	var req editProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateEditProfile(req.Username, req.AboutMe); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	user := middleware.GetUser(r.Context())
	if err := h.userService.UpdateProfile(r.Context(), user, req.Username, req.AboutMe); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
		} else {
			h.log.WithError(err).Error("updating profile failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	locale := middleware.GetLocale(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"message": h.catalog.T(locale, "changes_saved"),
		"user":    user,
	})
}
