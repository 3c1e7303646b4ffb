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

type PostHandler struct {
	postService *service.PostService
	catalog     *i18n.Catalog
	log         *logrus.Logger
}

func NewPostHandler(postService *service.PostService, catalog *i18n.Catalog, log *logrus.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		catalog:     catalog,
		log:         log,
	}
}

// Home serves the signed-in user's feed: own posts plus posts from followed
// authors, newest first, paged.
func (h *PostHandler) Home(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	page, err := h.postService.HomeFeed(r.Context(), user.ID, pageParam(r))
	if err != nil {
		h.log.WithError(err).Error("loading home feed failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

type createPostRequest struct {
	Body string `json:"body"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePost(req.Body); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	user := middleware.GetUser(r.Context())
	post, err := h.postService.Submit(r.Context(), user, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPost), errors.Is(err, service.ErrPostTooLong):
			writeError(w, http.StatusBadRequest, "INVALID_POST", err.Error())
		default:
			h.log.WithError(err).Error("creating post failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	locale := middleware.GetLocale(r.Context())
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": h.catalog.T(locale, "post_live"),
		"post":    post,
	})
}

// Explore serves the site-wide feed of all posts, newest first, paged.
func (h *PostHandler) Explore(w http.ResponseWriter, r *http.Request) {
	page, err := h.postService.Explore(r.Context(), pageParam(r))
	if err != nil {
		h.log.WithError(err).Error("loading explore feed failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, page)
}
