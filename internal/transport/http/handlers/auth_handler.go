package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"microblog/internal/i18n"
	"microblog/internal/mailer"
	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
	"microblog/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	mailer      *mailer.Mailer
	catalog     *i18n.Catalog
	log         *logrus.Logger
}

func NewAuthHandler(authService *service.AuthService, m *mailer.Mailer, catalog *i18n.Catalog, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		mailer:      m,
		catalog:     catalog,
		log:         log,
	}
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateRegister(req.Username, req.Email, req.Password, req.Password2); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
		default:
			h.log.WithError(err).Error("register failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	locale := middleware.GetLocale(r.Context())
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": h.catalog.T(locale, "registered"),
		"user":    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateLogin(input.Username, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	resp, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			locale := middleware.GetLocale(r.Context())
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", h.catalog.T(locale, "invalid_credentials"))
		} else {
			h.log.WithError(err).Error("login failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Logout acknowledges the end of a session. Identity lives in a signed token,
// so the client discards it; nothing is tracked server side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

type resetRequestRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest mails a reset token to the given address. The response
// is identical whether or not the address belongs to an account, so the
// endpoint cannot be used to probe membership.
func (h *AuthHandler) ResetPasswordRequest(w http.ResponseWriter, r *http.Request) {
	var req resetRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateResetRequest(req.Email); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	locale := middleware.GetLocale(r.Context())

	user, token, err := h.authService.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		h.log.WithError(err).Error("reset request failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	if user != nil {
		h.mailer.SendPasswordReset(h.catalog, locale, user, token)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.catalog.T(locale, "check_email"),
	})
}

type resetPasswordRequest struct {
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateResetPassword(req.Password, req.Password2); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.authService.VerifyResetToken(r.Context(), r.PathValue("token"))
	if err != nil {
		h.log.WithError(err).Error("reset token verification failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	if user == nil {
		// Expired, malformed, badly signed, or the user is gone: one answer.
		writeError(w, http.StatusNotFound, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	if err := h.authService.SetPassword(r.Context(), user, req.Password); err != nil {
		h.log.WithError(err).Error("password reset failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	locale := middleware.GetLocale(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.catalog.T(locale, "password_reset"),
	})
}
