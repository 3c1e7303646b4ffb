package handlers

import (
	"encoding/json"
	"net/http"

	"microblog/internal/service"
	"microblog/internal/transport/http/middleware"
)

type TranslateHandler struct {
	translateService *service.TranslateService
}

func NewTranslateHandler(translateService *service.TranslateService) *TranslateHandler {
	return &TranslateHandler{translateService: translateService}
}

type translateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	DestLanguage   string `json:"dest_language"`
}

// Translate proxies one text through the translation service. The result is
// always 200 with a text payload; service problems surface as localized
// sentinel strings, never as request failures.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	locale := middleware.GetLocale(r.Context())
	text := h.translateService.Translate(r.Context(), locale, req.Text, req.SourceLanguage, req.DestLanguage)

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
