package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"microblog/internal/i18n"
)

const translatorEndpoint = "https://api.cognitive.microsofttranslator.com/translate?api-version=3.0"

// TranslateService proxies text translation to the Microsoft Translator API.
// Failures never propagate as errors: the result is always a string, with
// localized sentinel messages standing in when the service is missing or
// misbehaving.
type TranslateService struct {
	key      string
	endpoint string
	client   *http.Client
	catalog  *i18n.Catalog
}

func NewTranslateService(key string, catalog *i18n.Catalog) *TranslateService {
	return &TranslateService{
		key:      key,
		endpoint: translatorEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		catalog:  catalog,
	}
}

// Translate converts text from sourceLang to destLang. locale selects the
// language of the sentinel strings returned on failure.
func (s *TranslateService) Translate(ctx context.Context, locale, text, sourceLang, destLang string) string {
	if s.key == "" {
		return s.catalog.T(locale, "translate_unconfigured")
	}

	payload, err := json.Marshal([]map[string]string{{"Text": text}})
	if err != nil {
		return s.catalog.T(locale, "translate_failed")
	}

	url := fmt.Sprintf("%s&from=%s&to=%s", s.endpoint, sourceLang, destLang)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return s.catalog.T(locale, "translate_failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", s.key)
	req.Header.Set("Ocp-Apim-Subscription-Region", "centralus")

	resp, err := s.client.Do(req)
	if err != nil {
		return s.catalog.T(locale, "translate_failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return s.catalog.T(locale, "translate_failed")
	}

	var result []struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return s.catalog.T(locale, "translate_failed")
	}
	if len(result) == 0 || len(result[0].Translations) == 0 {
		return s.catalog.T(locale, "translate_failed")
	}

	return result[0].Translations[0].Text
}
