package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNoSpeech indica que el servicio no encontro transcripcion en el audio.
// Es un fallo visible para el usuario, nunca un crash.
var ErrNoSpeech = errors.New("no speech recognized")

// Idiomas que ofrece el selector de la UI.
var supportedLanguages = map[string]struct{}{
	"en-US": {},
	"ar-SA": {},
	"de-DE": {},
}

// NormalizeLanguage valida el tag de idioma y cae en en-US si no se conoce.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if _, ok := supportedLanguages[lang]; ok {
		return lang
	}
	return "en-US"
}

// Recognizer transcribe audio capturado por el cliente.
type Recognizer interface {
	Recognize(ctx context.Context, audio []byte, language string) (string, error)
}

// HTTPRecognizer delega la transcripcion a un servicio STT externo.
type HTTPRecognizer struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPRecognizer(baseURL, apiKey string, logger *zap.Logger) *HTTPRecognizer {
	return &HTTPRecognizer{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (r *HTTPRecognizer) Recognize(ctx context.Context, audio []byte, language string) (string, error) {
	if len(audio) == 0 {
		return "", ErrNoSpeech
	}

	endpoint := r.baseURL + "/recognize?lang=" + url.QueryEscape(NormalizeLanguage(language))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if r.logger != nil {
			r.logger.Warn("speech error response",
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", respBody),
			)
		}
		return "", fmt.Errorf("speech http error: status=%d", resp.StatusCode)
	}

	var out struct {
		Transcript string `json:"transcript"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	transcript := strings.TrimSpace(out.Transcript)
	if transcript == "" {
		return "", ErrNoSpeech
	}
	return transcript, nil
}

// MockRecognizer permite tests sin servicio STT real.
type MockRecognizer struct {
	Transcript string
	Err        error
	LastLang   string
}

func (m *MockRecognizer) Recognize(_ context.Context, _ []byte, language string) (string, error) {
	m.LastLang = language
	return m.Transcript, m.Err
}
