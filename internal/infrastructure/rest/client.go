// Package rest implementa los puertos de repository contra la API JSON del
// backend CRM. Usa net/http de la stdlib; no requiere librerías de terceros
// para el transporte.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-leads/internal/application/dto"
	"github.com/tu-usuario/crm-leads/internal/domain"
	"github.com/tu-usuario/crm-leads/pkg/logger"
)

// Config opciones del cliente REST.
type Config struct {
	BaseURL string // ej. http://localhost:8081/api
	Timeout time.Duration
}

// Client cliente HTTP del backend CRM. Mapea las respuestas de error a los
// errores de dominio: 401/403 → ErrUnauthorized/ErrForbidden, 404 →
// ErrNotFound, 409 → ErrConflict, resto → ErrTransport.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
	token      func() string // proveedor del bearer token; nil antes del login
}

// NewClient construye el cliente REST.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// SetTokenProvider registra la fuente del bearer token (normalmente
// session.BearerToken). Mientras no haya token las llamadas van sin
// Authorization.
func (c *Client) SetTokenProvider(fn func() string) {
	c.token = fn
}

// do ejecuta una petición JSON. Cada llamada lleva un X-Request-ID propio
// para correlacionar con los logs del backend. out puede ser nil si la
// respuesta no interesa.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar payload: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("armar petición: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("petición al backend falló")
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: respuesta ilegible: %v", domain.ErrTransport, err)
		}
		return nil
	}

	return c.mapError(resp, method, path, requestID)
}

func (c *Client) mapError(resp *http.Response, method, path, requestID string) error {
	// El backend manda {code, message}; si el cuerpo no parsea se usa solo el
	// código HTTP.
	var body dto.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)
	msg := body.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	c.log.Warn().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Str("backend_code", body.Code).
		Msg("backend respondió error")

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
	default:
		return fmt.Errorf("%w: HTTP %d: %s", domain.ErrTransport, resp.StatusCode, msg)
	}
}
