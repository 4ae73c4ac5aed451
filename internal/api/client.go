// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the MindCare analysis backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mindcare/mindcare-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	// ErrTypeConnection: the request never produced an HTTP response
	// (backend unreachable, DNS failure, connection reset).
	ErrTypeConnection
	// ErrTypeTimeout: the request exceeded the configured timeout.
	ErrTypeTimeout
	// ErrTypeHTTP: the backend answered with a non-2xx status.
	ErrTypeHTTP
	// ErrTypeBackend: 2xx status but the payload carried a logical error field.
	ErrTypeBackend
	// ErrTypeInvalidResponse: the body could not be decoded.
	ErrTypeInvalidResponse
)

// ClientError represents an error from the backend client.
type ClientError struct {
	Type       ErrorType
	StatusCode int // Set for ErrTypeHTTP
	Message    string
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches client errors by type so callers can branch on taxonomy
// without comparing message strings.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "backend is not reachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend API base URL (default: http://127.0.0.1:5000/api)
	BaseURL string

	// Timeout for requests (default: 60s, matching the backend's own
	// model-inference timeout)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:5000/api",
		Timeout: 60 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the MindCare backend API.
//
// The Client is stateless apart from its configuration and is safe for
// concurrent use. All failures are returned as *ClientError; callers render
// them in their owning UI region and never let them propagate further.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:5000/api"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// CHAT
// =============================================================================

// ChatResult is the decoded outcome of a successful chat exchange.
type ChatResult struct {
	// Reply is the assistant's text.
	Reply string
	// Risk is the attached classification, nil when the backend sent none.
	Risk *model.RiskAnalysis
	// Score is the sentiment score of the analysis (0 when absent).
	Score float64
	// Value is the numeric risk signal, nil when absent.
	Value *float64
}

// SendMessage posts a user message to the backend chat endpoint and returns
// the assistant reply plus its risk analysis.
//
// A 2xx response carrying the backend's logical error field is returned as
// ErrTypeBackend, distinct from transport failures.
func (c *Client) SendMessage(ctx context.Context, userID, userName, text string) (*ChatResult, error) {
	body, err := json.Marshal(chatRequest{
		Mensaje:  text,
		UserID:   userID,
		Username: userName,
	})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	var decoded chatResponse
	if httpErr := decodeBody(resp, &decoded); httpErr != nil {
		// The backend reports validation failures as JSON {error} with a
		// non-2xx status; prefer that text when present.
		if decoded.Error != "" {
			httpErr.Message = decoded.Error
		}
		return nil, httpErr
	}

	if decoded.Error != "" {
		return nil, &ClientError{Type: ErrTypeBackend, Message: decoded.Error}
	}

	result := &ChatResult{Reply: decoded.Respuesta}
	if decoded.Analisis != nil {
		result.Score = decoded.Analisis.Puntuacion
		result.Value = decoded.Analisis.Valor
		if level := model.ParseRiskLevel(decoded.Analisis.Riesgo); level != model.RiskNone {
			result.Risk = &model.RiskAnalysis{
				Level:          level,
				Classification: decoded.Analisis.Clasificacion,
			}
		}
	}
	return result, nil
}

// =============================================================================
// ALERTS
// =============================================================================

// FetchAlerts retrieves the stored alerts for a user.
// The backend returns alerts most recent first; the order is preserved.
func (c *Client) FetchAlerts(ctx context.Context, userID string) ([]model.Alert, error) {
	endpoint := c.config.BaseURL + "/alerts?user_id=" + url.QueryEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	var decoded alertsResponse
	if httpErr := decodeBody(resp, &decoded); httpErr != nil {
		if decoded.Error != "" {
			httpErr.Message = decoded.Error
		}
		return nil, httpErr
	}

	alerts := make([]model.Alert, 0, len(decoded.Alerts))
	for _, wa := range decoded.Alerts {
		alerts = append(alerts, toAlert(wa))
	}
	return alerts, nil
}

// toAlert converts a wire alert into the domain type, applying the
// defaulting rules: missing score becomes 0, missing value stays nil.
func toAlert(wa wireAlert) model.Alert {
	alert := model.Alert{
		Timestamp:      parseBackendTime(wa.FechaAlerta),
		Level:          model.ParseRiskLevel(wa.Riesgo),
		Classification: wa.Clasificacion,
		Message:        wa.Mensaje,
		Value:          wa.Valor,
	}
	if wa.Puntuacion != nil {
		alert.Score = *wa.Puntuacion
	}
	return alert
}

// =============================================================================
// STATS
// =============================================================================

// FetchStats retrieves the aggregate statistics snapshot for a user.
func (c *Client) FetchStats(ctx context.Context, userID string) (*model.StatsSnapshot, error) {
	endpoint := c.config.BaseURL + "/stats?user_id=" + url.QueryEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	var decoded statsResponse
	if httpErr := decodeBody(resp, &decoded); httpErr != nil {
		if decoded.Error != "" {
			httpErr.Message = decoded.Error
		}
		return nil, httpErr
	}

	snap := &model.StatsSnapshot{
		TotalInteractions:  decoded.TotalInteracciones,
		LastEmotionalState: decoded.UltimoEstado,
		LastRiskLevel:      model.ParseRiskLevel(decoded.UltimoRiesgo),
	}
	if snap.LastEmotionalState == "" {
		snap.LastEmotionalState = "-"
	}
	if len(decoded.ConteoRiesgos) > 0 {
		snap.RiskCounts = make(map[model.RiskLevel]int, len(decoded.ConteoRiesgos))
		for k, v := range decoded.ConteoRiesgos {
			if level := model.ParseRiskLevel(k); level != model.RiskNone {
				snap.RiskCounts[level] = v
			}
		}
	}
	for _, step := range decoded.TendenciaEmocional {
		snap.EmotionalTrend = append(snap.EmotionalTrend, model.TrendPoint{
			Date:  step.Fecha,
			Value: step.Valor,
		})
	}
	return snap, nil
}

// =============================================================================
// HEALTH
// =============================================================================

// Health describes the backend's self-reported status.
type Health struct {
	Status  string
	Ollama  string
	Version string
}

// CheckHealth queries the backend health endpoint.
func (c *Client) CheckHealth(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/health", nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	var decoded healthResponse
	if httpErr := decodeBody(resp, &decoded); httpErr != nil {
		return nil, httpErr
	}

	return &Health{
		Status:  decoded.Status,
		Ollama:  decoded.Ollama,
		Version: decoded.Version,
	}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// transportError classifies an http.Client error into the taxonomy.
func transportError(err error) *ClientError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: err}
	}
	return &ClientError{Type: ErrTypeConnection, Message: "backend is not reachable", Cause: err}
}

// decodeBody decodes the response body into dst. Non-2xx statuses are
// returned as ErrTypeHTTP after a best-effort decode of the body (so a
// backend {error} payload can refine the message).
func decodeBody(resp *http.Response, dst any) *ClientError {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Decode errors are deliberately ignored here; the status code is
		// the primary signal.
		_ = json.Unmarshal(body, dst)
		return &ClientError{
			Type:       ErrTypeHTTP,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("backend returned HTTP %d", resp.StatusCode),
		}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// parseBackendTime parses the backend's ISO timestamps. The backend emits
// datetime.isoformat() without a timezone; RFC 3339 is accepted as well.
// Unparseable values yield the zero time instead of an error.
func parseBackendTime(s string) time.Time {
	layouts := []string{
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		time.RFC3339Nano,
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
