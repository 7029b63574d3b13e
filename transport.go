package daikinhttp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodySize bounds the response read; Daikin answers are a few hundred bytes.
const maxBodySize = 64 << 10

// Transport performs one GET against the appliance and returns the raw body.
type Transport interface {
	Get(ctx context.Context, path string, params RawRecord, headers map[string]string) (string, error)
}

// HTTPTransport is the net/http backed Transport.
type HTTPTransport struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     Logger
}

func NewHTTPTransport(baseURL string, client *http.Client, logger Logger) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &HTTPTransport{
		BaseURL:    baseURL,
		HTTPClient: client,
		Logger:     logger,
	}
}

func (t *HTTPTransport) Get(ctx context.Context, path string, params RawRecord, headers map[string]string) (string, error) {
	url := fmt.Sprintf("%s/%s", t.BaseURL, path)

	t.Logger.Debug("Making HTTP request", "url", url, "params", params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		t.Logger.Error("Failed to create HTTP request", "url", url, "error", err)
		return "", NewConnectionError("failed to create request", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if len(params) > 0 {
		req.URL.RawQuery = EncodeQuery(params)
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		t.Logger.Error("HTTP request failed", "url", url, "error", err)
		return "", NewConnectionError("failed to make request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		t.Logger.Warn("HTTP 403 Forbidden response", "url", url)
		return "", NewAuthenticationError("HTTP 403 Forbidden", nil)
	}

	if resp.StatusCode != http.StatusOK {
		t.Logger.Error("Unexpected HTTP status", "url", url, "status", resp.StatusCode)
		return "", NewConnectionError(fmt.Sprintf("unexpected HTTP status: %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		t.Logger.Error("Failed to read response body", "url", url, "error", err)
		return "", NewConnectionError("failed to read response body", err)
	}

	t.Logger.Debug("HTTP response received", "url", url, "bytes", len(body), "status", resp.StatusCode)
	return string(body), nil
}
