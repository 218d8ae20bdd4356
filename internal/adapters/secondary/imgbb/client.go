// Package imgbb uploads problem photos to an imgbb-compatible image
// host and returns the public URL.
package imgbb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	"vehicle-checklist-service/internal/config"
	"vehicle-checklist-service/internal/core/domain"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

type Client struct {
	cfg        config.ImageHostConfig
	httpClient *http.Client
}

func NewClient(cfg config.ImageHostConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ ports.ImageHost = (*Client)(nil)

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Upload accepts a base64 payload, with or without a data-URL prefix,
// and returns the hosted image URL.
func (c *Client) Upload(ctx context.Context, imageBase64 string) (string, error) {
	payload := stripDataURLPrefix(imageBase64)
	if payload == "" {
		return "", domain.ErrUploadFailed
	}

	form := url.Values{}
	form.Set("key", c.cfg.APIKey)
	form.Set("image", payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status", resp.StatusCode).Error("Image host rejected upload")
		return "", fmt.Errorf("image host returned status %d: %w", resp.StatusCode, domain.ErrUploadFailed)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if !parsed.Success || parsed.Data.URL == "" {
		return "", domain.ErrUploadFailed
	}

	return parsed.Data.URL, nil
}

func stripDataURLPrefix(s string) string {
	if i := strings.Index(s, "base64,"); i >= 0 {
		return s[i+len("base64,"):]
	}
	return strings.TrimSpace(s)
}
