// Package emailjs sends completed-checklist notifications through an
// EmailJS-compatible HTTP endpoint.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"vehicle-checklist-service/internal/config"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

type Client struct {
	cfg        config.EmailConfig
	httpClient *http.Client
}

func NewClient(cfg config.EmailConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

var _ ports.Notifier = (*Client)(nil)

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the rendered template fields. The to_email and from_name
// fields are filled from configuration so templates can address the
// recipient without the caller knowing it.
func (c *Client) Send(ctx context.Context, fields map[string]string) error {
	params := make(map[string]string, len(fields)+2)
	for k, v := range fields {
		params[k] = v
	}
	if c.cfg.ToEmail != "" {
		params["to_email"] = c.cfg.ToEmail
	}
	if c.cfg.FromName != "" {
		params["from_name"] = c.cfg.FromName
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.UserID,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.WithFields(log.Fields{
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("Email service rejected notification")
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}

	return nil
}
