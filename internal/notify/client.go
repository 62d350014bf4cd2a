package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maintenance-hub-backend/internal/logger"

	"github.com/go-resty/resty/v2"
)

// ErrDisabled is returned when no email provider is configured
var ErrDisabled = errors.New("email delivery is not configured")

// Message is one transactional email
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Client delivers email through an HTTP email provider
type Client struct {
	httpClient *resty.Client
	endpoint   string
	from       string
}

// NewClient creates an email client posting to endpoint with a bearer API key
func NewClient(endpoint, apiKey, from string) *Client {
	client := resty.New().
		SetTimeout(15*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(3*time.Second).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		endpoint:   endpoint,
		from:       from,
	}
}

// Send delivers msg
func (c *Client) Send(ctx context.Context, msg *Message) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	})

	var result sendResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(sendRequest{
			From:    c.from,
			To:      []string{msg.To},
			Subject: msg.Subject,
			HTML:    msg.HTML,
			Text:    msg.Text,
		}).
		SetResult(&result).
		SetError(&result).
		Post(c.endpoint)
	if err != nil {
		log.WithError(err).Error("Email provider call failed")
		return fmt.Errorf("failed to call email provider: %w", err)
	}
	if resp.IsError() {
		log.WithField("status_code", resp.StatusCode()).Errorf("Email provider rejected message: %s", result.Message)
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode(), result.Message)
	}

	log.WithField("message_id", result.ID).Info("Email sent")
	return nil
}

// DisabledMailer logs messages instead of sending them
type DisabledMailer struct{}

// Send logs msg and reports that delivery is disabled
func (DisabledMailer) Send(ctx context.Context, msg *Message) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Warn("Email delivery disabled, message dropped")
	return ErrDisabled
}
