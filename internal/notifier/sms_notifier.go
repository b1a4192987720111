package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	config "github.com/Keoroanthony/go-orders/configs"
)

// Sender delivers a text message and returns the gateway's raw response
// body. Callers attach the result to their own response; a Send failure
// must never roll back the operation that triggered it.
type Sender interface {
	Send(ctx context.Context, to string, message string) (string, error)
}

type smsMessage struct {
	Destinations []smsDestination `json:"destinations"`
	From         string           `json:"from"`
	Text         string           `json:"text"`
}

type smsDestination struct {
	To string `json:"to"`
}

type smsPayload struct {
	Messages []smsMessage `json:"messages"`
}

// SMSClient talks to the SMS gateway's advanced-text endpoint.
type SMSClient struct {
	baseURL  string
	apiKey   string
	senderID string
	client   *http.Client
}

func NewSMSClient(cfg *config.Settings) *SMSClient {
	return &SMSClient{
		baseURL:  cfg.SMSBaseURL,
		apiKey:   cfg.SMSAPIKey,
		senderID: cfg.SMSSenderID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SMSClient) Send(ctx context.Context, to string, message string) (string, error) {

	payload := smsPayload{
		Messages: []smsMessage{
			{
				Destinations: []smsDestination{{To: to}},
				From:         s.senderID,
				Text:         message,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode SMS payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/sms/2/text/advanced", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create SMS request: %w", err)
	}

	req.Header.Set("Authorization", "App "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("SMS send failed", "to", to, "error", err)
		return "", fmt.Errorf("SMS send failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read SMS response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.Error("SMS API returned non-success status", "to", to, "status", resp.StatusCode)
		return string(respBody), fmt.Errorf("SMS API returned non-success status: %d", resp.StatusCode)
	}

	slog.Info("SMS sent successfully", "to", to)
	return string(respBody), nil
}
