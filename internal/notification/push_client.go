package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"freight-match/internal/config"
)

const defaultSendTimeout = 10 * time.Second

// PushClient talks to the external mobile push provider over HTTP.
type PushClient struct {
	apiURL   string
	apiToken string
	client   *http.Client
}

func NewPushClient(cfg *config.PushConfig) *PushClient {
	return &PushClient{
		apiURL:   cfg.APIURL,
		apiToken: cfg.APIToken,
		client:   &http.Client{Timeout: defaultSendTimeout},
	}
}

type pushRequest struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type pushResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (p *PushClient) Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	if p.apiURL == "" || p.apiToken == "" {
		return &SendError{Reason: "push provider not configured"}
	}

	payload, err := json.Marshal(pushRequest{
		To:    deviceToken,
		Title: title,
		Body:  body,
		Data:  data,
	})
	if err != nil {
		return &SendError{Reason: fmt.Sprintf("encode payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(payload))
	if err != nil {
		return &SendError{Reason: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return &SendError{Reason: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var parsed pushResponse
	_ = json.Unmarshal(respBody, &parsed)

	// Providers report dead tokens with a 4xx status or an explicit
	// device-not-registered error code in the body.
	if resp.StatusCode == http.StatusGone || parsed.Error == "DeviceNotRegistered" {
		return &SendError{Permanent: true, Reason: "device token no longer registered"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SendError{Reason: fmt.Sprintf("provider returned status %d", resp.StatusCode)}
	}
	if parsed.Status != "" && parsed.Status != "ok" {
		return &SendError{Reason: fmt.Sprintf("provider reported status %q: %s", parsed.Status, parsed.Error)}
	}

	return nil
}
