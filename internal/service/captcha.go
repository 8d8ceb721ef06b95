package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sauvetage/config"
)

// CaptchaVerifier checks a bot-protection widget token before a public form
// submission is accepted.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// TurnstileVerifier calls the Cloudflare Turnstile siteverify endpoint. An
// empty secret disables verification, for local development.
type TurnstileVerifier struct {
	cfg    config.TurnstileConfig
	client *http.Client
}

func NewTurnstileVerifier(cfg config.TurnstileConfig) *TurnstileVerifier {
	return &TurnstileVerifier{cfg: cfg, client: &http.Client{Timeout: 10 * time.Second}}
}

func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if v.cfg.Secret == "" {
		return true, nil
	}
	if token == "" {
		return false, nil
	}
	form := url.Values{
		"secret":   {v.cfg.Secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := v.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	var out struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Success, nil
}
