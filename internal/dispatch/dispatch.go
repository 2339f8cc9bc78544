// Package dispatch initiates coaching phone calls through the external
// dispatch service. Calls are fire-and-forget: the service answers with a
// call id and handles the rest of the call lifecycle itself.
package dispatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/models"
)

type CallRequest struct {
	TargetPhoneNumber string       `json:"target_phone_number"`
	CustomParams      CustomParams `json:"custom_params"`
}

type CustomParams struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
}

type CallResponse struct {
	CallID string `json:"call_id"`
}

// Client talks to the coach dispatch service configured in settings.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// ValidBot reports whether the given bot id is one the dispatch service knows.
func ValidBot(bot constants.DispatchBot) bool {
	switch bot {
	case constants.BotMorning, constants.BotSetup, constants.BotDayCall:
		return true
	}
	return false
}

// Dispatch requests a call from the given bot to the user in settings.
func (c *Client) Dispatch(bot constants.DispatchBot, settings models.Settings) (string, error) {
	if !ValidBot(bot) {
		return "", fmt.Errorf("unknown bot: %s", bot)
	}
	if settings.Phone == "" {
		return "", fmt.Errorf("no phone number configured, run '%s settings set --phone' first", constants.AppName)
	}

	payload := CallRequest{
		TargetPhoneNumber: settings.Phone,
		CustomParams: CustomParams{
			UserID:    constants.AppName,
			FirstName: settings.FirstName,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/dispatch/%s", c.endpoint, bot)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach dispatch service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("dispatch failed with status %d: %s", res.StatusCode, string(msg))
	}

	var callRes CallResponse
	if err := json.NewDecoder(res.Body).Decode(&callRes); err != nil {
		return "", fmt.Errorf("failed to parse dispatch response: %w", err)
	}
	if callRes.CallID == "" {
		return "", fmt.Errorf("dispatch service returned no call id")
	}

	return callRes.CallID, nil
}
