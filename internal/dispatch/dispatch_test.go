package dispatch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/models"
)

func testSettings() models.Settings {
	return models.Settings{
		FirstName: "Ada",
		Phone:     "+15550100",
	}
}

func TestDispatch(t *testing.T) {
	var gotPath string
	var gotReq CallRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(CallResponse{CallID: "call-123"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	callID, err := client.Dispatch(constants.BotMorning, testSettings())
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if callID != "call-123" {
		t.Errorf("callID = %q, want %q", callID, "call-123")
	}
	if gotPath != "/dispatch/morning_bot" {
		t.Errorf("path = %q, want %q", gotPath, "/dispatch/morning_bot")
	}
	if gotReq.TargetPhoneNumber != "+15550100" {
		t.Errorf("target_phone_number = %q", gotReq.TargetPhoneNumber)
	}
	if gotReq.CustomParams.FirstName != "Ada" {
		t.Errorf("first_name = %q", gotReq.CustomParams.FirstName)
	}
}

func TestDispatchUnknownBot(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	if _, err := client.Dispatch("night_bot", testSettings()); err == nil {
		t.Error("Dispatch() with unknown bot should fail")
	}
}

func TestDispatchRequiresPhone(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	settings := testSettings()
	settings.Phone = ""
	_, err := client.Dispatch(constants.BotSetup, settings)
	if err == nil {
		t.Fatal("Dispatch() without phone should fail")
	}
	if !strings.Contains(err.Error(), "phone") {
		t.Errorf("error %q should mention the missing phone number", err)
	}
}

func TestDispatchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bot unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Dispatch(constants.BotDayCall, testSettings()); err == nil {
		t.Error("Dispatch() should surface non-200 responses")
	}
}

func TestDispatchEmptyCallID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(CallResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Dispatch(constants.BotMorning, testSettings()); err == nil {
		t.Error("Dispatch() should reject an empty call id")
	}
}

func TestValidBot(t *testing.T) {
	for _, bot := range []constants.DispatchBot{constants.BotMorning, constants.BotSetup, constants.BotDayCall} {
		if !ValidBot(bot) {
			t.Errorf("ValidBot(%s) = false, want true", bot)
		}
	}
	if ValidBot("random_bot") {
		t.Error("ValidBot(random_bot) = true, want false")
	}
}
