package notification

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/tanishpoddar/GreenVision/internal/properties"
)

func TestSendDiscordErrorNotification(t *testing.T) {
	var received DiscordMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("expected valid JSON payload, got %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	os.Setenv("DISCORD_ERROR_NOTIFICATION_URL", server.URL)
	defer os.Unsetenv("DISCORD_ERROR_NOTIFICATION_URL")
	if err := properties.Load(); err != nil {
		t.Fatalf("expected no error loading properties, got %v", err)
	}

	if err := SendDiscordErrorNotification("raster decode failed"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(received.Embeds) != 1 {
		t.Fatalf("expected 1 embed, got %d", len(received.Embeds))
	}
	embed := received.Embeds[0]
	if embed.Color != 16711680 {
		t.Errorf("expected red embed, got color %d", embed.Color)
	}
	if !strings.Contains(embed.Description, "raster decode failed") {
		t.Errorf("expected description to carry the error, got %q", embed.Description)
	}
}

func TestSendDiscordSuccessNotification(t *testing.T) {
	var received DiscordMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("expected valid JSON payload, got %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	os.Setenv("DISCORD_SUCCESS_NOTIFICATION_URL", server.URL)
	defer os.Unsetenv("DISCORD_SUCCESS_NOTIFICATION_URL")
	if err := properties.Load(); err != nil {
		t.Fatalf("expected no error loading properties, got %v", err)
	}

	if err := SendDiscordSuccessNotification("analysis finished"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(received.Embeds) != 1 {
		t.Fatalf("expected 1 embed, got %d", len(received.Embeds))
	}
	if received.Embeds[0].Color != 65280 {
		t.Errorf("expected green embed, got color %d", received.Embeds[0].Color)
	}
}

func TestSendDiscordErrorNotificationRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	os.Setenv("DISCORD_ERROR_NOTIFICATION_URL", server.URL)
	defer os.Unsetenv("DISCORD_ERROR_NOTIFICATION_URL")
	if err := properties.Load(); err != nil {
		t.Fatalf("expected no error loading properties, got %v", err)
	}

	err := SendDiscordErrorNotification("anything")
	if err == nil {
		t.Fatal("expected an error for a rejected webhook call")
	}
	if !strings.Contains(err.Error(), "status code: 400") {
		t.Errorf("expected status code in error, got %v", err)
	}
}
