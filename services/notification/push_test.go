package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pillpal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func testNote() models.PushNotification {
	return models.PushNotification{
		RecipientExternalID: "player-bob",
		Heading:             "Alice",
		Body:                "Time for your evening dose!",
		Data:                map[string]string{"type": "friend_reminder"},
	}
}

func TestSend_DisabledWithoutCredentials(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewRestPushService("", "", srv.URL, zap.NewNop())
	outcome := svc.Send(context.Background(), testNote())

	assert.Equal(t, OutcomeDisabled, outcome)
	assert.False(t, called, "disabled dispatch must not call the provider")
}

func TestSend_SkippedWithoutRecipientIdentity(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewRestPushService("app-1", "key-1", srv.URL, zap.NewNop())
	note := testNote()
	note.RecipientExternalID = ""
	outcome := svc.Send(context.Background(), note)

	assert.Equal(t, OutcomeSkipped, outcome)
	assert.False(t, called)
}

func TestSend_PostsProviderPayload(t *testing.T) {
	var got providerPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewRestPushService("app-1", "key-1", srv.URL, zap.NewNop())
	outcome := svc.Send(context.Background(), testNote())

	assert.Equal(t, OutcomeSent, outcome)
	assert.Equal(t, "Basic key-1", auth)
	assert.Equal(t, "app-1", got.AppID)
	assert.Equal(t, []string{"player-bob"}, got.IncludePlayerIDs)
	assert.Equal(t, "Alice", got.Headings["en"])
	assert.Equal(t, "Time for your evening dose!", got.Contents["en"])
	assert.Equal(t, "friend_reminder", got.Data["type"])
}

func TestSend_NonSuccessResponseIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":["invalid player id"]}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	svc := NewRestPushService("app-1", "key-1", srv.URL, zap.NewNop())
	outcome := svc.Send(context.Background(), testNote())

	assert.Equal(t, OutcomeProviderError, outcome)
}

func TestSend_UnreachableProviderIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	svc := NewRestPushService("app-1", "key-1", url, zap.NewNop())
	outcome := svc.Send(context.Background(), testNote())

	assert.Equal(t, OutcomeProviderUnavailable, outcome)
}
