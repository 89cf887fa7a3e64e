package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"pillpal/models"

	"go.uber.org/zap"
)

// providerTimeout bounds one push call. Exceeding it is reported as
// provider-unavailable, never as a failure of the triggering operation.
const providerTimeout = 10 * time.Second

// RestPushService delivers pushes through a OneSignal-style REST endpoint.
// An empty APIKey disables dispatch entirely.
type RestPushService struct {
	AppID   string
	APIKey  string
	BaseURL string
	Logger  *zap.Logger

	client *http.Client
}

func NewRestPushService(appID, apiKey, baseURL string, logger *zap.Logger) *RestPushService {
	return &RestPushService{
		AppID:   appID,
		APIKey:  apiKey,
		BaseURL: baseURL,
		Logger:  logger,
		client:  &http.Client{Timeout: providerTimeout},
	}
}

type providerPayload struct {
	AppID            string            `json:"app_id"`
	IncludePlayerIDs []string          `json:"include_player_ids"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
	Data             map[string]string `json:"data,omitempty"`
}

// Send posts the notification to the provider. All failure modes are folded
// into the returned outcome; callers treat every outcome as final.
func (s *RestPushService) Send(ctx context.Context, note models.PushNotification) DeliveryOutcome {
	if s.AppID == "" || s.APIKey == "" {
		s.Logger.Info("push dispatch disabled: provider credentials not configured")
		return OutcomeDisabled
	}
	if note.RecipientExternalID == "" {
		s.Logger.Info("push dispatch skipped: recipient has no push identity")
		return OutcomeSkipped
	}

	payload := providerPayload{
		AppID:            s.AppID,
		IncludePlayerIDs: []string{note.RecipientExternalID},
		Headings:         map[string]string{"en": note.Heading},
		Contents:         map[string]string{"en": note.Body},
		Data:             note.Data,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		s.Logger.Error("push dispatch: failed to encode payload", zap.Error(err))
		return OutcomeProviderError
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/notifications", bytes.NewReader(body))
	if err != nil {
		s.Logger.Error("push dispatch: failed to build request", zap.Error(err))
		return OutcomeProviderError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+s.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.Logger.Warn("push dispatch: provider unreachable", zap.Error(err))
		return OutcomeProviderUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.Logger.Warn("push dispatch: provider rejected notification",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail),
		)
		return OutcomeProviderError
	}

	s.Logger.Info("push dispatched",
		zap.String("recipient", note.RecipientExternalID),
		zap.String("heading", note.Heading),
	)
	return OutcomeSent
}
