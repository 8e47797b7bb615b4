package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-clinic/internal/config"
	"go-clinic/pkg/utils"

	"github.com/google/uuid"
)

// Notifier delivers the outbound booking notification.
type Notifier interface {
	Notify(ctx context.Context, appt *Appointment) error
}

// NotificationPayload is the webhook body posted on appointment creation.
type NotificationPayload struct {
	AppointmentID string    `json:"appointmentId"`
	DeliveryID    string    `json:"deliveryId"`
	Nome          string    `json:"nome"`
	Telefone      string    `json:"telefone"` // normalized, +55 prefixed
	Cidade        string    `json:"cidade"`
	Data          string    `json:"data"`
	Horario       string    `json:"horario"`
	Medico        string    `json:"medico,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// WebhookNotifier posts the payload to the configured URL. A nil is returned
// from the constructor when no URL is configured, which disables delivery.
type WebhookNotifier struct {
	URL        string
	HttpClient *http.Client
}

func NewWebhookNotifier(cfg *config.Config) Notifier {
	if cfg.WebhookURL == "" {
		return nil
	}
	return &WebhookNotifier{
		URL: cfg.WebhookURL,
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, appt *Appointment) error {
	payload := NotificationPayload{
		AppointmentID: appt.ID.Hex(),
		DeliveryID:    uuid.NewString(),
		Nome:          appt.Nome,
		Telefone:      utils.NormalizePhone(appt.Telefone),
		Cidade:        appt.Cidade,
		Data:          appt.Data,
		Horario:       appt.Horario,
		Medico:        appt.Medico,
		Timestamp:     time.Now(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Go-Clinic-Webhook")

	resp, err := n.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
