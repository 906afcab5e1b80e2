// ingest.go - MQTT ingestion of sensor-published pollution readings
//
// Sensor stations publish JSON readings on a topic; the ingestor validates
// them with the same boundary rules as the HTTP API and stores them with no
// owner (NULL user id). A duplicate (city, recordedAt) publish — retained
// messages, station retries — is dropped with a warning.

package ingest

import (
	"context"
	"encoding/json"
	"log/slog"

	mqtt "github.com/eclipse/paho.mqtt.golang" // MQTT client

	"go-pollution-backend/apperrors"
	"go-pollution-backend/repository"
)

// Ingestor stores readings arriving from the MQTT broker.
type Ingestor struct {
	Readings *repository.Readings
}

// Connect dials the broker and subscribes to the readings topic. The
// returned client should be disconnected on shutdown.
func (i *Ingestor) Connect(brokerURL, topic string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID("pollution-backend-ingest").
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	token := client.Subscribe(topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		i.handlePayload(context.Background(), msg.Payload())
	})
	if token.Wait() && token.Error() != nil {
		client.Disconnect(250)
		return nil, token.Error()
	}

	slog.Info("mqtt ingest subscribed", "broker", brokerURL, "topic", topic)
	return client, nil
}

// handlePayload decodes, validates and stores one published reading.
// Failures are logged and dropped; a broker message cannot be answered.
func (i *Ingestor) handlePayload(ctx context.Context, payload []byte) {
	var input repository.ReadingInput
	if err := json.Unmarshal(payload, &input); err != nil {
		slog.Warn("mqtt ingest: malformed payload", "error", err)
		return
	}

	if _, err := i.Readings.Create(ctx, &input, nil); err != nil {
		switch apperrors.KindOf(err) {
		case apperrors.KindConflict:
			slog.Warn("mqtt ingest: duplicate reading dropped", "city", input.City)
		case apperrors.KindValidation:
			slog.Warn("mqtt ingest: invalid reading dropped", "city", input.City, "error", err)
		default:
			slog.Error("mqtt ingest: store failed", "error", err)
		}
		return
	}

	slog.Info("mqtt ingest: reading stored", "city", input.City)
}
