package mqttclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abreak-iot/backend/internal/telemetry/metrics"
	"github.com/abreak-iot/backend/internal/telemetry/tracing"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	publishQoS     = byte(1)
	publishTimeout = 5 * time.Second
)

type configPayload struct {
	MetaDiaria int `json:"meta_diaria"`
}

// ConfigPublisher pushes config updates back to the device over the config
// topic.
type ConfigPublisher struct {
	client         mqtt.Client
	topic          string
	metricsManager *metrics.Manager
}

func NewConfigPublisher(client mqtt.Client, topic string, metricsManager *metrics.Manager) *ConfigPublisher {
	return &ConfigPublisher{
		client:         client,
		topic:          topic,
		metricsManager: metricsManager,
	}
}

func (p *ConfigPublisher) PublishDailyGoal(ctx context.Context, dailyGoal int) error {
	_, span := tracing.GlobalTracer.Start(ctx, "configPublisher.publishDailyGoal")
	defer span.End()

	payload, err := json.Marshal(configPayload{MetaDiaria: dailyGoal})
	if err != nil {
		return fmt.Errorf("marshal config payload: %w", err)
	}

	token := p.client.Publish(p.topic, publishQoS, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish daily goal to %s: timeout", p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish daily goal to %s: %w", p.topic, err)
	}

	p.metricsManager.CounterConfigPublished.Inc()
	return nil
}
