package mqttclient

import (
	"context"
	"fmt"
	"time"

	"github.com/abreak-iot/backend/internal/breaks"
	"github.com/abreak-iot/backend/internal/telemetry/metrics"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	subscribeQoS     = byte(1)
	subscribeTimeout = 10 * time.Second
	storeTimeout     = 5 * time.Second

	dropReasonInvalid = "invalid"
	dropReasonStore   = "store"
)

type eventsRepo interface {
	Add(ctx context.Context, event breaks.BreakEvent) (*breaks.BreakEvent, error)
}

// Ingestor consumes the three device topics. Break events end up in the
// store, status and alert messages are counted and logged only.
type Ingestor struct {
	repo           eventsRepo
	metricsManager *metrics.Manager

	topicPausas  string
	topicStatus  string
	topicAlertas string
}

func NewIngestor(
	repo eventsRepo,
	metricsManager *metrics.Manager,
	topicPausas, topicStatus, topicAlertas string,
) *Ingestor {
	return &Ingestor{
		repo:           repo,
		metricsManager: metricsManager,
		topicPausas:    topicPausas,
		topicStatus:    topicStatus,
		topicAlertas:   topicAlertas,
	}
}

func (i *Ingestor) Topics() []string {
	return []string{i.topicPausas, i.topicStatus, i.topicAlertas}
}

func (i *Ingestor) Subscribe(client mqtt.Client) error {
	subscriptions := []struct {
		topic   string
		handler mqtt.MessageHandler
	}{
		{i.topicPausas, i.handleBreakMessage},
		{i.topicStatus, i.handleStatusMessage},
		{i.topicAlertas, i.handleAlertMessage},
	}

	var errs error
	for _, sub := range subscriptions {
		token := client.Subscribe(sub.topic, subscribeQoS, sub.handler)
		if !token.WaitTimeout(subscribeTimeout) {
			errs = multierr.Append(errs, fmt.Errorf("subscribe to %s: timeout", sub.topic))
			continue
		}
		if err := token.Error(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("subscribe to %s: %w", sub.topic, err))
			continue
		}
		log.Debugf("mqtt subscribed to %s", sub.topic)
	}
	return errs
}

func (i *Ingestor) handleBreakMessage(_ mqtt.Client, msg mqtt.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("handle break message: panic: %v", r)
		}
	}()

	start := time.Now()
	defer func() {
		i.metricsManager.HistMessageHandlingDuration.Observe(time.Since(start).Seconds())
	}()

	event, err := breaks.ParseBreakMessage(msg.Payload(), time.Now())
	if err != nil {
		i.metricsManager.CounterMessagesDropped.
			With(prometheus.Labels{"reason": dropReasonInvalid}).Inc()
		log.Errorf("drop break message on [%s]: %s", msg.Topic(), err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	added, err := i.repo.Add(ctx, *event)
	if err != nil {
		i.metricsManager.CounterMessagesDropped.
			With(prometheus.Labels{"reason": dropReasonStore}).Inc()
		log.Errorf("store break event [%s, %s]: %s", event.Tipo, event.UsuarioID, err)
		return
	}

	i.metricsManager.CounterBreakEvents.Inc()
	log.Debugf("break event [%d] stored: %s from %s", added.ID, added.Tipo, added.UsuarioID)
}

func (i *Ingestor) handleStatusMessage(_ mqtt.Client, msg mqtt.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("handle status message: panic: %v", r)
		}
	}()

	status, err := breaks.ParseStatusMessage(msg.Payload())
	if err != nil {
		i.metricsManager.CounterMessagesDropped.
			With(prometheus.Labels{"reason": dropReasonInvalid}).Inc()
		log.Errorf("drop status message on [%s]: %s", msg.Topic(), err)
		return
	}

	i.metricsManager.CounterStatusMessages.Inc()
	log.Infof("device status: %s, pausas hoje %d", status.Evento, status.PausasHoje)
}

func (i *Ingestor) handleAlertMessage(_ mqtt.Client, msg mqtt.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("handle alert message: panic: %v", r)
		}
	}()

	alert, err := breaks.ParseAlertMessage(msg.Payload())
	if err != nil {
		i.metricsManager.CounterMessagesDropped.
			With(prometheus.Labels{"reason": dropReasonInvalid}).Inc()
		log.Errorf("drop alert message on [%s]: %s", msg.Topic(), err)
		return
	}

	i.metricsManager.CounterAlertMessages.Inc()
	log.Warnf("device alert [%s]: %s", alert.TipoAlerta, alert.Mensagem)
}
