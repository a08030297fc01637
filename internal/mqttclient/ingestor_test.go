package mqttclient

import (
	"context"
	"sync"
	"testing"

	"github.com/abreak-iot/backend/internal/breaks"
	"github.com/abreak-iot/backend/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	mutex  sync.Mutex
	events []breaks.BreakEvent
	addErr error
}

func (r *repoMock) Add(_ context.Context, event breaks.BreakEvent) (*breaks.BreakEvent, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.addErr != nil {
		return nil, r.addErr
	}
	event.ID = int64(len(r.events) + 1)
	r.events = append(r.events, event)
	return &event, nil
}

func newTestIngestor(repo *repoMock) (*Ingestor, *metrics.Manager) {
	m := metrics.NewTestManager()
	return NewIngestor(repo, m, "abreak/pausas", "abreak/status", "abreak/alertas"), m
}

func TestIngestor_Subscribe(t *testing.T) {
	ingestor, _ := newTestIngestor(&repoMock{})
	client := newClientMock()

	require.NoError(t, ingestor.Subscribe(client))

	assert.Len(t, client.subscriptions, 3)
	for _, topic := range ingestor.Topics() {
		assert.Contains(t, client.subscriptions, topic)
	}
}

func TestIngestor_Subscribe_error(t *testing.T) {
	ingestor, _ := newTestIngestor(&repoMock{})
	client := newClientMock()
	client.subscribeErr = assert.AnError

	err := ingestor.Subscribe(client)
	require.Error(t, err)
	assert.Empty(t, client.subscriptions)
}

func TestIngestor_handleBreakMessage(t *testing.T) {
	repo := &repoMock{}
	ingestor, m := newTestIngestor(repo)

	payload := `{"tipo":"finalizada","pausa_numero":2,"pausas_hoje":2,"meta_diaria":8,"usuario_id":"u1","dispositivo":"esp32-a","duracao_ms":65000,"duracao_seg":65}`
	ingestor.handleBreakMessage(nil, &messageMock{
		topic:   "abreak/pausas",
		payload: []byte(payload),
	})

	require.Len(t, repo.events, 1)
	stored := repo.events[0]
	assert.Equal(t, breaks.EventKindFinished, stored.Tipo)
	assert.Equal(t, "u1", stored.UsuarioID)
	assert.Equal(t, "esp32-a", stored.Dispositivo)
	require.NotNil(t, stored.DuracaoMs)
	assert.Equal(t, int64(65000), *stored.DuracaoMs)
	assert.Equal(t, payload, stored.DadosOriginais)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterBreakEvents))
}

func TestIngestor_handleBreakMessage_invalidIsDropped(t *testing.T) {
	repo := &repoMock{}
	ingestor, m := newTestIngestor(repo)

	for _, payload := range []string{
		`not-json`,
		`{"tipo":"pausada","usuario_id":"u1","dispositivo":"esp32-a"}`,
		`{"tipo":"iniciada","dispositivo":"esp32-a"}`,
	} {
		ingestor.handleBreakMessage(nil, &messageMock{
			topic:   "abreak/pausas",
			payload: []byte(payload),
		})
	}

	assert.Empty(t, repo.events)
	dropped := m.CounterMessagesDropped.With(prometheus.Labels{"reason": "invalid"})
	assert.Equal(t, float64(3), testutil.ToFloat64(dropped))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.CounterBreakEvents))
}

func TestIngestor_handleBreakMessage_storeFailureIsDropped(t *testing.T) {
	repo := &repoMock{addErr: assert.AnError}
	ingestor, m := newTestIngestor(repo)

	ingestor.handleBreakMessage(nil, &messageMock{
		topic:   "abreak/pausas",
		payload: []byte(`{"tipo":"iniciada","usuario_id":"u1","dispositivo":"esp32-a"}`),
	})

	dropped := m.CounterMessagesDropped.With(prometheus.Labels{"reason": "store"})
	assert.Equal(t, float64(1), testutil.ToFloat64(dropped))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.CounterBreakEvents))
}

func TestIngestor_handleStatusMessage(t *testing.T) {
	ingestor, m := newTestIngestor(&repoMock{})

	ingestor.handleStatusMessage(nil, &messageMock{
		topic:   "abreak/status",
		payload: []byte(`{"evento":"dispositivo_ligado","pausas_hoje":0}`),
	})
	ingestor.handleStatusMessage(nil, &messageMock{
		topic:   "abreak/status",
		payload: []byte(`not-json`),
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterStatusMessages))
	dropped := m.CounterMessagesDropped.With(prometheus.Labels{"reason": "invalid"})
	assert.Equal(t, float64(1), testutil.ToFloat64(dropped))
}

func TestIngestor_handleAlertMessage(t *testing.T) {
	ingestor, m := newTestIngestor(&repoMock{})

	ingestor.handleAlertMessage(nil, &messageMock{
		topic:   "abreak/alertas",
		payload: []byte(`{"tipo_alerta":"inatividade","mensagem":"sem pausas há 2 horas"}`),
	})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterAlertMessages))
}
