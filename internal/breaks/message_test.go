package breaks_test

import (
	"testing"
	"time"

	"github.com/abreak-iot/backend/internal/breaks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBreakMessage_started(t *testing.T) {
	payload := []byte(`{"tipo":"iniciada","pausa_numero":1,"pausas_hoje":0,"meta_diaria":8,"usuario_id":"u1","dispositivo":"esp32-a"}`)
	receivedAt := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)

	event, err := breaks.ParseBreakMessage(payload, receivedAt)
	require.NoError(t, err)

	assert.Equal(t, breaks.EventKindStarted, event.Tipo)
	assert.Equal(t, receivedAt, event.Timestamp)
	assert.Equal(t, "u1", event.UsuarioID)
	assert.Equal(t, "esp32-a", event.Dispositivo)
	require.NotNil(t, event.PausaNumero)
	assert.Equal(t, 1, *event.PausaNumero)
	require.NotNil(t, event.PausasHoje)
	assert.Equal(t, 0, *event.PausasHoje)
	require.NotNil(t, event.MetaDiaria)
	assert.Equal(t, 8, *event.MetaDiaria)
	assert.Nil(t, event.DuracaoMs)
	assert.Nil(t, event.DuracaoSeg)
	assert.Equal(t, string(payload), event.DadosOriginais)
}

func TestParseBreakMessage_finishedWithDuration(t *testing.T) {
	payload := []byte(`{"tipo":"finalizada","pausa_numero":2,"pausas_hoje":2,"meta_diaria":8,"usuario_id":"u1","dispositivo":"esp32-a","duracao_ms":65000,"duracao_seg":65}`)

	event, err := breaks.ParseBreakMessage(payload, time.Now())
	require.NoError(t, err)

	assert.Equal(t, breaks.EventKindFinished, event.Tipo)
	require.NotNil(t, event.DuracaoMs)
	assert.Equal(t, int64(65000), *event.DuracaoMs)
	require.NotNil(t, event.DuracaoSeg)
	assert.Equal(t, int64(65), *event.DuracaoSeg)
}

func TestParseBreakMessage_partialDurationIsDropped(t *testing.T) {
	// only duracao_ms reported - the pair is left unset, the event survives
	payload := []byte(`{"tipo":"finalizada","usuario_id":"u1","dispositivo":"esp32-a","duracao_ms":65000}`)

	event, err := breaks.ParseBreakMessage(payload, time.Now())
	require.NoError(t, err)

	assert.Nil(t, event.DuracaoMs)
	assert.Nil(t, event.DuracaoSeg)
}

func TestParseBreakMessage_invalid(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{
			name:    "unknown tipo",
			payload: `{"tipo":"pausada","usuario_id":"u1","dispositivo":"esp32-a"}`,
		},
		{
			name:    "missing tipo",
			payload: `{"usuario_id":"u1","dispositivo":"esp32-a"}`,
		},
		{
			name:    "missing usuario_id",
			payload: `{"tipo":"iniciada","dispositivo":"esp32-a"}`,
		},
		{
			name:    "missing dispositivo",
			payload: `{"tipo":"iniciada","usuario_id":"u1"}`,
		},
		{
			name:    "malformed json",
			payload: `{"tipo":"iniciada",`,
		},
		{
			name:    "empty payload",
			payload: ``,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := breaks.ParseBreakMessage([]byte(tc.payload), time.Now())
			assert.Nil(t, event)
			assert.Error(t, err)
		})
	}
}

func TestParseStatusMessage(t *testing.T) {
	status, err := breaks.ParseStatusMessage([]byte(`{"evento":"dispositivo_ligado","pausas_hoje":3}`))
	require.NoError(t, err)
	assert.Equal(t, "dispositivo_ligado", status.Evento)
	assert.Equal(t, 3, status.PausasHoje)

	_, err = breaks.ParseStatusMessage([]byte(`not-json`))
	assert.Error(t, err)
}

func TestParseAlertMessage(t *testing.T) {
	alert, err := breaks.ParseAlertMessage([]byte(`{"tipo_alerta":"inatividade","mensagem":"sem pausas há 2 horas"}`))
	require.NoError(t, err)
	assert.Equal(t, "inatividade", alert.TipoAlerta)
	assert.Equal(t, "sem pausas há 2 horas", alert.Mensagem)

	_, err = breaks.ParseAlertMessage([]byte(`{`))
	assert.Error(t, err)
}

func TestEventKind(t *testing.T) {
	assert.True(t, breaks.EventKindStarted.IsValid())
	assert.True(t, breaks.EventKindFinished.IsValid())
	assert.False(t, breaks.EventKind("pausada").IsValid())
	assert.False(t, breaks.EventKind("").IsValid())
	assert.Equal(t, "iniciada", breaks.EventKindStarted.String())
	assert.Equal(t, "finalizada", breaks.EventKindFinished.String())
}
