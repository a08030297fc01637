package breaks

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingUserID   = errors.New("message missing usuario_id")
	ErrMissingDeviceID = errors.New("message missing dispositivo")
)

// BreakMessage is the inbound payload on the pausas topic.
type BreakMessage struct {
	Tipo        string `json:"tipo"`
	PausaNumero *int   `json:"pausa_numero"`
	PausasHoje  *int   `json:"pausas_hoje"`
	MetaDiaria  *int   `json:"meta_diaria"`
	UsuarioID   string `json:"usuario_id"`
	Dispositivo string `json:"dispositivo"`
	DuracaoMs   *int64 `json:"duracao_ms"`
	DuracaoSeg  *int64 `json:"duracao_seg"`
}

// StatusMessage is the inbound payload on the status topic. Status messages
// are observational only and never persisted.
type StatusMessage struct {
	Evento     string `json:"evento"`
	PausasHoje int    `json:"pausas_hoje"`
}

// AlertMessage is the inbound payload on the alertas topic. Like status
// messages, alerts are only logged.
type AlertMessage struct {
	TipoAlerta string `json:"tipo_alerta"`
	Mensagem   string `json:"mensagem"`
}

// ParseBreakMessage validates an inbound break payload and converts it into a
// BreakEvent stamped with receivedAt. Identity fields (usuario_id,
// dispositivo) and a known tipo are required; everything else is optional.
// The duration is kept only when the device reported both the millisecond and
// the second value - a half-reported duration does not fail the event, the
// pair is simply left unset.
func ParseBreakMessage(payload []byte, receivedAt time.Time) (*BreakEvent, error) {
	var msg BreakMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal break message: %w", err)
	}

	kind := EventKind(msg.Tipo)
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown break event tipo: %q", msg.Tipo)
	}
	if msg.UsuarioID == "" {
		return nil, ErrMissingUserID
	}
	if msg.Dispositivo == "" {
		return nil, ErrMissingDeviceID
	}

	event := &BreakEvent{
		Tipo:           kind,
		Timestamp:      receivedAt,
		PausaNumero:    msg.PausaNumero,
		PausasHoje:     msg.PausasHoje,
		MetaDiaria:     msg.MetaDiaria,
		UsuarioID:      msg.UsuarioID,
		Dispositivo:    msg.Dispositivo,
		DadosOriginais: string(payload),
	}

	if msg.DuracaoMs != nil && msg.DuracaoSeg != nil {
		event.DuracaoMs = msg.DuracaoMs
		event.DuracaoSeg = msg.DuracaoSeg
	}

	return event, nil
}

func ParseStatusMessage(payload []byte) (*StatusMessage, error) {
	var msg StatusMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal status message: %w", err)
	}
	return &msg, nil
}

func ParseAlertMessage(payload []byte) (*AlertMessage, error) {
	var msg AlertMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal alert message: %w", err)
	}
	return &msg, nil
}
