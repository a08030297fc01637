package breaks

import "time"

// EventKind is the break event type reported by the device. The wire values
// ("iniciada" / "finalizada") are kept as-is, both in the DB and in API
// responses, to stay compatible with the device firmware and the dashboard.
type EventKind string

const (
	EventKindStarted  EventKind = "iniciada"
	EventKindFinished EventKind = "finalizada"
)

func (k EventKind) String() string {
	return string(k)
}

func (k EventKind) IsValid() bool {
	switch k {
	case EventKindStarted, EventKindFinished:
		return true
	default:
		return false
	}
}

// BreakEvent is a single break start/finish record, as persisted in the
// pausas table. Timestamp is assigned at ingestion time, not taken from the
// device. Duration fields are set together on finish events only; the
// remaining device-reported fields are optional.
type BreakEvent struct {
	ID             int64     `json:"id"`
	Tipo           EventKind `json:"tipo"`
	Timestamp      time.Time `json:"timestamp"`
	DuracaoMs      *int64    `json:"duracaoMs"`
	DuracaoSeg     *int64    `json:"duracaoSeg"`
	PausaNumero    *int      `json:"pausaNumero"`
	PausasHoje     *int      `json:"pausasHoje"`
	MetaDiaria     *int      `json:"metaDiaria"`
	UsuarioID      string    `json:"usuarioId"`
	Dispositivo    string    `json:"dispositivo"`
	DadosOriginais string    `json:"dadosOriginais"`
}

// StartOfDay returns local midnight of the day t falls into. Day-boundary
// queries treat that instant as inclusive (timestamp >= start of day).
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
