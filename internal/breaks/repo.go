package breaks

import (
	"context"
	"time"

	"github.com/abreak-iot/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Repo persists break events in the pausas table. Events are append-only:
// there is no update or delete path, retention is handled outside of this
// service. At-least-once MQTT redeliveries are stored as-is, without
// deduplication.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const breakEventColumns = `
	id, tipo, timestamp, duracao_ms, duracao_seg,
	pausa_numero, pausas_hoje, meta_diaria,
	usuario_id, dispositivo, dados_originais
`

func (r *Repo) Add(ctx context.Context, event BreakEvent) (_ *BreakEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.breaks.add")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("tipo", event.Tipo.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO pausas (
			tipo, timestamp, duracao_ms, duracao_seg,
			pausa_numero, pausas_hoje, meta_diaria,
			usuario_id, dispositivo, dados_originais
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		event.Tipo,
		event.Timestamp,
		event.DuracaoMs,
		event.DuracaoSeg,
		event.PausaNumero,
		event.PausasHoje,
		event.MetaDiaria,
		event.UsuarioID,
		event.Dispositivo,
		event.DadosOriginais,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *Repo) ListAll(ctx context.Context) (_ []BreakEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.breaks.listall")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+breakEventColumns+`
		FROM pausas
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBreakEvents(rows)
}

func (r *Repo) ListByUser(ctx context.Context, userID string) (_ []BreakEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.breaks.listbyuser")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("usuario.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+breakEventColumns+`
		FROM pausas
		WHERE usuario_id = $1
		ORDER BY timestamp DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBreakEvents(rows)
}

// ListByUserSince returns the user events with timestamp at or after since
// (inclusive boundary), newest first.
func (r *Repo) ListByUserSince(ctx context.Context, userID string, since time.Time) (_ []BreakEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.breaks.listbyusersince")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("usuario.id", userID))
	span.SetAttributes(attribute.String("since", since.String()))

	rows, err := r.db.Query(ctx, `
		SELECT `+breakEventColumns+`
		FROM pausas
		WHERE usuario_id = $1 AND timestamp >= $2
		ORDER BY timestamp DESC
	`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBreakEvents(rows)
}

func (r *Repo) CountFinishedSince(ctx context.Context, userID string, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.breaks.countfinishedsince")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("usuario.id", userID))

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM pausas
		WHERE usuario_id = $1 AND timestamp >= $2 AND tipo = $3
	`, userID, since, EventKindFinished).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repo) Top(ctx context.Context, n int, userID string) (_ []BreakEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.breaks.top")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("usuario.id", userID))
	span.SetAttributes(attribute.Int("n", n))

	rows, err := r.db.Query(ctx, `
		SELECT `+breakEventColumns+`
		FROM pausas
		WHERE usuario_id = $1
		ORDER BY timestamp DESC
		LIMIT $2
	`, userID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBreakEvents(rows)
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.breaks.count")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var count int
	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pausas`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func scanBreakEvents(rows pgx.Rows) ([]BreakEvent, error) {
	events := make([]BreakEvent, 0)
	for rows.Next() {
		var event BreakEvent
		if err := rows.Scan(
			&event.ID,
			&event.Tipo,
			&event.Timestamp,
			&event.DuracaoMs,
			&event.DuracaoSeg,
			&event.PausaNumero,
			&event.PausasHoje,
			&event.MetaDiaria,
			&event.UsuarioID,
			&event.Dispositivo,
			&event.DadosOriginais,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
