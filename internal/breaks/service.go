package breaks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abreak-iot/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DailyGoalTarget is the goal used for the summary goal-met flag. The
	// device-side goal is adjustable over MQTT, but the summary always
	// reports against the default of 8 finished breaks, as the dashboard
	// expects.
	DailyGoalTarget = 8

	// DailyGoalMin / DailyGoalMax bound the configurable device goal.
	DailyGoalMin = 1
	DailyGoalMax = 20

	// DemoUserID is used for the "ultimas" endpoint. There is no session /
	// auth model, the dashboard is single-user.
	DemoUserID = "user_demo"

	latestEventsLimit = 10
)

// ErrInvalidDailyGoal is returned by SetDailyGoal for values outside of
// [DailyGoalMin, DailyGoalMax].
var ErrInvalidDailyGoal = errors.New("meta diária deve estar entre 1 e 20")

type breaksRepo interface {
	Add(ctx context.Context, event BreakEvent) (*BreakEvent, error)
	ListAll(ctx context.Context) ([]BreakEvent, error)
	ListByUser(ctx context.Context, userID string) ([]BreakEvent, error)
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]BreakEvent, error)
	CountFinishedSince(ctx context.Context, userID string, since time.Time) (int, error)
	Top(ctx context.Context, n int, userID string) ([]BreakEvent, error)
	Count(ctx context.Context) (int, error)
}

type goalPublisher interface {
	PublishDailyGoal(ctx context.Context, dailyGoal int) error
}

// Summary is the derived per-user day view. Not persisted, computed on
// demand from the event store.
type Summary struct {
	TotalPausasHoje   int          `json:"totalPausasHoje"`
	TempoTotalMinutos int64        `json:"tempoTotalMinutos"`
	MetaDiaria        int          `json:"metaDiaria"`
	MetaCumprida      bool         `json:"metaCumprida"`
	Pausas            []BreakEvent `json:"pausas"`
}

type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	TotalPausas int       `json:"totalPausas"`
}

type Service struct {
	repo         breaksRepo
	publisher    goalPublisher
	summaryCache *SummaryCache // optional

	// injected clock, so the "today" boundary is testable
	now func() time.Time
}

func NewService(repo breaksRepo, publisher goalPublisher, summaryCache *SummaryCache) *Service {
	return &Service{
		repo:         repo,
		publisher:    publisher,
		summaryCache: summaryCache,
		now:          time.Now,
	}
}

func (s *Service) ListAll(ctx context.Context) (_ []BreakEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.breaks.listall")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all break events: %w", err)
	}
	return events, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) (_ []BreakEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.breaks.listbyuser")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("usuario.id", userID))

	events, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list break events by user: %w", err)
	}
	return events, nil
}

func (s *Service) ListToday(ctx context.Context, userID string) (_ []BreakEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.breaks.listtoday")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("usuario.id", userID))

	events, err := s.repo.ListByUserSince(ctx, userID, StartOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("list today break events: %w", err)
	}
	return events, nil
}

func (s *Service) Summary(ctx context.Context, userID string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.breaks.summary")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("usuario.id", userID))

	if s.summaryCache != nil {
		if summary, found := s.summaryCache.Get(ctx, userID); found {
			span.SetAttributes(attribute.Bool("summary.from-cache", true))
			return summary, nil
		}
	}

	startOfDay := StartOfDay(s.now())

	totalToday, err := s.repo.CountFinishedSince(ctx, userID, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("count finished breaks: %w", err)
	}

	todayEvents, err := s.repo.ListByUserSince(ctx, userID, startOfDay)
	if err != nil {
		return nil, fmt.Errorf("list today break events: %w", err)
	}

	var totalPausedMs int64
	for _, event := range todayEvents {
		if event.DuracaoMs != nil {
			totalPausedMs += *event.DuracaoMs
		}
	}

	summary := &Summary{
		TotalPausasHoje:   totalToday,
		TempoTotalMinutos: totalPausedMs / 60000,
		MetaDiaria:        DailyGoalTarget,
		MetaCumprida:      totalToday >= DailyGoalTarget,
		Pausas:            todayEvents,
	}

	if s.summaryCache != nil {
		s.summaryCache.Set(ctx, userID, summary)
	}

	return summary, nil
}

func (s *Service) Latest(ctx context.Context) (_ []BreakEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.breaks.latest")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	events, err := s.repo.Top(ctx, latestEventsLimit, DemoUserID)
	if err != nil {
		return nil, fmt.Errorf("list latest break events: %w", err)
	}
	return events, nil
}

func (s *Service) Health(ctx context.Context) (_ *HealthStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.breaks.health")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count break events: %w", err)
	}

	return &HealthStatus{
		Status:      "OK",
		Timestamp:   s.now(),
		TotalPausas: count,
	}, nil
}

// SetDailyGoal validates the goal and forwards it to the device over the
// config topic. The publish is fire-and-forget towards the caller: a failed
// publish is logged, the accepted value is still acknowledged.
func (s *Service) SetDailyGoal(ctx context.Context, dailyGoal int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.breaks.setdailygoal")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.Int("meta.diaria", dailyGoal))

	if dailyGoal < DailyGoalMin || dailyGoal > DailyGoalMax {
		return ErrInvalidDailyGoal
	}

	if err := s.publisher.PublishDailyGoal(ctx, dailyGoal); err != nil {
		log.Errorf("publish daily goal config: %s", err)
	}

	return nil
}
