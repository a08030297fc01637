package breaks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/abreak-iot/backend/internal/middleware"
	"github.com/abreak-iot/backend/internal/telemetry/metrics"
	"github.com/abreak-iot/backend/internal/telemetry/tracing"
	"github.com/abreak-iot/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=breaks_test

type breaksService interface {
	ListAll(ctx context.Context) ([]BreakEvent, error)
	ListByUser(ctx context.Context, userID string) ([]BreakEvent, error)
	ListToday(ctx context.Context, userID string) ([]BreakEvent, error)
	Summary(ctx context.Context, userID string) (*Summary, error)
	Latest(ctx context.Context) ([]BreakEvent, error)
	Health(ctx context.Context) (*HealthStatus, error)
	SetDailyGoal(ctx context.Context, dailyGoal int) error
}

type SetConfigRequest struct {
	MetaDiaria *int `json:"meta_diaria"`
}

type Handler struct {
	service breaksService
}

func NewHandler(service breaksService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	configRateLimitAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	router.HandleFunc("/api/pausas", h.HandleListAll).Methods("GET", "OPTIONS").Name("list-pausas")
	router.HandleFunc("/api/pausas/ultimas", h.HandleLatest).Methods("GET", "OPTIONS").Name("latest-pausas")
	router.HandleFunc("/api/pausas/saude", h.HandleHealth).Methods("GET", "OPTIONS").Name("health")
	router.HandleFunc("/api/pausas/usuario/{usuarioId}", h.HandleListByUser).Methods("GET", "OPTIONS").Name("list-user-pausas")
	router.HandleFunc("/api/pausas/usuario/{usuarioId}/hoje", h.HandleListToday).Methods("GET", "OPTIONS").Name("list-user-pausas-today")
	router.HandleFunc("/api/pausas/usuario/{usuarioId}/resumo", h.HandleSummary).Methods("GET", "OPTIONS").Name("user-summary")

	// rate limit the config endpoint - each accepted request results in an
	// MQTT publish towards the device
	configSubrouter := router.Path("/api/pausas/config").Subrouter()
	configSubrouter.Use(middleware.RateLimit(rateLimiter, "pausas-config", configRateLimitAllowedPerMin, metricsManager))
	configSubrouter.Methods("POST", "OPTIONS").HandlerFunc(h.HandleSetConfig).Name("set-config")
}

func (h *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.breaks.listall")
	defer span.End()

	events, err := h.service.ListAll(ctx)
	if err != nil {
		log.Errorf("list all pausas: %s", err)
		http.Error(w, "failed to list pausas", http.StatusInternalServerError)
		return
	}

	h.writeEventsResponse(w, events)
}

func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.breaks.listbyuser")
	defer span.End()

	userID := mux.Vars(r)["usuarioId"]

	events, err := h.service.ListByUser(ctx, userID)
	if err != nil {
		log.Errorf("list pausas for user [%s]: %s", userID, err)
		http.Error(w, "failed to list pausas", http.StatusInternalServerError)
		return
	}

	h.writeEventsResponse(w, events)
}

func (h *Handler) HandleListToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.breaks.listtoday")
	defer span.End()

	userID := mux.Vars(r)["usuarioId"]

	events, err := h.service.ListToday(ctx, userID)
	if err != nil {
		log.Errorf("list today pausas for user [%s]: %s", userID, err)
		http.Error(w, "failed to list pausas", http.StatusInternalServerError)
		return
	}

	h.writeEventsResponse(w, events)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.breaks.summary")
	defer span.End()

	userID := mux.Vars(r)["usuarioId"]

	summary, err := h.service.Summary(ctx, userID)
	if err != nil {
		log.Errorf("summary for user [%s]: %s", userID, err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal summary: %s", err)
		http.Error(w, "failed to get summary", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.breaks.latest")
	defer span.End()

	events, err := h.service.Latest(ctx)
	if err != nil {
		log.Errorf("list latest pausas: %s", err)
		http.Error(w, "failed to list pausas", http.StatusInternalServerError)
		return
	}

	h.writeEventsResponse(w, events)
}

func (h *Handler) HandleSetConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.breaks.setconfig")
	defer span.End()

	var req SetConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set config, unmarshal json params: %s", err)
		h.writeConfigError(w, "corpo da requisição inválido")
		return
	}

	if req.MetaDiaria == nil {
		h.writeConfigError(w, ErrInvalidDailyGoal.Error())
		return
	}

	if err := h.service.SetDailyGoal(ctx, *req.MetaDiaria); err != nil {
		if errors.Is(err, ErrInvalidDailyGoal) {
			h.writeConfigError(w, err.Error())
			return
		}
		log.Errorf("set daily goal: %s", err)
		http.Error(w, "failed to set config", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(map[string]string{
		"mensagem":    "Configuração enviada com sucesso",
		"meta_diaria": strconv.Itoa(*req.MetaDiaria),
	})
	if err != nil {
		log.Errorf("marshal set config response: %s", err)
		http.Error(w, "failed to set config", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.breaks.health")
	defer span.End()

	health, err := h.service.Health(ctx)
	if err != nil {
		log.Errorf("health check: %s", err)
		http.Error(w, "health check failed", http.StatusInternalServerError)
		return
	}

	healthJson, err := json.Marshal(health)
	if err != nil {
		log.Errorf("marshal health check: %s", err)
		http.Error(w, "health check failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, healthJson)
}

func (h *Handler) writeEventsResponse(w http.ResponseWriter, events []BreakEvent) {
	eventsJson, err := json.Marshal(events)
	if err != nil {
		log.Errorf("marshal pausas: %s", err)
		http.Error(w, "failed to list pausas", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, eventsJson)
}

func (h *Handler) writeConfigError(w http.ResponseWriter, message string) {
	errJson, err := json.Marshal(map[string]string{
		"erro": message,
	})
	if err != nil {
		log.Errorf("marshal config error: %s", err)
		http.Error(w, message, http.StatusBadRequest)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, errJson, http.StatusBadRequest)
}
