package progress

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/disciplinedaf/backend/internal/middleware"
	"github.com/disciplinedaf/backend/internal/telemetry/tracing"
	"github.com/disciplinedaf/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=stats_handler_mocks_test.go -package=progress_test

type progressAnalyzer interface {
	ExerciseTrend(ctx context.Context, userID int, exerciseName string, rng DateRange) (*Trend, error)
	ExercisePRs(ctx context.Context, userID int, exerciseName string) (*PersonalRecords, error)
	Summary(ctx context.Context, userID int, rng DateRange) (*Summary, error)
}

// StatsHandler exposes the aggregation queries as JSON endpoints.
type StatsHandler struct {
	analyzer progressAnalyzer

	// NowFunc is the clock used for default date ranges, swappable in tests.
	NowFunc func() time.Time
}

func NewStatsHandler(analyzer progressAnalyzer) *StatsHandler {
	return &StatsHandler{
		analyzer: analyzer,
		NowFunc:  time.Now,
	}
}

func (handler *StatsHandler) SetupRoutes(mainRouter *mux.Router) {
	metricsRouter := mainRouter.PathPrefix("/api/metrics").Subrouter()
	metricsRouter.HandleFunc("/exercise/{exerciseName}/trends", handler.HandleTrends).Methods("GET", "OPTIONS").Name("exercise-trends")
	metricsRouter.HandleFunc("/exercise/{exerciseName}/prs", handler.HandlePRs).Methods("GET", "OPTIONS").Name("exercise-prs")
	metricsRouter.HandleFunc("/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("progress-summary")
}

func (handler *StatsHandler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.trends")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseName := mux.Vars(r)["exerciseName"]
	rng := ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"), handler.NowFunc())

	trend, err := handler.analyzer.ExerciseTrend(ctx, userID, exerciseName, rng)
	if err != nil {
		log.Errorf("exercise trend [%s] for user %d: %s", exerciseName, userID, err)
		http.Error(w, "get exercise trend failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(trend)
	if err != nil {
		log.Errorf("exercise trend, marshal response: %s", err)
		http.Error(w, "get exercise trend failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *StatsHandler) HandlePRs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.prs")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseName := mux.Vars(r)["exerciseName"]

	records, err := handler.analyzer.ExercisePRs(ctx, userID, exerciseName)
	if err != nil {
		log.Errorf("exercise prs [%s] for user %d: %s", exerciseName, userID, err)
		http.Error(w, "get exercise prs failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("exercise prs, marshal response: %s", err)
		http.Error(w, "get exercise prs failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *StatsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	rng := ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"), handler.NowFunc())

	summary, err := handler.analyzer.Summary(ctx, userID, rng)
	if err != nil {
		log.Errorf("progress summary for user %d: %s", userID, err)
		http.Error(w, "get progress summary failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("progress summary, marshal response: %s", err)
		http.Error(w, "get progress summary failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
