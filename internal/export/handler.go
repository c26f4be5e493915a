package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/disciplinedaf/backend/internal/middleware"
	"github.com/disciplinedaf/backend/internal/telemetry/metrics"
	"github.com/disciplinedaf/backend/internal/telemetry/tracing"
	"github.com/disciplinedaf/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	serializer     *Serializer
	metricsManager *metrics.Manager

	// NowFunc feeds the timestamp in the download filename, swappable in tests.
	NowFunc func() time.Time
}

func NewHandler(serializer *Serializer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		serializer:     serializer,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	exportRouter := mainRouter.PathPrefix("/api/export").Subrouter()
	exportRouter.HandleFunc("/download", handler.HandleDownload).Methods("GET", "OPTIONS").Name("export-download")
}

func (handler *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.export.download")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exportType, err := ParseType(r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, "error, unknown export type", http.StatusBadRequest)
		return
	}

	from, err := parseOptionalDate(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "error, invalid from date", http.StatusBadRequest)
		return
	}
	to, err := parseOptionalDate(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "error, invalid to date", http.StatusBadRequest)
		return
	}

	filename := fmt.Sprintf(
		"diciplinedaf_export_%s_%d.csv",
		exportType, handler.NowFunc().UnixMilli(),
	)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Type", pkg.ContentType.CSV)

	cw := NewCSVWriter(w)
	if err := handler.serializer.Write(ctx, cw, userID, exportType, from, to); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debugf("export for user %d aborted, client gone", userID)
			return
		}
		log.Errorf("export for user %d: %s", userID, err)
		if cw.Started() {
			// headers and partial body are committed, just cut the stream
			return
		}
		w.Header().Del("Content-Disposition")
		w.Header().Del("Content-Type")
		pkg.WriteJSONError(w, "export failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterExports.Inc()

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
