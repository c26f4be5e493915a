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

//go:generate mockgen -source=$GOFILE -destination=entries_handler_mocks_test.go -package=progress_test

type entriesRepo interface {
	AddEntry(ctx context.Context, userID int, params AddEntryParams) (*Entry, error)
	ListEntries(ctx context.Context, userID int, from, to *time.Time) ([]Entry, error)
}

type AddEntryRequest struct {
	Date         string             `json:"date"`
	Weight       *float64           `json:"weight"`
	Bodyfat      *float64           `json:"bodyfat"`
	Measurements map[string]float64 `json:"measurements"`
	PhotoURL     *string            `json:"photo_url"`
	Notes        *string            `json:"notes"`
}

type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
	Count   int     `json:"count"`
}

// EntriesHandler exposes the body-progress snapshot endpoints.
type EntriesHandler struct {
	repo entriesRepo
}

func NewEntriesHandler(repo entriesRepo) *EntriesHandler {
	return &EntriesHandler{
		repo: repo,
	}
}

func (handler *EntriesHandler) SetupRoutes(mainRouter *mux.Router) {
	progressRouter := mainRouter.PathPrefix("/api/progress").Subrouter()
	progressRouter.HandleFunc("/add", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-progress")
	progressRouter.HandleFunc("/list", handler.HandleList).Methods("GET", "OPTIONS").Name("list-progress")
}

func (handler *EntriesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.add")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var addReq AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Errorf("add progress, unmarshal json params: %s", err)
		http.Error(w, "add progress entry failed", http.StatusBadRequest)
		return
	}

	if addReq.Date == "" {
		http.Error(w, "error, date is required", http.StatusBadRequest)
		return
	}
	date, err := time.Parse("2006-01-02", addReq.Date)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.AddEntry(ctx, userID, AddEntryParams{
		Date:         date,
		Weight:       addReq.Weight,
		Bodyfat:      addReq.Bodyfat,
		Measurements: addReq.Measurements,
		PhotoURL:     addReq.PhotoURL,
		Notes:        addReq.Notes,
	})
	if err != nil {
		log.Errorf("add progress entry for user %d: %s", userID, err)
		http.Error(w, "add progress entry failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("add progress entry, marshal response: %s", err)
		http.Error(w, "add progress entry failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *EntriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
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

	entries, err := handler.repo.ListEntries(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list progress entries for user %d: %s", userID, err)
		http.Error(w, "list progress entries failed", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []Entry{}
	}

	respJson, err := json.Marshal(ListEntriesResponse{
		Entries: entries,
		Count:   len(entries),
	})
	if err != nil {
		log.Errorf("list progress entries, marshal response: %s", err)
		http.Error(w, "list progress entries failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
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
