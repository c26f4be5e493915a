package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/disciplinedaf/backend/internal/middleware"
	"github.com/disciplinedaf/backend/internal/telemetry/tracing"
	"github.com/disciplinedaf/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracking_test

type trackingRepo interface {
	LatestForDate(ctx context.Context, userID int, date time.Time) (*Entry, error)
	Create(ctx context.Context, userID int, params EntryParams) (*Entry, error)
	Update(ctx context.Context, userID, entryID int, params EntryParams) (*Entry, error)
	History(ctx context.Context, userID int, from, to *time.Time) ([]Entry, error)
}

type EntryRequest struct {
	Date       string   `json:"date"`
	Calories   *float64 `json:"calories"`
	Protein    *float64 `json:"protein"`
	Carbs      *float64 `json:"carbs"`
	Fats       *float64 `json:"fats"`
	SleepHours *float64 `json:"sleep_hours"`
	Steps      *int     `json:"steps"`
	Notes      *string  `json:"notes"`
}

type HistoryResponse struct {
	Tracking []Entry `json:"tracking"`
	Count    int     `json:"count"`
}

type Handler struct {
	repo trackingRepo
}

func NewHandler(repo trackingRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	trackingRouter := mainRouter.PathPrefix("/api/tracking").Subrouter()
	trackingRouter.HandleFunc("/daily", handler.HandleGetDaily).Methods("GET", "OPTIONS").Name("get-daily")
	trackingRouter.HandleFunc("/daily", handler.HandleCreateDaily).Methods("POST", "OPTIONS").Name("create-daily")
	trackingRouter.HandleFunc("/daily/{id}", handler.HandleUpdateDaily).Methods("PUT", "OPTIONS").Name("update-daily")
	trackingRouter.HandleFunc("/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("tracking-history")
}

func (handler *Handler) HandleGetDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.getDaily")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		http.Error(w, "error, date required [YYYY-MM-DD]", http.StatusBadRequest)
		return
	}
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.LatestForDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "no tracking data found for this date", http.StatusNotFound)
			return
		}
		log.Errorf("get daily tracking for user %d: %s", userID, err)
		http.Error(w, "get tracking data failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("get daily tracking, marshal response: %s", err)
		http.Error(w, "get tracking data failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleCreateDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.createDaily")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params, err := decodeEntryParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.Create(ctx, userID, *params)
	if err != nil {
		log.Errorf("create daily tracking for user %d: %s", userID, err)
		http.Error(w, "save tracking data failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("create daily tracking, marshal response: %s", err)
		http.Error(w, "save tracking data failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.updateDaily")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, tracking id invalid", http.StatusBadRequest)
		return
	}

	params, err := decodeEntryParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.Update(ctx, userID, entryID, *params)
	if err != nil {
		switch {
		case errors.Is(err, ErrEntryNotFound):
			http.Error(w, "tracking data not found", http.StatusNotFound)
		case errors.Is(err, ErrNotOwner):
			http.Error(w, "no can do", http.StatusForbidden)
		default:
			log.Errorf("update daily tracking %d: %s", entryID, err)
			http.Error(w, "update tracking data failed", http.StatusInternalServerError)
		}
		return
	}

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("update daily tracking, marshal response: %s", err)
		http.Error(w, "update tracking data failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.history")
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

	entries, err := handler.repo.History(ctx, userID, from, to)
	if err != nil {
		log.Errorf("tracking history for user %d: %s", userID, err)
		http.Error(w, "get tracking history failed", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []Entry{}
	}

	respJson, err := json.Marshal(HistoryResponse{
		Tracking: entries,
		Count:    len(entries),
	})
	if err != nil {
		log.Errorf("tracking history, marshal response: %s", err)
		http.Error(w, "get tracking history failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func decodeEntryParams(r *http.Request) (*EntryParams, error) {
	var entryReq EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&entryReq); err != nil {
		log.Tracef("tracking, unmarshal json params: %s", err)
		return nil, errors.New("error, invalid request body")
	}

	if entryReq.Date == "" {
		return nil, errors.New("error, date is required")
	}
	date, err := time.Parse("2006-01-02", entryReq.Date)
	if err != nil {
		return nil, errors.New("error, invalid date")
	}

	return &EntryParams{
		Date:       date,
		Calories:   entryReq.Calories,
		Protein:    entryReq.Protein,
		Carbs:      entryReq.Carbs,
		Fats:       entryReq.Fats,
		SleepHours: entryReq.SleepHours,
		Steps:      entryReq.Steps,
		Notes:      entryReq.Notes,
	}, nil
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
