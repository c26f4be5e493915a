package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/disciplinedaf/backend/internal/middleware"
	"github.com/disciplinedaf/backend/internal/telemetry/tracing"
	"github.com/disciplinedaf/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type nutritionRepo interface {
	Add(ctx context.Context, params AddLogParams) (*Log, error)
	List(ctx context.Context, userID int, from, to *time.Time) ([]Log, error)
	LatestForDay(ctx context.Context, userID int, date time.Time) (*Log, error)
}

type AddLogRequest struct {
	Date     string             `json:"date"`
	Calories *float64           `json:"calories"`
	Protein  float64            `json:"protein"`
	Carbs    float64            `json:"carbs"`
	Fats     float64            `json:"fats"`
	Micros   map[string]float64 `json:"micros"`
}

type ListLogsResponse struct {
	Logs  []Log `json:"logs"`
	Count int   `json:"count"`
}

type Handler struct {
	repo nutritionRepo

	// NowFunc is the clock for logs added without a date, swappable in tests.
	NowFunc func() time.Time
}

func NewHandler(repo nutritionRepo) *Handler {
	return &Handler{
		repo:    repo,
		NowFunc: time.Now,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	nutritionRouter := mainRouter.PathPrefix("/api/nutrition").Subrouter()
	nutritionRouter.HandleFunc("/add", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-nutrition")
	nutritionRouter.HandleFunc("/list", handler.HandleList).Methods("GET", "OPTIONS").Name("list-nutrition")
	nutritionRouter.HandleFunc("/day", handler.HandleDay).Methods("GET", "OPTIONS").Name("nutrition-day")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.add")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var addReq AddLogRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Errorf("add nutrition, unmarshal json params: %s", err)
		http.Error(w, "add nutrition log failed", http.StatusBadRequest)
		return
	}

	if addReq.Calories == nil {
		http.Error(w, "error, calories are required", http.StatusBadRequest)
		return
	}

	date := handler.NowFunc()
	if addReq.Date != "" {
		parsed, err := time.Parse("2006-01-02", addReq.Date)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	nutritionLog, err := handler.repo.Add(ctx, AddLogParams{
		UserID:   userID,
		Date:     date,
		Calories: *addReq.Calories,
		Protein:  addReq.Protein,
		Carbs:    addReq.Carbs,
		Fats:     addReq.Fats,
		Micros:   addReq.Micros,
	})
	if err != nil {
		log.Errorf("add nutrition log for user %d: %s", userID, err)
		http.Error(w, "add nutrition log failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(nutritionLog)
	if err != nil {
		log.Errorf("add nutrition log, marshal response: %s", err)
		http.Error(w, "add nutrition log failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.list")
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

	logs, err := handler.repo.List(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list nutrition logs for user %d: %s", userID, err)
		http.Error(w, "list nutrition logs failed", http.StatusInternalServerError)
		return
	}

	if logs == nil {
		logs = []Log{}
	}

	respJson, err := json.Marshal(ListLogsResponse{
		Logs:  logs,
		Count: len(logs),
	})
	if err != nil {
		log.Errorf("list nutrition logs, marshal response: %s", err)
		http.Error(w, "list nutrition logs failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.day")
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

	nutritionLog, err := handler.repo.LatestForDay(ctx, userID, date)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			pkg.WriteJSONResponseOK(w, "null")
			return
		}
		log.Errorf("nutrition day for user %d: %s", userID, err)
		http.Error(w, "get nutrition log failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(nutritionLog)
	if err != nil {
		log.Errorf("nutrition day, marshal response: %s", err)
		http.Error(w, "get nutrition log failed", http.StatusInternalServerError)
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
