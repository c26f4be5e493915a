package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/disciplinedaf/backend/internal/middleware"
	"github.com/disciplinedaf/backend/internal/telemetry/tracing"
	"github.com/disciplinedaf/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Create(ctx context.Context, params CreateWorkoutParams) (*Workout, error)
	AddEntry(ctx context.Context, userID int, entry ExerciseEntry) (*ExerciseEntry, error)
	ListForUser(ctx context.Context, userID int) ([]Workout, error)
	ListEntries(ctx context.Context, userID, workoutID int) ([]ExerciseEntry, error)
}

type CreateWorkoutRequest struct {
	Name            string  `json:"name"`
	Date            string  `json:"date"`
	Notes           *string `json:"notes"`
	DurationMinutes *int    `json:"duration_minutes"`
}

type AddEntryRequest struct {
	WorkoutID    int      `json:"workout_id"`
	ExerciseName string   `json:"exercise_name"`
	SetIndex     int      `json:"set_index"`
	Reps         int      `json:"reps"`
	Weight       float64  `json:"weight"`
	RPE          *float64 `json:"rpe"`
	Tempo        *string  `json:"tempo"`
}

type ListWorkoutsResponse struct {
	Workouts []Workout `json:"workouts"`
	Count    int       `json:"count"`
}

type ListEntriesResponse struct {
	Entries []ExerciseEntry `json:"entries"`
	Count   int             `json:"count"`
}

type Handler struct {
	repo workoutsRepo
}

func NewHandler(repo workoutsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	workoutsRouter := mainRouter.PathPrefix("/api/workouts").Subrouter()
	workoutsRouter.HandleFunc("/create", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-workout")
	workoutsRouter.HandleFunc("/add-entry", handler.HandleAddEntry).Methods("POST", "OPTIONS").Name("add-entry")
	workoutsRouter.HandleFunc("/all", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	workoutsRouter.HandleFunc("/{id}/entries", handler.HandleListEntries).Methods("GET", "OPTIONS").Name("list-entries")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var createReq CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		log.Errorf("create workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	createReq.Name = strings.TrimSpace(createReq.Name)
	if createReq.Name == "" || createReq.Date == "" {
		http.Error(w, "error, workout name and date are required", http.StatusBadRequest)
		return
	}

	date, err := time.Parse("2006-01-02", createReq.Date)
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	var notes *string
	if createReq.Notes != nil {
		if trimmed := strings.TrimSpace(*createReq.Notes); trimmed != "" {
			notes = &trimmed
		}
	}

	workout, err := handler.repo.Create(ctx, CreateWorkoutParams{
		UserID:          userID,
		Name:            createReq.Name,
		Date:            date,
		Notes:           notes,
		DurationMinutes: createReq.DurationMinutes,
	})
	if err != nil {
		log.Errorf("create workout for user %d: %s", userID, err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("create workout, marshal response: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleAddEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addEntry")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var entryReq AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&entryReq); err != nil {
		log.Errorf("add entry, unmarshal json params: %s", err)
		http.Error(w, "add entry failed", http.StatusBadRequest)
		return
	}

	entryReq.ExerciseName = strings.TrimSpace(entryReq.ExerciseName)
	if entryReq.WorkoutID <= 0 || entryReq.ExerciseName == "" {
		http.Error(w, "error, workout id and exercise name are required", http.StatusBadRequest)
		return
	}
	// zero reps is a valid record (failed attempt, isometric hold)
	if entryReq.Reps < 0 || entryReq.Weight < 0 {
		http.Error(w, "error, invalid reps or weight", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.AddEntry(ctx, userID, ExerciseEntry{
		WorkoutID:    entryReq.WorkoutID,
		ExerciseName: entryReq.ExerciseName,
		SetIndex:     entryReq.SetIndex,
		Reps:         entryReq.Reps,
		Weight:       entryReq.Weight,
		RPE:          entryReq.RPE,
		Tempo:        entryReq.Tempo,
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("add entry to workout %d: %s", entryReq.WorkoutID, err)
		http.Error(w, "add entry failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("add entry, marshal response: %s", err)
		http.Error(w, "add entry failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutList, err := handler.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("list workouts for user %d: %s", userID, err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	if workoutList == nil {
		workoutList = []Workout{}
	}

	respJson, err := json.Marshal(ListWorkoutsResponse{
		Workouts: workoutList,
		Count:    len(workoutList),
	})
	if err != nil {
		log.Errorf("list workouts, marshal response: %s", err)
		http.Error(w, "list workouts failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listEntries")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	workoutID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id invalid", http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.ListEntries(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("list entries for workout %d: %s", workoutID, err)
		http.Error(w, "list entries failed", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []ExerciseEntry{}
	}

	respJson, err := json.Marshal(ListEntriesResponse{
		Entries: entries,
		Count:   len(entries),
	})
	if err != nil {
		log.Errorf("list entries, marshal response: %s", err)
		http.Error(w, "list entries failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
