package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disciplinedaf/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

type CreateWorkoutParams struct {
	UserID          int
	Name            string
	Date            time.Time
	Notes           *string
	DurationMinutes *int
}

func (r *Repo) Create(ctx context.Context, params CreateWorkoutParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workouts (user_id, name, date, notes, duration_minutes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, user_id, name, date, notes, duration_minutes;`,
		params.UserID, params.Name, params.Date, params.Notes, params.DurationMinutes,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var workout Workout
	if err := rows.Scan(
		&workout.ID, &workout.UserID, &workout.Name, &workout.Date,
		&workout.Notes, &workout.DurationMinutes,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return &workout, nil
}

// AddEntry inserts a set for a workout, refusing workouts the user does not own.
func (r *Repo) AddEntry(ctx context.Context, userID int, entry ExerciseEntry) (_ *ExerciseEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", entry.WorkoutID))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise_entries (workout_id, exercise_name, set_index, reps, weight, rpe, tempo)
			SELECT w.id, $2, $3, $4, $5, $6, $7
				FROM workouts w
				WHERE w.id = $1 AND w.user_id = $8
			RETURNING id, workout_id, exercise_name, set_index, reps, weight, rpe, tempo;`,
		entry.WorkoutID, entry.ExerciseName, entry.SetIndex, entry.Reps,
		entry.Weight, entry.RPE, entry.Tempo, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrWorkoutNotFound
	}

	var added ExerciseEntry
	if err := rows.Scan(
		&added.ID, &added.WorkoutID, &added.ExerciseName, &added.SetIndex,
		&added.Reps, &added.Weight, &added.RPE, &added.Tempo,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &added, nil
}

func (r *Repo) ListForUser(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, date, notes, duration_minutes
			FROM workouts
			WHERE user_id = $1
			ORDER BY date DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var workoutList []Workout
	for rows.Next() {
		var workout Workout
		if err := rows.Scan(
			&workout.ID, &workout.UserID, &workout.Name, &workout.Date,
			&workout.Notes, &workout.DurationMinutes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workoutList = append(workoutList, workout)
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workoutList)))
	return workoutList, nil
}

func (r *Repo) ListEntries(ctx context.Context, userID, workoutID int) (_ []ExerciseEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listEntries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	var owned bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM workouts WHERE id = $1 AND user_id = $2);`,
		workoutID, userID,
	).Scan(&owned); err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrWorkoutNotFound
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, exercise_name, set_index, reps, weight, rpe, tempo
			FROM exercise_entries
			WHERE workout_id = $1
			ORDER BY set_index, id;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var entries []ExerciseEntry
	for rows.Next() {
		var entry ExerciseEntry
		if err := rows.Scan(
			&entry.ID, &entry.WorkoutID, &entry.ExerciseName, &entry.SetIndex,
			&entry.Reps, &entry.Weight, &entry.RPE, &entry.Tempo,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
