package export

import (
	"context"
	"fmt"
	"time"

	"github.com/disciplinedaf/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type WorkoutRow struct {
	ID              int
	Date            time.Time
	Name            string
	Notes           *string
	DurationMinutes *int
}

type NutritionRow struct {
	ID       int
	Date     time.Time
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Micros   map[string]float64
}

type ProgressRow struct {
	ID           int
	Date         time.Time
	Weight       *float64
	Bodyfat      *float64
	Measurements map[string]float64
	PhotoURL     *string
	Notes        *string
}

// Repo streams export rows one at a time through callbacks, so large
// histories never get materialized in memory.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ForEachWorkout(ctx context.Context, userID int, from, to *time.Time, fn func(WorkoutRow) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.export.forEachWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.forEachRow(ctx, userID, from, to,
		`SELECT id, date, name, notes, duration_minutes FROM workouts WHERE user_id = $1`,
		func(rows pgx.Rows) error {
			var row WorkoutRow
			if err := rows.Scan(&row.ID, &row.Date, &row.Name, &row.Notes, &row.DurationMinutes); err != nil {
				return fmt.Errorf("rows scan: %w", err)
			}
			return fn(row)
		},
	)
}

func (r *Repo) ForEachNutritionLog(ctx context.Context, userID int, from, to *time.Time, fn func(NutritionRow) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.export.forEachNutritionLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.forEachRow(ctx, userID, from, to,
		`SELECT id, date, calories, protein, carbs, fats, micros FROM nutrition_logs WHERE user_id = $1`,
		func(rows pgx.Rows) error {
			var row NutritionRow
			if err := rows.Scan(
				&row.ID, &row.Date, &row.Calories, &row.Protein,
				&row.Carbs, &row.Fats, &row.Micros,
			); err != nil {
				return fmt.Errorf("rows scan: %w", err)
			}
			return fn(row)
		},
	)
}

func (r *Repo) ForEachProgressEntry(ctx context.Context, userID int, from, to *time.Time, fn func(ProgressRow) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.export.forEachProgressEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.forEachRow(ctx, userID, from, to,
		`SELECT id, date, weight, bodyfat, measurements, photo_url, notes FROM progress WHERE user_id = $1`,
		func(rows pgx.Rows) error {
			var row ProgressRow
			if err := rows.Scan(
				&row.ID, &row.Date, &row.Weight, &row.Bodyfat,
				&row.Measurements, &row.PhotoURL, &row.Notes,
			); err != nil {
				return fmt.Errorf("rows scan: %w", err)
			}
			return fn(row)
		},
	)
}

func (r *Repo) forEachRow(
	ctx context.Context,
	userID int,
	from, to *time.Time,
	baseQuery string,
	scanAndEmit func(pgx.Rows) error,
) error {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("user.id", userID))

	query := baseQuery
	args := []interface{}{userID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC, id DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return err
	}

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := scanAndEmit(rows); err != nil {
			return err
		}
	}

	return rows.Err()
}
