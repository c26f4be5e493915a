package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disciplinedaf/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ExerciseTrend aggregates matching sets per workout date, ascending.
// Dates with no matching sets produce no point.
func (r *Repo) ExerciseTrend(ctx context.Context, userID int, exerciseName string, rng DateRange) (_ []TrendPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.exerciseTrend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				w.date::date AS date,
				SUM(e.reps * e.weight) AS total_volume,
				AVG(e.rpe) AS avg_rpe,
				COUNT(*) AS sets_count
			FROM exercise_entries e
			JOIN workouts w ON e.workout_id = w.id
			WHERE w.user_id = $1
				AND e.exercise_name ILIKE $2
				AND w.date >= $3
				AND w.date <= $4
			GROUP BY w.date::date
			ORDER BY w.date::date;`,
		userID, exerciseName, rng.From, rng.To,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var points []TrendPoint
	for rows.Next() {
		var (
			date  time.Time
			point TrendPoint
		)
		if err := rows.Scan(&date, &point.TotalVolume, &point.AvgRPE, &point.SetsCount); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		point.Date = date.Format(dateLayout)
		points = append(points, point)
	}

	span.SetAttributes(attribute.Int("points.count", len(points)))
	return points, nil
}

// BestWeightSet returns the heaviest set for an exercise, ties broken by
// reps, then most recent date, then id. Nil when the user has no sets.
func (r *Repo) BestWeightSet(ctx context.Context, userID int, exerciseName string) (_ *SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.bestWeightSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.bestSet(ctx, userID, exerciseName, "e.weight DESC, e.reps DESC, w.date DESC, e.id DESC")
}

// BestVolumeSet returns the set with the highest reps*weight, ties broken
// by most recent date, then id. Nil when the user has no sets.
func (r *Repo) BestVolumeSet(ctx context.Context, userID int, exerciseName string) (_ *SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.bestVolumeSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.bestSet(ctx, userID, exerciseName, "volume DESC, w.date DESC, e.id DESC")
}

func (r *Repo) bestSet(ctx context.Context, userID int, exerciseName, orderBy string) (*SetRecord, error) {
	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf(`SELECT
				e.id, e.workout_id, e.exercise_name, e.reps, e.weight,
				(e.reps * e.weight) AS volume, e.rpe, w.date
			FROM exercise_entries e
			JOIN workouts w ON e.workout_id = w.id
			WHERE w.user_id = $1
				AND e.exercise_name ILIKE $2
			ORDER BY %s
			LIMIT 1;`, orderBy),
		userID, exerciseName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, nil
	}

	var set SetRecord
	if err := rows.Scan(
		&set.ID, &set.WorkoutID, &set.ExerciseName, &set.Reps,
		&set.Weight, &set.Volume, &set.RPE, &set.Date,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	return &set, nil
}

func (r *Repo) WorkoutCount(ctx context.Context, userID int, rng DateRange) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.workoutCount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workouts
			WHERE user_id = $1 AND date >= $2 AND date <= $3;`,
		userID, rng.From, rng.To,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// SetStats counts sets and sums volume over workouts in range.
// Total volume is 0, never null, when no sets match.
func (r *Repo) SetStats(ctx context.Context, userID int, rng DateRange) (setsCount int, totalVolume float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.setStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*), COALESCE(SUM(e.reps * e.weight), 0)
			FROM exercise_entries e
			JOIN workouts w ON e.workout_id = w.id
			WHERE w.user_id = $1 AND w.date >= $2 AND w.date <= $3;`,
		userID, rng.From, rng.To,
	).Scan(&setsCount, &totalVolume); err != nil {
		return 0, 0, err
	}
	return setsCount, totalVolume, nil
}

type AddEntryParams struct {
	Date         time.Time
	Weight       *float64
	Bodyfat      *float64
	Measurements map[string]float64
	PhotoURL     *string
	Notes        *string
}

func (r *Repo) AddEntry(ctx context.Context, userID int, params AddEntryParams) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.addEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO progress (user_id, date, weight, bodyfat, measurements, photo_url, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, user_id, date, weight, bodyfat, measurements, photo_url, notes;`,
		userID, params.Date, params.Weight, params.Bodyfat,
		params.Measurements, params.PhotoURL, params.Notes,
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

	entry, err := scanEntry(rows)
	if err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("progress.id", entry.ID))
	return entry, nil
}

// ListEntries returns the user's progress snapshots, newest first.
func (r *Repo) ListEntries(ctx context.Context, userID int, from, to *time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listEntries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	query := `SELECT id, user_id, date, weight, bodyfat, measurements, photo_url, notes
		FROM progress WHERE user_id = $1`
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
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, *entry)
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var entry Entry
	if err := row.Scan(
		&entry.ID, &entry.UserID, &entry.Date,
		&entry.Weight, &entry.Bodyfat, &entry.Measurements,
		&entry.PhotoURL, &entry.Notes,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}
