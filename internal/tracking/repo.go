package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disciplinedaf/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEntryNotFound = errors.New("tracking entry not found")
	ErrNotOwner      = errors.New("tracking entry belongs to another user")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

type EntryParams struct {
	Date       time.Time
	Calories   *float64
	Protein    *float64
	Carbs      *float64
	Fats       *float64
	SleepHours *float64
	Steps      *int
	Notes      *string
}

// LatestForDate returns the most recent entry for a calendar date.
func (r *Repo) LatestForDate(ctx context.Context, userID int, date time.Time) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.latestForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, date, calories, protein, carbs, fats, sleep_hours, steps, notes
			FROM daily_tracking
			WHERE user_id = $1 AND date = $2
			ORDER BY id DESC
			LIMIT 1;`,
		userID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrEntryNotFound
	}

	return scanEntry(rows)
}

func (r *Repo) Create(ctx context.Context, userID int, params EntryParams) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO daily_tracking
				(user_id, date, calories, protein, carbs, fats, sleep_hours, steps, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, user_id, date, calories, protein, carbs, fats, sleep_hours, steps, notes;`,
		userID, params.Date, params.Calories, params.Protein, params.Carbs,
		params.Fats, params.SleepHours, params.Steps, params.Notes,
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

	span.SetAttributes(attribute.Int("tracking.id", entry.ID))
	return entry, nil
}

// Update replaces an entry after checking it exists and belongs to the user.
func (r *Repo) Update(ctx context.Context, userID, entryID int, params EntryParams) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("tracking.id", entryID))

	var ownerID int
	rows, err := r.db.Query(
		ctx,
		`SELECT user_id FROM daily_tracking WHERE id = $1;`,
		entryID,
	)
	if err != nil {
		return nil, err
	}

	if !rows.Next() {
		rows.Close()
		return nil, ErrEntryNotFound
	}
	if err := rows.Scan(&ownerID); err != nil {
		rows.Close()
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	rows.Close()

	if ownerID != userID {
		return nil, ErrNotOwner
	}

	rows, err = r.db.Query(
		ctx,
		`UPDATE daily_tracking
			SET date = $1, calories = $2, protein = $3, carbs = $4, fats = $5,
				sleep_hours = $6, steps = $7, notes = $8
			WHERE id = $9 AND user_id = $10
			RETURNING id, user_id, date, calories, protein, carbs, fats, sleep_hours, steps, notes;`,
		params.Date, params.Calories, params.Protein, params.Carbs, params.Fats,
		params.SleepHours, params.Steps, params.Notes, entryID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrEntryNotFound
	}

	return scanEntry(rows)
}

// History returns the user's entries, newest first. Nil range bounds are open.
func (r *Repo) History(ctx context.Context, userID int, from, to *time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	query := `SELECT id, user_id, date, calories, protein, carbs, fats, sleep_hours, steps, notes
		FROM daily_tracking WHERE user_id = $1`
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
		&entry.Calories, &entry.Protein, &entry.Carbs, &entry.Fats,
		&entry.SleepHours, &entry.Steps, &entry.Notes,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}
