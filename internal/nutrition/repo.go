package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disciplinedaf/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrLogNotFound = errors.New("nutrition log not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

type AddLogParams struct {
	UserID   int
	Date     time.Time
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Micros   map[string]float64
}

func (r *Repo) Add(ctx context.Context, params AddLogParams) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Micros == nil {
		params.Micros = map[string]float64{}
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO nutrition_logs (user_id, date, calories, protein, carbs, fats, micros)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, user_id, date, calories, protein, carbs, fats, micros;`,
		params.UserID, params.Date, params.Calories,
		params.Protein, params.Carbs, params.Fats, params.Micros,
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

	nutritionLog, err := scanLog(rows)
	if err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("nutrition.id", nutritionLog.ID))
	return nutritionLog, nil
}

// List returns the user's logs, newest first. Nil range bounds are open.
func (r *Repo) List(ctx context.Context, userID int, from, to *time.Time) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	query := `SELECT id, user_id, date, calories, protein, carbs, fats, micros
		FROM nutrition_logs WHERE user_id = $1`
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

	var logs []Log
	for rows.Next() {
		nutritionLog, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, *nutritionLog)
	}

	span.SetAttributes(attribute.Int("logs.count", len(logs)))
	return logs, nil
}

// LatestForDay returns the most recent log for a calendar date.
func (r *Repo) LatestForDay(ctx context.Context, userID int, date time.Time) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.latestForDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, date, calories, protein, carbs, fats, micros
			FROM nutrition_logs
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
		return nil, ErrLogNotFound
	}

	return scanLog(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLog(row rowScanner) (*Log, error) {
	var nutritionLog Log
	if err := row.Scan(
		&nutritionLog.ID, &nutritionLog.UserID, &nutritionLog.Date,
		&nutritionLog.Calories, &nutritionLog.Protein, &nutritionLog.Carbs,
		&nutritionLog.Fats, &nutritionLog.Micros,
	); err != nil {
		return nil, err
	}
	return &nutritionLog, nil
}
