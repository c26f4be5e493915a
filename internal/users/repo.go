package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/disciplinedaf/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = errors.New("user not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Profile      Profile
}

func (r *Repo) Create(ctx context.Context, params CreateUserParams) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO users
				(email, password_hash, name, age, weight, height, body_fat_percentage, body_goal)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, email, name, age, weight, height, body_fat_percentage, body_goal, created_at;`,
		params.Email, params.PasswordHash,
		params.Profile.Name, params.Profile.Age, params.Profile.Weight, params.Profile.Height,
		params.Profile.BodyFatPercentage, params.Profile.BodyGoal,
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

	user, err := scanUser(rows)
	if err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	return user, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, email, name, age, weight, height, body_fat_percentage, body_goal, created_at
			FROM users WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrUserNotFound
	}

	return scanUser(rows)
}

// GetByEmail also loads the password hash, for login checks.
func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, email, name, age, weight, height, body_fat_percentage, body_goal, created_at, password_hash
			FROM users WHERE email = $1;`,
		email,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrUserNotFound
	}

	var user User
	if err := rows.Scan(
		&user.ID, &user.Email, &user.Name, &user.Age, &user.Weight, &user.Height,
		&user.BodyFatPercentage, &user.BodyGoal, &user.CreatedAt, &user.PasswordHash,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &user, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, id int, profile Profile) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`UPDATE users
			SET name = $1, age = $2, weight = $3, height = $4, body_fat_percentage = $5, body_goal = $6
			WHERE id = $7
			RETURNING id, email, name, age, weight, height, body_fat_percentage, body_goal, created_at;`,
		profile.Name, profile.Age, profile.Weight, profile.Height,
		profile.BodyFatPercentage, profile.BodyGoal,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrUserNotFound
	}

	return scanUser(rows)
}

func scanUser(rows pgx.Rows) (*User, error) {
	var user User
	if err := rows.Scan(
		&user.ID, &user.Email, &user.Name, &user.Age, &user.Weight, &user.Height,
		&user.BodyFatPercentage, &user.BodyGoal, &user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
