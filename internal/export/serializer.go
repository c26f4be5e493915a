package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/disciplinedaf/backend/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=serializer_mocks_test.go -package=export_test

type Type string

const (
	TypeAll       Type = "all"
	TypeWorkouts  Type = "workouts"
	TypeNutrition Type = "nutrition"
	TypeProgress  Type = "progress"
)

// ParseType validates the export type selector, defaulting to all.
func ParseType(value string) (Type, error) {
	switch Type(value) {
	case "":
		return TypeAll, nil
	case TypeAll, TypeWorkouts, TypeNutrition, TypeProgress:
		return Type(value), nil
	default:
		return "", fmt.Errorf("unknown export type: %q", value)
	}
}

type exportRepo interface {
	ForEachWorkout(ctx context.Context, userID int, from, to *time.Time, fn func(WorkoutRow) error) error
	ForEachNutritionLog(ctx context.Context, userID int, from, to *time.Time, fn func(NutritionRow) error) error
	ForEachProgressEntry(ctx context.Context, userID int, from, to *time.Time, fn func(ProgressRow) error) error
}

// Serializer assembles the CSV document: for each selected category, in
// the fixed order workouts, nutrition, progress, a section label row, a
// header row, data rows newest first, and a blank separator line.
type Serializer struct {
	repo exportRepo
}

func NewSerializer(repo exportRepo) *Serializer {
	return &Serializer{
		repo: repo,
	}
}

func (s *Serializer) Write(ctx context.Context, cw *CSVWriter, userID int, exportType Type, from, to *time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "export.serialize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("export.type", string(exportType)),
	)

	if exportType == TypeAll || exportType == TypeWorkouts {
		if err := s.writeWorkouts(ctx, cw, userID, from, to); err != nil {
			return err
		}
	}
	if exportType == TypeAll || exportType == TypeNutrition {
		if err := s.writeNutrition(ctx, cw, userID, from, to); err != nil {
			return err
		}
	}
	if exportType == TypeAll || exportType == TypeProgress {
		if err := s.writeProgress(ctx, cw, userID, from, to); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) writeWorkouts(ctx context.Context, cw *CSVWriter, userID int, from, to *time.Time) error {
	if err := cw.WriteRow("WORKOUTS"); err != nil {
		return err
	}
	if err := cw.WriteRow("date", "workout_id", "name", "notes", "duration_minutes"); err != nil {
		return err
	}
	err := s.repo.ForEachWorkout(ctx, userID, from, to, func(row WorkoutRow) error {
		return cw.WriteRow(
			dateCell(row.Date),
			strconv.Itoa(row.ID),
			row.Name,
			strPtrCell(row.Notes),
			intPtrCell(row.DurationMinutes),
		)
	})
	if err != nil {
		return err
	}
	return cw.WriteBlankLine()
}

func (s *Serializer) writeNutrition(ctx context.Context, cw *CSVWriter, userID int, from, to *time.Time) error {
	if err := cw.WriteRow("NUTRITION"); err != nil {
		return err
	}
	if err := cw.WriteRow("date", "log_id", "calories", "protein", "carbs", "fats", "micros"); err != nil {
		return err
	}
	err := s.repo.ForEachNutritionLog(ctx, userID, from, to, func(row NutritionRow) error {
		return cw.WriteRow(
			dateCell(row.Date),
			strconv.Itoa(row.ID),
			floatCell(row.Calories),
			floatCell(row.Protein),
			floatCell(row.Carbs),
			floatCell(row.Fats),
			jsonCell(row.Micros),
		)
	})
	if err != nil {
		return err
	}
	return cw.WriteBlankLine()
}

func (s *Serializer) writeProgress(ctx context.Context, cw *CSVWriter, userID int, from, to *time.Time) error {
	if err := cw.WriteRow("PROGRESS"); err != nil {
		return err
	}
	if err := cw.WriteRow("date", "progress_id", "weight", "bodyfat", "measurements", "photo_url", "notes"); err != nil {
		return err
	}
	err := s.repo.ForEachProgressEntry(ctx, userID, from, to, func(row ProgressRow) error {
		return cw.WriteRow(
			dateCell(row.Date),
			strconv.Itoa(row.ID),
			floatPtrCell(row.Weight),
			floatPtrCell(row.Bodyfat),
			jsonCell(row.Measurements),
			strPtrCell(row.PhotoURL),
			strPtrCell(row.Notes),
		)
	})
	if err != nil {
		return err
	}
	return cw.WriteBlankLine()
}

func dateCell(t time.Time) string {
	return t.Format("2006-01-02")
}

func floatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatPtrCell(v *float64) string {
	if v == nil {
		return ""
	}
	return floatCell(*v)
}

func intPtrCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func strPtrCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// jsonCell renders structured values (micros, measurements) as their
// canonical JSON encoding, with map keys sorted by encoding/json.
func jsonCell(m map[string]float64) string {
	if m == nil {
		return ""
	}
	encoded, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(encoded)
}
