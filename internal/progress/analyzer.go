package progress

import (
	"context"
	"sync"

	"github.com/disciplinedaf/backend/internal/telemetry/tracing"

	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=progress_test

type statsRepo interface {
	ExerciseTrend(ctx context.Context, userID int, exerciseName string, rng DateRange) ([]TrendPoint, error)
	BestWeightSet(ctx context.Context, userID int, exerciseName string) (*SetRecord, error)
	BestVolumeSet(ctx context.Context, userID int, exerciseName string) (*SetRecord, error)
	WorkoutCount(ctx context.Context, userID int, rng DateRange) (int, error)
	SetStats(ctx context.Context, userID int, rng DateRange) (int, float64, error)
}

// Analyzer answers the three aggregation query shapes, always scoped
// to a single user. It never writes.
type Analyzer struct {
	repo statsRepo
}

func NewAnalyzer(repo statsRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

func (a *Analyzer) ExerciseTrend(ctx context.Context, userID int, exerciseName string, rng DateRange) (_ *Trend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.exerciseTrend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	points, err := a.repo.ExerciseTrend(ctx, userID, exerciseName, rng)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []TrendPoint{}
	}

	return &Trend{
		Exercise: exerciseName,
		From:     rng.FromString(),
		To:       rng.ToString(),
		Points:   points,
	}, nil
}

// ExercisePRs issues the two record queries concurrently. Either record
// may be nil when the user has no matching sets.
func (a *Analyzer) ExercisePRs(ctx context.Context, userID int, exerciseName string) (_ *PersonalRecords, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.exercisePRs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		wg         sync.WaitGroup
		bestWeight *SetRecord
		bestVolume *SetRecord
		weightErr  error
		volumeErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		bestWeight, weightErr = a.repo.BestWeightSet(ctx, userID, exerciseName)
	}()
	go func() {
		defer wg.Done()
		bestVolume, volumeErr = a.repo.BestVolumeSet(ctx, userID, exerciseName)
	}()
	wg.Wait()

	if err := multierr.Combine(weightErr, volumeErr); err != nil {
		return nil, err
	}

	return &PersonalRecords{
		Exercise:      exerciseName,
		BestWeightSet: bestWeight,
		BestVolumeSet: bestVolume,
	}, nil
}

// Summary issues the workout count and set stats queries concurrently.
func (a *Analyzer) Summary(ctx context.Context, userID int, rng DateRange) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		wg           sync.WaitGroup
		workoutCount int
		setsCount    int
		totalVolume  float64
		workoutsErr  error
		setsErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		workoutCount, workoutsErr = a.repo.WorkoutCount(ctx, userID, rng)
	}()
	go func() {
		defer wg.Done()
		setsCount, totalVolume, setsErr = a.repo.SetStats(ctx, userID, rng)
	}()
	wg.Wait()

	if err := multierr.Combine(workoutsErr, setsErr); err != nil {
		return nil, err
	}

	return &Summary{
		From:         rng.FromString(),
		To:           rng.ToString(),
		WorkoutCount: workoutCount,
		SetsCount:    setsCount,
		TotalVolume:  totalVolume,
	}, nil
}
