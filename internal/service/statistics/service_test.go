package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
)

type fakeVisitAggRepo struct {
	count          int
	distinctGuides int
	breakdown      []visitRepo.GuideBreakdown
	locations      []visitRepo.LocationCount
	lastFilter     domain.VisitsFilter
}

func (f *fakeVisitAggRepo) CountByPeriod(_ context.Context, filter domain.VisitsFilter) (int, error) {
	f.lastFilter = filter
	return f.count, nil
}

func (f *fakeVisitAggRepo) GetGuideBreakdown(_ context.Context, filter domain.VisitsFilter) ([]visitRepo.GuideBreakdown, error) {
	f.lastFilter = filter
	return f.breakdown, nil
}

func (f *fakeVisitAggRepo) GetPopularLocations(_ context.Context, filter domain.VisitsFilter) ([]visitRepo.LocationCount, error) {
	f.lastFilter = filter
	return f.locations, nil
}

func (f *fakeVisitAggRepo) CountDistinctGuides(_ context.Context, filter domain.VisitsFilter) (int, error) {
	return f.distinctGuides, nil
}

type fakeTouristAggRepo struct {
	stats domain.PresenceStats
}

func (f *fakeTouristAggRepo) GetPresenceStats(_ context.Context, _ *int64, _, _ *time.Time) (domain.PresenceStats, error) {
	return f.stats, nil
}

type fakeRatingAggRepo struct {
	avg float64
}

func (f *fakeRatingAggRepo) GetAverageScoreForGuide(_ context.Context, _ int64, _, _ *time.Time) (float64, error) {
	return f.avg, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestMonthlyVisitCount(t *testing.T) {
	visits := &fakeVisitAggRepo{count: 42}
	svc := NewService(visits, &fakeTouristAggRepo{}, &fakeRatingAggRepo{}, noopLogger{})

	count, err := svc.MonthlyVisitCount(context.Background(), 2026, 6)
	require.NoError(t, err)
	assert.Equal(t, 42, count)

	require.NotNil(t, visits.lastFilter.StartDate)
	require.NotNil(t, visits.lastFilter.EndDate)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), *visits.lastFilter.StartDate)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), *visits.lastFilter.EndDate)
	assert.True(t, visits.lastFilter.ExcludeCancelled)
}

func TestMonthlyVisitCount_InvalidMonth(t *testing.T) {
	svc := NewService(&fakeVisitAggRepo{}, &fakeTouristAggRepo{}, &fakeRatingAggRepo{}, noopLogger{})

	_, err := svc.MonthlyVisitCount(context.Background(), 2026, 13)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.MonthlyVisitCount(context.Background(), 2026, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPresenceRate(t *testing.T) {
	tests := []struct {
		name  string
		stats domain.PresenceStats
		want  float64
	}{
		{name: "normal rate", stats: domain.PresenceStats{TotalTourists: 20, PresentTourists: 15}, want: 75},
		{name: "no tourists gives zero", stats: domain.PresenceStats{}, want: 0},
		{name: "full presence", stats: domain.PresenceStats{TotalTourists: 8, PresentTourists: 8}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeVisitAggRepo{}, &fakeTouristAggRepo{stats: tt.stats}, &fakeRatingAggRepo{}, noopLogger{})

			rate, err := svc.PresenceRate(context.Background(),
				time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, rate, 0.0001)
		})
	}
}

func TestPresenceRate_InvalidRange(t *testing.T) {
	svc := NewService(&fakeVisitAggRepo{}, &fakeTouristAggRepo{}, &fakeRatingAggRepo{}, noopLogger{})

	_, err := svc.PresenceRate(context.Background(),
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestGuidePerformance(t *testing.T) {
	visits := &fakeVisitAggRepo{count: 12}
	tourists := &fakeTouristAggRepo{stats: domain.PresenceStats{TotalTourists: 100, PresentTourists: 90}}
	ratings := &fakeRatingAggRepo{avg: 4.6}
	svc := NewService(visits, tourists, ratings, noopLogger{})

	resp, err := svc.GuidePerformance(context.Background(), 7,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 12, resp.TotalVisits)
	assert.InDelta(t, 4.6, resp.AverageRating, 0.0001)
	assert.Equal(t, 100, resp.TotalTourists)
	assert.Equal(t, 90, resp.PresentTourists)
	assert.InDelta(t, 90, resp.PresenceRate, 0.0001)
}

func TestMonthlyOverview(t *testing.T) {
	visits := &fakeVisitAggRepo{
		count:          30,
		distinctGuides: 5,
		breakdown: []visitRepo.GuideBreakdown{
			{GuideID: 7, FirstName: "Anna", LastName: "Berg", VisitCount: 12},
			{GuideID: 9, FirstName: "Luis", LastName: "Costa", VisitCount: 8},
		},
	}
	tourists := &fakeTouristAggRepo{stats: domain.PresenceStats{TotalTourists: 200, PresentTourists: 180}}
	svc := NewService(visits, tourists, &fakeRatingAggRepo{}, noopLogger{})

	resp, err := svc.MonthlyOverview(context.Background(), 2026, 6)
	require.NoError(t, err)
	assert.Equal(t, 30, resp.TotalVisits)
	assert.Equal(t, 5, resp.DistinctGuides)
	assert.Equal(t, 200, resp.TotalTourists)
	assert.Equal(t, 180, resp.PresentCount)
	assert.InDelta(t, 90, resp.PresenceRate, 0.0001)
	require.Len(t, resp.GuideBreakdown, 2)
	assert.Equal(t, int64(7), resp.GuideBreakdown[0].GuideID)
}

func TestPopularActivities(t *testing.T) {
	visits := &fakeVisitAggRepo{
		locations: []visitRepo.LocationCount{
			{Location: "Old Town", VisitCount: 20},
			{Location: "Harbor", VisitCount: 11},
		},
	}
	svc := NewService(visits, &fakeTouristAggRepo{}, &fakeRatingAggRepo{}, noopLogger{})

	resp, err := svc.PopularActivities(context.Background(),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, resp.Activities, 2)
	assert.Equal(t, "Old Town", resp.Activities[0].Location)
	assert.Equal(t, 20, resp.Activities[0].VisitCount)
}
