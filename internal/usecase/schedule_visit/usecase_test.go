package schedule_visit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	guideRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/guide"
	placeRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/place"
	unavailabilityRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/unavailability"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
	"github.com/travelparadise/TP-VisitService/pkg/types"
)

type fakeVisitRepo struct {
	visits  []*domain.Visit
	nextID  int64
	created []*domain.Visit
}

func (f *fakeVisitRepo) Create(_ context.Context, visit *domain.Visit) (*domain.Visit, error) {
	f.nextID++
	visit.ID = f.nextID
	visit.CreatedAt = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	visit.UpdatedAt = visit.CreatedAt
	f.visits = append(f.visits, visit)
	f.created = append(f.created, visit)
	return visit, nil
}

func (f *fakeVisitRepo) GetByFilter(_ context.Context, filter domain.VisitsFilter) ([]*domain.Visit, error) {
	result := make([]*domain.Visit, 0)
	for _, v := range f.visits {
		if filter.GuideID != nil && v.GuideID != *filter.GuideID {
			continue
		}
		if filter.Date != nil && !v.Date.Equal(*filter.Date) {
			continue
		}
		if filter.ExcludeCancelled && v.Status == domain.VisitCancelled {
			continue
		}
		result = append(result, v)
	}
	return result, nil
}

type fakeGuideRepo struct {
	guides map[int64]*domain.Guide
}

func (f *fakeGuideRepo) GetByID(_ context.Context, id int64) (*domain.Guide, error) {
	g, ok := f.guides[id]
	if !ok {
		return nil, guideRepo.ErrGuideNotFound
	}
	return g, nil
}

type fakePlaceRepo struct {
	places map[int64]*domain.Place
}

func (f *fakePlaceRepo) GetByID(_ context.Context, id int64) (*domain.Place, error) {
	p, ok := f.places[id]
	if !ok {
		return nil, placeRepo.ErrPlaceNotFound
	}
	return p, nil
}

type fakeUnavailabilityRepo struct {
	blockedDates map[string]bool
}

func (f *fakeUnavailabilityRepo) GetByGuideAndDate(_ context.Context, guideID int64, date time.Time) (*domain.GuideUnavailability, error) {
	if f.blockedDates[date.Format(domain.DateFormat)] {
		return &domain.GuideUnavailability{GuideID: guideID, Date: date}, nil
	}
	return nil, unavailabilityRepo.ErrNotFound
}

type fakeNotifier struct {
	events []notifier.ScheduleChangeEvent
	err    error
}

func (f *fakeNotifier) NotifyScheduleChange(_ context.Context, event notifier.ScheduleChangeEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func testNow() time.Time {
	return time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
}

func testDate() time.Time {
	return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	visits   *fakeVisitRepo
	unavail  *fakeUnavailabilityRepo
	notifier *fakeNotifier
	uc       *UseCase
}

func newFixture() *fixture {
	visits := &fakeVisitRepo{}
	unavail := &fakeUnavailabilityRepo{blockedDates: map[string]bool{}}
	notif := &fakeNotifier{}
	guides := &fakeGuideRepo{guides: map[int64]*domain.Guide{
		7:  {ID: 7, FirstName: "Anna", LastName: "Berg", Status: domain.GuideActive},
		42: {ID: 42, FirstName: "Per", LastName: "Olsen", Status: domain.GuideOnLeave},
	}}
	places := &fakePlaceRepo{places: map[int64]*domain.Place{
		3: {ID: 3, Name: "Old Town"},
	}}

	uc := NewUseCase(visits, guides, places, unavail, notif, fakeTxManager{}, noopLogger{}).
		WithTimeProvider(fixedTime{t: testNow()})

	return &fixture{visits: visits, unavail: unavail, notifier: notif, uc: uc}
}

func validRequest() *Request {
	return &Request{
		GuideID:         7,
		PlaceID:         3,
		Date:            testDate(),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
	}
}

func TestExecute(t *testing.T) {
	fx := newFixture()

	resp, err := fx.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, "Old Town", resp.Location)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)

	require.Len(t, fx.notifier.events, 1)
	assert.Equal(t, notifier.KindScheduled, fx.notifier.events[0].Kind)
}

func TestExecute_ScheduleValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "zero duration",
			mutate:  func(r *Request) { r.DurationMinutes = 0 },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "negative duration",
			mutate:  func(r *Request) { r.DurationMinutes = -30 },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "past date",
			mutate:  func(r *Request) { r.Date = testNow().AddDate(0, 0, -1) },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "bad start time format",
			mutate:  func(r *Request) { r.StartTime = "25:99" },
			wantErr: ErrInvalidInput,
		},
		{
			name: "window crosses midnight",
			mutate: func(r *Request) {
				r.StartTime = types.TimeString("23:30")
				r.DurationMinutes = 60
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "window ending exactly at midnight crosses the day",
			mutate: func(r *Request) {
				r.StartTime = types.TimeString("23:00")
				r.DurationMinutes = 60
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name:   "same day is allowed",
			mutate: func(r *Request) { r.Date = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := fx.uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestExecute_OverlapRejected(t *testing.T) {
	fx := newFixture()

	// Существующий визит 10:00-11:00
	_, err := fx.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 10:30 пересекается
	req := validRequest()
	req.StartTime = types.TimeString("10:30")
	_, err = fx.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGuideUnavailable)

	// 11:00 встык проходит
	req = validRequest()
	req.StartTime = types.TimeString("11:00")
	resp, err := fx.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecute_MidnightWindowDoesNotPoisonDay(t *testing.T) {
	fx := newFixture()

	// 23:30 + 60 минут выходит за пределы суток: визит не создаётся
	req := validRequest()
	req.StartTime = types.TimeString("23:30")
	_, err := fx.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Empty(t, fx.visits.created)

	// День гида остаётся рабочим: обычный визит проходит
	req = validRequest()
	req.StartTime = types.TimeString("08:00")
	resp, err := fx.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestExecute_CancelledVisitDoesNotBlock(t *testing.T) {
	fx := newFixture()
	fx.visits.visits = append(fx.visits.visits, &domain.Visit{
		ID:              99,
		GuideID:         7,
		Date:            testDate(),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.VisitCancelled,
	})

	_, err := fx.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_BlockedDayRejected(t *testing.T) {
	fx := newFixture()
	fx.unavail.blockedDates[testDate().Format(domain.DateFormat)] = true

	_, err := fx.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrGuideUnavailable)
}

func TestExecute_GuideChecks(t *testing.T) {
	fx := newFixture()

	req := validRequest()
	req.GuideID = 404
	_, err := fx.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGuideNotFound)

	req = validRequest()
	req.GuideID = 42 // on_leave
	_, err = fx.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrGuideInactive)
}

func TestExecute_PlaceNotFound(t *testing.T) {
	fx := newFixture()

	req := validRequest()
	req.PlaceID = 404
	_, err := fx.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestExecute_NotifierFailureTolerated(t *testing.T) {
	fx := newFixture()
	fx.notifier.err = errors.New("connection refused")

	resp, err := fx.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "notifier failure must not fail scheduling")
	assert.Equal(t, int64(1), resp.ID)
	assert.Len(t, fx.visits.created, 1)
}
