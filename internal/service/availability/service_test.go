package availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	guideRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/guide"
	unavailabilityRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/unavailability"
	"github.com/travelparadise/TP-VisitService/internal/service/availability/models"
	"github.com/travelparadise/TP-VisitService/pkg/types"
)

func toTimeString(s string) types.TimeString {
	return types.TimeString(s)
}

type fakeGuideRepo struct {
	guides map[int64]*domain.Guide
	active []*domain.Guide
}

func (f *fakeGuideRepo) GetByID(_ context.Context, id int64) (*domain.Guide, error) {
	g, ok := f.guides[id]
	if !ok {
		return nil, guideRepo.ErrGuideNotFound
	}
	return g, nil
}

func (f *fakeGuideRepo) ListActive(_ context.Context, excludeID *int64) ([]*domain.Guide, error) {
	result := make([]*domain.Guide, 0, len(f.active))
	for _, g := range f.active {
		if excludeID != nil && g.ID == *excludeID {
			continue
		}
		result = append(result, g)
	}
	return result, nil
}

type fakeVisitRepo struct {
	visits []*domain.Visit
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

type fakeUnavailabilityRepo struct {
	records map[string]*domain.GuideUnavailability
	created []*domain.GuideUnavailability
	deleted []string
}

func (f *fakeUnavailabilityRepo) key(guideID int64, date time.Time) string {
	return fmt.Sprintf("%d#%s", guideID, date.Format(domain.DateFormat))
}

func (f *fakeUnavailabilityRepo) GetByGuideAndDate(_ context.Context, guideID int64, date time.Time) (*domain.GuideUnavailability, error) {
	r, ok := f.records[f.key(guideID, date)]
	if !ok {
		return nil, unavailabilityRepo.ErrNotFound
	}
	return r, nil
}

func (f *fakeUnavailabilityRepo) Create(_ context.Context, record *domain.GuideUnavailability) (*domain.GuideUnavailability, error) {
	if f.records == nil {
		f.records = make(map[string]*domain.GuideUnavailability)
	}
	f.records[f.key(record.GuideID, record.Date)] = record
	f.created = append(f.created, record)
	return record, nil
}

func (f *fakeUnavailabilityRepo) DeleteByGuideAndDate(_ context.Context, guideID int64, date time.Time) error {
	k := f.key(guideID, date)
	if _, ok := f.records[k]; !ok {
		return unavailabilityRepo.ErrNotFound
	}
	delete(f.records, k)
	f.deleted = append(f.deleted, k)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
}

func scheduledVisit(guideID int64, start string, duration int) *domain.Visit {
	return &domain.Visit{
		ID:              1,
		GuideID:         guideID,
		Date:            testDate(),
		StartTime:       toTimeString(start),
		DurationMinutes: duration,
		Status:          domain.VisitScheduled,
	}
}

func TestIsGuideAvailable_Overlaps(t *testing.T) {
	tests := []struct {
		name          string
		visitStart    string
		visitDuration int
		checkStart    string
		checkDuration int
		want          bool
	}{
		{
			name:       "overlapping window is busy",
			visitStart: "10:00", visitDuration: 60,
			checkStart: "10:30", checkDuration: 60,
			want: false,
		},
		{
			name:       "back to back is free",
			visitStart: "10:00", visitDuration: 60,
			checkStart: "11:00", checkDuration: 60,
			want: true,
		},
		{
			name:       "contained window is busy",
			visitStart: "09:00", visitDuration: 240,
			checkStart: "10:00", checkDuration: 30,
			want: false,
		},
		{
			name:       "earlier window ending at start is free",
			visitStart: "10:00", visitDuration: 60,
			checkStart: "09:00", checkDuration: 60,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(
				&fakeGuideRepo{},
				&fakeVisitRepo{visits: []*domain.Visit{scheduledVisit(7, tt.visitStart, tt.visitDuration)}},
				&fakeUnavailabilityRepo{},
				noopLogger{},
			)

			got, err := svc.IsGuideAvailable(context.Background(), 7, testDate(), domain.TimeWindow{
				Start:           toTimeString(tt.checkStart),
				DurationMinutes: tt.checkDuration,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsGuideAvailable_BlockedDay(t *testing.T) {
	unavail := &fakeUnavailabilityRepo{}
	_, err := unavail.Create(context.Background(), &domain.GuideUnavailability{GuideID: 7, Date: testDate()})
	require.NoError(t, err)

	svc := NewService(&fakeGuideRepo{}, &fakeVisitRepo{}, unavail, noopLogger{})

	got, err := svc.IsGuideAvailable(context.Background(), 7, testDate(), domain.TimeWindow{
		Start:           toTimeString("10:00"),
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.False(t, got, "blocked day must make the guide unavailable for any window")
}

func TestIsGuideAvailable_CancelledVisitIgnored(t *testing.T) {
	cancelled := scheduledVisit(7, "10:00", 60)
	cancelled.Status = domain.VisitCancelled

	svc := NewService(
		&fakeGuideRepo{},
		&fakeVisitRepo{visits: []*domain.Visit{cancelled}},
		&fakeUnavailabilityRepo{},
		noopLogger{},
	)

	got, err := svc.IsGuideAvailable(context.Background(), 7, testDate(), domain.TimeWindow{
		Start:           toTimeString("10:00"),
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestFindReplacements(t *testing.T) {
	guides := &fakeGuideRepo{
		active: []*domain.Guide{
			{ID: 1, FirstName: "Anna", LastName: "Berg", Country: "Norway", Status: domain.GuideActive},
			{ID: 2, FirstName: "Luis", LastName: "Costa", Country: "Portugal", Status: domain.GuideActive},
			{ID: 3, FirstName: "Mei", LastName: "Tan", Country: "Singapore", Status: domain.GuideActive},
		},
	}
	// Гид 2 занят пересекающимся визитом
	visits := &fakeVisitRepo{visits: []*domain.Visit{scheduledVisit(2, "10:30", 90)}}

	svc := NewService(guides, visits, &fakeUnavailabilityRepo{}, noopLogger{})

	excluded := int64(3)
	resp, err := svc.FindReplacements(context.Background(), testDate(), domain.TimeWindow{
		Start:           toTimeString("10:00"),
		DurationMinutes: 60,
	}, &excluded)
	require.NoError(t, err)
	require.Len(t, resp.Guides, 1)
	assert.Equal(t, int64(1), resp.Guides[0].ID)
	assert.Equal(t, "Anna", resp.Guides[0].FirstName)
}

func TestSetUnavailable_WarnsAboutExistingVisits(t *testing.T) {
	guides := &fakeGuideRepo{guides: map[int64]*domain.Guide{7: {ID: 7, Status: domain.GuideActive}}}
	visits := &fakeVisitRepo{visits: []*domain.Visit{scheduledVisit(7, "10:00", 60)}}
	unavail := &fakeUnavailabilityRepo{}

	svc := NewService(guides, visits, unavail, noopLogger{})

	resp, err := svc.SetUnavailable(context.Background(), &models.SetUnavailableRequest{
		GuideID: 7,
		Date:    testDate(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Warning, "blocking a day with visits must surface a warning")
	assert.Contains(t, *resp.Warning, "1 scheduled visit")
	assert.Len(t, unavail.created, 1, "record is created despite the conflict")
}

func TestSetUnavailable_NoVisitsNoWarning(t *testing.T) {
	guides := &fakeGuideRepo{guides: map[int64]*domain.Guide{7: {ID: 7}}}

	svc := NewService(guides, &fakeVisitRepo{}, &fakeUnavailabilityRepo{}, noopLogger{})

	resp, err := svc.SetUnavailable(context.Background(), &models.SetUnavailableRequest{
		GuideID: 7,
		Date:    testDate(),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Warning)
}

func TestSetUnavailable_GuideNotFound(t *testing.T) {
	svc := NewService(&fakeGuideRepo{}, &fakeVisitRepo{}, &fakeUnavailabilityRepo{}, noopLogger{})

	_, err := svc.SetUnavailable(context.Background(), &models.SetUnavailableRequest{
		GuideID: 99,
		Date:    testDate(),
	})
	assert.ErrorIs(t, err, ErrGuideNotFound)
}

func TestSetAvailable_RejectsWithScheduledVisit(t *testing.T) {
	guides := &fakeGuideRepo{guides: map[int64]*domain.Guide{7: {ID: 7}}}
	visits := &fakeVisitRepo{visits: []*domain.Visit{scheduledVisit(7, "10:00", 60)}}

	svc := NewService(guides, visits, &fakeUnavailabilityRepo{}, noopLogger{})

	_, err := svc.SetAvailable(context.Background(), 7, testDate())
	assert.ErrorIs(t, err, ErrConflictingSchedule)
}

func TestSetAvailable_IdempotentWhenNotBlocked(t *testing.T) {
	guides := &fakeGuideRepo{guides: map[int64]*domain.Guide{7: {ID: 7}}}

	svc := NewService(guides, &fakeVisitRepo{}, &fakeUnavailabilityRepo{}, noopLogger{})

	resp, err := svc.SetAvailable(context.Background(), 7, testDate())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.GuideID)
}

func TestGetDayAvailability(t *testing.T) {
	guides := &fakeGuideRepo{guides: map[int64]*domain.Guide{7: {ID: 7}}}
	visits := &fakeVisitRepo{visits: []*domain.Visit{scheduledVisit(7, "10:00", 60)}}
	unavail := &fakeUnavailabilityRepo{}
	reason := "sick leave"
	_, err := unavail.Create(context.Background(), &domain.GuideUnavailability{GuideID: 7, Date: testDate(), Reason: &reason})
	require.NoError(t, err)

	svc := NewService(guides, visits, unavail, noopLogger{})

	resp, err := svc.GetDayAvailability(context.Background(), 7, testDate())
	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "sick leave", *resp.Reason)
	assert.Equal(t, 1, resp.VisitCount)
}
