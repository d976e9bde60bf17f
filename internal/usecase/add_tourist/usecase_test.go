package add_tourist

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
)

type fakeVisitRepo struct {
	visits map[int64]*domain.Visit
}

func (f *fakeVisitRepo) GetByID(_ context.Context, id int64) (*domain.Visit, error) {
	v, ok := f.visits[id]
	if !ok {
		return nil, visitRepo.ErrVisitNotFound
	}
	return v, nil
}

type fakeTouristRepo struct {
	tourists []*domain.Tourist
	nextID   int64
}

func (f *fakeTouristRepo) Create(_ context.Context, tourist *domain.Tourist) (*domain.Tourist, error) {
	f.nextID++
	tourist.ID = f.nextID
	tourist.CreatedAt = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	f.tourists = append(f.tourists, tourist)
	return tourist, nil
}

func (f *fakeTouristRepo) CountByVisit(_ context.Context, visitID int64) (int, error) {
	count := 0
	for _, t := range f.tourists {
		if t.VisitID == visitID {
			count++
		}
	}
	return count, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newUseCase(visitStatus domain.VisitStatus) (*UseCase, *fakeTouristRepo) {
	visits := &fakeVisitRepo{visits: map[int64]*domain.Visit{
		10: {ID: 10, GuideID: 7, Status: visitStatus},
	}}
	tourists := &fakeTouristRepo{}
	return NewUseCase(visits, tourists, fakeTxManager{}, noopLogger{}), tourists
}

func TestExecute(t *testing.T) {
	uc, _ := newUseCase(domain.VisitScheduled)

	resp, err := uc.Execute(context.Background(), &Request{
		VisitID:   10,
		FirstName: "Marta",
		LastName:  "Lind",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.False(t, resp.IsPresent, "new tourist starts absent")
}

func TestExecute_CapacityLimit(t *testing.T) {
	uc, _ := newUseCase(domain.VisitScheduled)

	// Первые 15 туристов помещаются
	for i := 0; i < domain.MaxTouristsPerVisit; i++ {
		_, err := uc.Execute(context.Background(), &Request{
			VisitID:   10,
			FirstName: "Tourist",
			LastName:  fmt.Sprintf("Number%d", i+1),
		})
		require.NoError(t, err, "tourist %d must fit", i+1)
	}

	// Шестнадцатый - нет
	_, err := uc.Execute(context.Background(), &Request{
		VisitID:   10,
		FirstName: "One",
		LastName:  "TooMany",
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_TerminalVisitRejected(t *testing.T) {
	for _, status := range []domain.VisitStatus{domain.VisitCompleted, domain.VisitCancelled} {
		uc, _ := newUseCase(status)

		_, err := uc.Execute(context.Background(), &Request{
			VisitID:   10,
			FirstName: "Marta",
			LastName:  "Lind",
		})
		assert.ErrorIs(t, err, ErrVisitNotActive, "status %s must reject tourists", status)
	}
}

func TestExecute_InProgressAllowed(t *testing.T) {
	uc, _ := newUseCase(domain.VisitInProgress)

	_, err := uc.Execute(context.Background(), &Request{
		VisitID:   10,
		FirstName: "Marta",
		LastName:  "Lind",
	})
	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newUseCase(domain.VisitScheduled)

	_, err := uc.Execute(context.Background(), &Request{VisitID: 10, LastName: "Lind"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VisitID: 10, FirstName: "Marta"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VisitID: 0, FirstName: "Marta", LastName: "Lind"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_VisitNotFound(t *testing.T) {
	uc, _ := newUseCase(domain.VisitScheduled)

	_, err := uc.Execute(context.Background(), &Request{
		VisitID:   404,
		FirstName: "Marta",
		LastName:  "Lind",
	})
	assert.ErrorIs(t, err, ErrVisitNotFound)
}
