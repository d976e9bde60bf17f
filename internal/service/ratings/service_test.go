package ratings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	ratingRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/rating"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
	"github.com/travelparadise/TP-VisitService/internal/integrations/staffservice"
	"github.com/travelparadise/TP-VisitService/internal/service/ratings/models"
)

type fakeRatingRepo struct {
	ratings   map[int64]*domain.Rating
	nextID    int64
	duplicate bool
}

func (f *fakeRatingRepo) Create(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	if f.duplicate {
		return nil, ratingRepo.ErrDuplicateRating
	}
	if f.ratings == nil {
		f.ratings = make(map[int64]*domain.Rating)
	}
	f.nextID++
	rating.ID = f.nextID
	rating.CreatedAt = time.Date(2026, 6, 16, 9, 0, 0, 0, time.UTC)
	f.ratings[rating.ID] = rating
	return rating, nil
}

func (f *fakeRatingRepo) GetByID(_ context.Context, id int64) (*domain.Rating, error) {
	r, ok := f.ratings[id]
	if !ok {
		return nil, ratingRepo.ErrRatingNotFound
	}
	return r, nil
}

func (f *fakeRatingRepo) UpdateStatus(_ context.Context, id int64, status domain.RatingStatus) error {
	r, ok := f.ratings[id]
	if !ok {
		return ratingRepo.ErrRatingNotFound
	}
	r.Status = status
	return nil
}

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

type fakeStaffClient struct {
	users map[int64]*staffservice.User
}

func (f *fakeStaffClient) GetUser(_ context.Context, userID int64) (*staffservice.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, staffservice.ErrUserNotFound
	}
	return u, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newRatingService(ratings *fakeRatingRepo) *Service {
	visits := &fakeVisitRepo{visits: map[int64]*domain.Visit{
		10: {ID: 10, GuideID: 7, Status: domain.VisitCompleted},
	}}
	staff := &fakeStaffClient{users: map[int64]*staffservice.User{
		1: {ID: 1, Role: staffservice.RoleManager},
		2: {ID: 2, Role: staffservice.RoleGuide},
	}}
	return NewService(ratings, visits, staff, noopLogger{})
}

func TestCreate(t *testing.T) {
	svc := newRatingService(&fakeRatingRepo{})

	resp, err := svc.Create(context.Background(), &models.CreateRatingRequest{
		VisitID: 10,
		UserID:  5,
		Score:   4,
		Comment: "knowledgeable guide",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Score)
	assert.Equal(t, string(domain.RatingPending), resp.Status)
}

func TestCreate_ScoreBounds(t *testing.T) {
	svc := newRatingService(&fakeRatingRepo{})

	for _, score := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), &models.CreateRatingRequest{
			VisitID: 10, UserID: 5, Score: score,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "score %d must be rejected", score)
	}

	for _, score := range []int{1, 5} {
		_, err := svc.Create(context.Background(), &models.CreateRatingRequest{
			VisitID: 10, UserID: int64(100 + score), Score: score,
		})
		assert.NoError(t, err, "score %d must be accepted", score)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	svc := newRatingService(&fakeRatingRepo{duplicate: true})

	_, err := svc.Create(context.Background(), &models.CreateRatingRequest{
		VisitID: 10, UserID: 5, Score: 4,
	})
	assert.ErrorIs(t, err, ErrDuplicateRating)
}

func TestCreate_VisitNotFound(t *testing.T) {
	svc := newRatingService(&fakeRatingRepo{})

	_, err := svc.Create(context.Background(), &models.CreateRatingRequest{
		VisitID: 404, UserID: 5, Score: 4,
	})
	assert.ErrorIs(t, err, ErrVisitNotFound)
}

func TestModerate(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.RatingStatus
		to      string
		wantErr error
	}{
		{name: "pending to approved", from: domain.RatingPending, to: "approved"},
		{name: "pending to rejected", from: domain.RatingPending, to: "rejected"},
		{name: "pending to flagged", from: domain.RatingPending, to: "flagged"},
		{name: "flagged can be re-moderated", from: domain.RatingFlagged, to: "approved"},
		{name: "approved is terminal", from: domain.RatingApproved, to: "rejected", wantErr: ErrAlreadyModerated},
		{name: "rejected is terminal", from: domain.RatingRejected, to: "approved", wantErr: ErrAlreadyModerated},
		{name: "unknown status", from: domain.RatingPending, to: "archived", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRatingRepo{ratings: map[int64]*domain.Rating{
				3: {ID: 3, VisitID: 10, UserID: 5, Score: 4, Status: tt.from},
			}}
			svc := newRatingService(repo)

			resp, err := svc.Moderate(context.Background(), 3, &models.ModerateRatingRequest{
				Status:      tt.to,
				ModeratorID: 1,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
		})
	}
}

func TestModerate_ManagerOnly(t *testing.T) {
	repo := &fakeRatingRepo{ratings: map[int64]*domain.Rating{
		3: {ID: 3, Status: domain.RatingPending},
	}}
	svc := newRatingService(repo)

	_, err := svc.Moderate(context.Background(), 3, &models.ModerateRatingRequest{
		Status:      "approved",
		ModeratorID: 2, // guide
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
