package refunds

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelparadise/TP-VisitService/internal/domain"
	refundRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/refund"
	visitRepo "github.com/travelparadise/TP-VisitService/internal/infra/storage/visit"
	"github.com/travelparadise/TP-VisitService/internal/integrations/notifier"
	"github.com/travelparadise/TP-VisitService/internal/integrations/staffservice"
	"github.com/travelparadise/TP-VisitService/internal/service/refunds/models"
)

type fakeRefundRepo struct {
	refunds    map[int64]*domain.Refund
	nextID     int64
	hasPending bool
	decisions  []domain.RefundStatus
}

func (f *fakeRefundRepo) Create(_ context.Context, refund *domain.Refund) (*domain.Refund, error) {
	if f.refunds == nil {
		f.refunds = make(map[int64]*domain.Refund)
	}
	f.nextID++
	refund.ID = f.nextID
	f.refunds[refund.ID] = refund
	return refund, nil
}

func (f *fakeRefundRepo) GetByID(_ context.Context, id int64) (*domain.Refund, error) {
	r, ok := f.refunds[id]
	if !ok {
		return nil, refundRepo.ErrRefundNotFound
	}
	return r, nil
}

func (f *fakeRefundRepo) HasPendingByVisit(_ context.Context, _ int64) (bool, error) {
	return f.hasPending, nil
}

func (f *fakeRefundRepo) UpdateDecision(_ context.Context, id int64, status domain.RefundStatus, rejectionReason *string, processedBy int64, processedAt time.Time) error {
	r, ok := f.refunds[id]
	if !ok {
		return refundRepo.ErrRefundNotFound
	}
	r.Status = status
	r.RejectionReason = rejectionReason
	r.ProcessedBy = &processedBy
	r.ProcessedAt = &processedAt
	f.decisions = append(f.decisions, status)
	return nil
}

func (f *fakeRefundRepo) ListPending(_ context.Context) ([]*domain.Refund, error) {
	result := make([]*domain.Refund, 0)
	for _, r := range f.refunds {
		if r.Status == domain.RefundPending {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRefundRepo) ListByVisit(_ context.Context, visitID int64) ([]*domain.Refund, error) {
	result := make([]*domain.Refund, 0)
	for _, r := range f.refunds {
		if r.VisitID == visitID {
			result = append(result, r)
		}
	}
	return result, nil
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

type fakeNotifier struct {
	events []notifier.RefundDecisionEvent
	err    error
}

func (f *fakeNotifier) NotifyRefundDecision(_ context.Context, event notifier.RefundDecisionEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func testNow() time.Time {
	return time.Date(2026, 6, 5, 14, 30, 0, 0, time.UTC)
}

func visitOn(date time.Time) map[int64]*domain.Visit {
	return map[int64]*domain.Visit{
		10: {ID: 10, GuideID: 7, Date: date, Status: domain.VisitScheduled},
	}
}

func staffUsers() map[int64]*staffservice.User {
	return map[int64]*staffservice.User{
		1: {ID: 1, Role: staffservice.RoleManager},
		2: {ID: 2, Role: staffservice.RoleGuide},
	}
}

func newRefundService(refunds *fakeRefundRepo, visits *fakeVisitRepo) *Service {
	return NewService(refunds, visits, &fakeStaffClient{users: staffUsers()}, &fakeNotifier{}, noopLogger{}).
		WithTimeProvider(fixedTime{t: testNow()})
}

func TestRequestRefund_AmountPolicy(t *testing.T) {
	tests := []struct {
		name       string
		daysAhead  int
		basePrice  float64
		wantAmount float64
	}{
		{name: "10 days ahead full refund", daysAhead: 10, basePrice: 100, wantAmount: 100},
		{name: "8 days ahead full refund", daysAhead: 8, basePrice: 100, wantAmount: 100},
		{name: "7 days ahead half refund", daysAhead: 7, basePrice: 100, wantAmount: 50},
		{name: "5 days ahead half refund", daysAhead: 5, basePrice: 200, wantAmount: 100},
		{name: "3 days ahead half refund", daysAhead: 3, basePrice: 100, wantAmount: 50},
		{name: "2 days ahead no refund", daysAhead: 2, basePrice: 100, wantAmount: 0},
		{name: "visit day no refund", daysAhead: 0, basePrice: 100, wantAmount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitDate := testNow().AddDate(0, 0, tt.daysAhead)
			svc := newRefundService(&fakeRefundRepo{}, &fakeVisitRepo{visits: visitOn(visitDate)})

			resp, err := svc.RequestRefund(context.Background(), &models.RequestRefundRequest{
				VisitID:     10,
				BasePrice:   tt.basePrice,
				Reason:      "change of plans",
				RequestedBy: 2,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, resp.Amount)
			assert.Equal(t, string(domain.RefundPending), resp.Status)
		})
	}
}

func TestRequestRefund_PendingDuplicateRejected(t *testing.T) {
	repo := &fakeRefundRepo{hasPending: true}
	svc := newRefundService(repo, &fakeVisitRepo{visits: visitOn(testNow().AddDate(0, 0, 10))})

	_, err := svc.RequestRefund(context.Background(), &models.RequestRefundRequest{
		VisitID:     10,
		BasePrice:   100,
		Reason:      "change of plans",
		RequestedBy: 2,
	})
	assert.ErrorIs(t, err, ErrPendingRefundExists)
}

func TestRequestRefund_Validation(t *testing.T) {
	svc := newRefundService(&fakeRefundRepo{}, &fakeVisitRepo{visits: visitOn(testNow())})

	_, err := svc.RequestRefund(context.Background(), &models.RequestRefundRequest{
		VisitID: 10, BasePrice: -1, Reason: "x", RequestedBy: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RequestRefund(context.Background(), &models.RequestRefundRequest{
		VisitID: 10, BasePrice: 100, RequestedBy: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RequestRefund(context.Background(), &models.RequestRefundRequest{
		VisitID: 404, BasePrice: 100, Reason: "x", RequestedBy: 2,
	})
	assert.ErrorIs(t, err, ErrVisitNotFound)
}

func TestRejectRefund(t *testing.T) {
	repo := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, VisitID: 10, Amount: 50, Status: domain.RefundPending},
	}}
	svc := newRefundService(repo, &fakeVisitRepo{})

	resp, err := svc.RejectRefund(context.Background(), 5, &models.RejectRefundRequest{
		Reason:      "outside refund window",
		ProcessedBy: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.RefundRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "outside refund window", *resp.RejectionReason)
	require.NotNil(t, resp.ProcessedBy)
	assert.Equal(t, int64(1), *resp.ProcessedBy)
}

func TestRejectRefund_AlreadyProcessed(t *testing.T) {
	repo := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, VisitID: 10, Status: domain.RefundApproved},
	}}
	svc := newRefundService(repo, &fakeVisitRepo{})

	_, err := svc.RejectRefund(context.Background(), 5, &models.RejectRefundRequest{
		Reason:      "late",
		ProcessedBy: 1,
	})
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestRejectRefund_ManagerOnly(t *testing.T) {
	repo := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, VisitID: 10, Status: domain.RefundPending},
	}}
	svc := newRefundService(repo, &fakeVisitRepo{})

	_, err := svc.RejectRefund(context.Background(), 5, &models.RejectRefundRequest{
		Reason:      "late",
		ProcessedBy: 2, // guide
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestRejectRefund_SendsNotification(t *testing.T) {
	repo := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, VisitID: 10, Amount: 50, Status: domain.RefundPending},
	}}
	notif := &fakeNotifier{}
	svc := NewService(repo, &fakeVisitRepo{}, &fakeStaffClient{users: staffUsers()}, notif, noopLogger{}).
		WithTimeProvider(fixedTime{t: testNow()})

	_, err := svc.RejectRefund(context.Background(), 5, &models.RejectRefundRequest{
		Reason:      "late",
		ProcessedBy: 1,
	})
	require.NoError(t, err)
	require.Len(t, notif.events, 1)
	assert.Equal(t, int64(5), notif.events[0].RefundID)
	assert.Equal(t, string(domain.RefundRejected), notif.events[0].Status)
}

func TestListPending(t *testing.T) {
	repo := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		1: {ID: 1, VisitID: 10, Status: domain.RefundPending},
		2: {ID: 2, VisitID: 11, Status: domain.RefundApproved},
	}}
	svc := newRefundService(repo, &fakeVisitRepo{})

	resp, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Refunds, 1)
	assert.Equal(t, int64(1), resp.Refunds[0].ID)
}
