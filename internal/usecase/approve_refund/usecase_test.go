package approve_refund

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
)

type fakeRefundRepo struct {
	refunds map[int64]*domain.Refund
}

func (f *fakeRefundRepo) GetByID(_ context.Context, id int64) (*domain.Refund, error) {
	r, ok := f.refunds[id]
	if !ok {
		return nil, refundRepo.ErrRefundNotFound
	}
	return r, nil
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
	return nil
}

type fakeVisitRepo struct {
	visits     map[int64]*domain.Visit
	lastReason *string
}

func (f *fakeVisitRepo) GetByID(_ context.Context, id int64) (*domain.Visit, error) {
	v, ok := f.visits[id]
	if !ok {
		return nil, visitRepo.ErrVisitNotFound
	}
	return v, nil
}

func (f *fakeVisitRepo) UpdateStatus(_ context.Context, id int64, status domain.VisitStatus, reason *string) error {
	v, ok := f.visits[id]
	if !ok {
		return visitRepo.ErrVisitNotFound
	}
	v.Status = status
	f.lastReason = reason
	return nil
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
}

func (f *fakeNotifier) NotifyRefundDecision(_ context.Context, event notifier.RefundDecisionEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fixture struct {
	refunds  *fakeRefundRepo
	visits   *fakeVisitRepo
	notifier *fakeNotifier
	uc       *UseCase
}

func newFixture(visitStatus domain.VisitStatus) *fixture {
	refunds := &fakeRefundRepo{refunds: map[int64]*domain.Refund{
		5: {ID: 5, VisitID: 10, Amount: 50, Reason: "change of plans", Status: domain.RefundPending},
	}}
	visits := &fakeVisitRepo{visits: map[int64]*domain.Visit{
		10: {ID: 10, GuideID: 7, Status: visitStatus},
	}}
	staff := &fakeStaffClient{users: map[int64]*staffservice.User{
		1: {ID: 1, Role: staffservice.RoleManager},
		2: {ID: 2, Role: staffservice.RoleGuide},
	}}
	notif := &fakeNotifier{}

	uc := NewUseCase(refunds, visits, staff, notif, fakeTxManager{}, noopLogger{}).
		WithTimeProvider(fixedTime{t: time.Date(2026, 6, 5, 14, 0, 0, 0, time.UTC)})

	return &fixture{refunds: refunds, visits: visits, notifier: notif, uc: uc}
}

func TestExecute(t *testing.T) {
	fx := newFixture(domain.VisitScheduled)

	resp, err := fx.uc.Execute(context.Background(), &Request{RefundID: 5, ProcessedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, string(domain.RefundApproved), resp.Status)
	assert.Equal(t, string(domain.VisitCancelled), resp.VisitStatus)

	// Визит отменён каскадно, причина возврата записана как причина отмены
	assert.Equal(t, domain.VisitCancelled, fx.visits.visits[10].Status)
	require.NotNil(t, fx.visits.lastReason)
	assert.Contains(t, *fx.visits.lastReason, "change of plans")
}

func TestExecute_CancelsCompletedVisit(t *testing.T) {
	// Возврат задним числом: завершённый визит тоже отменяется
	fx := newFixture(domain.VisitCompleted)

	resp, err := fx.uc.Execute(context.Background(), &Request{RefundID: 5, ProcessedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, string(domain.VisitCancelled), resp.VisitStatus)
	assert.Equal(t, domain.VisitCancelled, fx.visits.visits[10].Status)
}

func TestExecute_AlreadyCancelledVisitLeftAlone(t *testing.T) {
	fx := newFixture(domain.VisitCancelled)

	resp, err := fx.uc.Execute(context.Background(), &Request{RefundID: 5, ProcessedBy: 1})
	require.NoError(t, err)
	assert.Equal(t, string(domain.VisitCancelled), resp.VisitStatus)
	assert.Nil(t, fx.visits.lastReason, "no second cancellation write")
}

func TestExecute_AlreadyProcessed(t *testing.T) {
	fx := newFixture(domain.VisitScheduled)
	fx.refunds.refunds[5].Status = domain.RefundApproved

	_, err := fx.uc.Execute(context.Background(), &Request{RefundID: 5, ProcessedBy: 1})
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestExecute_ManagerOnly(t *testing.T) {
	fx := newFixture(domain.VisitScheduled)

	_, err := fx.uc.Execute(context.Background(), &Request{RefundID: 5, ProcessedBy: 2})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Возврат не тронут
	assert.Equal(t, domain.RefundPending, fx.refunds.refunds[5].Status)
}

func TestExecute_RefundNotFound(t *testing.T) {
	fx := newFixture(domain.VisitScheduled)

	_, err := fx.uc.Execute(context.Background(), &Request{RefundID: 404, ProcessedBy: 1})
	assert.ErrorIs(t, err, ErrRefundNotFound)
}

func TestExecute_SendsNotification(t *testing.T) {
	fx := newFixture(domain.VisitScheduled)

	_, err := fx.uc.Execute(context.Background(), &Request{RefundID: 5, ProcessedBy: 1})
	require.NoError(t, err)
	require.Len(t, fx.notifier.events, 1)
	assert.Equal(t, int64(5), fx.notifier.events[0].RefundID)
	assert.Equal(t, string(domain.RefundApproved), fx.notifier.events[0].Status)
	assert.InDelta(t, 50, fx.notifier.events[0].Amount, 0.0001)
}
