package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"payment-settlement/internal/core/domain"
	"payment-settlement/internal/core/ports"
	"payment-settlement/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type codTestDeps struct {
	svc        *CODServiceImpl
	codRepo    *mocks.MockCODRepository
	orderRepo  *mocks.MockOrderRepository
	settlement *mocks.MockSettlementService
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupCODService(t *testing.T) *codTestDeps {
	ctrl := gomock.NewController(t)
	d := &codTestDeps{
		codRepo:    mocks.NewMockCODRepository(ctrl),
		orderRepo:  mocks.NewMockOrderRepository(ctrl),
		settlement: mocks.NewMockSettlementService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewCODService(d.codRepo, d.orderRepo, d.settlement, d.transactor, newTestLogger())
	d.svc.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return d
}

// expectLocked wires a tracking row through the mutate transaction.
func (d *codTestDeps) expectLocked(c *domain.CODTracking, update bool) {
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.codRepo.EXPECT().GetByOrderIDForUpdate(gomock.Any(), tx, c.OrderID).Return(c, nil)
	if update {
		d.codRepo.EXPECT().Update(gomock.Any(), tx, c).Return(nil)
	}
}

func TestCODService_Get(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.codRepo.EXPECT().GetByOrderID(ctx, "ord-1").Return(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODPending}, nil)
	d.codRepo.EXPECT().GetByOrderID(ctx, "ord-2").Return(nil, nil)

	c, err := d.svc.Get(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CODPending, c.Status)

	_, err = d.svc.Get(ctx, "ord-2")
	assertAppError(t, err, "ORD_001")
}

func TestCODService_RecordDeliveryAttempt_Failure(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	tracking := &domain.CODTracking{OrderID: "ord-1", Status: domain.CODPending}
	d.expectLocked(tracking, true)

	c, err := d.svc.RecordDeliveryAttempt(context.Background(), "ord-1", false, "")
	require.NoError(t, err)
	assert.Equal(t, domain.CODFailed, c.Status)
	assert.Equal(t, 1, c.DeliveryAttempts)
	require.NotNil(t, c.FailureReason)
	assert.Equal(t, "delivery failed", *c.FailureReason)
	require.NotNil(t, c.LastAttemptAt)
}

func TestCODService_RecordDeliveryAttempt_Success(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	tracking := &domain.CODTracking{OrderID: "ord-1", Status: domain.CODFailed, DeliveryAttempts: 1}
	d.expectLocked(tracking, true)

	c, err := d.svc.RecordDeliveryAttempt(context.Background(), "ord-1", true, "")
	require.NoError(t, err)
	assert.Equal(t, 2, c.DeliveryAttempts)
	assert.Equal(t, domain.CODFailed, c.Status, "a successful attempt alone does not collect")
}

func TestCODService_RecordDeliveryAttempt_AfterCollection(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	d.expectLocked(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODCollected}, false)

	_, err := d.svc.RecordDeliveryAttempt(context.Background(), "ord-1", false, "nobody home")
	assertAppError(t, err, "ORD_002")
}

func TestCODService_MarkCollected(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tracking := &domain.CODTracking{OrderID: "ord-1", Status: domain.CODPending}
	d.codRepo.EXPECT().GetByOrderID(ctx, "ord-1").Return(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODPending}, nil)
	d.expectLocked(tracking, true)
	d.settlement.EXPECT().SettlePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ev domain.ConfirmedPaymentEvent) (*ports.SettlementResult, error) {
			assert.Equal(t, domain.GatewayCOD, ev.Gateway)
			assert.Equal(t, int64(700), ev.Amount)
			assert.True(t, strings.HasPrefix(ev.Refs.CODReference, "COD-"))
			assert.Equal(t, "courier-7", ev.Metadata["collected_by"])
			return &ports.SettlementResult{OrderID: "ord-1", PaymentStatus: domain.PaymentStatusPaid}, nil
		})

	c, err := d.svc.MarkCollected(ctx, "ord-1", "courier-7", 700)
	require.NoError(t, err)
	assert.Equal(t, domain.CODCollected, c.Status)
	require.NotNil(t, c.CollectionRef)
	require.NotNil(t, c.CollectedAt)
}

func TestCODService_MarkCollected_RetryReusesReference(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ref, by, amount := "COD-01HQ", "courier-7", int64(700)
	d.codRepo.EXPECT().GetByOrderID(ctx, "ord-1").Return(&domain.CODTracking{
		OrderID: "ord-1", Status: domain.CODCollected, CollectionRef: &ref, CollectedBy: &by, CollectedAmount: &amount,
	}, nil)
	d.settlement.EXPECT().SettlePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ev domain.ConfirmedPaymentEvent) (*ports.SettlementResult, error) {
			assert.Equal(t, "COD-01HQ", ev.Refs.CODReference)
			return &ports.SettlementResult{OrderID: "ord-1", AlreadySettled: true}, nil
		})
	// no mutation on retry

	c, err := d.svc.MarkCollected(ctx, "ord-1", "someone-else", 999)
	require.NoError(t, err)
	assert.Equal(t, "COD-01HQ", *c.CollectionRef)
}

func TestCODService_MarkCollected_InvalidAmount(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.MarkCollected(context.Background(), "ord-1", "courier", 0)
	assertAppError(t, err, "PAY_002")
}

func TestCODService_MarkCollected_AfterReturn(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.codRepo.EXPECT().GetByOrderID(ctx, "ord-1").Return(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODReturned}, nil)
	d.expectLocked(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODReturned}, false)

	_, err := d.svc.MarkCollected(ctx, "ord-1", "courier", 100)
	assertAppError(t, err, "ORD_002")
}

func TestCODService_MarkReturned(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.expectLocked(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODFailed, DeliveryAttempts: 3}, true)
	d.orderRepo.EXPECT().UpdateFulfillmentStatus(ctx, "ord-1", domain.FulfillmentReturned).Return(nil)
	d.settlement.EXPECT().ReleaseOrderInventory(gomock.Any(), "ord-1").Return(errors.New("inventory down"))

	c, err := d.svc.MarkReturned(ctx, "ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CODReturned, c.Status)
}

func TestCODService_MarkReturned_RequiresFailedDelivery(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	d.expectLocked(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODPending}, false)

	_, err := d.svc.MarkReturned(context.Background(), "ord-1")
	assertAppError(t, err, "ORD_002")
}

func TestCODService_Mutate_UpdateError(t *testing.T) {
	d := setupCODService(t)
	defer d.ctrl.Finish()

	tx := &mockTx{}
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.codRepo.EXPECT().GetByOrderIDForUpdate(gomock.Any(), tx, "ord-1").Return(&domain.CODTracking{OrderID: "ord-1", Status: domain.CODPending}, nil)
	d.codRepo.EXPECT().Update(gomock.Any(), tx, gomock.Any()).Return(errors.New("deadlock"))

	_, err := d.svc.RecordDeliveryAttempt(context.Background(), "ord-1", true, "")
	assertAppError(t, err, "SYS_001")
}
