package postgres

import (
	"context"
	"testing"
	"time"

	"payment-settlement/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codRow(c *domain.CODTracking) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"order_id", "status", "delivery_attempts", "collected_by", "collected_amount", "collection_ref",
		"collected_at", "failure_reason", "last_attempt_at", "created_at", "updated_at",
	}).AddRow(
		c.OrderID, string(c.Status), c.DeliveryAttempts, c.CollectedBy, c.CollectedAmount, c.CollectionRef,
		c.CollectedAt, c.FailureReason, c.LastAttemptAt, c.CreatedAt, c.UpdatedAt,
	)
}

func TestCODRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCODRepo(mock)
	now := time.Now().UTC()
	c := &domain.CODTracking{OrderID: "ord-1", Status: domain.CODPending, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO cod_tracking").
		WithArgs("ord-1", "pending", 0, now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCODRepo_GetByOrderIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCODRepo(mock)
	now := time.Now().UTC()
	reason := "customer absent"
	c := &domain.CODTracking{
		OrderID: "ord-1", Status: domain.CODFailed, DeliveryAttempts: 2,
		FailureReason: &reason, LastAttemptAt: &now, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM cod_tracking WHERE order_id .+ FOR UPDATE").
		WithArgs("ord-1").
		WillReturnRows(codRow(c))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	got, err := repo.GetByOrderIDForUpdate(context.Background(), tx, "ord-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.CODFailed, got.Status)
	assert.Equal(t, 2, got.DeliveryAttempts)
	assert.Equal(t, "customer absent", *got.FailureReason)
}

func TestCODRepo_GetByOrderID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCODRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM cod_tracking").
		WithArgs("ord-x").
		WillReturnRows(pgxmock.NewRows([]string{"order_id"}))

	got, err := repo.GetByOrderID(context.Background(), "ord-x")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCODRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCODRepo(mock)
	now := time.Now().UTC()
	by := "rider-7"
	amount := int64(1500)
	ref := "01HZX"
	c := &domain.CODTracking{
		OrderID: "ord-1", Status: domain.CODCollected, DeliveryAttempts: 1,
		CollectedBy: &by, CollectedAmount: &amount, CollectionRef: &ref, CollectedAt: &now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cod_tracking .+ GREATEST").
		WithArgs("collected", 1, &by, &amount, &ref, &now, (*string)(nil), (*time.Time)(nil), "ord-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Update(context.Background(), tx, c))
	assert.NoError(t, mock.ExpectationsWereMet())
}
