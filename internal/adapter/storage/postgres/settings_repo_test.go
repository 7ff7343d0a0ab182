package postgres

import (
	"context"
	"errors"
	"testing"

	"payment-settlement/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_ListByCategory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectQuery("SELECT category, key, value, encrypted FROM settings").
		WithArgs("card").
		WillReturnRows(pgxmock.NewRows([]string{"category", "key", "value", "encrypted"}).
			AddRow("card", "enabled", "true", false).
			AddRow("card", "secret_key", "enc:abc", true))

	settings, err := repo.ListByCategory(context.Background(), "card")
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, domain.Setting{Category: "card", Key: "secret_key", Value: "enc:abc", Encrypted: true}, settings[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_ListByCategory_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM settings").
		WithArgs("card").
		WillReturnError(errors.New("connection reset"))

	_, err = repo.ListByCategory(context.Background(), "card")
	assert.ErrorContains(t, err, "list settings")
}

func TestSettingsRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO settings .+ ON CONFLICT").
		WithArgs("regional", "store_id", "store-1", false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Upsert(context.Background(), tx, domain.Setting{Category: "regional", Key: "store_id", Value: "store-1"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
