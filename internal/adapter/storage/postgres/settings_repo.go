package postgres

import (
	"context"
	"fmt"

	"payment-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SettingsRepo implements ports.SettingsRepository.
type SettingsRepo struct {
	pool Pool
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(pool Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// ListByCategory returns all key/value rows of a category.
func (r *SettingsRepo) ListByCategory(ctx context.Context, category string) ([]domain.Setting, error) {
	query := `SELECT category, key, value, encrypted FROM settings WHERE category = $1 ORDER BY key`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Category, &s.Key, &s.Value, &s.Encrypted); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// Upsert writes one setting within a transaction.
func (r *SettingsRepo) Upsert(ctx context.Context, tx pgx.Tx, s domain.Setting) error {
	query := `INSERT INTO settings (category, key, value, encrypted, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (category, key) DO UPDATE
			SET value = EXCLUDED.value, encrypted = EXCLUDED.encrypted, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, s.Category, s.Key, s.Value, s.Encrypted); err != nil {
		return fmt.Errorf("upsert setting %s.%s: %w", s.Category, s.Key, err)
	}
	return nil
}
