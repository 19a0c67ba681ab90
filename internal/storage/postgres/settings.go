// internal/storage/postgres/settings.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const settingsColumns = `id, username, dark_mode, email_notifications,
	notifications_frequency, created_at, updated_at`

// SettingsRepo implements the storage.SettingsRepository interface using
// PostgreSQL.
type SettingsRepo struct {
	db Querier
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// WithTx creates a new SettingsRepo bound to the transaction.
func (r *SettingsRepo) WithTx(tx pgx.Tx) storage.SettingsRepository {
	return &SettingsRepo{db: tx}
}

var _ storage.SettingsRepository = (*SettingsRepo)(nil)

func scanSettings(row pgx.Row) (*models.Settings, error) {
	var s models.Settings
	err := row.Scan(
		&s.ID,
		&s.Username,
		&s.DarkMode,
		&s.EmailNotifications,
		&s.NotificationsFrequency,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByUsername retrieves the settings document for one username.
func (r *SettingsRepo) GetByUsername(ctx context.Context, req *dto.GetSettingsRequest) (*models.Settings, error) {
	query := fmt.Sprintf(`SELECT %s FROM settings WHERE username = $1`, settingsColumns)

	s, err := scanSettings(r.db.QueryRow(ctx, query, req.Username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Settings not found for username: %s\n", req.Username)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning settings for %s: %v\n", req.Username, err)
		return nil, fmt.Errorf("failed to get settings for %s: %w", req.Username, err)
	}

	return s, nil
}

// Upsert writes the settings document for one username, creating it when
// absent. Omitted fields keep their stored values; on first write they land
// on the defaults.
func (r *SettingsRepo) Upsert(ctx context.Context, req *dto.UpsertSettingsRequest) (*models.Settings, error) {
	query := fmt.Sprintf(`
		INSERT INTO settings (id, username, dark_mode, email_notifications, notifications_frequency, created_at, updated_at)
		VALUES ($1, $2, COALESCE($3::boolean, FALSE), COALESCE($4::boolean, TRUE), COALESCE($5::text, 'daily'), NOW(), NOW())
		ON CONFLICT (username) DO UPDATE
		SET dark_mode = COALESCE($3::boolean, settings.dark_mode),
			email_notifications = COALESCE($4::boolean, settings.email_notifications),
			notifications_frequency = COALESCE($5::text, settings.notifications_frequency),
			updated_at = NOW()
		RETURNING %s
	`, settingsColumns)

	s, err := scanSettings(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Username,
		req.DarkMode,
		req.EmailNotifications,
		req.NotificationsFrequency,
	))
	if err != nil {
		log.Printf("Error upserting settings for %s: %v\n", req.Username, err)
		return nil, fmt.Errorf("failed to upsert settings for %s: %w", req.Username, err)
	}

	log.Printf("Settings saved for username: %s", s.Username)
	return s, nil
}
