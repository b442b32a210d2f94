// Package repository — ServerRepository'nin SQLite implementasyonu.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/vynk/database"
	"github.com/akinalp/vynk/models"
	"github.com/akinalp/vynk/pkg"
)

type sqliteServerRepo struct {
	db database.TxQuerier
}

// NewSQLiteServerRepo, constructor.
func NewSQLiteServerRepo(db database.TxQuerier) ServerRepository {
	return &sqliteServerRepo{db: db}
}

func (r *sqliteServerRepo) ListInstalled(ctx context.Context) ([]models.ServerListItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM servers`)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer rows.Close()

	servers := make([]models.ServerListItem, 0)
	for rows.Next() {
		var s models.ServerListItem
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan server row: %w", err)
		}
		servers = append(servers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating server rows: %w", err)
	}

	return servers, nil
}

func (r *sqliteServerRepo) GetByID(ctx context.Context, serverID string) (*models.Server, error) {
	query := `
		SELECT id, name, owner_id, verified_role_id, log_channel_id, welcome_message
		FROM servers WHERE id = ?`

	s := &models.Server{}
	err := r.db.QueryRowContext(ctx, query, serverID).Scan(
		&s.ID, &s.Name, &s.OwnerID,
		&s.VerifiedRoleID, &s.LogChannelID, &s.WelcomeMessage,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	return s, nil
}

func (r *sqliteServerRepo) UpdateConfig(ctx context.Context, serverID string, cfg *models.ServerConfig) error {
	query := `
		UPDATE servers SET verified_role_id = ?, log_channel_id = ?, welcome_message = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		cfg.VerifiedRoleID, cfg.LogChannelID, cfg.WelcomeMessage, serverID,
	)
	if err != nil {
		return fmt.Errorf("failed to update server config: %w", err)
	}

	return nil
}
