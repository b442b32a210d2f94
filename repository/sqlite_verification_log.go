package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/akinalp/vynk/database"
	"github.com/akinalp/vynk/models"
)

type sqliteVerificationLogRepo struct {
	db  database.TxQuerier
	now func() time.Time
}

// NewSQLiteVerificationLogRepo, constructor.
func NewSQLiteVerificationLogRepo(db database.TxQuerier) VerificationLogRepository {
	return &sqliteVerificationLogRepo{db: db, now: time.Now}
}

func (r *sqliteVerificationLogRepo) Create(ctx context.Context, log *models.VerificationLog) error {
	if log.VerifiedAt.IsZero() {
		log.VerifiedAt = r.now().UTC()
	}

	// verified_at açıkça yazılır: CURRENT_TIMESTAMP saniye çözünürlüklüdür,
	// aynı saniyedeki kayıtlar sıralamada ayırt edilemez.
	query := `
		INSERT INTO verification_logs (server_id, user_id, user_ip, verified_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		log.ServerID, log.UserID, log.UserIP,
		log.VerifiedAt.UTC().Format(database.TimeLayout),
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("failed to create verification log: %w", err)
	}

	return nil
}

func (r *sqliteVerificationLogRepo) ListByServer(ctx context.Context, serverID string, limit int) ([]models.VerificationLog, error) {
	query := `
		SELECT id, server_id, user_id, user_ip, verified_at
		FROM verification_logs
		WHERE server_id = ?
		ORDER BY verified_at DESC, id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, serverID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list verification logs: %w", err)
	}
	defer rows.Close()

	logs := make([]models.VerificationLog, 0)
	for rows.Next() {
		var l models.VerificationLog
		if err := rows.Scan(&l.ID, &l.ServerID, &l.UserID, &l.UserIP, &l.VerifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan verification log row: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating verification log rows: %w", err)
	}

	return logs, nil
}
