package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

type PERMSRepository interface {
	FindByClient(ctx context.Context, clientID string) ([]models.PERMSEntry, error)
	Upsert(ctx context.Context, entry models.PERMSEntry) error
	Delete(ctx context.Context, id string) error
}

type SQLitePERMSRepository struct {
	database *sql.DB
}

func NewPERMSRepository(database *sql.DB) *SQLitePERMSRepository {
	return &SQLitePERMSRepository{database: database}
}

func (repository *SQLitePERMSRepository) FindByClient(ctx context.Context, clientID string) ([]models.PERMSEntry, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, client_id, quarter, assessed_at, score_p, score_e, score_r, score_m, score_s, created_at
		FROM perms_history WHERE client_id = ? ORDER BY assessed_at ASC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("finding perms history: %w", err)
	}
	defer rows.Close()

	var entries []models.PERMSEntry
	for rows.Next() {
		var entry models.PERMSEntry
		if err := rows.Scan(
			&entry.ID, &entry.ClientID, &entry.Quarter, &entry.AssessedAt,
			&entry.Scores.P, &entry.Scores.E, &entry.Scores.R, &entry.Scores.M, &entry.Scores.S,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning perms entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Upsert writes one assessment per client per quarter.
func (repository *SQLitePERMSRepository) Upsert(ctx context.Context, entry models.PERMSEntry) error {
	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO perms_history (id, client_id, quarter, assessed_at, score_p, score_e, score_r, score_m, score_s, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (client_id, quarter) DO UPDATE SET
			assessed_at = excluded.assessed_at,
			score_p = excluded.score_p,
			score_e = excluded.score_e,
			score_r = excluded.score_r,
			score_m = excluded.score_m,
			score_s = excluded.score_s`,
		uuid.NewString(), entry.ClientID, entry.Quarter, entry.AssessedAt,
		entry.Scores.P, entry.Scores.E, entry.Scores.R, entry.Scores.M, entry.Scores.S,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upserting perms entry: %w", err)
	}
	return nil
}

func (repository *SQLitePERMSRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM perms_history WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting perms entry: %w", err)
	}
	return nil
}
