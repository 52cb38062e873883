package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

type WeeklyPointsRepository interface {
	FindByClient(ctx context.Context, clientID string) ([]models.WeeklyPointRecord, error)
	Upsert(ctx context.Context, clientID string, records []models.WeeklyPointRecord) error
	Delete(ctx context.Context, clientID, weekISO string) error
}

type SQLiteWeeklyPointsRepository struct {
	database *sql.DB
}

func NewWeeklyPointsRepository(database *sql.DB) *SQLiteWeeklyPointsRepository {
	return &SQLiteWeeklyPointsRepository{database: database}
}

func (repository *SQLiteWeeklyPointsRepository) FindByClient(ctx context.Context, clientID string) ([]models.WeeklyPointRecord, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT week_iso, week_label, pts_move, pts_recover, pts_fuel, pts_connect, pts_breathe, pts_misc
		FROM weekly_points WHERE client_id = ? ORDER BY week_iso ASC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("finding weekly points: %w", err)
	}
	defer rows.Close()

	var records []models.WeeklyPointRecord
	for rows.Next() {
		var record models.WeeklyPointRecord
		if err := rows.Scan(
			&record.Week, &record.Label, &record.Move, &record.Recover,
			&record.Fuel, &record.Connect, &record.Breathe, &record.Misc,
		); err != nil {
			return nil, fmt.Errorf("scanning weekly points: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Upsert writes candidate records against the (client_id, week_iso)
// key, keeping at most one record per ISO week per client.
func (repository *SQLiteWeeklyPointsRepository) Upsert(ctx context.Context, clientID string, records []models.WeeklyPointRecord) error {
	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning points transaction: %w", err)
	}
	defer transaction.Rollback()

	for _, record := range records {
		if _, err := transaction.ExecContext(ctx,
			`INSERT INTO weekly_points (client_id, week_iso, week_label, pts_move, pts_recover, pts_fuel, pts_connect, pts_breathe, pts_misc)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (client_id, week_iso) DO UPDATE SET
				week_label = excluded.week_label,
				pts_move = excluded.pts_move,
				pts_recover = excluded.pts_recover,
				pts_fuel = excluded.pts_fuel,
				pts_connect = excluded.pts_connect,
				pts_breathe = excluded.pts_breathe,
				pts_misc = excluded.pts_misc`,
			clientID, record.Week, record.Label, record.Move, record.Recover,
			record.Fuel, record.Connect, record.Breathe, record.Misc,
		); err != nil {
			return fmt.Errorf("upserting week %s: %w", record.Week, err)
		}
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("committing weekly points: %w", err)
	}
	return nil
}

func (repository *SQLiteWeeklyPointsRepository) Delete(ctx context.Context, clientID, weekISO string) error {
	_, err := repository.database.ExecContext(ctx,
		"DELETE FROM weekly_points WHERE client_id = ? AND week_iso = ?", clientID, weekISO)
	if err != nil {
		return fmt.Errorf("deleting weekly points: %w", err)
	}
	return nil
}
