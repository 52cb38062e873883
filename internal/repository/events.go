package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

type EventRepository interface {
	Create(ctx context.Context, event models.Event) (models.Event, error)
	FindByClient(ctx context.Context, clientID, dateFrom, dateTo string) ([]models.Event, error)
	Update(ctx context.Context, event models.Event) error
	Delete(ctx context.Context, id string) error
}

type SQLiteEventRepository struct {
	database *sql.DB
}

func NewEventRepository(database *sql.DB) *SQLiteEventRepository {
	return &SQLiteEventRepository{database: database}
}

func (repository *SQLiteEventRepository) Create(ctx context.Context, event models.Event) (models.Event, error) {
	event.ID = uuid.NewString()
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO events (id, client_id, date, title, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.ClientID, event.Date, event.Title, event.Notes,
		event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return models.Event{}, fmt.Errorf("creating event: %w", err)
	}
	return event, nil
}

func (repository *SQLiteEventRepository) FindByClient(ctx context.Context, clientID, dateFrom, dateTo string) ([]models.Event, error) {
	query := `SELECT id, client_id, date, title, notes, created_at, updated_at
	FROM events WHERE client_id = ?`
	args := []interface{}{clientID}

	if dateFrom != "" {
		query += " AND date >= ?"
		args = append(args, dateFrom)
	}
	if dateTo != "" {
		query += " AND date <= ?"
		args = append(args, dateTo)
	}
	query += " ORDER BY date ASC"

	rows, err := repository.database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID, &event.ClientID, &event.Date, &event.Title, &event.Notes,
			&event.CreatedAt, &event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (repository *SQLiteEventRepository) Update(ctx context.Context, event models.Event) error {
	_, err := repository.database.ExecContext(ctx,
		`UPDATE events SET date = ?, title = ?, notes = ?, updated_at = ? WHERE id = ?`,
		event.Date, event.Title, event.Notes, time.Now(), event.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	return nil
}

func (repository *SQLiteEventRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}
