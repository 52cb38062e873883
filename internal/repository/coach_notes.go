package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

type CoachNoteRepository interface {
	FindByClient(ctx context.Context, clientID string) ([]models.CoachNote, error)
	Upsert(ctx context.Context, note models.CoachNote) error
	Delete(ctx context.Context, id string) error
}

type SQLiteCoachNoteRepository struct {
	database *sql.DB
}

func NewCoachNoteRepository(database *sql.DB) *SQLiteCoachNoteRepository {
	return &SQLiteCoachNoteRepository{database: database}
}

// FindByClient returns notes newest week first, the order the
// dashboard displays them.
func (repository *SQLiteCoachNoteRepository) FindByClient(ctx context.Context, clientID string) ([]models.CoachNote, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, client_id, week_iso, week_label, note, created_at, updated_at
		FROM coach_notes WHERE client_id = ? ORDER BY week_iso DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("finding coach notes: %w", err)
	}
	defer rows.Close()

	var notes []models.CoachNote
	for rows.Next() {
		var note models.CoachNote
		if err := rows.Scan(
			&note.ID, &note.ClientID, &note.WeekISO, &note.WeekLabel,
			&note.Note, &note.CreatedAt, &note.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning coach note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (repository *SQLiteCoachNoteRepository) Upsert(ctx context.Context, note models.CoachNote) error {
	now := time.Now()
	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO coach_notes (id, client_id, week_iso, week_label, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (client_id, week_iso) DO UPDATE SET
			week_label = excluded.week_label,
			note = excluded.note,
			updated_at = excluded.updated_at`,
		uuid.NewString(), note.ClientID, note.WeekISO, note.WeekLabel, note.Note, now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting coach note: %w", err)
	}
	return nil
}

func (repository *SQLiteCoachNoteRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM coach_notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting coach note: %w", err)
	}
	return nil
}
