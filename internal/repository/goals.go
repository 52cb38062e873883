package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

type GoalRepository interface {
	FindByClient(ctx context.Context, clientID string) ([]models.Goal, error)
	ReplaceAll(ctx context.Context, clientID string, goals []models.Goal) error
}

type SQLiteGoalRepository struct {
	database *sql.DB
}

func NewGoalRepository(database *sql.DB) *SQLiteGoalRepository {
	return &SQLiteGoalRepository{database: database}
}

func (repository *SQLiteGoalRepository) FindByClient(ctx context.Context, clientID string) ([]models.Goal, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, client_id, pillar, goal, target_date, action_items, sort_order, created_at
		FROM goals WHERE client_id = ? ORDER BY sort_order ASC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("finding goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		var actionItems string
		if err := rows.Scan(
			&goal.ID, &goal.ClientID, &goal.Pillar, &goal.Goal, &goal.TargetDate,
			&actionItems, &goal.SortOrder, &goal.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		if err := json.Unmarshal([]byte(actionItems), &goal.ActionItems); err != nil {
			return nil, fmt.Errorf("parsing action items: %w", err)
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

// ReplaceAll swaps a client's full goal list in one transaction, the
// same delete-then-insert shape the dashboard saves goals with.
func (repository *SQLiteGoalRepository) ReplaceAll(ctx context.Context, clientID string, goals []models.Goal) error {
	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning goal transaction: %w", err)
	}
	defer transaction.Rollback()

	if _, err := transaction.ExecContext(ctx, "DELETE FROM goals WHERE client_id = ?", clientID); err != nil {
		return fmt.Errorf("clearing goals: %w", err)
	}

	now := time.Now()
	for i, goal := range goals {
		actionItems := goal.ActionItems
		if actionItems == nil {
			actionItems = []models.ActionItem{}
		}
		encoded, err := json.Marshal(actionItems)
		if err != nil {
			return fmt.Errorf("encoding action items: %w", err)
		}
		if _, err := transaction.ExecContext(ctx,
			`INSERT INTO goals (id, client_id, pillar, goal, target_date, action_items, sort_order, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), clientID, goal.Pillar, goal.Goal, goal.TargetDate,
			string(encoded), i, now,
		); err != nil {
			return fmt.Errorf("inserting goal: %w", err)
		}
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("committing goals: %w", err)
	}
	return nil
}
