package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

type TaskFilter struct {
	DateFrom string
	DateTo   string
	Pillar   *models.Pillar
	Done     *bool
}

type TaskRepository interface {
	Create(ctx context.Context, task models.ScheduledTask) (models.ScheduledTask, error)
	CreateBatch(ctx context.Context, tasks []models.ScheduledTask) ([]models.ScheduledTask, error)
	FindByClient(ctx context.Context, clientID string, filter TaskFilter) ([]models.ScheduledTask, error)
	FindByID(ctx context.Context, id string) (models.ScheduledTask, error)
	Update(ctx context.Context, task models.ScheduledTask) error
	Delete(ctx context.Context, id string) error
}

type SQLiteTaskRepository struct {
	database *sql.DB
}

func NewTaskRepository(database *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{database: database}
}

const taskColumns = "id, client_id, date, pillar, category, title, points, notes, done, created_at, updated_at"

func (repository *SQLiteTaskRepository) Create(ctx context.Context, task models.ScheduledTask) (models.ScheduledTask, error) {
	task.ID = uuid.NewString()
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO tasks (id, client_id, date, pillar, category, title, points, notes, done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.ClientID, task.Date, task.Pillar, task.Category, task.Title,
		task.Points, task.Notes, task.Done, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return models.ScheduledTask{}, fmt.Errorf("creating task: %w", err)
	}
	return task, nil
}

// CreateBatch inserts a parsed schedule in a single transaction so a
// partial import never survives a failure.
func (repository *SQLiteTaskRepository) CreateBatch(ctx context.Context, tasks []models.ScheduledTask) ([]models.ScheduledTask, error) {
	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning task transaction: %w", err)
	}
	defer transaction.Rollback()

	now := time.Now()
	created := make([]models.ScheduledTask, 0, len(tasks))
	for _, task := range tasks {
		task.ID = uuid.NewString()
		task.CreatedAt = now
		task.UpdatedAt = now
		if _, err := transaction.ExecContext(ctx,
			`INSERT INTO tasks (id, client_id, date, pillar, category, title, points, notes, done, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			task.ID, task.ClientID, task.Date, task.Pillar, task.Category, task.Title,
			task.Points, task.Notes, task.Done, task.CreatedAt, task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("inserting task for %s: %w", task.Date, err)
		}
		created = append(created, task)
	}

	if err := transaction.Commit(); err != nil {
		return nil, fmt.Errorf("committing tasks: %w", err)
	}
	return created, nil
}

func (repository *SQLiteTaskRepository) FindByClient(ctx context.Context, clientID string, filter TaskFilter) ([]models.ScheduledTask, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE client_id = ?"
	args := []interface{}{clientID}

	if filter.DateFrom != "" {
		query += " AND date >= ?"
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		query += " AND date <= ?"
		args = append(args, filter.DateTo)
	}
	if filter.Pillar != nil {
		query += " AND pillar = ?"
		args = append(args, *filter.Pillar)
	}
	if filter.Done != nil {
		query += " AND done = ?"
		args = append(args, *filter.Done)
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := repository.database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.ScheduledTask
	for rows.Next() {
		var task models.ScheduledTask
		if err := rows.Scan(
			&task.ID, &task.ClientID, &task.Date, &task.Pillar, &task.Category,
			&task.Title, &task.Points, &task.Notes, &task.Done,
			&task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (repository *SQLiteTaskRepository) FindByID(ctx context.Context, id string) (models.ScheduledTask, error) {
	var task models.ScheduledTask
	err := repository.database.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id,
	).Scan(
		&task.ID, &task.ClientID, &task.Date, &task.Pillar, &task.Category,
		&task.Title, &task.Points, &task.Notes, &task.Done,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return models.ScheduledTask{}, fmt.Errorf("finding task: %w", err)
	}
	return task, nil
}

func (repository *SQLiteTaskRepository) Update(ctx context.Context, task models.ScheduledTask) error {
	_, err := repository.database.ExecContext(ctx,
		`UPDATE tasks SET date = ?, pillar = ?, category = ?, title = ?, points = ?, notes = ?, done = ?, updated_at = ?
		WHERE id = ?`,
		task.Date, task.Pillar, task.Category, task.Title, task.Points, task.Notes,
		task.Done, time.Now(), task.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (repository *SQLiteTaskRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}
