package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

type ClientRepository interface {
	Create(ctx context.Context, client models.Client) (models.Client, error)
	FindAll(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id string) (models.Client, error)
	FindByShareToken(ctx context.Context, token string) (models.Client, error)
	Update(ctx context.Context, client models.Client) error
	Delete(ctx context.Context, id string) error
}

type SQLiteClientRepository struct {
	database *sql.DB
}

func NewClientRepository(database *sql.DB) *SQLiteClientRepository {
	return &SQLiteClientRepository{database: database}
}

const clientColumns = "id, name, title, coach_note, phase, start_date, share_token, created_at, updated_at"

func (repository *SQLiteClientRepository) Create(ctx context.Context, client models.Client) (models.Client, error) {
	client.ID = uuid.NewString()
	if client.ShareToken == "" {
		client.ShareToken = generateShareToken()
	}
	if client.Phase < 1 {
		client.Phase = 1
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO clients (id, name, title, coach_note, phase, start_date, share_token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		client.ID, client.Name, client.Title, client.CoachNote, client.Phase,
		client.StartDate, client.ShareToken, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return models.Client{}, fmt.Errorf("creating client: %w", err)
	}
	return client, nil
}

func (repository *SQLiteClientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT "+clientColumns+" FROM clients ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("finding clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (repository *SQLiteClientRepository) FindByID(ctx context.Context, id string) (models.Client, error) {
	row := repository.database.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE id = ?", id)
	client, err := scanClient(row)
	if err != nil {
		return models.Client{}, fmt.Errorf("finding client: %w", err)
	}
	return client, nil
}

func (repository *SQLiteClientRepository) FindByShareToken(ctx context.Context, token string) (models.Client, error) {
	row := repository.database.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE share_token = ?", token)
	client, err := scanClient(row)
	if err != nil {
		return models.Client{}, fmt.Errorf("finding client by share token: %w", err)
	}
	return client, nil
}

func (repository *SQLiteClientRepository) Update(ctx context.Context, client models.Client) error {
	_, err := repository.database.ExecContext(ctx,
		`UPDATE clients SET name = ?, title = ?, coach_note = ?, phase = ?, start_date = ?, updated_at = ?
		WHERE id = ?`,
		client.Name, client.Title, client.CoachNote, client.Phase, client.StartDate,
		time.Now(), client.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	return nil
}

func (repository *SQLiteClientRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (models.Client, error) {
	var client models.Client
	err := row.Scan(
		&client.ID, &client.Name, &client.Title, &client.CoachNote, &client.Phase,
		&client.StartDate, &client.ShareToken, &client.CreatedAt, &client.UpdatedAt,
	)
	if err != nil {
		return models.Client{}, fmt.Errorf("scanning client: %w", err)
	}
	return client, nil
}

func generateShareToken() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
