package repository

import (
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/pkg/database"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatLayoutRepository interface {
	Create(ctx context.Context, layout *entity.SeatLayout) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SeatLayout, error)
	FindAll(ctx context.Context) ([]*entity.SeatLayout, error)
}

type seatLayoutRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatLayoutRepository(db database.PgxIface, log *zap.Logger) SeatLayoutRepository {
	return &seatLayoutRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_layout")),
	}
}

func (r *seatLayoutRepository) Create(ctx context.Context, layout *entity.SeatLayout) error {
	query := `
		INSERT INTO seat_layouts (id, name, rows, seats_per_row, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		layout.ID,
		layout.Name,
		layout.Rows,
		layout.SeatsPerRow,
		layout.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create seat layout",
			zap.Error(err),
			zap.String("name", layout.Name),
		)
		return fmt.Errorf("failed to create seat layout: %w", err)
	}

	return nil
}

func (r *seatLayoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SeatLayout, error) {
	query := `SELECT id, name, rows, seats_per_row, created_at FROM seat_layouts WHERE id = $1`

	var layout entity.SeatLayout
	err := r.db.QueryRow(ctx, query, id).Scan(
		&layout.ID,
		&layout.Name,
		&layout.Rows,
		&layout.SeatsPerRow,
		&layout.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat layout by ID",
			zap.Error(err),
			zap.String("seat_layout_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find seat layout: %w", err)
	}

	return &layout, nil
}

func (r *seatLayoutRepository) FindAll(ctx context.Context) ([]*entity.SeatLayout, error) {
	query := `SELECT id, name, rows, seats_per_row, created_at FROM seat_layouts ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find seat layouts", zap.Error(err))
		return nil, fmt.Errorf("failed to find seat layouts: %w", err)
	}
	defer rows.Close()

	layouts := make([]*entity.SeatLayout, 0)
	for rows.Next() {
		var layout entity.SeatLayout
		if err := rows.Scan(
			&layout.ID,
			&layout.Name,
			&layout.Rows,
			&layout.SeatsPerRow,
			&layout.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan seat layout row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan seat layout: %w", err)
		}
		layouts = append(layouts, &layout)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return layouts, nil
}
