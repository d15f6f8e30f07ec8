package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KashAmir418/Numerio-sub000/internal/domain"
)

// ReadingRepository guarda lecturas terminadas para compartir por id. El
// motor nunca lee de aquí: la persistencia es estrictamente aguas abajo.
type ReadingRepository interface {
	Create(ctx context.Context, reading domain.Reading) error
	GetByID(ctx context.Context, id string) (domain.Reading, error)
}

type PgReadingRepository struct {
	pool *pgxpool.Pool
}

func NewPgReadingRepository(pool *pgxpool.Pool) *PgReadingRepository {
	return &PgReadingRepository{pool: pool}
}

func (r *PgReadingRepository) Create(ctx context.Context, reading domain.Reading) error {
	const query = `
		INSERT INTO readings (id, date_a, date_b, name_a, name_b, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	raw, err := json.Marshal(reading.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = r.pool.Exec(ctx, query,
		reading.ID,
		reading.DateA,
		reading.DateB,
		reading.NameA,
		reading.NameB,
		raw,
		reading.CreatedAt,
	)
	return err
}

func (r *PgReadingRepository) GetByID(ctx context.Context, id string) (domain.Reading, error) {
	const query = `
		SELECT id, date_a, date_b, name_a, name_b, result, created_at
		FROM readings
		WHERE id = $1
	`
	var reading domain.Reading
	var raw []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&reading.ID,
		&reading.DateA,
		&reading.DateB,
		&reading.NameA,
		&reading.NameB,
		&raw,
		&reading.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Reading{}, err
	}
	if err != nil {
		return domain.Reading{}, err
	}
	if err := json.Unmarshal(raw, &reading.Result); err != nil {
		return domain.Reading{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return reading, nil
}
