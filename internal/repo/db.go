package repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cb17225/huffman-compression/internal/model"
	"github.com/cb17225/huffman-compression/pkg/weights"
)

func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS weight_profiles (
  name TEXT PRIMARY KEY,
  weights TEXT NOT NULL,
  minimize BOOLEAN NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL
)`)
	return err
}

// 가중치는 weights 파일 형식 그대로 TEXT 컬럼에 저장
type weightRepoPostgres struct {
	pool *pgxpool.Pool
}

func NewWeightRepoPostgres(pool *pgxpool.Pool) WeightRepo {
	return &weightRepoPostgres{pool: pool}
}

func (r *weightRepoPostgres) Save(ctx context.Context, p *model.Profile) error {
	var buf bytes.Buffer
	if err := weights.Write(&buf, p.Weights); err != nil {
		return fmt.Errorf("encode weights: %w", err)
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO weight_profiles (name, weights, minimize, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE
  SET weights = EXCLUDED.weights, minimize = EXCLUDED.minimize, updated_at = EXCLUDED.updated_at`,
		p.Name, buf.String(), p.Minimize, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save profile %q: %w", p.Name, err)
	}
	return nil
}

func (r *weightRepoPostgres) FindByName(ctx context.Context, name string) (*model.Profile, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT name, weights, minimize, updated_at FROM weight_profiles WHERE name = $1`, name)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *weightRepoPostgres) List(ctx context.Context) ([]*model.Profile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, weights, minimize, updated_at FROM weight_profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []*model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProfile(row pgx.Row) (*model.Profile, error) {
	var (
		p   model.Profile
		raw string
	)
	if err := row.Scan(&p.Name, &raw, &p.Minimize, &p.UpdatedAt); err != nil {
		return nil, err
	}
	w, err := weights.Read(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	p.Weights = w
	return &p, nil
}
