package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/google/uuid"
	"github.com/hrutik5321/rollpair/internal/db"
	"github.com/hrutik5321/rollpair/internal/rolls"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresDB struct {
	pool *pgxpool.Pool
}

func New() *PostgresDB {
	return &PostgresDB{}
}

func buildDSN(cfg db.ConnConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Connect implements db.Store.
func (p *PostgresDB) Connect(ctx context.Context, cfg db.ConnConfig) error {
	pool, err := pgxpool.New(ctx, buildDSN(cfg))
	if err != nil {
		return err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return err
	}

	p.pool = pool
	return nil
}

// Close db
func (p *PostgresDB) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// ListSubstances
func (p *PostgresDB) ListSubstances(ctx context.Context) ([]db.Substance, error) {
	if p.pool == nil {
		return nil, db.ErrNotConnected
	}

	rows, err := p.pool.Query(ctx, `
		SELECT id, name
		FROM substances
		ORDER BY name;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.Substance
	for rows.Next() {
		var s db.Substance
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return out, nil
}

// LoadPlan
func (p *PostgresDB) LoadPlan(ctx context.Context, substanceID int64) (db.Plan, error) {
	if p.pool == nil {
		return db.Plan{}, db.ErrNotConnected
	}

	var (
		id     pgtype.UUID
		matrix pgtype.Text
		weight pgtype.Float8
	)
	err := p.pool.QueryRow(ctx, `
		SELECT id, ukuran_finaltrim, weight_final
		FROM trimming_plan
		WHERE substance_id = $1
		LIMIT 1;
	`, substanceID).Scan(&id, &matrix, &weight)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Plan{SubstanceID: substanceID}, nil
	}
	if err != nil {
		return db.Plan{}, err
	}

	plan := db.Plan{SubstanceID: substanceID}
	if id.Valid {
		plan.ID = uuid.UUID(id.Bytes)
	}
	if weight.Valid {
		plan.WeightFinal = weight.Float64
	}
	plan.RemainingRolls, err = decodeFinalTrim(matrix)
	if err != nil {
		return db.Plan{}, fmt.Errorf("plan %s: %w", plan.ID, err)
	}

	return plan, nil
}

// decodeFinalTrim turns the stored JSON plan matrix into remaining rolls.
// A NULL or empty column means no rolls.
func decodeFinalTrim(col pgtype.Text) ([]rolls.Roll, error) {
	if !col.Valid || col.String == "" {
		return nil, nil
	}

	var matrix [][]float64
	if err := json.Unmarshal([]byte(col.String), &matrix); err != nil {
		return nil, fmt.Errorf("decode ukuran_finaltrim: %w", err)
	}
	return rolls.FromFinalTrim(matrix), nil
}
