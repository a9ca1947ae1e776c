package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	search "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/domain"
)

type PgSearchRepository struct {
	pool *pgxpool.Pool
}

func NewPgSearchRepository(pool *pgxpool.Pool) *PgSearchRepository {
	return &PgSearchRepository{pool: pool}
}

// Migrate creates the savedsearch schema when it does not exist yet.
func (r *PgSearchRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE SCHEMA IF NOT EXISTS savedsearch;
		CREATE TABLE IF NOT EXISTS savedsearch.saved_search (
			id       uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id  text NOT NULL,
			species  text[] NOT NULL DEFAULT '{}',
			breed    text[] NOT NULL DEFAULT '{}',
			gender   text NOT NULL DEFAULT '',
			min_age  integer,
			max_age  integer,
			color    text[] NOT NULL DEFAULT '{}',
			location text[] NOT NULL DEFAULT '{}'
		);
		CREATE INDEX IF NOT EXISTS saved_search_user ON savedsearch.saved_search (user_id);
	`)
	return err
}

func (r *PgSearchRepository) SaveSearch(ctx context.Context, s search.SavedSearch) (*search.SavedSearch, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSearchRepository: nil pool")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO savedsearch.saved_search
			(user_id, species, breed, gender, min_age, max_age, color, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text
	`, s.UserID, s.Species, s.Breed, s.Gender, s.MinAge, s.MaxAge, s.Color, s.Location).Scan(&s.ID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgSearchRepository) GetSearch(ctx context.Context, id string) (*search.SavedSearch, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSearchRepository: nil pool")
	}
	var s search.SavedSearch
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, user_id, species, breed, gender, min_age, max_age, color, location
		FROM savedsearch.saved_search WHERE id = $1::uuid
	`, id).Scan(&s.ID, &s.UserID, &s.Species, &s.Breed, &s.Gender, &s.MinAge, &s.MaxAge, &s.Color, &s.Location)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, search.ErrSearchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgSearchRepository) DeleteSearch(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgSearchRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, "DELETE FROM savedsearch.saved_search WHERE id = $1::uuid", id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return search.ErrSearchNotFound
	}
	return nil
}

func (r *PgSearchRepository) SearchesByUser(ctx context.Context, userID string) ([]search.SavedSearch, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSearchRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id, species, breed, gender, min_age, max_age, color, location
		FROM savedsearch.saved_search WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSearches(rows)
}

func (r *PgSearchRepository) AllSearches(ctx context.Context) ([]search.SavedSearch, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgSearchRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id, species, breed, gender, min_age, max_age, color, location
		FROM savedsearch.saved_search
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSearches(rows)
}

func scanSearches(rows pgx.Rows) ([]search.SavedSearch, error) {
	var out []search.SavedSearch
	for rows.Next() {
		var s search.SavedSearch
		if err := rows.Scan(&s.ID, &s.UserID, &s.Species, &s.Breed, &s.Gender,
			&s.MinAge, &s.MaxAge, &s.Color, &s.Location); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
