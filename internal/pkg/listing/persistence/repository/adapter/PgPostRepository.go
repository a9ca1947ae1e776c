package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	listing "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/domain"
)

type PgPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

// Migrate creates the listing schema when it does not exist yet.
func (r *PgPostRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE SCHEMA IF NOT EXISTS listing;
		CREATE TABLE IF NOT EXISTS listing.adoption_post (
			id               uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			name             text NOT NULL,
			description      text NOT NULL DEFAULT '',
			species          text NOT NULL,
			breed            text NOT NULL DEFAULT '',
			gender           text NOT NULL DEFAULT '',
			age              integer NOT NULL DEFAULT 0,
			color            text NOT NULL DEFAULT '',
			location         text NOT NULL DEFAULT '',
			owner_id         text NOT NULL,
			adopter_id       text,
			active           boolean NOT NULL DEFAULT true,
			publication_date timestamptz NOT NULL DEFAULT now()
		);
	`)
	return err
}

func (r *PgPostRepository) CreatePost(ctx context.Context, p listing.AdoptionPost) (*listing.AdoptionPost, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgPostRepository: nil pool")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO listing.adoption_post
			(name, description, species, breed, gender, age, color, location, owner_id, active, publication_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id::text
	`, p.Name, p.Description, p.Species, p.Breed, p.Gender, p.Age, p.Color, p.Location,
		p.OwnerID, p.Active, p.PublicationDate).Scan(&p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgPostRepository) GetPost(ctx context.Context, id string) (*listing.AdoptionPost, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgPostRepository: nil pool")
	}
	var p listing.AdoptionPost
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, description, species, breed, gender, age, color, location,
		       owner_id, adopter_id, active, publication_date
		FROM listing.adoption_post WHERE id = $1::uuid
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Species, &p.Breed, &p.Gender, &p.Age,
		&p.Color, &p.Location, &p.OwnerID, &p.AdopterID, &p.Active, &p.PublicationDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, listing.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgPostRepository) DeletePost(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgPostRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, "DELETE FROM listing.adoption_post WHERE id = $1::uuid", id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return listing.ErrPostNotFound
	}
	return nil
}

// ClosePost only touches rows that are still open or already closed by the
// same adopter, so a replayed event cannot error or flip the adopter.
func (r *PgPostRepository) ClosePost(ctx context.Context, id, adopterID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgPostRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE listing.adoption_post
		SET active = false, adopter_id = $2
		WHERE id = $1::uuid AND (active = true OR adopter_id = $2)
	`, id, adopterID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM listing.adoption_post WHERE id = $1::uuid)", id,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return listing.ErrPostNotFound
		}
		// already closed for a different adopter: terminal state, keep it
	}
	return nil
}
