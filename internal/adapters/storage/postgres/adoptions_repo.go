package postgres

import (
	"context"
	"database/sql"

	"pet-adoptions/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) GetAll(ctx context.Context) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, pet_id, created_at
		FROM adoptions
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		var a adoptions.Adoption
		if err := rows.Scan(&a.ID, &a.Owner, &a.Pet, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, pet_id, created_at
		FROM adoptions
		WHERE id = $1
	`, id)

	var a adoptions.Adoption
	if err := row.Scan(&a.ID, &a.Owner, &a.Pet, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return adoptions.Adoption{}, adoptions.ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	return a, nil
}

// Las adopciones son append-only: solo INSERT, nunca UPDATE ni DELETE.
func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoptions (id, owner_id, pet_id, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		a.ID,
		a.Owner,
		a.Pet,
		a.CreatedAt,
	)
	return err
}
