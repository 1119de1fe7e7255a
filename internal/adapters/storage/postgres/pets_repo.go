package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-adoptions/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, name, species, birth_date, adopted, owner, image,
	created_at, updated_at
`

func (r *PetsRepo) GetAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, species, birth_date, adopted, owner, image,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		p.Species,
		toNullDate(p.BirthDate),
		p.Adopted,
		toNullString(p.Owner),
		p.Image,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) CreateMany(ctx context.Context, ps []pets.Pet) error {
	for _, p := range ps {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			birth_date = $4,
			adopted = $5,
			owner = $6,
			image = $7,
			updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		toNullDate(p.BirthDate),
		p.Adopted,
		toNullString(p.Owner),
		p.Image,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var bd sql.NullTime
	var owner sql.NullString

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&bd,
		&p.Adopted,
		&owner,
		&p.Image,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	if bd.Valid {
		t := bd.Time
		p.BirthDate = &t
	}
	if owner.Valid {
		o := owner.String
		p.Owner = &o
	}
	return p, nil
}

// birth_date es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}
