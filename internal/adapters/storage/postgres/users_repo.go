package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"pet-adoptions/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `
	id, first_name, last_name, email, password, role, pets,
	created_at, updated_at
`

func (r *UsersRepo) GetAll(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	petsJSON, err := json.Marshal(u.Pets)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, first_name, last_name, email, password, role, pets,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		petsJSON,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

// CreateMany inserta fila por fila, sin transacción: el store no
// ofrece atomicidad multi-registro en este diseño.
func (r *UsersRepo) CreateMany(ctx context.Context, us []users.User) error {
	for _, u := range us {
		if err := r.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	petsJSON, err := json.Marshal(u.Pets)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			password = $5,
			role = $6,
			pets = $7,
			updated_at = $8
		WHERE id = $1
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		petsJSON,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (users.User, error) {
	var u users.User
	var role string
	var petsJSON []byte

	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&role,
		&petsJSON,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, err
	}

	u.Role = users.Role(role)
	// pets es jsonb; vacío queda como lista vacía, no nil
	u.Pets = []string{}
	if len(petsJSON) > 0 {
		if err := json.Unmarshal(petsJSON, &u.Pets); err != nil {
			return users.User{}, err
		}
	}
	if u.Pets == nil {
		u.Pets = []string{}
	}
	return u, nil
}
