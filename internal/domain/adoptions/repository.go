package adoptions

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Adoption, error)
	GetByID(ctx context.Context, id string) (Adoption, error)
	Create(ctx context.Context, a Adoption) error
}
