package pets

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	Create(ctx context.Context, p Pet) error
	CreateMany(ctx context.Context, ps []Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
