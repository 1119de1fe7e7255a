package users

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) error
	CreateMany(ctx context.Context, us []User) error
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}
