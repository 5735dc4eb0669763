package service

import (
	"context"

	"pos-service/internal/entity"
)

// Store interfaces decouple services from the SQL repositories so tests can
// substitute in-memory fakes.

type UserStore interface {
	GetUserByID(ctx context.Context, id int) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}

type OrderStore interface {
	ListByPayment(ctx context.Context, payment, orderType string) ([]*entity.Order, error)
	CreateOrder(ctx context.Context, order *entity.Order, containers []*entity.Container) error
}

type MenuStore interface {
	ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, foodName string, price float64, packagingType string) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID int) error
}
