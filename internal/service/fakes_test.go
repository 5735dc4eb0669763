package service

import (
	"context"
	"database/sql"
	"errors"

	"pos-service/internal/entity"
)

// In-memory stores standing in for the SQL repositories.

type fakeUserStore struct {
	users  []*entity.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1}
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserStore) ListUsers(_ context.Context) ([]*entity.User, error) {
	return f.users, nil
}

type submission struct {
	order      *entity.Order
	containers []*entity.Container
}

type fakeOrderStore struct {
	pending         []*entity.Order
	submitted       []submission
	nextContainerID int
	failOnContainer int // 1-based; 0 disables the forced failure
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{nextContainerID: 1}
}

func (f *fakeOrderStore) ListByPayment(_ context.Context, payment, orderType string) ([]*entity.Order, error) {
	out := []*entity.Order{}
	for _, o := range f.pending {
		if o.Payment != payment {
			continue
		}
		if orderType != "" && o.OrderType != orderType {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderStore) CreateOrder(_ context.Context, order *entity.Order, containers []*entity.Container) error {
	for i, c := range containers {
		if f.failOnContainer == i+1 {
			return errors.New("insert failed")
		}
		c.ContainerID = f.nextContainerID
		f.nextContainerID++
	}

	order.Containers = make(map[string]*entity.Container, len(containers))
	for _, c := range containers {
		order.Containers[entity.ContainerKey(c.ContainerID)] = c
	}

	f.submitted = append(f.submitted, submission{order: order, containers: containers})
	return nil
}

type fakeMenuStore struct {
	items  []*entity.MenuItem
	nextID int
}

func newFakeMenuStore() *fakeMenuStore {
	return &fakeMenuStore{nextID: 1}
}

func (f *fakeMenuStore) ListMenuItems(_ context.Context) ([]*entity.MenuItem, error) {
	return f.items, nil
}

func (f *fakeMenuStore) CreateMenuItem(_ context.Context, foodName string, price float64, packagingType string) (*entity.MenuItem, error) {
	item := &entity.MenuItem{
		ID:            f.nextID,
		FoodName:      foodName,
		Price:         entity.Price(price),
		PackagingType: packagingType,
	}
	f.nextID++
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeMenuStore) DeleteMenuItem(_ context.Context, itemID int) error {
	for i, item := range f.items {
		if item.ID == itemID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}
