package repository

import (
	"context"
	"database/sql"

	"pos-service/internal/entity"
)

// MenuRepository manages catalog entries. A menu item is a food item whose
// container has no owning order; that container carries the packaging type.
type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db}
}

func (r *MenuRepository) ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	query := `
		SELECT f.item_id, f.food_name, f.price, c.packaging_type
		FROM food_items f
		JOIN containers c ON c.container_id = f.container_id
		WHERE c.order_id IS NULL
		ORDER BY f.item_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*entity.MenuItem{}
	for rows.Next() {
		var (
			item  entity.MenuItem
			price float64
		)
		err := rows.Scan(&item.ID, &item.FoodName, &price, &item.PackagingType)
		if err != nil {
			return nil, err
		}
		item.Price = entity.Price(price)
		items = append(items, &item)
	}

	return items, rows.Err()
}

// CreateMenuItem inserts an order-less container plus its single food item in
// one transaction.
func (r *MenuRepository) CreateMenuItem(ctx context.Context, foodName string, price float64, packagingType string) (*entity.MenuItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	containerQuery := `INSERT INTO containers (order_id, container_number, packaging_type, message) VALUES (NULL, 0, ?, '')`
	res, err := tx.ExecContext(ctx, containerQuery, packagingType)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	containerID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	itemQuery := `INSERT INTO food_items (container_id, food_name, price) VALUES (?, ?, ?)`
	res, err = tx.ExecContext(ctx, itemQuery, containerID, foodName, price)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	itemID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	return &entity.MenuItem{
		ID:            int(itemID),
		FoodName:      foodName,
		Price:         entity.Price(price),
		PackagingType: packagingType,
	}, nil
}

// DeleteMenuItem removes the food item and its now-orphaned container in one
// transaction. Returns sql.ErrNoRows when the item does not exist.
func (r *MenuRepository) DeleteMenuItem(ctx context.Context, itemID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var containerID int
	lookupQuery := `SELECT container_id FROM food_items WHERE item_id = ?`
	err = tx.QueryRowContext(ctx, lookupQuery, itemID).Scan(&containerID)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM food_items WHERE item_id = ?`, itemID)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM containers WHERE container_id = ?`, containerID)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
