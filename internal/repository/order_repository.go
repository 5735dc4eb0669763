package repository

import (
	"context"
	"database/sql"
	"strings"

	"pos-service/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

// ListByPayment returns every order with the given payment status, each with
// its full container/food-item tree. orderType narrows the result when
// non-empty. The tree is assembled from two queries: one for the order rows
// and one joined query for all their children, so readers never observe a
// partially populated order.
func (r *OrderRepository) ListByPayment(ctx context.Context, payment, orderType string) ([]*entity.Order, error) {
	orderQuery := `SELECT order_id, order_type, location, payment FROM orders WHERE payment = ?`
	args := []interface{}{payment}
	if orderType != "" {
		orderQuery += ` AND order_type = ?`
		args = append(args, orderType)
	}

	rows, err := r.db.QueryContext(ctx, orderQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*entity.Order
	byID := make(map[string]*entity.Order)
	for rows.Next() {
		order := &entity.Order{Containers: make(map[string]*entity.Container)}
		err := rows.Scan(&order.OrderID, &order.OrderType, &order.Location, &order.Payment)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
		byID[order.OrderID] = order
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []*entity.Order{}, nil
	}

	childQuery := `
		SELECT c.order_id, c.container_id, c.container_number, c.packaging_type, c.message,
		       f.item_id, f.food_name, f.price
		FROM containers c
		LEFT JOIN food_items f ON f.container_id = c.container_id
		WHERE c.order_id IN (` + placeholders(len(orders)) + `)
		ORDER BY c.container_id, f.item_id`

	childArgs := make([]interface{}, 0, len(orders))
	for _, order := range orders {
		childArgs = append(childArgs, order.OrderID)
	}

	childRows, err := r.db.QueryContext(ctx, childQuery, childArgs...)
	if err != nil {
		return nil, err
	}
	defer childRows.Close()

	for childRows.Next() {
		var (
			orderID   string
			container entity.Container
			message   sql.NullString
			itemID    sql.NullInt64
			foodName  sql.NullString
			price     sql.NullFloat64
		)
		err := childRows.Scan(&orderID, &container.ContainerID, &container.ContainerNumber,
			&container.PackagingType, &message, &itemID, &foodName, &price)
		if err != nil {
			return nil, err
		}

		order, ok := byID[orderID]
		if !ok {
			continue
		}

		key := entity.ContainerKey(container.ContainerID)
		existing, ok := order.Containers[key]
		if !ok {
			container.Message = message.String
			container.FoodItems = []entity.FoodItem{}
			existing = &container
			order.Containers[key] = existing
		}

		// LEFT JOIN leaves item columns NULL for empty containers.
		if itemID.Valid {
			existing.FoodItems = append(existing.FoodItems, entity.FoodItem{
				ItemID:   int(itemID.Int64),
				FoodName: foodName.String,
				Price:    entity.Price(price.Float64),
			})
		}
	}

	return orders, childRows.Err()
}

// CreateOrder persists an order with all of its containers and food items in
// one transaction. Any failure rolls the whole submission back.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order, containers []*entity.Container) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	orderQuery := `INSERT INTO orders (order_id, order_type, location, payment) VALUES (?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, orderQuery, order.OrderID, order.OrderType, order.Location, order.Payment)
	if err != nil {
		tx.Rollback()
		return err
	}

	containerQuery := `INSERT INTO containers (order_id, container_number, packaging_type, message) VALUES (?, ?, ?, ?)`
	for _, container := range containers {
		res, err := tx.ExecContext(ctx, containerQuery, order.OrderID, container.ContainerNumber, container.PackagingType, container.Message)
		if err != nil {
			tx.Rollback()
			return err
		}

		containerID, err := res.LastInsertId()
		if err != nil {
			tx.Rollback()
			return err
		}
		container.ContainerID = int(containerID)

		if len(container.FoodItems) == 0 {
			continue
		}

		// Batch insert the container's food items.
		itemQuery := `INSERT INTO food_items (container_id, food_name, price) VALUES `
		var values []interface{}
		for _, item := range container.FoodItems {
			itemQuery += "(?, ?, ?),"
			values = append(values, containerID, item.FoodName, float64(item.Price))
		}
		itemQuery = itemQuery[:len(itemQuery)-1]

		_, err = tx.ExecContext(ctx, itemQuery, values...)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		return err
	}

	order.Containers = make(map[string]*entity.Container, len(containers))
	for _, container := range containers {
		order.Containers[entity.ContainerKey(container.ContainerID)] = container
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
