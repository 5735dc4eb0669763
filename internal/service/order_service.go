package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"pos-service/internal/entity"
)

const pendingPayment = "pending"

// OrderService assembles nested order trees for reads and decomposes
// submitted payloads into three-table writes.
type OrderService struct {
	orders      OrderStore
	kafkaWriter *kafka.Writer
}

// NewOrderService creates a new instance of OrderService. kafkaWriter may be
// nil, in which case submission events are not published.
func NewOrderService(orders OrderStore, kafkaWriter *kafka.Writer) *OrderService {
	return &OrderService{orders: orders, kafkaWriter: kafkaWriter}
}

// ListPendingOrders returns every order awaiting payment, optionally narrowed
// to one order type, with full container/food-item trees.
func (s *OrderService) ListPendingOrders(ctx context.Context, orderType string) ([]*entity.Order, error) {
	orders, err := s.orders.ListByPayment(ctx, pendingPayment, orderType)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing pending orders")
		return nil, err
	}
	return orders, nil
}

// SubmitOrder generates a fresh order id and persists the order with all of
// its containers and food items atomically.
func (s *OrderService) SubmitOrder(ctx context.Context, req *entity.SubmitOrderRequest) (*entity.Order, error) {
	if req.OrderType == "" || len(req.Containers) == 0 {
		return nil, ErrMissingFields
	}

	payment := req.Payment
	if payment == "" {
		payment = pendingPayment
	}

	containers := make([]*entity.Container, 0, len(req.Containers))
	for _, in := range req.Containers {
		container := &entity.Container{
			ContainerNumber: in.ContainerNumber,
			PackagingType:   in.PackagingType,
			Message:         in.Message,
			FoodItems:       make([]entity.FoodItem, 0, len(in.FoodItems)),
		}
		for _, item := range in.FoodItems {
			price, err := entity.ParsePrice(item.Price.String())
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidPrice, item.Price)
			}
			container.FoodItems = append(container.FoodItems, entity.FoodItem{
				FoodName: item.FoodName,
				Price:    price,
			})
		}
		containers = append(containers, container)
	}

	order := &entity.Order{
		OrderID:   newOrderID(),
		OrderType: req.OrderType,
		Location:  req.Location,
		Payment:   payment,
	}

	err := s.orders.CreateOrder(ctx, order, containers)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	// The order is committed; a failed publish is logged, not surfaced.
	if err := s.publishOrderEvent(ctx, order, "submitted"); err != nil {
		logger.Error().Err(err).Msgf("Error publishing event for order %s", order.OrderID)
	}

	return order, nil
}

func (s *OrderService) publishOrderEvent(ctx context.Context, order *entity.Order, key string) error {
	if s.kafkaWriter == nil {
		return nil
	}

	orderJSON, err := json.Marshal(order)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%s", key, order.OrderID)),
		Value: orderJSON,
	}

	return s.kafkaWriter.WriteMessages(ctx, msg)
}

// newOrderID returns a short human-readable token, e.g. "ord-3f9c2a". The
// orders PK column is VARCHAR(10), so the tag plus six hex chars fills it.
func newOrderID() string {
	b := make([]byte, 3)
	rand.Read(b)
	return "ord-" + hex.EncodeToString(b)
}
