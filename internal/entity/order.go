package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Price is a non-negative amount that always serializes with two decimal
// digits, e.g. 12.5 -> "12.50". The frontend renders it verbatim.
type Price float64

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("%.2f", float64(p)))
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// RawPrice captures a price exactly as the client sent it, JSON number or
// string, so validation happens in one place in the service layer.
type RawPrice string

func (r *RawPrice) UnmarshalJSON(data []byte) error {
	*r = RawPrice(strings.Trim(string(data), `"`))
	return nil
}

func (r RawPrice) String() string { return string(r) }

// ParsePrice accepts a decimal string and rejects anything that is not a
// non-negative number.
func ParsePrice(s string) (Price, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("price %q is negative", s)
	}
	return Price(f), nil
}

type FoodItem struct {
	ItemID   int    `json:"-"`
	FoodName string `json:"Food"`
	Price    Price  `json:"Price"`
}

type Container struct {
	ContainerID     int        `json:"-"`
	ContainerNumber int        `json:"-"`
	PackagingType   string     `json:"PackagingType"`
	Message         string     `json:"message"`
	FoodItems       []FoodItem `json:"FoodItems"`
}

// Order is the nested aggregate returned to clients. Containers are keyed by
// their stringified surrogate id, matching what the frontend expects.
type Order struct {
	OrderID    string                `json:"order_id"`
	OrderType  string                `json:"order_type"`
	Location   string                `json:"location"`
	Payment    string                `json:"Payment"`
	Containers map[string]*Container `json:"containers"`
}

// ContainerKey is the nested-representation key for a container.
func ContainerKey(containerID int) string {
	return strconv.Itoa(containerID)
}

// SubmitOrderRequest is the inbound payload for POST /api/submit-order.
type SubmitOrderRequest struct {
	OrderType  string           `json:"order_type"`
	Location   string           `json:"location"`
	Payment    string           `json:"payment"`
	Containers []ContainerInput `json:"containers"`
}

type ContainerInput struct {
	ContainerNumber int             `json:"container_number"`
	PackagingType   string          `json:"packaging_type"`
	Message         string          `json:"message"`
	FoodItems       []FoodItemInput `json:"food_items"`
}

type FoodItemInput struct {
	FoodName string   `json:"food_name"`
	Price    RawPrice `json:"price"`
}
