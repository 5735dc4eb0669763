package entity

// MenuItem is a catalog entry. It is backed by a food item inside a container
// with no owning order; the packaging type lives on that container.
type MenuItem struct {
	ID            int    `json:"id"`
	FoodName      string `json:"food_name"`
	Price         Price  `json:"price"`
	PackagingType string `json:"packaging_type"`
}

// AddMenuItemRequest is the inbound payload for POST /api/menu-items.
// Price arrives as a string or number and is validated before insert.
type AddMenuItemRequest struct {
	FoodName      string   `json:"food_name"`
	Price         RawPrice `json:"price"`
	PackagingType string   `json:"packaging_type"`
}
