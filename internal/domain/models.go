package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusUnprocessed Status = "unprocessed"
	StatusProcessed   Status = "processed"
)

type Payment string

const (
	PaymentCash   Payment = "cash"
	PaymentOnline Payment = "online"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("item quantity must be positive")
	ErrAlreadyProcessed = errors.New("order already processed")
)

type Restaurant struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactPhone string    `json:"contact_phone"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	CategoryID    *int             `json:"category_id,omitempty"`
	Category      *ProductCategory `json:"category,omitempty"`
	Price         float64          `json:"price"`
	SpecialStatus bool             `json:"special_status"`
	Ingredients   string           `json:"ingredients"`
	ImageURL      string           `json:"image"`
}

// MenuItem records that a restaurant offers a product. The
// (restaurant, product) pair is unique; availability toggles whether the
// restaurant currently stocks it.
type MenuItem struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name,omitempty"`
	Availability bool   `json:"availability"`
}

type Order struct {
	ID           int         `json:"id"`
	Firstname    string      `json:"firstname"`
	Lastname     string      `json:"lastname"`
	Phonenumber  string      `json:"phonenumber"`
	Address      string      `json:"address"`
	Status       Status      `json:"status"`
	Payment      Payment     `json:"payment"`
	Comment      string      `json:"comment"`
	RegisteredAt time.Time   `json:"registered_at"`
	CalledAt     *time.Time  `json:"called_at,omitempty"`
	DeliveredAt  *time.Time  `json:"delivered_at,omitempty"`
	Items        []OrderItem `json:"items"`
}

// OrderItem keeps a price snapshot taken at order time, so later product
// price changes do not alter historical orders.
type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// MarkProcessed moves the order from unprocessed to processed. The transition
// is one-way.
func (o *Order) MarkProcessed() error {
	if o.Status == StatusProcessed {
		return ErrAlreadyProcessed
	}
	o.Status = StatusProcessed
	return nil
}

// MarkCalled records the customer call time once; repeated calls keep the
// original timestamp.
func (o *Order) MarkCalled(at time.Time) {
	if o.CalledAt == nil {
		o.CalledAt = &at
	}
}

// MarkDelivered records the delivery time once.
func (o *Order) MarkDelivered(at time.Time) {
	if o.DeliveredAt == nil {
		o.DeliveredAt = &at
	}
}

// Total sums the snapshotted item prices.
func (o *Order) Total() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// RankedRestaurant pairs a restaurant that can fulfill an order with its
// distance from the delivery address.
type RankedRestaurant struct {
	Restaurant Restaurant      `json:"restaurant"`
	DistanceKm decimal.Decimal `json:"distance_km"`
}

type Banner struct {
	Title string `json:"title"`
	Src   string `json:"src"`
	Text  string `json:"text"`
}

// OrderEvent is published to Kafka after an order is registered.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	Address   string    `json:"address"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}
