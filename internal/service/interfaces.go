package service

import (
	"context"
	"time"

	"github.com/SergeyKozyr/star-burger/internal/domain"
	"github.com/SergeyKozyr/star-burger/internal/geo"
)

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	ListRestaurantsByIDs(ids []int) ([]domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id int) (int64, error)
	SetMenuItem(item *domain.MenuItem) error
	RemoveMenuItem(restaurantID, productID int) (int64, error)
	ListMenu(restaurantID int) ([]domain.MenuItem, error)
}

type ProductRepository interface {
	CreateProduct(p *domain.Product) error
	ListAvailableProducts() ([]domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	UpdateProduct(p *domain.Product) error
	DeleteProduct(id int) (int64, error)
	RestaurantIDsStockingProduct(productID int) ([]int, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	UpdateOrderStatus(order *domain.Order) error
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type Geocoder interface {
	Resolve(ctx context.Context, address string) (geo.Point, error)
}

type CoordinateCache interface {
	RestaurantKey(restaurantID int) string
	OrderKey(orderID int) string
	Get(ctx context.Context, key string) (geo.Point, bool, error)
	Put(ctx context.Context, key string, pt geo.Point, ttl time.Duration) error
}

type OrderPublisher interface {
	PublishOrderRegistered(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type CoordinateResolverInterface interface {
	ResolveOrder(ctx context.Context, orderID int, address string) (geo.Point, error)
	ResolveRestaurant(ctx context.Context, restaurantID int, address string) (geo.Point, error)
}

type RestaurantServiceInterface interface {
	Create(rest *domain.Restaurant) error
	List() ([]domain.Restaurant, error)
	Get(id int) (*domain.Restaurant, error)
	Update(rest *domain.Restaurant) error
	Delete(id int) (int64, error)
	SetMenuItem(item *domain.MenuItem) error
	RemoveMenuItem(restaurantID, productID int) (int64, error)
	Menu(restaurantID int) ([]domain.MenuItem, error)
}

type ProductServiceInterface interface {
	Create(p *domain.Product) error
	ListAvailable() ([]domain.Product, error)
	Get(id int) (*domain.Product, error)
	Update(p *domain.Product) error
	Delete(id int) (int64, error)
}

type OrderServiceInterface interface {
	Register(ctx context.Context, order *domain.Order) error
	Get(id int) (*domain.Order, error)
	List() ([]domain.Order, error)
	MarkProcessed(id int) (*domain.Order, error)
	MarkCalled(id int) (*domain.Order, error)
	MarkDelivered(id int) (*domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
}

type MatcherServiceInterface interface {
	Match(ctx context.Context, orderID int) ([]domain.RankedRestaurant, error)
}
