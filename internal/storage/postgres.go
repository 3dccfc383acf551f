package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/SergeyKozyr/star-burger/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the tables the service needs if they are missing.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			address VARCHAR(100) NOT NULL DEFAULT '',
			contact_phone VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS product_categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			category_id INTEGER REFERENCES product_categories(id) ON DELETE SET NULL,
			price NUMERIC(8,2) NOT NULL,
			special_status BOOLEAN NOT NULL DEFAULT FALSE,
			ingredients VARCHAR(200) NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			availability BOOLEAN NOT NULL DEFAULT TRUE,
			UNIQUE (restaurant_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			firstname VARCHAR(50) NOT NULL,
			lastname VARCHAR(50) NOT NULL DEFAULT '',
			phonenumber VARCHAR(20) NOT NULL,
			address VARCHAR(200) NOT NULL,
			status VARCHAR(11) NOT NULL DEFAULT 'unprocessed',
			payment VARCHAR(6) NOT NULL DEFAULT 'cash',
			comment TEXT NOT NULL DEFAULT '',
			registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			called_at TIMESTAMPTZ,
			delivered_at TIMESTAMPTZ,
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id INTEGER NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price NUMERIC(8,2) NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// --- Restaurants ---

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name, address, contact_phone) VALUES ($1, $2, $3) RETURNING id, created_at",
		rest.Name, rest.Address, rest.ContactPhone,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, address, contact_phone, created_at
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, address, contact_phone, created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) ListRestaurantsByIDs(ids []int) ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, address, contact_phone, created_at
		FROM restaurants
		WHERE id = ANY($1)
		ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		UPDATE restaurants
		SET name = $1, address = $2, contact_phone = $3
		WHERE id = $4
		RETURNING created_at`,
		rest.Name, rest.Address, rest.ContactPhone, rest.ID).
		Scan(&rest.CreatedAt)
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// --- Menu items ---

// SetMenuItem inserts the (restaurant, product) pair or flips its
// availability if it already exists.
func (r *PostgresRepository) SetMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, product_id, availability)
		VALUES ($1, $2, $3)
		ON CONFLICT (restaurant_id, product_id)
		DO UPDATE SET availability = EXCLUDED.availability
		RETURNING id`,
		item.RestaurantID, item.ProductID, item.Availability).
		Scan(&item.ID)
}

func (r *PostgresRepository) RemoveMenuItem(restaurantID, productID int) (int64, error) {
	result, err := r.DB.Exec(
		"DELETE FROM menu_items WHERE restaurant_id = $1 AND product_id = $2",
		restaurantID, productID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListMenu(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT mi.id, mi.restaurant_id, mi.product_id, p.name, mi.availability
		FROM menu_items mi
		JOIN products p ON p.id = mi.product_id
		WHERE mi.restaurant_id = $1
		ORDER BY mi.product_id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.ProductID, &item.ProductName, &item.Availability); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// RestaurantIDsStockingProduct returns IDs of restaurants whose menu carries
// the product with availability switched on.
func (r *PostgresRepository) RestaurantIDsStockingProduct(productID int) ([]int, error) {
	rows, err := r.DB.Query(`
		SELECT restaurant_id
		FROM menu_items
		WHERE product_id = $1 AND availability = TRUE`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// --- Products ---

func (r *PostgresRepository) CreateProduct(p *domain.Product) error {
	return r.DB.QueryRow(`
		INSERT INTO products (name, category_id, price, special_status, ingredients, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		p.Name, p.CategoryID, p.Price, p.SpecialStatus, p.Ingredients, p.ImageURL).
		Scan(&p.ID)
}

// ListAvailableProducts returns products stocked by at least one restaurant
// with availability true, with their category attached.
func (r *PostgresRepository) ListAvailableProducts() ([]domain.Product, error) {
	rows, err := r.DB.Query(`
		SELECT DISTINCT p.id, p.name, p.category_id, c.name, p.price, p.special_status, p.ingredients, p.image_url
		FROM products p
		JOIN menu_items mi ON mi.product_id = p.id AND mi.availability = TRUE
		LEFT JOIN product_categories c ON c.id = p.category_id
		ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetProduct(id int) (*domain.Product, error) {
	row := r.DB.QueryRow(`
		SELECT p.id, p.name, p.category_id, c.name, p.price, p.special_status, p.ingredients, p.image_url
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		WHERE p.id = $1`, id)
	return scanProduct(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var categoryID sql.NullInt64
	var categoryName sql.NullString
	err := row.Scan(&p.ID, &p.Name, &categoryID, &categoryName, &p.Price, &p.SpecialStatus, &p.Ingredients, &p.ImageURL)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		id := int(categoryID.Int64)
		p.CategoryID = &id
		p.Category = &domain.ProductCategory{ID: id, Name: categoryName.String}
	}
	return &p, nil
}

func (r *PostgresRepository) UpdateProduct(p *domain.Product) error {
	_, err := r.DB.Exec(`
		UPDATE products
		SET name = $1, category_id = $2, price = $3, special_status = $4, ingredients = $5, image_url = $6
		WHERE id = $7`,
		p.Name, p.CategoryID, p.Price, p.SpecialStatus, p.Ingredients, p.ImageURL, p.ID)
	return err
}

func (r *PostgresRepository) DeleteProduct(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// --- Orders ---

// CreateOrder inserts the order and all of its items in one transaction. The
// item price is snapshotted from the products table inside the transaction; a
// missing product aborts the whole order.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (firstname, lastname, phonenumber, address, status, payment, comment, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		order.Firstname, order.Lastname, order.Phonenumber, order.Address,
		order.Status, order.Payment, order.Comment, order.RegisteredAt).
		Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		err = tx.QueryRow(`
			INSERT INTO order_items (order_id, product_id, quantity, price)
			SELECT $1, p.id, $2, p.price FROM products p WHERE p.id = $3
			RETURNING id, price`,
			order.ID, item.Quantity, item.ProductID).
			Scan(&item.ID, &item.Price)
		if err == sql.ErrNoRows {
			return fmt.Errorf("product %d: %w", item.ProductID, domain.ErrProductNotFound)
		}
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
		item.OrderID = order.ID
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, firstname, lastname, phonenumber, address, status, payment, comment,
		       registered_at, called_at, delivered_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.Firstname, &order.Lastname, &order.Phonenumber, &order.Address,
			&order.Status, &order.Payment, &order.Comment,
			&order.RegisteredAt, &order.CalledAt, &order.DeliveredAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, firstname, lastname, phonenumber, address, status, payment, comment,
		       registered_at, called_at, delivered_at
		FROM orders
		ORDER BY registered_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Firstname, &order.Lastname, &order.Phonenumber, &order.Address,
			&order.Status, &order.Payment, &order.Comment,
			&order.RegisteredAt, &order.CalledAt, &order.DeliveredAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(order *domain.Order) error {
	_, err := r.DB.Exec(`
		UPDATE orders
		SET status = $1, called_at = $2, delivered_at = $3
		WHERE id = $4`,
		order.Status, order.CalledAt, order.DeliveredAt, order.ID)
	return err
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}
