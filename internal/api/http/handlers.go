package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"

	"github.com/SergeyKozyr/star-burger/internal/domain"
	"github.com/SergeyKozyr/star-burger/internal/geo"
	"github.com/SergeyKozyr/star-burger/internal/service"
)

var validate = validator.New()

// TODO: move banners to the db
var banners = []domain.Banner{
	{Title: "Burger", Src: "/static/burger.jpg", Text: "Tasty Burger at your door step"},
	{Title: "Spices", Src: "/static/food.jpg", Text: "All Cuisines"},
	{Title: "New York", Src: "/static/tasty.jpg", Text: "Food is incomplete without a tasty dessert"},
}

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Products    service.ProductServiceInterface
	Orders      service.OrderServiceInterface
	Matcher     service.MatcherServiceInterface
}

func NewHandler(restSvc service.RestaurantServiceInterface, productSvc service.ProductServiceInterface,
	orderSvc service.OrderServiceInterface, matcherSvc service.MatcherServiceInterface) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Products:    productSvc,
		Orders:      orderSvc,
		Matcher:     matcherSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/banners", h.getBanners).Methods("GET")

	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products", h.createProduct).Methods("POST")
	r.HandleFunc("/api/products/{id}", h.getProduct).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.updateProduct).Methods("PUT")
	r.HandleFunc("/api/products/{id}", h.deleteProduct).Methods("DELETE")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu/{productId}", h.setMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/menu/{productId}", h.removeMenuItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.registerOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/process", h.processOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/called", h.orderCalled).Methods("POST")
	r.HandleFunc("/api/orders/{id}/delivered", h.orderDelivered).Methods("POST")
	r.HandleFunc("/api/orders/{id}/restaurants", h.matchRestaurants).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "star-burger",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getBanners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, banners)
}

// --- Products ---

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.ListAvailable()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Products.Create(&p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.Products.Get(id)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.ID = id
	if err := h.Products.Update(&p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Products.Delete(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Restaurants ---

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurants.Create(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, err := h.Restaurants.Get(id)
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest.ID = id
	if err := h.Restaurants.Update(&rest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Restaurants.Delete(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Menu items ---

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	items, err := h.Restaurants.Menu(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) setMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["id"])
	productID, _ := strconv.Atoi(vars["productId"])

	var payload struct {
		Availability bool `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item := domain.MenuItem{
		RestaurantID: restaurantID,
		ProductID:    productID,
		Availability: payload.Availability,
	}
	if err := h.Restaurants.SetMenuItem(&item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) removeMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["id"])
	productID, _ := strconv.Atoi(vars["productId"])

	rows, err := h.Restaurants.RemoveMenuItem(restaurantID, productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Orders ---

type registerOrderRequest struct {
	Firstname   string `json:"firstname" validate:"required,max=50"`
	Lastname    string `json:"lastname" validate:"max=50"`
	Phonenumber string `json:"phonenumber" validate:"required,max=20"`
	Address     string `json:"address" validate:"required,max=200"`
	Payment     string `json:"payment" validate:"omitempty,oneof=cash online"`
	Comment     string `json:"comment"`
	Products    []struct {
		Product  int `json:"product" validate:"required"`
		Quantity int `json:"quantity" validate:"required,gt=0"`
	} `json:"products" validate:"required,min=1,dive"`
}

func (h *Handler) registerOrder(w http.ResponseWriter, r *http.Request) {
	var payload registerOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, "Invalid order payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	order := domain.Order{
		Firstname:   payload.Firstname,
		Lastname:    payload.Lastname,
		Phonenumber: payload.Phonenumber,
		Address:     payload.Address,
		Payment:     domain.Payment(payload.Payment),
		Comment:     payload.Comment,
	}
	for _, item := range payload.Products {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.Product,
			Quantity:  item.Quantity,
		})
	}

	if err := h.Orders.Register(r.Context(), &order); err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound),
			errors.Is(err, domain.ErrEmptyOrder),
			errors.Is(err, domain.ErrInvalidQuantity):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) processOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.MarkProcessed(id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, domain.ErrAlreadyProcessed):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) orderCalled(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.MarkCalled(id)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) orderDelivered(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.MarkDelivered(id)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) writeOrderError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrOrderNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// matchRestaurants ranks the restaurants able to fulfill the whole order,
// nearest first. An empty list is a normal answer; a geocoding failure is
// not.
func (h *Handler) matchRestaurants(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	ranked, err := h.Matcher.Match(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, geo.ErrGeocodingFailed):
			http.Error(w, "could not determine delivery distance, please verify the address", http.StatusBadGateway)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.GetQRCode(id)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
