package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "github.com/SergeyKozyr/star-burger/internal/api/http"
	"github.com/SergeyKozyr/star-burger/internal/domain"
	"github.com/SergeyKozyr/star-burger/internal/geo"
	"github.com/SergeyKozyr/star-burger/internal/mocks"
)

type handlerFixtures struct {
	restaurants *mocks.RestaurantServiceInterface
	products    *mocks.ProductServiceInterface
	orders      *mocks.OrderServiceInterface
	matcher     *mocks.MatcherServiceInterface
	router      *mux.Router
}

func newHandlerFixtures(t *testing.T) *handlerFixtures {
	f := &handlerFixtures{
		restaurants: mocks.NewRestaurantServiceInterface(t),
		products:    mocks.NewProductServiceInterface(t),
		orders:      mocks.NewOrderServiceInterface(t),
		matcher:     mocks.NewMatcherServiceInterface(t),
	}
	handler := httpapi.NewHandler(f.restaurants, f.products, f.orders, f.matcher)
	f.router = mux.NewRouter()
	handler.RegisterRoutes(f.router)
	return f
}

func (f *handlerFixtures) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRegisterOrderHandler(t *testing.T) {
	validBody := `{
		"firstname": "Ivan",
		"lastname": "Petrov",
		"phonenumber": "+79991234567",
		"address": "Moscow, Arbat 1",
		"products": [{"product": 10, "quantity": 2}]
	}`

	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.OrderServiceInterface)
		wantCode  int
	}{
		{
			name: "valid order",
			body: validBody,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{broken`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing firstname",
			body:      `{"phonenumber":"+79991234567","address":"Moscow","products":[{"product":1,"quantity":1}]}`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "empty products",
			body:      `{"firstname":"Ivan","phonenumber":"+79991234567","address":"Moscow","products":[]}`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "zero quantity",
			body:      `{"firstname":"Ivan","phonenumber":"+79991234567","address":"Moscow","products":[{"product":1,"quantity":0}]}`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown payment method",
			body:      `{"firstname":"Ivan","phonenumber":"+79991234567","address":"Moscow","payment":"barter","products":[{"product":1,"quantity":1}]}`,
			setupMock: func(m *mocks.OrderServiceInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown product",
			body: validBody,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*domain.Order")).
					Return(fmt.Errorf("product 10: %w", domain.ErrProductNotFound)).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: validBody,
			setupMock: func(m *mocks.OrderServiceInterface) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*domain.Order")).
					Return(errors.New("db down")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newHandlerFixtures(t)
			testCase.setupMock(f.orders)

			w := f.do("POST", "/api/orders", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestMatchRestaurantsHandler(t *testing.T) {
	t.Run("ranked result", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.matcher.On("Match", mock.Anything, 7).Return([]domain.RankedRestaurant{
			{Restaurant: domain.Restaurant{ID: 2, Name: "Near"}, DistanceKm: decimal.NewFromFloat(1.254)},
			{Restaurant: domain.Restaurant{ID: 1, Name: "Far"}, DistanceKm: decimal.NewFromFloat(6.801)},
		}, nil).Once()

		w := f.do("GET", "/api/orders/7/restaurants", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var ranked []domain.RankedRestaurant
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ranked))
		assert.Len(t, ranked, 2)
		assert.Equal(t, "Near", ranked[0].Restaurant.Name)
	})

	t.Run("nobody can fulfill", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.matcher.On("Match", mock.Anything, 7).Return([]domain.RankedRestaurant{}, nil).Once()

		w := f.do("GET", "/api/orders/7/restaurants", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("order not found", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.matcher.On("Match", mock.Anything, 404).Return(nil, domain.ErrOrderNotFound).Once()

		w := f.do("GET", "/api/orders/404/restaurants", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("geocoding failure", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.matcher.On("Match", mock.Anything, 7).
			Return(nil, fmt.Errorf("resolve delivery address: %w", geo.ErrGeocodingFailed)).Once()

		w := f.do("GET", "/api/orders/7/restaurants", "")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "verify the address")
	})
}

func TestOrderLifecycleHandlers(t *testing.T) {
	t.Run("process", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.orders.On("MarkProcessed", 7).
			Return(&domain.Order{ID: 7, Status: domain.StatusProcessed}, nil).Once()

		w := f.do("POST", "/api/orders/7/process", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("process twice", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.orders.On("MarkProcessed", 7).Return(nil, domain.ErrAlreadyProcessed).Once()

		w := f.do("POST", "/api/orders/7/process", "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("called on missing order", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.orders.On("MarkCalled", 404).Return(nil, domain.ErrOrderNotFound).Once()

		w := f.do("POST", "/api/orders/404/called", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delivered", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.orders.On("MarkDelivered", 7).Return(&domain.Order{ID: 7}, nil).Once()

		w := f.do("POST", "/api/orders/7/delivered", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetProductsHandler(t *testing.T) {
	f := newHandlerFixtures(t)
	f.products.On("ListAvailable").Return([]domain.Product{
		{ID: 1, Name: "Margherita", Price: 250},
	}, nil).Once()

	w := f.do("GET", "/api/products", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)
	assert.Equal(t, "Margherita", products[0].Name)
}

func TestGetOrderQRCodeHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.orders.On("GetQRCode", 7).Return([]byte("png bytes"), nil).Once()

		w := f.do("GET", "/api/orders/7/qrcode", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})

	t.Run("missing order", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.orders.On("GetQRCode", 404).Return(nil, domain.ErrOrderNotFound).Once()

		w := f.do("GET", "/api/orders/404/qrcode", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMenuHandlers(t *testing.T) {
	t.Run("set availability", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.restaurants.On("SetMenuItem", mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()

		w := f.do("PUT", "/api/restaurants/1/menu/10", `{"availability":true}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("remove missing item", func(t *testing.T) {
		f := newHandlerFixtures(t)
		f.restaurants.On("RemoveMenuItem", 1, 10).Return(int64(0), nil).Once()

		w := f.do("DELETE", "/api/restaurants/1/menu/10", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthAndBanners(t *testing.T) {
	f := newHandlerFixtures(t)

	w := f.do("GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do("GET", "/api/banners", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var banners []domain.Banner
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &banners))
	assert.NotEmpty(t, banners)
}
