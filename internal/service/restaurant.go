package service

import "github.com/SergeyKozyr/star-burger/internal/domain"

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(rest *domain.Restaurant) error {
	return s.repo.CreateRestaurant(rest)
}

func (s *RestaurantService) List() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *RestaurantService) Get(id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *RestaurantService) Update(rest *domain.Restaurant) error {
	return s.repo.UpdateRestaurant(rest)
}

func (s *RestaurantService) Delete(id int) (int64, error) {
	return s.repo.DeleteRestaurant(id)
}

func (s *RestaurantService) SetMenuItem(item *domain.MenuItem) error {
	return s.repo.SetMenuItem(item)
}

func (s *RestaurantService) RemoveMenuItem(restaurantID, productID int) (int64, error) {
	return s.repo.RemoveMenuItem(restaurantID, productID)
}

func (s *RestaurantService) Menu(restaurantID int) ([]domain.MenuItem, error) {
	return s.repo.ListMenu(restaurantID)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
