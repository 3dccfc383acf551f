package service

import "github.com/SergeyKozyr/star-burger/internal/domain"

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(p *domain.Product) error {
	return s.repo.CreateProduct(p)
}

// ListAvailable returns products with at least one restaurant stocking them.
func (s *ProductService) ListAvailable() ([]domain.Product, error) {
	return s.repo.ListAvailableProducts()
}

func (s *ProductService) Get(id int) (*domain.Product, error) {
	return s.repo.GetProduct(id)
}

func (s *ProductService) Update(p *domain.Product) error {
	return s.repo.UpdateProduct(p)
}

func (s *ProductService) Delete(id int) (int64, error) {
	return s.repo.DeleteProduct(id)
}

var _ ProductServiceInterface = (*ProductService)(nil)
