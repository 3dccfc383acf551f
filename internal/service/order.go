package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/SergeyKozyr/star-burger/internal/domain"
)

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

// Register persists the order and all of its items atomically: a line item
// that fails to resolve to a product aborts the whole order.
func (s *OrderService) Register(ctx context.Context, order *domain.Order) error {
	if len(order.Items) == 0 {
		return domain.ErrEmptyOrder
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("product %d: %w", item.ProductID, domain.ErrInvalidQuantity)
		}
	}

	order.Status = domain.StatusUnprocessed
	if order.Payment == "" {
		order.Payment = domain.PaymentCash
	}
	order.RegisteredAt = time.Now()

	if err := s.repo.CreateOrder(order); err != nil {
		return err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err != nil {
			log.Printf("Warning: failed to generate QR code for order %d: %v", order.ID, err)
		} else if err := s.repo.SaveQRCode(order.ID, qr); err != nil {
			log.Printf("Warning: failed to save QR code for order %d: %v", order.ID, err)
		}
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:      "order_registered",
			OrderID:   order.ID,
			Address:   order.Address,
			Total:     order.Total(),
			Timestamp: time.Now(),
		}
		if err := s.publisher.PublishOrderRegistered(ctx, event); err != nil {
			log.Printf("Warning: failed to publish order %d registration: %v", order.ID, err)
		}
	}

	return nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	return s.repo.GetOrder(id)
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) MarkProcessed(id int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if err := order.MarkProcessed(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateOrderStatus(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) MarkCalled(id int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	order.MarkCalled(time.Now())
	if err := s.repo.UpdateOrderStatus(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) MarkDelivered(id int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	order.MarkDelivered(time.Now())
	if err := s.repo.UpdateOrderStatus(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			if err := s.repo.SaveQRCode(orderID, regenerated); err != nil {
				log.Printf("Warning: failed to save QR code for order %d: %v", orderID, err)
			}
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
