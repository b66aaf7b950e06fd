package services

import (
	"context"
	"time"

	apperrors "ecommerce-api/common/errors"
	"ecommerce-api/kafka"
	"ecommerce-api/models"
	"ecommerce-api/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserView is the reduced user projection returned with an order.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// OrderDetailsView carries the priced product set of an order.
type OrderDetailsView struct {
	ID       uuid.UUID        `json:"id"`
	Price    decimal.Decimal  `json:"price"`
	Products []models.Product `json:"products"`
}

// OrderView is the serializable order representation returned to callers.
// ExcludedProductIDs lists requested products that were dropped because
// they were missing, out of stock, or lost the stock race.
type OrderView struct {
	ID                 uuid.UUID        `json:"id"`
	Date               time.Time        `json:"date"`
	TotalPrice         decimal.Decimal  `json:"totalPrice"`
	OrderDetailsID     *uuid.UUID       `json:"orderDetailsId,omitempty"`
	User               UserView         `json:"user"`
	OrderDetails       OrderDetailsView `json:"orderDetails"`
	ExcludedProductIDs []uuid.UUID      `json:"excludedProductIds,omitempty"`
}

// OrderService orchestrates order placement and lookup.
type OrderService struct {
	orderRepo repository.OrderRepository
	producer  kafka.ProducerAPI
}

// NewOrderService creates a new OrderService. The producer may be nil, in
// which case no events are published.
func NewOrderService(orderRepo repository.OrderRepository, producer kafka.ProducerAPI) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		producer:  producer,
	}
}

// PlaceOrder validates the request and delegates the atomic order graph
// write to the repository. Duplicate product ids count once. On success an
// order.placed event is published best-effort; a publish failure never
// fails the placed order.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, productIDs []string) (*OrderView, *apperrors.Error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.InvalidArgument("Invalid user ID format")
	}
	if len(productIDs) == 0 {
		return nil, apperrors.InvalidArgument("The products list cannot be empty")
	}

	seen := make(map[uuid.UUID]bool, len(productIDs))
	ids := make([]uuid.UUID, 0, len(productIDs))
	for _, raw := range productIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperrors.InvalidArgument("Each product ID must be a valid UUID")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	order, excluded, repoErr := s.orderRepo.CreateOrderGraph(ctx, userUUID, ids)
	if repoErr != nil {
		return nil, apperrors.From(repoErr)
	}

	view := buildOrderView(order, excluded)

	if s.producer != nil {
		evt := models.OrderPlacedEvent{
			OrderID:    order.ID.String(),
			UserID:     order.UserID.String(),
			TotalPrice: order.TotalPrice.StringFixed(2),
			PlacedAt:   order.Date,
		}
		for _, p := range view.OrderDetails.Products {
			evt.ProductIDs = append(evt.ProductIDs, p.ID.String())
		}
		_ = s.producer.PublishOrderPlaced(ctx, evt)
	}

	return view, nil
}

// GetOrder loads an order with user, details and products. Products whose
// stock has since dropped to zero are filtered from the returned view.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*OrderView, *apperrors.Error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperrors.InvalidArgument("Invalid order ID format")
	}

	order, repoErr := s.orderRepo.LoadOrder(ctx, id)
	if repoErr != nil {
		return nil, apperrors.From(repoErr)
	}

	return buildOrderView(order, nil), nil
}

func buildOrderView(order *models.Order, excluded []uuid.UUID) *OrderView {
	view := &OrderView{
		ID:                 order.ID,
		Date:               order.Date,
		TotalPrice:         order.TotalPrice,
		OrderDetailsID:     order.OrderDetailsID,
		ExcludedProductIDs: excluded,
	}
	if order.User != nil {
		view.User = UserView{
			ID:    order.User.ID,
			Name:  order.User.Name,
			Email: order.User.Email,
		}
	}
	if order.OrderDetails != nil {
		view.OrderDetails = OrderDetailsView{
			ID:       order.OrderDetails.ID,
			Price:    order.OrderDetails.Price,
			Products: filterInStock(order.OrderDetails.Products),
		}
	}
	return view
}

// filterInStock drops products whose current stock is zero. Presence in a
// historical order does not imply current availability.
func filterInStock(products []models.Product) []models.Product {
	inStock := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Stock > 0 {
			inStock = append(inStock, p)
		}
	}
	return inStock
}
