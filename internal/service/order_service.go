package service

import (
	"context"
	"fmt"
	"time"

	"chronokart/internal/model"
	"chronokart/internal/notification"
	"chronokart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	composer    *notification.Composer
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	composer *notification.Composer,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		composer:    composer,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Create creates a new order from a checkout submission. Totals are
// recomputed here from the frozen line items and never taken from the client.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	paymentOption, err := model.ParsePaymentOption(req.PaymentOption)
	if err != nil {
		s.logger.Warn().Str("payment_option", req.PaymentOption).Msg("invalid payment option")
		return nil, err
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}

	if err := s.productRepo.ValidateProductsExist(ctx, productIDs); err != nil {
		s.logger.Warn().
			Int("product_count", len(productIDs)).
			Err(err).
			Msg("product validation failed")
		return nil, err
	}

	totals := model.ComputeTotals(req.Items)

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		Note:            req.Note,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		Status:          model.StatusPending,
		PaymentOption:   paymentOption,
		PaymentStatus:   model.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	order.Items = make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		order.Items[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Color:     item.Color,
		}
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, order.Items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(order.Items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(order.Items)).
		Int("total", order.Total).
		Str("payment_option", string(order.PaymentOption)).
		Msg("order created successfully")

	return order, nil
}

// GetByID retrieves an order with its items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// List retrieves all orders, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus transitions the order status. The transition table and the
// COD payment gate are enforced here, at the single authoritative point,
// rather than trusting whatever the admin UI disabled.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, next model.Status) (*model.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(order.Status, next, order.PaymentOption, order.PaymentStatus) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Str("to", string(next)).
			Str("payment_option", string(order.PaymentOption)).
			Str("payment_status", string(order.PaymentStatus)).
			Msg("status transition rejected")
		return nil, model.ErrTransitionNotAllowed
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = next
	order.UpdatedAt = time.Now()

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(next)).
		Msg("order status updated")

	return order, nil
}

// VerifyPayment records an admin attestation that payment was received
// out-of-band, unlocking forward transitions for COD orders.
func (s *orderService) VerifyPayment(ctx context.Context, id uuid.UUID, transactionID, notes string) (*model.Order, error) {
	if transactionID == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "transaction ID is required")
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdatePayment(ctx, id, model.PaymentStatusVerified, transactionID, notes); err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to verify payment")
		return nil, fmt.Errorf("failed to verify payment: %w", err)
	}

	order.PaymentStatus = model.PaymentStatusVerified
	order.TransactionID = transactionID
	order.VerificationNotes = notes
	order.UpdatedAt = time.Now()

	s.logger.Info().
		Str("order_id", id.String()).
		Str("transaction_id", transactionID).
		Msg("payment verified")

	return order, nil
}

// NotificationDraft composes a customer message for the order.
func (s *orderService) NotificationDraft(ctx context.Context, id uuid.UUID, tmpl notification.Template) (*notification.Draft, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var draft notification.Draft
	switch tmpl {
	case notification.TemplatePaymentRequest:
		if order.PaymentOption != model.PaymentCOD {
			return nil, model.NewDomainError(model.ErrCodeValidation, "payment requests are only available for COD orders")
		}
		draft = s.composer.PaymentRequest(order)
	case notification.TemplateOrderConfirmation:
		draft = s.composer.OrderConfirmation(order)
	case notification.TemplateStatusUpdate:
		draft = s.composer.StatusUpdate(order)
	default:
		return nil, model.NewDomainError(model.ErrCodeValidation, fmt.Sprintf("unknown notification template: %s", tmpl))
	}

	return &draft, nil
}

// validateOrderRequest validates the checkout submission.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "order request is nil")
	}

	if req.CustomerName == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "customer name is required")
	}
	if req.CustomerPhone == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "customer phone is required")
	}
	if req.DeliveryAddress == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "delivery address is required")
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	for i, item := range req.Items {
		if item.ProductID == "" {
			return model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("item %d: product ID is required", i))
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}

		if item.Price <= 0 {
			return model.NewDomainError(model.ErrCodeValidation, fmt.Sprintf("item %d: price must be positive", i))
		}
	}

	return nil
}
