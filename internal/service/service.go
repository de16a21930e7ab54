package service

import (
	"context"

	"chronokart/internal/model"
	"chronokart/internal/notification"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create validates and inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update validates and overwrites an existing product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id string) error
}

// OrderService defines operations for the order lifecycle.
type OrderService interface {
	// Create creates a new order from a checkout submission, recomputing all
	// totals server-side.
	Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List retrieves all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// UpdateStatus transitions the order status, enforcing the transition
	// rules and the COD payment-verification gate.
	UpdateStatus(ctx context.Context, id uuid.UUID, next model.Status) (*model.Order, error)

	// VerifyPayment records an admin attestation that payment was received.
	VerifyPayment(ctx context.Context, id uuid.UUID, transactionID, notes string) (*model.Order, error)

	// NotificationDraft composes a customer message for the order. The caller
	// dispatches it; nothing is sent automatically.
	NotificationDraft(ctx context.Context, id uuid.UUID, tmpl notification.Template) (*notification.Draft, error)
}

// ContactService defines operations for contact messages.
type ContactService interface {
	// Submit validates and stores a contact form submission.
	Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error)

	// List retrieves all contact messages, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)
}
