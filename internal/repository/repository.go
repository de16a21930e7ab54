package repository

import (
	"context"

	"chronokart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns (nil, nil) when
	// the product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update overwrites an existing product. Returns model.ErrProductNotFound
	// when no row matched.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product. Returns model.ErrProductNotFound when no row
	// matched.
	Delete(ctx context.Context, id string) error

	// ValidateProductsExist checks if all provided product IDs exist.
	ValidateProductsExist(ctx context.Context, ids []string) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. Returns
	// (nil, nil) when the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List retrieves all orders, newest first, with their items.
	List(ctx context.Context) ([]model.Order, error)

	// UpdateStatus overwrites the order status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error

	// UpdatePayment overwrites the payment verification fields.
	UpdatePayment(ctx context.Context, id uuid.UUID, status model.PaymentStatus, transactionID, notes string) error
}

// ContactRepository defines the interface for contact message persistence.
type ContactRepository interface {
	// Create inserts a new contact message.
	Create(ctx context.Context, msg *model.ContactMessage) error

	// List retrieves all contact messages, newest first.
	List(ctx context.Context) ([]model.ContactMessage, error)
}
