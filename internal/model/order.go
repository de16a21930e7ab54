package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the order fulfilment state. Orders move forward one step at a
// time (pending -> processing -> shipped -> completed); cancelled is a
// terminal side-state reachable from any non-terminal status.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// next returns the single legal forward step for a status.
func (s Status) next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusProcessing, true
	case StatusProcessing:
		return StatusShipped, true
	case StatusShipped:
		return StatusCompleted, true
	}
	return "", false
}

// PaymentOption is how the customer chose to pay.
type PaymentOption string

const (
	PaymentCOD  PaymentOption = "cod"
	PaymentFull PaymentOption = "full"
)

// ParsePaymentOption converts a wire value into a PaymentOption.
func ParsePaymentOption(s string) (PaymentOption, error) {
	switch PaymentOption(s) {
	case PaymentCOD, PaymentFull:
		return PaymentOption(s), nil
	}
	return "", ErrInvalidPaymentOption
}

// PaymentStatus records whether an admin has attested that payment arrived.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// CanTransition is the single authoritative transition rule, shared by the
// server boundary and any client. Forward steps go one at a time; cancel is
// allowed from any non-terminal state regardless of payment status. COD
// orders must have their payment verified before any forward step. Full
// payment orders carry no such gate (matching the store's current behaviour,
// even though it is arguably inconsistent).
func CanTransition(current, next Status, opt PaymentOption, pay PaymentStatus) bool {
	if current.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	forward, ok := current.next()
	if !ok || next != forward {
		return false
	}
	if opt == PaymentCOD && pay != PaymentStatusVerified {
		return false
	}
	return true
}

// OrderItem is a frozen copy of a cart line item. It deliberately duplicates
// product fields so later catalogue edits never alter historical orders.
type OrderItem struct {
	ID        uuid.UUID      `json:"-" db:"id"`
	OrderID   uuid.UUID      `json:"-" db:"order_id"`
	ProductID string         `json:"productId" db:"product_id"`
	Name      string         `json:"name" db:"name"`
	Price     int            `json:"price" db:"price"`
	Quantity  int            `json:"quantity" db:"quantity"`
	Image     string         `json:"image" db:"image"`
	Color     ColorSelection `json:"color" db:"color"`
}

// Order represents a placed order. After creation it is mutated only by
// administrative status updates and payment verification; customer tracking
// is read-only.
type Order struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	CustomerName      string        `json:"customerName" db:"customer_name"`
	CustomerPhone     string        `json:"customerPhone" db:"customer_phone"`
	CustomerEmail     string        `json:"customerEmail" db:"customer_email"`
	DeliveryAddress   string        `json:"deliveryAddress" db:"delivery_address"`
	Note              string        `json:"note,omitempty" db:"note"`
	Items             []OrderItem   `json:"items"`
	Subtotal          int           `json:"subtotal" db:"subtotal"`
	Discount          int           `json:"discount" db:"discount"`
	Shipping          int           `json:"shipping" db:"shipping"`
	Total             int           `json:"total" db:"total"`
	Status            Status        `json:"status" db:"status"`
	PaymentOption     PaymentOption `json:"paymentOption" db:"payment_option"`
	PaymentStatus     PaymentStatus `json:"paymentStatus" db:"payment_status"`
	TransactionID     string        `json:"transactionId,omitempty" db:"transaction_id"`
	VerificationNotes string        `json:"verificationNotes,omitempty" db:"verification_notes"`
	CreatedAt         time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time     `json:"updatedAt" db:"updated_at"`
}

// OrderRequest is the checkout submission built from a cart snapshot.
type OrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerEmail   string             `json:"customerEmail"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Note            string             `json:"note,omitempty"`
	Items           []OrderItemRequest `json:"items"`
	PaymentOption   string             `json:"paymentOption"`
}

// OrderItemRequest is a single frozen line item in an order request.
type OrderItemRequest struct {
	ProductID string         `json:"productId"`
	Name      string         `json:"name"`
	Price     int            `json:"price"`
	Quantity  int            `json:"quantity"`
	Image     string         `json:"image"`
	Color     ColorSelection `json:"color"`
}

// StatusUpdateRequest is the admin request body for PUT /api/orders/{id}/status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// PaymentVerificationRequest is the admin request body for PUT /api/orders/{id}.
type PaymentVerificationRequest struct {
	PaymentStatus     string `json:"paymentStatus"`
	TransactionID     string `json:"transactionId"`
	VerificationNotes string `json:"verificationNotes,omitempty"`
}
