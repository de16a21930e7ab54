package client

import (
	"context"
	"fmt"

	"chronokart/internal/cart"
	"chronokart/internal/model"
)

// CustomerInfo is the checkout form data collected from the customer. The
// address fields are flattened into a single free-text delivery address.
type CustomerInfo struct {
	FullName      string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	ZipCode       string
	Note          string
	PaymentOption model.PaymentOption
}

// BuildOrderRequest freezes the cart's line items into a checkout submission.
func BuildOrderRequest(items []cart.LineItem, info CustomerInfo) *model.OrderRequest {
	req := &model.OrderRequest{
		CustomerName:    info.FullName,
		CustomerPhone:   info.Phone,
		CustomerEmail:   info.Email,
		DeliveryAddress: fmt.Sprintf("%s, %s, %s - %s", info.Address, info.City, info.State, info.ZipCode),
		Note:            info.Note,
		PaymentOption:   string(info.PaymentOption),
		Items:           make([]model.OrderItemRequest, len(items)),
	}

	for i, item := range items {
		req.Items[i] = model.OrderItemRequest{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Image:     item.Product.Image,
			Color:     item.Color,
		}
	}

	return req
}

// Checkout submits the cart as an order and clears the cart only once the
// backend has accepted the submission. A failed submission leaves the cart
// untouched.
func (c *Client) Checkout(ctx context.Context, store *cart.Store, info CustomerInfo) (*model.Order, error) {
	items := store.Items()
	if len(items) == 0 {
		return nil, model.ErrEmptyOrder
	}

	order, err := c.CreateOrder(ctx, BuildOrderRequest(items, info))
	if err != nil {
		return nil, err
	}

	if err := store.Clear(ctx); err != nil {
		// The order is already placed; a failed cart clear is worth a log but
		// must not fail the checkout.
		c.logger.Warn().Err(err).Str("order_id", order.ID.String()).Msg("failed to clear cart after checkout")
	}

	return order, nil
}
