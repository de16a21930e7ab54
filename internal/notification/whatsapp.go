package notification

import (
	"fmt"
	"net/url"
	"strings"

	"chronokart/internal/model"

	"github.com/rs/zerolog"
)

// Composer renders WhatsApp message drafts for order notifications.
type Composer struct {
	storeName string
	upiID     string
	baseURL   string // storefront origin for tracking links
	logger    zerolog.Logger
}

// NewComposer creates a notification composer.
func NewComposer(storeName, upiID, baseURL string, logger zerolog.Logger) *Composer {
	return &Composer{
		storeName: storeName,
		upiID:     upiID,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    logger.With().Str("component", "notification-composer").Logger(),
	}
}

var statusHeadline = map[model.Status]string{
	model.StatusPending:    "Order Placed",
	model.StatusProcessing: "Order Processing",
	model.StatusShipped:    "Order Shipped",
	model.StatusCompleted:  "Order Delivered",
	model.StatusCancelled:  "Order Cancelled",
}

var statusDescription = map[model.Status]string{
	model.StatusPending:    "We have received your order and will process it shortly.",
	model.StatusProcessing: "Your order is being processed and prepared for shipping.",
	model.StatusShipped:    "Your order has been shipped and is on its way to you.",
	model.StatusCompleted:  "Your order has been successfully delivered. Thank you for shopping with us!",
	model.StatusCancelled:  "Your order has been cancelled as per your request.",
}

// PaymentRequest composes the COD advance-payment request with the UPI deep
// link. Only meaningful for COD orders; full-payment orders carry no advance.
func (c *Composer) PaymentRequest(order *model.Order) Draft {
	remaining := order.Total - model.CODAdvanceAmount
	shortID := shortOrderID(order)

	var b strings.Builder
	fmt.Fprintf(&b, "*Order Payment Request*\n\n")
	fmt.Fprintf(&b, "Order ID: #%s\n", shortID)
	fmt.Fprintf(&b, "Customer: %s\n\n", order.CustomerName)
	b.WriteString("*Order Details:*\n")
	b.WriteString(itemLines(order.Items))
	b.WriteString("\n\n*Payment Details:*\n")
	fmt.Fprintf(&b, "Total Amount: ₹%s\n", formatINR(order.Total))
	fmt.Fprintf(&b, "Initial Payment: ₹%s\n", formatINR(model.CODAdvanceAmount))
	fmt.Fprintf(&b, "Remaining Amount (Pay on Delivery): ₹%s\n\n", formatINR(remaining))
	b.WriteString("*UPI Payment Details:*\n")
	fmt.Fprintf(&b, "UPI ID: %s\n", c.upiID)
	fmt.Fprintf(&b, "Payment Link: upi://pay?pa=%s&pn=%s&am=%d&cu=INR&tn=Order %s - Initial Payment\n\n",
		c.upiID, c.storeName, model.CODAdvanceAmount, shortID)
	fmt.Fprintf(&b, "Please complete the initial payment of ₹%d using the UPI link above.\n", model.CODAdvanceAmount)
	b.WriteString("After payment, please notify us with your transaction ID.\n\n")
	b.WriteString("Thank you for your order!")

	return c.draft(order, TemplatePaymentRequest, b.String())
}

// OrderConfirmation composes the order-placed (and, for full payment,
// payment-confirmed) message with the tracking link.
func (c *Composer) OrderConfirmation(order *model.Order) Draft {
	var b strings.Builder
	if order.PaymentOption == model.PaymentFull {
		b.WriteString("*Payment Confirmed & Order Placed Successfully!*\n\n")
	} else {
		b.WriteString("*Order Placed Successfully!*\n\n")
	}
	fmt.Fprintf(&b, "Order ID: #%s\n", shortOrderID(order))
	fmt.Fprintf(&b, "Customer: %s\n\n", order.CustomerName)
	b.WriteString("*Order Details:*\n")
	b.WriteString(itemLines(order.Items))
	b.WriteString("\n\n*Payment Details:*\n")
	fmt.Fprintf(&b, "Total Amount: ₹%s\n", formatINR(order.Total))
	if order.PaymentOption == model.PaymentCOD {
		remaining := order.Total - model.CODAdvanceAmount
		fmt.Fprintf(&b, "Initial Payment Received: ₹%s\n", formatINR(model.CODAdvanceAmount))
		fmt.Fprintf(&b, "Remaining Amount (Pay on Delivery): ₹%s\n\n", formatINR(remaining))
	} else {
		fmt.Fprintf(&b, "Full Payment Received: ₹%s\n\n", formatINR(order.Total))
	}
	b.WriteString("*Order Tracking:*\n")
	fmt.Fprintf(&b, "You can track your order status at: %s\n\n", c.trackingURL(order))
	b.WriteString("Our team will update you on the order progress.\n\n")
	b.WriteString("Thank you for shopping with us!")

	return c.draft(order, TemplateOrderConfirmation, b.String())
}

// StatusUpdate composes the per-status progress message.
func (c *Composer) StatusUpdate(order *model.Order) Draft {
	var b strings.Builder
	b.WriteString("*Order Status Update*\n\n")
	fmt.Fprintf(&b, "Order ID: #%s\n", shortOrderID(order))
	fmt.Fprintf(&b, "Customer: %s\n\n", order.CustomerName)
	fmt.Fprintf(&b, "*Status: %s*\n", statusHeadline[order.Status])
	fmt.Fprintf(&b, "%s\n\n", statusDescription[order.Status])
	b.WriteString("*Order Tracking:*\n")
	fmt.Fprintf(&b, "You can track your order status at: %s\n\n", c.trackingURL(order))
	b.WriteString("Thank you for shopping with us!")

	return c.draft(order, TemplateStatusUpdate, b.String())
}

func (c *Composer) draft(order *model.Order, tmpl Template, text string) Draft {
	recipient := NormalizePhone(order.CustomerPhone)
	return Draft{
		Recipient: recipient,
		Template:  tmpl,
		Text:      text,
		URL:       fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", recipient, url.QueryEscape(text)),
	}
}

func (c *Composer) trackingURL(order *model.Order) string {
	return fmt.Sprintf("%s/orders/%s", c.baseURL, order.ID)
}

// NormalizePhone strips non-digit characters and prefixes the Indian country
// code.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "91" + digits.String()
}

func shortOrderID(order *model.Order) string {
	id := order.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}

func itemLines(items []model.OrderItem) string {
	lines := make([]string, len(items))
	for i, item := range items {
		colour := ""
		if item.Color.Name != "" {
			colour = fmt.Sprintf(" (%s)", item.Color.Name)
		}
		lines[i] = fmt.Sprintf("%s%s - Qty: %d - ₹%s",
			item.Name, colour, item.Quantity, formatINR(item.Price*item.Quantity))
	}
	return strings.Join(lines, "\n")
}

// formatINR renders an amount with Indian digit grouping (12,34,567).
func formatINR(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(append(groups, tail), ",")
	}
	if neg {
		s = "-" + s
	}
	return s
}
