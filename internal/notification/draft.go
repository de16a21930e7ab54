package notification

// Template identifies which customer message a draft was composed from.
type Template string

const (
	TemplatePaymentRequest    Template = "payment_request"
	TemplateOrderConfirmation Template = "order_confirmation"
	TemplateStatusUpdate      Template = "status_update"
)

// ParseTemplate converts a wire value into a Template.
func ParseTemplate(s string) (Template, bool) {
	switch Template(s) {
	case TemplatePaymentRequest, TemplateOrderConfirmation, TemplateStatusUpdate:
		return Template(s), true
	}
	return "", false
}

// Draft is a composed, not-yet-sent customer notification. Composition is
// deliberately decoupled from dispatch: state transitions never send
// anything, an admin reviews the draft and triggers delivery out-of-band.
type Draft struct {
	Recipient string   `json:"recipient"`
	Template  Template `json:"template"`
	Text      string   `json:"text"`
	URL       string   `json:"url"`
}
