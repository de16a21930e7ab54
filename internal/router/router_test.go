package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chronokart/internal/handler"
	"chronokart/internal/model"
	"chronokart/internal/notification"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// stubProductService returns fixed data for routing tests.
type stubProductService struct{}

func (stubProductService) GetAll(context.Context, int, int) ([]model.Product, error) {
	return []model.Product{}, nil
}
func (stubProductService) GetByID(context.Context, string) (*model.Product, error) {
	return &model.Product{ID: "W001"}, nil
}
func (stubProductService) Create(context.Context, *model.Product) error { return nil }
func (stubProductService) Update(context.Context, *model.Product) error { return nil }
func (stubProductService) Delete(context.Context, string) error         { return nil }

type stubOrderService struct{}

func (stubOrderService) Create(context.Context, *model.OrderRequest) (*model.Order, error) {
	return &model.Order{ID: uuid.New()}, nil
}
func (stubOrderService) GetByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	return &model.Order{ID: id}, nil
}
func (stubOrderService) List(context.Context) ([]model.Order, error) { return []model.Order{}, nil }
func (stubOrderService) UpdateStatus(_ context.Context, id uuid.UUID, next model.Status) (*model.Order, error) {
	return &model.Order{ID: id, Status: next}, nil
}
func (stubOrderService) VerifyPayment(_ context.Context, id uuid.UUID, _, _ string) (*model.Order, error) {
	return &model.Order{ID: id, PaymentStatus: model.PaymentStatusVerified}, nil
}
func (stubOrderService) NotificationDraft(context.Context, uuid.UUID, notification.Template) (*notification.Draft, error) {
	return &notification.Draft{Template: notification.TemplateStatusUpdate}, nil
}

type stubContactService struct{}

func (stubContactService) Submit(context.Context, *model.ContactRequest) (*model.ContactMessage, error) {
	return &model.ContactMessage{ID: uuid.New()}, nil
}
func (stubContactService) List(context.Context) ([]model.ContactMessage, error) {
	return []model.ContactMessage{}, nil
}

func newTestRouter() http.Handler {
	logger := zerolog.Nop()
	return New(
		handler.NewProductHandler(stubProductService{}, logger),
		handler.NewOrderHandler(stubOrderService{}, logger),
		handler.NewContactHandler(stubContactService{}, logger),
		"admin-secret-key",
		logger,
	)
}

func TestRouter_PublicAndAdminRoutes(t *testing.T) {
	orderID := uuid.New().String()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		adminKey   string
		wantStatus int
	}{
		{"health is public", http.MethodGet, "/health", "", "", http.StatusOK},
		{"catalogue list is public", http.MethodGet, "/api/products", "", "", http.StatusOK},
		{"catalogue read is public", http.MethodGet, "/api/products/W001", "", "", http.StatusOK},
		{"product create requires admin", http.MethodPost, "/api/products", "{}", "", http.StatusUnauthorized},
		{"product create with wrong key", http.MethodPost, "/api/products", "{}", "wrong", http.StatusUnauthorized},
		{"product update requires admin", http.MethodPut, "/api/products/W001", "{}", "", http.StatusUnauthorized},
		{"product delete with key", http.MethodDelete, "/api/products/W001", "", "admin-secret-key", http.StatusNoContent},
		{"order creation is public", http.MethodPost, "/api/orders", "{}", "", http.StatusCreated},
		{"order tracking is public", http.MethodGet, "/api/orders/track/" + orderID, "", "", http.StatusOK},
		{"order list requires admin", http.MethodGet, "/api/orders", "", "", http.StatusUnauthorized},
		{"order list with key", http.MethodGet, "/api/orders", "", "admin-secret-key", http.StatusOK},
		{"status update requires admin", http.MethodPut, "/api/orders/" + orderID + "/status", `{"status":"processing"}`, "", http.StatusUnauthorized},
		{"status update with key", http.MethodPut, "/api/orders/" + orderID + "/status", `{"status":"processing"}`, "admin-secret-key", http.StatusOK},
		{"notification requires admin", http.MethodGet, "/api/orders/" + orderID + "/notification?template=status_update", "", "", http.StatusUnauthorized},
		{"payment verification with key", http.MethodPut, "/api/orders/" + orderID, `{"paymentStatus":"verified","transactionId":"TXN1"}`, "admin-secret-key", http.StatusOK},
		{"contact submit is public", http.MethodPost, "/api/contact", `{"name":"A","email":"a@b.c","message":"hi"}`, "", http.StatusCreated},
		{"contact list requires admin", http.MethodGet, "/api/contact", "", "", http.StatusUnauthorized},
		{"unknown order subroute", http.MethodPost, "/api/orders/" + orderID + "/refund", "{}", "admin-secret-key", http.StatusNotFound},
		{"method not allowed on products", http.MethodPatch, "/api/products", "", "admin-secret-key", http.StatusMethodNotAllowed},
	}

	r := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.adminKey != "" {
				req.Header.Set("x-admin-auth", tt.adminKey)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
