package purchase

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/plan"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Buy(ctx context.Context, b Buyer, planID string) (*BuyResponse, error) {
	args := m.Called(ctx, b, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BuyResponse), args.Error(1)
}

func (m *MockService) CreateOrder(ctx context.Context, b Buyer, req CreateOrderRequest) (*OrderResponse, error) {
	args := m.Called(ctx, b, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*OrderResponse), args.Error(1)
}

func (m *MockService) Verify(ctx context.Context, b Buyer, req VerifyRequest) (*VerifyResponse, error) {
	args := m.Called(ctx, b, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VerifyResponse), args.Error(1)
}

func (m *MockService) ListMine(ctx context.Context, userID int) ([]Purchase, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Purchase), args.Error(1)
}

func (m *MockService) ListInstances(ctx context.Context, userID int) ([]plan.Instance, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]plan.Instance), args.Error(1)
}

func (m *MockService) ListAll(ctx context.Context) ([]Purchase, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Purchase), args.Error(1)
}

func newPurchaseRouter(svc Service, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if authenticated {
			c.Set("user_phone", "9876543210")
			c.Set("user_id", 1)
		}
		c.Next()
	})
	router.POST("/api/purchases/buy", h.Buy)
	router.POST("/api/purchases/create-order", h.CreateOrder)
	router.POST("/api/purchases/verify", h.Verify)
	router.GET("/api/purchases/my", h.ListMine)
	router.GET("/api/purchases/plans", h.ListInstances)
	router.GET("/api/admin/purchases", h.AdminList)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Buy(t *testing.T) {
	svc := new(MockService)
	svc.On("Buy", mock.Anything, Buyer{ID: 1, Phone: "9876543210"}, "p1").
		Return(&BuyResponse{Message: "Plan purchased", WalletPaise: 8000}, nil)

	w := postJSON(newPurchaseRouter(svc, true), "/api/purchases/buy", `{"planId":"p1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"wallet_paise":8000`)
}

func TestHandler_Buy_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"insufficient funds", api.ErrInsufficientFunds, http.StatusPaymentRequired},
		{"unknown plan", plan.ErrPlanNotFound, http.StatusNotFound},
		{"timer pending", api.ErrValidation, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Buy", mock.Anything, mock.Anything, "p1").Return(nil, tt.err)

			w := postJSON(newPurchaseRouter(svc, true), "/api/purchases/buy", `{"planId":"p1"}`)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_Buy_Unauthenticated(t *testing.T) {
	svc := new(MockService)
	w := postJSON(newPurchaseRouter(svc, false), "/api/purchases/buy", `{"planId":"p1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateOrder_RechargeAmount(t *testing.T) {
	svc := new(MockService)
	svc.On("CreateOrder", mock.Anything, mock.Anything, mock.MatchedBy(func(req CreateOrderRequest) bool {
		return req.Amount.Valid && req.Amount.Decimal.String() == "500"
	})).Return(&OrderResponse{Key: "k", Amount: 50000, OrderID: "order_1", PurchaseID: 2}, nil)

	w := postJSON(newPurchaseRouter(svc, true), "/api/purchases/create-order", `{"amount":500}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order_1", resp.OrderID)
}

func TestHandler_CreateOrder_GatewayDown(t *testing.T) {
	svc := new(MockService)
	svc.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return(nil, api.ErrGatewayUnavailable)

	w := postJSON(newPurchaseRouter(svc, true), "/api/purchases/create-order", `{"planId":"p1"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_Verify(t *testing.T) {
	svc := new(MockService)
	svc.On("Verify", mock.Anything, mock.Anything, VerifyRequest{PaymentID: "pay_1", OrderID: "order_1", Signature: "sig"}).
		Return(nil, ErrVerificationFailed)

	w := postJSON(newPurchaseRouter(svc, true), "/api/purchases/verify",
		`{"razorpay_payment_id":"pay_1","razorpay_order_id":"order_1","razorpay_signature":"sig"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "payment verification failed")
}

func TestHandler_Listings(t *testing.T) {
	svc := new(MockService)
	svc.On("ListMine", mock.Anything, 1).Return([]Purchase{{ID: 1}}, nil)
	svc.On("ListInstances", mock.Anything, 1).Return([]plan.Instance{{ID: 9}}, nil)
	svc.On("ListAll", mock.Anything).Return([]Purchase{{ID: 1}, {ID: 2}}, nil)
	router := newPurchaseRouter(svc, true)

	for _, path := range []string{"/api/purchases/my", "/api/purchases/plans", "/api/admin/purchases"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	svc.AssertExpectations(t)
}
