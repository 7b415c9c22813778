package withdrawal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Request(ctx context.Context, acct Account, amount decimal.Decimal, password string) (*RequestResponse, error) {
	args := m.Called(ctx, acct, amount.String(), password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RequestResponse), args.Error(1)
}

func (m *MockService) Process(ctx context.Context, id int, req ProcessRequest) (*Withdrawal, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Withdrawal), args.Error(1)
}

func (m *MockService) ListMine(ctx context.Context, userID int) ([]Withdrawal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Withdrawal), args.Error(1)
}

func (m *MockService) ListAll(ctx context.Context) ([]Withdrawal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Withdrawal), args.Error(1)
}

func newWithdrawalRouter(svc Service, u *user.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if u != nil {
			user.SetCurrent(c, u)
		}
		c.Next()
	})
	router.POST("/api/withdraws/request", h.Request)
	router.GET("/api/withdraws/my", h.ListMine)
	router.GET("/api/admin/withdraws", h.AdminList)
	router.POST("/api/admin/withdraws/:id/process", h.AdminProcess)
	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Request(t *testing.T) {
	u := &user.User{ID: 1, Phone: "9876543210", WithdrawPasswordHash: "hash"}
	acct := Account{ID: 1, Phone: "9876543210", WithdrawPasswordHash: "hash"}

	t.Run("success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Request", mock.Anything, acct, "150", "4321").
			Return(&RequestResponse{Message: "Withdrawal requested", Withdrawal: &Withdrawal{ID: 7}, WalletPaise: 35000}, nil)

		w := doJSON(newWithdrawalRouter(svc, u), http.MethodPost, "/api/withdraws/request",
			map[string]any{"amount": 150, "withdrawPass": "4321"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp RequestResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(35000), resp.WalletPaise)
		svc.AssertExpectations(t)
	})

	t.Run("insufficient funds is 402", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Request", mock.Anything, acct, "900", "4321").Return(nil, api.ErrInsufficientFunds)

		w := doJSON(newWithdrawalRouter(svc, u), http.MethodPost, "/api/withdraws/request",
			map[string]any{"amount": 900, "withdrawPass": "4321"})

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		svc := new(MockService)

		w := doJSON(newWithdrawalRouter(svc, u), http.MethodPost, "/api/withdraws/request",
			map[string]any{"amount": 150})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Request")
	})

	t.Run("no session", func(t *testing.T) {
		w := doJSON(newWithdrawalRouter(new(MockService), nil), http.MethodPost, "/api/withdraws/request",
			map[string]any{"amount": 150, "withdrawPass": "4321"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_ListMine(t *testing.T) {
	svc := new(MockService)
	svc.On("ListMine", mock.Anything, 1).Return([]Withdrawal{{ID: 2}, {ID: 1}}, nil)

	w := doJSON(newWithdrawalRouter(svc, &user.User{ID: 1}), http.MethodGet, "/api/withdraws/my", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.ListResponse[Withdrawal]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.List, 2)
}

func TestHandler_AdminProcess(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       any
		setup      func(*MockService)
		wantStatus int
	}{
		{
			name: "decline",
			path: "/api/admin/withdraws/7/process",
			body: map[string]string{"action": "decline", "note": "bad ifsc"},
			setup: func(m *MockService) {
				m.On("Process", mock.Anything, 7, ProcessRequest{Action: "decline", Note: "bad ifsc"}).
					Return(&Withdrawal{ID: 7, Status: StatusCancelled}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "already processed",
			path: "/api/admin/withdraws/7/process",
			body: map[string]string{"action": "accept"},
			setup: func(m *MockService) {
				m.On("Process", mock.Anything, 7, ProcessRequest{Action: "accept"}).Return(nil, ErrAlreadyProcessed)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "not found",
			path: "/api/admin/withdraws/99/process",
			body: map[string]string{"action": "accept"},
			setup: func(m *MockService) {
				m.On("Process", mock.Anything, 99, ProcessRequest{Action: "accept"}).Return(nil, ErrWithdrawalNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad id",
			path:       "/api/admin/withdraws/abc/process",
			body:       map[string]string{"action": "accept"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing action",
			path:       "/api/admin/withdraws/7/process",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.setup != nil {
				tt.setup(svc)
			}

			w := doJSON(newWithdrawalRouter(svc, nil), http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
