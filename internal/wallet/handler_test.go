package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetBalance(ctx context.Context, userID int) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetTransactions(ctx context.Context, userID int, limit, offset int) ([]Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Transaction), args.Error(1)
}

func newRouter(h *Handler, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID > 0 {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	router.GET("/api/wallet", h.GetBalance)
	router.GET("/api/wallet/transactions", h.ListTransactions)
	return router
}

func TestHandler_GetBalance(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBalance", mock.Anything, 7).Return(int64(35000), nil)

	w := httptest.NewRecorder()
	newRouter(NewHandler(repo), 7).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wallet", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(35000), body.WalletPaise)
	assert.Equal(t, "350.00", body.Wallet)
	repo.AssertExpectations(t)
}

func TestHandler_GetBalance_Unauthenticated(t *testing.T) {
	repo := new(MockRepository)

	w := httptest.NewRecorder()
	newRouter(NewHandler(repo), 0).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wallet", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	repo.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
}

func TestHandler_ListTransactions(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetTransactions", mock.Anything, 7, 10, 20).Return([]Transaction{{ID: 1, Kind: KindPayout}}, nil)

	w := httptest.NewRecorder()
	newRouter(NewHandler(repo), 7).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wallet/transactions?limit=10&offset=20", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"payout"`)
	repo.AssertExpectations(t)
}
