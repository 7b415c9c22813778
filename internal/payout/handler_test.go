package payout

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_RunNow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the report", func(t *testing.T) {
		router := gin.New()
		router.POST("/api/admin/payouts", NewHandler(&countingRunner{}).RunNow)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/payouts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var report Report
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	})

	t.Run("run failure is a 500", func(t *testing.T) {
		router := gin.New()
		router.POST("/api/admin/payouts", NewHandler(&countingRunner{err: errors.New("db down")}).RunNow)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/payouts", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
