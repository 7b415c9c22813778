package payout

import (
	"net/http"

	"github.com/Bhishaj9/redbull-backend/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	runner Runner
}

func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner}
}

// RunNow godoc
// @Summary      Run daily payouts now
// @Tags         admin
// @Produce      json
// @Security     AdminPassword
// @Success      200  {object}  Report
// @Failure      500  {object}  api.ErrorResponse
// @Router       /api/admin/payouts [post]
func (h *Handler) RunNow(c *gin.Context) {
	report, err := h.runner.Run(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
