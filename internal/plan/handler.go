package plan

import (
	"net/http"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/money"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// ListPlans godoc
// @Summary      List plans
// @Description  Catalog in creation order with each plan's activation time
// @Tags         plans
// @Produce      json
// @Success      200  {array}  View
// @Router       /api/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

// CreatePlan godoc
// @Summary      Create plan (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePlanRequest  true  "Plan terms in rupees"
// @Success      201      {object}  Plan
// @Failure      400      {object}  api.ErrorResponse
// @Router       /api/admin/plans [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	price, err := money.PositivePaise(req.Price)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	daily, err := money.PositivePaise(req.Daily)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	p, err := h.catalog.Create(c.Request.Context(), Terms{
		Name:       req.Name,
		PricePaise: price,
		DailyPaise: daily,
		Days:       req.Days,
		Image:      req.Image,
		Type:       req.Type,
		TimerHours: req.TimerHours,
		Diamond:    req.Diamond,
	})
	if err != nil {
		api.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}
