package purchase

import (
	"net/http"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func buyerFrom(c *gin.Context) (Buyer, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		return Buyer{}, false
	}
	phone, _ := auth.GetPhone(c)
	return Buyer{ID: id, Phone: phone}, true
}

// Buy godoc
// @Summary      Buy a plan from the wallet
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        request  body      BuyRequest  true  "Plan to buy"
// @Success      200      {object}  BuyResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      402      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /api/purchases/buy [post]
func (h *Handler) Buy(c *gin.Context) {
	buyer, ok := buyerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Buy(c.Request.Context(), buyer, req.PlanID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateOrder godoc
// @Summary      Open a gateway order
// @Description  Plan order when planId is set, wallet recharge order for amount otherwise.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Plan id or recharge amount in rupees"
// @Success      200      {object}  OrderResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      503      {object}  api.ErrorResponse
// @Router       /api/purchases/create-order [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	buyer, ok := buyerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), buyer, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify godoc
// @Summary      Verify a gateway payment
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyRequest  true  "Gateway callback fields"
// @Success      200      {object}  VerifyResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /api/purchases/verify [post]
func (h *Handler) Verify(c *gin.Context) {
	buyer, ok := buyerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Verify(c.Request.Context(), buyer, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMine godoc
// @Summary      My purchases
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  Purchase
// @Router       /api/purchases/my [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	purchases, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// ListInstances godoc
// @Summary      My plans
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  plan.Instance
// @Router       /api/purchases/plans [get]
func (h *Handler) ListInstances(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	instances, err := h.service.ListInstances(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instances)
}

// AdminList godoc
// @Summary      Latest purchases (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  api.ListResponse[Purchase]
// @Router       /api/admin/purchases [get]
func (h *Handler) AdminList(c *gin.Context) {
	purchases, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ListResponse[Purchase]{List: purchases})
}
