package withdrawal

import (
	"net/http"
	"strconv"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Request godoc
// @Summary      Request a withdrawal
// @Tags         withdraws
// @Accept       json
// @Produce      json
// @Param        request  body      Request  true  "Amount in rupees and withdrawal password"
// @Success      200      {object}  RequestResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      402      {object}  api.ErrorResponse
// @Router       /api/withdraws/request [post]
func (h *Handler) Request(c *gin.Context) {
	u, ok := user.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	acct := Account{ID: u.ID, Phone: u.Phone, WithdrawPasswordHash: u.WithdrawPasswordHash}
	resp, err := h.service.Request(c.Request.Context(), acct, req.Amount, req.Password)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMine godoc
// @Summary      My withdrawals
// @Tags         withdraws
// @Produce      json
// @Success      200  {object}  api.ListResponse[Withdrawal]
// @Router       /api/withdraws/my [get]
func (h *Handler) ListMine(c *gin.Context) {
	u, ok := user.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	list, err := h.service.ListMine(c.Request.Context(), u.ID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ListResponse[Withdrawal]{List: list})
}

// AdminList godoc
// @Summary      Latest withdrawals
// @Tags         admin
// @Produce      json
// @Security     AdminPassword
// @Success      200  {object}  api.ListResponse[Withdrawal]
// @Router       /api/admin/withdraws [get]
func (h *Handler) AdminList(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ListResponse[Withdrawal]{List: list})
}

// AdminProcess godoc
// @Summary      Accept or decline a withdrawal
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     AdminPassword
// @Param        id       path      int             true  "Withdrawal ID"
// @Param        request  body      ProcessRequest  true  "accept or decline"
// @Success      200      {object}  Withdrawal
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /api/admin/withdraws/{id}/process [post]
func (h *Handler) AdminProcess(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid withdrawal id"})
		return
	}

	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	updated, err := h.service.Process(c.Request.Context(), id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
