package recharge

import (
	"net/http"
	"strconv"

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

// Submit godoc
// @Summary      Submit a manual recharge
// @Tags         recharges
// @Accept       json
// @Produce      json
// @Param        request  body      SubmitRequest  true  "Amount, UTR and method"
// @Success      201      {object}  Recharge
// @Failure      400      {object}  api.ErrorResponse
// @Router       /api/recharges [post]
func (h *Handler) Submit(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}
	phone, _ := auth.GetPhone(c)

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	created, err := h.service.Submit(c.Request.Context(), Submitter{ID: userID, Phone: phone}, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListMine godoc
// @Summary      My recharges
// @Tags         recharges
// @Produce      json
// @Success      200  {object}  api.ListResponse[Recharge]
// @Router       /api/recharges/my [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	list, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ListResponse[Recharge]{List: list})
}

// AdminList godoc
// @Summary      Latest recharges
// @Tags         admin
// @Produce      json
// @Security     AdminPassword
// @Success      200  {object}  api.ListResponse[Recharge]
// @Router       /api/admin/recharges [get]
func (h *Handler) AdminList(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ListResponse[Recharge]{List: list})
}

// AdminProcess godoc
// @Summary      Approve or decline a recharge
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     AdminPassword
// @Param        id       path      int             true  "Recharge ID"
// @Param        request  body      ProcessRequest  true  "approve or decline"
// @Success      200      {object}  Recharge
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /api/admin/recharges/{id}/process [post]
func (h *Handler) AdminProcess(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid recharge id"})
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
