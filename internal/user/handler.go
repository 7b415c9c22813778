package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/auth"
	"github.com/Bhishaj9/redbull-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	cookies auth.CookieOptions
}

func NewHandler(service Service, cookies auth.CookieOptions) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

// Register godoc
// @Summary      Register new user
// @Description  Creates an account, credits the signup bonus and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Phone, password and optional invite code"
// @Success      200      {object}  AuthResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	u, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	auth.SetSessionCookie(c, token, h.cookies)
	logger.Info("user registered", "user_id", u.ID)

	c.JSON(http.StatusOK, AuthResponse{Message: "Registered", User: u, Token: token})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  AuthResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	u, token, err := h.service.Login(c.Request.Context(), req)
	if errors.Is(err, ErrBlocked) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "account is blocked"})
		return
	}
	if err != nil {
		api.RespondError(c, err)
		return
	}

	auth.SetSessionCookie(c, token, h.cookies)
	c.JSON(http.StatusOK, AuthResponse{Message: "Logged in", User: u, Token: token})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Router       /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.cookies)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  MeResponse
// @Failure      401  {object}  api.ErrorResponse
// @Router       /api/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	u, ok := Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}
	c.JSON(http.StatusOK, MeResponse{User: u})
}

// Team godoc
// @Summary      Referral team
// @Tags         auth
// @Produce      json
// @Success      200  {object}  TeamResponse
// @Router       /api/auth/team [get]
func (h *Handler) Team(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	team, err := h.service.Team(c.Request.Context(), userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// SetWithdrawPassword godoc
// @Summary      Set withdrawal password
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      WithdrawPasswordRequest  true  "New withdrawal password"
// @Success      200      {object}  api.MessageResponse
// @Router       /api/account/withdraw-password [post]
func (h *Handler) SetWithdrawPassword(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req WithdrawPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	if err := h.service.SetWithdrawPassword(c.Request.Context(), userID, req.Password); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Withdrawal password updated"})
}

// UpdateBank godoc
// @Summary      Update bank details
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      BankDetails  true  "Payout bank account"
// @Success      200      {object}  api.MessageResponse
// @Router       /api/account/bank [put]
func (h *Handler) UpdateBank(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req BankDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	if err := h.service.UpdateBank(c.Request.Context(), userID, req); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Bank details updated"})
}

// AdminList godoc
// @Summary      List users (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  api.ListResponse[User]
// @Router       /api/admin/users [get]
func (h *Handler) AdminList(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.ListResponse[User]{List: users})
}

// AdminToggleBlock godoc
// @Summary      Block or unblock a user (admin)
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  BlockResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/admin/users/{id}/block [post]
func (h *Handler) AdminToggleBlock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user id"})
		return
	}

	blocked, err := h.service.ToggleBlock(c.Request.Context(), id)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	msg := "User unblocked"
	if blocked {
		msg = "User blocked"
	}
	c.JSON(http.StatusOK, BlockResponse{Message: msg, Blocked: blocked})
}

// AdminDelete godoc
// @Summary      Delete a user (admin)
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  api.MessageResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *Handler) AdminDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted"})
}
