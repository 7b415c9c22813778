package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

var ErrBlocked = fmt.Errorf("account is blocked: %w", api.ErrUnauthorized)

// RequireActiveUser resolves the verified phone to its account. Deleted
// accounts get 401 and blocked ones 403.
func RequireActiveUser(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone, ok := auth.GetPhone(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
			return
		}

		u, err := svc.GetByPhone(c.Request.Context(), phone)
		if errors.Is(err, ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "account not found"})
			return
		}
		if err != nil {
			api.RespondError(c, err)
			c.Abort()
			return
		}
		if u.Blocked {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "account is blocked"})
			return
		}

		SetCurrent(c, u)
		c.Next()
	}
}

const ctxUser = "user"

// SetCurrent stores the account and its id on the request.
func SetCurrent(c *gin.Context, u *User) {
	auth.SetUserID(c, u.ID)
	c.Set(ctxUser, u)
}

// Current returns the account loaded by RequireActiveUser.
func Current(c *gin.Context) (*User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*User)
	return u, ok
}
