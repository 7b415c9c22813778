package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CookieOptions struct {
	Domain string
	Secure bool
}

// SetSessionCookie sets the httpOnly session cookie. Secure deployments are
// cross-site, so they need SameSite=None; local development uses Lax.
func SetSessionCookie(c *gin.Context, token string, opts CookieOptions) {
	if opts.Secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(SessionCookie, token, int(SessionTokenTTL.Seconds()), "/", opts.Domain, opts.Secure, true)
}

func ClearSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetCookie(SessionCookie, "", -1, "/", opts.Domain, opts.Secure, true)
}
