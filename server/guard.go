package storefrontserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	usersports "github.com/nexashop/storefront/internal/domains/users/ports"
)

// NewGuard returns the route guard middleware. It classifies each request
// path, resolves the session from cookies, and redirects disallowed
// navigations before any handler runs. A failed role lookup reads as "not
// admin" (fails closed); guard decisions are never surfaced as errors.
func NewGuard(users usersports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		token := sessionToken(c)
		hasSession := false
		if token != "" {
			if _, err := users.CurrentUser(c.Request.Context(), token); err == nil {
				hasSession = true
			}
		}

		switch {
		case path == "/admin/login":
			if hasSession && users.IsAdmin(c.Request.Context(), token) {
				redirect(c, "/admin")
			}
		case strings.HasPrefix(path, "/admin"):
			if !hasSession {
				redirect(c, "/admin/login?redirect="+path)
				return
			}
			if !users.IsAdmin(c.Request.Context(), token) {
				redirect(c, "/")
			}
		case strings.HasPrefix(path, "/account"):
			if !hasSession {
				redirect(c, "/login?redirect="+path)
			}
		case path == "/login" || path == "/register":
			if hasSession {
				redirect(c, "/account")
			}
		}
	}
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}
