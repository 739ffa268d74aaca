package storefrontserver

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Cookie names shared by the transport and the route guard.
const (
	VisitorCookie = "sf_visitor"
	SessionCookie = "sf_session"
)

const visitorCookieMaxAge = 365 * 24 * 60 * 60

// visitorID returns the visitor identity from the request, minting a fresh
// cookie for first-time visitors so carts survive reloads.
func visitorID(c *gin.Context) string {
	if id, err := c.Cookie(VisitorCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(VisitorCookie, id, visitorCookieMaxAge, "/", "", false, true)
	return id
}

// sessionToken returns the auth token from the session cookie, empty when absent.
func sessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
