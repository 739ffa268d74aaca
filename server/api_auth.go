package storefrontserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	usersports "github.com/nexashop/storefront/internal/domains/users/ports"
)

// AuthAPI wires HTTP transport with the accounts service.
type AuthAPI struct {
	users      usersports.Service
	sessionTTL time.Duration
}

// NewAuthAPI creates an AuthAPI backed by the provided service.
func NewAuthAPI(users usersports.Service, sessionTTL time.Duration) AuthAPI {
	return AuthAPI{users: users, sessionTTL: sessionTTL}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// Post /register
// Create an account and open a session.
func (api *AuthAPI) Register(c *gin.Context) {
	var payload registerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := api.users.Register(c.Request.Context(), payload.Email, payload.Password, payload.Name); err != nil {
		respondUsersError(c, err)
		return
	}
	session, user, err := api.users.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondUsersError(c, err)
		return
	}
	setSessionCookie(c, session.Token, int(api.sessionTTL.Seconds()))
	c.JSON(http.StatusCreated, toUserView(user))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Post /login and /admin/login
// Authenticate and set the session cookie.
func (api *AuthAPI) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	session, user, err := api.users.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondUsersError(c, err)
		return
	}
	setSessionCookie(c, session.Token, int(api.sessionTTL.Seconds()))
	c.JSON(http.StatusOK, toUserView(user))
}

// Post /logout
// End the session and drop the cookie.
func (api *AuthAPI) Logout(c *gin.Context) {
	if err := api.users.Logout(c.Request.Context(), sessionToken(c)); err != nil {
		respondUsersError(c, err)
		return
	}
	clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

// Post /password-reset
// Issue a reset token. The response never reveals whether the email exists.
func (api *AuthAPI) RequestPasswordReset(c *gin.Context) {
	var payload passwordResetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := api.users.RequestPasswordReset(c.Request.Context(), payload.Email); err != nil {
		respondUsersError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "reset requested"})
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Post /password-reset/confirm
// Exchange a reset token for a new password.
func (api *AuthAPI) ResetPassword(c *gin.Context) {
	var payload resetPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.users.ResetPassword(c.Request.Context(), payload.Token, payload.Password); err != nil {
		respondUsersError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

// Get /login
func (api *AuthAPI) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login", "redirect": c.Query("redirect")})
}

// Get /register
func (api *AuthAPI) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "register"})
}

// Get /admin/login
func (api *AuthAPI) AdminLoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "admin-login", "redirect": c.Query("redirect")})
}
