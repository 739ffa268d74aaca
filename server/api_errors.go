package storefrontserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartdomain "github.com/nexashop/storefront/internal/domains/cart/domain"
	catalogapp "github.com/nexashop/storefront/internal/domains/catalog/application"
	catalogports "github.com/nexashop/storefront/internal/domains/catalog/ports"
	checkoutapp "github.com/nexashop/storefront/internal/domains/checkout/application"
	checkoutdomain "github.com/nexashop/storefront/internal/domains/checkout/domain"
	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
	ordersports "github.com/nexashop/storefront/internal/domains/orders/ports"
	usersdomain "github.com/nexashop/storefront/internal/domains/users/domain"
	usersports "github.com/nexashop/storefront/internal/domains/users/ports"
	"github.com/nexashop/storefront/internal/shared/problem"
)

// respondProblem maps a problem Detail through the shared responder.
func respondProblem(c *gin.Context, p problem.Detail) {
	problem.Respond(c, p)
}

// respondError preserves plain status call sites while returning RFC 7807 responses.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var p problem.Detail
	switch status {
	case http.StatusBadRequest:
		p = problem.BadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		p = problem.NotFound.WithDetail(err.Error())
	case http.StatusUnauthorized:
		p = problem.Unauthorized.WithDetail(err.Error())
	case http.StatusForbidden:
		p = problem.Forbidden.WithDetail(err.Error())
	case http.StatusConflict:
		p = problem.Conflict.WithDetail(err.Error())
	default:
		p = problem.Internal.WithDetail(err.Error())
	}
	respondProblem(c, p)
}

// respondCatalogError translates catalog service errors.
func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogports.ErrNotFound):
		respondProblem(c, problem.NotFound.WithDetail(err.Error()))
	case errors.Is(err, catalogapp.ErrInvalidInput):
		respondProblem(c, problem.Validation.WithDetail(err.Error()))
	default:
		respondProblem(c, problem.Internal.WithDetail(err.Error()))
	}
}

// respondCartError translates cart service errors.
func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cartdomain.ErrInvalidQuantity), errors.Is(err, cartdomain.ErrEmptyProductID):
		respondProblem(c, problem.Validation.WithDetail(err.Error()))
	default:
		respondProblem(c, problem.Internal.WithDetail(err.Error()))
	}
}

// respondCheckoutError translates checkout flow errors.
func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		respondProblem(c, problem.BadRequest.WithDetail(err.Error()))
	case errors.Is(err, checkoutdomain.ErrUnknownField):
		respondProblem(c, problem.Validation.WithDetail(err.Error()))
	case errors.Is(err, ordersdomain.ErrEmptyEmail),
		errors.Is(err, ordersdomain.ErrNoItems),
		errors.Is(err, ordersdomain.ErrInvalidQuantity):
		respondProblem(c, problem.Validation.WithDetail(err.Error()))
	default:
		respondProblem(c, problem.Internal.WithDetail(err.Error()))
	}
}

// respondOrdersError translates orders service errors.
func respondOrdersError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ordersports.ErrNotFound):
		respondProblem(c, problem.NotFound.WithDetail(err.Error()))
	case errors.Is(err, ordersdomain.ErrInvalidStatus), errors.Is(err, ordersdomain.ErrInvalidTransition):
		respondProblem(c, problem.Validation.WithDetail(err.Error()))
	default:
		respondProblem(c, problem.Internal.WithDetail(err.Error()))
	}
}

// respondUsersError translates accounts service errors.
func respondUsersError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usersports.ErrInvalidCredentials), errors.Is(err, usersports.ErrSessionNotFound):
		respondProblem(c, problem.Unauthorized.WithDetail(err.Error()))
	case errors.Is(err, usersports.ErrEmailTaken):
		respondProblem(c, problem.Conflict.WithDetail(err.Error()))
	case errors.Is(err, usersports.ErrResetTokenNotFound):
		respondProblem(c, problem.BadRequest.WithDetail(err.Error()))
	case errors.Is(err, usersdomain.ErrInvalidEmail),
		errors.Is(err, usersdomain.ErrEmptyPassword),
		errors.Is(err, usersdomain.ErrWeakPassword):
		respondProblem(c, problem.Validation.WithDetail(err.Error()))
	case errors.Is(err, usersports.ErrNotFound):
		respondProblem(c, problem.NotFound.WithDetail(err.Error()))
	default:
		respondProblem(c, problem.Internal.WithDetail(err.Error()))
	}
}
