package storefrontserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	ordersports "github.com/nexashop/storefront/internal/domains/orders/ports"
	usersdomain "github.com/nexashop/storefront/internal/domains/users/domain"
	usersports "github.com/nexashop/storefront/internal/domains/users/ports"
	"github.com/nexashop/storefront/internal/shared/problem"
)

// AccountAPI wires HTTP transport with the accounts and orders services.
type AccountAPI struct {
	users  usersports.Service
	orders ordersports.Service
}

// NewAccountAPI creates an AccountAPI backed by the provided services.
func NewAccountAPI(users usersports.Service, orders ordersports.Service) AccountAPI {
	return AccountAPI{users: users, orders: orders}
}

type userView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

func toUserView(user *usersdomain.User) userView {
	return userView{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Admin: user.IsAdmin(),
	}
}

// Get /account
// Current profile plus the customer's order history.
func (api *AccountAPI) GetAccount(c *gin.Context) {
	user, err := api.users.CurrentUser(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondUsersError(c, err)
		return
	}
	orders, err := api.orders.ListByEmail(c.Request.Context(), user.Email)
	if err != nil {
		respondOrdersError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":   toUserView(user),
		"orders": toOrderViews(orders),
	})
}

// Get /account/orders/:orderId
// One order, visible only to its owner or an admin.
func (api *AccountAPI) GetOrder(c *gin.Context) {
	user, err := api.users.CurrentUser(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondUsersError(c, err)
		return
	}
	order, err := api.orders.GetByID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondOrdersError(c, err)
		return
	}
	if !strings.EqualFold(order.UserEmail, user.Email) && !api.users.IsAdmin(c.Request.Context(), sessionToken(c)) {
		respondProblem(c, problem.Forbidden.WithDetail("order belongs to another account"))
		return
	}
	c.JSON(http.StatusOK, toOrderView(order))
}
