package http

import (
	"net/http"

	"eats/internal/core/domain/model/account"

	"github.com/labstack/echo/v4"
)

// route binds a method and path to a handler together with the roles allowed
// to call it. An empty role list marks a public route; RoleAny admits every
// authenticated account.
type route struct {
	method  string
	path    string
	roles   []account.Role
	handler echo.HandlerFunc
}

// routes is the static access table of the API. Authorization is decided
// here, before any handler runs, from this table and nothing else.
func (s *Server) routes() []route {
	return []route{
		{http.MethodPost, "/api/v1/accounts", nil, s.CreateAccount},
		{http.MethodPost, "/api/v1/accounts/login", nil, s.Login},
		{http.MethodPost, "/api/v1/accounts/verify", nil, s.VerifyEmail},
		{http.MethodGet, "/api/v1/accounts/me", []account.Role{account.RoleAny}, s.GetProfile},
		{http.MethodPut, "/api/v1/accounts/me", []account.Role{account.RoleAny}, s.EditProfile},

		{http.MethodPost, "/api/v1/restaurants", []account.Role{account.RoleOwner}, s.CreateRestaurant},
		{http.MethodGet, "/api/v1/restaurants", nil, s.GetRestaurants},
		{http.MethodGet, "/api/v1/restaurants/search", nil, s.SearchRestaurants},
		{http.MethodGet, "/api/v1/restaurants/:id", nil, s.GetRestaurant},
		{http.MethodPut, "/api/v1/restaurants/:id", []account.Role{account.RoleOwner}, s.EditRestaurant},
		{http.MethodDelete, "/api/v1/restaurants/:id", []account.Role{account.RoleOwner}, s.DeleteRestaurant},
		{http.MethodGet, "/api/v1/categories", nil, s.GetCategories},
		{http.MethodGet, "/api/v1/categories/:slug", nil, s.GetCategory},
		{http.MethodPost, "/api/v1/dishes", []account.Role{account.RoleOwner}, s.CreateDish},
		{http.MethodPut, "/api/v1/dishes/:id", []account.Role{account.RoleOwner}, s.EditDish},
		{http.MethodDelete, "/api/v1/dishes/:id", []account.Role{account.RoleOwner}, s.DeleteDish},

		{http.MethodPost, "/api/v1/orders", []account.Role{account.RoleClient}, s.CreateOrder},
		{http.MethodGet, "/api/v1/orders", []account.Role{account.RoleAny}, s.GetOrders},
		{http.MethodGet, "/api/v1/orders/:id", []account.Role{account.RoleAny}, s.GetOrder},
		{http.MethodPut, "/api/v1/orders/:id", []account.Role{account.RoleOwner, account.RoleDelivery}, s.EditOrder},
		{http.MethodPost, "/api/v1/orders/:id/take", []account.Role{account.RoleDelivery}, s.TakeOrder},

		{http.MethodPost, "/api/v1/payments", []account.Role{account.RoleOwner}, s.CreatePayment},
		{http.MethodGet, "/api/v1/payments", []account.Role{account.RoleOwner}, s.GetPayments},

		{http.MethodGet, "/api/v1/stream", []account.Role{account.RoleAny}, s.Stream},
	}
}

// Register wires all routes into the echo instance, each behind the
// authentication middleware and its role gate.
func (s *Server) Register(e *echo.Echo, auth AuthMiddleware) {
	for _, r := range s.routes() {
		e.Add(r.method, r.path, s.requireRoles(r.roles, r.handler), auth.Resolve)
	}
}

// requireRoles wraps a handler with the role gate for its route.
func (s *Server) requireRoles(roles []account.Role, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.accessPolicy.Admit(roles, callerFrom(c)) {
			return respondError(c, http.StatusUnauthorized, "authentication required")
		}
		return next(c)
	}
}
