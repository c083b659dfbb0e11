// Package http exposes the platform's REST API on echo. Authorization is
// table-driven: every route declares the roles allowed to call it, and the
// gate runs before any handler code. Handlers translate between JSON and
// commands/queries and never contain business rules.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/account"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	accessPolicy services.AccessPolicy

	// Command handlers
	createAccountHandler commands.CreateAccountCommandHandler
	loginHandler         commands.LoginCommandHandler
	editProfileHandler   commands.EditProfileCommandHandler
	verifyEmailHandler   commands.VerifyEmailCommandHandler

	createRestaurantHandler commands.CreateRestaurantCommandHandler
	editRestaurantHandler   commands.EditRestaurantCommandHandler
	deleteRestaurantHandler commands.DeleteRestaurantCommandHandler
	createDishHandler       commands.CreateDishCommandHandler
	editDishHandler         commands.EditDishCommandHandler
	deleteDishHandler       commands.DeleteDishCommandHandler

	createOrderHandler commands.CreateOrderCommandHandler
	editOrderHandler   commands.EditOrderCommandHandler
	takeOrderHandler   commands.TakeOrderCommandHandler

	createPaymentHandler commands.CreatePaymentCommandHandler

	// Query handlers
	getProfileHandler        queries.GetProfileQueryHandler
	getRestaurantsHandler    queries.GetRestaurantsQueryHandler
	getRestaurantHandler     queries.GetRestaurantQueryHandler
	searchRestaurantsHandler queries.SearchRestaurantsQueryHandler
	getCategoriesHandler     queries.GetCategoriesQueryHandler
	getCategoryHandler       queries.GetCategoryQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getPaymentsHandler       queries.GetPaymentsQueryHandler

	streamer *StreamHandler
}

// Handlers bundles everything the server dispatches to.
type Handlers struct {
	CreateAccount    commands.CreateAccountCommandHandler
	Login            commands.LoginCommandHandler
	EditProfile      commands.EditProfileCommandHandler
	VerifyEmail      commands.VerifyEmailCommandHandler
	CreateRestaurant commands.CreateRestaurantCommandHandler
	EditRestaurant   commands.EditRestaurantCommandHandler
	DeleteRestaurant commands.DeleteRestaurantCommandHandler
	CreateDish       commands.CreateDishCommandHandler
	EditDish         commands.EditDishCommandHandler
	DeleteDish       commands.DeleteDishCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	EditOrder        commands.EditOrderCommandHandler
	TakeOrder        commands.TakeOrderCommandHandler
	CreatePayment    commands.CreatePaymentCommandHandler

	GetProfile        queries.GetProfileQueryHandler
	GetRestaurants    queries.GetRestaurantsQueryHandler
	GetRestaurant     queries.GetRestaurantQueryHandler
	SearchRestaurants queries.SearchRestaurantsQueryHandler
	GetCategories     queries.GetCategoriesQueryHandler
	GetCategory       queries.GetCategoryQueryHandler
	GetOrders         queries.GetOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetPayments       queries.GetPaymentsQueryHandler

	Streamer *StreamHandler
}

// NewServer creates the HTTP server from its use case handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		accessPolicy:            services.NewAccessPolicy(),
		createAccountHandler:    h.CreateAccount,
		loginHandler:            h.Login,
		editProfileHandler:      h.EditProfile,
		verifyEmailHandler:      h.VerifyEmail,
		createRestaurantHandler: h.CreateRestaurant,
		editRestaurantHandler:   h.EditRestaurant,
		deleteRestaurantHandler: h.DeleteRestaurant,
		createDishHandler:       h.CreateDish,
		editDishHandler:         h.EditDish,
		deleteDishHandler:       h.DeleteDish,
		createOrderHandler:      h.CreateOrder,
		editOrderHandler:        h.EditOrder,
		takeOrderHandler:        h.TakeOrder,
		createPaymentHandler:    h.CreatePayment,

		getProfileHandler:        h.GetProfile,
		getRestaurantsHandler:    h.GetRestaurants,
		getRestaurantHandler:     h.GetRestaurant,
		searchRestaurantsHandler: h.SearchRestaurants,
		getCategoriesHandler:     h.GetCategories,
		getCategoryHandler:       h.GetCategory,
		getOrdersHandler:         h.GetOrders,
		getOrderHandler:          h.GetOrder,
		getPaymentsHandler:       h.GetPayments,
		streamer:                 h.Streamer,
	}
}

type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func respondOK(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{OK: true, Data: data})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{OK: false, Error: message})
}

// respond maps domain errors onto HTTP statuses. Unexpected errors are
// reported as a bare 500 without leaking internals.
func respond(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(c, http.StatusBadRequest, err.Error())
	default:
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(userID, req.Email, req.Password, role)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.createAccountHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]string{"id": userID.String()})
}

// Login handles POST /api/v1/accounts/login.
func (s *Server) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	signed, err := s.loginHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return respondError(c, http.StatusUnauthorized, "invalid credentials")
		}
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, map[string]string{"token": signed})
}

// VerifyEmail handles POST /api/v1/accounts/verify.
func (s *Server) VerifyEmail(c echo.Context) error {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewVerifyEmailCommand(req.Code)
	if err != nil {
		return respond(c, err)
	}

	if err := s.verifyEmailHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// GetProfile handles GET /api/v1/accounts/me.
func (s *Server) GetProfile(c echo.Context) error {
	caller := callerFrom(c)

	query, err := queries.NewGetProfileQuery(caller.ID())
	if err != nil {
		return respond(c, err)
	}

	profile, err := s.getProfileHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, map[string]any{
		"id":       profile.ID.String(),
		"email":    profile.Email,
		"role":     profile.Role.String(),
		"verified": profile.Verified,
	})
}

// EditProfile handles PUT /api/v1/accounts/me.
func (s *Server) EditProfile(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	caller := callerFrom(c)
	cmd, err := commands.NewEditProfileCommand(caller.ID(), req.Email, req.Password)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.editProfileHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	caller := callerFrom(c)
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, caller.ID(), req.Name, req.Category)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.createRestaurantHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]string{"id": restaurantID.String()})
}

// GetRestaurants handles GET /api/v1/restaurants.
func (s *Server) GetRestaurants(c echo.Context) error {
	page, pageSize := paginationParams(c)

	query, err := queries.NewGetRestaurantsQuery(page, pageSize)
	if err != nil {
		return respond(c, err)
	}

	restaurants, err := s.getRestaurantsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respond(c, err)
	}

	resp := make([]map[string]any, 0, len(restaurants))
	for _, r := range restaurants {
		entry := map[string]any{
			"id":       r.ID.String(),
			"name":     r.Name,
			"category": r.Category,
			"promoted": r.PromotedUntil != nil,
		}
		resp = append(resp, entry)
	}

	return respondOK(c, http.StatusOK, resp)
}

// dishOptionRequest is the wire form of a dish option, shared by dish
// creation and edit.
type dishOptionRequest struct {
	Name    string `json:"name"`
	Extra   int64  `json:"extra"`
	Choices []struct {
		Name  string `json:"name"`
		Extra int64  `json:"extra"`
	} `json:"choices"`
}

// dishOptionsFromRequest converts wire options to domain options. A nil
// input stays nil so callers can tell "absent" from "empty".
func dishOptionsFromRequest(reqs []dishOptionRequest) []restaurant.DishOption {
	if reqs == nil {
		return nil
	}
	options := make([]restaurant.DishOption, 0, len(reqs))
	for _, o := range reqs {
		choices := make([]restaurant.DishChoice, 0, len(o.Choices))
		for _, ch := range o.Choices {
			choices = append(choices, restaurant.DishChoice{Name: ch.Name, Extra: ch.Extra})
		}
		options = append(options, restaurant.DishOption{Name: o.Name, Extra: o.Extra, Choices: choices})
	}
	return options
}

// CreateDish handles POST /api/v1/dishes.
func (s *Server) CreateDish(c echo.Context) error {
	var req struct {
		RestaurantID string              `json:"restaurant_id"`
		Name         string              `json:"name"`
		Description  string              `json:"description"`
		Price        int64               `json:"price"`
		Options      []dishOptionRequest `json:"options"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	options := dishOptionsFromRequest(req.Options)
	caller := callerFrom(c)
	dishID := kernel.NewUUID()
	cmd, err := commands.NewCreateDishCommand(
		dishID, restaurantID, caller.ID(), req.Name, req.Description, req.Price, options)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.createDishHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]string{"id": dishID.String()})
}

// EditRestaurant handles PUT /api/v1/restaurants/:id.
func (s *Server) EditRestaurant(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	caller := callerFrom(c)
	cmd, err := commands.NewEditRestaurantCommand(restaurantID, caller.ID(), req.Name, req.Category)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.editRestaurantHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/:id.
func (s *Server) DeleteRestaurant(c echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	caller := callerFrom(c)
	cmd, err := commands.NewDeleteRestaurantCommand(restaurantID, caller.ID())
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.deleteRestaurantHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// GetRestaurant handles GET /api/v1/restaurants/:id.
func (s *Server) GetRestaurant(c echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return respond(c, err)
	}

	rest, err := s.getRestaurantHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respond(c, err)
	}

	menu := make([]map[string]any, 0, len(rest.Menu))
	for _, d := range rest.Menu {
		menu = append(menu, map[string]any{
			"id":          d.ID.String(),
			"name":        d.Name,
			"description": d.Description,
			"price":       d.Price,
			"options":     d.Options,
		})
	}

	return respondOK(c, http.StatusOK, map[string]any{
		"id":       rest.ID.String(),
		"name":     rest.Name,
		"category": rest.Category,
		"promoted": rest.PromotedUntil != nil,
		"menu":     menu,
	})
}

// SearchRestaurants handles GET /api/v1/restaurants/search.
func (s *Server) SearchRestaurants(c echo.Context) error {
	page, pageSize := paginationParams(c)

	query, err := queries.NewSearchRestaurantsQuery(c.QueryParam("q"), page, pageSize)
	if err != nil {
		return respond(c, err)
	}

	restaurants, err := s.searchRestaurantsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respond(c, err)
	}

	resp := make([]map[string]any, 0, len(restaurants))
	for _, r := range restaurants {
		resp = append(resp, map[string]any{
			"id":       r.ID.String(),
			"name":     r.Name,
			"category": r.Category,
			"promoted": r.PromotedUntil != nil,
		})
	}

	return respondOK(c, http.StatusOK, resp)
}

// GetCategories handles GET /api/v1/categories.
func (s *Server) GetCategories(c echo.Context) error {
	query := queries.NewGetCategoriesQuery()

	categories, err := s.getCategoriesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respond(c, err)
	}

	resp := make([]map[string]any, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, map[string]any{
			"name":             cat.Name,
			"slug":             cat.Slug,
			"restaurant_count": cat.RestaurantCount,
		})
	}

	return respondOK(c, http.StatusOK, resp)
}

// GetCategory handles GET /api/v1/categories/:slug.
func (s *Server) GetCategory(c echo.Context) error {
	page, pageSize := paginationParams(c)

	query, err := queries.NewGetCategoryQuery(c.Param("slug"), page, pageSize)
	if err != nil {
		return respond(c, err)
	}

	result, err := s.getCategoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respond(c, err)
	}

	restaurants := make([]map[string]any, 0, len(result.Restaurants))
	for _, r := range result.Restaurants {
		restaurants = append(restaurants, map[string]any{
			"id":       r.ID.String(),
			"name":     r.Name,
			"category": r.Category,
			"promoted": r.PromotedUntil != nil,
		})
	}

	return respondOK(c, http.StatusOK, map[string]any{
		"category":    result.Category,
		"restaurants": restaurants,
		"total_count": result.TotalCount,
		"total_pages": result.TotalPages,
	})
}

// EditDish handles PUT /api/v1/dishes/:id.
func (s *Server) EditDish(c echo.Context) error {
	var req struct {
		Name        string              `json:"name"`
		Description string              `json:"description"`
		Price       *int64              `json:"price"`
		Options     []dishOptionRequest `json:"options"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	dishID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	caller := callerFrom(c)
	cmd, err := commands.NewEditDishCommand(
		dishID, caller.ID(), req.Name, req.Description, req.Price,
		dishOptionsFromRequest(req.Options))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.editDishHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// DeleteDish handles DELETE /api/v1/dishes/:id.
func (s *Server) DeleteDish(c echo.Context) error {
	dishID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	caller := callerFrom(c)
	cmd, err := commands.NewDeleteDishCommand(dishID, caller.ID())
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.deleteDishHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req struct {
		RestaurantID string `json:"restaurant_id"`
		Items        []struct {
			DishID  string `json:"dish_id"`
			Options []struct {
				Name   string `json:"name"`
				Choice string `json:"choice"`
			} `json:"options"`
		} `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		dishID, dishErr := kernel.UUIDFromString(it.DishID)
		if dishErr != nil {
			return respondError(c, http.StatusBadRequest, dishErr.Error())
		}

		options := make([]commands.OrderItemOption, 0, len(it.Options))
		for _, o := range it.Options {
			options = append(options, commands.OrderItemOption{Name: o.Name, Choice: o.Choice})
		}
		items = append(items, commands.OrderItemInput{DishID: dishID, Options: options})
	}

	caller := callerFrom(c)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, caller.ID(), restaurantID, items)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(*callerFrom(c), status)
	if err != nil {
		return respond(c, err)
	}

	orders, err := s.getOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respond(c, err)
	}

	resp := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, orderListEntry(o))
	}

	return respondOK(c, http.StatusOK, resp)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID, *callerFrom(c))
	if err != nil {
		return respond(c, err)
	}

	ord, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respond(c, err)
	}

	items := make([]map[string]any, 0, len(ord.Items))
	for _, item := range ord.Items {
		options := make([]map[string]string, 0, len(item.Options))
		for _, o := range item.Options {
			options = append(options, map[string]string{"name": o.Name, "choice": o.Choice})
		}
		items = append(items, map[string]any{
			"id":      item.ID.String(),
			"dish_id": item.DishID.String(),
			"options": options,
		})
	}

	entry := orderListEntry(orderResponseHead(ord))
	entry["items"] = items

	return respondOK(c, http.StatusOK, entry)
}

// EditOrder handles PUT /api/v1/orders/:id.
func (s *Server) EditOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	caller := callerFrom(c)
	cmd, err := commands.NewEditOrderCommand(orderID, caller.Role(), status)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.editOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// TakeOrder handles POST /api/v1/orders/:id/take.
func (s *Server) TakeOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	caller := callerFrom(c)
	cmd, err := commands.NewTakeOrderCommand(orderID, caller.ID())
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.takeOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusOK, nil)
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(c echo.Context) error {
	var req struct {
		TransactionID string `json:"transaction_id"`
		RestaurantID  string `json:"restaurant_id"`
	}
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	caller := callerFrom(c)
	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCreatePaymentCommand(paymentID, req.TransactionID, caller.ID(), restaurantID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if err := s.createPaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respond(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]string{"id": paymentID.String()})
}

// GetPayments handles GET /api/v1/payments.
func (s *Server) GetPayments(c echo.Context) error {
	caller := callerFrom(c)

	query, err := queries.NewGetPaymentsQuery(caller.ID())
	if err != nil {
		return respond(c, err)
	}

	payments, err := s.getPaymentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respond(c, err)
	}

	resp := make([]map[string]any, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, map[string]any{
			"id":             p.ID.String(),
			"transaction_id": p.TransactionID,
			"restaurant_id":  p.RestaurantID.String(),
			"created_at":     p.CreatedAt,
		})
	}

	return respondOK(c, http.StatusOK, resp)
}

// Stream handles GET /api/v1/stream.
func (s *Server) Stream(c echo.Context) error {
	return s.streamer.Serve(c)
}

func paginationParams(c echo.Context) (int, int) {
	page := intParam(c, "page", 1)
	pageSize := intParam(c, "page_size", 0)
	return page, pageSize
}

func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func orderListEntry(o queries.GetOrdersQueryResponse) map[string]any {
	entry := map[string]any{
		"id":            o.ID.String(),
		"customer_id":   o.CustomerID.String(),
		"restaurant_id": o.RestaurantID.String(),
		"status":        o.Status.String(),
		"total":         o.Total,
		"created_at":    o.CreatedAt,
	}
	if o.DriverID != nil {
		entry["driver_id"] = o.DriverID.String()
	}
	return entry
}

// orderResponseHead projects a single-order response onto the listing shape
// shared by both endpoints.
func orderResponseHead(o queries.GetOrderQueryResponse) queries.GetOrdersQueryResponse {
	return queries.GetOrdersQueryResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		DriverID:     o.DriverID,
		Status:       o.Status,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
	}
}
