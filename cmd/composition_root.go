package cmd

import (
	"log/slog"

	httpin "eats/internal/adapters/in/http"
	"eats/internal/adapters/out/mail"
	"eats/internal/adapters/out/natshub"
	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/token"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/services"
	"eats/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *natshub.Hub
	tokens     *token.JWTService
	mailer     *mail.LogMailer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	hub, err := natshub.NewHub(config.NatsURL, logger)
	if err != nil {
		return nil, err
	}

	tokens, err := token.NewJWTService(config.JWTSecret)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        hub,
		tokens:     tokens,
		mailer:     mail.NewLogMailer(logger),
		logger:     logger,
	}, nil
}

// Close releases outbound connections held by the composition root.
func (c *CompositionRoot) Close() {
	c.hub.Close()
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAccountCommandHandler(f, c.mailer)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.tokens)
}

func (c *CompositionRoot) CreateEditProfileCommandHandler() commands.EditProfileCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditProfileCommandHandler(f, c.mailer)
}

func (c *CompositionRoot) CreateVerifyEmailCommandHandler() commands.VerifyEmailCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyEmailCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateEditRestaurantCommandHandler() commands.EditRestaurantCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDishCommandHandler(f)
}

func (c *CompositionRoot) CreateEditDishCommandHandler() commands.EditDishCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditDishCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDishCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditOrderCommandHandler(f, services.NewOrderAccessPolicy(), c.hub)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTakeOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateClearExpiredPromotionsCommandHandler() commands.ClearExpiredPromotionsCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearExpiredPromotionsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchRestaurantsQueryHandler() queries.SearchRestaurantsQueryHandler {
	return queries.NewSearchRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoryQueryHandler() queries.GetCategoryQueryHandler {
	return queries.NewGetCategoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, services.NewOrderAccessPolicy())
}

func (c *CompositionRoot) CreateGetPaymentsQueryHandler() queries.GetPaymentsQueryHandler {
	return queries.NewGetPaymentsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the server together with the SSE streamer.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateAccount:    c.CreateCreateAccountCommandHandler(),
		Login:            c.CreateLoginCommandHandler(),
		EditProfile:      c.CreateEditProfileCommandHandler(),
		VerifyEmail:      c.CreateVerifyEmailCommandHandler(),
		CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
		EditRestaurant:   c.CreateEditRestaurantCommandHandler(),
		DeleteRestaurant: c.CreateDeleteRestaurantCommandHandler(),
		CreateDish:       c.CreateCreateDishCommandHandler(),
		EditDish:         c.CreateEditDishCommandHandler(),
		DeleteDish:       c.CreateDeleteDishCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		EditOrder:        c.CreateEditOrderCommandHandler(),
		TakeOrder:        c.CreateTakeOrderCommandHandler(),
		CreatePayment:    c.CreateCreatePaymentCommandHandler(),

		GetProfile:        c.CreateGetProfileQueryHandler(),
		GetRestaurants:    c.CreateGetRestaurantsQueryHandler(),
		GetRestaurant:     c.CreateGetRestaurantQueryHandler(),
		SearchRestaurants: c.CreateSearchRestaurantsQueryHandler(),
		GetCategories:     c.CreateGetCategoriesQueryHandler(),
		GetCategory:       c.CreateGetCategoryQueryHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetPayments:       c.CreateGetPaymentsQueryHandler(),
		Streamer:          httpin.NewStreamHandler(c.hub, c.logger),
	})
}

func (c *CompositionRoot) CreateAuthMiddleware() httpin.AuthMiddleware {
	return httpin.NewAuthMiddleware(c.tokens, c.CreateGetProfileQueryHandler())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateClearExpiredPromotionsCommandHandler(), c.logger)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
