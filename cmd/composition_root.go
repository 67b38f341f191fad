package cmd

import (
	"gorm.io/gorm"

	"ordermanagement/internal/adapters/out/auth"
	"ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     *auth.JWTTokenGenerator
	hasher     *auth.BcryptPasswordHasher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tokens, err := auth.NewJWTTokenGenerator(config.JWTSecret, config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		hasher:     auth.NewBcryptPasswordHasher(),
	}, nil
}

func (c *CompositionRoot) TokenGenerator() *auth.JWTTokenGenerator {
	return c.tokens
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerByIDQueryHandler() queries.GetCustomerByIDQueryHandler {
	return queries.NewGetCustomerByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductByIDQueryHandler() queries.GetProductByIDQueryHandler {
	return queries.NewGetProductByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserByIDQueryHandler() queries.GetUserByIDQueryHandler {
	return queries.NewGetUserByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllUsersQueryHandler() queries.GetAllUsersQueryHandler {
	return queries.NewGetAllUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
