package service

import (
	"github.com/atompoint/storefront/internal/handlers/admin"
	"github.com/atompoint/storefront/internal/handlers/auth"
	"github.com/atompoint/storefront/internal/handlers/orders"
	"github.com/atompoint/storefront/internal/handlers/products"
	"github.com/atompoint/storefront/internal/handlers/users"

	pkgauth "github.com/atompoint/storefront/pkg/auth"

	"github.com/atompoint/storefront/internal/repo"
	"github.com/atompoint/storefront/internal/service/authservice"
	"github.com/atompoint/storefront/internal/service/orderservice"
	"github.com/atompoint/storefront/internal/service/productservice"
	"github.com/atompoint/storefront/internal/service/userservice"
)

type Services struct {
	AuthService    auth.Service
	UserService    users.Service
	ProductService products.Service
	OrderService   orders.Service

	// The admin surface reuses the same service instances through its own
	// narrower views.
	AdminUserService  admin.UserService
	AdminOrderService admin.OrderService
}

func New(r *repo.Repositories) *Services {
	authService := authservice.New(r.Users, &pkgauth.HashService{}, &pkgauth.JWTService{})
	userService := userservice.New(r.Users, r.Orders, r.Settings, r.TX)
	productService := productservice.New(r.Products)
	orderService := orderservice.New(r.Orders, r.Users, r.Products, r.TX)

	return &Services{
		AuthService:       authService,
		UserService:       userService,
		ProductService:    productService,
		OrderService:      orderService,
		AdminUserService:  userService,
		AdminOrderService: orderService,
	}
}
