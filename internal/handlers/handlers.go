package handlers

import (
	"net/http"
	"time"

	_ "github.com/atompoint/storefront/docs"
	adminhandlers "github.com/atompoint/storefront/internal/handlers/admin"
	authhandlers "github.com/atompoint/storefront/internal/handlers/auth"
	ordershandlers "github.com/atompoint/storefront/internal/handlers/orders"
	producthandlers "github.com/atompoint/storefront/internal/handlers/products"
	userhandlers "github.com/atompoint/storefront/internal/handlers/users"
	"github.com/atompoint/storefront/internal/service"
	"github.com/atompoint/storefront/pkg/auth"
	"github.com/atompoint/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	ClearNotifications(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	GetProducts(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateCreditOrder(w http.ResponseWriter, r *http.Request)
	CreateProductOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetUsers(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	DecideOrder(w http.ResponseWriter, r *http.Request)
	BanUser(w http.ResponseWriter, r *http.Request)
	AdjustCredits(w http.ResponseWriter, r *http.Request)
	PurgeUser(w http.ResponseWriter, r *http.Request)
	Broadcast(w http.ResponseWriter, r *http.Request)
	UpsertPaymentAccount(w http.ResponseWriter, r *http.Request)
	UpsertSetting(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	UserHandler    UserHandler
	ProductHandler ProductHandler
	OrderHandler   OrderHandler
	AdminHandler   AdminHandler

	resolver auth.PrincipalResolver
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		UserHandler:    userhandlers.New(s.UserService),
		ProductHandler: producthandlers.New(s.ProductService),
		OrderHandler:   ordershandlers.New(s.OrderService),
		AdminHandler:   adminhandlers.New(s.AdminUserService, s.AdminOrderService),
		resolver:       s.AuthService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthCheck)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		// Payment details and contact info are shown on the top-up screen
		// before login.
		r.Get("/users/settings", h.UserHandler.GetSettings)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.resolver))

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", h.UserHandler.GetProfile)
				r.Post("/clear-notifications", h.UserHandler.ClearNotifications)
			})
			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.ProductHandler.GetProducts)
				r.Get("/{id}", h.ProductHandler.GetProduct)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireAdmin)
					r.Post("/", h.ProductHandler.CreateProduct)
					r.Put("/{id}", h.ProductHandler.UpdateProduct)
					r.Delete("/{id}", h.ProductHandler.DeleteProduct)
				})
			})
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrders)
				r.Post("/credit", h.OrderHandler.CreateCreditOrder)
				r.Post("/product", h.OrderHandler.CreateProductOrder)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Get("/users", h.AdminHandler.GetUsers)
				r.Put("/users/{id}/ban", h.AdminHandler.BanUser)
				r.Put("/users/{id}/credits", h.AdminHandler.AdjustCredits)
				r.Delete("/users/{id}", h.AdminHandler.PurgeUser)
				r.Get("/orders", h.AdminHandler.GetOrders)
				r.Put("/orders/{id}", h.AdminHandler.DecideOrder)
				r.Post("/broadcast", h.AdminHandler.Broadcast)
				r.Put("/payment-accounts/{provider}", h.AdminHandler.UpsertPaymentAccount)
				r.Put("/settings/{key}", h.AdminHandler.UpsertSetting)
			})
		})
	})

	return r
}

// healthCheck godoc
//
//	@Summary	Service liveness probe
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/api/health [get]
func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
