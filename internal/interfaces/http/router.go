package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Interiores-api/internal/application/analytics"
	"github.com/jhoicas/Interiores-api/internal/application/auth"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
	"github.com/jhoicas/Interiores-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	ReviewUC       *usecase.ReviewUseCase
	OrderUC        *usecase.OrderUseCase
	CheckoutUC     *usecase.CheckoutUseCase
	ConsultationUC *usecase.ConsultationUseCase
	UserUC         *usecase.UserUseCase
	AddressUC      *usecase.AddressUseCase
	DesignIdeaUC   *usecase.DesignIdeaUseCase
	PortfolioUC    *usecase.PortfolioUseCase
	CalculatorUC   *usecase.CalculatorUseCase
	UploadUC       *usecase.UploadUseCase
	DashboardUC    *analytics.DashboardUseCase

	Cookie       CookieOptions
	LoginLimiter RateLimiter // nil = sin límite
}

// Router registra las rutas de la API. Los middlewares de sesión y rol se aplican por ruta.
func Router(app *fiber.App, deps RouterDeps) {
	authed := AuthMiddleware(deps.AuthUC, deps.Cookie.Name)
	optional := OptionalAuth(deps.AuthUC, deps.Cookie.Name)
	admin := RequireRole(entity.RoleAdmin)
	staff := RequireRole(entity.RoleAdmin, entity.RoleDesigner)

	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", RateLimit(deps.LoginLimiter), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authed, authHandler.Me)

	// Categorías
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", authed, admin, categoryHandler.Create)
	categories.Patch("/:id", authed, admin, categoryHandler.Update)
	categories.Delete("/:id", authed, admin, categoryHandler.Delete)

	// Productos y reseñas
	productHandler := NewProductHandler(deps.ProductUC)
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authed, admin, productHandler.Create)
	products.Patch("/:id", authed, admin, productHandler.Update)
	products.Delete("/:id", authed, admin, productHandler.Delete)
	products.Get("/:id/reviews", reviewHandler.List)
	products.Post("/:id/reviews", authed, reviewHandler.Create)
	products.Get("/:id/reviews/:reviewId", reviewHandler.GetByID)
	products.Patch("/:id/reviews/:reviewId", authed, reviewHandler.Update)
	products.Delete("/:id/reviews/:reviewId", authed, reviewHandler.Delete)

	// Pedidos y checkout
	orderHandler := NewOrderHandler(deps.OrderUC, deps.CheckoutUC)
	orders := api.Group("/orders", authed)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.Update)
	orders.Delete("/:id", admin, orderHandler.Delete)
	orders.Get("/:id/receipt", orderHandler.Receipt)
	api.Post("/checkout", authed, orderHandler.Checkout)

	// Asesorías ("availability" antes de ":id")
	consultationHandler := NewConsultationHandler(deps.ConsultationUC)
	consultations := api.Group("/consultations", authed)
	consultations.Get("/availability", consultationHandler.Availability)
	consultations.Get("/", consultationHandler.List)
	consultations.Post("/", consultationHandler.Create)
	consultations.Get("/:id", consultationHandler.GetByID)
	consultations.Patch("/:id", consultationHandler.Update)
	consultations.Delete("/:id", consultationHandler.Delete)

	// Usuarios y direcciones
	userHandler := NewUserHandler(deps.UserUC, deps.AddressUC)
	users := api.Group("/users", authed)
	users.Get("/", admin, userHandler.List)
	users.Post("/", admin, userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", admin, userHandler.Delete)
	addresses := api.Group("/addresses", authed)
	addresses.Get("/", userHandler.ListAddresses)
	addresses.Post("/", userHandler.CreateAddress)
	addresses.Delete("/:id", userHandler.DeleteAddress)

	// Contenido editorial
	contentHandler := NewContentHandler(deps.DesignIdeaUC, deps.PortfolioUC)
	ideas := api.Group("/design-ideas")
	ideas.Get("/", optional, contentHandler.ListIdeas)
	ideas.Get("/:id", optional, contentHandler.GetIdea)
	ideas.Post("/", authed, staff, contentHandler.CreateIdea)
	ideas.Patch("/:id", authed, staff, contentHandler.UpdateIdea)
	ideas.Delete("/:id", authed, staff, contentHandler.DeleteIdea)
	portfolio := api.Group("/portfolio")
	portfolio.Get("/", contentHandler.ListPortfolio)
	portfolio.Get("/:id", contentHandler.GetProject)
	portfolio.Post("/", authed, staff, contentHandler.CreateProject)
	portfolio.Patch("/:id", authed, staff, contentHandler.UpdateProject)
	portfolio.Delete("/:id", authed, staff, contentHandler.DeleteProject)

	// Calculadora, medios y panel
	calculatorHandler := NewCalculatorHandler(deps.CalculatorUC)
	api.Post("/calculator/estimate", calculatorHandler.Estimate)
	api.Get("/calculator/rates", calculatorHandler.Rates)
	api.Post("/upload", authed, staff, NewUploadHandler(deps.UploadUC).Upload)
	api.Get("/admin/dashboard", authed, admin, NewDashboardHandler(deps.DashboardUC).GetStats)
}
