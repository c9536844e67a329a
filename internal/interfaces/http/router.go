package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/jcastellanos/sweetshop-api/internal/application/auth"
	"github.com/jcastellanos/sweetshop-api/internal/application/catalog"
	"github.com/jcastellanos/sweetshop-api/internal/application/payment"
	"github.com/jcastellanos/sweetshop-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SweetUC     *catalog.SweetUseCase
	PaymentUC   *payment.PaymentUseCase
	JWTSecret   string
	ServiceName string
	Version     string
	Env         string
}

// Router registra las rutas de la API.
//
// Matriz de acceso:
//   - público:        auth, health, GET /sweets, GET /sweets/search
//   - autenticado:    purchase, payment
//   - solo ADMIN:     escrituras del catálogo, restock, upload-image, create-admin
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:  "*",
		ExposeHeaders: "Authorization,Content-Type,X-Requested-With",
		MaxAge:        3600,
	}))

	api := app.Group("/api")

	authn := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/create-first-admin", authHandler.CreateFirstAdmin)

	// Admin (protegido, solo ADMIN)
	adminGroup := api.Group("/admin", authn, adminOnly)
	adminGroup.Post("/create-admin", authHandler.CreateAdmin)

	// Health (público)
	healthHandler := NewHealthHandler(deps.ServiceName, deps.Version, deps.Env)
	health := api.Group("/health")
	health.Get("/", healthHandler.Check)
	health.Get("/ping", healthHandler.Ping)
	health.Get("/status", healthHandler.Status)

	// Sweets: lecturas públicas, escrituras solo ADMIN, compra autenticada
	sweets := api.Group("/sweets")
	sweetHandler := NewSweetHandler(deps.SweetUC)
	sweets.Get("/", sweetHandler.List)
	sweets.Get("/search", sweetHandler.Search)
	sweets.Post("/", authn, adminOnly, sweetHandler.Create)
	sweets.Put("/:id", authn, adminOnly, sweetHandler.Update)
	sweets.Delete("/:id", authn, adminOnly, sweetHandler.Delete)
	sweets.Post("/:id/purchase", authn, sweetHandler.Purchase)
	sweets.Post("/:id/restock", authn, adminOnly, sweetHandler.Restock)
	sweets.Post("/:id/upload-image", authn, adminOnly, sweetHandler.UploadImage)

	// Payment (protegido)
	payments := api.Group("/payment", authn)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/create-order", paymentHandler.CreateOrder)
	payments.Post("/verify-payment", paymentHandler.VerifyPayment)
}
