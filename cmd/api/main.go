package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jcastellanos/sweetshop-api/internal/application/auth"
	"github.com/jcastellanos/sweetshop-api/internal/application/catalog"
	"github.com/jcastellanos/sweetshop-api/internal/application/payment"
	infracloudinary "github.com/jcastellanos/sweetshop-api/internal/infrastructure/cloudinary"
	"github.com/jcastellanos/sweetshop-api/internal/infrastructure/postgres"
	infrarazorpay "github.com/jcastellanos/sweetshop-api/internal/infrastructure/razorpay"
	httpRouter "github.com/jcastellanos/sweetshop-api/internal/interfaces/http"
	"github.com/jcastellanos/sweetshop-api/pkg/config"
	pkgjwt "github.com/jcastellanos/sweetshop-api/pkg/jwt"
	"github.com/jcastellanos/sweetshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	sweetRepo := postgres.NewSweetRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	gateway := infrarazorpay.NewGateway(cfg.Razorpay.Key, cfg.Razorpay.Secret)

	uploader, err := infracloudinary.NewUploader(cfg.Cloudinary)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de Cloudinary")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, pkgjwt.Generate)
	sweetUC := catalog.NewSweetUseCase(sweetRepo, txRunner, uploader)
	paymentUC := payment.NewPaymentUseCase(paymentRepo, gateway)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sweet Shop API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SweetUC:     sweetUC,
		PaymentUC:   paymentUC,
		JWTSecret:   cfg.JWT.Secret,
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
		Env:         cfg.App.Env,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
