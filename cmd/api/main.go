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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Interiores-api/internal/application/analytics"
	"github.com/jhoicas/Interiores-api/internal/application/auth"
	"github.com/jhoicas/Interiores-api/internal/application/ports"
	"github.com/jhoicas/Interiores-api/internal/application/usecase"
	"github.com/jhoicas/Interiores-api/internal/domain/budget"
	"github.com/jhoicas/Interiores-api/internal/infrastructure/payment"
	infrapdf "github.com/jhoicas/Interiores-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Interiores-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Interiores-api/internal/infrastructure/redis"
	"github.com/jhoicas/Interiores-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Interiores-api/internal/interfaces/http"
	"github.com/jhoicas/Interiores-api/pkg/config"
	"github.com/jhoicas/Interiores-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer log.Close()
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
	addressRepo := postgres.NewAddressRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	consultationRepo := postgres.NewConsultationRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	ideaRepo := postgres.NewDesignIdeaRepository(pool)
	portfolioRepo := postgres.NewPortfolioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Redis: caché del listado de productos y límite de intentos de login. Sin REDIS_ADDR se opera sin ambos.
	var (
		productCache ports.ListCache
		loginLimiter httpRouter.RateLimiter
	)
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		productCache = infraredis.NewListCache(rdb, "products", infraredis.DefaultListTTL)
		limiter, err := infraredis.NewFixedWindowLimiter(rdb, "", cfg.Redis.LoginPerMinute, time.Minute)
		if err != nil {
			log.Fatal().Err(err).Msg("rate limit de login")
		}
		loginLimiter = limiter
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: sin caché de listados ni límite de login")
	}

	// Medios: MinIO/S3. Sin STORAGE_ENDPOINT las subidas fallan con un error explícito.
	var media ports.MediaStore = storage.Disabled{}
	if cfg.Storage.Enabled() {
		store, err := storage.NewMinioStore(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento de medios")
		}
		media = store
	}

	// Pagos: pasarela local determinista mientras no haya PAYMENT_API_KEY.
	var gateway ports.PaymentGateway = payment.LocalGateway{}
	if cfg.Payment.APIKey != "" {
		gateway = payment.NewStripeGateway(cfg.Payment.APIKey, cfg.Payment.BaseURL)
	} else {
		log.Warn().Msg("PAYMENT_API_KEY vacío: usando pasarela local")
	}

	rates := budget.DefaultRateTable()
	if cfg.Budget.RatesFile != "" {
		var file budget.RateFile
		if err := config.LoadFile(cfg.Budget.RatesFile, &file); err != nil {
			log.Fatal().Err(err).Msg("tarifas del calculador")
		}
		rates = file.Merge(rates)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	orderUC := usecase.NewOrderUseCase(orderRepo, addressRepo, userRepo, txRunner, infrapdf.NewReceiptGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.HTTP.UploadMaxMB + 1) << 20,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Interiores API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CategoryUC:     usecase.NewCategoryUseCase(categoryRepo, productRepo, txRunner, productCache),
		ProductUC:      usecase.NewProductUseCase(productRepo, txRunner, productCache),
		ReviewUC:       usecase.NewReviewUseCase(reviewRepo, productRepo, productCache),
		OrderUC:        orderUC,
		CheckoutUC:     usecase.NewCheckoutUseCase(orderUC, orderRepo, gateway, cfg.Payment.Currency),
		ConsultationUC: usecase.NewConsultationUseCase(consultationRepo, txRunner),
		UserUC:         usecase.NewUserUseCase(userRepo),
		AddressUC:      usecase.NewAddressUseCase(addressRepo),
		DesignIdeaUC:   usecase.NewDesignIdeaUseCase(ideaRepo),
		PortfolioUC:    usecase.NewPortfolioUseCase(portfolioRepo),
		CalculatorUC:   usecase.NewCalculatorUseCase(rates),
		UploadUC:       usecase.NewUploadUseCase(media, cfg.HTTP.UploadMaxMB),
		DashboardUC:    analytics.NewDashboardUseCase(userRepo, productRepo, orderRepo, consultationRepo),
		Cookie: httpRouter.CookieOptions{
			Name:   cfg.Cookie.Name,
			Domain: cfg.Cookie.Domain,
			Secure: cfg.Cookie.Secure,
			MaxAge: time.Duration(cfg.JWT.Expiration) * time.Minute,
		},
		LoginLimiter: loginLimiter,
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
