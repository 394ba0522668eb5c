package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/arkanadhi/lokapasar/config"
	"github.com/arkanadhi/lokapasar/internal/controller"
	circuitbreaker "github.com/arkanadhi/lokapasar/internal/infrastructure/circuit-breaker"
	"github.com/arkanadhi/lokapasar/internal/infrastructure/tracing"
	localmiddleware "github.com/arkanadhi/lokapasar/internal/middleware"
	"github.com/arkanadhi/lokapasar/internal/repository"
	"github.com/arkanadhi/lokapasar/internal/service"
	"github.com/arkanadhi/lokapasar/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB            *mongo.Database
	KafkaProducer *kafka.Conn
	Config        *config.Config
	Server        *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("lokapasar")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	isLoggedIn := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(app.Config.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})

	cb := circuitbreaker.CreateCircuitBreaker("lokapasar")

	userRepo := repository.CreateUserRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)
	cartRepo := repository.CreateCartRepository(app.DB)
	orderRepo := repository.CreateOrderRepository(app.DB)

	imageRepo, err := repository.CreateImageRepository(app.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create image repository")
	}

	userSvc := service.CreateUserService(userRepo, *app.Config)
	productSvc := service.CreateProductService(productRepo, imageRepo, *app.Config, app.KafkaProducer, cb)
	cartSvc := service.CreateCartService(cartRepo, productRepo, *app.Config)
	orderSvc := service.CreateOrderService(orderRepo, productRepo, cartRepo, userRepo, app.Config, app.KafkaProducer, cb)

	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateCartController(g, cartSvc, isLoggedIn)
	controller.CreateOrderController(g, orderSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			time.Hour,
		),
		gocron.NewTask(
			cartSvc.PruneStaleCartItems,
		),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule cart pruning job")
	}

	s.Start()

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
