package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/reliefhub/internal/pkg/config"
	"github.com/piresc/reliefhub/internal/pkg/database"
	"github.com/piresc/reliefhub/internal/pkg/health"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/middleware"
	nsqpkg "github.com/piresc/reliefhub/internal/pkg/nsq"
	"github.com/piresc/reliefhub/internal/pkg/server"
	"github.com/piresc/reliefhub/internal/pkg/validator"
	"github.com/piresc/reliefhub/internal/utils"

	aidgw "github.com/piresc/reliefhub/services/aid/gateway"
	aidhttp "github.com/piresc/reliefhub/services/aid/handler/http"
	aidrepo "github.com/piresc/reliefhub/services/aid/repository"
	aiduc "github.com/piresc/reliefhub/services/aid/usecase"
	feedbackhttp "github.com/piresc/reliefhub/services/feedback/handler/http"
	feedbackrepo "github.com/piresc/reliefhub/services/feedback/repository"
	feedbackuc "github.com/piresc/reliefhub/services/feedback/usecase"
	matchuc "github.com/piresc/reliefhub/services/match/usecase"
	notificationgw "github.com/piresc/reliefhub/services/notification/gateway"
	notificationhttp "github.com/piresc/reliefhub/services/notification/handler/http"
	notificationrepo "github.com/piresc/reliefhub/services/notification/repository"
	notificationuc "github.com/piresc/reliefhub/services/notification/usecase"
	volunteerhttp "github.com/piresc/reliefhub/services/volunteer/handler/http"
	volunteerrepo "github.com/piresc/reliefhub/services/volunteer/repository"
	volunteeruc "github.com/piresc/reliefhub/services/volunteer/usecase"
)

func main() {
	configPath := "config/reliefhub.env"
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	zapLogger, err := logger.NewZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	if configs.Database.AutoMigrate {
		if err := postgresClient.Migrate(context.Background()); err != nil {
			logger.Fatal("Failed to apply database schema", logger.Err(err))
		}
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ publisher, a no-op when no address is configured
	publisher, err := nsqpkg.NewPublisher(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Initialize repositories
	db := postgresClient.GetDB()
	volunteerRepo := volunteerrepo.NewVolunteerRepository(configs, db, redisClient)
	aidRepo := aidrepo.NewAidRepository(configs, db)
	notificationRepo := notificationrepo.NewNotificationRepository(configs, db)
	feedbackRepo := feedbackrepo.NewFeedbackRepository(configs, db)

	// Initialize gateways
	smsGW := notificationgw.NewSMSGateway(configs.SMS)
	if !smsGW.Configured() {
		logger.Warn("Vonage credentials missing, SMS sends will be simulated")
	}

	// Initialize usecases
	notificationUC := notificationuc.NewNotificationUC(
		notificationRepo, volunteerRepo, smsGW, notificationgw.NewEventGW(publisher), configs)
	matchUC := matchuc.NewMatchUC(configs, volunteerRepo, notificationUC)
	aidUC := aiduc.NewAidUC(aidRepo, volunteerRepo, matchUC, aidgw.NewEventGW(publisher), configs)
	notificationUC.SetAidAssigner(aidUC)
	volunteerUC := volunteeruc.NewVolunteerUC(volunteerRepo, configs)
	feedbackUC := feedbackuc.NewFeedbackUC(feedbackRepo, volunteerRepo, aidRepo, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: configs.CORS.AllowOrigins}))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": postgresClient,
		"redis":    redisClient,
	})

	// Register service routes
	// Routes that send SMS are rate limited per client IP
	smsLimiter := middleware.IPRateLimiter(
		configs.RateLimit.Requests,
		time.Duration(configs.RateLimit.Period)*time.Second,
		redisClient)
	operatorOnly := middleware.ValidateAPIKey(configs.APIKey.Keys)
	if len(configs.APIKey.Keys) == 0 {
		logger.Warn("No operator API keys configured, notification history is open")
	}

	api := e.Group("/api")
	volunteerhttp.NewVolunteerHandler(volunteerUC).RegisterRoutes(api)
	aidhttp.NewAidHandler(aidUC, smsLimiter).RegisterRoutes(api)
	feedbackhttp.NewFeedbackHandler(feedbackUC).RegisterRoutes(api)
	notificationHandler := notificationhttp.NewNotificationHandler(notificationUC,
		notificationhttp.WithSendMiddleware(smsLimiter),
		notificationhttp.WithReadMiddleware(operatorOnly))
	notificationHandler.RegisterRoutes(api)
	notificationHandler.RegisterWebhooks(e, configs.Webhook.SignatureSecret)
	e.RouteNotFound("/*", func(c echo.Context) error {
		return utils.NotFoundResponse(c, "")
	})

	// Background sends drain before their stores close
	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("notification tasks", notificationUC.Wait)
	shutdown.Register("nsq", func(context.Context) error {
		publisher.Stop()
		return nil
	})
	shutdown.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})
	shutdown.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})

	logger.Info("Starting service",
		logger.String("app", appName),
		logger.String("env", configs.App.Environment),
		logger.Int("port", configs.Server.Port))
	if err := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown).Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
