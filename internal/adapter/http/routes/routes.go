package routes

import (
	"context"
	"errors"
	"strconv"
	"strings"

	_ "rental_billing/docs" // swag registration
	"rental_billing/internal/adapter/http/handlers"
	"rental_billing/internal/adapter/http/middleware"
	"rental_billing/internal/adapter/persistence/repository"
	"rental_billing/internal/infrastructure/config"
	"rental_billing/internal/infrastructure/database"
	"rental_billing/internal/infrastructure/lock"
	"rental_billing/internal/infrastructure/logger"
	"rental_billing/internal/infrastructure/payments"
	"rental_billing/internal/infrastructure/storage"
	"rental_billing/internal/usecase"
	"rental_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var ErrMissingJWTSecret = errors.New("jwt.secret is required")

// Run wires the service from cfg and blocks serving HTTP.
func Run(cfg *config.Config) error {
	logger.SetLevel(cfg.Log.Level)
	log := logger.L()

	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return ErrMissingJWTSecret
	}

	ctx := context.Background()
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg.AWS)
	s3c := database.ConnectS3(awsCfg, cfg.AWS)

	rentalRepo := repository.NewRentalDynamoRepository(ddb, cfg.Tables.Rentals)
	paymentRepo := repository.NewRentalPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	roomRepo := repository.NewRoomDynamoRepository(ddb, cfg.Tables.Rooms)
	store := storage.NewS3ContentStore(s3c, cfg.Storage.Bucket)

	locker, closeLocker := lock.Connect(ctx, cfg.Redis)
	defer func() {
		if err := closeLocker(); err != nil {
			log.Warn("[routes] redis close failed", zap.Error(err))
		}
	}()

	mockGateway := cfg.MercadoPago.MockEnabled()
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, mockGateway)
	if err != nil {
		log.Warn("[routes] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewRentalPaymentUseCase(paymentRepo, rentalRepo, store, locker, paymentGateway, usecase.RentalPaymentOptions{
		MaxProofBytes:     cfg.Storage.MaxProofBytes,
		MaxProofDimension: cfg.Storage.MaxProofDimension,
		MaxProofPixels:    cfg.Storage.MaxProofPixels,
		LockTTL:           cfg.Redis.LockTTL,
		GatewayMock:       mockGateway,
		TestPayerEmail:    cfg.MercadoPago.TestPayerEmail,
		SandboxToken:      strings.HasPrefix(cfg.MercadoPago.AccessToken, "TEST-"),
	})
	rentalUseCase := usecase.NewRentalUseCase(rentalRepo, paymentRepo, roomRepo)

	router := NewRouter(cfg,
		handlers.NewRentalHandler(rentalUseCase),
		handlers.NewRentalPaymentHandler(paymentUseCase, cfg.Storage.MaxProofBytes, mockGateway),
	)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Info("[routes] listening", zap.String("addr", addr))
	return router.Run(addr)
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(cfg *config.Config, rentalHandler *handlers.RentalHandler, paymentHandler *handlers.RentalPaymentHandler) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.CORS(cfg.Server.CorsAllowedOrigins),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	auth := middleware.Auth(cfg.JWT.Secret, cfg.JWT.Issuer)
	addManagerRoutes(v1.Group(PathManager, auth, middleware.RequireRole(middleware.RoleManager)), rentalHandler, paymentHandler)
	addTenantRoutes(v1.Group(PathTenant, auth, middleware.RequireRole(middleware.RoleTenant)), rentalHandler, paymentHandler)

	return router
}
