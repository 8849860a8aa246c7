package main

import (
	_ "rental_billing/docs"
	"rental_billing/internal/adapter/http/routes"
	"rental_billing/internal/infrastructure/config"
	"rental_billing/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// @title           Rental Billing API
// @version         1.0
// @description     Rental payment lifecycle: payment verification, cash proofs, online payments and rental summaries, backed by DynamoDB and S3.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("failed to load configuration", zap.Error(err))
	}

	if err := routes.Run(cfg); err != nil {
		logger.L().Fatal("failed to startup the application", zap.Error(err))
	}
}
