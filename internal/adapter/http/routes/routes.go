package routes

import (
	"log"
	"os"

	_ "plotbook/docs" // swag-generated docs
	"plotbook/internal/adapter/http/handlers"
	"plotbook/internal/adapter/http/middleware"
	"plotbook/internal/adapter/persistence/repository"
	"plotbook/internal/config"
	"plotbook/internal/infrastructure/database"
	"plotbook/internal/infrastructure/notify"
	"plotbook/internal/infrastructure/payments"
	"plotbook/internal/infrastructure/scheduler"
	"plotbook/internal/usecase"
	"plotbook/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the full application and starts the HTTP server. It blocks
// until the server exits.
func Run(cfg *config.Config, logger *logrus.Logger) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sweep := getRoutes(cfg, logger)
	if err := sweep.Start(cfg.OverdueCron); err != nil {
		log.Fatalf("Failed to schedule overdue sweep: %v", err)
	}
	defer sweep.Stop()

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(cfg *config.Config, logger *logrus.Logger) *scheduler.Scheduler {
	ddb := database.ConnectDynamoDB()

	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	plotRepo := repository.NewPlotDynamoRepository(ddb)
	planRepo := repository.NewPlanTemplateDynamoRepository(ddb)
	eventRepo := repository.NewPaymentEventDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notifier := notify.NewEmailNotifier(cfg, logger)

	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, plotRepo, planRepo, invoiceRepo)
	paymentUseCase := usecase.NewPaymentUseCase(bookingRepo, eventRepo, paymentGateway)
	planUseCase := usecase.NewPlanTemplateUseCase(planRepo)
	plotUseCase := usecase.NewPlotUseCase(plotRepo)
	reportUseCase := usecase.NewReportUseCase(bookingRepo, eventRepo, plotRepo)
	overdueUseCase := usecase.NewOverdueUseCase(bookingRepo, notifier)

	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	planHandler := handlers.NewPlanTemplateHandler(planUseCase)
	plotHandler := handlers.NewPlotHandler(plotUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	auth := middleware.Auth(cfg.JWTSecret)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, auth, bookingHandler, paymentHandler, reportHandler)
	addPlanTemplateRoutes(v1, auth, planHandler)
	addPlotRoutes(v1, auth, plotHandler)
	addReportRoutes(v1, auth, reportHandler)

	return scheduler.NewScheduler(overdueUseCase, logger)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
