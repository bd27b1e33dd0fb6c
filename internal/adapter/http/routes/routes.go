package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "techmend/docs" // This will be auto-generated
	"techmend/internal/adapter/http/handlers"
	"techmend/internal/adapter/http/middleware"
	repository2 "techmend/internal/adapter/persistence/repository"
	"techmend/internal/infrastructure/auth"
	"techmend/internal/infrastructure/cache"
	"techmend/internal/infrastructure/database"
	"techmend/internal/infrastructure/payments"
	"techmend/internal/infrastructure/shipping"
	"techmend/internal/infrastructure/storage"
	"techmend/internal/usecase"
	"techmend/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	var requestRepo interfaces.IMaintenanceRequestRepository = repository2.NewMaintenanceRequestDynamoRepository(ddb)
	if redisClient := cache.Connect(); redisClient != nil {
		requestRepo = repository2.NewCachedRequestRepository(requestRepo, redisClient)
	}
	paymentRepo := repository2.NewRepairPaymentDynamoRepository(ddb)
	counter := repository2.NewSequenceCounterDynamoRepository(ddb)

	gate := auth.NewRoleCapabilityGate()
	jwtManager := auth.NewJWTManagerFromEnv()

	var carrier interfaces.IShippingCarrierClient
	if base := os.Getenv("CARRIER_API_BASE_URL"); base != "" {
		carrierClient, err := shipping.NewRestCarrierClient(base, os.Getenv("CARRIER_API_KEY"))
		if err != nil {
			log.Printf("Carrier gateway not configured: %v", err)
		} else {
			carrier = carrierClient
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	requestUseCase := usecase.NewMaintenanceRequestUseCase(requestRepo, counter, gate, carrier)
	paymentUseCase := usecase.NewRepairPaymentUseCase(paymentRepo, requestRepo, gate, paymentGateway)

	var mediaStore interfaces.IMediaStore
	s3Store, err := storage.NewS3MediaStore(context.Background())
	if err != nil {
		log.Printf("Media store not configured: %v", err)
	} else {
		mediaStore = s3Store
	}

	requestHandler := handlers.NewMaintenanceRequestHandler(requestUseCase)
	paymentHandler := handlers.NewRepairPaymentHandler(paymentUseCase)
	uploadHandler := handlers.NewUploadHandler(mediaStore, gate)

	v1 := router.Group("/v1")
	v1.Use(middleware.ActorExtraction(jwtManager))
	addPingRoutes(v1)
	addMaintenanceRoutes(v1, requestHandler, paymentHandler, uploadHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))
}
