package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "govbr_pagamentos/docs" // This will be auto-generated
	"govbr_pagamentos/internal/adapter/http/handlers"
	repository2 "govbr_pagamentos/internal/adapter/persistence/repository"
	"govbr_pagamentos/internal/infrastructure/database"
	"govbr_pagamentos/internal/infrastructure/payments"
	"govbr_pagamentos/internal/infrastructure/reconciliation"
	"govbr_pagamentos/internal/usecase"
	"govbr_pagamentos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	intentRepo := buildIntentRepository()
	gateway := buildPixGateway()
	policy := reconciliation.NewSimulatedReconciliationPolicy(
		getenvDuration("PIX_RECONCILE_DWELL_SECONDS", reconciliation.DefaultDwell, time.Second),
		getenvFloat("PIX_RECONCILE_APPROVAL_RATE", reconciliation.DefaultApprovalRate),
	)
	ttl := getenvDuration("PIX_INTENT_TTL_MINUTES", usecase.DefaultIntentTTL, time.Minute)

	intentUseCase := usecase.NewIntentUseCase(intentRepo, gateway, policy, ttl)

	intentHandler := handlers.NewIntentHandler(intentUseCase)
	webhookHandler := handlers.NewWebhookHandler(intentUseCase)
	healthHandler := handlers.NewHealthHandler(intentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPixRoutes(v1, intentHandler, webhookHandler, healthHandler)
}

func buildIntentRepository() interfaces.IIntentRepository {
	if os.Getenv("INTENT_STORE") == "dynamodb" {
		log.Printf("[pix][routes] using DynamoDB intent store")
		return repository2.NewIntentDynamoRepository(database.ConnectDynamoDB())
	}
	log.Printf("[pix][routes] using in-memory intent store (unbounded retention)")
	return repository2.NewIntentMemoryRepository()
}

func buildPixGateway() interfaces.IPixGateway {
	token := os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	if token != "" && os.Getenv("PAYMENT_GATEWAY") != "simulated" {
		mp, err := payments.NewMercadoPagoGateway(token)
		if err == nil {
			return mp
		}
		log.Printf("Mercado Pago gateway not configured: %v", err)
	}

	latency := getenvDuration("PIX_SIMULATOR_DELAY_MS", time.Second, time.Millisecond)
	log.Printf("[pix][routes] using simulated gateway latency=%s", latency)
	return payments.NewSimulatedGateway(latency)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDuration(key string, def time.Duration, unit time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[pix][routes] ignoring invalid %s=%q", key, v)
		return def
	}
	return time.Duration(n) * unit
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		log.Printf("[pix][routes] ignoring invalid %s=%q", key, v)
		return def
	}
	return f
}
