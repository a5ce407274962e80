package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "mecanica_xpto_quotes/docs"
	"mecanica_xpto_quotes/internal/adapter/http/handlers"
	"mecanica_xpto_quotes/internal/adapter/persistence/repository"
	"mecanica_xpto_quotes/internal/infrastructure/database"
	"mecanica_xpto_quotes/internal/usecase"
	"mecanica_xpto_quotes/internal/usecase/reconciliation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := gin.Default()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registry, err := getRoutes(ctx, router, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer registry.StopAll()

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()
	log.Printf("[quote][http] listening port=%d poll_interval=%s session_ttl=%s", cfg.Port, cfg.PollInterval, cfg.SessionTTL)

	<-ctx.Done()
	log.Printf("[quote][http] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[quote][http] shutdown failed err=%v", err)
	}
}

func getRoutes(ctx context.Context, router *gin.Engine, cfg Config) (*reconciliation.Registry, error) {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.CreateTables {
		tables := database.QuoteTables(
			repository.QuoteSessionsTableName(),
			repository.QuoteResponsesTableName(),
			repository.SuppliersTableName(),
			repository.OrderIDIndexName,
		)
		if err := database.EnsureTables(ctx, ddb, tables); err != nil {
			return nil, err
		}
	}

	sessionRepo := repository.NewQuoteSessionDynamoRepository(ddb)
	responseRepo := repository.NewSupplierResponseDynamoRepository(ddb)
	supplierRepo := repository.NewSupplierDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(sessionRepo, responseRepo, supplierRepo, cfg.SessionTTL)
	registry := reconciliation.NewRegistry(ctx, quoteUseCase, cfg.PollInterval, log.New(os.Stdout, "", log.LstdFlags))

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, registry)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)

	return registry, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
