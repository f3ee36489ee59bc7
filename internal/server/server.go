package server

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/taxpro/taxpro-api/docs"
	awsclient "github.com/taxpro/taxpro-api/internal/client/aws"
	"github.com/taxpro/taxpro-api/internal/db"
	"github.com/taxpro/taxpro-api/internal/handlers"
	"github.com/taxpro/taxpro-api/internal/helpers"
	"github.com/taxpro/taxpro-api/internal/interfaces"
	"github.com/taxpro/taxpro-api/internal/logger"
	"github.com/taxpro/taxpro-api/internal/middleware"
	"github.com/taxpro/taxpro-api/internal/services"
	"github.com/taxpro/taxpro-api/internal/taxengine"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	taxHandler      *handlers.TaxHandler
	documentHandler *handlers.DocumentHandler
	healthHandler   *handlers.HealthHandler

	dbPool         *pgxpool.Pool
	rateLimiter    *middleware.RateLimiter
	maxUploadBytes int
)

// Handlers groups the handlers mounted by RegisterRoutes.
type Handlers struct {
	Tax      *handlers.TaxHandler
	Document *handlers.DocumentHandler
	Health   *handlers.HealthHandler

	// MaxUploadBytes caps the decoded document image; 0 means
	// middleware.DefaultMaxUploadBytes.
	MaxUploadBytes int
}

// InitializeHandlers loads configuration, connects to Postgres and builds the
// services and handlers. Any failure is fatal.
func InitializeHandlers() {
	stage := LoadStage()

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	if !helpers.IsDevelopment(stage) && os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := ResolveDSN(ctx, stage, secretsClient)
	if err != nil {
		logger.Fatal("Failed to resolve database DSN", zap.Error(err))
	}

	if helpers.GetEnvBool("RUN_MIGRATIONS", true) {
		if err := db.RunMigrations(dsn); err != nil {
			logger.Fatal("Failed to run database migrations", zap.Error(err))
		}
	}

	dbPool, err = ConnectPool(ctx, dsn)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	queries := db.New(dbPool)

	tables, err := taxengine.LoadTables(os.Getenv("TAX_TABLES_PATH"))
	if err != nil {
		logger.Fatal("Failed to load tax tables", zap.Error(err))
	}
	logger.Info("Loaded tax tables",
		zap.Int("year", tables.Year()),
		zap.String("version", tables.Version()),
		zap.Int("states", len(tables.StateCodes())))

	recorder, err := NewHistoryRecorder(ctx, queries)
	if err != nil {
		logger.Fatal("Failed to initialize history recorder", zap.Error(err))
	}

	taxService := services.NewTaxService(tables, queries, recorder)
	maxUploadBytes = helpers.GetEnvInt("MAX_UPLOAD_BYTES", middleware.DefaultMaxUploadBytes)
	documentService := services.NewDocumentService(queries, maxUploadBytes)

	commonServices := handlers.NewCommonServices(handlers.CommonServicesConfig{
		TaxService:      taxService,
		DocumentService: documentService,
		Logger:          logger.Log,
	})

	taxHandler = handlers.NewTaxHandler(commonServices, taxService)
	documentHandler = handlers.NewDocumentHandler(commonServices, documentService)
	healthHandler = handlers.NewHealthHandler(stage, tables, dbPool)

	rateLimiter = middleware.NewRateLimiter(
		helpers.GetEnvInt("RATE_LIMIT_RPS", middleware.DefaultRequestsPerSecond),
		helpers.GetEnvInt("RATE_LIMIT_BURST", middleware.DefaultBurst),
	)
}

// LoadStage reads .env when present and returns the validated STAGE,
// defaulting to local.
func LoadStage() string {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}
	return stage
}

// ResolveDSN builds the Postgres connection string. Deployed stages combine
// DB_HOST and DB_NAME with credentials from the RDS secret; the local stage
// reads DATABASE_URL directly or through DATABASE_URL_ARN.
func ResolveDSN(ctx context.Context, stage string, secrets interfaces.SecretsClient) (string, error) {
	if stage == helpers.StageProd || stage == helpers.StageDev {
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		if dbEndpoint == "" || dbName == "" {
			return "", fmt.Errorf("missing required DB environment variables for stage %s (DB_HOST, DB_NAME)", stage)
		}
		dbSSLMode := os.Getenv("DB_SSLMODE")
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		var secret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secret); err != nil {
			return "", fmt.Errorf("failed to retrieve RDS secret: %w", err)
		}
		if secret.Username == "" || secret.Password == "" {
			return "", fmt.Errorf("username or password missing from RDS secret")
		}

		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secret.Username),
			url.QueryEscape(secret.Password),
			dbEndpoint, dbName, dbSSLMode), nil
	}

	dsn, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil {
		return "", fmt.Errorf("failed to get DATABASE_URL: %w", err)
	}
	if dsn == "" {
		return "", fmt.Errorf("DATABASE_URL is required for local development")
	}
	return dsn, nil
}

// ConnectPool opens a pgx pool sized by DB_MAX_CONNS and DB_MIN_CONNS and
// retries the first ping with exponential backoff.
func ConnectPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}
	poolConfig.MaxConns = int32(helpers.GetEnvInt("DB_MAX_CONNS", 10))
	poolConfig.MinConns = int32(helpers.GetEnvInt("DB_MIN_CONNS", 2))
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 500 * time.Millisecond
	expBackoff.MaxInterval = 5 * time.Second
	expBackoff.MaxElapsedTime = 30 * time.Second

	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		if pingErr := pool.Ping(ctx); pingErr != nil {
			logger.Warn("Database not reachable yet", zap.Int("attempt", attempt), zap.Error(pingErr))
			return pingErr
		}
		return nil
	}, backoff.WithContext(expBackoff, ctx))
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed after %d attempts: %w", attempt, err)
	}
	return pool, nil
}

// NewHistoryRecorder queues history to SQS when HISTORY_QUEUE_URL is set and
// writes it straight to the database otherwise.
func NewHistoryRecorder(ctx context.Context, queries db.Querier) (interfaces.HistoryRecorder, error) {
	queueURL := os.Getenv("HISTORY_QUEUE_URL")
	if queueURL == "" {
		return services.NewDBHistoryRecorder(queries), nil
	}

	publisher, err := awsclient.NewSQSPublisher(ctx, queueURL)
	if err != nil {
		return nil, err
	}
	logger.Info("Recording tax history through SQS", zap.String("queue_url", queueURL))
	return services.NewQueueHistoryRecorder(publisher), nil
}

// InitializeRoutes mounts middleware and routes for the handlers created by
// InitializeHandlers.
func InitializeRoutes(router *gin.Engine) {
	RegisterRoutes(router, Handlers{
		Tax:      taxHandler,
		Document: documentHandler,
		Health:   healthHandler,

		MaxUploadBytes: maxUploadBytes,
	}, rateLimiter)
}

// RegisterRoutes mounts the API on router. limiter may be nil.
func RegisterRoutes(router *gin.Engine, h Handlers, limiter *middleware.RateLimiter) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	if limiter != nil {
		router.Use(limiter.Middleware())
	}

	isDevelopment := gin.Mode() != gin.ReleaseMode
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", h.Health.Health)
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.POST("/calculate-tax", middleware.ValidateInput(middleware.CalculateTaxValidation), h.Tax.CalculateTax)
		api.GET("/tax-brackets/:filingStatus", h.Tax.GetTaxBrackets)
		api.GET("/state-rates", h.Tax.ListStateRates)
		api.GET("/state-rates/:state", h.Tax.GetStateRate)
		api.GET("/tax-history", h.Tax.GetTaxHistory)
		api.GET("/tax-history/:id", h.Tax.GetTaxCalculation)

		api.POST("/documents", middleware.ValidateInput(middleware.UploadDocumentValidation(h.MaxUploadBytes)), h.Document.UploadDocument)
		api.GET("/documents", h.Document.ListDocuments)
		api.GET("/documents/:id", h.Document.GetDocument)
	}
}

// Shutdown releases the rate limiter and database pool.
func Shutdown() {
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if dbPool != nil {
		dbPool.Close()
	}
	_ = logger.Sync()
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = helpers.GetEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5000"})
	corsConfig.AllowMethods = helpers.GetEnvList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"})
	corsConfig.AllowHeaders = helpers.GetEnvList("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"})
	corsConfig.ExposeHeaders = helpers.GetEnvList("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
	})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"
	return cors.New(corsConfig)
}
