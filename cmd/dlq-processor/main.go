package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	awsclient "github.com/taxpro/taxpro-api/internal/client/aws"
	"github.com/taxpro/taxpro-api/internal/helpers"
	"github.com/taxpro/taxpro-api/internal/logger"
	"github.com/taxpro/taxpro-api/internal/server"
	"github.com/taxpro/taxpro-api/internal/services"
	"github.com/taxpro/taxpro-api/internal/types/business"
	"go.uber.org/zap"
)

// receiveCountAttribute is the SQS system attribute counting deliveries.
const receiveCountAttribute = "ApproximateReceiveCount"

// RecordWriter stores a single history record.
type RecordWriter func(ctx context.Context, record business.TaxCalculationRecord) error

// Application holds the dependencies of the history dead letter processor.
// Records land here when a whole batch failed in the history processor, so
// each one is retried on its own.
type Application struct {
	write        RecordWriter
	logger       *zap.Logger
	maxRetries   int
	retryBackoff time.Duration
}

// DLQProcessingResult represents the result of processing a DLQ message
type DLQProcessingResult struct {
	MessageID             string `json:"message_id"`
	CalculationID         string `json:"calculation_id,omitempty"`
	ProcessedSuccessfully bool   `json:"processed_successfully"`
	RetryAttempt          int    `json:"retry_attempt"`
	Error                 string `json:"error,omitempty"`
	ShouldRetry           bool   `json:"should_retry"`
}

func main() {
	stage := server.LoadStage()
	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing history DLQ processor", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := server.ResolveDSN(ctx, stage, secretsClient)
	if err != nil {
		logger.Fatal("Failed to resolve database DSN", zap.Error(err))
	}

	pool, err := server.ConnectPool(ctx, dsn)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	defer pool.Close()

	app := &Application{
		write:        poolWriter(pool),
		logger:       logger.Log,
		maxRetries:   helpers.GetEnvInt("DLQ_MAX_RETRIES", 3),
		retryBackoff: time.Duration(helpers.GetEnvInt("DLQ_RETRY_BACKOFF_MS", 1000)) * time.Millisecond,
	}
	lambda.Start(app.HandleDLQEvent)
}

func poolWriter(pool *pgxpool.Pool) RecordWriter {
	return func(ctx context.Context, record business.TaxCalculationRecord) error {
		return services.RecordBatch(ctx, pool, []business.TaxCalculationRecord{record})
	}
}

// HandleDLQEvent retries every message on its own. Messages worth another
// attempt are returned as batch item failures; permanent failures are logged
// with their body and dropped.
func (app *Application) HandleDLQEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	app.logger.Info("Processing DLQ event", zap.Int("message_count", len(event.Records)))

	var (
		resp       events.SQSEventResponse
		successful int
	)

	for _, msg := range event.Records {
		result := app.processDLQMessage(ctx, msg)

		if result.ProcessedSuccessfully {
			successful++
			app.logger.Info("DLQ message processed successfully",
				zap.String("message_id", result.MessageID),
				zap.String("calculation_id", result.CalculationID),
				zap.Int("retry_attempt", result.RetryAttempt))
			continue
		}

		app.logger.Error("DLQ message processing failed",
			zap.String("message_id", result.MessageID),
			zap.String("calculation_id", result.CalculationID),
			zap.Int("retry_attempt", result.RetryAttempt),
			zap.String("error", result.Error),
			zap.Bool("should_retry", result.ShouldRetry))

		if result.ShouldRetry {
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: msg.MessageId})
		} else {
			app.logPermanentFailure(msg, result)
		}
	}

	app.logger.Info("DLQ processing complete",
		zap.Int("total_messages", len(event.Records)),
		zap.Int("successful", successful),
		zap.Int("retrying", len(resp.BatchItemFailures)))

	return resp, nil
}

func (app *Application) processDLQMessage(ctx context.Context, msg events.SQSMessage) DLQProcessingResult {
	result := DLQProcessingResult{
		MessageID:    msg.MessageId,
		RetryAttempt: receiveCount(msg),
	}

	record, err := services.DecodeHistoryRecord(msg.Body)
	if err != nil {
		result.Error = fmt.Sprintf("failed to parse DLQ message: %v", err)
		return result
	}
	result.CalculationID = record.ID.String()

	if result.RetryAttempt > app.maxRetries {
		result.Error = fmt.Sprintf("maximum retries exceeded (%d)", app.maxRetries)
		return result
	}

	if delay := app.retryBackoff * time.Duration(result.RetryAttempt-1); delay > 0 {
		app.logger.Debug("Applying backoff delay",
			zap.Duration("delay", delay),
			zap.Int("retry_attempt", result.RetryAttempt))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			result.Error = "context cancelled during backoff"
			result.ShouldRetry = true
			return result
		}
	}

	if err := app.write(ctx, record); err != nil {
		result.Error = fmt.Sprintf("failed to store tax calculation: %v", err)
		result.ShouldRetry = shouldRetryError(err)
		return result
	}

	result.ProcessedSuccessfully = true
	return result
}

// shouldRetryError is false for data the database will never accept:
// invalid numerics and Postgres data exception (22) or integrity constraint
// (23) errors.
func shouldRetryError(err error) bool {
	if errors.Is(err, helpers.ErrInvalidNumeric) {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "22", "23":
			return false
		}
	}
	return true
}

func receiveCount(msg events.SQSMessage) int {
	n, err := strconv.Atoi(msg.Attributes[receiveCountAttribute])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (app *Application) logPermanentFailure(msg events.SQSMessage, result DLQProcessingResult) {
	app.logger.Error("Dropping history record after permanent failure",
		zap.String("message_id", msg.MessageId),
		zap.String("calculation_id", result.CalculationID),
		zap.String("error", result.Error),
		zap.String("body", msg.Body))
}
