package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	awsclient "github.com/taxpro/taxpro-api/internal/client/aws"
	"github.com/taxpro/taxpro-api/internal/constants"
	"github.com/taxpro/taxpro-api/internal/logger"
	"github.com/taxpro/taxpro-api/internal/server"
	"github.com/taxpro/taxpro-api/internal/services"
	"github.com/taxpro/taxpro-api/internal/types/business"
	"go.uber.org/zap"
)

// BatchWriter stores a batch of history records atomically.
type BatchWriter func(ctx context.Context, records []business.TaxCalculationRecord) error

// Application holds the dependencies of the history processor Lambda.
type Application struct {
	write  BatchWriter
	logger *zap.Logger
}

// HandleSQSEvent decodes every message and writes the decodable ones in a
// single transaction. Messages that fail are reported back as batch item
// failures so SQS redelivers only those.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	var (
		resp       events.SQSEventResponse
		records    []business.TaxCalculationRecord
		messageIDs []string
	)

	for _, msg := range event.Records {
		if attr, ok := msg.MessageAttributes[constants.MessageTypeAttribute]; ok && attr.StringValue != nil &&
			*attr.StringValue != constants.TaxCalculationEventType {
			app.logger.Warn("Skipping message with unexpected type",
				zap.String("message_id", msg.MessageId),
				zap.String("message_type", *attr.StringValue))
			continue
		}

		record, err := services.DecodeHistoryRecord(msg.Body)
		if err != nil {
			app.logger.Error("Failed to decode history message",
				zap.String("message_id", msg.MessageId),
				zap.Error(err))
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: msg.MessageId})
			continue
		}
		records = append(records, record)
		messageIDs = append(messageIDs, msg.MessageId)
	}

	if len(records) == 0 {
		return resp, nil
	}

	if err := app.write(ctx, records); err != nil {
		app.logger.Error("Failed to store history batch",
			zap.Int("records", len(records)),
			zap.Error(err))
		for _, id := range messageIDs {
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: id})
		}
		return resp, nil
	}

	app.logger.Info("Stored tax calculation history",
		zap.Int("records", len(records)),
		zap.Int("failed", len(resp.BatchItemFailures)))
	return resp, nil
}

func poolWriter(pool *pgxpool.Pool) BatchWriter {
	return func(ctx context.Context, records []business.TaxCalculationRecord) error {
		return services.RecordBatch(ctx, pool, records)
	}
}

func main() {
	stage := server.LoadStage()
	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing history processor", zap.String("stage", stage))
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
		write:  poolWriter(pool),
		logger: logger.Log,
	}
	lambda.Start(app.HandleSQSEvent)
}
