package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/taxpro/taxpro-api/internal/constants"
	"github.com/taxpro/taxpro-api/internal/db"
	"github.com/taxpro/taxpro-api/internal/helpers"
	"github.com/taxpro/taxpro-api/internal/interfaces"
	"github.com/taxpro/taxpro-api/internal/logger"
	"github.com/taxpro/taxpro-api/internal/types/business"
	"go.uber.org/zap"
)

// DBHistoryRecorder writes each record straight to tax_calculations.
type DBHistoryRecorder struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewDBHistoryRecorder(queries db.Querier) *DBHistoryRecorder {
	return &DBHistoryRecorder{
		queries: queries,
		logger:  logger.Log,
	}
}

func (r *DBHistoryRecorder) Record(ctx context.Context, record business.TaxCalculationRecord) error {
	arg, err := CreateParamsFromRecord(record)
	if err != nil {
		return err
	}
	if _, err := r.queries.CreateTaxCalculation(ctx, arg); err != nil {
		return errors.Wrap(err, "failed to insert tax calculation")
	}
	r.logger.Debug("Stored tax calculation", zap.String("calculation_id", record.ID.String()))
	return nil
}

// batchSerializationRetries bounds how often a batch is retried after a
// serialization failure.
const batchSerializationRetries = 2

// RecordBatch stores records in a single transaction. Records already stored
// under the same id are left as they are, so a redelivered batch is safe.
func RecordBatch(ctx context.Context, conn helpers.TxBeginner, records []business.TaxCalculationRecord) error {
	if len(records) == 0 {
		return nil
	}
	return helpers.WithTransactionRetry(ctx, conn, batchSerializationRetries, func(tx pgx.Tx) error {
		qtx := db.New(tx)
		for _, record := range records {
			arg, err := CreateParamsFromRecord(record)
			if err != nil {
				return err
			}
			if _, err := qtx.CreateTaxCalculation(ctx, arg); err != nil {
				return errors.Wrapf(err, "failed to insert tax calculation %s", record.ID)
			}
		}
		return nil
	})
}

// QueueHistoryRecorder publishes records to the history queue; the history
// processor inserts them.
type QueueHistoryRecorder struct {
	publisher interfaces.MessagePublisher
	logger    *zap.Logger
}

func NewQueueHistoryRecorder(publisher interfaces.MessagePublisher) *QueueHistoryRecorder {
	return &QueueHistoryRecorder{
		publisher: publisher,
		logger:    logger.Log,
	}
}

func (r *QueueHistoryRecorder) Record(ctx context.Context, record business.TaxCalculationRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to encode tax calculation")
	}

	messageID, err := r.publisher.SendMessage(ctx, string(body), map[string]string{
		constants.MessageTypeAttribute: constants.TaxCalculationEventType,
	})
	if err != nil {
		return errors.Wrap(err, "failed to queue tax calculation")
	}

	r.logger.Debug("Queued tax calculation",
		zap.String("calculation_id", record.ID.String()),
		zap.String("message_id", messageID))
	return nil
}

// DecodeHistoryRecord parses a queued record and rejects one without an id.
func DecodeHistoryRecord(body string) (business.TaxCalculationRecord, error) {
	var record business.TaxCalculationRecord
	if err := json.Unmarshal([]byte(body), &record); err != nil {
		return business.TaxCalculationRecord{}, errors.Wrap(err, "invalid history message")
	}
	if record.ID == uuid.Nil {
		return business.TaxCalculationRecord{}, errors.New("history message has no id")
	}
	return record, nil
}

// CreateParamsFromRecord converts amounts to NUMERIC, money to cents and the
// effective rate to four places.
func CreateParamsFromRecord(record business.TaxCalculationRecord) (db.CreateTaxCalculationParams, error) {
	calculatedAt := record.CalculatedAt
	if calculatedAt.IsZero() {
		calculatedAt = time.Now().UTC()
	}

	arg := db.CreateTaxCalculationParams{
		ID:            record.ID,
		FilingStatus:  record.FilingStatus,
		State:         record.State,
		TablesVersion: pgtype.Text{String: record.TablesVersion, Valid: record.TablesVersion != ""},
		CalculatedAt:  pgtype.Timestamptz{Time: calculatedAt, Valid: true},
	}

	fields := []struct {
		dst    *pgtype.Numeric
		value  float64
		places int32
	}{
		{&arg.Income, record.Income, helpers.MoneyPlaces},
		{&arg.StandardDeduction, record.StandardDeduction, helpers.MoneyPlaces},
		{&arg.AdditionalDeductions, record.AdditionalDeductions, helpers.MoneyPlaces},
		{&arg.FederalTax, record.FederalTax, helpers.MoneyPlaces},
		{&arg.StateTax, record.StateTax, helpers.MoneyPlaces},
		{&arg.EffectiveRate, record.EffectiveRate, helpers.RatePlaces},
		{&arg.TaxableIncome, record.TaxableIncome, helpers.MoneyPlaces},
	}
	for _, f := range fields {
		n, err := helpers.Float64ToNumeric(f.value, f.places)
		if err != nil {
			return db.CreateTaxCalculationParams{}, errors.Wrap(err, "failed to convert amount")
		}
		*f.dst = n
	}

	return arg, nil
}
