package services

import (
	"context"
	"math"
	"strings"
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
	"github.com/taxpro/taxpro-api/internal/taxengine"
	"github.com/taxpro/taxpro-api/internal/types/api/params"
	"github.com/taxpro/taxpro-api/internal/types/api/responses"
	"github.com/taxpro/taxpro-api/internal/types/business"
	"go.uber.org/zap"
)

// TaxService validates estimate requests, runs the tax engine against the
// loaded tables and records each result in history.
type TaxService struct {
	tables   *taxengine.Tables
	queries  db.Querier
	recorder interfaces.HistoryRecorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewTaxService creates a new tax service. recorder may be nil, in which
// case estimates are not kept.
func NewTaxService(tables *taxengine.Tables, queries db.Querier, recorder interfaces.HistoryRecorder) *TaxService {
	return &TaxService{
		tables:   tables,
		queries:  queries,
		recorder: recorder,
		logger:   logger.Log,
		now:      time.Now,
	}
}

// CalculateTax validates params, computes the estimate and records it.
func (s *TaxService) CalculateTax(ctx context.Context, params params.CalculateTaxParams) (*responses.TaxCalculationResponse, error) {
	input, err := s.buildInput(params)
	if err != nil {
		return nil, err
	}

	brackets := s.tables.BracketsFor(string(input.FilingStatus))
	stateRate := s.tables.StateRateOrZero(input.State)
	result := taxengine.ComputeTax(input, brackets, stateRate)

	record := business.TaxCalculationRecord{
		ID:                   uuid.New(),
		Income:               input.Income,
		FilingStatus:         string(input.FilingStatus),
		State:                input.State,
		StandardDeduction:    input.StandardDeduction,
		AdditionalDeductions: input.AdditionalDeductions,
		FederalTax:           result.FederalTax,
		StateTax:             result.StateTax,
		EffectiveRate:        result.EffectiveRate,
		TaxableIncome:        result.TaxableIncome,
		TablesVersion:        s.tables.Version(),
		CalculatedAt:         s.now().UTC(),
	}

	s.logger.Info("Calculated tax estimate",
		zap.String("calculation_id", record.ID.String()),
		zap.String("filing_status", record.FilingStatus),
		zap.String("state", record.State),
		zap.Float64("taxable_income", result.TaxableIncome),
		zap.Float64("federal_tax", result.FederalTax),
		zap.Float64("state_tax", result.StateTax))

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, record); err != nil {
			s.logger.Error("Failed to record tax calculation",
				zap.String("calculation_id", record.ID.String()),
				zap.Error(err))
			return nil, errors.Wrap(err, "failed to save tax calculation")
		}
	}

	resp := s.buildResponse(record, result.Breakdown)
	return &resp, nil
}

// GetTaxBrackets returns the bracket table for filingStatus, empty when the
// status is unknown.
func (s *TaxService) GetTaxBrackets(filingStatus string) taxengine.BracketTable {
	return s.tables.BracketsFor(filingStatus)
}

// GetStateRate returns rate 0 and Known false for an unknown code.
func (s *TaxService) GetStateRate(state string) responses.StateRateResponse {
	code := strings.ToUpper(strings.TrimSpace(state))
	rate, ok := s.tables.RateFor(code)
	return responses.StateRateResponse{State: code, Rate: rate, Known: ok}
}

// ListStateRates returns every state in alphabetical order.
func (s *TaxService) ListStateRates() []responses.StateRateResponse {
	codes := s.tables.StateCodes()
	out := make([]responses.StateRateResponse, 0, len(codes))
	for _, code := range codes {
		rate, _ := s.tables.RateFor(code)
		out = append(out, responses.StateRateResponse{State: code, Rate: rate, Known: true})
	}
	return out
}

// ListCalculationHistory returns the most recent calculations, newest first.
func (s *TaxService) ListCalculationHistory(ctx context.Context, limit int32) ([]responses.TaxCalculationResponse, error) {
	rows, err := s.queries.ListRecentTaxCalculations(ctx, clampLimit(limit, constants.DefaultHistoryLimit))
	if err != nil {
		s.logger.Error("Failed to list tax calculations", zap.Error(err))
		return nil, errors.Wrap(err, "failed to list tax calculations")
	}

	out := make([]responses.TaxCalculationResponse, 0, len(rows))
	for _, row := range rows {
		record, err := RecordFromRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode tax calculation %s", row.ID)
		}
		out = append(out, s.buildResponse(record, nil))
	}
	return out, nil
}

// GetCalculation returns a stored calculation together with a breakdown
// recomputed from its inputs.
func (s *TaxService) GetCalculation(ctx context.Context, id uuid.UUID) (*responses.TaxCalculationResponse, error) {
	row, err := s.queries.GetTaxCalculation(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(ErrNotFound, "tax calculation %s", id)
		}
		s.logger.Error("Failed to get tax calculation",
			zap.String("calculation_id", id.String()),
			zap.Error(err))
		return nil, errors.Wrap(err, "failed to retrieve tax calculation")
	}

	record, err := RecordFromRow(row)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode tax calculation %s", id)
	}

	// The breakdown is not stored, so it can only be rebuilt from the tables
	// that produced the record.
	if record.TablesVersion != s.tables.Version() {
		s.logger.Debug("Omitting breakdown for calculation from other tables",
			zap.String("calculation_id", id.String()),
			zap.String("record_tables_version", record.TablesVersion),
			zap.String("tables_version", s.tables.Version()))
		resp := s.buildResponse(record, nil)
		return &resp, nil
	}

	recomputed := taxengine.ComputeTax(taxengine.TaxInput{
		Income:               record.Income,
		FilingStatus:         taxengine.FilingStatus(record.FilingStatus),
		State:                record.State,
		StandardDeduction:    record.StandardDeduction,
		AdditionalDeductions: record.AdditionalDeductions,
	}, s.tables.BracketsFor(record.FilingStatus), s.tables.StateRateOrZero(record.State))

	resp := s.buildResponse(record, recomputed.Breakdown)
	return &resp, nil
}

func (s *TaxService) buildInput(p params.CalculateTaxParams) (taxengine.TaxInput, error) {
	status, ok := taxengine.ParseFilingStatus(p.FilingStatus)
	if !ok {
		return taxengine.TaxInput{}, newValidationError("filingStatus",
			"must be one of single, married, headOfHousehold, got %q", p.FilingStatus)
	}

	state := strings.ToUpper(strings.TrimSpace(p.State))
	if !s.tables.HasState(state) {
		return taxengine.TaxInput{}, newValidationError("state", "unknown state code %q", p.State)
	}

	standard := s.tables.StandardDeductionFor(string(status))
	if p.StandardDeduction != nil {
		standard = *p.StandardDeduction
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"income", p.Income},
		{"standardDeduction", standard},
		{"additionalDeductions", p.AdditionalDeductions},
	}
	for _, a := range amounts {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return taxengine.TaxInput{}, newValidationError(a.field, "must be a finite number")
		}
		if a.value < 0 {
			return taxengine.TaxInput{}, newValidationError(a.field, "must be greater than or equal to 0")
		}
	}

	return taxengine.TaxInput{
		Income:               p.Income,
		FilingStatus:         status,
		State:                state,
		StandardDeduction:    standard,
		AdditionalDeductions: p.AdditionalDeductions,
	}, nil
}

func (s *TaxService) buildResponse(record business.TaxCalculationRecord, breakdown []taxengine.BracketTax) responses.TaxCalculationResponse {
	brackets := s.tables.BracketsFor(record.FilingStatus)
	return responses.TaxCalculationResponse{
		ID:                   record.ID.String(),
		Income:               record.Income,
		FilingStatus:         record.FilingStatus,
		State:                record.State,
		StandardDeduction:    record.StandardDeduction,
		AdditionalDeductions: record.AdditionalDeductions,
		FederalTax:           record.FederalTax,
		StateTax:             record.StateTax,
		EffectiveRate:        record.EffectiveRate,
		TaxableIncome:        record.TaxableIncome,
		StateRate:            s.tables.StateRateOrZero(record.State),
		MarginalRate:         taxengine.MarginalRate(brackets, record.TaxableIncome),
		Breakdown:            breakdown,
		TablesVersion:        record.TablesVersion,
		CalculatedAt:         record.CalculatedAt,
	}
}

func clampLimit(limit int32, fallback int) int32 {
	if limit <= 0 {
		return int32(fallback)
	}
	if limit > constants.MaxListLimit {
		return constants.MaxListLimit
	}
	return limit
}

// RecordFromRow converts a stored row back into a history record.
func RecordFromRow(row db.TaxCalculation) (business.TaxCalculationRecord, error) {
	record := business.TaxCalculationRecord{
		ID:            row.ID,
		FilingStatus:  row.FilingStatus,
		State:         row.State,
		TablesVersion: row.TablesVersion.String,
		CalculatedAt:  row.CalculatedAt.Time,
	}

	fields := []struct {
		dst *float64
		src pgtype.Numeric
	}{
		{&record.Income, row.Income},
		{&record.StandardDeduction, row.StandardDeduction},
		{&record.AdditionalDeductions, row.AdditionalDeductions},
		{&record.FederalTax, row.FederalTax},
		{&record.StateTax, row.StateTax},
		{&record.EffectiveRate, row.EffectiveRate},
		{&record.TaxableIncome, row.TaxableIncome},
	}
	for _, f := range fields {
		v, err := helpers.NumericToFloat64(f.src)
		if err != nil {
			return business.TaxCalculationRecord{}, err
		}
		*f.dst = v
	}

	return record, nil
}
