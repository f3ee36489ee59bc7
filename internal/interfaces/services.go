package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/taxpro/taxpro-api/internal/taxengine"
	"github.com/taxpro/taxpro-api/internal/types/api/params"
	"github.com/taxpro/taxpro-api/internal/types/api/responses"
	"github.com/taxpro/taxpro-api/internal/types/business"
)

// TaxService handles tax estimates, table lookups and calculation history
type TaxService interface {
	CalculateTax(ctx context.Context, params params.CalculateTaxParams) (*responses.TaxCalculationResponse, error)
	GetTaxBrackets(filingStatus string) taxengine.BracketTable
	GetStateRate(state string) responses.StateRateResponse
	ListStateRates() []responses.StateRateResponse
	ListCalculationHistory(ctx context.Context, limit int32) ([]responses.TaxCalculationResponse, error)
	GetCalculation(ctx context.Context, id uuid.UUID) (*responses.TaxCalculationResponse, error)
}

// DocumentService handles scanned document metadata
type DocumentService interface {
	SaveScannedDocument(ctx context.Context, params params.SaveDocumentParams) (*responses.DocumentResponse, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*responses.DocumentResponse, error)
	ListRecentDocuments(ctx context.Context, limit int32) ([]responses.DocumentResponse, error)
}

// HistoryRecorder persists a calculation snapshot. Implementations may write
// synchronously or hand the record to a queue.
type HistoryRecorder interface {
	Record(ctx context.Context, record business.TaxCalculationRecord) error
}
