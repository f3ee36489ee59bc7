package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name attached to structured logs
	ServiceName = "taxpro-api"

	// Context and header keys
	CorrelationIDHeader = "X-Correlation-ID"
	CorrelationIDKey    = "correlationID"

	// Document defaults for scanned uploads
	TaxDocumentCategory = "tax_document"
	ScanFilePrefix      = "scan_"
	OCRPlaceholder      = "Document content would be extracted via OCR"

	// History listing sizes
	DefaultHistoryLimit   = 10
	DefaultDocumentsLimit = 20
	MaxListLimit          = 100

	// SQS message attributes
	MessageTypeAttribute    = "MessageType"
	TaxCalculationEventType = "tax_calculation.recorded"
)
