package responses

// ErrorResponse is returned by every handler error path.
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SuccessResponse wraps a plain message.
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string `json:"status"`
	Stage         string `json:"stage,omitempty"`
	TaxYear       int    `json:"taxYear,omitempty"`
	TablesVersion string `json:"tablesVersion,omitempty"`
	Database      string `json:"database,omitempty"`
}
