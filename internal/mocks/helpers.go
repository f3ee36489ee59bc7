package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier bound to t
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockTaxServiceForTest creates a new mock TaxService bound to t
func NewMockTaxServiceForTest(t *testing.T) *MockTaxService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxService(ctrl)
}

// NewMockDocumentServiceForTest creates a new mock DocumentService bound to t
func NewMockDocumentServiceForTest(t *testing.T) *MockDocumentService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockDocumentService(ctrl)
}

// NewMockHistoryRecorderForTest creates a new mock HistoryRecorder bound to t
func NewMockHistoryRecorderForTest(t *testing.T) *MockHistoryRecorder {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockHistoryRecorder(ctrl)
}

// NewMockMessagePublisherForTest creates a new mock MessagePublisher bound to t
func NewMockMessagePublisherForTest(t *testing.T) *MockMessagePublisher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockMessagePublisher(ctrl)
}

// NewMockSecretsClientForTest creates a new mock SecretsClient bound to t
func NewMockSecretsClientForTest(t *testing.T) *MockSecretsClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSecretsClient(ctrl)
}
