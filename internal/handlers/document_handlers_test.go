package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxpro/taxpro-api/internal/services"
	"github.com/taxpro/taxpro-api/internal/types/api/params"
	"go.uber.org/mock/gomock"
)

func TestDocumentHandler_UploadDocument(t *testing.T) {
	const image = "data:image/png;base64,iVBORw0KGgo="

	t.Run("created", func(t *testing.T) {
		env := newTestEnv(t)
		env.docSvc.EXPECT().
			SaveScannedDocument(gomock.Any(), params.SaveDocumentParams{Image: image}).
			Return(&DocumentResponse{ID: uuid.NewString(), FileName: "scan_1.png", Category: "tax_document"}, nil)

		w := env.do(http.MethodPost, "/api/documents", map[string]string{"image": image})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var got DocumentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "scan_1.png", got.FileName)
	})

	t.Run("missing image", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(http.MethodPost, "/api/documents", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported type", func(t *testing.T) {
		env := newTestEnv(t)
		env.docSvc.EXPECT().SaveScannedDocument(gomock.Any(), gomock.Any()).
			Return(nil, &services.ValidationError{Field: "image", Message: "unsupported document type text/plain"})

		w := env.do(http.MethodPost, "/api/documents", map[string]string{"image": "aGVsbG8="})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "image: unsupported document type text/plain", decodeError(t, w).Error)
	})

	t.Run("storage failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.docSvc.EXPECT().SaveScannedDocument(gomock.Any(), gomock.Any()).
			Return(nil, errors.Wrap(errStorage, "failed to save document"))

		w := env.do(http.MethodPost, "/api/documents", map[string]string{"image": image})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDocumentHandler_ListDocuments(t *testing.T) {
	env := newTestEnv(t)
	gomock.InOrder(
		env.docSvc.EXPECT().ListRecentDocuments(gomock.Any(), int32(0)).
			Return([]DocumentResponse{{ID: "1"}}, nil),
		env.docSvc.EXPECT().ListRecentDocuments(gomock.Any(), int32(100)).
			Return(nil, errStorage),
	)

	w := env.do(http.MethodGet, "/api/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got []DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)

	w = env.do(http.MethodGet, "/api/documents?limit=500", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDocumentHandler_GetDocument(t *testing.T) {
	id := uuid.New()
	env := newTestEnv(t)
	env.docSvc.EXPECT().GetDocument(gomock.Any(), id).
		Return(nil, errors.Wrapf(services.ErrNotFound, "document %s", id))

	w := env.do(http.MethodGet, "/api/documents/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Document not found", decodeError(t, w).Error)

	w = env.do(http.MethodGet, "/api/documents/123", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
