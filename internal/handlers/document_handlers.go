package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taxpro/taxpro-api/internal/interfaces"
	"github.com/taxpro/taxpro-api/internal/middleware"
	"github.com/taxpro/taxpro-api/internal/types/api/params"
	"github.com/taxpro/taxpro-api/internal/types/api/requests"
	"github.com/taxpro/taxpro-api/internal/types/api/responses"
	"go.uber.org/zap"
)

// DocumentHandler accepts captured tax documents and lists their metadata.
type DocumentHandler struct {
	common          *CommonServices
	documentService interfaces.DocumentService
}

// NewDocumentHandler creates a handler with interface dependencies
func NewDocumentHandler(common *CommonServices, documentService interfaces.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		common:          common,
		documentService: documentService,
	}
}

type (
	UploadDocumentRequest = requests.UploadDocumentRequest
	DocumentResponse      = responses.DocumentResponse
)

// UploadDocument godoc
// @Summary Upload a scanned tax document
// @Description Accepts an image or PDF as a base64 data URL and stores its metadata.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body UploadDocumentRequest true "Captured document"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	var req UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	doc, err := h.documentService.SaveScannedDocument(c.Request.Context(), params.SaveDocumentParams{
		Image:    req.Image,
		Category: req.Category,
	})
	if err != nil {
		handleServiceError(c, err, "Document not found")
		return
	}

	sendSuccess(c, http.StatusCreated, doc)
}

// ListDocuments godoc
// @Summary List recent documents
// @Description Newest first. A storage failure is logged and an empty list is returned.
// @Tags documents
// @Produce json
// @Param limit query int false "Maximum number of documents (default 20, max 100)"
// @Success 200 {array} DocumentResponse
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.documentService.ListRecentDocuments(c.Request.Context(), parseLimit(c))
	if err != nil {
		h.common.GetLogger().Error("Failed to fetch documents",
			zap.String("correlation_id", middleware.GetCorrelationID(c)),
			zap.Error(err))
		sendSuccess(c, http.StatusOK, []DocumentResponse{})
		return
	}
	if docs == nil {
		docs = []DocumentResponse{}
	}
	sendSuccess(c, http.StatusOK, docs)
}

// GetDocument godoc
// @Summary Get document metadata
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid document ID format", err)
		return
	}

	doc, err := h.documentService.GetDocument(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Document not found")
		return
	}
	sendSuccess(c, http.StatusOK, doc)
}
