package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/taxpro/taxpro-api/internal/constants"
	"github.com/taxpro/taxpro-api/internal/db"
	"github.com/taxpro/taxpro-api/internal/logger"
	"github.com/taxpro/taxpro-api/internal/types/api/params"
	"github.com/taxpro/taxpro-api/internal/types/api/responses"
	"go.uber.org/zap"
)

var dataURLPrefix = regexp.MustCompile(`^data:[\w.+-]+/[\w.+-]+(;[\w.+-]+=[\w.+-]+)*;base64,`)

// DocumentService stores metadata for captured tax documents. The image
// itself is inspected but not kept, and the text content is a placeholder
// until OCR exists.
type DocumentService struct {
	queries  db.Querier
	logger   *zap.Logger
	maxBytes int
	now      func() time.Time
}

// NewDocumentService creates a document service. maxBytes <= 0 disables the
// decoded size check.
func NewDocumentService(queries db.Querier, maxBytes int) *DocumentService {
	return &DocumentService{
		queries:  queries,
		logger:   logger.Log,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// SaveScannedDocument decodes the image, detects its type and stores a
// document row named scan_<unix millis><ext>.
func (s *DocumentService) SaveScannedDocument(ctx context.Context, params params.SaveDocumentParams) (*responses.DocumentResponse, error) {
	data, err := decodeImage(params.Image)
	if err != nil {
		return nil, err
	}
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return nil, newValidationError("image", "must be at most %d bytes, got %d", s.maxBytes, len(data))
	}

	mtype := mimetype.Detect(data)
	if !isSupportedDocument(mtype) {
		return nil, newValidationError("image", "unsupported document type %s", mtype.String())
	}

	category := strings.TrimSpace(params.Category)
	if category == "" {
		category = constants.TaxDocumentCategory
	}

	now := s.now().UTC()
	arg := db.CreateDocumentParams{
		ID:           uuid.New(),
		FileName:     fmt.Sprintf("%s%d%s", constants.ScanFilePrefix, now.UnixMilli(), mtype.Extension()),
		FileType:     mtype.String(),
		DocumentDate: pgtype.Timestamptz{Time: now, Valid: true},
		Category:     category,
		Content:      pgtype.Text{String: constants.OCRPlaceholder, Valid: true},
		SizeBytes:    int32(len(data)),
	}

	doc, err := s.queries.CreateDocument(ctx, arg)
	if err != nil {
		s.logger.Error("Failed to store document",
			zap.String("file_name", arg.FileName),
			zap.Error(err))
		return nil, errors.Wrap(err, "failed to save document")
	}

	s.logger.Info("Stored scanned document",
		zap.String("document_id", doc.ID.String()),
		zap.String("file_type", doc.FileType),
		zap.Int32("size_bytes", doc.SizeBytes))

	resp := documentResponse(doc)
	return &resp, nil
}

// GetDocument retrieves one document by id.
func (s *DocumentService) GetDocument(ctx context.Context, id uuid.UUID) (*responses.DocumentResponse, error) {
	doc, err := s.queries.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(ErrNotFound, "document %s", id)
		}
		return nil, errors.Wrap(err, "failed to retrieve document")
	}
	resp := documentResponse(doc)
	return &resp, nil
}

// ListRecentDocuments returns the newest documents first.
func (s *DocumentService) ListRecentDocuments(ctx context.Context, limit int32) ([]responses.DocumentResponse, error) {
	docs, err := s.queries.ListRecentDocuments(ctx, clampLimit(limit, constants.DefaultDocumentsLimit))
	if err != nil {
		s.logger.Error("Failed to list documents", zap.Error(err))
		return nil, errors.Wrap(err, "failed to list documents")
	}

	out := make([]responses.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, documentResponse(doc))
	}
	return out, nil
}

func decodeImage(image string) ([]byte, error) {
	image = strings.TrimSpace(image)
	if image == "" {
		return nil, newValidationError("image", "is required")
	}

	payload := dataURLPrefix.ReplaceAllString(image, "")
	if strings.HasPrefix(payload, "data:") {
		return nil, newValidationError("image", "must be a base64 data URL")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, newValidationError("image", "is not valid base64")
	}
	if len(data) == 0 {
		return nil, newValidationError("image", "is empty")
	}
	return data, nil
}

func isSupportedDocument(mtype *mimetype.MIME) bool {
	return strings.HasPrefix(mtype.String(), "image/") || mtype.Is("application/pdf")
}

func documentResponse(doc db.Document) responses.DocumentResponse {
	return responses.DocumentResponse{
		ID:           doc.ID.String(),
		FileName:     doc.FileName,
		FileType:     doc.FileType,
		DocumentDate: doc.DocumentDate.Time,
		Category:     doc.Category,
		Content:      doc.Content.String,
		SizeBytes:    doc.SizeBytes,
		UploadedAt:   doc.UploadedAt.Time,
	}
}
