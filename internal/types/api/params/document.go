package params

// SaveDocumentParams contains a captured document image.
type SaveDocumentParams struct {
	Image    string
	Category string
}
