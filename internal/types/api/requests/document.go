package requests

// UploadDocumentRequest carries a captured image as a data URL
// ("data:image/jpeg;base64,...") or as bare base64.
type UploadDocumentRequest struct {
	Image    string `json:"image" binding:"required"`
	Category string `json:"category,omitempty"`
}
