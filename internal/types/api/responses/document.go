package responses

import "time"

// DocumentResponse is the stored metadata of a scanned document.
type DocumentResponse struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	FileType     string    `json:"fileType"`
	DocumentDate time.Time `json:"documentDate"`
	Category     string    `json:"category"`
	Content      string    `json:"content,omitempty"`
	SizeBytes    int32     `json:"sizeBytes"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
