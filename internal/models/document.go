package models

// IDField is the key under which every stored document carries its identifier
const IDField = "_id"

// CreatedAtField is the insertion timestamp added by the document store
const CreatedAtField = "created_at"

// Document is a stored form as returned to callers. The identifier under
// IDField is always a plain string.
type Document map[string]any

// ID returns the document identifier
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// SubmissionResponse acknowledges a stored form
type SubmissionResponse struct {
	Status  string `json:"status" example:"ok"`
	ID      string `json:"id" example:"6650f1c2a4b5c6d7e8f90123"`
	Message string `json:"message" example:"Anfrage erhalten. Unser Team meldet sich."`
}

// RecentDocumentsResponse wraps a list of recent documents
type RecentDocumentsResponse struct {
	Items []Document `json:"items"`
}

// MessageResponse is a plain informational payload
type MessageResponse struct {
	Message string `json:"message"`
}
