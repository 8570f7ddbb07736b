package models

// DocumentState mirrors the processing state reported by the generation backend.
type DocumentState string

const (
	DocumentStateUnspecified DocumentState = "STATE_UNSPECIFIED"
	DocumentStateProcessing  DocumentState = "PROCESSING"
	DocumentStateActive      DocumentState = "ACTIVE"
	DocumentStateFailed      DocumentState = "FAILED"
)

// UploadedDocument is the handle returned after uploading a resume to the backend.
// It only lives for the duration of one request.
type UploadedDocument struct {
	Name     string
	URI      string
	MIMEType string
	State    DocumentState
}

// ResumeArtifact holds the resume binary and its extracted text.
type ResumeArtifact struct {
	Content []byte
	Text    string
	Source  string
}
