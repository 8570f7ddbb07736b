package services

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrResumeNotFound     = errors.New("resume file not found")
	ErrResumeParse        = errors.New("failed to parse resume")
	ErrResumeFetch        = errors.New("failed to fetch remote resume")
	ErrBackendRequest     = errors.New("generation backend request failed")
	ErrDocumentProcessing = errors.New("document processing failed")
	ErrPollTimeout        = errors.New("document processing timed out")
	ErrEmptyResponse      = errors.New("empty response from generation backend")
	ErrValidation         = errors.New("invalid request")
	ErrRender             = errors.New("failed to render cover letter")
	ErrArtifactNotFound   = errors.New("file not found")
	ErrSystemInstruction  = errors.New("failed to load system instruction")
)

// Error kinds returned to API callers.
const (
	KindNotFound                 = "not_found"
	KindExtractionFailure        = "extraction_failure"
	KindNetworkFailure           = "network_failure"
	KindBackendProcessingFailure = "backend_processing_failure"
	KindTimeoutExceeded          = "timeout_exceeded"
	KindEmptyResponse            = "empty_response"
	KindValidationFailure        = "validation_failure"
	KindRenderFailure            = "render_failure"
	KindInternal                 = "internal"
)

// ErrorKind classifies err into one of the Kind constants.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidationFailure
	case errors.Is(err, ErrResumeNotFound), errors.Is(err, ErrArtifactNotFound):
		return KindNotFound
	case errors.Is(err, ErrResumeParse):
		return KindExtractionFailure
	case errors.Is(err, ErrDocumentProcessing):
		return KindBackendProcessingFailure
	case errors.Is(err, ErrPollTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindTimeoutExceeded
	case errors.Is(err, ErrEmptyResponse):
		return KindEmptyResponse
	case errors.Is(err, ErrResumeFetch), errors.Is(err, ErrBackendRequest):
		return KindNetworkFailure
	case errors.Is(err, ErrRender):
		return KindRenderFailure
	default:
		return KindInternal
	}
}
