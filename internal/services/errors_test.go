package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: jobDescription is required", ErrValidation), KindValidationFailure},
		{pkgerrors.WithStack(fmt.Errorf("%w: resume.pdf", ErrResumeNotFound)), KindNotFound},
		{ErrArtifactNotFound, KindNotFound},
		{ErrResumeParse, KindExtractionFailure},
		{ErrDocumentProcessing, KindBackendProcessingFailure},
		{ErrPollTimeout, KindTimeoutExceeded},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), KindTimeoutExceeded},
		{fmt.Errorf("%w: %w", ErrBackendRequest, context.DeadlineExceeded), KindTimeoutExceeded},
		{ErrEmptyResponse, KindEmptyResponse},
		{ErrResumeFetch, KindNetworkFailure},
		{ErrBackendRequest, KindNetworkFailure},
		{ErrRender, KindRenderFailure},
		{ErrSystemInstruction, KindInternal},
		{errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
