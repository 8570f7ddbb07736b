package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"coverletter/generator/internal/models"
)

const maxResumeBytes = 20 << 20

type ResumeService interface {
	LoadLocal(ctx context.Context) (*models.ResumeArtifact, error)
	FetchRemote(ctx context.Context) ([]byte, error)
}

type resumeService struct {
	localPath  string
	remoteURL  string
	pdfParser  PDFParserService
	httpClient *http.Client
	retry      RetryPolicy
	sleep      sleepFunc
}

func NewResumeService(localPath, remoteURL string, fetchTimeout time.Duration, pdfParser PDFParserService, retry RetryPolicy) ResumeService {
	return &resumeService{
		localPath:  localPath,
		remoteURL:  remoteURL,
		pdfParser:  pdfParser,
		httpClient: &http.Client{Timeout: fetchTimeout},
		retry:      retry,
		sleep:      sleepContext,
	}
}

// LoadLocal reads the bundled resume and extracts its text. A missing file is
// reported as ErrResumeNotFound.
func (s *resumeService) LoadLocal(ctx context.Context) (*models.ResumeArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Printf("📄 Loading resume from: %s", s.localPath)
	data, err := os.ReadFile(s.localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, s.localPath)
		}
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	text, err := s.pdfParser.ExtractText(data)
	if err != nil {
		return nil, err
	}

	return &models.ResumeArtifact{
		Content: data,
		Text:    text,
		Source:  s.localPath,
	}, nil
}

// FetchRemote downloads the resume attachment. Without a configured URL the
// bundled file is used instead.
func (s *resumeService) FetchRemote(ctx context.Context) ([]byte, error) {
	if s.remoteURL == "" {
		data, err := os.ReadFile(s.localPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, s.localPath)
			}
			return nil, fmt.Errorf("failed to read resume: %w", err)
		}
		return data, nil
	}

	log.Printf("🌐 Downloading resume from %s", s.remoteURL)

	var data []byte
	err := withRetry(ctx, s.retry, "resume download", s.sleep, func() error {
		var fetchErr error
		data, fetchErr = s.download(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResumeFetch, err)
	}

	log.Printf("✅ Downloaded resume (%d bytes)", len(data))
	return data, nil
}

func (s *resumeService) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.remoteURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return nil, markRetryable(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResumeBytes))
	if err != nil {
		return nil, markRetryable(fmt.Errorf("failed to read body: %w", err))
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty resume body")
	}

	return data, nil
}
