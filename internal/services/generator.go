package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"coverletter/generator/internal/config"
	"coverletter/generator/internal/metrics"
	"coverletter/generator/internal/models"
)

const (
	resumeMIMEType     = "application/pdf"
	cleanupTimeout     = 10 * time.Second
	uploadedResumeName = "resume.pdf"
)

type LetterGenerator interface {
	Generate(ctx context.Context, in GenerationInput) (string, error)
}

type GenerationInput struct {
	Prompt            string
	SystemInstruction string
	Model             string
	Document          []byte
	MIMEType          string
}

type PollPolicy struct {
	Interval time.Duration
	MaxPolls int
}

type letterGenerator struct {
	gemini   GeminiService
	strategy string
	poll     PollPolicy
	retry    RetryPolicy
	metrics  *metrics.Metrics
	sleep    sleepFunc
}

func NewLetterGenerator(
	gemini GeminiService,
	strategy string,
	poll PollPolicy,
	retry RetryPolicy,
	m *metrics.Metrics,
) LetterGenerator {
	return &letterGenerator{
		gemini:   gemini,
		strategy: strategy,
		poll:     poll,
		retry:    retry,
		metrics:  m,
		sleep:    sleepContext,
	}
}

// Generate implements LetterGenerator.
func (g *letterGenerator) Generate(ctx context.Context, in GenerationInput) (string, error) {
	if in.MIMEType == "" {
		in.MIMEType = resumeMIMEType
	}

	req := ContentRequest{
		Model:             in.Model,
		SystemInstruction: in.SystemInstruction,
		Prompt:            in.Prompt,
	}

	if g.strategy == config.StrategyInline {
		req.InlineData = in.Document
		req.InlineMIMEType = in.MIMEType
		return g.generate(ctx, req)
	}

	doc, err := g.upload(ctx, in.Document, in.MIMEType)
	if err != nil {
		return "", err
	}
	defer g.cleanup(ctx, doc)

	doc, err = g.waitForDocument(ctx, doc)
	if err != nil {
		return "", err
	}

	req.Document = doc
	return g.generate(ctx, req)
}

func (g *letterGenerator) upload(ctx context.Context, data []byte, mimeType string) (*models.UploadedDocument, error) {
	log.Println("📤 Uploading resume to Gemini...")

	var doc *models.UploadedDocument
	err := withRetry(ctx, g.retry, "document upload", g.sleep, func() error {
		var uploadErr error
		doc, uploadErr = g.gemini.UploadDocument(ctx, data, mimeType, uploadedResumeName)
		return uploadErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendRequest, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: upload returned no document", ErrBackendRequest)
	}

	log.Printf("✅ Uploaded %s (state %s)", doc.Name, doc.State)
	return doc, nil
}

// waitForDocument polls while the document is PROCESSING, at most MaxPolls times.
func (g *letterGenerator) waitForDocument(ctx context.Context, doc *models.UploadedDocument) (*models.UploadedDocument, error) {
	polls := 0
	for doc.State == models.DocumentStateProcessing {
		if polls >= g.poll.MaxPolls {
			return nil, fmt.Errorf("%w: %s still processing after %d polls", ErrPollTimeout, doc.Name, polls)
		}

		if err := g.sleep(ctx, g.poll.Interval); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %w", ErrPollTimeout, err)
			}
			return nil, err
		}

		name := doc.Name
		err := withRetry(ctx, g.retry, "document status", g.sleep, func() error {
			var getErr error
			doc, getErr = g.gemini.GetDocument(ctx, name)
			return getErr
		})
		polls++
		g.metrics.IncUploadPolls()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBackendRequest, err)
		}
		if doc == nil {
			return nil, fmt.Errorf("%w: status check returned no document", ErrBackendRequest)
		}

		log.Printf("🔄 Poll %d: %s is %s", polls, doc.Name, doc.State)
	}

	if doc.State == models.DocumentStateFailed {
		return nil, fmt.Errorf("%w: %s", ErrDocumentProcessing, doc.Name)
	}

	return doc, nil
}

func (g *letterGenerator) generate(ctx context.Context, req ContentRequest) (string, error) {
	log.Printf("🤖 Generating cover letter with %s...", req.Model)

	var text string
	err := withRetry(ctx, g.retry, "generate content", g.sleep, func() error {
		var genErr error
		text, genErr = g.gemini.GenerateContent(ctx, req)
		return genErr
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackendRequest, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}

	log.Printf("✅ Cover letter generated: %d characters", len(text))
	return text, nil
}

// cleanup deletes the uploaded file even when the request context is done.
func (g *letterGenerator) cleanup(ctx context.Context, doc *models.UploadedDocument) {
	if doc == nil || doc.Name == "" {
		return
	}

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := g.gemini.DeleteDocument(cleanupCtx, doc.Name); err != nil {
		log.Printf("⚠️  Failed to delete uploaded document %s: %v", doc.Name, err)
	}
}
