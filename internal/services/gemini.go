package services

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"coverletter/generator/internal/models"
)

type GeminiService interface {
	UploadDocument(ctx context.Context, data []byte, mimeType, displayName string) (*models.UploadedDocument, error)
	GetDocument(ctx context.Context, name string) (*models.UploadedDocument, error)
	DeleteDocument(ctx context.Context, name string) error
	GenerateContent(ctx context.Context, req ContentRequest) (string, error)
}

// ContentRequest is one generate call. Document references an uploaded file;
// InlineData is sent as a bytes part instead.
type ContentRequest struct {
	Model             string
	SystemInstruction string
	Prompt            string
	Document          *models.UploadedDocument
	InlineData        []byte
	InlineMIMEType    string
}

type geminiService struct {
	client *genai.Client
}

func NewGeminiService(apiKey string) (GeminiService, error) {
	return newGeminiService(apiKey, genai.HTTPOptions{})
}

func newGeminiService(apiKey string, httpOptions genai.HTTPOptions) (GeminiService, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{client: client}, nil
}

// UploadDocument implements GeminiService.
func (g *geminiService) UploadDocument(ctx context.Context, data []byte, mimeType, displayName string) (*models.UploadedDocument, error) {
	file, err := g.client.Files.Upload(ctx, bytes.NewReader(data), &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}
	return toUploadedDocument(file), nil
}

// GetDocument implements GeminiService.
func (g *geminiService) GetDocument(ctx context.Context, name string) (*models.UploadedDocument, error) {
	file, err := g.client.Files.Get(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", name, err)
	}
	return toUploadedDocument(file), nil
}

// DeleteDocument implements GeminiService.
func (g *geminiService) DeleteDocument(ctx context.Context, name string) error {
	if _, err := g.client.Files.Delete(ctx, name, nil); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", name, err)
	}
	return nil
}

// GenerateContent implements GeminiService.
func (g *geminiService) GenerateContent(ctx context.Context, req ContentRequest) (string, error) {
	var parts []*genai.Part
	switch {
	case req.Document != nil:
		parts = append(parts, genai.NewPartFromURI(req.Document.URI, req.Document.MIMEType))
	case len(req.InlineData) > 0:
		parts = append(parts, genai.NewPartFromBytes(req.InlineData, req.InlineMIMEType))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		log.Println("❌ Gemini API returned nil response")
		return "", nil
	}

	log.Printf("📊 Gemini response received")
	return resp.Text(), nil
}

func toUploadedDocument(file *genai.File) *models.UploadedDocument {
	if file == nil {
		return nil
	}
	return &models.UploadedDocument{
		Name:     file.Name,
		URI:      file.URI,
		MIMEType: file.MIMEType,
		State:    models.DocumentState(file.State),
	}
}
