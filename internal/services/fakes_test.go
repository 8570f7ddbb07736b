package services

import (
	"context"
	"time"

	"coverletter/generator/internal/models"
)

func noSleep(context.Context, time.Duration) error { return nil }

type fakeGemini struct {
	uploadState  models.DocumentState
	uploadErr    error
	states       []models.DocumentState
	generateText string
	generateErrs []error

	uploads   int
	gets      int
	deletes   int
	generates int
	calls     []string
	request   ContentRequest
}

func (f *fakeGemini) UploadDocument(_ context.Context, _ []byte, mimeType, _ string) (*models.UploadedDocument, error) {
	f.uploads++
	f.calls = append(f.calls, "upload")
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &models.UploadedDocument{
		Name:     "files/resume",
		URI:      "https://example.com/files/resume",
		MIMEType: mimeType,
		State:    f.uploadState,
	}, nil
}

func (f *fakeGemini) GetDocument(_ context.Context, name string) (*models.UploadedDocument, error) {
	f.gets++
	f.calls = append(f.calls, "get")

	state := models.DocumentStateProcessing
	if len(f.states) > 0 {
		state = f.states[0]
		f.states = f.states[1:]
	}
	return &models.UploadedDocument{
		Name:     name,
		URI:      "https://example.com/" + name,
		MIMEType: resumeMIMEType,
		State:    state,
	}, nil
}

func (f *fakeGemini) DeleteDocument(context.Context, string) error {
	f.deletes++
	f.calls = append(f.calls, "delete")
	return nil
}

func (f *fakeGemini) GenerateContent(_ context.Context, req ContentRequest) (string, error) {
	f.generates++
	f.calls = append(f.calls, "generate")
	f.request = req
	if len(f.generateErrs) > 0 {
		err := f.generateErrs[0]
		f.generateErrs = f.generateErrs[1:]
		if err != nil {
			return "", err
		}
	}
	return f.generateText, nil
}

type fakeParser struct {
	text string
	err  error
}

func (p *fakeParser) ExtractText([]byte) (string, error) {
	return p.text, p.err
}

func (p *fakeParser) ExtractTextWithMetaData([]byte) (*PDFContent, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &PDFContent{Text: p.text, PageCount: 1}, nil
}
