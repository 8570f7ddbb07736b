package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"coverletter/generator/internal/config"
	"coverletter/generator/internal/metrics"
	"coverletter/generator/internal/models"
)

type fakeResume struct {
	artifact *models.ResumeArtifact
	loadErr  error
	fetchErr error
}

func (f *fakeResume) LoadLocal(context.Context) (*models.ResumeArtifact, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.artifact, nil
}

func (f *fakeResume) FetchRemote(context.Context) ([]byte, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.artifact.Content, nil
}

type fakeGenerator struct {
	text  string
	err   error
	calls int
	input GenerationInput
}

func (f *fakeGenerator) Generate(_ context.Context, in GenerationInput) (string, error) {
	f.calls++
	f.input = in
	return f.text, f.err
}

type fakeGenerationRepo struct {
	created   []*models.Generation
	completed []uuid.UUID
	failed    []string
}

func (r *fakeGenerationRepo) Create(g *models.Generation) error {
	g.ID = uuid.New()
	r.created = append(r.created, g)
	return nil
}

func (r *fakeGenerationRepo) MarkCompleted(id uuid.UUID, _ time.Duration) error {
	r.completed = append(r.completed, id)
	return nil
}

func (r *fakeGenerationRepo) MarkFailed(_ uuid.UUID, msg string, _ time.Duration) error {
	r.failed = append(r.failed, msg)
	return nil
}

type pipelineFixture struct {
	service   *coverLetterService
	generator *fakeGenerator
	resume    *fakeResume
	repo      *fakeGenerationRepo
	outputDir string
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	dir := t.TempDir()

	instructionPath := filepath.Join(dir, "system_instruction.txt")
	if err := os.WriteFile(instructionPath, []byte("You write cover letters."), 0644); err != nil {
		t.Fatal(err)
	}
	projectsPath := filepath.Join(dir, "projects.js")
	if err := os.WriteFile(projectsPath, []byte("const projects = [{ name: 'Scheduler' }];"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Gemini: config.GeminiConfig{
			Model:         "gemini-2.5-pro",
			AllowedModels: []string{"gemini-2.5-pro", "gemini-2.5-flash"},
			Strategy:      config.StrategyUpload,
		},
		Resume: config.ResumeConfig{
			ProjectsPath:        projectsPath,
			ProjectsDeclaration: "projects",
		},
	}

	f := &pipelineFixture{
		generator: &fakeGenerator{text: "Paragraph one.\n\nParagraph two."},
		resume: &fakeResume{artifact: &models.ResumeArtifact{
			Content: []byte("%PDF-1.4 resume"),
			Text:    "Go developer",
		}},
		repo:      &fakeGenerationRepo{},
		outputDir: filepath.Join(dir, "output"),
	}

	f.service = NewCoverLetterService(
		cfg,
		f.resume,
		NewPromptBuilder(instructionPath),
		f.generator,
		NewPDFRenderer(true),
		NewStorageService(f.outputDir),
		f.repo,
		metrics.New(),
	).(*coverLetterService)
	f.service.now = func() time.Time { return letterDate }

	return f
}

var janeDoe = models.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"}

func TestGenerateAndRenderLetter(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	letter, err := f.service.GenerateLetter(ctx, &models.GenerateRequest{
		JobDescription: "Build backend services",
		CompanyName:    "Acme",
		PersonalInfo:   janeDoe,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.CoverLetter != "Paragraph one.\n\nParagraph two." || letter.CompanyName != "Acme" || letter.PersonalInfo != janeDoe {
		t.Errorf("unexpected letter %+v", letter)
	}

	in := f.generator.input
	for _, want := range []string{
		"Job Description:\nBuild backend services",
		"Company Name: Acme",
		"About me:\nName: Jane Doe\nEmail: jane@example.com",
		"Resume text:\nGo developer",
		"My Projects:\n[{ name: 'Scheduler' }]",
	} {
		if !strings.Contains(in.Prompt, want) {
			t.Errorf("prompt is missing %q:\n%s", want, in.Prompt)
		}
	}
	if in.Model != "gemini-2.5-pro" || in.SystemInstruction != "You write cover letters." {
		t.Errorf("unexpected generation input %+v", in)
	}
	if string(in.Document) != "%PDF-1.4 resume" {
		t.Errorf("expected resume attachment, got %q", in.Document)
	}

	if len(f.repo.created) != 1 || f.repo.created[0].Status != models.StatusProcessing {
		t.Errorf("expected one processing record, got %+v", f.repo.created)
	}
	if len(f.repo.completed) != 1 || len(f.repo.failed) != 0 {
		t.Errorf("expected the record to complete, got %d completed %d failed", len(f.repo.completed), len(f.repo.failed))
	}

	rendered, err := f.service.RenderLetter(ctx, letter)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if rendered.Filename != "cover_letter_Acme.pdf" {
		t.Errorf("unexpected filename %q", rendered.Filename)
	}
	if len(rendered.Document.BodyParagraphs()) != 2 {
		t.Errorf("expected 2 body paragraphs, got %d", len(rendered.Document.BodyParagraphs()))
	}

	data, err := os.ReadFile(filepath.Join(f.outputDir, "cover_letter_Acme.pdf"))
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("artifact is not a PDF")
	}
}

func TestGenerateLetterValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.GenerateRequest
	}{
		{"nil request", nil},
		{"missing job description", &models.GenerateRequest{CompanyName: "Acme"}},
		{"blank job description", &models.GenerateRequest{JobDescription: "  \n"}},
		{"model not allowed", &models.GenerateRequest{JobDescription: "x", Model: "gpt-4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPipelineFixture(t)

			_, err := f.service.GenerateLetter(context.Background(), tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if f.generator.calls != 0 || len(f.repo.created) != 0 {
				t.Error("validation failures must not reach the backend or the audit log")
			}
		})
	}
}

func TestGenerateLetterUsesRequestedModel(t *testing.T) {
	f := newPipelineFixture(t)

	_, err := f.service.GenerateLetter(context.Background(), &models.GenerateRequest{
		JobDescription: "x",
		Model:          "gemini-2.5-flash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.generator.input.Model != "gemini-2.5-flash" {
		t.Errorf("expected requested model, got %q", f.generator.input.Model)
	}
}

func TestGenerateLetterMissingResume(t *testing.T) {
	f := newPipelineFixture(t)
	f.resume.loadErr = ErrResumeNotFound

	_, err := f.service.GenerateLetter(context.Background(), &models.GenerateRequest{JobDescription: "x"})
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
	if f.generator.calls != 0 {
		t.Error("generation must not run without a resume")
	}
	if len(f.repo.failed) != 1 {
		t.Errorf("expected the record to be marked failed, got %d", len(f.repo.failed))
	}
}

func TestGenerateLetterBackendFailure(t *testing.T) {
	f := newPipelineFixture(t)
	f.generator.err = ErrEmptyResponse

	_, err := f.service.GenerateLetter(context.Background(), &models.GenerateRequest{JobDescription: "x"})
	if ErrorKind(err) != KindEmptyResponse {
		t.Fatalf("expected empty_response, got %q (%v)", ErrorKind(err), err)
	}
}

func TestGenerateLetterWithoutRepository(t *testing.T) {
	f := newPipelineFixture(t)
	f.service.genRepo = nil

	if _, err := f.service.GenerateLetter(context.Background(), &models.GenerateRequest{JobDescription: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderLetterFallbackFilename(t *testing.T) {
	f := newPipelineFixture(t)

	rendered, err := f.service.RenderLetter(context.Background(), &models.GeneratedLetter{CoverLetter: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fallbackPattern.MatchString(rendered.Filename) {
		t.Errorf("unexpected filename %q", rendered.Filename)
	}
	body := rendered.Document.BodyParagraphs()
	if len(body) != 1 || body[0].Role != RolePlaceholder {
		t.Errorf("expected placeholder body, got %+v", body)
	}
}
