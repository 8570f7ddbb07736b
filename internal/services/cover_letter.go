package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pkg/errors"

	"coverletter/generator/internal/config"
	"coverletter/generator/internal/metrics"
	"coverletter/generator/internal/models"
	"coverletter/generator/internal/repositories"
)

type CoverLetterService interface {
	GenerateLetter(ctx context.Context, req *models.GenerateRequest) (*models.GeneratedLetter, error)
	RenderLetter(ctx context.Context, letter *models.GeneratedLetter) (*RenderedLetter, error)
}

type RenderedLetter struct {
	Filename string
	Path     string
	Document *LetterDocument
}

type coverLetterService struct {
	cfg           *config.Config
	resume        ResumeService
	promptBuilder *PromptBuilder
	generator     LetterGenerator
	renderer      PDFRenderer
	storage       StorageService
	genRepo       repositories.GenerationRepository
	metrics       *metrics.Metrics
	now           func() time.Time
}

// NewCoverLetterService wires the pipeline. genRepo and m may be nil.
func NewCoverLetterService(
	cfg *config.Config,
	resume ResumeService,
	promptBuilder *PromptBuilder,
	generator LetterGenerator,
	renderer PDFRenderer,
	storage StorageService,
	genRepo repositories.GenerationRepository,
	m *metrics.Metrics,
) CoverLetterService {
	return &coverLetterService{
		cfg:           cfg,
		resume:        resume,
		promptBuilder: promptBuilder,
		generator:     generator,
		renderer:      renderer,
		storage:       storage,
		genRepo:       genRepo,
		metrics:       m,
		now:           time.Now,
	}
}

func (s *coverLetterService) GenerateLetter(ctx context.Context, req *models.GenerateRequest) (*models.GeneratedLetter, error) {
	start := time.Now()

	model, err := s.resolveModel(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	log.Printf("📝 Generating cover letter for %q (job description %d chars, model %s)",
		req.CompanyName, len(req.JobDescription), model)

	record := s.startRecord(req.CompanyName, model)

	text, err := s.generate(ctx, req, model)
	duration := time.Since(start)
	s.finishRecord(record, err, duration)
	s.metrics.ObserveGeneration(model, outcome(err), duration)

	if err != nil {
		err = errors.WithStack(err)
		log.Printf("❌ Cover letter generation failed: %+v", err)
		return nil, err
	}

	log.Printf("✅ Cover letter ready for %q in %s", req.CompanyName, duration.Round(time.Millisecond))

	return &models.GeneratedLetter{
		CoverLetter:  text,
		PersonalInfo: req.PersonalInfo,
		CompanyName:  req.CompanyName,
	}, nil
}

func (s *coverLetterService) resolveModel(req *models.GenerateRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("%w: request body is required", ErrValidation)
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return "", fmt.Errorf("%w: jobDescription is required", ErrValidation)
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = s.cfg.Gemini.Model
	}
	if !s.cfg.IsModelAllowed(model) {
		return "", fmt.Errorf("%w: model %q is not allowed", ErrValidation, model)
	}
	return model, nil
}

func (s *coverLetterService) generate(ctx context.Context, req *models.GenerateRequest, model string) (string, error) {
	log.Println("📄 Loading resume...")
	resume, err := s.resume.LoadLocal(ctx)
	if err != nil {
		return "", err
	}

	contextText := joinBlocks(
		BuildPersonalInfoContext(req.PersonalInfo),
		BuildResumeContext(resume.Text),
	)
	projectsText := LoadProjects(s.cfg.Resume.ProjectsPath, s.cfg.Resume.ProjectsDeclaration)

	systemInstruction, err := s.promptBuilder.LoadSystemInstruction()
	if err != nil {
		return "", err
	}

	prompt := s.promptBuilder.BuildCoverLetterPrompt(PromptInput{
		JobDescription:     req.JobDescription,
		CompanyName:        req.CompanyName,
		CustomInstructions: req.CustomInstructions,
		ContextText:        contextText,
		ProjectsText:       projectsText,
	})
	log.Printf("📝 Prompt length: %d characters", len(prompt))

	document, err := s.resume.FetchRemote(ctx)
	if err != nil {
		return "", err
	}

	return s.generator.Generate(ctx, GenerationInput{
		Prompt:            prompt,
		SystemInstruction: systemInstruction,
		Model:             model,
		Document:          document,
		MIMEType:          resumeMIMEType,
	})
}

func (s *coverLetterService) RenderLetter(ctx context.Context, letter *models.GeneratedLetter) (*RenderedLetter, error) {
	if letter == nil {
		return nil, errors.WithStack(fmt.Errorf("%w: coverLetter is required", ErrValidation))
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	doc := Layout(*letter, s.now())
	log.Printf("📄 Laid out %d blocks (%d body paragraphs)", len(doc.Blocks), len(doc.BodyParagraphs()))

	data, err := s.renderer.Render(doc)
	if err != nil {
		s.metrics.ObserveRender(outcome(err))
		err = errors.WithStack(err)
		log.Printf("❌ Failed to render cover letter: %+v", err)
		return nil, err
	}

	filename := CoverLetterFilename(letter.CompanyName)
	path, err := s.storage.Save(filename, data)
	if err != nil {
		err = errors.WithStack(fmt.Errorf("%w: %w", ErrRender, err))
		s.metrics.ObserveRender(outcome(err))
		log.Printf("❌ Failed to save cover letter: %+v", err)
		return nil, err
	}

	s.metrics.ObserveRender(outcome(nil))
	log.Printf("💾 Cover letter saved: %s", path)

	return &RenderedLetter{
		Filename: filename,
		Path:     path,
		Document: doc,
	}, nil
}

func (s *coverLetterService) startRecord(companyName, model string) *models.Generation {
	if s.genRepo == nil {
		return nil
	}

	record := &models.Generation{
		CompanyName: companyName,
		Model:       model,
		Strategy:    s.cfg.Gemini.Strategy,
		Status:      models.StatusProcessing,
	}
	if err := s.genRepo.Create(record); err != nil {
		log.Printf("⚠️  Failed to record generation: %v", err)
		return nil
	}
	return record
}

func (s *coverLetterService) finishRecord(record *models.Generation, genErr error, duration time.Duration) {
	if record == nil {
		return
	}

	var err error
	if genErr != nil {
		err = s.genRepo.MarkFailed(record.ID, genErr.Error(), duration)
	} else {
		err = s.genRepo.MarkCompleted(record.ID, duration)
	}
	if err != nil {
		log.Printf("⚠️  Failed to update generation %s: %v", record.ID, err)
	}
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return ErrorKind(err)
}

func joinBlocks(blocks ...string) string {
	var parts []string
	for _, block := range blocks {
		if block = strings.TrimSpace(block); block != "" {
			parts = append(parts, block)
		}
	}
	return strings.Join(parts, "\n\n")
}
