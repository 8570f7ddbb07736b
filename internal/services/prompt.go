package services

import (
	"fmt"
	"os"
	"strings"
)

type PromptBuilder struct {
	systemInstructionPath string
}

func NewPromptBuilder(systemInstructionPath string) *PromptBuilder {
	return &PromptBuilder{systemInstructionPath: systemInstructionPath}
}

type PromptInput struct {
	JobDescription     string
	CompanyName        string
	CustomInstructions string
	ContextText        string
	ProjectsText       string
}

// BuildCoverLetterPrompt assembles the user prompt. Block order is fixed; empty
// blocks are left out.
func (pb *PromptBuilder) BuildCoverLetterPrompt(in PromptInput) string {
	company := strings.TrimSpace(in.CompanyName)

	application := "a job application"
	companyLine := ""
	if company != "" {
		application += " to " + company
		companyLine = "Company Name: " + company
	}

	header := fmt.Sprintf(`Write a professional cover letter for %s. I need ONLY the main body text of the cover letter.
DO NOT include any formatting, header, address, date, greeting, or signature - those will be added later.
Separate paragraphs with a blank line.

My Resume is attached as a PDF file in the data.`, application)

	blocks := []string{
		header,
		strings.TrimSpace(in.ContextText),
		strings.TrimSpace(in.ProjectsText),
		"Job Description:\n" + strings.TrimSpace(in.JobDescription),
		companyLine,
		strings.TrimSpace(in.CustomInstructions),
	}

	var parts []string
	for _, block := range blocks {
		if block != "" {
			parts = append(parts, block)
		}
	}

	return strings.Join(parts, "\n\n") + "\n"
}

// LoadSystemInstruction reads the system instruction on every call.
func (pb *PromptBuilder) LoadSystemInstruction() (string, error) {
	data, err := os.ReadFile(pb.systemInstructionPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSystemInstruction, err)
	}

	instruction := strings.TrimSpace(string(data))
	if instruction == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrSystemInstruction, pb.systemInstructionPath)
	}
	return instruction, nil
}
