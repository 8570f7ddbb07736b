package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"coverletter/generator/internal/bootstrap"
	"coverletter/generator/internal/config"
	"coverletter/generator/internal/models"
)

//nolint:gochecknoglobals // Cobra boilerplate
var customInstructions string

//nolint:gochecknoglobals // Cobra boilerplate
var model string

//nolint:gochecknoglobals // Cobra boilerplate
var renderPDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate <jd-file>",
	Short: "Generate a cover letter for a job description",
	Long: `Generate a cover letter body for the job description in <jd-file>.
Use "-" to read the job description from stdin.

Example:
  coverletter generate jd.txt --company "Acme Corp" --name "Jane Doe" --email jane@example.com
  cat jd.txt | coverletter generate - --company "Acme Corp" --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&customInstructions, "instructions", "", "Additional instructions for the model")
	generateCmd.Flags().StringVar(&model, "model", "", "Gemini model (default from GEMINI_MODEL)")
	generateCmd.Flags().BoolVar(&renderPDF, "pdf", false, "Also render the letter to a PDF in OUTPUT_DIR")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	jobDescription, err := readInput(args[0])
	if err != nil {
		err = errors.Wrapf(err, "failed reading job description %s", args[0])
		return err
	}

	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		err = errors.Wrap(err, "failed initializing services")
		return err
	}
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GenerationTimeout)
	defer cancel()

	letter, err := app.CoverLetters.GenerateLetter(ctx, &models.GenerateRequest{
		JobDescription:     strings.TrimSpace(string(jobDescription)),
		CompanyName:        companyName,
		CustomInstructions: customInstructions,
		PersonalInfo:       personalInfo,
		Model:              model,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), letter.CoverLetter)

	if !renderPDF {
		return nil
	}

	rendered, err := app.CoverLetters.RenderLetter(ctx, letter)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "\n✓ Cover letter saved to %s\n", rendered.Path)

	return nil
}
