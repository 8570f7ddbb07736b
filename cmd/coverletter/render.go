package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"coverletter/generator/internal/bootstrap"
	"coverletter/generator/internal/config"
	"coverletter/generator/internal/models"
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render <letter-file>",
	Short: "Render an existing cover letter body to PDF",
	Long: `Render the cover letter body in <letter-file> into the business letter template.
Paragraphs are separated by blank lines. Use "-" to read from stdin.

Example:
  coverletter render letter.txt --company "Acme Corp" --name "Jane Doe"`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	body, err := readInput(args[0])
	if err != nil {
		err = errors.Wrapf(err, "failed reading cover letter %s", args[0])
		return err
	}

	app, err := bootstrap.BuildRenderer(config.Load())
	if err != nil {
		err = errors.Wrap(err, "failed initializing renderer")
		return err
	}

	rendered, err := app.CoverLetters.RenderLetter(context.Background(), &models.GeneratedLetter{
		CoverLetter:  string(body),
		PersonalInfo: personalInfo,
		CompanyName:  companyName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered.Path)
	return nil
}
