package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"coverletter/generator/internal/models"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var companyName string

//nolint:gochecknoglobals // Cobra boilerplate
var personalInfo models.PersonalInfo

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "coverletter",
	Short: "Generate personalized cover letters",
	Long: `coverletter writes a cover letter body for a job description with Gemini,
grounded on your resume and project list, and renders it as a business letter PDF.

Configuration is read from the environment and an optional .env file, the same way
the API server reads it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&companyName, "company", "", "Company name")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&personalInfo.Name, "name", "", "Your full name")
	flags.StringVar(&personalInfo.Email, "email", "", "Your email address")
	flags.StringVar(&personalInfo.Phone, "phone", "", "Your phone number")
	flags.StringVar(&personalInfo.Address, "address", "", "Your postal address")
	flags.StringVar(&personalInfo.LinkedIn, "linkedin", "", "Your LinkedIn profile")
	flags.StringVar(&personalInfo.Website, "website", "", "Your website")
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) (data []byte, err error) {
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		return data, err
	}
	data, err = os.ReadFile(path)
	return data, err
}
