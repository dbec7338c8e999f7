package cmd

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/componentry/htmlgen"
	"github.com/componentry/htmlgen/pkg/constants"
	"github.com/componentry/htmlgen/pkg/errors"
	"github.com/componentry/htmlgen/pkg/logging"
)

var (
	outputPath    string
	timeout       time.Duration
	baseURL       string
	elementsURL   string
	attributesURL string
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the rust element and attribute module",
	Long: `Generate scrapes the element and attribute reference tables, verifies each
documentation link, cross-links applicability, and writes the generated rust
module to the output path (stdout by default).

Unreachable documentation links degrade to a placeholder; a reference table
whose cross-references no longer resolve aborts the run.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "-",
		`Output file path ("-" for stdout)`)
	generateCmd.Flags().DurationVar(&timeout, "timeout", constants.DefaultHTTPTimeout,
		"HTTP request timeout")
	generateCmd.Flags().StringVar(&baseURL, "base-url", constants.MDNBaseURL,
		"Base URL documentation routes resolve against")
	generateCmd.Flags().StringVar(&elementsURL, "elements-url", constants.MDNElementsURL,
		"Element reference table page")
	generateCmd.Flags().StringVar(&attributesURL, "attributes-url", constants.MDNAttributesURL,
		"Attribute reference table page")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log := logging.Default()

	var w io.Writer = os.Stdout
	if outputPath != "" && outputPath != "-" {
		f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
		if err != nil {
			return errors.WrapIO("create", outputPath, err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				log.Error().Err(cerr).Str("path", outputPath).Msg("Failed to close output file")
			}
		}()
		w = f
	}

	pipeline, err := htmlgen.New(
		htmlgen.WithWriter(w),
		htmlgen.WithTimeout(timeout),
		htmlgen.WithBaseURL(baseURL),
		htmlgen.WithElementsURL(elementsURL),
		htmlgen.WithAttributesURL(attributesURL),
		htmlgen.WithLogger(log),
	)
	if err != nil {
		return err
	}

	if err := pipeline.Generate(cmd.Context()); err != nil {
		log.Error().Err(err).Msg("Generation failed")
		return err
	}
	return nil
}
