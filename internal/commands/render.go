// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/xsdvis/internal/prompts"
	"github.com/dacolabs/xsdvis/internal/session"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/spf13/cobra"
)

// stdoutOutput selects standard output instead of an output directory.
const stdoutOutput = "-"

type renderOptions struct {
	path           string
	format         string
	output         string
	nonInteractive bool
}

func newRenderCmd(translators translate.Register) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [schema.xsd]",
		Short: "Render a schema to a target format",
		Long: fmt.Sprintf(`Render the element structure of an XML Schema document.

The output file is named after the schema and written to the output
directory, or to standard output when the output is "-".

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  xsdvis render

  # Render to HTML in the current directory
  xsdvis render purchase-order.xsd

  # Render markdown in Russian to standard output
  xsdvis render purchase-order.xsd --format markdown --lang ru --output -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.path = args[0]
			}
			return runRender(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `Output directory, or "-" for standard output (default from config)`)
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Fail instead of prompting for missing values")

	return cmd
}

func runRender(cmd *cobra.Command, translators translate.Register, opts *renderOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	path := opts.path
	format := opts.format
	// Prompt only when no schema was given
	if path == "" {
		if opts.nonInteractive {
			return errors.New("non-interactive mode requires a schema path")
		}
		if err := prompts.RunRenderForm(&path, &format, translators.Available()); err != nil {
			return err
		}
	}
	if format == "" {
		format = ctx.Config.Format
	}
	output := opts.output
	if output == "" {
		output = ctx.Config.Output
	}

	translator, err := translators.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(translators.Available(), ", "))
	}

	schema, err := loadSchema(ctx, path)
	if err != nil {
		return err
	}

	doc := translate.NewDocument(path, schema, ctx.Strings)
	data, err := translator.Translate(doc)
	if err != nil {
		return fmt.Errorf("failed to translate %s: %w", path, err)
	}

	if output == stdoutOutput {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outFile := filepath.Join(output, doc.Name+translator.FileExtension())
	if err := os.WriteFile(outFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}

	prompts.FprintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Schema", Value: path},
		{Label: "Format", Value: format},
		{Label: "Output", Value: outFile},
	}, "Schema rendered")
	return nil
}
