// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/xsdvis/internal/config"
	"github.com/dacolabs/xsdvis/internal/prompts"
	"github.com/dacolabs/xsdvis/internal/session"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	language       string
	format         string
	output         string
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an xsdvis.yaml configuration file",
		Long: `Create an xsdvis.yaml configuration file in the current directory with the
default display language, output format, and output directory.`,
		Example: `  # Interactive mode
  xsdvis init

  # Non-interactive
  xsdvis init --language ru --format markdown --output docs --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&opts.language, "language", defaults.Language, "Default display language")
	cmd.Flags().StringVarP(&opts.format, "format", "f", defaults.Format, "Default output format")
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaults.Output, "Default output directory")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New(config.FileName + " already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(
			&opts.language,
			&opts.format,
			&opts.output,
			ctx.Strings.Available(),
			translators.Available(),
		); err != nil {
			return err
		}
	}

	if _, err := translators.Get(opts.format); err != nil {
		return err
	}
	if !ctx.Strings.Clone().SetLanguage(opts.language) {
		return fmt.Errorf("%w: %s", session.ErrUnsupportedLanguage, opts.language)
	}

	cfg := config.Default()
	cfg.Language = opts.language
	cfg.Format = opts.format
	cfg.Output = opts.output
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.FprintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Language", Value: cfg.Language},
		{Label: "Format", Value: cfg.Format},
		{Label: "Output", Value: cfg.Output},
	}, "Initialization completed")
	return nil
}
