// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/xsdvis/internal/session"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xsdvis",
		Short: "Visualize XML Schema documents",
		Long: `Parse XML Schema (XSD) documents and render their element structure
as browsable HTML, markdown, terminal trees, or JSON Schema.`,
		SilenceUsage:      true,
		PersistentPreRunE: session.PreRunLoad,
	}

	rootCmd.PersistentFlags().String(session.FlagConfig, "", "Path to xsdvis.yaml (default: ./xsdvis.yaml)")
	rootCmd.PersistentFlags().String(session.FlagLang, "", "Display language (overrides config)")
	rootCmd.PersistentFlags().BoolP(session.FlagVerbose, "v", false, "Log parser and server diagnostics to stderr")

	rootCmd.AddCommand(
		newRenderCmd(translators),
		newDescribeCmd(),
		newBrowseCmd(),
		newServeCmd(translators),
		newInitCmd(translators),
		newVersionCmd(),
	)

	return rootCmd
}
