// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/xsdvis/internal/commands"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/translate/avro"
	"github.com/dacolabs/xsdvis/internal/translate/gotypes"
	"github.com/dacolabs/xsdvis/internal/translate/html"
	"github.com/dacolabs/xsdvis/internal/translate/jsontree"
	"github.com/dacolabs/xsdvis/internal/translate/markdown"
	"github.com/dacolabs/xsdvis/internal/translate/protobuf"
	"github.com/dacolabs/xsdvis/internal/translate/schema"
	"github.com/dacolabs/xsdvis/internal/translate/text"
	"github.com/dacolabs/xsdvis/internal/translate/yamltree"
)

// RegisterTranslators returns every output format the CLI supports.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&html.Translator{})
	translators.Add(&markdown.Translator{})
	translators.Add(&text.Translator{})
	translators.Add(&jsontree.Translator{})
	translators.Add(&yamltree.Translator{})
	translators.Add(&schema.Translator{})
	translators.Add(&gotypes.Translator{})
	translators.Add(&avro.Translator{})
	translators.Add(&protobuf.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, args).
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(RegisterTranslators())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
