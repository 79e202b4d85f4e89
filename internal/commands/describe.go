// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"strconv"
	"strings"

	"github.com/dacolabs/xsdvis/internal/prompts"
	"github.com/dacolabs/xsdvis/internal/session"
	"github.com/dacolabs/xsdvis/internal/visual"
	"github.com/dacolabs/xsdvis/internal/xsd"
	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <schema.xsd>",
		Short: "Show a schema overview",
		Long: `Show a summary of a schema including its namespace, top-level elements,
named types, tree size, and type references that could not be resolved.`,
		Example: `  # Describe a schema
  xsdvis describe purchase-order.xsd`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			schema, err := loadSchema(ctx, args[0])
			if err != nil {
				return err
			}
			prompts.FprintResult(cmd.OutOrStdout(), describeFields(ctx, schema), "")
			return nil
		},
	}
	return cmd
}

func describeFields(ctx *session.Context, schema *xsd.Schema) []prompts.ResultField {
	nodes := visual.New(ctx.Strings).Render(schema)

	elements := make([]string, len(schema.Structure))
	for i, el := range schema.Structure {
		elements[i] = el.Name
	}

	return []prompts.ResultField{
		{Label: "Namespace prefix", Value: orNone(schema.NamespacePrefix)},
		{Label: "Target namespace", Value: orNone(schema.TargetNamespace)},
		{Label: "Elements", Value: orNone(strings.Join(elements, ", "))},
		{Label: "Named types", Value: orNone(strings.Join(schema.Types.Names(), ", "))},
		{Label: "Nodes", Value: strconv.Itoa(visual.Count(nodes))},
		{Label: "Depth", Value: strconv.Itoa(visual.Depth(nodes))},
		{Label: "Unresolved references", Value: orNone(strings.Join(schema.UnresolvedReferences(), ", "))},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
