// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"github.com/dacolabs/xsdvis/internal/session"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <schema.xsd>",
		Short: "Browse a schema as a collapsible tree",
		Long: `Open an interactive terminal browser over the rendered schema.

Keys: up/down to move, enter or space to toggle children, a to expand all,
c to collapse all, ? for help, q to quit.`,
		Example: `  # Browse a schema
  xsdvis browse purchase-order.xsd`,
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
			doc := translate.NewDocument(args[0], schema, ctx.Strings)
			return tui.Run(cmd.Context(), doc.Name, doc.Nodes, ctx.Strings)
		},
	}
	return cmd
}
