// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"github.com/spf13/cobra"
)

// Persistent flag names read by PreRunLoad.
const (
	FlagConfig  = "config"
	FlagLang    = "lang"
	FlagVerbose = "verbose"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's
// context, returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, ErrNotLoaded
	}
	return ctx, nil
}

// PreRunLoad is a PersistentPreRunE function that loads the session from
// the command's flags and stores it in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := Load(cmd.Context(), Options{
		ConfigPath: flagValue(cmd, FlagConfig),
		Language:   flagValue(cmd, FlagLang),
		Verbose:    flagValue(cmd, FlagVerbose) == "true",
		LogOutput:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

func flagValue(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}
