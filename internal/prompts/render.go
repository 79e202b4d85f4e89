// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// FormatSelect returns a select field for choosing the output format.
func FormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunRenderForm asks for the schema path and output format. Fields that
// already hold a value are skipped; the form does not run when both are set.
func RunRenderForm(path, format *string, formats []string) error {
	askPath := *path == ""
	askFormat := *format == ""
	if !askPath && !askFormat {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema file").
				Placeholder("schema.xsd").
				Validate(schemaFileValidator).
				Value(path),
		).WithHideFunc(func() bool { return !askPath }),
		huh.NewGroup(
			FormatSelect(format, formats),
		).WithHideFunc(func() bool { return !askFormat }),
	).WithTheme(Theme()).Run()
}
