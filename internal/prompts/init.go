// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(language, format, output *string, languages, formats []string) error {
	langOptions := make([]huh.Option[string], len(languages))
	for i, l := range languages {
		langOptions[i] = huh.NewOption(l, l)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display language").
				Options(langOptions...).
				Value(language),
			FormatSelect(format, formats),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder(".").
				Validate(requiredValidator("output directory")).
				Value(output),
		),
	).WithTheme(Theme()).Run()
}
