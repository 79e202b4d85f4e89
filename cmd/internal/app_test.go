// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTranslators(t *testing.T) {
	translators := RegisterTranslators()
	assert.Equal(t, []string{"avro", "gotypes", "html", "json", "jsonschema", "markdown", "protobuf", "text", "yaml"}, translators.Available())

	for _, name := range translators.Available() {
		tr, err := translators.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, tr.Name())
		assert.NotEmpty(t, tr.FileExtension())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	err := Run(context.Background(), []string{"frobnicate"})
	assert.ErrorContains(t, err, "unknown command")
}
