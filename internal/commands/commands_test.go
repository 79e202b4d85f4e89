// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dacolabs/xsdvis/internal/config"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/translate/html"
	"github.com/dacolabs/xsdvis/internal/translate/markdown"
	"github.com/dacolabs/xsdvis/internal/version"
	"github.com/dacolabs/xsdvis/internal/xsd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="order" type="Order"/>
  <xs:complexType name="Order">
    <xs:sequence>
      <xs:element name="id" type="xs:string"/>
      <xs:element name="note" type="Missing" minOccurs="0"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`

// setup switches to an empty directory holding order.xsd.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "order.xsd")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	translators := translate.Register{}
	translators.Add(&html.Translator{})
	translators.Add(&markdown.Translator{})

	var out bytes.Buffer
	root := NewRootCmd(translators)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRender_ToDirectory(t *testing.T) {
	path := setup(t)
	outDir := filepath.Join(t.TempDir(), "docs")

	out, err := execute(t, "render", path, "--format", "markdown", "--output", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Schema rendered")

	data, err := os.ReadFile(filepath.Join(outDir, "order.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "**order**")
	assert.Contains(t, string(data), "**id**")
}

func TestRender_ToStdout(t *testing.T) {
	path := setup(t)

	out, err := execute(t, "render", path, "--format", "markdown", "--output", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "**order**")
	assert.NotContains(t, out, "Schema rendered")
}

func TestRender_ConfigDefaults(t *testing.T) {
	path := setup(t)
	cfg := config.Default()
	cfg.Format = "markdown"
	cfg.Output = "site"
	require.NoError(t, cfg.Save(config.FileName))

	_, err := execute(t, "render", path)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join("site", "order.md"))
}

func TestRender_Errors(t *testing.T) {
	path := setup(t)

	_, err := execute(t, "render", path, "--format", "pdf")
	require.ErrorContains(t, err, `unsupported format "pdf"`)

	_, err = execute(t, "render", "--non-interactive")
	require.ErrorContains(t, err, "requires a schema path")

	_, err = execute(t, "render", "missing.xsd", "--output", "-")
	require.ErrorContains(t, err, "failed to read schema")

	_, err = execute(t, "render", path, "--lang", "ja")
	require.Error(t, err)
}

func TestRecursiveSchemaIsRejected(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "tree.xsd")
	require.NoError(t, os.WriteFile(path, []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="node" type="Node"/>
  <xs:complexType name="Node">
    <xs:sequence><xs:element name="child" type="Node"/></xs:sequence>
  </xs:complexType>
</xs:schema>`), 0o600))

	for _, args := range [][]string{
		{"render", path, "--format", "markdown", "--output", "-"},
		{"describe", path},
	} {
		_, err := execute(t, args...)
		require.ErrorIs(t, err, xsd.ErrRecursive, args[0])
		assert.ErrorContains(t, err, "Node", args[0])
	}
}

func TestDescribe(t *testing.T) {
	path := setup(t)

	out, err := execute(t, "describe", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Elements: order")
	assert.Contains(t, out, "Named types: Order")
	assert.Contains(t, out, "Nodes: 3")
	assert.Contains(t, out, "Depth: 2")
	assert.Contains(t, out, "Unresolved references: Missing, string")
	assert.Contains(t, out, "Target namespace: (none)")
}

func TestInit(t *testing.T) {
	setup(t)

	out, err := execute(t, "init", "--language", "ru", "--format", "markdown", "--output", "docs", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialization completed")

	cfg, err := config.Load(config.FileName)
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.Language)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "docs", cfg.Output)

	_, err = execute(t, "init", "--non-interactive")
	require.ErrorContains(t, err, "already exists")
}

func TestInit_RejectsUnknownValues(t *testing.T) {
	setup(t)

	_, err := execute(t, "init", "--format", "pdf", "--non-interactive")
	require.Error(t, err)

	_, err = execute(t, "init", "--language", "ja", "--non-interactive")
	require.ErrorContains(t, err, "unsupported language")
	assert.NoFileExists(t, config.FileName)
}

func TestVersion(t *testing.T) {
	setup(t)

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Short()+"\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xsdvis version")
}
