// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/visual"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

const schema = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="order">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="line">
          <xs:complexType>
            <xs:sequence><xs:element name="sku" type="xs:string"/></xs:sequence>
          </xs:complexType>
        </xs:element>
        <xs:element name="note" type="xs:string" minOccurs="0"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
  <xs:element name="status">
    <xs:simpleType>
      <xs:restriction base="xs:string"><xs:enumeration value="open"/></xs:restriction>
    </xs:simpleType>
  </xs:element>
</xs:schema>`

func newModel(t *testing.T) Model {
	t.Helper()
	s, err := lang.New()
	require.NoError(t, err)
	parsed, err := xsd.ParseBytes([]byte(schema))
	require.NoError(t, err)
	return New("order", visual.New(s).Render(parsed), s)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_StartsCollapsed(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, []string{"order", "status"}, m.Visible())
	assert.Equal(t, "order", m.Selected().Name)
}

func TestModel_Toggle(t *testing.T) {
	m := newModel(t)

	m = press(t, m, keyEnter)
	assert.Equal(t, []string{"order", "line", "note", "status"}, m.Visible())

	m = press(t, m, keyDown, keySpace)
	assert.Equal(t, []string{"order", "line", "sku", "note", "status"}, m.Visible())

	m = press(t, m, keyUp, keyEnter)
	assert.Equal(t, []string{"order", "status"}, m.Visible())
	assert.Equal(t, "order", m.Selected().Name)
}

func TestModel_ToggleLeafIsNoop(t *testing.T) {
	m := press(t, newModel(t), keyDown, keyEnter)
	assert.Equal(t, []string{"order", "status"}, m.Visible())
	assert.Equal(t, "status", m.Selected().Name)
}

func TestModel_ExpandAndCollapseAll(t *testing.T) {
	m := press(t, newModel(t), runes("a"))
	assert.Equal(t, []string{"order", "line", "sku", "note", "status"}, m.Visible())

	m = press(t, m, keyDown, keyDown, runes("c"))
	assert.Equal(t, []string{"order", "status"}, m.Visible())
	assert.Equal(t, "order", m.Selected().Name, "cursor moves to the visible ancestor")
}

func TestModel_CursorBounds(t *testing.T) {
	m := press(t, newModel(t), keyUp)
	assert.Equal(t, "order", m.Selected().Name)

	m = press(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, "status", m.Selected().Name)
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := newModel(t).Update(k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_View(t *testing.T) {
	m := press(t, newModel(t), runes("a"), keyDown, keyDown, keyDown)
	view := m.View()

	assert.Contains(t, view, "order")
	assert.Contains(t, view, "▾")
	assert.Contains(t, view, "(not required)")
	assert.Contains(t, view, "Basic or unknown type string [0..1]")
	assert.Contains(t, view, "quit")
}

func TestModel_Scrolls(t *testing.T) {
	m := press(t, newModel(t), runes("a"))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: detailsHeight + 5})
	m = next.(Model)
	assert.Equal(t, 3, m.listHeight())

	m = press(t, m, keyDown, keyDown, keyDown, keyDown)
	assert.Equal(t, "status", m.Selected().Name)
	assert.Equal(t, 2, m.offset)
}

func TestModel_Empty(t *testing.T) {
	s, err := lang.New()
	require.NoError(t, err)
	m := press(t, New("empty", nil, s), keyDown, keyEnter, runes("a"))
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "empty")
}
