// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package xsd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/dacolabs/xsdvis/internal/xmldoc"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaDoc(body string) []byte {
	return []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">` + body + `</xs:schema>`)
}

func mustParse(t *testing.T, data []byte) *Schema {
	t.Helper()
	s, err := ParseBytes(data)
	require.NoError(t, err)
	return s
}

func TestParse_PurchaseOrder(t *testing.T) {
	data, err := os.ReadFile("testdata/purchase-order.xsd")
	require.NoError(t, err)

	s := mustParse(t, data)

	assert.Equal(t, "xs", s.NamespacePrefix)
	assert.Equal(t, "urn:example:po", s.TargetNamespace)

	names := make([]string, len(s.Structure))
	for i, el := range s.Structure {
		names[i] = el.Name
	}
	assert.Equal(t, []string{"shipTo", "title", "items"}, names)
	assert.Equal(t, []string{"Address", "Quantity", "SKU"}, s.Types.Names())

	shipTo := s.Structure[0]
	ref, ok := shipTo.Type.Name()
	assert.True(t, ok)
	assert.Equal(t, "Address", ref)
	assert.Equal(t, "Where the goods go.", shipTo.Annotation)
	assert.Nil(t, shipTo.Attributes)

	address, ok := s.Types["Address"].(*ComplexType)
	require.True(t, ok)
	assert.Equal(t, GroupSequence, address.Kind)
	assert.Equal(t, "A postal address.", address.Annotation)
	require.Len(t, address.Children, 2)
	assert.Equal(t, "street", address.Children[0].Name)
	assert.Equal(t, "city", address.Children[1].Name)

	quantity, ok := s.Types["Quantity"].(*SimpleType)
	require.True(t, ok)
	assert.Equal(t, "positiveInteger", quantity.BaseType)
	assert.Equal(t, "1", quantity.MinInclusive)
	assert.Equal(t, "100", quantity.MaxExclusive)
	assert.Empty(t, quantity.MaxInclusive)
	assert.Nil(t, quantity.Values)
}

func TestParse_InlineSimpleType(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:element name="title">
    <xs:simpleType>
      <xs:restriction base="xs:string">
        <xs:enumeration value="Mr"/>
        <xs:enumeration value="Mrs"/>
      </xs:restriction>
    </xs:simpleType>
  </xs:element>`))

	require.Len(t, s.Structure, 1)
	assert.Empty(t, s.Types)

	el := s.Structure[0]
	assert.Equal(t, "title", el.Name)
	assert.Equal(t, 1, el.MinOccurs)
	assert.Equal(t, Occurs(1), el.MaxOccurs)

	st, ok := el.Type.Owned().(*SimpleType)
	require.True(t, ok)
	assert.Equal(t, []string{"Mr", "Mrs"}, st.Values)
	assert.Equal(t, "string", st.BaseType)
	assert.Equal(t, "(simple type)", st.Name)
}

func TestParse_NamedTypeLastWriteWins(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:simpleType name="Code">
    <xs:restriction base="xs:string"><xs:pattern value="first"/></xs:restriction>
  </xs:simpleType>
  <xs:complexType name="Code">
    <xs:choice><xs:element name="a"/></xs:choice>
  </xs:complexType>`))

	require.Len(t, s.Types, 1)
	ct, ok := s.Types["Code"].(*ComplexType)
	require.True(t, ok, "the later declaration replaces the earlier one")
	assert.Equal(t, GroupChoice, ct.Kind)
}

func TestParse_Occurs(t *testing.T) {
	tests := []struct {
		name    string
		attrs   string
		wantMin int
		wantMax Occurs
	}{
		{name: "defaults", attrs: ``, wantMin: 1, wantMax: 1},
		{name: "unbounded", attrs: `minOccurs="0" maxOccurs="unbounded"`, wantMin: 0, wantMax: Unbounded},
		{name: "numeric", attrs: `minOccurs="2" maxOccurs="5"`, wantMin: 2, wantMax: 5},
		{name: "lenient integers", attrs: `minOccurs=" 3 " maxOccurs="7x"`, wantMin: 3, wantMax: 7},
		{name: "garbage", attrs: `minOccurs="many" maxOccurs="lots"`, wantMin: 0, wantMax: 0},
		{name: "out of range saturates", attrs: `minOccurs="-99999999999999999999" maxOccurs="99999999999999999999"`, wantMin: 0, wantMax: Unbounded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustParse(t, schemaDoc(`<xs:element name="e" type="xs:int" `+tt.attrs+`/>`))
			require.Len(t, s.Structure, 1)
			assert.Equal(t, tt.wantMin, s.Structure[0].MinOccurs)
			assert.Equal(t, tt.wantMax, s.Structure[0].MaxOccurs)
		})
	}
}

func TestParse_GroupingOccursAsymmetry(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:complexType name="Seq">
    <xs:sequence minOccurs="0" maxOccurs="unbounded"><xs:element name="a"/></xs:sequence>
  </xs:complexType>
  <xs:complexType name="Alt">
    <xs:choice minOccurs="0" maxOccurs="3"><xs:element name="a"/></xs:choice>
  </xs:complexType>
  <xs:complexType name="Any">
    <xs:all minOccurs="0"><xs:element name="a"/></xs:all>
  </xs:complexType>`))

	seq := s.Types["Seq"].(*ComplexType)
	assert.Equal(t, 0, seq.MinOccurs)
	assert.True(t, seq.MaxOccurs.IsUnbounded())

	for _, name := range []string{"Alt", "Any"} {
		ct := s.Types[name].(*ComplexType)
		assert.Equal(t, 1, ct.MinOccurs, name)
		assert.Equal(t, Occurs(1), ct.MaxOccurs, name)
	}
}

func TestParse_ComplexTypeChildren(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:element name="empty">
    <xs:complexType>
      <xs:sequence><xs:any/></xs:sequence>
    </xs:complexType>
  </xs:element>
  <xs:element name="bare">
    <xs:complexType/>
  </xs:element>`))

	empty := s.Structure[0].Type.Owned().(*ComplexType)
	assert.Equal(t, GroupSequence, empty.Kind)
	assert.Nil(t, empty.Children)

	bare := s.Structure[1].Type.Owned().(*ComplexType)
	assert.Equal(t, GroupNone, bare.Kind)
	assert.Nil(t, bare.Children)
	assert.Equal(t, "(complex type)", bare.Name)
}

func TestParse_RestrictionLastFacetWins(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:simpleType name="T">
    <xs:restriction base="xs:decimal">
      <xs:pattern value="one"/>
      <xs:minInclusive value="1"/>
      <xs:enumeration value="a"/>
      <xs:pattern value="two"/>
      <xs:minInclusive value="2"/>
      <xs:enumeration value="b"/>
      <xs:maxInclusive value="9"/>
      <xs:minExclusive value="0"/>
    </xs:restriction>
  </xs:simpleType>`))

	st := s.Types["T"].(*SimpleType)
	assert.Equal(t, "two", st.Pattern)
	assert.Equal(t, "2", st.MinInclusive)
	assert.Equal(t, "9", st.MaxInclusive)
	assert.Equal(t, "0", st.MinExclusive)
	assert.Equal(t, []string{"a", "b"}, st.Values)
}

func TestParse_Attributes(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:element name="a" type="xs:string" nillable="true" default="x" xmlns:tns="urn:t"/>
  <xs:element name="b" type="tns:Thing"/>`))

	assert.Equal(t, map[string]string{"nillable": "true", "default": "x"}, s.Structure[0].Attributes)
	assert.Nil(t, s.Structure[1].Attributes)

	ref, _ := s.Structure[1].Type.Name()
	assert.Equal(t, "Thing", ref)
}

func TestParse_InlineTypeReplacesNameReference(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:element name="e" type="Other">
    <xs:complexType><xs:all><xs:element name="x"/></xs:all></xs:complexType>
  </xs:element>`))

	_, isName := s.Structure[0].Type.Name()
	assert.False(t, isName)
	ct, ok := s.Structure[0].Type.Owned().(*ComplexType)
	require.True(t, ok)
	assert.Equal(t, GroupAll, ct.Kind)
}

func TestParse_AnnotationIsTrimmed(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:element name="e">
    <xs:annotation>
      <xs:documentation>
        First line
        second line
      </xs:documentation>
    </xs:annotation>
  </xs:element>`))

	assert.True(t, strings.HasPrefix(s.Structure[0].Annotation, "First line"))
	assert.True(t, strings.HasSuffix(s.Structure[0].Annotation, "second line"))
}

func TestParse_SkipsUnknownNodes(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:import namespace="urn:x"/>
  <xs:attributeGroup name="g"/>
  <xs:element name="only"/>`))

	require.Len(t, s.Structure, 1)
	assert.Empty(t, s.Types)
}

func TestParse_Errors(t *testing.T) {
	t.Run("not a schema", func(t *testing.T) {
		data, err := os.ReadFile("testdata/not-a-schema.xml")
		require.NoError(t, err)

		_, err = ParseBytes(data)
		require.ErrorIs(t, err, ErrNotSchema)

		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "catalog", shapeErr.Name.Local)
	})

	t.Run("schema name in wrong namespace", func(t *testing.T) {
		_, err := ParseBytes([]byte(`<schema xmlns="urn:not-xsd"/>`))
		assert.ErrorIs(t, err, ErrNotSchema)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseBytes([]byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element>`))
		require.ErrorIs(t, err, xmldoc.ErrMalformed)
		assert.NotErrorIs(t, err, ErrNotSchema)
	})
}

func TestUnresolvedReferences(t *testing.T) {
	s := mustParse(t, schemaDoc(`
  <xs:element name="a" type="Missing"/>
  <xs:element name="b" type="Node"/>
  <xs:complexType name="Node">
    <xs:sequence>
      <xs:element name="next" type="Node"/>
      <xs:element name="value" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>`))

	assert.Equal(t, []string{"Missing", "string"}, s.UnresolvedReferences())
}

func TestParse_LogsRedefinition(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Level: hclog.Debug, Output: &buf})

	_, err := ParseBytes(schemaDoc(`<xs:simpleType name="A"/><xs:simpleType name="A"/>`), WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "type redefined")
	assert.Contains(t, buf.String(), "type=A")
}

func TestRecursiveTypes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "self reference",
			body: `<xs:element name="node" type="Node"/>
  <xs:complexType name="Node">
    <xs:sequence><xs:element name="child" type="Node"/></xs:sequence>
  </xs:complexType>`,
			want: []string{"Node"},
		},
		{
			name: "mutual reference through an inline type",
			body: `<xs:element name="a" type="A"/>
  <xs:complexType name="A">
    <xs:sequence>
      <xs:element name="wrap">
        <xs:complexType><xs:sequence><xs:element name="b" type="B"/></xs:sequence></xs:complexType>
      </xs:element>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="B">
    <xs:choice><xs:element name="a" type="A"/></xs:choice>
  </xs:complexType>`,
			want: []string{"A", "B"},
		},
		{
			name: "shared type is not a cycle",
			body: `<xs:element name="x" type="Leaf"/>
  <xs:element name="y" type="Pair"/>
  <xs:complexType name="Pair">
    <xs:sequence>
      <xs:element name="left" type="Leaf"/>
      <xs:element name="right" type="Leaf"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="Leaf">
    <xs:sequence><xs:element name="v" type="xs:string"/></xs:sequence>
  </xs:complexType>`,
			want: []string{},
		},
		{
			name: "unreachable cycle",
			body: `<xs:element name="x" type="xs:string"/>
  <xs:complexType name="Node">
    <xs:sequence><xs:element name="child" type="Node"/></xs:sequence>
  </xs:complexType>`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustParse(t, schemaDoc(tt.body))
			assert.Equal(t, tt.want, s.RecursiveTypes())

			err := s.CheckFinite()
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrRecursive)
			var recErr *RecursionError
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, tt.want, recErr.Types)
		})
	}
}
