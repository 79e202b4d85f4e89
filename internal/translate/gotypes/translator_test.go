// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/xsd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderSchema = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="order" type="Order"/>
  <xs:element name="note" type="xs:string"/>
  <xs:element name="list">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="item" maxOccurs="unbounded">
          <xs:complexType>
            <xs:sequence><xs:element name="sku" type="SKU"/></xs:sequence>
          </xs:complexType>
        </xs:element>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
  <xs:complexType name="Order">
    <xs:annotation><xs:documentation>A customer order.</xs:documentation></xs:annotation>
    <xs:sequence>
      <xs:element name="id" type="xs:string"/>
      <xs:element name="created" type="xs:dateTime" minOccurs="0"/>
      <xs:element name="parent" type="Order" minOccurs="0"/>
      <xs:element name="qty" type="xs:int"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="Payment">
    <xs:choice>
      <xs:element name="card" type="xs:string"/>
      <xs:element name="iban" type="xs:string"/>
    </xs:choice>
  </xs:complexType>
  <xs:simpleType name="SKU">
    <xs:restriction base="xs:string">
      <xs:enumeration value="a-1"/>
      <xs:enumeration value="b 2"/>
    </xs:restriction>
  </xs:simpleType>
</xs:schema>`

type generated struct {
	pkg     string
	types   map[string]string            // type name -> underlying expression
	fields  map[string]map[string]string // struct name -> field -> "type tag"
	consts  map[string]string
	imports []string
	docs    map[string]string
}

func generate(t *testing.T, source, body string) (string, generated) {
	t.Helper()
	s, err := lang.New()
	require.NoError(t, err)
	schema, err := xsd.ParseBytes([]byte(body))
	require.NoError(t, err)

	out, err := (&Translator{}).Translate(translate.NewDocument(source, schema, s))
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", out, parser.ParseComments)
	require.NoError(t, err, string(out))

	g := generated{
		pkg:    f.Name.Name,
		types:  map[string]string{},
		fields: map[string]map[string]string{},
		consts: map[string]string{},
		docs:   map[string]string{},
	}
	for _, imp := range f.Imports {
		g.imports = append(g.imports, imp.Path.Value)
	}
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			switch spec := spec.(type) {
			case *ast.TypeSpec:
				if gd.Doc != nil {
					g.docs[spec.Name.Name] = strings.TrimSpace(gd.Doc.Text())
				}
				st, ok := spec.Type.(*ast.StructType)
				if !ok {
					g.types[spec.Name.Name] = types.ExprString(spec.Type)
					continue
				}
				g.types[spec.Name.Name] = "struct"
				fields := map[string]string{}
				for _, fld := range st.Fields.List {
					desc := types.ExprString(fld.Type)
					if fld.Tag != nil {
						desc += " " + fld.Tag.Value
					}
					name := types.ExprString(fld.Type)
					if len(fld.Names) > 0 {
						name = fld.Names[0].Name
					}
					fields[name] = desc
				}
				g.fields[spec.Name.Name] = fields
			case *ast.ValueSpec:
				if gd.Tok == token.CONST {
					g.consts[spec.Names[0].Name] = spec.Values[0].(*ast.BasicLit).Value
				}
			}
		}
	}
	return string(out), g
}

func TestTranslate(t *testing.T) {
	out, g := generate(t, "purchase-order.xsd", orderSchema)

	assert.True(t, strings.HasPrefix(out, "// Code generated by xsdvis from purchase-order. DO NOT EDIT."))
	assert.Equal(t, "purchaseorder", g.pkg)
	assert.ElementsMatch(t, []string{`"encoding/xml"`, `"time"`}, g.imports)

	assert.Equal(t, map[string]string{
		"ID":      "string `xml:\"id\"`",
		"Created": "*time.Time `xml:\"created,omitempty\"`",
		"Parent":  "*Order `xml:\"parent,omitempty\"`",
		"Qty":     "int32 `xml:\"qty\"`",
	}, g.fields["Order"])
	assert.Equal(t, "A customer order.", g.docs["Order"])

	assert.Equal(t, map[string]string{
		"Card": "*string `xml:\"card,omitempty\"`",
		"Iban": "*string `xml:\"iban,omitempty\"`",
	}, g.fields["Payment"])

	assert.Equal(t, "string", g.types["SKU"])
	assert.Equal(t, map[string]string{"SKUA1": `"a-1"`, "SKUB2": `"b 2"`}, g.consts)
}

func TestTranslate_RootElements(t *testing.T) {
	_, g := generate(t, "order.xsd", orderSchema)

	assert.Equal(t, map[string]string{
		"XMLName": "xml.Name `xml:\"order\"`",
		"Order":   "Order",
	}, g.fields["OrderElement"], "a root colliding with a type name gets a suffix")

	assert.Equal(t, map[string]string{
		"XMLName": "xml.Name `xml:\"note\"`",
		"Value":   "string `xml:\",chardata\"`",
	}, g.fields["Note"])

	assert.Equal(t, map[string]string{
		"XMLName": "xml.Name `xml:\"list\"`",
		"Item":    "[]ListItem `xml:\"item,omitempty\"`",
	}, g.fields["List"])
	assert.Equal(t, map[string]string{
		"Sku": "SKU `xml:\"sku\"`",
	}, g.fields["ListItem"])
}

func TestTranslate_NoElements(t *testing.T) {
	out, g := generate(t, "func.xsd", `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:simpleType name="Count"><xs:restriction base="xs:unsignedInt"><xs:enumeration value="1"/></xs:restriction></xs:simpleType>
</xs:schema>`)

	assert.Equal(t, "funcxsd", g.pkg)
	assert.Empty(t, g.imports)
	assert.Equal(t, "uint32", g.types["Count"])
	assert.Empty(t, g.consts, "only string types get constants")
	assert.NotContains(t, out, "import")
}
