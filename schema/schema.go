package schema

import (
	"regexp"
	"slices"
)

// Kind is the JSON type a Schema accepts.
type Kind int

const (
	KindString Kind = iota + 1
	KindInteger
	KindNumber
	KindBoolean
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Schema declares the shape of one JSON value. Schemas are built with the
// constructors below and are immutable: modifiers return copies, so a shared
// entity schema can be specialised per route.
type Schema struct {
	kind     Kind
	nullable bool
	enum     []string
	pattern  *regexp.Regexp
	items    *Schema
	fields   []Field
}

// Field is one named property of an object schema.
type Field struct {
	Name     string
	Schema   *Schema
	Required bool
}

func String() *Schema  { return &Schema{kind: KindString} }
func Integer() *Schema { return &Schema{kind: KindInteger} }
func Number() *Schema  { return &Schema{kind: KindNumber} }
func Boolean() *Schema { return &Schema{kind: KindBoolean} }

// Enum accepts exactly one of the given string literals.
func Enum(values ...string) *Schema {
	return &Schema{kind: KindString, enum: slices.Clone(values)}
}

// ArrayOf accepts an array whose every element matches elem.
func ArrayOf(elem *Schema) *Schema {
	return &Schema{kind: KindArray, items: elem}
}

// Object accepts a JSON object. Properties not listed are tolerated.
func Object(fields ...Field) *Schema {
	return &Schema{kind: KindObject, fields: slices.Clone(fields)}
}

// Required declares a property that must be present.
func Required(name string, s *Schema) Field {
	return Field{Name: name, Schema: s, Required: true}
}

// Optional declares a property that may be absent.
func Optional(name string, s *Schema) Field {
	return Field{Name: name, Schema: s}
}

// Nullable additionally accepts JSON null.
func (s *Schema) Nullable() *Schema {
	c := s.clone()
	c.nullable = true
	return c
}

// Pattern constrains a string schema to values matching expr.
func (s *Schema) Pattern(expr string) *Schema {
	c := s.clone()
	c.pattern = regexp.MustCompile(expr)
	return c
}

// WithRequired returns a copy of an object schema with the named optional
// properties promoted to required.
func (s *Schema) WithRequired(names ...string) *Schema {
	c := s.clone()
	for i, f := range c.fields {
		if slices.Contains(names, f.Name) {
			c.fields[i].Required = true
		}
	}
	return c
}

// With returns a copy of an object schema with extra properties appended.
func (s *Schema) With(fields ...Field) *Schema {
	c := s.clone()
	c.fields = append(c.fields, fields...)
	return c
}

// Kind reports the JSON type the schema accepts.
func (s *Schema) Kind() Kind { return s.kind }

// Fields returns the declared properties of an object schema.
func (s *Schema) Fields() []Field { return slices.Clone(s.fields) }

func (s *Schema) clone() *Schema {
	c := *s
	c.enum = slices.Clone(s.enum)
	c.fields = slices.Clone(s.fields)
	return &c
}
