package validator

import (
	"errors"
	"fmt"
	"slices"
)

// PathSeparator joins parent and child field names in error paths.
const PathSeparator = "."

// FieldDescriptor binds a field name to either a Rule or a nested Schema.
type FieldDescriptor struct {
	Name     string
	Rule     Rule
	Schema   *Schema
	optional bool
}

// Field declares a leaf field checked by rule.
func Field(name string, rule Rule) FieldDescriptor {
	return FieldDescriptor{Name: name, Rule: rule}
}

// Group declares a nested object validated by schema.
func Group(name string, schema *Schema) FieldDescriptor {
	return FieldDescriptor{Name: name, Schema: schema}
}

// OptionalGroup is Group where the whole object may be absent.
func OptionalGroup(name string, schema *Schema) FieldDescriptor {
	return FieldDescriptor{Name: name, Schema: schema, optional: true}
}

// Nested declares an inline nested object. Configuration errors in fields are
// reported by the enclosing NewSchema.
func Nested(name string, fields ...FieldDescriptor) FieldDescriptor {
	return Group(name, &Schema{fields: slices.Clone(fields)})
}

// DefaultLanguages are the languages of a localized name object.
var DefaultLanguages = []string{"en", "ar"}

// Localized declares a localized text object such as {"en": "...", "ar": "..."}
// with one required Text per language. DefaultLanguages is used when langs is empty.
func Localized(name string, langs ...string) FieldDescriptor {
	if len(langs) == 0 {
		langs = DefaultLanguages
	}
	fields := make([]FieldDescriptor, 0, len(langs))
	for _, lang := range langs {
		fields = append(fields, Field(lang, Text()))
	}
	return Nested(name, fields...)
}

// Schema is an immutable, ordered set of field descriptors for one entity kind.
type Schema struct {
	kind   string
	fields []FieldDescriptor
}

// NewSchema builds a schema for kind. It returns ErrSchemaConfiguration for an
// empty kind, empty or duplicate field names, missing rules, or misdeclared rules.
func NewSchema(kind string, fields ...FieldDescriptor) (*Schema, error) {
	if kind == "" {
		return nil, fmt.Errorf("%w: entity kind is empty", ErrSchemaConfiguration)
	}

	s := &Schema{kind: kind, fields: slices.Clone(fields)}
	if err := s.check(kind); err != nil {
		return nil, err
	}
	return s, nil
}

// MustSchema is NewSchema that panics on configuration errors.
func MustSchema(kind string, fields ...FieldDescriptor) *Schema {
	s, err := NewSchema(kind, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) check(path string) error {
	var errs []error
	seen := make(map[string]bool, len(s.fields))

	for _, f := range s.fields {
		fieldPath := joinPath(path, f.Name)
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("%w: %s: empty field name", ErrSchemaConfiguration, path))
			continue
		}
		if seen[f.Name] {
			errs = append(errs, fmt.Errorf("%w: %s: duplicate field name", ErrSchemaConfiguration, fieldPath))
			continue
		}
		seen[f.Name] = true

		switch {
		case f.Schema != nil && f.Rule != nil:
			errs = append(errs, fmt.Errorf("%w: %s: field has both a rule and a nested schema", ErrSchemaConfiguration, fieldPath))
		case f.Schema != nil:
			if err := f.Schema.check(fieldPath); err != nil {
				errs = append(errs, err)
			}
		case f.Rule == nil:
			errs = append(errs, fmt.Errorf("%w: %s: field has no rule", ErrSchemaConfiguration, fieldPath))
		default:
			if cc, ok := f.Rule.(configChecker); ok {
				if err := cc.configError(); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", fieldPath, err))
				}
			}
		}
	}

	return errors.Join(errs...)
}

// Kind returns the entity kind the schema is registered under.
func (s *Schema) Kind() string {
	return s.kind
}

// Fields returns a copy of the top-level field descriptors in declaration order.
func (s *Schema) Fields() []FieldDescriptor {
	return slices.Clone(s.fields)
}

// Validate checks payload against the schema. All fields are checked in
// declaration order and every error is collected; a nil payload is treated
// as an empty one.
func (s *Schema) Validate(payload map[string]any) Result {
	value, errs := s.validate(payload, "")
	if len(errs) > 0 {
		return Result{Kind: s.kind, Errors: errs}
	}
	return Result{Kind: s.kind, Value: value}
}

func (s *Schema) validate(payload map[string]any, prefix string) (map[string]any, ValidationErrors) {
	out := make(map[string]any, len(s.fields))
	var errs ValidationErrors

	for _, f := range s.fields {
		path := joinPath(prefix, f.Name)
		raw := payload[f.Name]

		if f.Schema != nil {
			if raw == nil {
				if f.optional {
					continue
				}
				raw = map[string]any{}
			}

			sub, ok := asObject(raw)
			if !ok {
				errs.Add(ValidationError{
					Field:             path,
					Message:           "must be an object",
					TranslationKey:    "validation.object",
					TranslationValues: map[string]any{"field": path},
				})
				continue
			}

			nested, nestedErrs := f.Schema.validate(sub, path)
			if len(nestedErrs) > 0 {
				errs = append(errs, nestedErrs...)
				continue
			}
			out[f.Name] = nested
			continue
		}

		outcome := f.Rule.Check(raw)
		if outcome.Failed() {
			errs.Add(outcome.failure.at(path))
			continue
		}
		if outcome.Value != nil {
			out[f.Name] = outcome.Value
		}
	}

	return out, errs
}

// FieldInfo describes one leaf field of a schema.
type FieldInfo struct {
	Path string `json:"path" yaml:"path"`
	RuleInfo `yaml:",inline"`
}

// Describe flattens the schema into leaf descriptions in declaration order.
// Nested objects contribute one entry of type "object" followed by their fields.
func (s *Schema) Describe() []FieldInfo {
	return s.describe("", true)
}

func (s *Schema) describe(prefix string, required bool) []FieldInfo {
	var infos []FieldInfo
	for _, f := range s.fields {
		path := joinPath(prefix, f.Name)
		if f.Schema != nil {
			groupRequired := required && !f.optional
			infos = append(infos, FieldInfo{Path: path, RuleInfo: RuleInfo{Type: "object", Required: groupRequired}})
			infos = append(infos, f.Schema.describe(path, groupRequired)...)
			continue
		}
		info := Describe(f.Rule)
		info.Required = info.Required && required
		infos = append(infos, FieldInfo{Path: path, RuleInfo: info})
	}
	return infos
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + PathSeparator + name
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}
