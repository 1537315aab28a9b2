package validator

import (
	"fmt"
	"slices"
	"strings"
)

type enumRule struct {
	values []string
	c      constraints
}

// OneOf returns a rule that accepts only one of the given literal values.
func OneOf(values ...string) Rule {
	return Enum(values)
}

// Enum is OneOf with options. The value set is copied and fixed at
// declaration time; an empty set is reported when the schema is built.
func Enum(values []string, opts ...Option) Rule {
	return enumRule{values: slices.Clone(values), c: newConstraints(opts)}
}

func (r enumRule) Check(value any) Outcome {
	if value == nil {
		return r.c.fail(msgRequired, keyRequired, nil)
	}

	if s, ok := value.(string); ok {
		if i := slices.Index(r.values, s); i >= 0 {
			return Ok(r.values[i])
		}
	}

	allowed := strings.Join(r.values, ", ")
	return r.c.fail(
		fmt.Sprintf("must be one of: %s", allowed),
		"validation.in_list",
		map[string]any{"allowed_values": allowed},
	)
}

func (r enumRule) Info() RuleInfo {
	return RuleInfo{Type: "enum", Required: true, Values: slices.Clone(r.values)}
}

func (r enumRule) configError() error {
	if len(r.values) == 0 {
		return fmt.Errorf("%w: enumerated rule has no values", ErrSchemaConfiguration)
	}
	for i, v := range r.values {
		if slices.Contains(r.values[:i], v) {
			return fmt.Errorf("%w: enumerated rule repeats value %q", ErrSchemaConfiguration, v)
		}
	}
	return nil
}
