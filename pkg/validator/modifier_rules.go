package validator

import (
	"fmt"
	"strings"
)

type passThroughRule struct{}

// PassThrough returns a rule that accepts any value unchanged. It marks data
// the dashboard does not constrain yet, such as attachments or free-form blocks.
func PassThrough() Rule {
	return passThroughRule{}
}

func (passThroughRule) Check(value any) Outcome {
	return Ok(value)
}

func (passThroughRule) Info() RuleInfo {
	return RuleInfo{Type: "any"}
}

type optionalRule struct {
	inner Rule
}

// Optional wraps a rule so an absent value passes without running it.
// A blank string, which forms submit for an untouched input, is absent unless
// the wrapped rule accepts it. Any other value is checked by the wrapped rule.
func Optional(rule Rule) Rule {
	return optionalRule{inner: rule}
}

func (r optionalRule) Check(value any) Outcome {
	if value == nil {
		return Ok(nil)
	}
	out := r.inner.Check(value)
	if s, ok := value.(string); ok && out.Failed() && strings.TrimSpace(s) == "" {
		return Ok(nil)
	}
	return out
}

func (r optionalRule) Info() RuleInfo {
	info := Describe(r.inner)
	info.Required = false
	return info
}

func (r optionalRule) configError() error {
	if r.inner == nil {
		return fmt.Errorf("%w: optional rule wraps nil", ErrSchemaConfiguration)
	}
	if cc, ok := r.inner.(configChecker); ok {
		return cc.configError()
	}
	return nil
}
