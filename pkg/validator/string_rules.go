package validator

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type textRule struct {
	c constraints
}

// Text returns a rule for a required, non-blank string. The normalized value
// is trimmed and NFC-normalized so localized input compares consistently.
func Text(opts ...Option) Rule {
	return textRule{c: newConstraints(opts)}
}

func (r textRule) Check(value any) Outcome {
	if value == nil {
		return r.c.fail(msgRequired, keyRequired, nil)
	}

	s, ok := value.(string)
	if !ok {
		return r.c.fail("must be a string", "validation.string", nil)
	}

	s = normalizeText(s)
	if s == "" {
		return r.c.fail(msgRequired, keyRequired, nil)
	}

	if r.c.minLen > 0 && utf8.RuneCountInString(s) < r.c.minLen {
		return r.c.fail(
			fmt.Sprintf("must be at least %d characters long", r.c.minLen),
			"validation.min_length",
			map[string]any{"min": r.c.minLen},
		)
	}

	return Ok(s)
}

func (r textRule) Info() RuleInfo {
	return RuleInfo{Type: "text", Required: true, MinLen: r.c.minLen}
}

type stringRule struct{}

// String returns a rule for a declared string without constraints. Any string,
// including an empty one, passes; numbers and booleans are coerced to text.
func String() Rule {
	return stringRule{}
}

func (stringRule) Check(value any) Outcome {
	if value == nil {
		return Fail(msgRequired, keyRequired, nil)
	}

	switch v := value.(type) {
	case string:
		return Ok(normalizeText(v))
	case json.Number:
		return Ok(v.String())
	case bool:
		return Ok(strconv.FormatBool(v))
	case float64:
		return Ok(strconv.FormatFloat(v, 'f', -1, 64))
	case float32:
		return Ok(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Ok(fmt.Sprint(v))
	default:
		return Fail("must be a string", "validation.string", nil)
	}
}

func (stringRule) Info() RuleInfo {
	return RuleInfo{Type: "string", Required: true}
}

func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
