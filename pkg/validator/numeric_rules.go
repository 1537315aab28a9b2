package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxInt64Float is 2^63, the smallest float64 outside the int64 range.
const maxInt64Float = float64(1 << 63)

type numberRule struct {
	c constraints
}

// Number returns a rule for a required numeric value. Numeric strings and
// json.Number are parsed; the normalized value is float64, or int64 when
// Integer is set.
func Number(opts ...Option) Rule {
	return numberRule{c: newConstraints(opts)}
}

func (r numberRule) Check(value any) Outcome {
	if value == nil {
		return r.c.fail(msgRequired, keyRequired, nil)
	}

	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return r.c.fail(msgRequired, keyRequired, nil)
	}

	f, exact, ok := toNumber(value)
	if !ok {
		return r.c.fail("must be a number", "validation.number", nil)
	}

	if r.c.integer {
		if f != math.Trunc(f) {
			return r.c.fail("must be a whole number", "validation.integer", nil)
		}
		if exact == nil && (f >= maxInt64Float || f < math.MinInt64) {
			return r.c.fail("is out of range", "validation.out_of_range", nil)
		}
	}

	if r.c.min != nil && f < *r.c.min {
		return r.c.fail(
			fmt.Sprintf("must be at least %s", formatFloat(*r.c.min)),
			"validation.min",
			map[string]any{"min": *r.c.min},
		)
	}

	if r.c.integer {
		if exact != nil {
			return Ok(*exact)
		}
		return Ok(int64(f))
	}
	return Ok(f)
}

func (r numberRule) Info() RuleInfo {
	return RuleInfo{Type: "number", Required: true, Integer: r.c.integer, Min: r.c.min}
}

// toNumber converts supported numeric representations to float64. When the
// input is an exact integer it is also returned as int64 to avoid float
// rounding for large identifiers.
func toNumber(value any) (float64, *int64, bool) {
	var f float64
	var exact *int64

	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f, exact = intValue(int64(v))
	case int8:
		f, exact = intValue(int64(v))
	case int16:
		f, exact = intValue(int64(v))
	case int32:
		f, exact = intValue(int64(v))
	case int64:
		f, exact = intValue(v)
	case uint:
		f = float64(v)
	case uint8:
		f, exact = intValue(int64(v))
	case uint16:
		f, exact = intValue(int64(v))
	case uint32:
		f, exact = intValue(int64(v))
	case uint64:
		f = float64(v)
	case json.Number:
		return parseNumber(v.String())
	case string:
		return parseNumber(v)
	default:
		return 0, nil, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, nil, false
	}
	return f, exact, true
}

func parseNumber(s string) (float64, *int64, bool) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		f, exact := intValue(i)
		return f, exact, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, nil, false
	}
	return f, nil, true
}

func intValue(i int64) (float64, *int64) {
	return float64(i), &i
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
