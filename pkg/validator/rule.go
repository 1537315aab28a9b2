package validator

// Rule checks a single field value and returns its normalized form.
// A nil value means the field is absent from the payload.
type Rule interface {
	Check(value any) Outcome
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(value any) Outcome

func (f RuleFunc) Check(value any) Outcome { return f(value) }

// Outcome is the result of a single Rule check: either Ok with a normalized
// value or a failure carrying the error metadata.
type Outcome struct {
	Value   any
	failure *ValidationError
}

// Ok returns a successful outcome. A nil value leaves the field out of the
// normalized record.
func Ok(value any) Outcome {
	return Outcome{Value: value}
}

// Fail returns a failed outcome. The field path is filled in by the schema.
func Fail(message, key string, values map[string]any) Outcome {
	return Outcome{failure: &ValidationError{
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}}
}

func (o Outcome) Failed() bool {
	return o.failure != nil
}

// Failure returns the failure metadata; it is the zero value for Ok outcomes.
func (o Outcome) Failure() ValidationError {
	if o.failure == nil {
		return ValidationError{}
	}
	return *o.failure
}

// RuleInfo describes a rule for introspection.
type RuleInfo struct {
	Type     string   `json:"type" yaml:"type"`
	Required bool     `json:"required" yaml:"required"`
	Integer  bool     `json:"integer,omitempty" yaml:"integer,omitempty"`
	MinLen   int      `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Values   []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// describer is implemented by the built-in rules.
type describer interface {
	Info() RuleInfo
}

// configChecker is implemented by rules that can be declared incorrectly.
type configChecker interface {
	configError() error
}

// Describe returns the RuleInfo of a built-in rule, or a generic "custom" info.
func Describe(r Rule) RuleInfo {
	if d, ok := r.(describer); ok {
		return d.Info()
	}
	return RuleInfo{Type: "custom", Required: true}
}

// Option adjusts the constraints of Text, Number and Enum rules.
// Options that do not apply to a rule are ignored by it.
type Option func(*constraints)

type constraints struct {
	minLen     int
	min        *float64
	integer    bool
	message    string
	messageKey string
}

// MinLen sets the minimum text length, counted in runes after trimming.
func MinLen(n int) Option {
	return func(c *constraints) { c.minLen = n }
}

// Min sets the inclusive numeric minimum.
func Min(n float64) Option {
	return func(c *constraints) { c.min = &n }
}

// Integer requires a whole number and normalizes it to int64.
func Integer() Option {
	return func(c *constraints) { c.integer = true }
}

// WithMessage replaces every failure message of the rule with msg.
// Unless WithMessageKey is also given, the translation key is dropped so the
// literal message is shown as is.
func WithMessage(msg string) Option {
	return func(c *constraints) { c.message = msg }
}

// WithMessageKey sets the translation key reported on failure.
func WithMessageKey(key string) Option {
	return func(c *constraints) { c.messageKey = key }
}

func newConstraints(opts []Option) constraints {
	var c constraints
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// fail builds a failure honoring message overrides.
func (c constraints) fail(message, key string, values map[string]any) Outcome {
	switch {
	case c.messageKey != "":
		key = c.messageKey
	case c.message != "":
		key = ""
	}
	if c.message != "" {
		message = c.message
	}
	return Fail(message, key, values)
}

const (
	msgRequired = "field is required"
	keyRequired = "validation.required"
)
