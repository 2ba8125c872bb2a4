package iso20022

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TextRule is the constraint contract of a string leaf type. Rules are built
// once, usually as package-level vars, and are safe for concurrent use.
type TextRule struct {
	name    string
	minLen  int
	maxLen  int
	hasMin  bool
	hasMax  bool
	pattern *regexp.Regexp
	enum    map[string]struct{}
	allowed string
}

// Text starts a rule for the leaf type called name.
func Text(name string) TextRule { return TextRule{name: name} }

// MinLength sets the inclusive minimum length in code points.
func (r TextRule) MinLength(n int) TextRule {
	r.minLen, r.hasMin = n, true
	return r
}

// MaxLength sets the inclusive maximum length in code points.
func (r TextRule) MaxLength(n int) TextRule {
	r.maxLen, r.hasMax = n, true
	return r
}

// Length sets both length bounds.
func (r TextRule) Length(min, max int) TextRule { return r.MinLength(min).MaxLength(max) }

// Pattern requires the whole value to match expr. It panics when expr does not
// compile.
func (r TextRule) Pattern(expr string) TextRule {
	r.pattern = regexp.MustCompile(`^(?:` + expr + `)$`)
	return r
}

// Enum restricts the value to the listed codes (case-sensitive).
func (r TextRule) Enum(values ...string) TextRule {
	r.enum = make(map[string]struct{}, len(values))
	for _, v := range values {
		r.enum[v] = struct{}{}
	}
	r.allowed = strings.Join(values, ",")
	return r
}

// Name returns the leaf type name used as the message subject.
func (r TextRule) Name() string { return r.name }

// Check validates v. Bounds are evaluated in the order min length, max
// length, pattern, enumeration.
func (r TextRule) Check(v string) error {
	if r.hasMin || r.hasMax {
		n := utf8.RuneCountInString(v)
		if r.hasMin && n < r.minLen {
			return newError(CodeTooShort, r.name, map[string]string{"min": strconv.Itoa(r.minLen)})
		}
		if r.hasMax && n > r.maxLen {
			return newError(CodeTooLong, r.name, map[string]string{"max": strconv.Itoa(r.maxLen)})
		}
	}
	if r.pattern != nil && !r.pattern.MatchString(v) {
		return newError(CodePattern, r.name, map[string]string{"pattern": r.pattern.String()})
	}
	if r.enum != nil {
		if _, ok := r.enum[v]; !ok {
			return newError(CodeInvalidEnum, r.name, map[string]string{"allowed": r.allowed})
		}
	}
	return nil
}

// DecimalRule is the constraint contract of a numeric leaf type.
type DecimalRule struct {
	name   string
	min    float64
	max    float64
	hasMin bool
	hasMax bool
}

// Decimal starts a rule for the numeric leaf type called name.
func Decimal(name string) DecimalRule { return DecimalRule{name: name} }

// Min sets the inclusive minimum.
func (r DecimalRule) Min(v float64) DecimalRule {
	r.min, r.hasMin = v, true
	return r
}

// Max sets the inclusive maximum.
func (r DecimalRule) Max(v float64) DecimalRule {
	r.max, r.hasMax = v, true
	return r
}

// Check validates v with exact comparison. NaN violates any declared bound.
func (r DecimalRule) Check(v float64) error {
	if r.hasMin && (v < r.min || math.IsNaN(v)) {
		return newError(CodeBelowMinimum, r.name, map[string]string{"min": formatBound(r.min)})
	}
	if r.hasMax && (v > r.max || math.IsNaN(v)) {
		return newError(CodeAboveMaximum, r.name, map[string]string{"max": formatBound(r.max)})
	}
	return nil
}

// formatBound renders bounds with six decimals (0.000000).
func formatBound(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
