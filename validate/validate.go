package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length limits.
const (
	DefaultMaxLength = 30
	DefaultMinLength = 1
)

// allowed is the supported character set, applied after upper-casing.
var allowed = regexp.MustCompile(`^[A-Z0-9 !?.,:\-+=()]*$`)

// Reason names the first rule a message broke.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonMalformed
	ReasonEmpty
	ReasonTooLong
	ReasonTooShort
	ReasonCharset
)

var reasonNames = [...]string{"none", "malformed", "empty", "too_long", "too_short", "charset"}

// String returns a stable snake_case name, suitable for JSON payloads.
func (r Reason) String() string {
	if r < ReasonNone || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

// Result is the outcome of Validate.
type Result struct {
	Valid  bool
	Reason Reason
	// Length is the rune count of the input, 0 when malformed.
	Length int
	// Invalid lists the distinct unsupported runes, in order of appearance.
	Invalid []rune
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Result: r}
}

// Option customizes a Validator.
type Option func(*Validator)

// WithMaxLength sets the maximum rune count. Panics if n < 1.
func WithMaxLength(n int) Option {
	if n < 1 {
		panic("validate: WithMaxLength(n<1)")
	}
	return func(v *Validator) {
		v.max = n
	}
}

// WithMinLength sets the minimum rune count. Panics if n < 1.
func WithMinLength(n int) Option {
	if n < 1 {
		panic("validate: WithMinLength(n<1)")
	}
	return func(v *Validator) {
		v.min = n
	}
}

// Validator holds the length limits. The zero value is not usable; call New.
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	min, max int
}

// New returns a Validator with the defaults overridden by opts. Panics when
// the resulting minimum exceeds the maximum.
func New(opts ...Option) *Validator {
	v := &Validator{min: DefaultMinLength, max: DefaultMaxLength}
	for _, opt := range opts {
		opt(v)
	}
	if v.min > v.max {
		panic(fmt.Sprintf("validate: min length %d > max length %d", v.min, v.max))
	}
	return v
}

// MaxLength reports the configured maximum.
func (v *Validator) MaxLength() int { return v.max }

// MinLength reports the configured minimum.
func (v *Validator) MinLength() int { return v.min }

var defaultValidator = New()

// Validate checks raw against the default limits.
func Validate(raw string) Result { return defaultValidator.Validate(raw) }

// Validate applies the rules in order and reports the first failure.
func (v *Validator) Validate(raw string) Result {
	if !utf8.ValidString(raw) {
		return Result{Reason: ReasonMalformed}
	}
	if raw == "" {
		return Result{Reason: ReasonEmpty}
	}

	n := utf8.RuneCountInString(raw)
	switch {
	case n > v.max:
		return Result{Reason: ReasonTooLong, Length: n}
	case n < v.min:
		return Result{Reason: ReasonTooShort, Length: n}
	}

	upper := strings.Map(unicode.ToUpper, raw)
	if !allowed.MatchString(upper) {
		return Result{Reason: ReasonCharset, Length: n, Invalid: invalidRunes(upper)}
	}
	return Result{Valid: true, Length: n}
}

func invalidRunes(s string) []rune {
	var out []rune
	seen := make(map[rune]bool)
	for _, r := range s {
		if seen[r] || allowed.MatchString(string(r)) {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
