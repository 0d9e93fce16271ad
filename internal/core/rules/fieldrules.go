// Package rules implements the document validation primitives shared by the
// financial document services: declarative field rules, financial year date
// windows, debit/credit reconciliation and exchange rate resolution.
package rules

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldErrors maps field names to human-readable validation messages.
type FieldErrors map[string]string

// HasErrors reports whether any field failed validation.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// Rule is a single declarative constraint on a field value.
type Rule func(label, value string) error

// Required fails on empty or whitespace-only values.
func Required() Rule {
	return func(label, value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// MinLen fails when the value is shorter than n characters.
func MinLen(n int) Rule {
	return func(label, value string) error {
		if len(value) < n {
			return fmt.Errorf("%s must be at least %d characters", label, n)
		}
		return nil
	}
}

// MaxLen fails when the value is longer than n characters.
func MaxLen(n int) Rule {
	return func(label, value string) error {
		if len(value) > n {
			return fmt.Errorf("%s must be at most %d characters", label, n)
		}
		return nil
	}
}

// MinAmount fails when the value does not parse as a number or is below min.
func MinAmount(min decimal.Decimal) Rule {
	return func(label, value string) error {
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s must be a number", label)
		}
		if d.LessThan(min) {
			return fmt.Errorf("%s must be at least %s", label, min.String())
		}
		return nil
	}
}

// OneOf fails when the value is not a member of the allowed set.
func OneOf(allowed ...string) Rule {
	return func(label, value string) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf("%s must be one of: %s", label, strings.Join(allowed, ", "))
	}
}

// Field binds a named field to its label and rule chain.
type Field struct {
	Name  string
	Label string
	Rules []Rule
}

// Evaluate runs every field's rule chain against the supplied values.
// The first failing rule per field wins; fields are independent of each other.
func Evaluate(values map[string]string, fields []Field) FieldErrors {
	errs := make(FieldErrors)
	for _, f := range fields {
		label := f.Label
		if label == "" {
			label = f.Name
		}
		for _, rule := range f.Rules {
			if err := rule(label, values[f.Name]); err != nil {
				errs[f.Name] = err.Error()
				break
			}
		}
	}
	return errs
}
