package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the kind of contract failure.
type ErrorCode string

const (
	// ErrElementMissing indicates an element expected to exist resolved to nil.
	ErrElementMissing ErrorCode = "aria-element-missing"
	// ErrElementPresent indicates an element expected to be unmounted exists.
	ErrElementPresent ErrorCode = "aria-element-present"

	// ErrAttributeMissing indicates a required attribute is absent.
	ErrAttributeMissing ErrorCode = "aria-attr-missing"
	// ErrAttributeValue indicates an attribute carries the wrong value.
	ErrAttributeValue ErrorCode = "aria-attr-value"
	// ErrAttributeUnexpected indicates an attribute that must be absent is present.
	ErrAttributeUnexpected ErrorCode = "aria-attr-unexpected"
	// ErrAttributeForbidden indicates an attribute carries a value it must not have.
	ErrAttributeForbidden ErrorCode = "aria-attr-forbidden"

	// ErrHiddenMarker indicates the hidden attribute does not match the expected visibility.
	ErrHiddenMarker ErrorCode = "aria-hidden-marker"
	// ErrDisplay indicates the computed display does not match the expected visibility.
	ErrDisplay ErrorCode = "aria-display"

	// ErrTextContent indicates the text content does not contain the expected text.
	ErrTextContent ErrorCode = "aria-text"
	// ErrTagName indicates the element tag differs from the expected one.
	ErrTagName ErrorCode = "aria-tag"

	// ErrLinkage indicates one direction of an id cross-reference does not hold.
	ErrLinkage ErrorCode = "aria-linkage"
	// ErrMembership indicates a referenced element is not part of the expected set.
	ErrMembership ErrorCode = "aria-membership"
	// ErrLabel indicates the accessible label differs from the expected value.
	ErrLabel ErrorCode = "aria-label"
	// ErrDescription indicates the accessible description differs from the expected value.
	ErrDescription ErrorCode = "aria-description"

	// ErrActiveElement indicates the focused element is not the expected one.
	ErrActiveElement ErrorCode = "aria-active-element"
	// ErrFocusable indicates an element focusability differs from the expected one.
	ErrFocusable ErrorCode = "aria-focusable"

	// ErrUnknownState indicates an unrecognized state reached a dispatch.
	ErrUnknownState ErrorCode = "aria-unknown-state"
	// ErrScenario indicates a malformed scenario check.
	ErrScenario ErrorCode = "aria-scenario"
)

// Absent is the Actual/Expected placeholder for a missing attribute or element.
const Absent = "<absent>"

// Violation describes one failed contract check.
//
// Checker names the public assertion that failed, so the message points at
// the caller's assertion rather than the internal helper that detected it.
type Violation struct {
	Code      string
	Checker   string
	Message   string
	Element   string
	Attribute string
	Expected  string
	Actual    string
}

// ViolationList is an error that wraps one or more violations.
type ViolationList []Violation

// Error returns a compact summary of the violations.
func (v ViolationList) Error() string {
	switch len(v) {
	case 0:
		return "no contract violations"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Error formats the violation for display, including code, checker, and context.
func (v *Violation) Error() string {
	if v == nil {
		return "violation <nil>"
	}

	var b strings.Builder
	if v.Checker != "" {
		b.WriteString(v.Checker)
		b.WriteString(": ")
	}
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Attribute != "" {
		b.WriteString(fmt.Sprintf(" (attribute %s)", v.Attribute))
	}
	if v.Element != "" {
		b.WriteString(fmt.Sprintf(" on %s", v.Element))
	}
	if v.Expected != "" || v.Actual != "" {
		b.WriteString(fmt.Sprintf(" (expected: %s) (actual: %s)", quote(v.Expected), quote(v.Actual)))
	}
	return b.String()
}

func quote(s string) string {
	if s == Absent {
		return s
	}
	return fmt.Sprintf("%q", s)
}

// NewViolation builds a Violation with a code and message.
func NewViolation(code ErrorCode, msg string) *Violation {
	return &Violation{Code: string(code), Message: msg}
}

// NewViolationf formats a message and builds a Violation.
func NewViolationf(code ErrorCode, format string, args ...any) *Violation {
	return NewViolation(code, fmt.Sprintf(format, args...))
}

// On records the element the violation was observed on.
func (v *Violation) On(element string) *Violation {
	v.Element = element
	return v
}

// Attr records the attribute involved in the violation.
func (v *Violation) Attr(name string) *Violation {
	v.Attribute = name
	return v
}

// Diff records the expected and actual values.
func (v *Violation) Diff(expected, actual string) *Violation {
	v.Expected = expected
	v.Actual = actual
	return v
}

// Tag sets the checker name unless one is already set. The outermost public
// checker calls it last, so nested helpers never override it.
func Tag(err error, checker string) error {
	v, ok := AsViolation(err)
	if !ok {
		return err
	}
	if v.Checker == "" {
		v.Checker = checker
	}
	return v
}

// HasCode reports whether err is a violation carrying code.
func HasCode(err error, code ErrorCode) bool {
	v, ok := AsViolation(err)
	return ok && v.Code == string(code)
}

// AsViolation extracts a single violation from err.
func AsViolation(err error) (*Violation, bool) {
	if err == nil {
		return nil, false
	}
	var v *Violation
	if errors.As(err, &v) && v != nil {
		return v, true
	}
	return nil, false
}

// AsViolations extracts violations from an error returned by a scenario run or a checker.
func AsViolations(err error) ([]Violation, bool) {
	if err == nil {
		return nil, false
	}
	var list ViolationList
	if errors.As(err, &list) {
		return []Violation(list), true
	}
	var listPtr *ViolationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return []Violation(*listPtr), true
	}
	if v, ok := AsViolation(err); ok {
		return []Violation{*v}, true
	}
	return nil, false
}
