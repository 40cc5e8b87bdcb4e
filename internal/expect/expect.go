// Package expect holds the attribute, text and presence assertions the
// contract checks are built from. Every function returns nil or a
// *errors.Violation describing the first mismatch.
package expect

import (
	"fmt"
	"strings"

	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/errors"
	"github.com/jacoelho/ariacheck/internal/xiter"
)

// Present fails when el is nil. what names the missing element in the message.
func Present(el *dom.Element, what string) error {
	if el == nil {
		return errors.NewViolationf(errors.ErrElementMissing, "expected %s, got nil", what).
			Diff("non-null", errors.Absent)
	}
	return nil
}

// Missing fails when el exists.
func Missing(el *dom.Element, what string) error {
	if el != nil {
		return errors.NewViolationf(errors.ErrElementPresent, "expected %s to be unmounted", what).
			On(el.String()).
			Diff(errors.Absent, el.String())
	}
	return nil
}

// HasAttr fails when the attribute is absent.
func HasAttr(el *dom.Element, name string) error {
	if !el.HasAttribute(name) {
		return errors.NewViolation(errors.ErrAttributeMissing, "expected attribute to be present").
			Attr(name).
			On(el.String())
	}
	return nil
}

// AttrEquals fails unless the attribute is present with exactly value.
func AttrEquals(el *dom.Element, name, value string) error {
	got, ok := el.Attr(name)
	if !ok {
		return errors.NewViolation(errors.ErrAttributeValue, "expected attribute value").
			Attr(name).
			On(el.String()).
			Diff(value, errors.Absent)
	}
	if got != value {
		return errors.NewViolation(errors.ErrAttributeValue, "expected attribute value").
			Attr(name).
			On(el.String()).
			Diff(value, got)
	}
	return nil
}

// NoAttr fails when the attribute is present.
func NoAttr(el *dom.Element, name string) error {
	if got, ok := el.Attr(name); ok {
		return errors.NewViolation(errors.ErrAttributeUnexpected, "expected attribute to be absent").
			Attr(name).
			On(el.String()).
			Diff(errors.Absent, got)
	}
	return nil
}

// AttrNotEquals fails when the attribute is present with exactly value.
func AttrNotEquals(el *dom.Element, name, value string) error {
	if got, ok := el.Attr(name); ok && got == value {
		return errors.NewViolationf(errors.ErrAttributeForbidden, "expected attribute not to be %q", value).
			Attr(name).
			On(el.String())
	}
	return nil
}

// Attrs checks every expected attribute value in sorted name order.
func Attrs(el *dom.Element, want map[string]string) error {
	for name := range xiter.SortedKeys(want) {
		if err := AttrEquals(el, name, want[name]); err != nil {
			return err
		}
	}
	return nil
}

// TextContains fails unless the whitespace-normalized text content of el
// contains the whitespace-normalized want. An empty want always passes.
func TextContains(el *dom.Element, want string) error {
	if want == "" {
		return nil
	}
	got := NormalizeSpace(el.TextContent())
	if !strings.Contains(got, NormalizeSpace(want)) {
		return errors.NewViolation(errors.ErrTextContent, "expected text content").
			On(el.String()).
			Diff(want, got)
	}
	return nil
}

// Tag fails unless el has the lowercase tag name want. An empty want always passes.
func Tag(el *dom.Element, want string) error {
	if want == "" {
		return nil
	}
	if got := el.TagName(); got != want {
		return errors.NewViolation(errors.ErrTagName, "expected tag name").
			On(el.String()).
			Diff(want, got)
	}
	return nil
}

// Contains fails unless set holds el.
func Contains(set []*dom.Element, el *dom.Element, what string) error {
	for _, candidate := range set {
		if candidate.Equal(el) {
			return nil
		}
	}
	return errors.NewViolationf(errors.ErrMembership, "expected %s to be part of the set", what).
		On(el.String()).
		Diff(describeSet(set), el.String())
}

// All runs checks in order and returns the first failure.
func All(checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeSpace trims and collapses runs of whitespace into single spaces.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func describeSet(set []*dom.Element) string {
	parts := make([]string, 0, len(set))
	for _, el := range set {
		parts = append(parts, el.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
