// Package visibility models the lifecycle every widget part shares: shown,
// hidden but mounted, or unmounted.
package visibility

import (
	"fmt"

	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/errors"
	"github.com/jacoelho/ariacheck/internal/expect"
)

// State is the observed lifecycle state of a widget part.
// The zero value is not a state.
type State int

const (
	// Visible means the element is in the document and not hidden.
	Visible State = iota + 1
	// InvisibleHidden means the element is in the document but hidden.
	InvisibleHidden
	// InvisibleUnmounted means the element is not in the document.
	InvisibleUnmounted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Visible:
		return "Visible"
	case InvisibleHidden:
		return "InvisibleHidden"
	case InvisibleUnmounted:
		return "InvisibleUnmounted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Unreachable panics with an exhaustiveness violation for v. Unknown states
// are programming errors, never contract failures.
func Unreachable(v any) {
	panic(errors.NewViolationf(errors.ErrUnknownState, "unexpected state %v", v))
}

// AssertHidden requires the hidden attribute and a computed display of none.
func AssertHidden(el *dom.Element) error {
	if err := expect.Present(el, "element"); err != nil {
		return err
	}
	if !el.HasAttribute("hidden") {
		return errors.NewViolation(errors.ErrHiddenMarker, "expected element to carry the hidden attribute").
			Attr("hidden").
			On(el.String())
	}
	if display := el.ComputedDisplay(); display != "none" {
		return errors.NewViolation(errors.ErrDisplay, "expected computed display none").
			Attr("style").
			On(el.String()).
			Diff("none", displayOrAbsent(display))
	}
	return nil
}

// AssertVisible requires neither the hidden attribute nor display none.
func AssertVisible(el *dom.Element) error {
	if err := expect.Present(el, "element"); err != nil {
		return err
	}
	if el.HasAttribute("hidden") {
		return errors.NewViolation(errors.ErrHiddenMarker, "expected element not to carry the hidden attribute").
			Attr("hidden").
			On(el.String())
	}
	if el.ComputedDisplay() == "none" {
		return errors.NewViolation(errors.ErrDisplay, "expected computed display other than none").
			Attr("style").
			On(el.String()).
			Diff("not none", "none")
	}
	return nil
}

// Observe returns the state el is in. It is what the dispatch compares
// the expected state against.
func Observe(el *dom.Element) State {
	switch {
	case el == nil:
		return InvisibleUnmounted
	case AssertHidden(el) == nil:
		return InvisibleHidden
	default:
		return Visible
	}
}

// Dispatch checks el against the expected state. For InvisibleUnmounted the
// element must be nil and mounted is not called. For the other states the
// element must exist, pass the matching predicate, and then pass mounted,
// which carries the rules shared by both mounted states.
func Dispatch(state State, el *dom.Element, what string, mounted func(State) error) error {
	switch state {
	case InvisibleUnmounted:
		return expect.Missing(el, what)
	case InvisibleHidden:
		if err := expect.Present(el, what); err != nil {
			return err
		}
		if err := AssertHidden(el); err != nil {
			return err
		}
	case Visible:
		if err := expect.Present(el, what); err != nil {
			return err
		}
		if err := AssertVisible(el); err != nil {
			return err
		}
	default:
		Unreachable(state)
	}
	if mounted == nil {
		return nil
	}
	return mounted(state)
}

func displayOrAbsent(display string) string {
	if display == "" {
		return errors.Absent
	}
	return display
}
