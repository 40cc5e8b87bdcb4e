package contract

import (
	"fmt"

	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/expect"
	"github.com/jacoelho/ariacheck/internal/linkage"
	"github.com/jacoelho/ariacheck/internal/visibility"
)

// SwitchState is the checked state a switch reports. The zero value is
// not a state.
type SwitchState int

const (
	// SwitchOn expects aria-checked="true".
	SwitchOn SwitchState = iota + 1
	// SwitchOff expects aria-checked="false".
	SwitchOff
)

func (s SwitchState) String() string {
	switch s {
	case SwitchOn:
		return "On"
	case SwitchOff:
		return "Off"
	default:
		return fmt.Sprintf("SwitchState(%d)", int(s))
	}
}

// SwitchOptions describes a switch.
type SwitchOptions struct {
	State       SwitchState
	TextContent string
	Tag         string
	// Label and Description are skipped when empty.
	Label       string
	Description string
}

// CheckSwitch checks a switch and its accessible name and description.
func CheckSwitch(doc *dom.Document, opts SwitchOptions, el *dom.Element) error {
	if err := expect.Present(el, "switch"); err != nil {
		return err
	}
	if err := expect.AttrEquals(el, "role", "switch"); err != nil {
		return err
	}
	if err := expect.AttrEquals(el, "tabindex", "0"); err != nil {
		return err
	}
	if err := expect.TextContains(el, opts.TextContent); err != nil {
		return err
	}
	if err := expect.Tag(el, opts.Tag); err != nil {
		return err
	}
	if opts.Label != "" {
		if err := linkage.LabelValue(doc, el, opts.Label); err != nil {
			return err
		}
	}
	if opts.Description != "" {
		if err := linkage.DescriptionValue(doc, el, opts.Description); err != nil {
			return err
		}
	}
	switch opts.State {
	case SwitchOn:
		return expect.AttrEquals(el, "aria-checked", "true")
	case SwitchOff:
		return expect.AttrEquals(el, "aria-checked", "false")
	default:
		visibility.Unreachable(opts.State)
		return nil
	}
}
