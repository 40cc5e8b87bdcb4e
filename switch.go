package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/resolve"
)

// GetSwitch returns the switch, or nil.
func (c *Checker) GetSwitch() *dom.Element { return c.one(resolve.Switch) }

// GetSwitchLabel returns the switch label, or nil.
func (c *Checker) GetSwitchLabel() *dom.Element { return c.one(resolve.SwitchLabel) }

// AssertSwitch checks the switch role, roving tabindex, optional accessible
// name and description, and aria-checked for opts.State. refs: switch.
func (c *Checker) AssertSwitch(opts SwitchOptions, refs ...*dom.Element) error {
	return c.check("AssertSwitch", func() error {
		return contract.CheckSwitch(c.doc, opts, c.ref(refs, 0, resolve.Switch))
	})
}
