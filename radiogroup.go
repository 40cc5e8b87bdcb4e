package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/resolve"
)

// GetRadioGroup returns the radio group, or nil.
func (c *Checker) GetRadioGroup() *dom.Element { return c.one(resolve.RadioGroup) }

// GetRadioGroupLabel returns the radio group label, or nil.
func (c *Checker) GetRadioGroupLabel() *dom.Element { return c.one(resolve.RadioGroupLabel) }

// GetRadioGroupOptions returns every radio group option.
func (c *Checker) GetRadioGroupOptions() []*dom.Element { return c.all(resolve.RadioGroupOption) }

// AssertRadioGroup checks the radio group container. refs: group.
func (c *Checker) AssertRadioGroup(opts Options, refs ...*dom.Element) error {
	return c.check("AssertRadioGroup", func() error {
		return contract.CheckPanel(contract.RadioGroup, opts, c.ref(refs, 0, resolve.RadioGroup), nil)
	})
}

// AssertRadioGroupLabel checks the label and that the group is labelled by
// it. refs: label, group.
func (c *Checker) AssertRadioGroupLabel(opts Options, refs ...*dom.Element) error {
	return c.check("AssertRadioGroupLabel", func() error {
		return contract.CheckLabel(contract.RadioGroupLabel, opts,
			c.ref(refs, 0, resolve.RadioGroupLabel), c.ref(refs, 1, resolve.RadioGroup))
	})
}
