package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/resolve"
)

// GetPopoverButton returns the popover trigger, or nil.
func (c *Checker) GetPopoverButton() *dom.Element { return c.one(resolve.PopoverButton) }

// GetPopoverPanel returns the popover panel, or nil.
func (c *Checker) GetPopoverPanel() *dom.Element { return c.one(resolve.PopoverPanel) }

// GetPopoverOverlay returns the popover overlay, or nil.
func (c *Checker) GetPopoverOverlay() *dom.Element { return c.one(resolve.PopoverOverlay) }

// AssertPopoverButton checks the popover trigger. refs: button.
func (c *Checker) AssertPopoverButton(opts Options, refs ...*dom.Element) error {
	return c.check("AssertPopoverButton", func() error {
		return contract.CheckTrigger(contract.PopoverButton, opts, c.ref(refs, 0, resolve.PopoverButton))
	})
}

// AssertPopoverPanel checks the popover panel. refs: panel.
func (c *Checker) AssertPopoverPanel(opts Options, refs ...*dom.Element) error {
	return c.check("AssertPopoverPanel", func() error {
		return contract.CheckPanel(contract.PopoverPanel, opts, c.ref(refs, 0, resolve.PopoverPanel), nil)
	})
}

// AssertPopoverOverlay checks the popover overlay. refs: overlay.
func (c *Checker) AssertPopoverOverlay(opts Options, refs ...*dom.Element) error {
	return c.check("AssertPopoverOverlay", func() error {
		return contract.CheckPanel(contract.PopoverOverlay, opts, c.ref(refs, 0, resolve.PopoverOverlay), nil)
	})
}
