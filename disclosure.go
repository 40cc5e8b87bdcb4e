package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/resolve"
)

// GetDisclosureButton returns the disclosure trigger, or nil.
func (c *Checker) GetDisclosureButton() *dom.Element { return c.one(resolve.DisclosureButton) }

// GetDisclosurePanel returns the disclosure panel, or nil.
func (c *Checker) GetDisclosurePanel() *dom.Element { return c.one(resolve.DisclosurePanel) }

// AssertDisclosureButton checks the disclosure trigger. refs: button.
func (c *Checker) AssertDisclosureButton(opts Options, refs ...*dom.Element) error {
	return c.check("AssertDisclosureButton", func() error {
		return contract.CheckTrigger(contract.DisclosureButton, opts, c.ref(refs, 0, resolve.DisclosureButton))
	})
}

// AssertDisclosurePanel checks the disclosure panel. refs: panel.
func (c *Checker) AssertDisclosurePanel(opts Options, refs ...*dom.Element) error {
	return c.check("AssertDisclosurePanel", func() error {
		return contract.CheckPanel(contract.DisclosurePanel, opts, c.ref(refs, 0, resolve.DisclosurePanel), nil)
	})
}
