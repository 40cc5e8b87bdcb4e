package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/resolve"
)

// GetDialog returns the first dialog, or nil.
func (c *Checker) GetDialog() *dom.Element { return c.one(resolve.Dialog) }

// GetDialogs returns every dialog.
func (c *Checker) GetDialogs() []*dom.Element { return c.all(resolve.Dialog) }

// GetDialogTitle returns the dialog title, or nil.
func (c *Checker) GetDialogTitle() *dom.Element { return c.one(resolve.DialogTitle) }

// GetDialogDescription returns the dialog description, or nil.
func (c *Checker) GetDialogDescription() *dom.Element { return c.one(resolve.DialogDescription) }

// GetDialogOverlay returns the first dialog overlay, or nil.
func (c *Checker) GetDialogOverlay() *dom.Element { return c.one(resolve.DialogOverlay) }

// GetDialogOverlays returns every dialog overlay.
func (c *Checker) GetDialogOverlays() []*dom.Element { return c.all(resolve.DialogOverlay) }

// AssertDialog checks the dialog, including aria-modal="true" only while
// visible. refs: dialog.
func (c *Checker) AssertDialog(opts Options, refs ...*dom.Element) error {
	return c.check("AssertDialog", func() error {
		return contract.CheckPanel(contract.Dialog, opts, c.ref(refs, 0, resolve.Dialog), nil)
	})
}

// AssertDialogTitle checks the title and that the dialog is labelled by it.
// refs: title, dialog.
func (c *Checker) AssertDialogTitle(opts Options, refs ...*dom.Element) error {
	return c.check("AssertDialogTitle", func() error {
		return contract.CheckPanel(contract.DialogTitle, opts,
			c.ref(refs, 0, resolve.DialogTitle), c.ref(refs, 1, resolve.Dialog))
	})
}

// AssertDialogDescription checks the description and that the dialog is
// described by it. refs: description, dialog.
func (c *Checker) AssertDialogDescription(opts Options, refs ...*dom.Element) error {
	return c.check("AssertDialogDescription", func() error {
		return contract.CheckPanel(contract.DialogDescription, opts,
			c.ref(refs, 0, resolve.DialogDescription), c.ref(refs, 1, resolve.Dialog))
	})
}

// AssertDialogOverlay checks the dialog overlay. refs: overlay.
func (c *Checker) AssertDialogOverlay(opts Options, refs ...*dom.Element) error {
	return c.check("AssertDialogOverlay", func() error {
		return contract.CheckPanel(contract.DialogOverlay, opts, c.ref(refs, 0, resolve.DialogOverlay), nil)
	})
}
