package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/linkage"
	"github.com/jacoelho/ariacheck/internal/resolve"
)

// GetListboxLabel returns the listbox label, or nil.
func (c *Checker) GetListboxLabel() *dom.Element { return c.one(resolve.ListboxLabel) }

// GetListboxButton returns the listbox trigger, or nil.
func (c *Checker) GetListboxButton() *dom.Element { return c.one(resolve.ListboxButton) }

// GetListboxButtons returns every button-like element.
func (c *Checker) GetListboxButtons() []*dom.Element { return c.all(resolve.Buttons) }

// GetListbox returns the first listbox, or nil.
func (c *Checker) GetListbox() *dom.Element { return c.one(resolve.Listbox) }

// GetListboxes returns every listbox.
func (c *Checker) GetListboxes() []*dom.Element { return c.all(resolve.Listbox) }

// GetListboxOptions returns every option.
func (c *Checker) GetListboxOptions() []*dom.Element { return c.all(resolve.ListboxOption) }

// AssertListbox checks the listbox panel. Orientation defaults to vertical.
// refs: listbox.
func (c *Checker) AssertListbox(opts Options, refs ...*dom.Element) error {
	return c.check("AssertListbox", func() error {
		return contract.CheckPanel(contract.Listbox, opts, c.ref(refs, 0, resolve.Listbox), nil)
	})
}

// AssertListboxButton checks the listbox trigger. refs: button.
func (c *Checker) AssertListboxButton(opts Options, refs ...*dom.Element) error {
	return c.check("AssertListboxButton", func() error {
		return contract.CheckTrigger(contract.ListboxButton, opts, c.ref(refs, 0, resolve.ListboxButton))
	})
}

// AssertListboxLabel checks the listbox label. refs: label.
func (c *Checker) AssertListboxLabel(opts Options, refs ...*dom.Element) error {
	return c.check("AssertListboxLabel", func() error {
		return contract.CheckLabel(contract.ListboxLabel, opts, c.ref(refs, 0, resolve.ListboxLabel), nil)
	})
}

// AssertListboxButtonLinkedWithListbox checks the button and listbox
// reference each other. refs: button, listbox.
func (c *Checker) AssertListboxButtonLinkedWithListbox(refs ...*dom.Element) error {
	return c.check("AssertListboxButtonLinkedWithListbox", func() error {
		return linkage.Bidirectional(
			c.ref(refs, 0, resolve.ListboxButton),
			c.ref(refs, 1, resolve.Listbox),
			[2]string{"listbox button", "listbox"},
		)
	})
}

// AssertListboxLabelLinkedWithListbox checks the listbox is labelled by the
// label. refs: label, listbox.
func (c *Checker) AssertListboxLabelLinkedWithListbox(refs ...*dom.Element) error {
	return c.check("AssertListboxLabelLinkedWithListbox", func() error {
		label := c.ref(refs, 0, resolve.ListboxLabel)
		listbox := c.ref(refs, 1, resolve.Listbox)
		return linkage.Pair(listbox, "aria-labelledby", label, [2]string{"listbox", "listbox label"})
	})
}

// AssertListboxButtonLinkedWithListboxLabel checks the button is labelled by
// the label followed by itself. refs: button, label.
func (c *Checker) AssertListboxButtonLinkedWithListboxLabel(refs ...*dom.Element) error {
	return c.check("AssertListboxButtonLinkedWithListboxLabel", func() error {
		return linkage.Composite(c.ref(refs, 0, resolve.ListboxButton), c.ref(refs, 1, resolve.ListboxLabel))
	})
}

// AssertActiveListboxOption checks the listbox's active descendant is item.
// refs: listbox.
func (c *Checker) AssertActiveListboxOption(item *dom.Element, refs ...*dom.Element) error {
	return c.check("AssertActiveListboxOption", func() error {
		return linkage.Active(c.ref(refs, 0, resolve.Listbox), item, [2]string{"listbox", "listbox option"})
	})
}

// AssertNoActiveListboxOption checks the listbox has no active descendant.
// refs: listbox.
func (c *Checker) AssertNoActiveListboxOption(refs ...*dom.Element) error {
	return c.check("AssertNoActiveListboxOption", func() error {
		return linkage.NoActive(c.ref(refs, 0, resolve.Listbox), "listbox")
	})
}

// AssertNoSelectedListboxOption checks no option carries aria-selected.
// Passing no items checks every option in the document.
func (c *Checker) AssertNoSelectedListboxOption(items ...*dom.Element) error {
	return c.check("AssertNoSelectedListboxOption", func() error {
		return contract.NoSelected(contract.ListboxOption, c.set(items, resolve.ListboxOption))
	})
}

// AssertListboxOption checks one option. Unselected means aria-selected is absent.
func (c *Checker) AssertListboxOption(item *dom.Element, opts ItemOptions) error {
	return c.check("AssertListboxOption", func() error {
		return contract.CheckItem(contract.ListboxOption, item, opts)
	})
}
