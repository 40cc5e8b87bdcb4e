package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/linkage"
	"github.com/jacoelho/ariacheck/internal/resolve"
)

// GetComboboxLabel returns the combobox label, or nil.
func (c *Checker) GetComboboxLabel() *dom.Element { return c.one(resolve.ComboboxLabel) }

// GetComboboxButton returns the combobox trigger, or nil.
func (c *Checker) GetComboboxButton() *dom.Element { return c.one(resolve.ComboboxButton) }

// GetComboboxButtons returns every button-like element.
func (c *Checker) GetComboboxButtons() []*dom.Element { return c.all(resolve.Buttons) }

// GetComboboxInput returns the combobox input, or nil.
func (c *Checker) GetComboboxInput() *dom.Element { return c.one(resolve.ComboboxInput) }

// GetComboboxInputs returns every combobox input.
func (c *Checker) GetComboboxInputs() []*dom.Element { return c.all(resolve.ComboboxInput) }

// GetCombobox returns the combobox popup listbox, or nil.
func (c *Checker) GetCombobox() *dom.Element { return c.one(resolve.Combobox) }

// GetComboboxes returns every listbox.
func (c *Checker) GetComboboxes() []*dom.Element { return c.all(resolve.Combobox) }

// GetComboboxOptions returns every option.
func (c *Checker) GetComboboxOptions() []*dom.Element { return c.all(resolve.ComboboxOption) }

// AssertCombobox checks the combobox input as the widget root: its
// visibility, role and, in ModeMultiple, aria-multiselectable. refs: input.
func (c *Checker) AssertCombobox(opts Options, refs ...*dom.Element) error {
	return c.check("AssertCombobox", func() error {
		return contract.CheckPanel(contract.Combobox, opts, c.ref(refs, 0, resolve.ComboboxInput), nil)
	})
}

// AssertComboboxInput checks the input as the trigger of the popup. refs: input.
func (c *Checker) AssertComboboxInput(opts Options, refs ...*dom.Element) error {
	return c.check("AssertComboboxInput", func() error {
		return contract.CheckTrigger(contract.ComboboxInput, opts, c.ref(refs, 0, resolve.ComboboxInput))
	})
}

// AssertComboboxList checks the popup listbox. refs: listbox.
func (c *Checker) AssertComboboxList(opts Options, refs ...*dom.Element) error {
	return c.check("AssertComboboxList", func() error {
		return contract.CheckPanel(contract.ComboboxList, opts, c.ref(refs, 0, resolve.Combobox), nil)
	})
}

// AssertComboboxButton checks the combobox button. refs: button.
func (c *Checker) AssertComboboxButton(opts Options, refs ...*dom.Element) error {
	return c.check("AssertComboboxButton", func() error {
		return contract.CheckTrigger(contract.ComboboxButton, opts, c.ref(refs, 0, resolve.ComboboxButton))
	})
}

// AssertComboboxLabel checks the combobox label. refs: label.
func (c *Checker) AssertComboboxLabel(opts Options, refs ...*dom.Element) error {
	return c.check("AssertComboboxLabel", func() error {
		return contract.CheckLabel(contract.ComboboxLabel, opts, c.ref(refs, 0, resolve.ComboboxLabel), nil)
	})
}

// AssertComboboxButtonLinkedWithCombobox checks the button and popup listbox
// reference each other. refs: button, listbox.
func (c *Checker) AssertComboboxButtonLinkedWithCombobox(refs ...*dom.Element) error {
	return c.check("AssertComboboxButtonLinkedWithCombobox", func() error {
		return linkage.Bidirectional(
			c.ref(refs, 0, resolve.ComboboxButton),
			c.ref(refs, 1, resolve.Combobox),
			[2]string{"combobox button", "combobox listbox"},
		)
	})
}

// AssertComboboxLabelLinkedWithCombobox checks the input is labelled by the
// label. refs: label, input.
func (c *Checker) AssertComboboxLabelLinkedWithCombobox(refs ...*dom.Element) error {
	return c.check("AssertComboboxLabelLinkedWithCombobox", func() error {
		label := c.ref(refs, 0, resolve.ComboboxLabel)
		input := c.ref(refs, 1, resolve.ComboboxInput)
		return linkage.Pair(input, "aria-labelledby", label, [2]string{"combobox input", "combobox label"})
	})
}

// AssertComboboxButtonLinkedWithComboboxLabel checks the button is labelled
// by the label followed by itself. refs: button, label.
func (c *Checker) AssertComboboxButtonLinkedWithComboboxLabel(refs ...*dom.Element) error {
	return c.check("AssertComboboxButtonLinkedWithComboboxLabel", func() error {
		return linkage.Composite(c.ref(refs, 0, resolve.ComboboxButton), c.ref(refs, 1, resolve.ComboboxLabel))
	})
}

// AssertActiveComboboxOption checks the input's active descendant is item.
// refs: input.
func (c *Checker) AssertActiveComboboxOption(item *dom.Element, refs ...*dom.Element) error {
	return c.check("AssertActiveComboboxOption", func() error {
		return linkage.Active(c.ref(refs, 0, resolve.ComboboxInput), item, [2]string{"combobox input", "combobox option"})
	})
}

// AssertNotActiveComboboxOption checks the input's active descendant is not
// item. refs: input.
func (c *Checker) AssertNotActiveComboboxOption(item *dom.Element, refs ...*dom.Element) error {
	return c.check("AssertNotActiveComboboxOption", func() error {
		return linkage.NotActive(c.ref(refs, 0, resolve.ComboboxInput), item, [2]string{"combobox input", "combobox option"})
	})
}

// AssertNoActiveComboboxOption checks the input has no active descendant.
// refs: input.
func (c *Checker) AssertNoActiveComboboxOption(refs ...*dom.Element) error {
	return c.check("AssertNoActiveComboboxOption", func() error {
		return linkage.NoActive(c.ref(refs, 0, resolve.ComboboxInput), "combobox input")
	})
}

// AssertNoSelectedComboboxOption checks every option carries
// aria-selected="false". Passing no items checks every option in the document.
func (c *Checker) AssertNoSelectedComboboxOption(items ...*dom.Element) error {
	return c.check("AssertNoSelectedComboboxOption", func() error {
		return contract.NoSelected(contract.ComboboxOption, c.set(items, resolve.ComboboxOption))
	})
}

// AssertComboboxOption checks one option. Selection is always explicit:
// Unselected requires aria-selected="false".
func (c *Checker) AssertComboboxOption(item *dom.Element, opts ItemOptions) error {
	return c.check("AssertComboboxOption", func() error {
		return contract.CheckItem(contract.ComboboxOption, item, opts)
	})
}
