package scenario

import (
	"github.com/jacoelho/ariacheck"
	"github.com/jacoelho/ariacheck/dom"
)

// runner binds a check name to a checker call.
type runner struct {
	state bool // the check needs a lifecycle state
	item  bool // the check needs an item
	many  bool // every target match is passed, not just the first
	run   func(*ariacheck.Checker, input) error
}

type (
	partFunc  func(*ariacheck.Checker, ariacheck.Options, ...*dom.Element) error
	linkFunc  func(*ariacheck.Checker, ...*dom.Element) error
	activeFn  func(*ariacheck.Checker, *dom.Element, ...*dom.Element) error
	itemFunc  func(*ariacheck.Checker, *dom.Element, ariacheck.ItemOptions) error
	elemFunc  func(*ariacheck.Checker, *dom.Element) error
	valueFunc func(*ariacheck.Checker, *dom.Element, string) error
)

func part(fn partFunc) runner {
	return runner{state: true, run: func(c *ariacheck.Checker, in input) error {
		return fn(c, in.opts, in.refs...)
	}}
}

func label(fn partFunc) runner {
	return runner{run: func(c *ariacheck.Checker, in input) error {
		return fn(c, in.opts, in.refs...)
	}}
}

func link(fn linkFunc) runner {
	return runner{run: func(c *ariacheck.Checker, in input) error {
		return fn(c, in.refs...)
	}}
}

func noSelected(fn linkFunc) runner {
	return runner{many: true, run: func(c *ariacheck.Checker, in input) error {
		return fn(c, in.refs...)
	}}
}

func active(fn activeFn) runner {
	return runner{item: true, run: func(c *ariacheck.Checker, in input) error {
		return fn(c, in.item, in.refs...)
	}}
}

func item(fn itemFunc) runner {
	return runner{item: true, run: func(c *ariacheck.Checker, in input) error {
		return fn(c, in.item, ariacheck.ItemOptions{
			Tag:        in.check.Tag,
			Attributes: in.check.Attributes,
			Selected:   selection(in.check.Selected),
		})
	}}
}

func element(fn elemFunc) runner {
	return runner{item: true, run: func(c *ariacheck.Checker, in input) error {
		return fn(c, in.item)
	}}
}

func value(fn valueFunc, pick func(Check) string) runner {
	return runner{item: true, run: func(c *ariacheck.Checker, in input) error {
		return fn(c, in.item, pick(in.check))
	}}
}

var switchRunner = runner{run: func(c *ariacheck.Checker, in input) error {
	state, err := ParseSwitchState(in.check.State)
	if err != nil {
		return err
	}
	return c.AssertSwitch(ariacheck.SwitchOptions{
		State:       state,
		TextContent: in.check.Text,
		Tag:         in.check.Tag,
		Label:       in.check.Label,
		Description: in.check.Description,
	}, in.refs...)
}}

var tabsRunner = runner{run: func(c *ariacheck.Checker, in input) error {
	return c.AssertTabs(ariacheck.TabsOptions{
		Active:      in.check.Active,
		Orientation: in.check.Orientation,
	}, in.refs...)
}}

var registry = map[string]runner{
	"menu":                         part((*ariacheck.Checker).AssertMenu),
	"menu-button":                  part((*ariacheck.Checker).AssertMenuButton),
	"menu-button-linked-with-menu": link((*ariacheck.Checker).AssertMenuButtonLinkedWithMenu),
	"menu-linked-with-menu-item":   active((*ariacheck.Checker).AssertMenuLinkedWithMenuItem),
	"no-active-menu-item":          link((*ariacheck.Checker).AssertNoActiveMenuItem),
	"menu-item":                    item((*ariacheck.Checker).AssertMenuItem),

	"listbox":                                  part((*ariacheck.Checker).AssertListbox),
	"listbox-button":                           part((*ariacheck.Checker).AssertListboxButton),
	"listbox-label":                            label((*ariacheck.Checker).AssertListboxLabel),
	"listbox-button-linked-with-listbox":       link((*ariacheck.Checker).AssertListboxButtonLinkedWithListbox),
	"listbox-label-linked-with-listbox":        link((*ariacheck.Checker).AssertListboxLabelLinkedWithListbox),
	"listbox-button-linked-with-listbox-label": link((*ariacheck.Checker).AssertListboxButtonLinkedWithListboxLabel),
	"active-listbox-option":                    active((*ariacheck.Checker).AssertActiveListboxOption),
	"no-active-listbox-option":                 link((*ariacheck.Checker).AssertNoActiveListboxOption),
	"no-selected-listbox-option":               noSelected((*ariacheck.Checker).AssertNoSelectedListboxOption),
	"listbox-option":                           item((*ariacheck.Checker).AssertListboxOption),

	"combobox":                                   part((*ariacheck.Checker).AssertCombobox),
	"combobox-input":                             part((*ariacheck.Checker).AssertComboboxInput),
	"combobox-list":                              part((*ariacheck.Checker).AssertComboboxList),
	"combobox-button":                            part((*ariacheck.Checker).AssertComboboxButton),
	"combobox-label":                             label((*ariacheck.Checker).AssertComboboxLabel),
	"combobox-button-linked-with-combobox":       link((*ariacheck.Checker).AssertComboboxButtonLinkedWithCombobox),
	"combobox-label-linked-with-combobox":        link((*ariacheck.Checker).AssertComboboxLabelLinkedWithCombobox),
	"combobox-button-linked-with-combobox-label": link((*ariacheck.Checker).AssertComboboxButtonLinkedWithComboboxLabel),
	"active-combobox-option":                     active((*ariacheck.Checker).AssertActiveComboboxOption),
	"not-active-combobox-option":                 active((*ariacheck.Checker).AssertNotActiveComboboxOption),
	"no-active-combobox-option":                  link((*ariacheck.Checker).AssertNoActiveComboboxOption),
	"no-selected-combobox-option":                noSelected((*ariacheck.Checker).AssertNoSelectedComboboxOption),
	"combobox-option":                            item((*ariacheck.Checker).AssertComboboxOption),

	"switch":             switchRunner,
	"disclosure-button":  part((*ariacheck.Checker).AssertDisclosureButton),
	"disclosure-panel":   part((*ariacheck.Checker).AssertDisclosurePanel),
	"popover-button":     part((*ariacheck.Checker).AssertPopoverButton),
	"popover-panel":      part((*ariacheck.Checker).AssertPopoverPanel),
	"popover-overlay":    part((*ariacheck.Checker).AssertPopoverOverlay),
	"dialog":             part((*ariacheck.Checker).AssertDialog),
	"dialog-title":       part((*ariacheck.Checker).AssertDialogTitle),
	"dialog-description": part((*ariacheck.Checker).AssertDialogDescription),
	"dialog-overlay":     part((*ariacheck.Checker).AssertDialogOverlay),
	"radio-group":        part((*ariacheck.Checker).AssertRadioGroup),
	"radio-group-label":  label((*ariacheck.Checker).AssertRadioGroupLabel),
	"tabs":               tabsRunner,

	"hidden":                  element((*ariacheck.Checker).AssertHidden),
	"visible":                 element((*ariacheck.Checker).AssertVisible),
	"active-element":          element((*ariacheck.Checker).AssertActiveElement),
	"contains-active-element": element((*ariacheck.Checker).AssertContainsActiveElement),
	"focusable":               element((*ariacheck.Checker).AssertFocusable),
	"not-focusable":           element((*ariacheck.Checker).AssertNotFocusable),
	"label-value":             value((*ariacheck.Checker).AssertLabelValue, func(c Check) string { return c.Label }),
	"description-value":       value((*ariacheck.Checker).AssertDescriptionValue, func(c Check) string { return c.Description }),
}
