// Package contract holds the per-widget ARIA contracts as descriptor tables
// and the one engine that checks elements against them.
package contract

import "github.com/jacoelho/ariacheck/internal/visibility"

// Mode selects single or multiple selection for a combobox.
type Mode int

const (
	// ModeSingle is the default.
	ModeSingle Mode = iota
	// ModeMultiple expects aria-multiselectable on the open combobox.
	ModeMultiple
)

// Options describes what a container, trigger or label is expected to look like.
type Options struct {
	State       visibility.State
	TextContent string
	Tag         string
	// Attributes are checked in sorted name order.
	Attributes map[string]string
	// Orientation overrides the kind's default aria-orientation.
	Orientation string
	Mode        Mode
}

// Selection is the expected selection state of an item.
type Selection int

const (
	// SelectionUnspecified skips the selection check.
	SelectionUnspecified Selection = iota
	// Selected expects the item to carry aria-selected="true".
	Selected
	// Unselected expects the item not to be selected under its kind's rule.
	Unselected
)

// ItemOptions describes an option or menu item.
type ItemOptions struct {
	Tag        string
	Attributes map[string]string
	Selected   Selection
}

// SelectionRule is how a kind encodes aria-selected on its items.
type SelectionRule int

const (
	// SelectionNone never inspects aria-selected.
	SelectionNone SelectionRule = iota
	// SelectionPresence: selected is "true", unselected is no attribute.
	SelectionPresence
	// SelectionExplicit: always present, "true" or "false".
	SelectionExplicit
)

// PanelKind describes a state-dispatched container: menus, listboxes,
// dialogs, panels and overlays.
type PanelKind struct {
	Name string
	Role string
	// Required attributes must be present with any value.
	Required []string
	// Orientation is the default aria-orientation; empty disables the rule.
	Orientation string
	// Modal requires aria-modal="true" when visible and forbids it when hidden.
	Modal bool
	// Multiselectable requires aria-multiselectable="true" when visible in ModeMultiple.
	Multiselectable bool
	// OwnerAttr names the attribute on the owner that must reference the
	// panel's id, e.g. a dialog's aria-labelledby for its title.
	OwnerAttr string
	Owner     string
}

// TriggerKind describes a button-like control that opens a panel.
type TriggerKind struct {
	Name     string
	HasPopup bool
	// IgnoreText skips the text content option.
	IgnoreText bool
}

// ItemKind describes an item inside a composite widget.
type ItemKind struct {
	Name      string
	Role      string
	Selection SelectionRule
}

// LabelKind describes a label element, optionally referenced by an owner.
type LabelKind struct {
	Name      string
	OwnerAttr string
	Owner     string
}

var (
	// Menu is the items container of a menu.
	Menu = PanelKind{Name: "menu", Role: "menu", Required: []string{"aria-labelledby"}}

	// Listbox is the options container of a listbox.
	Listbox = PanelKind{
		Name:        "listbox",
		Role:        "listbox",
		Required:    []string{"aria-labelledby"},
		Orientation: "vertical",
	}

	// Combobox is the element carrying role=combobox.
	Combobox = PanelKind{Name: "combobox", Role: "combobox", Multiselectable: true}

	// ComboboxList is the options popup of a combobox.
	ComboboxList = PanelKind{Name: "combobox listbox", Role: "listbox", Required: []string{"aria-labelledby"}}

	// DisclosurePanel, PopoverPanel, PopoverOverlay and DialogOverlay only
	// carry visibility rules.
	DisclosurePanel = PanelKind{Name: "disclosure panel"}
	PopoverPanel    = PanelKind{Name: "popover panel"}
	PopoverOverlay  = PanelKind{Name: "popover overlay"}
	DialogOverlay   = PanelKind{Name: "dialog overlay"}

	// Dialog is a modal dialog.
	Dialog = PanelKind{Name: "dialog", Role: "dialog", Modal: true}

	// DialogTitle and DialogDescription must be referenced by their dialog.
	DialogTitle       = PanelKind{Name: "dialog title", OwnerAttr: "aria-labelledby", Owner: "dialog"}
	DialogDescription = PanelKind{Name: "dialog description", OwnerAttr: "aria-describedby", Owner: "dialog"}

	// RadioGroup is the radiogroup container.
	RadioGroup = PanelKind{Name: "radio group", Role: "radiogroup", Required: []string{"aria-labelledby"}}
)

// Triggers that open a panel. The HasPopup kinds require aria-haspopup.
var (
	MenuButton       = TriggerKind{Name: "menu button", HasPopup: true}
	ListboxButton    = TriggerKind{Name: "listbox button", HasPopup: true}
	ComboboxButton   = TriggerKind{Name: "combobox button", HasPopup: true}
	ComboboxInput    = TriggerKind{Name: "combobox input", IgnoreText: true}
	DisclosureButton = TriggerKind{Name: "disclosure button"}
	PopoverButton    = TriggerKind{Name: "popover button"}
)

// Items of composite widgets, each with its aria-selected rule.
var (
	MenuItem       = ItemKind{Name: "menu item", Role: "menuitem", Selection: SelectionNone}
	ListboxOption  = ItemKind{Name: "listbox option", Role: "option", Selection: SelectionPresence}
	ComboboxOption = ItemKind{Name: "combobox option", Role: "option", Selection: SelectionExplicit}
)

// Labels of composite widgets.
var (
	ListboxLabel    = LabelKind{Name: "listbox label"}
	ComboboxLabel   = LabelKind{Name: "combobox label"}
	RadioGroupLabel = LabelKind{Name: "radio group label", OwnerAttr: "aria-labelledby", Owner: "radio group"}
)
