// Package resolve locates widget elements when a check is not handed an
// explicit reference.
//
// Each part has an ordered list of strategies: an ARIA role first, then a
// tag, then the headlessui-<kind>-<part>- id prefix for parts that have no
// unique role. A single lookup takes the first strategy that matches
// anything; a plural lookup returns the document-ordered union.
package resolve

import (
	"fmt"
	"strings"

	"github.com/antchfx/xpath"

	"github.com/jacoelho/ariacheck/dom"
)

// Part identifies one element family of a widget.
type Part string

const (
	MenuButton Part = "menu-button"
	Buttons    Part = "buttons"
	Menu       Part = "menu"
	MenuItem   Part = "menu-item"

	ListboxLabel  Part = "listbox-label"
	ListboxButton Part = "listbox-button"
	Listbox       Part = "listbox"
	ListboxOption Part = "listbox-option"

	Switch      Part = "switch"
	SwitchLabel Part = "switch-label"

	DisclosureButton Part = "disclosure-button"
	DisclosurePanel  Part = "disclosure-panel"

	PopoverButton  Part = "popover-button"
	PopoverPanel   Part = "popover-panel"
	PopoverOverlay Part = "popover-overlay"

	Dialog            Part = "dialog"
	DialogTitle       Part = "dialog-title"
	DialogDescription Part = "dialog-description"
	DialogOverlay     Part = "dialog-overlay"

	RadioGroup       Part = "radio-group"
	RadioGroupLabel  Part = "radio-group-label"
	RadioGroupOption Part = "radio-group-option"

	TabList  Part = "tab-list"
	Tab      Part = "tab"
	TabPanel Part = "tab-panel"

	ComboboxLabel  Part = "combobox-label"
	ComboboxButton Part = "combobox-button"
	ComboboxInput  Part = "combobox-input"
	Combobox       Part = "combobox"
	ComboboxOption Part = "combobox-option"
)

// strategy holds the single-lookup fallback chain and the plural union.
type strategy struct {
	chain []*xpath.Expr
	all   *xpath.Expr
}

func role(name string) string {
	return fmt.Sprintf(`@role=%q`, name)
}

func tag(name string) string {
	return fmt.Sprintf(`local-name()=%q`, name)
}

func idPrefix(prefix string) string {
	return fmt.Sprintf(`starts-with(@id, %q)`, prefix)
}

// chain builds a part whose single lookup tries each predicate in order and
// whose plural lookup matches any of them.
func chain(predicates ...string) strategy {
	s := strategy{chain: make([]*xpath.Expr, 0, len(predicates))}
	for _, p := range predicates {
		s.chain = append(s.chain, xpath.MustCompile("//*["+p+"]"))
	}
	s.all = xpath.MustCompile("//*[" + strings.Join(predicates, " or ") + "]")
	return s
}

func buttonOr(prefix string) strategy {
	return chain(role("button"), tag("button"), idPrefix(prefix))
}

var strategies = map[Part]strategy{
	MenuButton: buttonOr("headlessui-menu-button-"),
	Buttons:    chain(role("button"), tag("button")),
	Menu:       chain(role("menu")),
	MenuItem:   chain(role("menuitem")),

	ListboxLabel:  chain(tag("label"), idPrefix("headlessui-listbox-label")),
	ListboxButton: buttonOr("headlessui-listbox-button-"),
	Listbox:       chain(role("listbox")),
	ListboxOption: chain(role("option")),

	Switch:      chain(role("switch")),
	SwitchLabel: chain(tag("label"), idPrefix("headlessui-switch-label")),

	DisclosureButton: chain(idPrefix("headlessui-disclosure-button-")),
	DisclosurePanel:  chain(idPrefix("headlessui-disclosure-panel-")),

	PopoverButton:  chain(idPrefix("headlessui-popover-button-")),
	PopoverPanel:   chain(idPrefix("headlessui-popover-panel-")),
	PopoverOverlay: chain(idPrefix("headlessui-popover-overlay-")),

	Dialog:            chain(role("dialog")),
	DialogTitle:       chain(idPrefix("headlessui-dialog-title-")),
	DialogDescription: chain(idPrefix("headlessui-description-")),
	DialogOverlay:     chain(idPrefix("headlessui-dialog-overlay-")),

	RadioGroup:       chain(role("radiogroup")),
	RadioGroupLabel:  chain(idPrefix("headlessui-label-")),
	RadioGroupOption: chain(idPrefix("headlessui-radiogroup-option-")),

	TabList:  chain(role("tablist")),
	Tab:      chain(idPrefix("headlessui-tabs-tab-")),
	TabPanel: chain(idPrefix("headlessui-tabs-panel-")),

	ComboboxLabel:  chain(tag("label"), idPrefix("headlessui-combobox-label")),
	ComboboxButton: buttonOr("headlessui-combobox-button-"),
	ComboboxInput:  chain(role("combobox")),
	Combobox:       chain(role("listbox")),
	ComboboxOption: chain(role("option")),
}

// One returns the best-guess element for part, or nil when nothing matches.
func One(doc *dom.Document, part Part) *dom.Element {
	s, ok := strategies[part]
	if !ok {
		panic(fmt.Sprintf("resolve: unknown part %q", part))
	}
	for _, expr := range s.chain {
		if el := doc.Select(expr); el != nil {
			return el
		}
	}
	return nil
}

// All returns every element matching part in document order; empty when
// nothing matches.
func All(doc *dom.Document, part Part) []*dom.Element {
	s, ok := strategies[part]
	if !ok {
		panic(fmt.Sprintf("resolve: unknown part %q", part))
	}
	els := doc.SelectAll(s.all)
	if els == nil {
		return []*dom.Element{}
	}
	return els
}
