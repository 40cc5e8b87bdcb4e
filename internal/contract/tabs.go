package contract

import (
	"cmp"
	"strconv"

	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/expect"
	"github.com/jacoelho/ariacheck/internal/xiter"
)

// TabsOptions describes a tab list. Active is the data-headlessui-index of
// the selected tab and its panel.
type TabsOptions struct {
	Active      int
	Orientation string
}

// CheckTabs checks the list, every tab and every panel, including the
// round trip tab -> aria-controls -> panel -> aria-labelledby -> tab.
func CheckTabs(doc *dom.Document, opts TabsOptions, list *dom.Element, tabs, panels []*dom.Element) error {
	if err := expect.Present(list, "tab list"); err != nil {
		return err
	}
	if err := expect.AttrEquals(list, "role", "tablist"); err != nil {
		return err
	}
	if err := expect.AttrEquals(list, "aria-orientation", cmp.Or(opts.Orientation, "horizontal")); err != nil {
		return err
	}

	index := strconv.Itoa(opts.Active)
	isActive := func(el *dom.Element) bool {
		v, ok := el.Data("headlessuiIndex")
		return ok && v == index
	}
	activeTab, _ := xiter.Find(tabs, isActive)
	activePanel, _ := xiter.Find(panels, isActive)

	for _, tab := range tabs {
		if err := checkTab(doc, tab, tab.Equal(activeTab), panels); err != nil {
			return err
		}
	}
	for _, panel := range panels {
		if err := checkPanel(doc, panel, panel.Equal(activePanel), tabs); err != nil {
			return err
		}
	}
	return nil
}

func checkTab(doc *dom.Document, tab *dom.Element, active bool, panels []*dom.Element) error {
	selected, tabindex := "false", "-1"
	if active {
		selected, tabindex = "true", "0"
	}
	err := expect.All(
		func() error { return expect.HasAttr(tab, "id") },
		func() error { return expect.AttrEquals(tab, "role", "tab") },
		func() error { return expect.AttrEquals(tab, "type", "button") },
		func() error { return expect.AttrEquals(tab, "aria-selected", selected) },
		func() error { return expect.AttrEquals(tab, "tabindex", tabindex) },
	)
	if err != nil {
		return err
	}
	controls, ok := tab.Attr("aria-controls")
	if !ok {
		return nil
	}
	panel := doc.ByID(controls)
	if err := expect.Present(panel, "panel controlled by "+tab.String()); err != nil {
		return err
	}
	if err := expect.Contains(panels, panel, "tab panel"); err != nil {
		return err
	}
	return expect.AttrEquals(panel, "aria-labelledby", tab.ID())
}

func checkPanel(doc *dom.Document, panel *dom.Element, active bool, tabs []*dom.Element) error {
	if err := expect.HasAttr(panel, "id"); err != nil {
		return err
	}
	if err := expect.AttrEquals(panel, "role", "tabpanel"); err != nil {
		return err
	}
	labelledBy, _ := panel.Attr("aria-labelledby")
	tab := doc.ByID(labelledBy)
	if err := expect.Contains(tabs, tab, "tab labelling "+panel.String()); err != nil {
		return err
	}
	if err := expect.AttrEquals(tab, "aria-controls", panel.ID()); err != nil {
		return err
	}
	tabindex := "-1"
	if active {
		tabindex = "0"
	}
	return expect.AttrEquals(panel, "tabindex", tabindex)
}
