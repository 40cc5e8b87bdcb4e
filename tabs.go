package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/resolve"
)

// GetTabList returns the tab list, or nil.
func (c *Checker) GetTabList() *dom.Element { return c.one(resolve.TabList) }

// GetTabs returns every tab.
func (c *Checker) GetTabs() []*dom.Element { return c.all(resolve.Tab) }

// GetPanels returns every tab panel.
func (c *Checker) GetPanels() []*dom.Element { return c.all(resolve.TabPanel) }

// AssertTabs checks the tab list, the roving tabindex over tabs and panels,
// and the tab/panel round trip. Orientation defaults to horizontal.
// refs: list. Tabs and panels are always resolved; use AssertTabsOf to
// pass them explicitly.
func (c *Checker) AssertTabs(opts TabsOptions, refs ...*dom.Element) error {
	return c.check("AssertTabs", func() error {
		return contract.CheckTabs(c.doc, opts, c.ref(refs, 0, resolve.TabList), c.all(resolve.Tab), c.all(resolve.TabPanel))
	})
}

// AssertTabsOf is AssertTabs over explicit elements.
func (c *Checker) AssertTabsOf(opts TabsOptions, list *dom.Element, tabs, panels []*dom.Element) error {
	return c.check("AssertTabs", func() error {
		return contract.CheckTabs(c.doc, opts, list, tabs, panels)
	})
}
