package ariacheck

import (
	"github.com/jacoelho/ariacheck/dom"
	"github.com/jacoelho/ariacheck/internal/contract"
	"github.com/jacoelho/ariacheck/internal/linkage"
	"github.com/jacoelho/ariacheck/internal/resolve"
)

// GetMenuButton returns the menu trigger, or nil.
func (c *Checker) GetMenuButton() *dom.Element { return c.one(resolve.MenuButton) }

// GetMenuButtons returns every button-like element.
func (c *Checker) GetMenuButtons() []*dom.Element { return c.all(resolve.Buttons) }

// GetMenu returns the first menu, or nil.
func (c *Checker) GetMenu() *dom.Element { return c.one(resolve.Menu) }

// GetMenus returns every menu.
func (c *Checker) GetMenus() []*dom.Element { return c.all(resolve.Menu) }

// GetMenuItems returns every menu item.
func (c *Checker) GetMenuItems() []*dom.Element { return c.all(resolve.MenuItem) }

// AssertMenuButton checks the menu trigger. refs: button.
func (c *Checker) AssertMenuButton(opts Options, refs ...*dom.Element) error {
	return c.check("AssertMenuButton", func() error {
		return contract.CheckTrigger(contract.MenuButton, opts, c.ref(refs, 0, resolve.MenuButton))
	})
}

// AssertMenuButtonLinkedWithMenu checks the button and menu reference each
// other. refs: button, menu.
func (c *Checker) AssertMenuButtonLinkedWithMenu(refs ...*dom.Element) error {
	return c.check("AssertMenuButtonLinkedWithMenu", func() error {
		return linkage.Bidirectional(
			c.ref(refs, 0, resolve.MenuButton),
			c.ref(refs, 1, resolve.Menu),
			[2]string{"menu button", "menu"},
		)
	})
}

// AssertMenuLinkedWithMenuItem checks the menu's active descendant is item.
// refs: menu.
func (c *Checker) AssertMenuLinkedWithMenuItem(item *dom.Element, refs ...*dom.Element) error {
	return c.check("AssertMenuLinkedWithMenuItem", func() error {
		return linkage.Active(c.ref(refs, 0, resolve.Menu), item, [2]string{"menu", "menu item"})
	})
}

// AssertNoActiveMenuItem checks the menu has no active descendant. refs: menu.
func (c *Checker) AssertNoActiveMenuItem(refs ...*dom.Element) error {
	return c.check("AssertNoActiveMenuItem", func() error {
		return linkage.NoActive(c.ref(refs, 0, resolve.Menu), "menu")
	})
}

// AssertMenu checks the menu panel. refs: menu.
func (c *Checker) AssertMenu(opts Options, refs ...*dom.Element) error {
	return c.check("AssertMenu", func() error {
		return contract.CheckPanel(contract.Menu, opts, c.ref(refs, 0, resolve.Menu), nil)
	})
}

// AssertMenuItem checks one menu item.
func (c *Checker) AssertMenuItem(item *dom.Element, opts ItemOptions) error {
	return c.check("AssertMenuItem", func() error {
		return contract.CheckItem(contract.MenuItem, item, opts)
	})
}
